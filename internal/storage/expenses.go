package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"fjacquet/expense-tracker/internal/logging"
	"fjacquet/expense-tracker/internal/models"
	"fjacquet/expense-tracker/internal/parsererror"

	"github.com/shopspring/decimal"
)

// ExpenseFilter narrows a ListExpenses query. Zero values mean "no
// constraint". Tag filtering matches expenses carrying ALL given tags.
type ExpenseFilter struct {
	Category string
	From     *time.Time
	To       *time.Time
	Tags     []string
	Limit    int
}

// CreateExpense inserts a new expense and returns its assigned id.
// CreatedAt/UpdatedAt are set by the store.
func (s *SQLiteStorage) CreateExpense(ctx context.Context, e *models.Expense) (int64, error) {
	now := time.Now().UTC()
	e.CreatedAt = now
	e.UpdatedAt = now
	if e.Date.IsZero() {
		e.Date = now
	}

	tags, err := marshalTags(e.Tags)
	if err != nil {
		return 0, &parsererror.StorageError{Operation: "create", Err: err}
	}

	res, err := s.db.ExecContext(ctx, `
		INSERT INTO expenses (description, amount, category, subcategory, date,
			raw_text, tags, notes, location, payment_method, is_recurring,
			created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		e.Description, e.Amount.String(), e.Category, e.Subcategory, e.Date,
		e.RawText, tags, e.Notes, e.Location, e.PaymentMethod, e.IsRecurring,
		e.CreatedAt, e.UpdatedAt)
	if err != nil {
		return 0, &parsererror.StorageError{Operation: "create", Err: err}
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, &parsererror.StorageError{Operation: "create", Err: err}
	}
	e.ID = id

	s.logger.WithFields(
		logging.Field{Key: logging.FieldExpenseID, Value: id},
		logging.Field{Key: logging.FieldCategory, Value: e.Category},
	).Debug("Expense created")
	return id, nil
}

// GetExpense returns the expense with the given id, or ErrNotFound.
func (s *SQLiteStorage) GetExpense(ctx context.Context, id int64) (*models.Expense, error) {
	row := s.db.QueryRowContext(ctx, selectColumns+` WHERE id = ?`, id)
	e, err := scanExpense(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, &parsererror.StorageError{Operation: "get", Err: err}
	}
	return e, nil
}

// ListExpenses returns expenses matching the filter, newest first.
func (s *SQLiteStorage) ListExpenses(ctx context.Context, filter ExpenseFilter) ([]models.Expense, error) {
	query := selectColumns
	var conds []string
	var args []interface{}

	if filter.Category != "" {
		conds = append(conds, "category = ?")
		args = append(args, filter.Category)
	}
	if filter.From != nil {
		conds = append(conds, "date >= ?")
		args = append(args, *filter.From)
	}
	if filter.To != nil {
		conds = append(conds, "date <= ?")
		args = append(args, *filter.To)
	}
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY date DESC, id DESC"

	// The limit is applied after tag filtering, which happens in Go
	// because tags live in a JSON column.
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, &parsererror.StorageError{Operation: "list", Err: err}
	}
	defer func() {
		_ = rows.Close()
	}()

	var out []models.Expense
	for rows.Next() {
		e, err := scanExpense(rows)
		if err != nil {
			return nil, &parsererror.StorageError{Operation: "list", Err: err}
		}
		if !hasAllTags(e.Tags, filter.Tags) {
			continue
		}
		out = append(out, *e)
		if filter.Limit > 0 && len(out) == filter.Limit {
			break
		}
	}
	if err := rows.Err(); err != nil {
		return nil, &parsererror.StorageError{Operation: "list", Err: err}
	}
	return out, nil
}

// UpdateExpense overwrites the stored expense with the given one.
// Returns ErrNotFound when the id does not exist.
func (s *SQLiteStorage) UpdateExpense(ctx context.Context, e *models.Expense) error {
	e.UpdatedAt = time.Now().UTC()

	tags, err := marshalTags(e.Tags)
	if err != nil {
		return &parsererror.StorageError{Operation: "update", Err: err}
	}

	res, err := s.db.ExecContext(ctx, `
		UPDATE expenses SET description = ?, amount = ?, category = ?,
			subcategory = ?, date = ?, tags = ?, notes = ?, location = ?,
			payment_method = ?, is_recurring = ?, updated_at = ?
		WHERE id = ?`,
		e.Description, e.Amount.String(), e.Category, e.Subcategory, e.Date,
		tags, e.Notes, e.Location, e.PaymentMethod, e.IsRecurring,
		e.UpdatedAt, e.ID)
	if err != nil {
		return &parsererror.StorageError{Operation: "update", Err: err}
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return &parsererror.StorageError{Operation: "update", Err: err}
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteExpense removes the expense with the given id. Deleting a missing
// id is not an error; the operation is idempotent.
func (s *SQLiteStorage) DeleteExpense(ctx context.Context, id int64) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM expenses WHERE id = ?`, id); err != nil {
		return &parsererror.StorageError{Operation: "delete", Err: err}
	}
	return nil
}

// CategorySummary aggregates totals and counts per category over an
// optional date range, largest total first.
func (s *SQLiteStorage) CategorySummary(ctx context.Context, from, to *time.Time) ([]models.CategorySummary, error) {
	query := `SELECT category, amount FROM expenses`
	var conds []string
	var args []interface{}
	if from != nil {
		conds = append(conds, "date >= ?")
		args = append(args, *from)
	}
	if to != nil {
		conds = append(conds, "date <= ?")
		args = append(args, *to)
	}
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, &parsererror.StorageError{Operation: "summary", Err: err}
	}
	defer func() {
		_ = rows.Close()
	}()

	// Amounts are stored as decimal strings, so the sum happens in Go
	// with decimal arithmetic instead of SQLite floating point.
	totals := make(map[string]*models.CategorySummary)
	var order []string
	for rows.Next() {
		var category, amountStr string
		if err := rows.Scan(&category, &amountStr); err != nil {
			return nil, &parsererror.StorageError{Operation: "summary", Err: err}
		}
		amount, err := decimal.NewFromString(amountStr)
		if err != nil {
			return nil, &parsererror.StorageError{Operation: "summary",
				Err: fmt.Errorf("invalid stored amount %q: %w", amountStr, err)}
		}
		summary, ok := totals[category]
		if !ok {
			summary = &models.CategorySummary{Category: category, Total: decimal.Zero}
			totals[category] = summary
			order = append(order, category)
		}
		summary.Total = summary.Total.Add(amount)
		summary.Count++
	}
	if err := rows.Err(); err != nil {
		return nil, &parsererror.StorageError{Operation: "summary", Err: err}
	}

	out := make([]models.CategorySummary, 0, len(order))
	for _, category := range order {
		out = append(out, *totals[category])
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Total.GreaterThan(out[j].Total)
	})
	return out, nil
}

const selectColumns = `SELECT id, description, amount, category, subcategory,
	date, raw_text, tags, notes, location, payment_method, is_recurring,
	created_at, updated_at FROM expenses`

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanExpense(row rowScanner) (*models.Expense, error) {
	var e models.Expense
	var amountStr, tagsJSON string
	if err := row.Scan(&e.ID, &e.Description, &amountStr, &e.Category,
		&e.Subcategory, &e.Date, &e.RawText, &tagsJSON, &e.Notes,
		&e.Location, &e.PaymentMethod, &e.IsRecurring,
		&e.CreatedAt, &e.UpdatedAt); err != nil {
		return nil, err
	}

	amount, err := decimal.NewFromString(amountStr)
	if err != nil {
		return nil, fmt.Errorf("invalid stored amount %q: %w", amountStr, err)
	}
	e.Amount = amount

	if err := json.Unmarshal([]byte(tagsJSON), &e.Tags); err != nil {
		return nil, fmt.Errorf("invalid stored tags %q: %w", tagsJSON, err)
	}
	return &e, nil
}

func marshalTags(tags []string) (string, error) {
	if tags == nil {
		tags = []string{}
	}
	data, err := json.Marshal(tags)
	if err != nil {
		return "", fmt.Errorf("marshal tags: %w", err)
	}
	return string(data), nil
}

func hasAllTags(have, want []string) bool {
	for _, w := range want {
		found := false
		for _, h := range have {
			if strings.EqualFold(h, w) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

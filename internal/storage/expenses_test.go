package storage

import (
	"context"
	"testing"
	"time"

	"fjacquet/expense-tracker/internal/logging"
	"fjacquet/expense-tracker/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStorage(t *testing.T) *SQLiteStorage {
	t.Helper()
	s, err := NewSQLiteStorage(":memory:", logging.NewMockLogger())
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, s.Close())
	})
	return s
}

func newExpense(description, amount, category string, tags ...string) *models.Expense {
	return &models.Expense{
		Description: description,
		Amount:      decimal.RequireFromString(amount),
		Category:    category,
		Tags:        tags,
	}
}

func TestCreateAndGetExpense(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	e := newExpense("Pizza", "12.50", models.CategoryFood, "pizza", "food")
	e.Location = "Luigi's"
	e.RawText = "Pizza $12.50 at Luigi's"

	id, err := s.CreateExpense(ctx, e)
	require.NoError(t, err)
	assert.Positive(t, id)
	assert.False(t, e.CreatedAt.IsZero())
	assert.False(t, e.Date.IsZero())

	got, err := s.GetExpense(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Pizza", got.Description)
	assert.True(t, decimal.RequireFromString("12.50").Equal(got.Amount))
	assert.Equal(t, models.CategoryFood, got.Category)
	assert.Equal(t, []string{"pizza", "food"}, got.Tags)
	assert.Equal(t, "Luigi's", got.Location)
	assert.Equal(t, "Pizza $12.50 at Luigi's", got.RawText)
}

func TestGetExpense_NotFound(t *testing.T) {
	s := newTestStorage(t)

	_, err := s.GetExpense(context.Background(), 999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListExpenses(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	day := func(d int) time.Time {
		return time.Date(2026, 8, d, 12, 0, 0, 0, time.UTC)
	}

	fixtures := []*models.Expense{
		newExpense("Pizza", "12.50", models.CategoryFood, "pizza", "food"),
		newExpense("Uber", "18.00", models.CategoryTransport, "uber", "ride"),
		newExpense("Groceries", "45.00", models.CategoryFood, "groceries", "food"),
		newExpense("Movie", "15.00", models.CategoryEntertainment),
	}
	for i, e := range fixtures {
		e.Date = day(i + 1)
		_, err := s.CreateExpense(ctx, e)
		require.NoError(t, err)
	}

	t.Run("no filter returns newest first", func(t *testing.T) {
		got, err := s.ListExpenses(ctx, ExpenseFilter{})
		require.NoError(t, err)
		require.Len(t, got, 4)
		assert.Equal(t, "Movie", got[0].Description)
		assert.Equal(t, "Pizza", got[3].Description)
	})

	t.Run("category filter", func(t *testing.T) {
		got, err := s.ListExpenses(ctx, ExpenseFilter{Category: models.CategoryFood})
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, "Groceries", got[0].Description)
		assert.Equal(t, "Pizza", got[1].Description)
	})

	t.Run("date range filter", func(t *testing.T) {
		from, to := day(2), day(3)
		got, err := s.ListExpenses(ctx, ExpenseFilter{From: &from, To: &to})
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, "Groceries", got[0].Description)
		assert.Equal(t, "Uber", got[1].Description)
	})

	t.Run("tag filter requires all tags", func(t *testing.T) {
		got, err := s.ListExpenses(ctx, ExpenseFilter{Tags: []string{"food", "pizza"}})
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "Pizza", got[0].Description)
	})

	t.Run("tag filter is case insensitive", func(t *testing.T) {
		got, err := s.ListExpenses(ctx, ExpenseFilter{Tags: []string{"FOOD"}})
		require.NoError(t, err)
		assert.Len(t, got, 2)
	})

	t.Run("limit", func(t *testing.T) {
		got, err := s.ListExpenses(ctx, ExpenseFilter{Limit: 2})
		require.NoError(t, err)
		assert.Len(t, got, 2)
	})

	t.Run("no match", func(t *testing.T) {
		got, err := s.ListExpenses(ctx, ExpenseFilter{Category: models.CategoryHealth})
		require.NoError(t, err)
		assert.Empty(t, got)
	})
}

func TestUpdateExpense(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	e := newExpense("Coffee", "4.25", models.CategoryFood, "coffee")
	id, err := s.CreateExpense(ctx, e)
	require.NoError(t, err)

	e.Description = "Morning coffee"
	e.Amount = decimal.RequireFromString("5.00")
	e.Tags = []string{"coffee", "morning"}
	require.NoError(t, s.UpdateExpense(ctx, e))

	got, err := s.GetExpense(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Morning coffee", got.Description)
	assert.True(t, decimal.RequireFromString("5.00").Equal(got.Amount))
	assert.Equal(t, []string{"coffee", "morning"}, got.Tags)
}

func TestUpdateExpense_NotFound(t *testing.T) {
	s := newTestStorage(t)

	e := newExpense("Ghost", "1.00", models.CategoryOther)
	e.ID = 12345
	assert.ErrorIs(t, s.UpdateExpense(context.Background(), e), ErrNotFound)
}

func TestDeleteExpense(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	id, err := s.CreateExpense(ctx, newExpense("Pizza", "12.50", models.CategoryFood))
	require.NoError(t, err)

	require.NoError(t, s.DeleteExpense(ctx, id))
	_, err = s.GetExpense(ctx, id)
	assert.ErrorIs(t, err, ErrNotFound)

	// Idempotent
	assert.NoError(t, s.DeleteExpense(ctx, id))
}

func TestCategorySummary(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	fixtures := []*models.Expense{
		newExpense("Pizza", "12.50", models.CategoryFood),
		newExpense("Groceries", "45.00", models.CategoryFood),
		newExpense("Uber", "18.00", models.CategoryTransport),
	}
	for _, e := range fixtures {
		_, err := s.CreateExpense(ctx, e)
		require.NoError(t, err)
	}

	summary, err := s.CategorySummary(ctx, nil, nil)
	require.NoError(t, err)
	require.Len(t, summary, 2)

	// Largest total first
	assert.Equal(t, models.CategoryFood, summary[0].Category)
	assert.True(t, decimal.RequireFromString("57.5").Equal(summary[0].Total))
	assert.Equal(t, 2, summary[0].Count)

	assert.Equal(t, models.CategoryTransport, summary[1].Category)
	assert.True(t, decimal.RequireFromString("18").Equal(summary[1].Total))
	assert.Equal(t, 1, summary[1].Count)
}

func TestCategorySummary_Empty(t *testing.T) {
	s := newTestStorage(t)

	summary, err := s.CategorySummary(context.Background(), nil, nil)
	require.NoError(t, err)
	assert.Empty(t, summary)
}

func TestNilTagsStoredAsEmptyList(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	id, err := s.CreateExpense(ctx, newExpense("Thing", "1.00", models.CategoryOther))
	require.NoError(t, err)

	got, err := s.GetExpense(ctx, id)
	require.NoError(t, err)
	assert.NotNil(t, got.Tags)
	assert.Empty(t, got.Tags)
}

func TestFileBackedDatabase(t *testing.T) {
	path := t.TempDir() + "/sub/expenses.db"
	s, err := NewSQLiteStorage(path, logging.NewMockLogger())
	require.NoError(t, err)

	id, err := s.CreateExpense(context.Background(), newExpense("Pizza", "12.50", models.CategoryFood))
	require.NoError(t, err)
	require.NoError(t, s.Close())

	// Reopen and read back
	s2, err := NewSQLiteStorage(path, logging.NewMockLogger())
	require.NoError(t, err)
	defer func() {
		require.NoError(t, s2.Close())
	}()

	got, err := s2.GetExpense(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "Pizza", got.Description)
}

package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"fjacquet/expense-tracker/internal/logging"
	"fjacquet/expense-tracker/internal/models"
	"fjacquet/expense-tracker/internal/parsererror"
	"fjacquet/expense-tracker/internal/storage"
)

// createExpenseRequest carries the raw expense text to interpret.
// Optional fields override what interpretation produced.
type createExpenseRequest struct {
	Text          string `json:"text"`
	Notes         string `json:"notes,omitempty"`
	PaymentMethod string `json:"paymentMethod,omitempty"`
	IsRecurring   bool   `json:"isRecurring,omitempty"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleCreateExpense(w http.ResponseWriter, r *http.Request) {
	var req createExpenseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	// The request context flows into the interpreter so a client
	// disconnect cancels any outstanding AI call.
	parsed, err := s.interpreter.Interpret(r.Context(), req.Text)
	if err != nil {
		var verr *parsererror.ValidationError
		if errors.As(err, &verr) {
			writeError(w, http.StatusBadRequest, verr.Error())
			return
		}
		s.logger.WithError(err).Error("interpretation failed")
		writeError(w, http.StatusInternalServerError, "failed to interpret expense text")
		return
	}

	expense := &models.Expense{
		Description:   parsed.Description,
		Amount:        parsed.Amount,
		Category:      parsed.Category,
		RawText:       req.Text,
		Tags:          parsed.Tags,
		Location:      parsed.Location,
		Notes:         req.Notes,
		PaymentMethod: req.PaymentMethod,
		IsRecurring:   req.IsRecurring,
	}

	id, err := s.storage.CreateExpense(r.Context(), expense)
	if err != nil {
		s.logger.WithError(err).Error("failed to store expense")
		writeError(w, http.StatusInternalServerError, "failed to store expense")
		return
	}

	s.logger.Info("expense created",
		logging.Field{Key: logging.FieldExpenseID, Value: id},
		logging.Field{Key: logging.FieldCategory, Value: expense.Category})
	writeJSON(w, http.StatusCreated, expense)
}

func (s *Server) handleListExpenses(w http.ResponseWriter, r *http.Request) {
	filter, err := filterFromQuery(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	expenses, err := s.storage.ListExpenses(r.Context(), filter)
	if err != nil {
		s.logger.WithError(err).Error("failed to list expenses")
		writeError(w, http.StatusInternalServerError, "failed to list expenses")
		return
	}
	if expenses == nil {
		expenses = []models.Expense{}
	}
	writeJSON(w, http.StatusOK, expenses)
}

func (s *Server) handleGetExpense(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	expense, err := s.storage.GetExpense(r.Context(), id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			writeError(w, http.StatusNotFound, "expense not found")
			return
		}
		s.logger.WithError(err).Error("failed to load expense")
		writeError(w, http.StatusInternalServerError, "failed to load expense")
		return
	}
	writeJSON(w, http.StatusOK, expense)
}

func (s *Server) handleUpdateExpense(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var expense models.Expense
	if err := json.NewDecoder(r.Body).Decode(&expense); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if expense.Description == "" {
		writeError(w, http.StatusBadRequest, "description must not be empty")
		return
	}
	if expense.Category != "" && !models.IsValidCategory(expense.Category) {
		writeError(w, http.StatusBadRequest, "unknown category: "+expense.Category)
		return
	}
	expense.ID = id

	if err := s.storage.UpdateExpense(r.Context(), &expense); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			writeError(w, http.StatusNotFound, "expense not found")
			return
		}
		s.logger.WithError(err).Error("failed to update expense")
		writeError(w, http.StatusInternalServerError, "failed to update expense")
		return
	}
	writeJSON(w, http.StatusOK, expense)
}

func (s *Server) handleDeleteExpense(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := s.storage.DeleteExpense(r.Context(), id); err != nil {
		s.logger.WithError(err).Error("failed to delete expense")
		writeError(w, http.StatusInternalServerError, "failed to delete expense")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	from, err := timeParam(r, "from")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	to, err := timeParam(r, "to")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	summary, err := s.storage.CategorySummary(r.Context(), from, to)
	if err != nil {
		s.logger.WithError(err).Error("failed to build summary")
		writeError(w, http.StatusInternalServerError, "failed to build summary")
		return
	}
	if summary == nil {
		summary = []models.CategorySummary{}
	}
	writeJSON(w, http.StatusOK, summary)
}

func filterFromQuery(r *http.Request) (storage.ExpenseFilter, error) {
	var filter storage.ExpenseFilter

	if category := r.URL.Query().Get("category"); category != "" {
		normalized, ok := models.NormalizeCategory(category)
		if !ok {
			return filter, parsererror.NewValidationError("category", "unknown category: "+category)
		}
		filter.Category = normalized
	}

	var err error
	if filter.From, err = timeParam(r, "from"); err != nil {
		return filter, err
	}
	if filter.To, err = timeParam(r, "to"); err != nil {
		return filter, err
	}

	if tags := r.URL.Query().Get("tags"); tags != "" {
		for _, tag := range strings.Split(tags, ",") {
			if tag = strings.TrimSpace(tag); tag != "" {
				filter.Tags = append(filter.Tags, tag)
			}
		}
	}

	if limit := r.URL.Query().Get("limit"); limit != "" {
		n, err := strconv.Atoi(limit)
		if err != nil || n < 0 {
			return filter, parsererror.NewValidationError("limit", "must be a non-negative integer")
		}
		filter.Limit = n
	}
	return filter, nil
}

func timeParam(r *http.Request, name string) (*time.Time, error) {
	value := r.URL.Query().Get(name)
	if value == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		// Accept bare dates as well
		t, err = time.Parse("2006-01-02", value)
		if err != nil {
			return nil, parsererror.NewValidationError(name, "must be RFC 3339 or YYYY-MM-DD")
		}
	}
	return &t, nil
}

func pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id <= 0 {
		writeError(w, http.StatusBadRequest, "invalid expense id")
		return 0, false
	}
	return id, true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}

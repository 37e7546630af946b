// Package models provides the data structures used throughout the application.
package models

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Categories assignable to an expense. CategoryOther is the universal
// fallback and is always a valid result.
const (
	CategoryFood          = "Food"
	CategoryTransport     = "Transport"
	CategoryShopping      = "Shopping"
	CategoryEntertainment = "Entertainment"
	CategoryHealth        = "Health"
	CategoryEducation     = "Education"
	CategoryOther         = "Other"
)

// DefaultDescription is used when amount extraction leaves no text behind.
const DefaultDescription = "Expense"

// ValidCategories lists every category an expense may carry, in the order
// they are presented to the semantic classifier.
var ValidCategories = []string{
	CategoryFood,
	CategoryTransport,
	CategoryShopping,
	CategoryEntertainment,
	CategoryHealth,
	CategoryEducation,
	CategoryOther,
}

// IsValidCategory reports whether name matches one of the known categories,
// ignoring case.
func IsValidCategory(name string) bool {
	for _, c := range ValidCategories {
		if strings.EqualFold(c, name) {
			return true
		}
	}
	return false
}

// NormalizeCategory maps name onto its canonical spelling. The second
// return value is false when name is not a known category.
func NormalizeCategory(name string) (string, bool) {
	for _, c := range ValidCategories {
		if strings.EqualFold(c, strings.TrimSpace(name)) {
			return c, true
		}
	}
	return "", false
}

// ParsedExpense is the result of interpreting a raw expense text.
type ParsedExpense struct {
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Category    string          `json:"category"`
	Tags        []string        `json:"tags"`
	Location    string          `json:"location,omitempty"`
}

// MarshalJSON renders the amount with exactly two decimal places.
// Decimal's own marshaler trims trailing zeros, so "18.00" would
// otherwise leave the system as "18".
func (p ParsedExpense) MarshalJSON() ([]byte, error) {
	type alias ParsedExpense
	return json.Marshal(struct {
		alias
		Amount string `json:"amount"`
	}{alias(p), p.Amount.StringFixed(2)})
}

// Expense is a persisted expense record. ParsedExpense fields are merged
// with system-assigned fields (id, timestamps) when a record is created.
type Expense struct {
	ID            int64           `json:"id" csv:"id"`
	Description   string          `json:"description" csv:"description"`
	Amount        decimal.Decimal `json:"amount" csv:"amount"`
	Category      string          `json:"category" csv:"category"`
	Subcategory   string          `json:"subcategory,omitempty" csv:"subcategory"`
	Date          time.Time       `json:"date" csv:"date"`
	RawText       string          `json:"rawText,omitempty" csv:"raw_text"`
	Tags          []string        `json:"tags" csv:"-"`
	Notes         string          `json:"notes,omitempty" csv:"notes"`
	Location      string          `json:"location,omitempty" csv:"location"`
	PaymentMethod string          `json:"paymentMethod,omitempty" csv:"payment_method"`
	IsRecurring   bool            `json:"isRecurring" csv:"is_recurring"`
	CreatedAt     time.Time       `json:"createdAt" csv:"created_at"`
	UpdatedAt     time.Time       `json:"updatedAt" csv:"updated_at"`
}

// MarshalJSON renders the amount with exactly two decimal places, like
// ParsedExpense.MarshalJSON.
func (e Expense) MarshalJSON() ([]byte, error) {
	type alias Expense
	return json.Marshal(struct {
		alias
		Amount string `json:"amount"`
	}{alias(e), e.Amount.StringFixed(2)})
}

// CategorySummary is an aggregate of stored expenses for one category.
type CategorySummary struct {
	Category string          `json:"category"`
	Total    decimal.Decimal `json:"total"`
	Count    int             `json:"count"`
}

// MarshalJSON renders the total with exactly two decimal places.
func (s CategorySummary) MarshalJSON() ([]byte, error) {
	type alias CategorySummary
	return json.Marshal(struct {
		alias
		Total string `json:"total"`
	}{alias(s), s.Total.StringFixed(2)})
}

// ParseAmount converts an amount string to a decimal value.
// Invalid strings yield zero rather than an error; amounts in this
// system are best-effort extractions, never hard failures.
func ParseAmount(s string) decimal.Decimal {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero
	}
	return d
}

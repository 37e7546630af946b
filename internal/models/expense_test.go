package models

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "plain", input: "12.50", want: "12.50"},
		{name: "whitespace", input: "  8 ", want: "8"},
		{name: "invalid yields zero", input: "abc", want: "0"},
		{name: "empty yields zero", input: "", want: "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseAmount(tt.input)
			assert.True(t, decimal.RequireFromString(tt.want).Equal(got), "got %s", got)
		})
	}
}

func TestAmountJSONScale(t *testing.T) {
	tests := []struct {
		name   string
		amount string
		want   string
	}{
		{name: "whole number", amount: "18", want: `"amount":"18.00"`},
		{name: "one decimal", amount: "12.5", want: `"amount":"12.50"`},
		{name: "two decimals", amount: "4.25", want: `"amount":"4.25"`},
		{name: "zero", amount: "0", want: `"amount":"0.00"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			amount := decimal.RequireFromString(tt.amount)

			data, err := json.Marshal(Expense{Description: "x", Amount: amount})
			require.NoError(t, err)
			assert.Contains(t, string(data), tt.want)

			data, err = json.Marshal(ParsedExpense{Description: "x", Amount: amount})
			require.NoError(t, err)
			assert.Contains(t, string(data), tt.want)
		})
	}
}

func TestExpenseJSONRoundTrip(t *testing.T) {
	e := Expense{ID: 7, Description: "Pizza", Amount: decimal.RequireFromString("12.5")}

	data, err := json.Marshal(e)
	require.NoError(t, err)

	var got Expense
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, e.ID, got.ID)
	assert.Equal(t, e.Description, got.Description)
	assert.True(t, e.Amount.Equal(got.Amount))
}

func TestCategorySummaryJSONScale(t *testing.T) {
	s := CategorySummary{Category: CategoryFood, Total: decimal.RequireFromString("57.5"), Count: 2}
	data, err := json.Marshal(s)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"total":"57.50"`)
}

func TestNormalizeCategory(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		want   string
		wantOK bool
	}{
		{name: "canonical", input: "Food", want: CategoryFood, wantOK: true},
		{name: "lowercase", input: "transport", want: CategoryTransport, wantOK: true},
		{name: "uppercase", input: "HEALTH", want: CategoryHealth, wantOK: true},
		{name: "surrounding whitespace", input: " Education ", want: CategoryEducation, wantOK: true},
		{name: "unknown", input: "Banana", want: "", wantOK: false},
		{name: "empty", input: "", want: "", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := NormalizeCategory(tt.input)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestIsValidCategory(t *testing.T) {
	for _, c := range ValidCategories {
		assert.True(t, IsValidCategory(c), c)
	}
	assert.True(t, IsValidCategory("other"))
	assert.False(t, IsValidCategory("Banana"))
	assert.False(t, IsValidCategory(""))
}

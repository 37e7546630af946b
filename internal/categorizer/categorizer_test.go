package categorizer

import (
	"testing"

	"fjacquet/expense-tracker/internal/logging"
	"fjacquet/expense-tracker/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestCategorize_DefaultRules(t *testing.T) {
	tests := []struct {
		name        string
		description string
		want        string
	}{
		{
			name:        "single strong keyword",
			description: "Pizza delivery",
			want:        models.CategoryFood,
		},
		{
			name:        "food beats weak transport signal",
			description: "Pizza delivery ride",
			want:        models.CategoryFood,
		},
		{
			name:        "accumulated transport score",
			description: "Uber ride to airport",
			want:        models.CategoryTransport,
		},
		{
			name:        "shopping beats grocery food signal",
			description: "Grocery shopping at supermarket",
			want:        models.CategoryShopping,
		},
		{
			name:        "case insensitive",
			description: "PIZZA",
			want:        models.CategoryFood,
		},
		{
			name:        "below minimum score",
			description: "water",
			want:        models.CategoryOther,
		},
		{
			name:        "no keywords",
			description: "xyzzy",
			want:        models.CategoryOther,
		},
		{
			name:        "empty description",
			description: "",
			want:        models.CategoryOther,
		},
	}

	c := NewCategorizer(nil, logging.NewMockLogger())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Categorize(tt.description))
		})
	}
}

func TestCategorize_MatchModes(t *testing.T) {
	rules := []models.CategoryRule{
		{
			Category:     models.CategoryFood,
			MinimumScore: 1.0,
			Keywords: []models.CategoryKeyword{
				{Keyword: "pizza", Weight: 1.0},
				{Keyword: "eat", Weight: 1.0, Mode: models.MatchContains},
				{Keyword: "veg", Weight: 1.0, Mode: models.MatchStartsWith},
				{Keyword: "berry", Weight: 1.0, Mode: models.MatchEndsWith},
			},
		},
	}
	c := NewCategorizer(rules, logging.NewMockLogger())

	tests := []struct {
		name        string
		description string
		want        string
	}{
		{name: "exact matches whole token", description: "pizza night", want: models.CategoryFood},
		{name: "exact does not match substring", description: "pizzas", want: models.CategoryOther},
		{name: "contains absent substring", description: "cheapest thing", want: models.CategoryOther},
		{name: "contains matches", description: "eating out", want: models.CategoryFood},
		{name: "starts_with matches prefix", description: "veggies", want: models.CategoryFood},
		{name: "starts_with ignores suffix", description: "nonveg", want: models.CategoryOther},
		{name: "ends_with matches suffix", description: "strawberry", want: models.CategoryFood},
		{name: "ends_with ignores prefix", description: "berrylike", want: models.CategoryOther},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Categorize(tt.description))
		})
	}
}

func TestCategorize_TieBreak(t *testing.T) {
	// Equal scores keep the earlier rule.
	rules := []models.CategoryRule{
		{
			Category:     models.CategoryTransport,
			MinimumScore: 1.0,
			Keywords:     []models.CategoryKeyword{{Keyword: "pass", Weight: 1.5}},
		},
		{
			Category:     models.CategoryEntertainment,
			MinimumScore: 1.0,
			Keywords:     []models.CategoryKeyword{{Keyword: "pass", Weight: 1.5}},
		},
	}
	c := NewCategorizer(rules, logging.NewMockLogger())
	assert.Equal(t, models.CategoryTransport, c.Categorize("season pass"))
}

func TestCategorize_MinimumScoreIsInclusive(t *testing.T) {
	rules := []models.CategoryRule{
		{
			Category:     models.CategoryFood,
			MinimumScore: 1.5,
			Keywords:     []models.CategoryKeyword{{Keyword: "snack", Weight: 1.5}},
		},
	}
	c := NewCategorizer(rules, logging.NewMockLogger())
	assert.Equal(t, models.CategoryFood, c.Categorize("snack"))
}

func TestDefaultRules_Valid(t *testing.T) {
	cfg := models.RulesConfig{Rules: DefaultRules()}
	assert.NoError(t, cfg.Validate())
}

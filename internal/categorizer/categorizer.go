// Package categorizer assigns spending categories to expense descriptions
// using two strategies:
// 1. Local weighted keyword scoring against a read-only rule table
// 2. AI-based classification as a fallback when the rules are inconclusive
package categorizer

import (
	"strings"

	"fjacquet/expense-tracker/internal/logging"
	"fjacquet/expense-tracker/internal/models"
)

// Categorizer scores descriptions against a fixed rule table. It holds no
// mutable state after construction and is safe for concurrent use.
type Categorizer struct {
	rules  []models.CategoryRule
	logger logging.Logger
}

// NewCategorizer creates a Categorizer over the given rule table. Passing
// nil rules selects the built-in default table.
func NewCategorizer(rules []models.CategoryRule, logger logging.Logger) *Categorizer {
	if rules == nil {
		rules = DefaultRules()
	}
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &Categorizer{rules: rules, logger: logger}
}

// Categorize returns the best-scoring category for the description, or
// models.CategoryOther when no rule reaches its minimum score. Rules are
// evaluated in declaration order and ties keep the earlier rule.
func (c *Categorizer) Categorize(description string) string {
	text := strings.ToLower(strings.TrimSpace(description))
	words := strings.Fields(text)

	best := models.CategoryOther
	bestScore := 0.0
	fired := false

	for _, rule := range c.rules {
		score := scoreKeywords(text, words, rule.Keywords)
		if score < rule.MinimumScore {
			continue
		}
		if !fired || score > bestScore {
			best = rule.Category
			bestScore = score
			fired = true
		}
	}

	if fired {
		c.logger.WithFields(
			logging.Field{Key: logging.FieldCategory, Value: best},
			logging.Field{Key: "score", Value: bestScore},
		).Debug("Description categorized by keyword rules")
	}
	return best
}

// scoreKeywords accumulates the weight of every keyword whose match mode
// test passes against the lowercased text or its whitespace tokens.
func scoreKeywords(text string, words []string, keywords []models.CategoryKeyword) float64 {
	var total float64
	for _, kw := range keywords {
		keyword := strings.ToLower(kw.Keyword)
		var found bool
		switch kw.Mode {
		case models.MatchContains:
			found = strings.Contains(text, keyword)
		case models.MatchStartsWith:
			found = anyToken(words, func(w string) bool { return strings.HasPrefix(w, keyword) })
		case models.MatchEndsWith:
			found = anyToken(words, func(w string) bool { return strings.HasSuffix(w, keyword) })
		default: // MatchExact
			found = anyToken(words, func(w string) bool { return w == keyword })
		}
		if found {
			total += kw.Weight
		}
	}
	return total
}

func anyToken(words []string, test func(string) bool) bool {
	for _, w := range words {
		if test(w) {
			return true
		}
	}
	return false
}

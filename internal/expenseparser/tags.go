package expenseparser

import (
	"sort"
	"strings"
)

// tagLexicon maps trigger keywords to the tags they imply. Matching is by
// substring on the lowercased description, so "lunches" still triggers
// "lunch". The table is read-only after process start.
var tagLexicon = map[string][]string{
	// Meals
	"breakfast": {"breakfast", "meal"},
	"lunch":     {"lunch", "meal"},
	"dinner":    {"dinner", "meal"},
	"brunch":    {"brunch", "meal"},
	"snack":     {"snack", "food"},
	"pizza":     {"pizza", "food"},
	"grocery":   {"grocery", "food"},
	"groceries": {"groceries", "food"},

	// Beverages
	"coffee": {"coffee", "beverage"},
	"tea":    {"tea", "beverage"},
	"beer":   {"beer", "drinks"},
	"wine":   {"wine", "drinks"},

	// Transport
	"uber":    {"uber", "ride"},
	"taxi":    {"taxi", "ride"},
	"flight":  {"flight", "travel"},
	"parking": {"parking", "car"},
	"gas":     {"gas", "car"},

	// Places
	"campus":     {"campus", "university"},
	"office":     {"office", "work"},
	"airport":    {"airport", "travel"},
	"gym":        {"gym", "fitness"},
	"pharmacy":   {"pharmacy", "health"},
	"hospital":   {"hospital", "health"},
	"restaurant": {"restaurant", "dining"},

	// Context
	"client":       {"client", "business"},
	"team":         {"team", "work"},
	"birthday":     {"birthday", "gift"},
	"monthly":      {"monthly", "recurring"},
	"subscription": {"subscription", "recurring"},
	"online":       {"online", "shopping"},
	"movie":        {"movie", "entertainment"},
	"netflix":      {"netflix", "streaming"},
	"book":         {"book", "reading"},
}

// ExtractTags derives free-form tags from a description by looking up each
// lexicon keyword as a substring of the lowercased text. The result is
// lowercase, deduplicated and sorted; an empty description yields nil.
func ExtractTags(description string) []string {
	text := strings.ToLower(description)
	if strings.TrimSpace(text) == "" {
		return nil
	}

	seen := make(map[string]struct{})
	for keyword, tags := range tagLexicon {
		if !strings.Contains(text, keyword) {
			continue
		}
		for _, tag := range tags {
			seen[tag] = struct{}{}
		}
	}
	if len(seen) == 0 {
		return nil
	}

	out := make([]string, 0, len(seen))
	for tag := range seen {
		out = append(out, tag)
	}
	sort.Strings(out)
	return out
}

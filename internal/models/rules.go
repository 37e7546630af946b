package models

import "fmt"

// MatchMode governs how a keyword is tested against a description.
type MatchMode string

const (
	// MatchExact requires the keyword to equal a whole token.
	MatchExact MatchMode = "exact"
	// MatchContains requires the keyword to appear anywhere in the text.
	MatchContains MatchMode = "contains"
	// MatchStartsWith requires some token to start with the keyword.
	MatchStartsWith MatchMode = "starts_with"
	// MatchEndsWith requires some token to end with the keyword.
	MatchEndsWith MatchMode = "ends_with"
)

// CategoryKeyword is one weighted keyword inside a category rule.
// An empty Mode is treated as MatchExact.
type CategoryKeyword struct {
	Keyword string    `yaml:"keyword"`
	Weight  float64   `yaml:"weight"`
	Mode    MatchMode `yaml:"match,omitempty"`
}

// CategoryRule scores a description against a list of weighted keywords.
// The rule fires when the accumulated score reaches MinimumScore.
type CategoryRule struct {
	Category     string            `yaml:"category"`
	Keywords     []CategoryKeyword `yaml:"keywords"`
	MinimumScore float64           `yaml:"minimum_score"`
}

// RulesConfig is the structure of the rules YAML file.
type RulesConfig struct {
	Rules []CategoryRule `yaml:"rules"`
}

// Validate checks a rule table for structural problems: empty categories,
// empty keywords, non-positive weights, unknown match modes.
func (rc RulesConfig) Validate() error {
	for i, rule := range rc.Rules {
		if rule.Category == "" {
			return fmt.Errorf("rule %d: category name is empty", i)
		}
		if len(rule.Keywords) == 0 {
			return fmt.Errorf("rule %d (%s): no keywords", i, rule.Category)
		}
		for j, kw := range rule.Keywords {
			if kw.Keyword == "" {
				return fmt.Errorf("rule %d (%s): keyword %d is empty", i, rule.Category, j)
			}
			if kw.Weight <= 0 {
				return fmt.Errorf("rule %d (%s): keyword %q has non-positive weight %v",
					i, rule.Category, kw.Keyword, kw.Weight)
			}
			switch kw.Mode {
			case "", MatchExact, MatchContains, MatchStartsWith, MatchEndsWith:
			default:
				return fmt.Errorf("rule %d (%s): keyword %q has unknown match mode %q",
					i, rule.Category, kw.Keyword, kw.Mode)
			}
		}
	}
	return nil
}

package store

import (
	"os"
	"path/filepath"
	"testing"

	"fjacquet/expense-tracker/internal/categorizer"
	"fjacquet/expense-tracker/internal/logging"
	"fjacquet/expense-tracker/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validRulesYAML = `rules:
  - category: Food
    minimum_score: 1.0
    keywords:
      - keyword: pizza
        weight: 2.0
      - keyword: eat
        weight: 1.5
        match: contains
  - category: Transport
    minimum_score: 1.0
    keywords:
      - keyword: uber
        weight: 2.0
`

func writeRulesFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "rules.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadRules_ValidFile(t *testing.T) {
	path := writeRulesFile(t, validRulesYAML)
	s := NewRuleStore(path, logging.NewMockLogger())

	rules, err := s.LoadRules()
	require.NoError(t, err)
	require.Len(t, rules, 2)

	assert.Equal(t, "Food", rules[0].Category)
	assert.Equal(t, 1.0, rules[0].MinimumScore)
	require.Len(t, rules[0].Keywords, 2)
	assert.Equal(t, "pizza", rules[0].Keywords[0].Keyword)
	assert.Equal(t, models.MatchMode(""), rules[0].Keywords[0].Mode)
	assert.Equal(t, models.MatchContains, rules[0].Keywords[1].Mode)
	assert.Equal(t, "Transport", rules[1].Category)
}

func TestLoadRules_MissingFileUsesDefaults(t *testing.T) {
	s := NewRuleStore(filepath.Join(t.TempDir(), "absent.yaml"), logging.NewMockLogger())

	rules, err := s.LoadRules()
	require.NoError(t, err)
	assert.Equal(t, categorizer.DefaultRules(), rules)
}

func TestLoadRules_BrokenFilesFailLoudly(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "malformed yaml", content: "rules: [unclosed"},
		{name: "empty file", content: ""},
		{name: "no rules", content: "rules: []"},
		{
			name: "invalid rule",
			content: `rules:
  - category: Food
    keywords:
      - keyword: pizza
        weight: -1.0
`,
		},
		{
			name: "unknown match mode",
			content: `rules:
  - category: Food
    keywords:
      - keyword: pizza
        weight: 1.0
        match: fuzzy
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeRulesFile(t, tt.content)
			s := NewRuleStore(path, logging.NewMockLogger())

			_, err := s.LoadRules()
			assert.Error(t, err)
		})
	}
}

func TestSaveRules_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "saved", "rules.yaml")
	s := NewRuleStore(path, logging.NewMockLogger())

	require.NoError(t, s.SaveRules(categorizer.DefaultRules()))

	loaded, err := s.LoadRules()
	require.NoError(t, err)
	assert.Equal(t, categorizer.DefaultRules(), loaded)
}

func TestSaveRules_RejectsInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rules.yaml")
	s := NewRuleStore(path, logging.NewMockLogger())

	err := s.SaveRules([]models.CategoryRule{{Category: "", Keywords: nil}})
	require.Error(t, err)
	assert.NoFileExists(t, path)
}

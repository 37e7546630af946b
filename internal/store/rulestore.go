// Package store provides loading of category rule tables from YAML files.
package store

import (
	"fmt"
	"os"
	"path/filepath"

	"fjacquet/expense-tracker/internal/categorizer"
	"fjacquet/expense-tracker/internal/logging"
	"fjacquet/expense-tracker/internal/models"

	"gopkg.in/yaml.v3"
)

// RuleStore loads the category rule table used by the keyword classifier.
// The table is configuration, not runtime state: it is loaded once at
// startup and read-only thereafter.
type RuleStore struct {
	RulesFile string
	logger    logging.Logger
}

// NewRuleStore creates a store for the given rules file. An empty filename
// selects the default "rules.yaml".
func NewRuleStore(rulesFile string, logger logging.Logger) *RuleStore {
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &RuleStore{RulesFile: rulesFile, logger: logger}
}

// FindConfigFile looks for a configuration file in standard locations.
func (s *RuleStore) FindConfigFile(filename string) (string, error) {
	if filepath.IsAbs(filename) {
		if _, err := os.Stat(filename); err == nil {
			return filename, nil
		}
		return "", os.ErrNotExist
	}

	locations := []string{
		filename,
		filepath.Join("config", filename),
	}

	if homeDir, err := os.UserHomeDir(); err == nil {
		locations = append(locations,
			filepath.Join(homeDir, ".config", "expense-tracker", filename))
	}

	for _, location := range locations {
		if _, err := os.Stat(location); err == nil {
			return location, nil
		}
	}
	return "", os.ErrNotExist
}

// LoadRules loads the rule table from the YAML file. A missing file is not
// an error: the built-in default table is returned so the classifier always
// has rules to work with. A present but malformed or invalid file is an
// error, so a broken deployment fails loudly instead of silently
// classifying everything as Other.
func (s *RuleStore) LoadRules() ([]models.CategoryRule, error) {
	filename := s.RulesFile
	if filename == "" {
		filename = "rules.yaml"
	}

	filePath, err := s.FindConfigFile(filename)
	if err != nil {
		if os.IsNotExist(err) {
			s.logger.WithField(logging.FieldFile, filename).
				Debug("Rules file not found, using built-in rule table")
			return categorizer.DefaultRules(), nil
		}
		return nil, fmt.Errorf("error resolving rules file: %w", err)
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("error reading rules file: %w", err)
	}

	var config models.RulesConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("error parsing rules file %s: %w", filePath, err)
	}
	if len(config.Rules) == 0 {
		return nil, fmt.Errorf("rules file %s contains no rules", filePath)
	}
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid rules file %s: %w", filePath, err)
	}

	s.logger.WithFields(
		logging.Field{Key: logging.FieldFile, Value: filePath},
		logging.Field{Key: logging.FieldCount, Value: len(config.Rules)},
	).Debug("Loaded category rules")
	return config.Rules, nil
}

// SaveRules writes a rule table to the YAML file, creating the parent
// directory if needed. Used by tooling to materialize the built-in table
// for hand editing.
func (s *RuleStore) SaveRules(rules []models.CategoryRule) error {
	filename := s.RulesFile
	if filename == "" {
		filename = "rules.yaml"
	}

	config := models.RulesConfig{Rules: rules}
	if err := config.Validate(); err != nil {
		return fmt.Errorf("refusing to save invalid rules: %w", err)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("error marshaling rules: %w", err)
	}

	if dir := filepath.Dir(filename); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return fmt.Errorf("error creating directory: %w", err)
		}
	}
	if err := os.WriteFile(filename, data, 0o644); err != nil {
		return fmt.Errorf("error writing rules file: %w", err)
	}

	s.logger.WithFields(
		logging.Field{Key: logging.FieldFile, Value: filename},
		logging.Field{Key: logging.FieldCount, Value: len(rules)},
	).Debug("Saved category rules")
	return nil
}

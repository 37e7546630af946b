// Package container provides dependency injection for the expense-tracker
// application. It centralizes the creation and wiring of all application
// dependencies, making them explicit and testable.
package container

import (
	"fmt"
	"time"

	"fjacquet/expense-tracker/internal/categorizer"
	"fjacquet/expense-tracker/internal/config"
	"fjacquet/expense-tracker/internal/expenseparser"
	"fjacquet/expense-tracker/internal/logging"
	"fjacquet/expense-tracker/internal/storage"
	"fjacquet/expense-tracker/internal/store"
)

// Container holds all application dependencies and provides methods to
// access them. It acts as the central registry for dependency injection,
// ensuring that all components receive their required dependencies through
// constructors.
//
// Container is immutable after creation - all fields are private and can
// only be accessed through getter methods.
type Container struct {
	logger      logging.Logger
	config      *config.Config
	ruleStore   *store.RuleStore
	aiClient    categorizer.AIClient
	fallback    *categorizer.SemanticFallback
	categorizer *categorizer.Categorizer
	interpreter *expenseparser.Interpreter
	storage     *storage.SQLiteStorage
}

// Options controls which optional dependencies the container creates.
type Options struct {
	// SkipStorage leaves the SQLite layer out, for commands that only
	// parse or categorize text.
	SkipStorage bool
}

// NewContainer creates and wires all application dependencies.
func NewContainer(cfg *config.Config) (*Container, error) {
	return NewContainerWithOptions(cfg, Options{})
}

// NewContainerWithOptions creates and wires application dependencies
// according to the given options.
func NewContainerWithOptions(cfg *config.Config, opts Options) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration cannot be nil")
	}

	// Create logger first as it's needed by other components
	logger := config.NewLogger(cfg)

	// Load categorization rules, falling back to the built-in set when
	// no rules file is present
	ruleStore := store.NewRuleStore(cfg.Rules.File, logger)
	rules, err := ruleStore.LoadRules()
	if err != nil {
		return nil, fmt.Errorf("failed to load categorization rules: %w", err)
	}

	cat := categorizer.NewCategorizer(rules, logger)

	// Create AI client and semantic fallback (if enabled)
	var aiClient categorizer.AIClient
	var fallback *categorizer.SemanticFallback
	interpreterOpts := []expenseparser.Option{}
	if cfg.AI.Enabled && cfg.AI.APIKey != "" {
		aiClient = categorizer.NewOpenAIClient(cfg.AI.APIKey, cfg.AI.Model, logger)
		timeout := time.Duration(cfg.AI.TimeoutSeconds) * time.Second
		fallback = categorizer.NewSemanticFallback(aiClient, timeout, logger)
		interpreterOpts = append(interpreterOpts, expenseparser.WithSemanticFallback(fallback))
		logger.Info("AI categorization enabled",
			logging.Field{Key: logging.FieldModel, Value: cfg.AI.Model})
	} else {
		logger.Info("AI categorization disabled")
	}

	interp := expenseparser.NewInterpreter(cat, logger, interpreterOpts...)

	var db *storage.SQLiteStorage
	if !opts.SkipStorage {
		db, err = storage.NewSQLiteStorage(cfg.Database.Path, logger)
		if err != nil {
			return nil, fmt.Errorf("failed to open expense database: %w", err)
		}
	}

	logger.Info("Container initialized successfully",
		logging.Field{Key: "rules_count", Value: len(rules)},
		logging.Field{Key: "ai_enabled", Value: cfg.AI.Enabled})

	return &Container{
		logger:      logger,
		config:      cfg,
		ruleStore:   ruleStore,
		aiClient:    aiClient,
		fallback:    fallback,
		categorizer: cat,
		interpreter: interp,
		storage:     db,
	}, nil
}

// GetLogger returns the container's logger instance.
func (c *Container) GetLogger() logging.Logger {
	return c.logger
}

// GetConfig returns the container's configuration instance.
func (c *Container) GetConfig() *config.Config {
	return c.config
}

// GetRuleStore returns the container's rule store instance.
func (c *Container) GetRuleStore() *store.RuleStore {
	return c.ruleStore
}

// GetCategorizer returns the container's categorizer instance.
func (c *Container) GetCategorizer() *categorizer.Categorizer {
	return c.categorizer
}

// GetInterpreter returns the container's expense interpreter instance.
func (c *Container) GetInterpreter() *expenseparser.Interpreter {
	return c.interpreter
}

// GetStorage returns the container's SQLite storage instance.
// Returns nil if storage was skipped.
func (c *Container) GetStorage() *storage.SQLiteStorage {
	return c.storage
}

// GetAIClient returns the container's AI client instance.
// Returns nil if AI is not enabled.
func (c *Container) GetAIClient() categorizer.AIClient {
	return c.aiClient
}

// Close performs cleanup of container resources.
func (c *Container) Close() error {
	if c.storage != nil {
		if err := c.storage.Close(); err != nil {
			return fmt.Errorf("failed to close expense database: %w", err)
		}
	}
	c.logger.Info("Container closed")
	return nil
}

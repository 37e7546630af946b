// Package expenseparser turns free-form expense text into structured
// expense data. The pipeline extracts an amount, classifies the remaining
// description, derives tags and an optional location, and can consult an
// external semantic classifier when the local rules are inconclusive.
package expenseparser

import (
	"context"
	"fmt"
	"unicode/utf8"

	"fjacquet/expense-tracker/internal/logging"
	"fjacquet/expense-tracker/internal/models"
	"fjacquet/expense-tracker/internal/parsererror"
)

// MaxRawTextLength is the upper bound on accepted raw input, in characters.
const MaxRawTextLength = 1000

// Classifier assigns a category to a cleaned description. Implementations
// must be pure: same description, same category.
type Classifier interface {
	Categorize(description string) string
}

// SemanticClassifier is the optional external fallback consulted when the
// local classifier returns the Other category. Errors returned here are
// absorbed by the interpreter, never surfaced to its caller.
type SemanticClassifier interface {
	Classify(ctx context.Context, description string) (string, error)
	Tags(ctx context.Context, description string) ([]string, error)
}

// Interpreter composes the extraction and classification steps into a
// single operation. It is stateless and safe for concurrent use.
type Interpreter struct {
	classifier Classifier
	fallback   SemanticClassifier
	logger     logging.Logger
}

// Option configures an Interpreter.
type Option func(*Interpreter)

// WithSemanticFallback enables the external semantic classifier. Without
// this option the interpreter runs fully locally.
func WithSemanticFallback(fallback SemanticClassifier) Option {
	return func(i *Interpreter) {
		i.fallback = fallback
	}
}

// NewInterpreter creates an Interpreter over the given classifier.
func NewInterpreter(classifier Classifier, logger logging.Logger, opts ...Option) *Interpreter {
	if logger == nil {
		logger = logging.GetLogger()
	}
	i := &Interpreter{
		classifier: classifier,
		logger:     logger,
	}
	for _, opt := range opts {
		opt(i)
	}
	return i
}

// Interpret derives a ParsedExpense from raw user text. It fails only on
// invalid input (blank or oversized); every downstream step is total, so
// any accepted text maps to some valid result. The context bounds the
// optional external classification call; local work does not block on it.
func (i *Interpreter) Interpret(ctx context.Context, rawText string) (models.ParsedExpense, error) {
	if err := validateRawText(rawText); err != nil {
		return models.ParsedExpense{}, err
	}

	amount, description := ExtractAmount(rawText)
	if description == "" {
		description = models.DefaultDescription
	}

	category := i.classifier.Categorize(description)
	tags := ExtractTags(description)
	location := ExtractLocation(rawText)

	// The semantic fallback runs only when the rules were inconclusive.
	// Every failure keeps the rule-based result; availability beats
	// classification accuracy here.
	if category == models.CategoryOther && i.fallback != nil {
		if fallbackCategory, err := i.fallback.Classify(ctx, description); err != nil {
			i.logger.WithError(err).Debug("Semantic classification failed, keeping rule-based category")
		} else {
			category = fallbackCategory
		}

		if len(tags) == 0 {
			if fallbackTags, err := i.fallback.Tags(ctx, description); err != nil {
				i.logger.WithError(err).Debug("Semantic tag extraction failed, keeping local tags")
			} else {
				tags = fallbackTags
			}
		}
	}

	parsed := models.ParsedExpense{
		Description: description,
		Amount:      amount,
		Category:    category,
		Tags:        tags,
		Location:    location,
	}

	i.logger.WithFields(
		logging.Field{Key: logging.FieldAmount, Value: parsed.Amount.String()},
		logging.Field{Key: logging.FieldCategory, Value: parsed.Category},
	).Debug("Raw text interpreted")
	return parsed, nil
}

// validateRawText rejects blank and oversized input before any parsing
// work happens. Length is measured in characters, not bytes.
func validateRawText(rawText string) error {
	if normalizeSpace(rawText) == "" {
		return parsererror.NewValidationError("rawText", "must not be blank")
	}
	if n := utf8.RuneCountInString(rawText); n > MaxRawTextLength {
		return parsererror.NewValidationError("rawText",
			fmt.Sprintf("length %d exceeds the maximum of %d characters", n, MaxRawTextLength))
	}
	return nil
}

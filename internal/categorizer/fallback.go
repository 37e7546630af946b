package categorizer

import (
	"context"
	"fmt"
	"strings"
	"time"

	"fjacquet/expense-tracker/internal/logging"
	"fjacquet/expense-tracker/internal/models"
	"fjacquet/expense-tracker/internal/parsererror"
)

// maxPromptLength caps the description sent to the AI service.
const maxPromptLength = 500

// maxFallbackTags caps the number of tags accepted from the AI service.
const maxFallbackTags = 5

// DefaultFallbackTimeout bounds a semantic call when no timeout is
// configured.
const DefaultFallbackTimeout = 5 * time.Second

// SemanticFallback wraps an AIClient with the strict contract the
// interpretation pipeline needs: bounded deadline, prompt truncation,
// response validation, single attempt. Its methods return errors rather
// than swallowing them; the orchestrator maps every error variant to
// "keep the rule-based result".
type SemanticFallback struct {
	client  AIClient
	timeout time.Duration
	logger  logging.Logger
}

// NewSemanticFallback creates a SemanticFallback over the given client.
// A non-positive timeout selects DefaultFallbackTimeout.
func NewSemanticFallback(client AIClient, timeout time.Duration, logger logging.Logger) *SemanticFallback {
	if timeout <= 0 {
		timeout = DefaultFallbackTimeout
	}
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &SemanticFallback{client: client, timeout: timeout, logger: logger}
}

// Classify asks the AI service for a category. The response is validated
// case-insensitively against the known category set; anything else is an
// error. The call is bounded by the configured timeout and aborts when the
// parent context is cancelled.
func (f *SemanticFallback) Classify(ctx context.Context, description string) (string, error) {
	description = truncate(strings.TrimSpace(description), maxPromptLength)
	if description == "" {
		return models.CategoryOther, nil
	}

	callCtx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	response, err := f.client.ClassifyExpense(callCtx, description)
	if err != nil {
		return "", &parsererror.AIError{Operation: "classify", Err: err}
	}

	category, ok := models.NormalizeCategory(response)
	if !ok {
		return "", &parsererror.AIError{
			Operation: "classify",
			Err:       fmt.Errorf("response %q is not a known category", response),
		}
	}

	f.logger.WithFields(
		logging.Field{Key: logging.FieldStrategy, Value: "semantic"},
		logging.Field{Key: logging.FieldCategory, Value: category},
	).Debug("Expense categorized by semantic fallback")
	return category, nil
}

// Tags asks the AI service for a comma-separated tag list. Tags are
// lowercased, trimmed, filtered to length > 1 and capped at five. Any
// transport or timeout failure is returned as an error.
func (f *SemanticFallback) Tags(ctx context.Context, description string) ([]string, error) {
	description = truncate(strings.TrimSpace(description), maxPromptLength)
	if description == "" {
		return nil, nil
	}

	callCtx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	response, err := f.client.ExtractTags(callCtx, description)
	if err != nil {
		return nil, &parsererror.AIError{Operation: "extract_tags", Err: err}
	}

	var tags []string
	for _, part := range strings.Split(response, ",") {
		tag := strings.ToLower(strings.TrimSpace(part))
		if len(tag) <= 1 {
			continue
		}
		tags = append(tags, tag)
		if len(tags) == maxFallbackTags {
			break
		}
	}
	return tags, nil
}

func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}

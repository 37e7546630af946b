package categorizer

import "context"

// AIClient defines the interface for AI-based classification services.
// This abstraction keeps the fallback logic testable without external API
// calls and leaves the provider choice open.
type AIClient interface {
	// ClassifyExpense asks the AI service for a single category name for
	// the given description. The raw response text is returned untrimmed
	// of semantics; callers are responsible for validating it.
	ClassifyExpense(ctx context.Context, description string) (string, error)

	// ExtractTags asks the AI service for a comma-separated tag list for
	// the given description.
	ExtractTags(ctx context.Context, description string) (string, error)
}

package categorizer

import (
	"context"
	"fmt"
	"strings"

	"fjacquet/expense-tracker/internal/logging"

	openai "github.com/sashabaranov/go-openai"
)

// DefaultModel is used when no model is configured.
const DefaultModel = openai.GPT3Dot5Turbo

const classifySystemPrompt = `You are an expense categorization assistant. Your task is to categorize expense descriptions into one of these categories:

Categories:
- Food: Restaurants, groceries, dining, beverages, food delivery
- Transport: Uber, taxi, gas, parking, public transport, flights, car maintenance
- Shopping: Clothing, electronics, household items, online purchases, retail
- Entertainment: Movies, concerts, games, subscriptions, bars, leisure activities
- Health: Medical expenses, pharmacy, dental, healthcare, fitness
- Education: Courses, books, training, school fees, learning materials
- Other: Everything else that doesn't fit the above categories

Rules:
1. Respond with ONLY the category name (e.g., "Food", "Transport", etc.)
2. If uncertain, choose the most likely category
3. Be consistent with similar descriptions
4. Consider context clues in the description`

const tagsSystemPrompt = `You are a tag extraction assistant. Extract 2-5 relevant tags from expense descriptions.

Guidelines:
- Extract meaningful, descriptive tags
- Focus on: purpose, context, type, timing, social aspects
- Use single words or short phrases
- Make tags useful for filtering and searching

Rules:
1. Return tags as comma-separated list
2. Use lowercase
3. No special characters
4. 2-5 tags maximum`

// OpenAIClient implements AIClient using the OpenAI chat completion API.
type OpenAIClient struct {
	client *openai.Client
	model  string
	logger logging.Logger
}

// NewOpenAIClient creates an OpenAIClient with the given API key and model.
// An empty model selects DefaultModel.
func NewOpenAIClient(apiKey, model string, logger logging.Logger) *OpenAIClient {
	if model == "" {
		model = DefaultModel
	}
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &OpenAIClient{
		client: openai.NewClient(apiKey),
		model:  model,
		logger: logger,
	}
}

// ClassifyExpense sends a single chat completion request and returns the
// model's raw answer. No retries are performed; the caller decides what a
// failure means.
func (c *OpenAIClient) ClassifyExpense(ctx context.Context, description string) (string, error) {
	return c.complete(ctx, classifySystemPrompt,
		fmt.Sprintf("Categorize this expense: %s", description), 50, 0.1)
}

// ExtractTags sends a single chat completion request and returns the
// model's raw comma-separated tag list.
func (c *OpenAIClient) ExtractTags(ctx context.Context, description string) (string, error) {
	return c.complete(ctx, tagsSystemPrompt,
		fmt.Sprintf("Extract tags from: %s", description), 100, 0.2)
}

func (c *OpenAIClient) complete(ctx context.Context, systemPrompt, userPrompt string, maxTokens int, temperature float32) (string, error) {
	c.logger.WithFields(
		logging.Field{Key: logging.FieldOperation, Value: "chat_completion"},
		logging.Field{Key: logging.FieldModel, Value: c.model},
	).Debug("Calling OpenAI API")

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: userPrompt},
		},
		MaxTokens:   maxTokens,
		Temperature: temperature,
	})
	if err != nil {
		return "", fmt.Errorf("chat completion request: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("chat completion returned no choices")
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

// compile-time interface check
var _ AIClient = (*OpenAIClient)(nil)

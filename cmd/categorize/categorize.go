// Package categorize handles expense categorization commands
package categorize

import (
	"context"
	"fmt"

	"fjacquet/expense-tracker/cmd/root"
	"fjacquet/expense-tracker/internal/container"
	"fjacquet/expense-tracker/internal/logging"
	"fjacquet/expense-tracker/internal/models"

	"github.com/spf13/cobra"
)

var (
	description string
	useAI       bool
)

// Cmd represents the categorize command
var Cmd = &cobra.Command{
	Use:   "categorize",
	Short: "Categorize an expense description",
	Long: `Categorize an expense description using the weighted keyword rules.
With --ai the semantic fallback is consulted when the rules return Other
(requires ai.enabled and an API key).`,
	RunE: categorizeFunc,
}

func init() {
	Cmd.Flags().StringVarP(&description, "description", "d", "", "Expense description to categorize")
	Cmd.Flags().BoolVar(&useAI, "ai", false, "Consult the semantic fallback when rules return Other")
	_ = Cmd.MarkFlagRequired("description")
}

func categorizeFunc(cmd *cobra.Command, args []string) error {
	c, err := root.NewContainer(container.Options{SkipStorage: true})
	if err != nil {
		return err
	}
	defer func() {
		if err := c.Close(); err != nil {
			root.Log.WithError(err).Warn("Failed to close container")
		}
	}()

	category := c.GetCategorizer().Categorize(description)

	if category == models.CategoryOther && useAI {
		parsed, err := c.GetInterpreter().Interpret(context.Background(), description)
		if err != nil {
			return fmt.Errorf("failed to categorize with semantic fallback: %w", err)
		}
		category = parsed.Category
	}

	root.Log.Info("Description categorized",
		logging.Field{Key: logging.FieldCategory, Value: category})
	cmd.Println(category)
	return nil
}

// Package parse handles one-shot interpretation of expense text
package parse

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"fjacquet/expense-tracker/cmd/root"
	"fjacquet/expense-tracker/internal/container"
	"fjacquet/expense-tracker/internal/logging"
	"fjacquet/expense-tracker/internal/models"

	"github.com/spf13/cobra"
)

var save bool

// Cmd represents the parse command
var Cmd = &cobra.Command{
	Use:   "parse [text]",
	Short: "Interpret free-form expense text",
	Long: `Interpret free-form expense text into a structured expense:
amount, description, category, tags and location. With --save the
result is stored in the expense database.`,
	Args: cobra.MinimumNArgs(1),
	RunE: parseFunc,
}

func init() {
	Cmd.Flags().BoolVarP(&save, "save", "s", false, "Store the interpreted expense")
}

func parseFunc(cmd *cobra.Command, args []string) error {
	c, err := root.NewContainer(container.Options{SkipStorage: !save})
	if err != nil {
		return err
	}
	defer func() {
		if err := c.Close(); err != nil {
			root.Log.WithError(err).Warn("Failed to close container")
		}
	}()

	rawText := strings.Join(args, " ")
	parsed, err := c.GetInterpreter().Interpret(context.Background(), rawText)
	if err != nil {
		return fmt.Errorf("failed to interpret expense text: %w", err)
	}

	if save {
		expense := &models.Expense{
			Description: parsed.Description,
			Amount:      parsed.Amount,
			Category:    parsed.Category,
			RawText:     rawText,
			Tags:        parsed.Tags,
			Location:    parsed.Location,
		}
		id, err := c.GetStorage().CreateExpense(context.Background(), expense)
		if err != nil {
			return fmt.Errorf("failed to store expense: %w", err)
		}
		root.Log.Info("Expense stored",
			logging.Field{Key: logging.FieldExpenseID, Value: id})
	}

	out, err := json.MarshalIndent(parsed, "", "  ")
	if err != nil {
		return err
	}
	cmd.Println(string(out))
	return nil
}

// Package export dumps stored expenses to CSV
package export

import (
	"context"
	"fmt"
	"time"

	"fjacquet/expense-tracker/cmd/root"
	"fjacquet/expense-tracker/internal/common"
	"fjacquet/expense-tracker/internal/container"
	"fjacquet/expense-tracker/internal/models"
	"fjacquet/expense-tracker/internal/storage"

	"github.com/spf13/cobra"
)

var (
	output   string
	category string
	fromDate string
	toDate   string
)

// Cmd represents the export command
var Cmd = &cobra.Command{
	Use:   "export",
	Short: "Export stored expenses to a CSV file",
	RunE:  exportFunc,
}

func init() {
	Cmd.Flags().StringVarP(&output, "output", "o", "expenses.csv", "Output CSV file")
	Cmd.Flags().StringVarP(&category, "category", "c", "", "Only export this category")
	Cmd.Flags().StringVar(&fromDate, "from", "", "Only export expenses on or after this date (YYYY-MM-DD)")
	Cmd.Flags().StringVar(&toDate, "to", "", "Only export expenses on or before this date (YYYY-MM-DD)")
}

func exportFunc(cmd *cobra.Command, args []string) error {
	c, err := root.NewContainer(container.Options{})
	if err != nil {
		return err
	}
	defer func() {
		if err := c.Close(); err != nil {
			root.Log.WithError(err).Warn("Failed to close container")
		}
	}()

	filter := storage.ExpenseFilter{}
	if category != "" {
		normalized, ok := models.NormalizeCategory(category)
		if !ok {
			return fmt.Errorf("unknown category: %s", category)
		}
		filter.Category = normalized
	}
	if filter.From, err = parseDate(fromDate); err != nil {
		return err
	}
	if filter.To, err = parseDate(toDate); err != nil {
		return err
	}

	expenses, err := c.GetStorage().ListExpenses(context.Background(), filter)
	if err != nil {
		return fmt.Errorf("failed to list expenses: %w", err)
	}
	if expenses == nil {
		expenses = []models.Expense{}
	}

	if err := common.WriteExpensesToCSV(expenses, output, root.Log); err != nil {
		return fmt.Errorf("failed to export expenses: %w", err)
	}
	cmd.Printf("Exported %d expenses to %s\n", len(expenses), output)
	return nil
}

func parseDate(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", value)
	}
	return &t, nil
}

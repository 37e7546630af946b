// Package common provides shared CSV functionality.
package common

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"fjacquet/expense-tracker/internal/logging"
	"fjacquet/expense-tracker/internal/models"

	"github.com/gocarina/gocsv"
)

// Delimiter is the global CSV delimiter, configurable via environment variable.
var Delimiter rune = ','

func init() {
	if val := os.Getenv("CSV_DELIMITER"); val != "" {
		SetDelimiter([]rune(val)[0])
	}
}

// SetDelimiter allows setting the delimiter for CSV output.
func SetDelimiter(delim rune) {
	Delimiter = delim
	gocsv.TagSeparator = fmt.Sprintf("%c", delim)
}

// csvExpense mirrors models.Expense column by column. The amount is a
// pre-rendered string because decimal's text marshaler trims trailing
// zeros; exported amounts always carry two decimal places.
type csvExpense struct {
	ID            int64     `csv:"id"`
	Description   string    `csv:"description"`
	Amount        string    `csv:"amount"`
	Category      string    `csv:"category"`
	Subcategory   string    `csv:"subcategory"`
	Date          time.Time `csv:"date"`
	RawText       string    `csv:"raw_text"`
	Notes         string    `csv:"notes"`
	Location      string    `csv:"location"`
	PaymentMethod string    `csv:"payment_method"`
	IsRecurring   bool      `csv:"is_recurring"`
	CreatedAt     time.Time `csv:"created_at"`
	UpdatedAt     time.Time `csv:"updated_at"`
}

func newCSVExpense(e models.Expense) csvExpense {
	return csvExpense{
		ID:            e.ID,
		Description:   e.Description,
		Amount:        e.Amount.StringFixed(2),
		Category:      e.Category,
		Subcategory:   e.Subcategory,
		Date:          e.Date,
		RawText:       e.RawText,
		Notes:         e.Notes,
		Location:      e.Location,
		PaymentMethod: e.PaymentMethod,
		IsRecurring:   e.IsRecurring,
		CreatedAt:     e.CreatedAt,
		UpdatedAt:     e.UpdatedAt,
	}
}

// WriteExpensesToCSV writes expenses to a CSV file in a standardized format.
func WriteExpensesToCSV(expenses []models.Expense, csvFile string, log logging.Logger) error {
	if expenses == nil {
		return fmt.Errorf("cannot write nil expenses to CSV")
	}
	if log == nil {
		log = logging.GetLogger()
	}

	log.Info("Writing expenses to CSV file",
		logging.Field{Key: logging.FieldFile, Value: csvFile},
		logging.Field{Key: logging.FieldCount, Value: len(expenses)})

	dir := filepath.Dir(csvFile)
	if err := os.MkdirAll(dir, 0750); err != nil {
		log.WithError(err).Error("Failed to create directory")
		return fmt.Errorf("error creating directory: %w", err)
	}

	file, err := os.Create(csvFile)
	if err != nil {
		log.WithError(err).Error("Failed to create CSV file")
		return fmt.Errorf("error creating CSV file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			log.WithError(err).Warn("Failed to close file")
		}
	}()

	rows := make([]csvExpense, 0, len(expenses))
	for _, e := range expenses {
		rows = append(rows, newCSVExpense(e))
	}

	csvWriter := csv.NewWriter(file)
	csvWriter.Comma = Delimiter

	if err := gocsv.MarshalCSV(rows, gocsv.NewSafeCSVWriter(csvWriter)); err != nil {
		log.WithError(err).Error("Failed to marshal expenses to CSV")
		return fmt.Errorf("error writing CSV data: %w", err)
	}

	log.Info("Successfully wrote expenses to CSV file",
		logging.Field{Key: logging.FieldFile, Value: csvFile},
		logging.Field{Key: logging.FieldCount, Value: len(expenses)})
	return nil
}

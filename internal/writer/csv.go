// Package writer renders a parsed statement as CSV for download or
// spreadsheet import.
package writer

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/cardlens/statement-parser/internal/models"
)

// CSVWriter writes a StatementResult in CSV form: optional summary rows
// followed by one row per transaction.
type CSVWriter struct {
	IncludeSummary bool
}

// WriteToFile writes the statement to a CSV file at the given path.
func (w *CSVWriter) WriteToFile(path string, res *models.StatementResult) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file %q: %w", path, err)
	}
	defer f.Close()

	return w.Write(f, res)
}

// Write writes the statement in CSV format to the given writer.
func (w *CSVWriter) Write(out io.Writer, res *models.StatementResult) error {
	writer := csv.NewWriter(out)
	defer writer.Flush()

	if w.IncludeSummary {
		summary := [][2]string{
			{"# Issuer", res.Issuer},
			{"# Card Number", res.CardNumber},
			{"# Billing Cycle", res.BillingCycle},
			{"# Due Date", res.DueDate},
			{"# Total Balance", res.TotalBalance},
		}
		for _, row := range summary {
			if err := writer.Write(row[:]); err != nil {
				return fmt.Errorf("failed to write CSV summary: %w", err)
			}
		}
	}

	header := []string{"Date", "Description", "Amount", "Signed Amount"}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, txn := range res.Transactions {
		row := []string{
			txn.Date,
			txn.Description,
			txn.Amount,
			strconv.FormatFloat(txn.SignedAmount, 'f', 2, 64),
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	return writer.Error()
}

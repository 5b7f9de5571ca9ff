// Package export writes ledger data to external formats: transaction CSV
// files and per-month YAML summary reports.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"
	"github.com/sirupsen/logrus"

	"allowance/internal/config"
	"allowance/internal/dateutils"
	"allowance/internal/models"
)

var log = config.Logger

// Delimiter is the CSV output delimiter, configurable via config or environment.
var Delimiter rune = ','

// SetDelimiter allows setting the delimiter for CSV output
func SetDelimiter(delim rune) {
	Delimiter = delim
}

// SetLogger allows setting a configured logger
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// transactionRow maps a transaction onto CSV columns.
type transactionRow struct {
	Date        string `csv:"Date"`
	Category    string `csv:"Category"`
	Kind        string `csv:"Type"`
	PaymentMode string `csv:"Payment Mode"`
	Amount      string `csv:"Amount"`
}

// WriteTransactionsCSV writes transactions to a CSV file. All exports go
// through this function to keep the column layout consistent.
func WriteTransactionsCSV(transactions []models.Transaction, csvFile string) error {
	if transactions == nil {
		return fmt.Errorf("cannot write nil transactions to CSV")
	}

	log.WithFields(logrus.Fields{
		"file":  csvFile,
		"count": len(transactions),
	}).Info("Writing transactions to CSV file")

	dir := filepath.Dir(csvFile)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return fmt.Errorf("error creating directory: %w", err)
	}

	file, err := os.Create(csvFile)
	if err != nil {
		return fmt.Errorf("error creating CSV file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			log.WithError(err).Warn("Failed to close file")
		}
	}()

	rows := make([]transactionRow, 0, len(transactions))
	for _, tx := range transactions {
		rows = append(rows, transactionRow{
			Date:        dateutils.ToISODate(tx.Date.Time),
			Category:    tx.Category,
			Kind:        string(tx.Kind),
			PaymentMode: string(tx.PaymentMode),
			Amount:      tx.Amount.StringFixed(2),
		})
	}

	gocsv.SetCSVWriter(func(out io.Writer) *gocsv.SafeCSVWriter {
		writer := csv.NewWriter(out)
		writer.Comma = Delimiter
		return gocsv.NewSafeCSVWriter(writer)
	})

	if err := gocsv.MarshalFile(&rows, file); err != nil {
		return fmt.Errorf("error writing CSV file: %w", err)
	}

	return nil
}

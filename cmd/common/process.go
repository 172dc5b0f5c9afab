// Package common contains shared functionality for command handlers
package common

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"fjacquet/bank-insights/internal/logging"
	"fjacquet/bank-insights/internal/models"

	"github.com/gocarina/gocsv"
	"github.com/shopspring/decimal"
)

// LoadTransactions reads a transaction export file. The format is chosen by
// extension: .json for a JSON array, anything else is parsed as CSV with
// headers id,type,amount,description,created_at[,direction].
//
// Malformed rows fail fast with a descriptive error; the analytics engines
// assume validated input.
func LoadTransactions(inputFile string, log logging.Logger) ([]models.Transaction, error) {
	file, err := os.Open(inputFile)
	if err != nil {
		return nil, fmt.Errorf("error opening input file %s: %w", inputFile, err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil {
			log.WithError(cerr).Warn("Failed to close input file")
		}
	}()

	var transactions []models.Transaction
	if strings.EqualFold(filepath.Ext(inputFile), ".json") {
		if err := json.NewDecoder(file).Decode(&transactions); err != nil {
			return nil, fmt.Errorf("error parsing JSON transactions from %s: %w", inputFile, err)
		}
	} else {
		if err := gocsv.UnmarshalFile(file, &transactions); err != nil {
			return nil, fmt.Errorf("error parsing CSV transactions from %s: %w", inputFile, err)
		}
	}

	for i := range transactions {
		if err := transactions[i].Validate(); err != nil {
			return nil, fmt.Errorf("invalid input row %d: %w", i+1, err)
		}
	}

	log.WithFields(
		logging.Field{Key: logging.FieldInputFile, Value: inputFile},
		logging.Field{Key: logging.FieldCount, Value: len(transactions)},
	).Debug("Loaded transactions")

	return transactions, nil
}

// PrepareForAnalysis applies the caller-side contract of the analytics
// engines: relabel incoming transfers as deposits, order newest-first, and
// cap the list length. Every engine receives the same prepared slice.
func PrepareForAnalysis(transactions []models.Transaction, maxTransactions int) []models.Transaction {
	prepared := models.NormalizeDirection(transactions)
	models.SortNewestFirst(prepared)
	return models.Cap(prepared, maxTransactions)
}

// ParseBalance converts a CLI balance flag into a decimal amount.
func ParseBalance(balance string) (decimal.Decimal, error) {
	if balance == "" {
		return decimal.Zero, nil
	}
	value, err := decimal.NewFromString(balance)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid balance %q: %w", balance, err)
	}
	return value, nil
}

// WriteReport writes rendered report bytes to the output file, or to stdout
// when no output file is given.
func WriteReport(data []byte, outputFile string, log logging.Logger) error {
	if outputFile == "" {
		fmt.Println(string(data))
		return nil
	}
	if err := os.WriteFile(outputFile, data, models.PermissionReportFile); err != nil {
		return fmt.Errorf("error writing report to %s: %w", outputFile, err)
	}
	log.WithField(logging.FieldOutputFile, outputFile).Info("Report written")
	return nil
}

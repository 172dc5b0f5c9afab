// Package report renders analytics reports for output.
package report

import (
	"encoding/json"
	"fmt"

	"fjacquet/bank-insights/internal/logging"
	"fjacquet/bank-insights/internal/models"

	"github.com/gocarina/gocsv"
)

// Generator renders reports as JSON, or as CSV for the categorization
// distribution.
type Generator struct {
	logger logging.Logger
	indent bool
}

// NewGenerator creates a report Generator. With indent set, JSON output is
// pretty-printed.
func NewGenerator(logger logging.Logger, indent bool) *Generator {
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &Generator{
		logger: logger,
		indent: indent,
	}
}

// RenderJSON marshals any report structure to JSON.
func (g *Generator) RenderJSON(report interface{}) ([]byte, error) {
	var (
		data []byte
		err  error
	)
	if g.indent {
		data, err = json.MarshalIndent(report, "", "  ")
	} else {
		data, err = json.Marshal(report)
	}
	if err != nil {
		g.logger.WithError(err).Error("Failed to marshal JSON report")
		return nil, fmt.Errorf("failed to marshal JSON report: %w", err)
	}
	return data, nil
}

// RenderDistributionCSV renders the category distribution of a
// categorization report as CSV.
func (g *Generator) RenderDistributionCSV(report *models.CategorizationReport) ([]byte, error) {
	rows := make([]*models.CategoryDistribution, len(report.Distribution))
	for i := range report.Distribution {
		rows[i] = &report.Distribution[i]
	}
	out, err := gocsv.MarshalString(&rows)
	if err != nil {
		g.logger.WithError(err).Error("Failed to marshal distribution CSV")
		return nil, fmt.Errorf("failed to marshal distribution CSV: %w", err)
	}
	return []byte(out), nil
}

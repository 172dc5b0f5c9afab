// Package insights composes the three analytics engines over a single
// transaction fetch. It is a composition point only: the engines share no
// state and never call each other.
package insights

import (
	"time"

	"fjacquet/bank-insights/internal/categorizer"
	"fjacquet/bank-insights/internal/fraud"
	"fjacquet/bank-insights/internal/logging"
	"fjacquet/bank-insights/internal/models"
	"fjacquet/bank-insights/internal/predictor"

	"github.com/google/uuid"
)

// Generator runs categorization, fraud analysis, and spending prediction
// over the same transaction slice and merges the reports.
type Generator struct {
	categorizer *categorizer.Categorizer
	detector    *fraud.Detector
	predictor   *predictor.Predictor
	logger      logging.Logger
	now         func() time.Time
}

// NewGenerator wires the three engines into one report generator.
func NewGenerator(cat *categorizer.Categorizer, det *fraud.Detector, pred *predictor.Predictor, logger logging.Logger) *Generator {
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &Generator{
		categorizer: cat,
		detector:    det,
		predictor:   pred,
		logger:      logger,
		now:         time.Now,
	}
}

// Generate produces the combined insights report.
//
// The caller contract is the union of the engines' contracts: transactions
// ordered newest-first (fraud history windowing) and transfer direction
// already normalized (income/expense split). Generate does not re-sort or
// relabel the input.
func (g *Generator) Generate(transactions []models.Transaction, account models.Account) *models.InsightsReport {
	report := &models.InsightsReport{
		ReportID:       uuid.New().String(),
		Categorization: g.categorizer.CategorizeAll(transactions),
		FraudAnalysis:  g.detector.AnalyzeAccount(transactions, account),
		Predictions:    g.predictor.Predict(transactions, account),
		GeneratedAt:    g.now(),
	}

	g.logger.WithFields(
		logging.Field{Key: logging.FieldCount, Value: len(transactions)},
		logging.Field{Key: logging.FieldRiskLevel, Value: report.FraudAnalysis.OverallRisk},
	).Info("Insights report generated")

	return report
}

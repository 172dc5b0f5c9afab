package insights

import (
	"testing"
	"time"

	"fjacquet/bank-insights/internal/categorizer"
	"fjacquet/bank-insights/internal/fraud"
	"fjacquet/bank-insights/internal/logging"
	"fjacquet/bank-insights/internal/models"
	"fjacquet/bank-insights/internal/predictor"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGenerator(t *testing.T) *Generator {
	t.Helper()
	logger := &logging.MockLogger{}
	cat, err := categorizer.New(nil, logger)
	require.NoError(t, err)
	det := fraud.NewDetector(logger)
	pred := predictor.New(logger, predictor.WithClock(func() time.Time {
		return time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	}))
	return NewGenerator(cat, det, pred, logger)
}

func insightTxn(id, txnType string, amount int64, description string, at time.Time) models.Transaction {
	return models.Transaction{
		ID:          id,
		Type:        txnType,
		Amount:      decimal.NewFromInt(amount),
		Description: description,
		CreatedAt:   at,
	}
}

func TestGenerateCombinesAllThreeReports(t *testing.T) {
	g := newTestGenerator(t)
	base := time.Date(2025, 6, 14, 10, 0, 0, 0, time.UTC)

	transactions := []models.Transaction{
		insightTxn("t1", models.TypeWithdraw, 450, "dinner at a restaurant", base),
		insightTxn("t2", models.TypeWithdraw, 60, "uber ride", base.AddDate(0, 0, -1)),
		insightTxn("t3", models.TypeDeposit, 5000, "monthly salary", base.AddDate(0, 0, -2)),
	}
	account := models.Account{AccountNumber: "ACC-1", Balance: decimal.NewFromInt(10000)}

	report := g.Generate(transactions, account)

	require.NotNil(t, report.Categorization)
	require.NotNil(t, report.FraudAnalysis)
	require.NotNil(t, report.Predictions)
	assert.False(t, report.GeneratedAt.IsZero())

	_, err := uuid.Parse(report.ReportID)
	assert.NoError(t, err)

	assert.Equal(t, 3, report.Categorization.TotalCategorized)
	assert.Equal(t, 3, report.FraudAnalysis.TotalAnalyzed)
	assert.True(t, report.Predictions.HasEnoughData)
}

func TestGenerateEmptyInput(t *testing.T) {
	g := newTestGenerator(t)
	account := models.Account{AccountNumber: "ACC-1", Balance: decimal.Zero}

	report := g.Generate(nil, account)

	assert.Equal(t, 0, report.Categorization.TotalCategorized)
	assert.Empty(t, report.Categorization.Distribution)
	assert.Equal(t, "No recent activity to analyze.", report.FraudAnalysis.Summary)
	assert.False(t, report.Predictions.HasEnoughData)
}

func TestGenerateUniqueReportIDs(t *testing.T) {
	g := newTestGenerator(t)
	account := models.Account{}

	first := g.Generate(nil, account)
	second := g.Generate(nil, account)

	assert.NotEqual(t, first.ReportID, second.ReportID)
}

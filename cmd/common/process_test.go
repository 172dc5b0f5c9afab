package common

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"fjacquet/bank-insights/internal/logging"
	"fjacquet/bank-insights/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadTransactionsCSV(t *testing.T) {
	path := writeTempFile(t, "transactions.csv", `id,type,amount,description,created_at,direction
t1,WITHDRAW,450.50,dinner at a restaurant,2025-06-14T10:00:00Z,
t2,DEPOSIT,5000,monthly salary,2025-06-01T09:00:00Z,
t3,TRANSFER,200,rent share,2025-06-10T08:00:00Z,in
`)

	transactions, err := LoadTransactions(path, &logging.MockLogger{})
	require.NoError(t, err)
	require.Len(t, transactions, 3)

	assert.Equal(t, "t1", transactions[0].ID)
	assert.Equal(t, models.TypeWithdraw, transactions[0].Type)
	assert.True(t, transactions[0].Amount.Equal(decimal.NewFromFloat(450.50)))
	assert.Equal(t, "dinner at a restaurant", transactions[0].Description)
	assert.Equal(t, time.Date(2025, 6, 14, 10, 0, 0, 0, time.UTC), transactions[0].CreatedAt.UTC())
	assert.Equal(t, models.DirectionIncoming, transactions[2].Direction)
}

func TestLoadTransactionsJSON(t *testing.T) {
	path := writeTempFile(t, "transactions.json", `[
  {"id": "t1", "type": "DEPOSIT", "amount": "5000", "description": "salary", "createdAt": "2025-06-01T09:00:00Z"},
  {"id": "t2", "type": "WITHDRAW", "amount": "120.5", "description": "groceries", "createdAt": "2025-06-02T18:30:00Z"}
]`)

	transactions, err := LoadTransactions(path, &logging.MockLogger{})
	require.NoError(t, err)
	require.Len(t, transactions, 2)
	assert.Equal(t, models.TypeDeposit, transactions[0].Type)
	assert.True(t, transactions[1].Amount.Equal(decimal.NewFromFloat(120.5)))
}

func TestLoadTransactionsMissingFile(t *testing.T) {
	_, err := LoadTransactions(filepath.Join(t.TempDir(), "nope.csv"), &logging.MockLogger{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error opening input file")
}

func TestLoadTransactionsInvalidRow(t *testing.T) {
	testCases := []struct {
		name    string
		content string
		wantErr string
	}{
		{
			"UnknownType",
			"id,type,amount,description,created_at\nt1,REFUND,100,x,2025-06-14T10:00:00Z\n",
			"unknown type",
		},
		{
			"NegativeAmount",
			"id,type,amount,description,created_at\nt1,WITHDRAW,-100,x,2025-06-14T10:00:00Z\n",
			"amount must be positive",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			path := writeTempFile(t, "transactions.csv", tc.content)
			_, err := LoadTransactions(path, &logging.MockLogger{})
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}

func TestPrepareForAnalysis(t *testing.T) {
	base := time.Date(2025, 6, 14, 10, 0, 0, 0, time.UTC)
	transactions := []models.Transaction{
		{ID: "old", Type: models.TypeWithdraw, Amount: decimal.NewFromInt(10), CreatedAt: base.AddDate(0, 0, -2)},
		{ID: "incoming", Type: models.TypeTransfer, Direction: models.DirectionIncoming, Amount: decimal.NewFromInt(20), CreatedAt: base},
		{ID: "mid", Type: models.TypeWithdraw, Amount: decimal.NewFromInt(30), CreatedAt: base.AddDate(0, 0, -1)},
	}

	prepared := PrepareForAnalysis(transactions, 2)

	require.Len(t, prepared, 2)
	assert.Equal(t, "incoming", prepared[0].ID)
	assert.Equal(t, models.TypeDeposit, prepared[0].Type)
	assert.Equal(t, "mid", prepared[1].ID)

	// The source slice keeps its original transfer labeling.
	assert.Equal(t, models.TypeTransfer, transactions[1].Type)
}

func TestPrepareForAnalysisNoCap(t *testing.T) {
	base := time.Date(2025, 6, 14, 10, 0, 0, 0, time.UTC)
	transactions := []models.Transaction{
		{ID: "t1", Type: models.TypeWithdraw, Amount: decimal.NewFromInt(10), CreatedAt: base},
		{ID: "t2", Type: models.TypeWithdraw, Amount: decimal.NewFromInt(10), CreatedAt: base},
	}

	assert.Len(t, PrepareForAnalysis(transactions, 0), 2)
}

func TestParseBalance(t *testing.T) {
	value, err := ParseBalance("")
	require.NoError(t, err)
	assert.True(t, value.IsZero())

	value, err = ParseBalance("1234.56")
	require.NoError(t, err)
	assert.True(t, value.Equal(decimal.NewFromFloat(1234.56)))

	_, err = ParseBalance("not-a-number")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid balance")
}

func TestWriteReportToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.json")
	logger := &logging.MockLogger{}

	require.NoError(t, WriteReport([]byte(`{"ok":true}`), path, logger))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, `{"ok":true}`, string(data))
	assert.True(t, logger.HasEntry("INFO", "Report written"))
}

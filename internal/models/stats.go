package models

import "github.com/shopspring/decimal"

// AccountStats summarizes money in and out of an account over a
// transaction list. Used as lightweight context for surfaces that do not
// need a full analytics report.
type AccountStats struct {
	TotalIncome  decimal.Decimal `json:"totalIncome"`
	TotalExpense decimal.Decimal `json:"totalExpense"`
}

// SummaryStats totals deposits against everything else. Expects the same
// direction-normalized slice the analytics engines receive.
func SummaryStats(transactions []Transaction) AccountStats {
	stats := AccountStats{
		TotalIncome:  decimal.Zero,
		TotalExpense: decimal.Zero,
	}
	for _, txn := range transactions {
		if txn.Type == TypeDeposit {
			stats.TotalIncome = stats.TotalIncome.Add(txn.Amount)
		} else {
			stats.TotalExpense = stats.TotalExpense.Add(txn.Amount)
		}
	}
	return stats
}

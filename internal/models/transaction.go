// Package models provides the data structures used throughout the application.
package models

import (
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

// Transaction represents a single recorded money movement on an account.
// Amounts are always positive; the Type field carries the direction of the
// movement as stored by the ledger.
type Transaction struct {
	ID          string          `json:"id" csv:"id"`
	Type        string          `json:"type" csv:"type"`
	Amount      decimal.Decimal `json:"amount" csv:"amount"`
	Description string          `json:"description" csv:"description"`
	CreatedAt   time.Time       `json:"createdAt" csv:"created_at"`

	// Direction is only meaningful for transfers in raw ledger exports:
	// "in" when the analyzed account is the recipient, "out" otherwise.
	// It is consumed by NormalizeDirection and never inspected by the
	// analytics engines themselves.
	Direction string `json:"direction,omitempty" csv:"direction"`
}

// IsExpense returns true if the transaction moves money out of the account.
func (t *Transaction) IsExpense() bool {
	return t.Type == TypeWithdraw || t.Type == TypeTransfer
}

// IsIncome returns true if the transaction moves money into the account.
func (t *Transaction) IsIncome() bool {
	return t.Type == TypeDeposit
}

// Validate checks the caller contract for analytics input: a non-empty type,
// a positive amount, and a usable timestamp.
func (t *Transaction) Validate() error {
	switch t.Type {
	case TypeDeposit, TypeWithdraw, TypeTransfer:
	default:
		return fmt.Errorf("transaction %s: unknown type %q", t.ID, t.Type)
	}
	if !t.Amount.IsPositive() {
		return fmt.Errorf("transaction %s: amount must be positive, got %s", t.ID, t.Amount)
	}
	if t.CreatedAt.IsZero() {
		return fmt.Errorf("transaction %s: missing timestamp", t.ID)
	}
	return nil
}

// NormalizeDirection relabels incoming transfers as effective deposits so the
// income/expense split sees them as credits. The input slice is not mutated;
// a normalized copy is returned. All three analytics engines are expected to
// receive the same normalized slice.
func NormalizeDirection(transactions []Transaction) []Transaction {
	normalized := make([]Transaction, len(transactions))
	for i, txn := range transactions {
		if txn.Type == TypeTransfer && txn.Direction == DirectionIncoming {
			txn.Type = TypeDeposit
		}
		normalized[i] = txn
	}
	return normalized
}

// SortNewestFirst sorts transactions in place by timestamp descending.
// The fraud scorer's history windowing depends on this ordering.
func SortNewestFirst(transactions []Transaction) {
	sort.SliceStable(transactions, func(i, j int) bool {
		return transactions[i].CreatedAt.After(transactions[j].CreatedAt)
	})
}

// Cap truncates the list to at most limit entries. A non-positive limit
// leaves the list unchanged.
func Cap(transactions []Transaction, limit int) []Transaction {
	if limit > 0 && len(transactions) > limit {
		return transactions[:limit]
	}
	return transactions
}

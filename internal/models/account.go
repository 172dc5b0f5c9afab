package models

import "github.com/shopspring/decimal"

// Account is the snapshot of the analyzed account supplied by the caller.
// The balance feeds the fraud scorer's withdrawal-ratio signal; the account
// number is display-only.
type Account struct {
	AccountNumber string          `json:"accountNumber"`
	Balance       decimal.Decimal `json:"balance"`
}

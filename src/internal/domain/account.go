package domain

import "github.com/shopspring/decimal"

// Account is the only persisted entity. AccountNumber is the primary key and
// HolderName is fixed at creation; only Balance changes afterwards.
type Account struct {
	AccountNumber string
	HolderName    string
	Balance       decimal.Decimal
}

package domain

import (
	"context"

	"github.com/shopspring/decimal"
)

type AccountRepository interface {
	Create(ctx context.Context, account Account) (Account, error)
	GetByAccountNumber(ctx context.Context, accountNumber string) (Account, error)
	UpdateBalance(ctx context.Context, accountNumber string, balance decimal.Decimal) error
}

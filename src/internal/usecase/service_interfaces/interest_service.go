package service_interfaces

import (
	"context"

	"github.com/api-sage/account-ledger/src/internal/adapter/console/models"
	"github.com/api-sage/account-ledger/src/internal/commons"
	"github.com/shopspring/decimal"
)

type InterestService interface {
	Rate() decimal.Decimal
	CalculateInterest(ctx context.Context, accountNumber string) (commons.Response[models.InterestResponse], error)
}

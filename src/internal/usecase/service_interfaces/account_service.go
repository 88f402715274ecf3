package service_interfaces

import (
	"context"

	"github.com/api-sage/account-ledger/src/internal/adapter/console/models"
	"github.com/api-sage/account-ledger/src/internal/commons"
)

type AccountService interface {
	CreateAccount(ctx context.Context, req models.CreateAccountRequest) (commons.Response[models.AccountResponse], error)
	GetAccount(ctx context.Context, accountNumber string) (commons.Response[models.AccountResponse], error)
	DepositFunds(ctx context.Context, req models.DepositFundsRequest) (commons.Response[models.DepositFundsResponse], error)
	WithdrawFunds(ctx context.Context, req models.WithdrawFundsRequest) (commons.Response[models.WithdrawFundsResponse], error)
}

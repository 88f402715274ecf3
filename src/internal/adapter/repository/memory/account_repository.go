package memory

import (
	"context"

	"github.com/api-sage/account-ledger/src/internal/commons"
	"github.com/api-sage/account-ledger/src/internal/domain"
	"github.com/shopspring/decimal"
)

// AccountRepository keeps accounts in a process-local map. Nothing survives
// the process; it backs the "memory" driver and throwaway sessions.
type AccountRepository struct {
	accounts map[string]domain.Account
}

var _ domain.AccountRepository = (*AccountRepository)(nil)

func NewAccountRepository() *AccountRepository {
	return &AccountRepository{accounts: make(map[string]domain.Account)}
}

func (r *AccountRepository) Create(_ context.Context, account domain.Account) (domain.Account, error) {
	if _, ok := r.accounts[account.AccountNumber]; ok {
		return domain.Account{}, commons.ErrAccountExists
	}

	r.accounts[account.AccountNumber] = account
	return account, nil
}

func (r *AccountRepository) GetByAccountNumber(_ context.Context, accountNumber string) (domain.Account, error) {
	account, ok := r.accounts[accountNumber]
	if !ok {
		return domain.Account{}, commons.ErrRecordNotFound
	}

	return account, nil
}

func (r *AccountRepository) UpdateBalance(_ context.Context, accountNumber string, balance decimal.Decimal) error {
	account, ok := r.accounts[accountNumber]
	if !ok {
		return commons.ErrRecordNotFound
	}

	account.Balance = balance
	r.accounts[accountNumber] = account
	return nil
}

package services

import (
	"context"

	"github.com/api-sage/account-ledger/src/internal/adapter/console/models"
	"github.com/api-sage/account-ledger/src/internal/commons"
	"github.com/api-sage/account-ledger/src/internal/domain"
	"github.com/api-sage/account-ledger/src/internal/logger"
	"github.com/shopspring/decimal"
)

// DefaultInterestRate is the fixed simple-interest rate, in percent.
var DefaultInterestRate = decimal.NewFromInt(7)

var hundred = decimal.NewFromInt(100)

// InterestService reads through the same repository as AccountService and
// never writes. The computed interest is display-only.
type InterestService struct {
	accounts *AccountService
	rate     decimal.Decimal
}

func NewInterestService(accountRepo domain.AccountRepository, rate decimal.Decimal) *InterestService {
	return &InterestService{
		accounts: NewAccountService(accountRepo),
		rate:     rate,
	}
}

func (s *InterestService) Rate() decimal.Decimal {
	return s.rate
}

func (s *InterestService) CalculateInterest(ctx context.Context, accountNumber string) (commons.Response[models.InterestResponse], error) {
	logger.Info("interest service calculate interest request", logger.Fields{
		"accountNumber": accountNumber,
		"rate":          s.rate.String(),
	})

	account, err := s.accounts.lookup(ctx, accountNumber)
	if err != nil {
		return accountErrorResponse[models.InterestResponse](err), err
	}

	response := models.InterestResponse{
		AccountNumber: account.AccountNumber,
		HolderName:    account.HolderName,
		Balance:       account.Balance,
		Rate:          s.rate,
		Interest:      SimpleInterest(account.Balance, s.rate),
	}

	logger.Info("interest service calculate interest success", logger.Fields{
		"accountNumber": response.AccountNumber,
		"interest":      response.Interest.StringFixed(2),
	})

	return commons.SuccessResponse("interest calculated successfully", response), nil
}

// SimpleInterest returns balance*rate/100 rounded to two decimal places.
func SimpleInterest(balance decimal.Decimal, rate decimal.Decimal) decimal.Decimal {
	return balance.Mul(rate).Div(hundred).Round(2)
}

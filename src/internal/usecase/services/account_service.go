package services

import (
	"context"
	"errors"
	"strings"

	"github.com/api-sage/account-ledger/src/internal/adapter/console/models"
	"github.com/api-sage/account-ledger/src/internal/commons"
	"github.com/api-sage/account-ledger/src/internal/domain"
	"github.com/api-sage/account-ledger/src/internal/logger"
)

type AccountService struct {
	accountRepo domain.AccountRepository
}

func NewAccountService(accountRepo domain.AccountRepository) *AccountService {
	return &AccountService{accountRepo: accountRepo}
}

func (s *AccountService) CreateAccount(ctx context.Context, req models.CreateAccountRequest) (commons.Response[models.AccountResponse], error) {
	logger.Info("account service create account request", logger.Fields{
		"payload": logger.SanitizePayload(req),
	})

	if err := req.Validate(); err != nil {
		logger.Error("account service create account validation failed", err, nil)
		return commons.ErrorResponse[models.AccountResponse](commons.ValidationFailed, err.Error()), err
	}

	balance, err := models.ParseAmount(req.InitialDeposit)
	if err != nil {
		return commons.ErrorResponse[models.AccountResponse](commons.ValidationFailed, "initial deposit must be numeric"), err
	}

	account := domain.Account{
		AccountNumber: req.AccountNumber,
		HolderName:    strings.TrimSpace(req.HolderName),
		Balance:       balance,
	}

	created, err := s.accountRepo.Create(ctx, account)
	if err != nil {
		logger.Error("account service create account repository failed", err, logger.Fields{
			"accountNumber": account.AccountNumber,
		})
		if errors.Is(err, commons.ErrAccountExists) {
			return commons.ErrorResponse[models.AccountResponse]("Account number already exists"), err
		}
		return commons.ErrorResponse[models.AccountResponse]("failed to create account", "Unable to create account right now"), err
	}

	response := models.AccountResponse{
		AccountNumber: created.AccountNumber,
		HolderName:    created.HolderName,
		Balance:       created.Balance,
	}

	logger.Info("account service create account success", logger.Fields{
		"accountNumber": response.AccountNumber,
	})

	return commons.SuccessResponse("account created successfully", response), nil
}

func (s *AccountService) GetAccount(ctx context.Context, accountNumber string) (commons.Response[models.AccountResponse], error) {
	logger.Info("account service get account request", logger.Fields{
		"accountNumber": accountNumber,
	})

	account, err := s.lookup(ctx, accountNumber)
	if err != nil {
		return accountErrorResponse[models.AccountResponse](err), err
	}

	response := models.AccountResponse{
		AccountNumber: account.AccountNumber,
		HolderName:    account.HolderName,
		Balance:       account.Balance,
	}

	logger.Info("account service get account success", logger.Fields{
		"accountNumber": response.AccountNumber,
	})

	return commons.SuccessResponse("account fetched successfully", response), nil
}

// DepositFunds reads the balance and writes back balance+amount as two
// separate statements.
func (s *AccountService) DepositFunds(ctx context.Context, req models.DepositFundsRequest) (commons.Response[models.DepositFundsResponse], error) {
	logger.Info("account service deposit funds request", logger.Fields{
		"payload": logger.SanitizePayload(req),
	})

	if err := req.Validate(); err != nil {
		logger.Error("account service deposit funds validation failed", err, nil)
		return commons.ErrorResponse[models.DepositFundsResponse](commons.ValidationFailed, err.Error()), err
	}

	amount, err := models.ParseAmount(req.Amount)
	if err != nil {
		return commons.ErrorResponse[models.DepositFundsResponse](commons.ValidationFailed, "amount must be numeric"), err
	}

	account, err := s.lookup(ctx, req.AccountNumber)
	if err != nil {
		return accountErrorResponse[models.DepositFundsResponse](err), err
	}

	newBalance := account.Balance.Add(amount)
	if !models.Storable(newBalance) {
		logger.Info("account service deposit funds balance overflow", logger.Fields{
			"accountNumber": account.AccountNumber,
		})
		return commons.ErrorResponse[models.DepositFundsResponse](commons.ValidationFailed, commons.ErrAmountTooLarge.Error()), commons.ErrAmountTooLarge
	}
	if err := s.accountRepo.UpdateBalance(ctx, account.AccountNumber, newBalance); err != nil {
		logger.Error("account service deposit funds failed", err, logger.Fields{
			"accountNumber": account.AccountNumber,
			"amount":        amount.StringFixed(2),
		})
		return accountErrorResponse[models.DepositFundsResponse](err), err
	}

	response := models.DepositFundsResponse{
		AccountNumber:   account.AccountNumber,
		DepositedAmount: amount,
		Balance:         newBalance,
	}

	logger.Info("account service deposit funds success", logger.Fields{
		"accountNumber":   response.AccountNumber,
		"depositedAmount": response.DepositedAmount.StringFixed(2),
		"balance":         response.Balance.StringFixed(2),
	})

	return commons.SuccessResponse("funds deposited successfully", response), nil
}

func (s *AccountService) WithdrawFunds(ctx context.Context, req models.WithdrawFundsRequest) (commons.Response[models.WithdrawFundsResponse], error) {
	logger.Info("account service withdraw funds request", logger.Fields{
		"payload": logger.SanitizePayload(req),
	})

	if err := req.Validate(); err != nil {
		logger.Error("account service withdraw funds validation failed", err, nil)
		return commons.ErrorResponse[models.WithdrawFundsResponse](commons.ValidationFailed, err.Error()), err
	}

	amount, err := models.ParseAmount(req.Amount)
	if err != nil {
		return commons.ErrorResponse[models.WithdrawFundsResponse](commons.ValidationFailed, "amount must be numeric"), err
	}

	account, err := s.lookup(ctx, req.AccountNumber)
	if err != nil {
		return accountErrorResponse[models.WithdrawFundsResponse](err), err
	}

	if amount.GreaterThan(account.Balance) {
		logger.Info("account service withdraw funds insufficient balance", logger.Fields{
			"accountNumber": account.AccountNumber,
			"amount":        amount.StringFixed(2),
		})
		return commons.ErrorResponse[models.WithdrawFundsResponse]("Insufficient balance"), commons.ErrInsufficientBalance
	}

	newBalance := account.Balance.Sub(amount)
	if err := s.accountRepo.UpdateBalance(ctx, account.AccountNumber, newBalance); err != nil {
		logger.Error("account service withdraw funds failed", err, logger.Fields{
			"accountNumber": account.AccountNumber,
			"amount":        amount.StringFixed(2),
		})
		return accountErrorResponse[models.WithdrawFundsResponse](err), err
	}

	response := models.WithdrawFundsResponse{
		AccountNumber:   account.AccountNumber,
		WithdrawnAmount: amount,
		Balance:         newBalance,
	}

	logger.Info("account service withdraw funds success", logger.Fields{
		"accountNumber":   response.AccountNumber,
		"withdrawnAmount": response.WithdrawnAmount.StringFixed(2),
		"balance":         response.Balance.StringFixed(2),
	})

	return commons.SuccessResponse("funds withdrawn successfully", response), nil
}

// lookup matches the account number exactly as typed, surrounding spaces
// included, so keys written by earlier ledgers stay reachable.
func (s *AccountService) lookup(ctx context.Context, accountNumber string) (domain.Account, error) {
	if strings.TrimSpace(accountNumber) == "" {
		return domain.Account{}, errAccountNumberRequired
	}

	account, err := s.accountRepo.GetByAccountNumber(ctx, accountNumber)
	if err != nil {
		logger.Error("account service get account failed", err, logger.Fields{
			"accountNumber": accountNumber,
		})
		return domain.Account{}, err
	}

	return account, nil
}

package models

import (
	"errors"
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

type CreateAccountRequest struct {
	HolderName     string `json:"holderName"`
	AccountNumber  string `json:"accountNumber"`
	InitialDeposit string `json:"initialDeposit"`
}

func (r CreateAccountRequest) Validate() error {
	var errs []string

	if strings.TrimSpace(r.HolderName) == "" {
		errs = append(errs, "holder name is required")
	}
	if strings.TrimSpace(r.AccountNumber) == "" {
		errs = append(errs, "account number is required")
	}
	errs = append(errs, amountErrors("initial deposit", r.InitialDeposit)...)

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}
	return nil
}

type DepositFundsRequest struct {
	AccountNumber string `json:"accountNumber"`
	Amount        string `json:"amount"`
}

func (r DepositFundsRequest) Validate() error {
	return validateFundsRequest(r.AccountNumber, r.Amount)
}

type WithdrawFundsRequest struct {
	AccountNumber string `json:"accountNumber"`
	Amount        string `json:"amount"`
}

func (r WithdrawFundsRequest) Validate() error {
	return validateFundsRequest(r.AccountNumber, r.Amount)
}

type AccountResponse struct {
	AccountNumber string          `json:"accountNumber"`
	HolderName    string          `json:"holderName"`
	Balance       decimal.Decimal `json:"balance"`
}

type DepositFundsResponse struct {
	AccountNumber   string          `json:"accountNumber"`
	DepositedAmount decimal.Decimal `json:"depositedAmount"`
	Balance         decimal.Decimal `json:"balance"`
}

type WithdrawFundsResponse struct {
	AccountNumber   string          `json:"accountNumber"`
	WithdrawnAmount decimal.Decimal `json:"withdrawnAmount"`
	Balance         decimal.Decimal `json:"balance"`
}

// ParseAmount parses operator-entered money text. Callers validate first;
// the error is kept for callers that do not.
func ParseAmount(raw string) (decimal.Decimal, error) {
	return decimal.NewFromString(strings.TrimSpace(raw))
}

func validateFundsRequest(accountNumber string, amount string) error {
	var errs []string

	if strings.TrimSpace(accountNumber) == "" {
		errs = append(errs, "account number is required")
	}
	errs = append(errs, amountErrors("amount", amount)...)

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}
	return nil
}

func amountErrors(field string, raw string) []string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return []string{field + " is required"}
	}

	parsed, err := decimal.NewFromString(trimmed)
	if err != nil {
		return []string{field + " must be numeric"}
	}
	if parsed.IsNegative() {
		return []string{field + " cannot be negative"}
	}
	if !Storable(parsed) {
		return []string{field + " is too large"}
	}
	return nil
}

// Storable reports whether amount survives the REAL balance column, which
// holds nothing beyond float64 range.
func Storable(amount decimal.Decimal) bool {
	f := amount.InexactFloat64()
	return !math.IsInf(f, 0) && !math.IsNaN(f)
}

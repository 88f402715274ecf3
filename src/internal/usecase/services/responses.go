package services

import (
	"errors"

	"github.com/api-sage/account-ledger/src/internal/commons"
)

var errAccountNumberRequired = errors.New("account number is required")

// accountErrorResponse maps a lookup or write failure for a single account to
// the envelope every read path returns.
func accountErrorResponse[T any](err error) commons.Response[T] {
	switch {
	case errors.Is(err, errAccountNumberRequired):
		return commons.ErrorResponse[T](commons.ValidationFailed, err.Error())
	case errors.Is(err, commons.ErrRecordNotFound):
		return commons.ErrorResponse[T]("Account not found")
	default:
		return commons.ErrorResponse[T]("failed to fetch account", "Unable to fetch account right now")
	}
}

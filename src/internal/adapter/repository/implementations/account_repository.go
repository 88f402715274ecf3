package implementations

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math"

	"github.com/api-sage/account-ledger/src/internal/commons"
	"github.com/api-sage/account-ledger/src/internal/domain"
	"github.com/api-sage/account-ledger/src/internal/logger"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
)

type AccountRepository struct {
	db *sqlx.DB
}

var _ domain.AccountRepository = (*AccountRepository)(nil)

func NewAccountRepository(db *sqlx.DB) *AccountRepository {
	return &AccountRepository{db: db}
}

type accountRow struct {
	AccountNumber string  `db:"acno"`
	HolderName    string  `db:"name"`
	Balance       float64 `db:"balance"`
}

func (r *AccountRepository) Create(ctx context.Context, account domain.Account) (domain.Account, error) {
	logger.Info("account repository create", logger.Fields{
		"accountNumber": account.AccountNumber,
		"holderName":    account.HolderName,
	})

	const query = `INSERT INTO accounts (acno, name, balance) VALUES (?, ?, ?)`

	balance, err := storedBalance(account.Balance)
	if err != nil {
		return domain.Account{}, fmt.Errorf("create account: %w", err)
	}

	if _, err := r.db.ExecContext(
		ctx,
		r.db.Rebind(query),
		account.AccountNumber,
		account.HolderName,
		balance,
	); err != nil {
		if isUniqueViolation(err) {
			logger.Info("account repository create duplicate account number", logger.Fields{
				"accountNumber": account.AccountNumber,
			})
			return domain.Account{}, commons.ErrAccountExists
		}
		logger.Error("account repository create failed", err, logger.Fields{
			"accountNumber": account.AccountNumber,
		})
		return domain.Account{}, fmt.Errorf("create account: %w", err)
	}

	logger.Info("account repository create success", logger.Fields{
		"accountNumber": account.AccountNumber,
	})

	return account, nil
}

func (r *AccountRepository) GetByAccountNumber(ctx context.Context, accountNumber string) (domain.Account, error) {
	logger.Info("account repository get by account number", logger.Fields{
		"accountNumber": accountNumber,
	})

	const query = `SELECT acno, name, balance FROM accounts WHERE acno = ?`

	var row accountRow
	if err := r.db.GetContext(ctx, &row, r.db.Rebind(query), accountNumber); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			logger.Info("account repository record not found", logger.Fields{
				"accountNumber": accountNumber,
			})
			return domain.Account{}, commons.ErrRecordNotFound
		}
		logger.Error("account repository get failed", err, logger.Fields{
			"accountNumber": accountNumber,
		})
		return domain.Account{}, fmt.Errorf("get account by account number: %w", err)
	}

	if math.IsInf(row.Balance, 0) || math.IsNaN(row.Balance) {
		logger.Error("account repository stored balance unreadable", errUnreadableBalance, logger.Fields{
			"accountNumber": row.AccountNumber,
		})
		return domain.Account{}, fmt.Errorf("get account by account number: %w", errUnreadableBalance)
	}

	logger.Info("account repository get success", logger.Fields{
		"accountNumber": row.AccountNumber,
	})

	return domain.Account{
		AccountNumber: row.AccountNumber,
		HolderName:    row.HolderName,
		Balance:       decimal.NewFromFloat(row.Balance),
	}, nil
}

func (r *AccountRepository) UpdateBalance(ctx context.Context, accountNumber string, balance decimal.Decimal) error {
	logger.Info("account repository update balance", logger.Fields{
		"accountNumber": accountNumber,
		"balance":       balance.StringFixed(2),
	})

	const query = `UPDATE accounts SET balance = ? WHERE acno = ?`

	stored, err := storedBalance(balance)
	if err != nil {
		return fmt.Errorf("update balance: %w", err)
	}

	result, err := r.db.ExecContext(ctx, r.db.Rebind(query), stored, accountNumber)
	if err != nil {
		logger.Error("account repository update balance failed", err, logger.Fields{
			"accountNumber": accountNumber,
		})
		return fmt.Errorf("update balance: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		logger.Error("account repository update balance rows affected failed", err, logger.Fields{
			"accountNumber": accountNumber,
		})
		return fmt.Errorf("update balance rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return commons.ErrRecordNotFound
	}

	logger.Info("account repository update balance success", logger.Fields{
		"accountNumber": accountNumber,
	})
	return nil
}

var errUnreadableBalance = errors.New("stored balance is not a finite number")

// storedBalance converts balance to the REAL column value, refusing anything
// that would land as Inf.
func storedBalance(balance decimal.Decimal) (float64, error) {
	f := balance.InexactFloat64()
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return 0, commons.ErrAmountTooLarge
	}
	return f, nil
}

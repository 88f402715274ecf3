package console_test

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/api-sage/account-ledger/src/internal/adapter/console"
	"github.com/api-sage/account-ledger/src/internal/adapter/repository/implementations"
	"github.com/api-sage/account-ledger/src/internal/adapter/repository/memory"
	"github.com/api-sage/account-ledger/src/internal/commons"
	"github.com/api-sage/account-ledger/src/internal/domain"
	"github.com/api-sage/account-ledger/src/internal/logger"
	"github.com/api-sage/account-ledger/src/internal/usecase/services"
	"github.com/api-sage/account-ledger/src/migrations"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	_ = logger.Configure("error", io.Discard)
	os.Exit(m.Run())
}

func newSQLiteRepo(t *testing.T) domain.AccountRepository {
	t.Helper()

	ctx := context.Background()
	db, err := implementations.Open(ctx, "sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	source, err := migrations.ForDriver("sqlite")
	require.NoError(t, err)
	require.NoError(t, implementations.RunMigrations(ctx, db, source))

	return implementations.NewAccountRepository(db)
}

func run(t *testing.T, repo domain.AccountRepository, input string) string {
	t.Helper()

	var out bytes.Buffer
	ctrl := console.NewController(
		services.NewAccountService(repo),
		services.NewInterestService(repo, services.DefaultInterestRate),
		"HDFC",
		"₹",
		strings.NewReader(input),
		&out,
	)
	require.NoError(t, ctrl.Run(context.Background()))
	return out.String()
}

func lines(parts ...string) string {
	return strings.Join(parts, "\n") + "\n"
}

func TestControllerFullScenario(t *testing.T) {
	repo := newSQLiteRepo(t)

	out := run(t, repo, lines(
		"1", "Alice", "A1", "1000.00",
		"2", "A1", "500.00",
		"3", "A1", "200.00",
		"4", "A1",
		"5", "A1",
		"6",
	))

	require.Contains(t, out, "✅ Account created successfully for Alice (A/C No: A1) with ₹1000.00 balance.")
	require.Contains(t, out, "✅ ₹500.00 deposited. Updated balance: ₹1500.00")
	require.Contains(t, out, "✅ ₹200.00 withdrawn. Remaining balance: ₹1300.00")
	require.Contains(t, out, "📄 Account Summary\nName: Alice\nAccount No: A1\nBalance: ₹1300.00")
	require.Contains(t, out, "💹 Interest for Alice at 7% is ₹91.00")
	require.True(t, strings.HasSuffix(out, "👋 Exiting. Thank you for using HDFC Bank system.\n"))

	stored, err := repo.GetByAccountNumber(context.Background(), "A1")
	require.NoError(t, err)
	require.True(t, stored.Balance.Equal(decimal.NewFromInt(1300)), "interest must not be persisted, got %s", stored.Balance)
}

func TestControllerDepositToMissingAccount(t *testing.T) {
	repo := newSQLiteRepo(t)

	out := run(t, repo, lines("2", "Z9", "100", "6"))

	require.Contains(t, out, "❌ Account not found.")
	_, err := repo.GetByAccountNumber(context.Background(), "Z9")
	require.True(t, errors.Is(err, commons.ErrRecordNotFound))
}

func TestControllerWithdrawInsufficientBalance(t *testing.T) {
	repo := newSQLiteRepo(t)

	out := run(t, repo, lines(
		"1", "Bob", "B1", "50.00",
		"3", "B1", "100.00",
		"4", "B1",
		"6",
	))

	require.Contains(t, out, "❌ Insufficient balance!")
	require.Contains(t, out, "Balance: ₹50.00")
}

func TestControllerDuplicateAccount(t *testing.T) {
	repo := newSQLiteRepo(t)

	out := run(t, repo, lines(
		"1", "Alice", "A1", "1000",
		"1", "Mallory", "A1", "5",
		"4", "A1",
		"6",
	))

	require.Contains(t, out, "❌ Account number already exists.")
	require.Contains(t, out, "Name: Alice\nAccount No: A1\nBalance: ₹1000.00")
}

func TestControllerInvalidOptionAndMalformedAmount(t *testing.T) {
	repo := memory.NewAccountRepository()

	out := run(t, repo, lines(
		"9",
		"1", "Carol", "C1", "abc",
		"1", "Carol", "C1", "10",
		"2", "C1", "lots",
		"4", "C1",
		"6",
	))

	require.Contains(t, out, "❌ Invalid option. Try again.")
	require.Contains(t, out, "❌ initial deposit must be numeric")
	require.Contains(t, out, "❌ amount must be numeric")
	require.Contains(t, out, "Balance: ₹10.00")
}

func TestControllerStopsOnEndOfInput(t *testing.T) {
	out := run(t, memory.NewAccountRepository(), lines("1", "Dan"))

	require.Contains(t, out, "Enter account number: ")
	require.NotContains(t, out, "Exiting")
}

func TestControllerStoreFailureKeepsLoopRunning(t *testing.T) {
	repo := failingRepo{err: errors.New("database is locked")}

	out := run(t, repo, lines("4", "A1", "5", "A1", "6"))

	require.Equal(t, 2, strings.Count(out, "❌ Unable to complete request right now."))
	require.Contains(t, out, "Exiting")
}

func TestControllerRejectsAmountBeyondFloatRange(t *testing.T) {
	repo := newSQLiteRepo(t)

	out := run(t, repo, lines(
		"1", "Eve", "E1", "1e400",
		"4", "E1",
		"1", "Eve", "E1", "1e308",
		"2", "E1", "1e308",
		"3", "E1", "1e400",
		"6",
	))

	require.Contains(t, out, "❌ initial deposit is too large")
	require.Contains(t, out, "❌ Account not found.")
	require.Contains(t, out, "✅ Account created successfully for Eve (A/C No: E1)")
	require.Contains(t, out, "❌ amount is too large")
	require.Contains(t, out, "Exiting")

	stored, err := repo.GetByAccountNumber(context.Background(), "E1")
	require.NoError(t, err)
	require.True(t, stored.Balance.Equal(decimal.RequireFromString("1e308")), "balance %s", stored.Balance)
}

func TestControllerReportsUnreadableStoredBalance(t *testing.T) {
	repo := failingRepo{err: fmt.Errorf("get account by account number: %w", errors.New("stored balance is not a finite number"))}

	out := run(t, repo, lines("4", "E1", "2", "E1", "5", "5", "E1", "6"))

	require.Equal(t, 3, strings.Count(out, "❌ Unable to complete request right now."))
	require.Contains(t, out, "Exiting")
}

func TestControllerAcceptsLongInputLine(t *testing.T) {
	long := strings.Repeat("x", 200*1024)

	out := run(t, memory.NewAccountRepository(), lines(
		long,
		"1", long, "L1", "10",
		"6",
	))

	require.Contains(t, out, "❌ Invalid option. Try again.")
	require.Contains(t, out, "(A/C No: L1) with ₹10.00 balance.")
	require.Contains(t, out, "Exiting")
}

func TestControllerLastLineWithoutNewline(t *testing.T) {
	out := run(t, memory.NewAccountRepository(), "6")

	require.Contains(t, out, "Exiting")
}

type failingRepo struct {
	err error
}

func (r failingRepo) Create(context.Context, domain.Account) (domain.Account, error) {
	return domain.Account{}, r.err
}

func (r failingRepo) GetByAccountNumber(context.Context, string) (domain.Account, error) {
	return domain.Account{}, r.err
}

func (r failingRepo) UpdateBalance(context.Context, string, decimal.Decimal) error {
	return r.err
}

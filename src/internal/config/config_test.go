package config

import (
	"os"
	"path/filepath"
	"testing"
)

var configKeys = []string{
	"LEDGER_CONFIG",
	"DATABASE_DRIVER",
	"DATABASE_DSN",
	"MIGRATIONS_DIR",
	"BANK_NAME",
	"INTEREST_RATE",
	"CURRENCY_SYMBOL",
	"LOG_LEVEL",
	"LOG_FILE",
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range configKeys {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if cfg.DatabaseDriver != DriverSQLite {
		t.Fatalf("expected sqlite driver, got %q", cfg.DatabaseDriver)
	}
	if cfg.DatabaseDSN != "bank.db" {
		t.Fatalf("expected bank.db dsn, got %q", cfg.DatabaseDSN)
	}
	if cfg.BankName != "HDFC" {
		t.Fatalf("expected HDFC bank name, got %q", cfg.BankName)
	}
	if cfg.InterestRate.String() != "7" {
		t.Fatalf("expected interest rate 7, got %s", cfg.InterestRate.String())
	}
	if cfg.CurrencySymbol != "₹" {
		t.Fatalf("expected rupee symbol, got %q", cfg.CurrencySymbol)
	}
}

func TestLoadYAMLThenEnvOverride(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "ledger.yaml")
	contents := `
database:
  driver: memory
bank:
  name: Axis
  interestRate: "6.5"
log:
  level: debug
`
	if err := os.WriteFile(path, []byte(contents), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("LEDGER_CONFIG", path)
	t.Setenv("BANK_NAME", "ICICI")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if cfg.DatabaseDriver != DriverMemory {
		t.Fatalf("expected memory driver from file, got %q", cfg.DatabaseDriver)
	}
	if cfg.BankName != "ICICI" {
		t.Fatalf("expected env to override bank name, got %q", cfg.BankName)
	}
	if cfg.InterestRate.String() != "6.5" {
		t.Fatalf("expected interest rate 6.5, got %s", cfg.InterestRate.String())
	}
	if cfg.LogLevel != "debug" {
		t.Fatalf("expected debug log level, got %q", cfg.LogLevel)
	}
}

func TestLoadMissingExplicitConfigFile(t *testing.T) {
	clearEnv(t)
	t.Setenv("LEDGER_CONFIG", filepath.Join(t.TempDir(), "missing.yaml"))

	if _, err := Load(); err == nil {
		t.Fatal("expected error for missing explicit config file")
	}
}

func TestLoadRejectsUnknownDriver(t *testing.T) {
	clearEnv(t)
	t.Setenv("DATABASE_DRIVER", "oracle")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for unsupported driver")
	}
}

func TestLoadRejectsBadInterestRate(t *testing.T) {
	clearEnv(t)
	t.Setenv("INTEREST_RATE", "seven")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for non-numeric interest rate")
	}
}

func TestLoadPostgresNormalizesConnectionString(t *testing.T) {
	clearEnv(t)
	t.Setenv("DATABASE_DRIVER", "postgres")
	t.Setenv("DATABASE_DSN", "Host=db;Port=5432;Database=ledger;Username=app;Password=secret")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}

	want := "host=db port=5432 dbname=ledger user=app password=secret sslmode=disable"
	if cfg.DatabaseDSN != want {
		t.Fatalf("expected %q, got %q", want, cfg.DatabaseDSN)
	}
}

func TestNormalizeConnectionStringKeepsURL(t *testing.T) {
	raw := "postgres://app:secret@db:5432/ledger?sslmode=require"
	if got := normalizeConnectionString(raw); got != raw {
		t.Fatalf("expected url dsn unchanged, got %q", got)
	}
}

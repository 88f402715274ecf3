package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

const defaultConfigFile = "ledger.yaml"
const defaultEnvFile = ".env"
const defaultSQLiteDSN = "bank.db"
const defaultPostgresConnectionString = "Host=localhost;Port=5432;Database=ledger_db;Username=postgres;Password=postgres;Timeout=30"
const defaultBankName = "HDFC"
const defaultInterestRate = "7"
const defaultCurrencySymbol = "₹"
const defaultLogLevel = "info"
const defaultLogFile = "ledger.log"

type Config struct {
	DatabaseDriver string
	DatabaseDSN    string
	MigrationsDir  string
	BankName       string
	InterestRate   decimal.Decimal
	CurrencySymbol string
	LogLevel       string
	LogFile        string
}

// fileConfig mirrors the optional YAML file. Empty values fall through to the
// defaults; environment variables win over both.
type fileConfig struct {
	Database struct {
		Driver        string `yaml:"driver"`
		DSN           string `yaml:"dsn"`
		MigrationsDir string `yaml:"migrationsDir"`
	} `yaml:"database"`
	Bank struct {
		Name           string `yaml:"name"`
		InterestRate   string `yaml:"interestRate"`
		CurrencySymbol string `yaml:"currencySymbol"`
	} `yaml:"bank"`
	Log struct {
		Level string `yaml:"level"`
		File  string `yaml:"file"`
	} `yaml:"log"`
}

func Load() (Config, error) {
	if err := godotenv.Load(defaultEnvFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load %s: %w", defaultEnvFile, err)
	}

	path := strings.TrimSpace(os.Getenv("LEDGER_CONFIG"))
	explicit := path != ""
	if !explicit {
		path = defaultConfigFile
	}

	var file fileConfig
	raw, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(raw, &file); err != nil {
			return Config{}, fmt.Errorf("parse config file %q: %w", path, err)
		}
	case errors.Is(err, fs.ErrNotExist) && !explicit:
	default:
		return Config{}, fmt.Errorf("read config file %q: %w", path, err)
	}

	driver := strings.ToLower(pick("DATABASE_DRIVER", file.Database.Driver, DriverSQLite))
	switch driver {
	case DriverSQLite, DriverPostgres, DriverMemory:
	default:
		return Config{}, fmt.Errorf("unsupported database driver %q", driver)
	}

	dsn := pick("DATABASE_DSN", file.Database.DSN, "")
	switch driver {
	case DriverSQLite:
		if dsn == "" {
			dsn = defaultSQLiteDSN
		}
	case DriverPostgres:
		if dsn == "" {
			dsn = defaultPostgresConnectionString
		}
		dsn = normalizeConnectionString(dsn)
	}

	rateRaw := pick("INTEREST_RATE", file.Bank.InterestRate, defaultInterestRate)
	rate, err := decimal.NewFromString(rateRaw)
	if err != nil {
		return Config{}, fmt.Errorf("parse interest rate %q: %w", rateRaw, err)
	}
	if rate.IsNegative() {
		return Config{}, fmt.Errorf("interest rate cannot be negative")
	}

	return Config{
		DatabaseDriver: driver,
		DatabaseDSN:    dsn,
		MigrationsDir:  pick("MIGRATIONS_DIR", file.Database.MigrationsDir, ""),
		BankName:       pick("BANK_NAME", file.Bank.Name, defaultBankName),
		InterestRate:   rate,
		CurrencySymbol: pick("CURRENCY_SYMBOL", file.Bank.CurrencySymbol, defaultCurrencySymbol),
		LogLevel:       pick("LOG_LEVEL", file.Log.Level, defaultLogLevel),
		LogFile:        pick("LOG_FILE", file.Log.File, defaultLogFile),
	}, nil
}

func pick(envKey string, fromFile string, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(envKey)); v != "" {
		return v
	}
	if v := strings.TrimSpace(fromFile); v != "" {
		return v
	}
	return fallback
}

func normalizeConnectionString(raw string) string {
	if !strings.Contains(raw, ";") {
		return raw
	}

	parts := strings.Split(raw, ";")
	out := make([]string, 0, len(parts))
	hasSSLMode := false

	for _, part := range parts {
		p := strings.TrimSpace(part)
		if p == "" {
			continue
		}

		kv := strings.SplitN(p, "=", 2)
		if len(kv) != 2 {
			continue
		}

		key := strings.ToLower(strings.TrimSpace(kv[0]))
		val := strings.TrimSpace(kv[1])

		switch key {
		case "host":
			out = append(out, "host="+val)
		case "port":
			out = append(out, "port="+val)
		case "database":
			out = append(out, "dbname="+val)
		case "username":
			out = append(out, "user="+val)
		case "password":
			out = append(out, "password="+val)
		case "timeout", "connect timeout":
			out = append(out, "connect_timeout="+val)
		case "sslmode":
			hasSSLMode = true
			out = append(out, "sslmode="+val)
		default:
			out = append(out, key+"="+val)
		}
	}

	if len(out) == 0 {
		return raw
	}

	if !hasSSLMode {
		out = append(out, "sslmode=disable")
	}

	return strings.Join(out, " ")
}

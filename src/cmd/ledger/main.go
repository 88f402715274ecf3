package main

import (
	"context"
	"io"
	"io/fs"
	"log"
	"os"
	"time"

	"github.com/api-sage/account-ledger/src/internal/adapter/console"
	"github.com/api-sage/account-ledger/src/internal/adapter/repository/implementations"
	"github.com/api-sage/account-ledger/src/internal/adapter/repository/memory"
	"github.com/api-sage/account-ledger/src/internal/config"
	"github.com/api-sage/account-ledger/src/internal/domain"
	"github.com/api-sage/account-ledger/src/internal/logger"
	"github.com/api-sage/account-ledger/src/internal/usecase/services"
	"github.com/api-sage/account-ledger/src/migrations"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logOut, err := openLogOutput(cfg.LogFile)
	if err != nil {
		log.Fatalf("open log file: %v", err)
	}
	defer logOut.Close()

	if err := logger.Configure(cfg.LogLevel, logOut); err != nil {
		log.Fatalf("configure logger: %v", err)
	}

	accountRepo, closeStore, err := openAccountRepository(cfg)
	if err != nil {
		log.Fatalf("open account store: %v", err)
	}

	ctrl := console.NewController(
		services.NewAccountService(accountRepo),
		services.NewInterestService(accountRepo, cfg.InterestRate),
		cfg.BankName,
		cfg.CurrencySymbol,
		os.Stdin,
		os.Stdout,
	)

	runErr := ctrl.Run(context.Background())
	if err := closeStore(); err != nil {
		logger.Error("close account store failed", err, nil)
	}
	if runErr != nil {
		log.Fatalf("console: %v", runErr)
	}
}

func openAccountRepository(cfg config.Config) (domain.AccountRepository, func() error, error) {
	if cfg.DatabaseDriver == config.DriverMemory {
		logger.Info("using in-memory account store", nil)
		return memory.NewAccountRepository(), func() error { return nil }, nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	db, err := implementations.Open(ctx, cfg.DatabaseDriver, cfg.DatabaseDSN)
	if err != nil {
		return nil, nil, err
	}

	source, err := migrationSource(cfg)
	if err != nil {
		_ = db.Close()
		return nil, nil, err
	}

	if err := implementations.RunMigrations(ctx, db, source); err != nil {
		_ = db.Close()
		return nil, nil, err
	}

	logger.Info("account store ready", logger.Fields{
		"driver": cfg.DatabaseDriver,
	})

	return implementations.NewAccountRepository(db), db.Close, nil
}

func migrationSource(cfg config.Config) (fs.FS, error) {
	if cfg.MigrationsDir != "" {
		return os.DirFS(cfg.MigrationsDir), nil
	}
	return migrations.ForDriver(cfg.DatabaseDriver)
}

func openLogOutput(path string) (io.WriteCloser, error) {
	if path == "" || path == "-" {
		return nopCloser{os.Stderr}, nil
	}
	return os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }

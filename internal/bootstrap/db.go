package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/GoSim-25-26J-441/todo-tracker/config"
	"github.com/GoSim-25-26J-441/todo-tracker/internal/db"
)

type DBOptions struct {
	Database  config.DatabaseConfig
	ConnectTO time.Duration
	MigrateTO time.Duration
}

// OpenDB opens the store and brings its schema up to date.
func OpenDB(ctx context.Context, opt DBOptions, logger *slog.Logger) (*sql.DB, error) {
	if opt.ConnectTO == 0 {
		opt.ConnectTO = 5 * time.Second
	}
	if opt.MigrateTO == 0 {
		opt.MigrateTO = 30 * time.Second
	}

	cctx, cancel := context.WithTimeout(ctx, opt.ConnectTO)
	defer cancel()

	store, err := db.Open(cctx, opt.Database)
	if err != nil {
		return nil, fmt.Errorf("db connect: %w", err)
	}

	mctx, mcancel := context.WithTimeout(ctx, opt.MigrateTO)
	defer mcancel()

	applied, err := db.Migrate(mctx, store, opt.Database.Driver)
	if err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("db migrate: %w", err)
	}
	for _, id := range applied {
		logger.Info("migration applied", slog.String("id", id))
	}

	return store, nil
}

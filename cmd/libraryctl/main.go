package main

import (
	"fmt"
	"log/slog"
	"os"

	"library/config"
	logs "library/internal/infra/log"
	"library/internal/infra/persistence/postgres"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

// Supported subcommands:
// - migrate: create or update the database schema
// - token:   mint an access token for a stored user
// - role:    assign a role without an acting administrator

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "libraryctl",
		Short:         "Operator commands for the library service",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newMigrateCmd(),
		newTokenCmd(),
		newRoleCmd(),
	)

	return root
}

// env holds what every subcommand needs: configuration, a logger and an open database.
type env struct {
	cfg    *config.Config
	logger *slog.Logger
	db     *gorm.DB
}

func openEnv() (*env, error) {
	cfg, err := config.New()
	if err != nil {
		return nil, errors.Wrap(err, "failed to load config")
	}

	logger, err := logs.NewWithWriter(cfg, os.Stderr)
	if err != nil {
		return nil, err
	}

	db, err := postgres.Open(cfg, logger)
	if err != nil {
		return nil, err
	}

	return &env{cfg: cfg, logger: logger, db: db}, nil
}

func (e *env) close() {
	sqlDB, err := e.db.DB()
	if err != nil {
		return
	}
	if err := sqlDB.Close(); err != nil {
		e.logger.Warn("Failed to close database", slog.Any("error", err))
	}
}

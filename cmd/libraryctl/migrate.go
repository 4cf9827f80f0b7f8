package main

import (
	"library/internal/infra/persistence/postgres"

	"github.com/spf13/cobra"
)

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, err := openEnv()
			if err != nil {
				return err
			}
			defer e.close()

			if err := postgres.Migrate(cmd.Context(), e.db); err != nil {
				return err
			}
			e.logger.Info("Database schema migrated")

			return nil
		},
	}
}

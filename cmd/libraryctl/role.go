package main

import (
	"fmt"
	"log/slog"
	"strings"

	"library/internal/domain/entity"
	"library/internal/infra/persistence/postgres"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func newRoleCmd() *cobra.Command {
	var userFlag, roleFlag string

	cmd := &cobra.Command{
		Use:   "role",
		Short: "Assign a role to a user directly in the database",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			userID, err := uuid.Parse(userFlag)
			if err != nil {
				return errors.Wrapf(err, "invalid user id %q", userFlag)
			}

			role, ok := entity.ParseRole(strings.ToLower(strings.TrimSpace(roleFlag)))
			if !ok {
				return errors.Errorf("unknown role %q", roleFlag)
			}

			e, err := openEnv()
			if err != nil {
				return err
			}
			defer e.close()

			if err := postgres.NewUserRepository(e.db).UpdateRole(cmd.Context(), userID, role); err != nil {
				return errors.Wrap(err, "failed to update role")
			}

			e.logger.Info("Role updated", slog.String("user_id", userID.String()), slog.String("role", role.String()))
			fmt.Fprintf(cmd.OutOrStdout(), "%s is now %s\n", userID, role)

			return nil
		},
	}

	cmd.Flags().StringVar(&userFlag, "user", "", "user id")
	cmd.Flags().StringVar(&roleFlag, "role", "", "reader, librarian or administrator")
	_ = cmd.MarkFlagRequired("user")
	_ = cmd.MarkFlagRequired("role")

	return cmd
}

package main

import (
	"fmt"

	"library/internal/infra/auth"
	"library/internal/infra/persistence/postgres"
	"library/internal/usecase/impl"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func newTokenCmd() *cobra.Command {
	var userFlag string

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Mint an access token carrying the user's stored role",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			userID, err := uuid.Parse(userFlag)
			if err != nil {
				return errors.Wrapf(err, "invalid user id %q", userFlag)
			}

			e, err := openEnv()
			if err != nil {
				return err
			}
			defer e.close()

			tokens, err := auth.NewJWTService(e.cfg)
			if err != nil {
				return err
			}

			users := impl.NewUserService(impl.UserServiceParams{
				TxManager:    postgres.NewTransactionManager(e.db),
				TokenService: tokens,
				Logger:       e.logger,
			})

			token, err := users.IssueToken(cmd.Context(), userID)
			if err != nil {
				return errors.Wrap(err, "failed to issue token")
			}
			fmt.Fprintln(cmd.OutOrStdout(), token)

			return nil
		},
	}

	cmd.Flags().StringVar(&userFlag, "user", "", "user id")
	_ = cmd.MarkFlagRequired("user")

	return cmd
}

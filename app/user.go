package app

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/mohozompur-madrasa/madrasa-site/internal/auth"
	database "github.com/mohozompur-madrasa/madrasa-site/internal/db"
)

func init() { //nolint: gochecknoinits
	userCreateCmd.Flags().StringVarP(&userPassword, "password", "p", "", "password of the account")
	userPasswdCmd.Flags().StringVarP(&userPassword, "password", "p", "", "new password of the account")

	_ = userCreateCmd.MarkFlagRequired("password")
	_ = userPasswdCmd.MarkFlagRequired("password")

	userCmd.AddCommand(userCreateCmd, userPasswdCmd)
	rootCmd.AddCommand(userCmd)
}

var (
	userPassword string

	userCmd = &cobra.Command{
		Use:   "user",
		Short: "Manage local admin accounts",
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			return loadConfig()
		},
	}

	userCreateCmd = &cobra.Command{
		Use:   "create <username>",
		Short: "Create a local admin account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			provider, closeDB, err := localProvider()
			if err != nil {
				return err
			}
			defer closeDB()

			user, err := provider.CreateUser(args[0], userPassword)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "created user %s (id %d)\n", user.Username, user.ID)

			return err
		},
	}

	userPasswdCmd = &cobra.Command{
		Use:   "passwd <username>",
		Short: "Set the password of a local admin account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			provider, closeDB, err := localProvider()
			if err != nil {
				return err
			}
			defer closeDB()

			user, err := provider.FindByUsername(args[0])
			if err != nil {
				return err
			}

			if user == nil {
				return fmt.Errorf("%w: %s", auth.ErrUserNotFound, args[0])
			}

			if err = provider.SetPassword(user.ID, userPassword); err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "password of %s changed\n", user.Username)

			return err
		},
	}
)

// localProvider opens the configured database for account maintenance.
func localProvider() (*auth.LocalProvider, func(), error) {
	db, err := database.Open(&cfg)
	if err != nil {
		return nil, nil, err
	}

	closeDB := func() {
		sqlDB, err := db.DB()
		if err != nil {
			return
		}

		if err = sqlDB.Close(); err != nil {
			log.Error().Err(err).Msg("failed to close database")
		}
	}

	return auth.NewLocalProvider(db), closeDB, nil
}

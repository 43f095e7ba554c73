package app

import (
	"errors"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/earg-org/earg-api/internal/db"
	"github.com/earg-org/earg-api/internal/db/controller/adminuser"
)

// envAdminPassword supplies the new password when --password is not given.
const envAdminPassword = "EARG_ADMIN_NEW_PASSWORD"

// ErrPasswordMissing is returned when neither the flag nor the environment carry a password.
var ErrPasswordMissing = errors.New("password missing: use --password or " + envAdminPassword)

func init() { //nolint: gochecknoinits
	adminPasswordCmd.Flags().StringVar(&adminPassword, "password", "", "New password, defaults to $"+envAdminPassword)

	adminCmd.AddCommand(adminPasswordCmd)
	rootCmd.AddCommand(adminCmd)
}

var (
	adminPassword string

	adminCmd = &cobra.Command{
		Use:   "admin",
		Short: "Manage admin accounts",
	}

	adminPasswordCmd = &cobra.Command{
		Use:     "password <username>",
		Short:   "Set the password of an admin, creating the account if needed",
		Args:    cobra.ExactArgs(1),
		PreRunE: loadConfig,
		RunE: func(_ *cobra.Command, args []string) error {
			password := adminPassword
			if password == "" {
				password = os.Getenv(envAdminPassword)
			}

			if password == "" {
				return ErrPasswordMissing
			}

			gdb, err := db.Open(&cfg)
			if err != nil {
				return err
			}

			if err = db.Migrate(gdb); err != nil {
				return err
			}

			if err = adminuser.SetPassword(gdb, args[0], password); err != nil {
				return err
			}

			log.Info().Str("username", args[0]).Msg("admin password set")

			return nil
		},
	}
)

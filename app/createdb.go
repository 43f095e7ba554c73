package app

import (
	"github.com/spf13/cobra"

	"github.com/earg-org/earg-api/internal/db/create"
)

func init() { //nolint: gochecknoinits
	rootCmd.AddCommand(createDBCmd)
}

var createDBCmd = &cobra.Command{
	Use:     "createdb",
	Short:   "Create the configured postgres database if it does not exist",
	PreRunE: loadConfig,
	RunE: func(cmd *cobra.Command, _ []string) error {
		_, err := create.Database(cmd.Context(), &cfg)
		return err
	},
}

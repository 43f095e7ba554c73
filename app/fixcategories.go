package app

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/earg-org/earg-api/internal/content"
	"github.com/earg-org/earg-api/internal/db"
)

func init() { //nolint: gochecknoinits
	rootCmd.AddCommand(fixCategoriesCmd)
}

var fixCategoriesCmd = &cobra.Command{
	Use:     "fix-categories",
	Short:   "Replace the stored categories with the storefront category set",
	PreRunE: loadConfig,
	RunE: func(_ *cobra.Command, _ []string) error {
		gdb, err := db.Open(&cfg)
		if err != nil {
			return err
		}

		if err = content.ReplaceCategories(gdb, content.StoreCategories()); err != nil {
			return err
		}

		log.Info().Strs("categories", content.StoreCategories()).Msg("categories fixed")

		return nil
	},
}

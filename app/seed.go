package app

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/earg-org/earg-api/internal/db"
	"github.com/earg-org/earg-api/internal/seed"
)

func init() { //nolint: gochecknoinits
	seedCmd.Flags().StringVar(&productsFile, "products", "", "JSON file with the products written by --reset")
	seedCmd.Flags().BoolVar(&resetContent, "reset", false, "Discard all content and seed again")

	rootCmd.AddCommand(seedCmd)
}

var (
	productsFile string
	resetContent bool

	seedCmd = &cobra.Command{
		Use:   "seed",
		Short: "Seed an empty database, or reseed everything with --reset",
		PreRunE: loadConfig,
		RunE: func(cmd *cobra.Command, _ []string) error {
			gdb, err := db.Open(&cfg)
			if err != nil {
				return err
			}

			if !resetContent {
				return seed.New(gdb, seed.Default()).Run(cmd.Context())
			}

			data := seed.Default()

			if productsFile != "" {
				if data.Products, err = seed.LoadProducts(productsFile); err != nil {
					return err
				}
			}

			if err = seed.Reset(cmd.Context(), gdb, data); err != nil {
				return err
			}

			log.Info().Int("products", len(data.Products)).Msg("database reseeded")

			return nil
		},
	}
)

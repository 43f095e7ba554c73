// Package app implements the main application commands.
package app

import (
	"github.com/spf13/cobra"

	"github.com/earg-org/earg-api/internal/config"
	"github.com/earg-org/earg-api/internal/logger"
)

var (
	configPath string        // directory holding main.toml
	cfg        config.Config // configuration loaded by loadConfig
)

var rootCmd = &cobra.Command{
	Use:   "earg-api",
	Short: "EARG API serves the storefront and content of Educate A Rural Girl",
	Long: `EARG API is the backend of the Educate A Rural Girl website.
It serves products, orders, wishlists, reviews, messages and the editable
site content, and provides the admin API used by the content editor.`,
	Args:         cobra.OnlyValidArgs,
	SilenceUsage: true,
}

func init() { //nolint: gochecknoinits
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "./etc/", "Directory containing main.toml")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// loadConfig reads the configuration and initializes the logger.
func loadConfig(_ *cobra.Command, _ []string) error {
	var err error

	if cfg, err = config.ReadConfig(configPath); err != nil {
		return err
	}

	return logger.Init(cfg.Log)
}

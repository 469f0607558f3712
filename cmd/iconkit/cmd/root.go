package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/nfrund/iconkit/internal/app"
	"github.com/nfrund/iconkit/internal/config"
	"github.com/nfrund/iconkit/internal/icons"
	"github.com/nfrund/iconkit/internal/logging"
)

var rootCmd = &cobra.Command{
	Use:   "iconkit",
	Short: "Icon registry and renderer",
	Long: `iconkit serves and inspects the built-in icon catalog.

Use "iconkit [command] --help" for more information about a specific command.`,
	SilenceUsage: true,
}

var overlayPath string

// Execute executes the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&overlayPath, "overlay", "", "extra catalog file registered after the built-in one (overrides ICONKIT_OVERLAY)")
}

// loadConfig reads the environment, applies flag overrides and configures logging.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.New()
	if err != nil {
		return nil, err
	}
	if cmd.Flags().Changed("overlay") {
		cfg.OverlayPath = overlayPath
	}
	logging.NewWithWriter(cmd.ErrOrStderr(), cfg.GetLogFormat(), cfg.GetLogLevel())
	return cfg, nil
}

func loadRegistry(cmd *cobra.Command) (*icons.Registry, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	reg, err := app.Registry(app.NewInjector(cfg, afero.NewOsFs()))
	if err != nil {
		return nil, fmt.Errorf("failed to load icons: %w", err)
	}
	return reg, nil
}

package cmd

import (
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/nfrund/iconkit/internal/app"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the gallery and icon HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("addr") {
			cfg.Addr = serveAddr
		}

		injector := app.NewInjector(cfg, afero.NewOsFs())
		defer injector.Shutdown()

		srv, err := app.Server(injector)
		if err != nil {
			return err
		}
		return srv.Start()
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (overrides ICONKIT_ADDR)")
	rootCmd.AddCommand(serveCmd)
}

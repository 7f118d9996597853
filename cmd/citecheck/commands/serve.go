package commands

import (
	"fmt"
	"os/signal"
	"syscall"

	"github.com/phrazzld/citecheck/internal/config"
	"github.com/phrazzld/citecheck/internal/platform/logger"
	"github.com/phrazzld/citecheck/internal/server"
	"github.com/spf13/cobra"
)

func newServeCmd() *cobra.Command {
	var (
		configFile string
		port       int
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the citation validation HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadFile(configFile)
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}
			if cmd.Flags().Changed("port") {
				cfg.Server.Port = port
				if err := config.Validate(cfg); err != nil {
					return fmt.Errorf("invalid --port %d: %w", port, err)
				}
			}

			l, err := logger.Setup(cfg.Server)
			if err != nil {
				return fmt.Errorf("failed to set up logger: %w", err)
			}

			app, err := server.New(cfg, l, nil)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return app.Run(ctx)
		},
	}

	cmd.Flags().StringVarP(&configFile, "config", "c", "", "config file (default: ./config.yaml if present)")
	cmd.Flags().IntVarP(&port, "port", "p", 0, "override server.port")

	return cmd
}

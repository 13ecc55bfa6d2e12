package cmd

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"eventify/internal/adapters/web"
	"eventify/internal/config"
	"eventify/internal/infrastructure/database"
)

func newServeCommand(opts *globalOptions) *cobra.Command {
	var (
		host string
		port int
	)
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		Long: `Start the HTTP server and serve the event pages until SIGINT/SIGTERM.

Examples:
  # Start with default configuration (from env vars)
  eventify serve

  # Start on a specific host and port
  eventify serve --host 127.0.0.1 --port 9090

  # Keep data in memory only
  EVENTIFY_STORE_DRIVER=memory eventify serve`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := opts.load()
			if err != nil {
				return err
			}
			if host != "" {
				cfg.Server.Host = host
			}
			if port != 0 {
				cfg.Server.Port = port
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return runServer(ctx, cfg, logger)
		},
	}
	cmd.Flags().StringVar(&host, "host", "", "server host address (default: 0.0.0.0)")
	cmd.Flags().IntVar(&port, "port", 0, "server port (default: 8080)")
	return cmd
}

func runServer(ctx context.Context, cfg *config.Config, logger zerolog.Logger) error {
	store, err := database.Open(ctx, cfg.Store, logger)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			logger.Error().Err(err).Msg("store close error")
		}
	}()

	srv, err := web.NewServer(cfg,
		database.NewEventRepository(store),
		database.NewRegistrationRepository(store),
		database.NewThemeRepository(store),
		logger,
	)
	if err != nil {
		return err
	}
	logger.Info().Str("driver", cfg.Store.Driver).Bool("escape_html", cfg.Render.EscapeHTML).Msg("starting eventify")
	return srv.Run(ctx)
}

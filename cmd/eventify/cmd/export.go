package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"eventify/internal/application"
	"eventify/internal/infrastructure/database"
	"eventify/pkg/tz"
)

func newExportCommand(opts *globalOptions) *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write all registrations as CSV",
		Long: `Write every registration of every event as CSV, in the same format
as the admin page download. Output goes to stdout unless --out is given.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := opts.load()
			if err != nil {
				return err
			}
			ctx := cmd.Context()

			store, err := database.Open(ctx, cfg.Store, logger)
			if err != nil {
				return fmt.Errorf("open store: %w", err)
			}
			defer store.Close()

			loc, ok := tz.Load(cfg.Render.Timezone)
			if !ok {
				logger.Warn().Str("timezone", cfg.Render.Timezone).Msg("unknown time zone, using UTC")
			}
			exporter := application.NewAdminService(
				database.NewEventRepository(store),
				database.NewRegistrationRepository(store),
				loc,
			)

			if out == "" {
				return exporter.ExportCSV(ctx, cmd.OutOrStdout())
			}
			if err := exportToFile(out, func(w io.Writer) error { return exporter.ExportCSV(ctx, w) }); err != nil {
				return err
			}
			logger.Info().Str("file", out).Msg("registrations exported")
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "output file (default: stdout)")
	return cmd
}

// exportToFile creates path and runs write against it. A failed close is an
// error: the data may not have reached the disk.
func exportToFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := write(f); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	return nil
}

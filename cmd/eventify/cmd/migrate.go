package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"eventify/internal/infrastructure/database"
)

func newMigrateCommand(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Prepare the configured store schema",
		Long: `Apply the embedded SQL migrations to the postgres store. For sqlite the
kv table is created if missing; the memory store has no schema.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := opts.load()
			if err != nil {
				return err
			}

			switch cfg.Store.Driver {
			case "postgres":
				return database.RunMigrations(cfg.Store.DatabaseURL, logger)
			case "sqlite":
				store, err := database.NewSQLiteStore(cmd.Context(), cfg.Store.Path)
				if err != nil {
					return err
				}
				logger.Info().Str("path", cfg.Store.Path).Msg("sqlite schema ready")
				return store.Close()
			default:
				fmt.Fprintf(cmd.OutOrStdout(), "store driver %q has no schema to migrate\n", cfg.Store.Driver)
				return nil
			}
		},
	}
}

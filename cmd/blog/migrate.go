package main

import (
	"github.com/deppfellow/go-blog/internal/database"
	"github.com/spf13/cobra"
)

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply the embedded database schema",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, loggerService, log, err := bootstrap()
			if err != nil {
				return err
			}
			defer loggerService.Shutdown()

			if err := database.Migrate(cmd.Context(), log, cfg); err != nil {
				log.Error().Err(err).Msg("failed to migrate database")
				return err
			}

			return nil
		},
	}
}

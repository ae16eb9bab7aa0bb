package main

import (
	"github.com/spf13/cobra"
	"github.com/tommeech/ecommerce-dashboard/internal/database"
	"go.uber.org/zap"
)

func migrateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "create or upgrade the dashboard schema",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := setup()
			if err != nil {
				return err
			}
			defer logger.Sync()

			db, err := database.Open(cmd.Context(), cfg.DatabasePath)
			if err != nil {
				return err
			}
			defer db.Close()

			version, err := database.Migrate(db)
			if err != nil {
				logger.Error("Migration failed", zap.Error(err))
				return err
			}

			logger.Info("Migrated up",
				zap.String("database_path", cfg.DatabasePath),
				zap.Uint("version", version))
			return nil
		},
	}
}

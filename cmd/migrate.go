package main

import (
	"fmt"

	"github.com/DanRulev/vocadeck/internal/config"
	"github.com/DanRulev/vocadeck/internal/storage/db"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply or roll back database migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		down, _ := cmd.Flags().GetBool("down")

		cfg, err := config.Init()
		if err != nil {
			return fmt.Errorf("failed load config: %w", err)
		}
		logger := setupLogger(cfg.Env)
		defer logger.Sync()

		conn, err := db.InitDB(cfg.DB)
		if err != nil {
			return fmt.Errorf("failed init db: %w", err)
		}
		defer conn.Close()

		run, action := db.Migrate, "migrated"
		if down {
			run, action = db.Rollback, "rolled back"
		}

		version, err := run(ctx, conn)
		if err != nil {
			logger.Error("migration failed", zap.Bool("down", down), zap.Error(err))
			return err
		}

		logger.Info("database "+action, zap.String("driver", cfg.DB.Driver), zap.Int64("version", version))
		return nil
	},
}

func init() {
	migrateCmd.Flags().Bool("down", false, "roll back the latest migration")
	rootCmd.AddCommand(migrateCmd)
}

package cmd

import (
	"logistics-requests/database"
	"logistics-requests/database/seeders"
	"logistics-requests/logger"

	"github.com/spf13/cobra"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Create the system owner and, if configured, the first manager",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		defer logger.Close()

		db, err := database.InitDB(cfg)
		if err != nil {
			return err
		}
		defer database.Close(db)

		ctx := cmd.Context()
		if err := seeders.SeedSystemOwner(ctx, db, cfg.SystemOwnerUsername); err != nil {
			return err
		}
		if cfg.ManagerUsername == "" {
			logger.Info("MANAGER_USERNAME not set, skipping manager seed")
			return nil
		}
		return seeders.SeedManager(ctx, db, cfg.ManagerUsername, cfg.ManagerPassword)
	},
}

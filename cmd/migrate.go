package cmd

import (
	"errors"

	"logistics-requests/database"
	"logistics-requests/logger"

	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Manage database migrations",
}

var migrateUpCmd = &cobra.Command{
	Use:   "up",
	Short: "Apply all pending migrations",
	RunE: withDB(func(db *gorm.DB) error {
		if err := database.MigrateUp(db); err != nil {
			return err
		}
		logger.Success("migrate up: ok")
		return nil
	}),
}

var migrateDownCmd = &cobra.Command{
	Use:   "down",
	Short: "Roll back the most recent migration",
	RunE: withDB(func(db *gorm.DB) error {
		if err := database.MigrateDown(db); err != nil {
			return err
		}
		logger.Success("migrate down: ok")
		return nil
	}),
}

var migrateStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show applied and pending migrations",
	RunE:  withDB(database.MigrationStatus),
}

var migrationsDir string

var migrateCreateCmd = &cobra.Command{
	Use:   "create NAME",
	Short: "Create an empty SQL migration",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if args[0] == "" {
			return errors.New("migration name is required")
		}
		return database.CreateMigration(migrationsDir, args[0])
	},
}

func init() {
	migrateCreateCmd.Flags().StringVar(&migrationsDir, "dir", "database/migrations", "directory to write the migration into")
	migrateCmd.AddCommand(migrateUpCmd, migrateDownCmd, migrateStatusCmd, migrateCreateCmd)
}

// withDB opens a connection without migrating and closes it after fn.
func withDB(fn func(db *gorm.DB) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		defer logger.Close()

		db, err := database.Open(cfg)
		if err != nil {
			return err
		}
		defer database.Close(db)
		return fn(db)
	}
}

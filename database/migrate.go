package database

import (
	"embed"
	"fmt"

	"github.com/pressly/goose/v3"
	"gorm.io/gorm"
)

//go:embed migrations/*.sql
var embedMigrations embed.FS

const migrationsDir = "migrations"

func prepareGoose() error {
	goose.SetBaseFS(embedMigrations)
	return goose.SetDialect("postgres")
}

// MigrateUp applies all pending migrations.
func MigrateUp(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	if err := prepareGoose(); err != nil {
		return fmt.Errorf("goose dialect: %w", err)
	}
	if err := goose.Up(sqlDB, migrationsDir); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}
	return nil
}

// MigrateDown rolls back the most recent migration.
func MigrateDown(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	if err := prepareGoose(); err != nil {
		return fmt.Errorf("goose dialect: %w", err)
	}
	return goose.Down(sqlDB, migrationsDir)
}

// MigrationStatus prints applied and pending migrations.
func MigrationStatus(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	if err := prepareGoose(); err != nil {
		return fmt.Errorf("goose dialect: %w", err)
	}
	return goose.Status(sqlDB, migrationsDir)
}

// CreateMigration writes an empty SQL migration into dir on disk.
func CreateMigration(dir, name string) error {
	goose.SetBaseFS(nil)
	return goose.Create(nil, dir, name, "sql")
}

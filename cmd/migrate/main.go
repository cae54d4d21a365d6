package main

import (
	"os"

	"ai-council-be/internal/config"
	"ai-council-be/internal/model"
	"ai-council-be/pkg/database"

	"github.com/fatih/color"
)

func main() {
	cfg := config.Load()
	if cfg.Database.Connection == "" {
		color.Red("Error: DB_CONNECTION_STRING is not set")
		os.Exit(1)
	}

	db, err := database.NewGormDB(database.Options{
		Driver: cfg.Database.Driver,
		DSN:    cfg.Database.Connection,
		Quiet:  true,
	})
	if err != nil {
		color.Red("Error: Failed to connect to database: %v", err)
		os.Exit(1)
	}

	color.Cyan("Starting migration (%s)", cfg.Database.Driver)

	// Extensions first; AutoMigrate needs the vector type for memories.embedding.
	if database.IsPostgres(db) {
		color.Yellow("Step 1: Setting up extensions...")
		for _, sql := range []string{
			`CREATE EXTENSION IF NOT EXISTS pgcrypto;`,
			`CREATE EXTENSION IF NOT EXISTS vector;`,
		} {
			if err := db.Exec(sql).Error; err != nil {
				color.Red("Warn: %v. Continuing...", err)
			}
		}
	}

	color.Yellow("Step 2: Running AutoMigrate for %d tables...", len(model.All()))
	if err := db.AutoMigrate(model.All()...); err != nil {
		color.Red("Error: AutoMigrate failed: %v", err)
		os.Exit(1)
	}

	color.Green("✅ Success: Database migration completed.")
}

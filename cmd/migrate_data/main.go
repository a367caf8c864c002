package main

import (
	"log"
	"template-studio/internal/config"
	"template-studio/internal/database"
	"template-studio/internal/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// One-off tool: copies the local SQLite development database into the
// PostgreSQL instance configured via the environment.
func main() {
	cfg := config.LoadConfig()

	// 1. Connect to SQLite (Source)
	sqliteDB, err := gorm.Open(sqlite.Open(cfg.DBPath), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to SQLite: %v", err)
	}
	log.Printf("Connected to SQLite at %s", cfg.DBPath)

	// 2. Connect to PostgreSQL (Destination)
	if cfg.DBHost == "" {
		log.Fatal("DB_HOST must be set to the destination PostgreSQL host")
	}
	database.InitGorm(cfg)
	pgDB := database.GormDB

	log.Println("Starting data migration...")

	var templates []models.Template
	if err := sqliteDB.Find(&templates).Error; err != nil {
		log.Fatalf("Error reading templates from SQLite: %v", err)
	}

	var media []models.Media
	if err := sqliteDB.Find(&media).Error; err != nil {
		log.Fatalf("Error reading media from SQLite: %v", err)
	}

	err = pgDB.Transaction(func(tx *gorm.DB) error {
		if len(templates) > 0 {
			if err := tx.Create(&templates).Error; err != nil {
				return err
			}
		}
		if len(media) > 0 {
			if err := tx.Create(&media).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		log.Fatalf("Error writing to Postgres: %v", err)
	}

	log.Printf("Successfully migrated %d templates and %d media records", len(templates), len(media))
}

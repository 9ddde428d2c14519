package database

import (
	"fmt"
	"path/filepath"

	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/sqlite"

	"github.com/ntu-info/emogo-backend-ChenYuWen/models"
)

// Open connects to the sqlite store under configPath and migrates the
// record tables. The returned handle is the process-wide store; callers
// own its lifecycle and pass it to whatever needs it.
func Open(configPath string) (*gorm.DB, error) {
	if configPath == "" {
		configPath = "."
	}

	dbPath := filepath.Join(configPath, "emogo.db")
	db, err := gorm.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database at %s: %w", dbPath, err)
	}

	db.AutoMigrate(&models.Sentiment{}, &models.GpsPoint{}, &models.Vlog{})
	return db, nil
}

// OpenMemory returns a migrated in-memory store, for tests.
func OpenMemory() (*gorm.DB, error) {
	db, err := gorm.Open("sqlite3", ":memory:")
	if err != nil {
		return nil, err
	}
	db.AutoMigrate(&models.Sentiment{}, &models.GpsPoint{}, &models.Vlog{})
	return db, nil
}

// Close tears the handle down. Safe on nil.
func Close(db *gorm.DB) {
	if db != nil {
		db.Close()
	}
}

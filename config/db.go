package config

import (
	"github.com/elis333333/Agrokit-Inteligente/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// OpenStore opens the sqlite snapshot file, creating it when absent, and
// makes sure the three tables exist. Every read and write in the process
// goes through the returned handle.
func OpenStore(cfg *Config) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(cfg.DBPath), &gorm.Config{})
	if err != nil {
		return nil, err
	}
	if err := db.AutoMigrate(&models.User{}, &models.Agrokit{}, &models.SensorReading{}); err != nil {
		return nil, err
	}
	return db, nil
}

// FlushStore checkpoints the store to its snapshot file. Individual writes
// are already durable per transaction; this is the final checkpoint taken
// on graceful shutdown.
func FlushStore(db *gorm.DB) error {
	return db.Exec("PRAGMA wal_checkpoint(TRUNCATE)").Error
}

// CloseStore releases the underlying connection.
func CloseStore(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

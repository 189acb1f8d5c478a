// Package databasetest opens isolated in-memory SQLite databases for tests.
package databasetest

import (
	"testing"

	"github.com/ahmetcoskunkizilkaya/myflat/internal/config"
	"github.com/ahmetcoskunkizilkaya/myflat/internal/database"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// New returns a migrated database that lives until the test ends.
func New(t testing.TB) *gorm.DB {
	t.Helper()

	cfg := &config.Config{
		DatabaseURL:    "file:" + uuid.NewString() + "?mode=memory&cache=shared",
		DBMaxOpenConns: 1,
		DBMaxIdleConns: 1,
	}
	db, err := database.Connect(cfg)
	if err != nil {
		t.Fatalf("connect test database: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate test database: %v", err)
	}

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

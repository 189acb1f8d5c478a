package database

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/ahmetcoskunkizilkaya/myflat/internal/config"
	"github.com/ahmetcoskunkizilkaya/myflat/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Connect opens the database named by cfg.DatabaseURL. SQLite and Postgres
// are supported; anything that is not a postgres URL is treated as SQLite.
func Connect(cfg *config.Config) (*gorm.DB, error) {
	dialector, isSQLite, err := Dialector(cfg.DatabaseURL)
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Warn),
		TranslateError: true,
		NowFunc:        func() time.Time { return time.Now().UTC() },
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}

	if isSQLite {
		// SQLite allows a single writer.
		sqlDB.SetMaxOpenConns(1)
		sqlDB.SetMaxIdleConns(1)
	} else {
		sqlDB.SetMaxOpenConns(cfg.DBMaxOpenConns)
		sqlDB.SetMaxIdleConns(cfg.DBMaxIdleConns)
		sqlDB.SetConnMaxLifetime(30 * time.Minute)
		sqlDB.SetConnMaxIdleTime(5 * time.Minute)
	}

	slog.Info("database connected", "driver", dialector.Name())
	return db, nil
}

// Dialector maps a DATABASE_URL onto a gorm dialector.
//
//	postgres://... | postgresql://...  postgres
//	sqlite:///relative.db              sqlite, path relative to the working dir
//	sqlite:////abs/path.db             sqlite, absolute path
//	file:name?mode=memory              sqlite DSN passed through
//	anything else                      sqlite file path
func Dialector(url string) (gorm.Dialector, bool, error) {
	switch {
	case strings.HasPrefix(url, "postgres://"), strings.HasPrefix(url, "postgresql://"):
		return postgres.Open(url), false, nil
	case strings.HasPrefix(url, "file:"):
		return sqlite.Open(withPragmas(url)), true, nil
	case strings.HasPrefix(url, "sqlite://"):
		path := strings.TrimPrefix(url, "sqlite://")
		path = strings.TrimPrefix(path, "/")
		if path == "" {
			return nil, false, fmt.Errorf("database url %q has no path", url)
		}
		return sqliteFile(path)
	case url == "":
		return nil, false, fmt.Errorf("database url is empty")
	default:
		return sqliteFile(url)
	}
}

func sqliteFile(path string) (gorm.Dialector, bool, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, false, fmt.Errorf("failed to create database directory: %w", err)
		}
	}
	return sqlite.Open(withPragmas(path + "?_journal_mode=WAL&_busy_timeout=5000")), true, nil
}

func withPragmas(dsn string) string {
	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	return dsn + sep + "_foreign_keys=on"
}

// Migrate creates or updates every table the app uses.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Listing{},
		&models.SystemLog{},
	)
}

func Ping(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

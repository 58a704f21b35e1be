package database

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/aqilaqsy-bot/smart-shopping-planner/internal/config"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Init opens the configured database with a managed connection pool.
// MySQL is the normal deployment target; sqlite is for local development
// and tests.
func Init(cfg config.DatabaseConfig) (*gorm.DB, error) {
	gormCfg := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	}

	var (
		db  *gorm.DB
		err error
	)
	switch cfg.Driver {
	case "sqlite":
		if dir := filepath.Dir(cfg.Path); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("create db dir: %w", err)
			}
		}
		// FK enforcement is off by default in sqlite; the DSN flag turns
		// it on for every pooled connection
		db, err = gorm.Open(sqlite.Open(cfg.DSN()+"?_foreign_keys=on"), gormCfg)
	default:
		db, err = gorm.Open(mysql.Open(cfg.DSN()), gormCfg)
	}
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get sql db: %w", err)
	}

	// connection pool
	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(time.Hour)

	return db, nil
}

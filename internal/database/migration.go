package database

import (
	"fmt"

	"github.com/aqilaqsy-bot/smart-shopping-planner/internal/models"

	"gorm.io/gorm"
)

// AutoMigrate creates the four application tables idempotently and adds
// any columns introduced after the first release (category, is_archived,
// created_at, budget). There is no migration version ledger; existence
// checks inside AutoMigrate do the guarding.
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.User{},
		&models.List{},
		&models.Item{},
		&models.ProductKnowledge{},
	); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}

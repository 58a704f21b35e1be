package models

import "time"

// List is a named collection of items with its own budget.
// Budget is stored in cents to keep the balance math exact,
// e.g. RM 12.34 = 1234 cents.
type List struct {
	ID         uint   `gorm:"primaryKey"`
	UserID     uint   `gorm:"index;not null"`
	Name       string `gorm:"size:255;not null"`
	BudgetCent int64  `gorm:"not null;default:0"`
	IsArchived bool   `gorm:"not null;default:false"`
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// deleting a list removes its items via the FK constraint
	Items []Item `gorm:"constraint:OnDelete:CASCADE"`
}

package models

import "time"

// User represents application user.
type User struct {
	ID           uint   `gorm:"primaryKey"`
	Username     string `gorm:"size:255;uniqueIndex;not null"`
	PasswordHash string `gorm:"size:255;not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	// deleting a user removes all of their lists via the FK constraint
	Lists []List `gorm:"constraint:OnDelete:CASCADE"`
}

package models

import "time"

// ProductKnowledge is a per-user price/location memory for the assistant.
// The table is part of the schema but no route reads or writes it yet.
type ProductKnowledge struct {
	ID        uint   `gorm:"primaryKey"`
	UserID    uint   `gorm:"index;not null"`
	ItemName  string `gorm:"size:255;not null"`
	PriceCent int64  `gorm:"not null"`
	Location  string `gorm:"size:255"`
	CreatedAt time.Time
}

// TableName keeps the historical table name from the first schema.
func (ProductKnowledge) TableName() string { return "product_knowledge" }

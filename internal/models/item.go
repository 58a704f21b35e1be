package models

import "time"

// Item is one purchasable entry inside a list.
// Price is stored in cents; the line total is PriceCent * Quantity.
type Item struct {
	ID        uint   `gorm:"primaryKey"`
	ListID    uint   `gorm:"index;not null"`
	Name      string `gorm:"size:255;not null"`
	PriceCent int64  `gorm:"not null"`
	Quantity  int    `gorm:"not null"`
	Category  string `gorm:"size:50;not null;default:General"`
	IsBought  bool   `gorm:"not null;default:false"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// LineTotalCent returns price * quantity in cents.
func (i *Item) LineTotalCent() int64 {
	return i.PriceCent * int64(i.Quantity)
}

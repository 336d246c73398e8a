package models

import "time"

type Item struct {
	ID         uint     `gorm:"primaryKey" json:"id"`
	CategoryID uint     `gorm:"not null" json:"categoryId"`
	Category   Category `gorm:"foreignKey:CategoryID;references:ID" json:"-"`
	Name       string   `gorm:"type:varchar(255);not null" json:"name"`
	// Price is snapshotted into order lines at pricing time; editing it
	// never touches orders that were already placed.
	Price     float64   `gorm:"type:decimal(10,2);not null" json:"price"`
	CreatedAt time.Time `gorm:"not null" json:"-"`
	UpdatedAt time.Time `gorm:"not null" json:"-"`
}

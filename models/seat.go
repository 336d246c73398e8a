package models

import "time"

type Seat struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Name       string    `gorm:"type:varchar(50);not null" json:"name"`
	IsReserved bool      `gorm:"not null;default:false" json:"isReserved"`
	CreatedAt  time.Time `gorm:"not null" json:"-"`
	UpdatedAt  time.Time `gorm:"not null" json:"-"`
}

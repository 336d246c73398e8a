package models

import "time"

type Order struct {
	ID     uint        `gorm:"primaryKey" json:"id"`
	SeatID *uint       `gorm:"index" json:"seatId"`
	Seat   *Seat       `gorm:"foreignKey:SeatID;references:ID" json:"-"`
	Total  float64     `gorm:"type:decimal(10,2);not null;default:0.00" json:"total"`
	Lines  []OrderLine `gorm:"foreignKey:OrderID" json:"lines"`

	CreatedAt time.Time `gorm:"not null" json:"-"`
	UpdatedAt time.Time `gorm:"not null" json:"-"`
}

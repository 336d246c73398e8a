package models

import (
	"encoding/json"
	"time"

	"gorm.io/gorm"
)

type Booking struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	Name      string `gorm:"type:varchar(100);not null" json:"name"`
	Date      string `gorm:"type:varchar(50);not null" json:"date"`
	SeatCount int    `gorm:"not null;default:0" json:"seatCount"`
	// ReservedSeatIDs holds the allocated seat ids as a JSON array, in
	// allocation order. ReservedSeats mirrors it for API responses.
	ReservedSeatIDs string    `gorm:"type:text" json:"-"`
	ReservedSeats   []uint    `gorm:"-" json:"reservedSeats"`
	CreatedAt       time.Time `gorm:"not null" json:"-"`
	UpdatedAt       time.Time `gorm:"not null" json:"-"`
}

// SetReservedSeats stores the seat id list into the JSON column.
func (b *Booking) SetReservedSeats(ids []uint) error {
	if ids == nil {
		ids = []uint{}
	}
	data, err := json.Marshal(ids)
	if err != nil {
		return err
	}
	b.ReservedSeatIDs = string(data)
	b.ReservedSeats = ids
	return nil
}

// GetReservedSeats decodes the JSON column; a corrupt or empty column
// decodes to an empty list.
func (b *Booking) GetReservedSeats() []uint {
	if b.ReservedSeatIDs == "" {
		return []uint{}
	}
	var ids []uint
	if err := json.Unmarshal([]byte(b.ReservedSeatIDs), &ids); err != nil {
		return []uint{}
	}
	return ids
}

// AfterFind keeps the exported seat list in sync with the stored column.
func (b *Booking) AfterFind(tx *gorm.DB) error {
	b.ReservedSeats = b.GetReservedSeats()
	return nil
}

package services

import (
	"github.com/99xcafe/pos-backend/models"
	"github.com/99xcafe/pos-backend/utils"
	"gorm.io/gorm"
)

// SeatAllocator marks seats reserved for bookings and frees them again.
// It does not lock anything itself; the booking controller serializes
// every call behind its mutex.
type SeatAllocator struct {
	DB *gorm.DB
}

func NewSeatAllocator(db *gorm.DB) *SeatAllocator {
	return &SeatAllocator{DB: db}
}

// Reserve picks the first seatCount free seats in ascending id order,
// marks them reserved and returns their ids. When fewer seats are free
// it fails with InsufficientSeatsError and changes nothing.
func (sa *SeatAllocator) Reserve(seatCount int) ([]uint, error) {
	var free []models.Seat
	if err := sa.DB.Where("is_reserved = ?", false).Order("id ASC").Find(&free).Error; err != nil {
		return nil, err
	}

	if len(free) < seatCount {
		return nil, &InsufficientSeatsError{Available: len(free), Requested: seatCount}
	}

	ids := make([]uint, 0, seatCount)
	for i := 0; i < seatCount; i++ {
		free[i].IsReserved = true
		if err := sa.DB.Save(&free[i]).Error; err != nil {
			return nil, err
		}
		ids = append(ids, free[i].ID)
	}
	return ids, nil
}

// Release frees every seat in the list. Ids that no longer resolve to a
// seat are silently skipped, so a booking whose seat was deleted in the
// meantime can still be removed.
func (sa *SeatAllocator) Release(seatIDs []uint) {
	sa.setReserved(seatIDs, false)
}

// Restore re-marks previously allocated seats as reserved. Used to put a
// booking back together when re-reservation during an update fails.
func (sa *SeatAllocator) Restore(seatIDs []uint) {
	sa.setReserved(seatIDs, true)
}

func (sa *SeatAllocator) setReserved(seatIDs []uint, reserved bool) {
	for _, id := range seatIDs {
		var seat models.Seat
		if err := sa.DB.First(&seat, id).Error; err != nil {
			continue
		}
		seat.IsReserved = reserved
		if err := sa.DB.Save(&seat).Error; err != nil {
			utils.ErrorLogger.Printf("Failed to update seat %d reservation: %v", id, err)
		}
	}
}

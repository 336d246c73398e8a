package controllers

import (
	"net/http"
	"strconv"
	"sync"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/99xcafe/pos-backend/events"
	"github.com/99xcafe/pos-backend/models"
	"github.com/99xcafe/pos-backend/services"
	"github.com/99xcafe/pos-backend/utils"
)

// BookingController owns the only mutex touching seats and bookings, so
// two requests can never hand out the same seat.
type BookingController struct {
	DB        *gorm.DB
	allocator *services.SeatAllocator
	mu        sync.Mutex
}

func NewBookingController(db *gorm.DB) *BookingController {
	return &BookingController{
		DB:        db,
		allocator: services.NewSeatAllocator(db),
	}
}

// GetAllBookings
func (bc *BookingController) GetAllBookings(c *gin.Context) {
	var bookings []models.Booking
	if err := bc.DB.Find(&bookings).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "All bookings", bookings)
}

// CreateBooking -> reserves seatCount free seats as part of the create
func (bc *BookingController) CreateBooking(c *gin.Context) {
	var body struct {
		Name      string `json:"name"`
		Date      string `json:"date"`
		SeatCount *int   `json:"seatCount"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if body.Name == "" {
		utils.RespondError(c, http.StatusBadRequest, &services.ValidationError{Field: "Booking name"})
		return
	}
	if body.Date == "" {
		utils.RespondError(c, http.StatusBadRequest, &services.ValidationError{Field: "Booking date"})
		return
	}
	if body.SeatCount == nil {
		utils.RespondError(c, http.StatusBadRequest, &services.ValidationError{Field: "seatCount"})
		return
	}
	if *body.SeatCount < 0 {
		utils.RespondError(c, http.StatusBadRequest, &services.ValidationError{Field: "seatCount", Msg: "seatCount must not be negative."})
		return
	}

	bc.mu.Lock()
	defer bc.mu.Unlock()

	seatIDs, err := bc.allocator.Reserve(*body.SeatCount)
	if err != nil {
		utils.RespondError(c, services.HTTPStatus(err), err)
		return
	}

	booking := models.Booking{
		Name:      body.Name,
		Date:      body.Date,
		SeatCount: *body.SeatCount,
	}
	if err := booking.SetReservedSeats(seatIDs); err != nil {
		bc.allocator.Release(seatIDs)
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	if err := bc.DB.Create(&booking).Error; err != nil {
		bc.allocator.Release(seatIDs)
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	events.Broadcast(events.EventBookingCreate, booking)
	broadcastStats(bc.DB)
	utils.InfoLogger.Printf("Booking %d created: %s, %d seat(s)", booking.ID, booking.Name, booking.SeatCount)
	utils.RespondJSON(c, http.StatusCreated, "Booking created", booking)
}

// UpdateBooking -> a changed seatCount releases the old seats and reserves
// again. When the new reservation cannot be satisfied the old seats are
// restored exactly, so a failed update never loses the reservation.
func (bc *BookingController) UpdateBooking(c *gin.Context) {
	idStr := c.Param("booking_id")
	id, _ := strconv.Atoi(idStr)

	var body struct {
		Name      string `json:"name"`
		Date      string `json:"date"`
		SeatCount *int   `json:"seatCount"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	if body.SeatCount != nil && *body.SeatCount < 0 {
		utils.RespondError(c, http.StatusBadRequest, &services.ValidationError{Field: "seatCount", Msg: "seatCount must not be negative."})
		return
	}

	bc.mu.Lock()
	defer bc.mu.Unlock()

	var booking models.Booking
	if err := bc.DB.First(&booking, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, &services.NotFoundError{Collection: "Booking", ID: uint(id)})
		return
	}

	if body.Name != "" {
		booking.Name = body.Name
	}
	if body.Date != "" {
		booking.Date = body.Date
	}

	var undoReseat func()
	if body.SeatCount != nil {
		oldSeats := booking.GetReservedSeats()
		bc.allocator.Release(oldSeats)

		newSeats, err := bc.allocator.Reserve(*body.SeatCount)
		if err != nil {
			bc.allocator.Restore(oldSeats)
			utils.RespondError(c, services.HTTPStatus(err), err)
			return
		}
		undoReseat = func() {
			bc.allocator.Release(newSeats)
			bc.allocator.Restore(oldSeats)
		}

		booking.SeatCount = *body.SeatCount
		if err := booking.SetReservedSeats(newSeats); err != nil {
			undoReseat()
			utils.RespondError(c, http.StatusInternalServerError, err)
			return
		}
	}

	if err := bc.DB.Save(&booking).Error; err != nil {
		// A failed save must not leak the re-reservation
		if undoReseat != nil {
			undoReseat()
		}
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	events.Broadcast(events.EventBookingUpdate, booking)
	broadcastStats(bc.DB)
	utils.InfoLogger.Printf("Booking %d updated", booking.ID)
	utils.RespondJSON(c, http.StatusOK, "Booking updated", booking)
}

// DeleteBooking -> releases the booking's seats, then removes the record
func (bc *BookingController) DeleteBooking(c *gin.Context) {
	idStr := c.Param("booking_id")
	id, _ := strconv.Atoi(idStr)

	bc.mu.Lock()
	defer bc.mu.Unlock()

	var booking models.Booking
	if err := bc.DB.First(&booking, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, &services.NotFoundError{Collection: "Booking", ID: uint(id)})
		return
	}

	bc.allocator.Release(booking.GetReservedSeats())

	if err := bc.DB.Delete(&booking).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	events.Broadcast(events.EventBookingDelete, gin.H{"deleted": booking.ID})
	broadcastStats(bc.DB)
	utils.InfoLogger.Printf("Booking %d deleted, %d seat(s) released", booking.ID, booking.SeatCount)
	utils.RespondJSON(c, http.StatusOK, "Booking deleted", booking)
}

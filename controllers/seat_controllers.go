package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/99xcafe/pos-backend/events"
	"github.com/99xcafe/pos-backend/models"
	"github.com/99xcafe/pos-backend/services"
	"github.com/99xcafe/pos-backend/utils"
)

type SeatController struct {
	DB *gorm.DB
}

func NewSeatController(db *gorm.DB) *SeatController {
	return &SeatController{DB: db}
}

// GetAllSeats
func (sc *SeatController) GetAllSeats(c *gin.Context) {
	var seats []models.Seat
	if err := sc.DB.Order("id ASC").Find(&seats).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "All seats", seats)
}

// CreateSeat -> new seats always start free
func (sc *SeatController) CreateSeat(c *gin.Context) {
	var body struct {
		Name string `json:"name"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	if body.Name == "" {
		utils.RespondError(c, http.StatusBadRequest, &services.ValidationError{Field: "Seat name"})
		return
	}

	seat := models.Seat{
		Name:       body.Name,
		IsReserved: false,
	}
	if err := sc.DB.Create(&seat).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	events.Broadcast(events.EventSeatChange, seat)
	utils.InfoLogger.Printf("New seat created: %s", seat.Name)
	utils.RespondJSON(c, http.StatusCreated, "Seat created", seat)
}

// UpdateSeat -> partial update of name and/or reservation flag. Flipping
// isReserved by hand is a till-side override; bookings do it through the
// seat allocator.
func (sc *SeatController) UpdateSeat(c *gin.Context) {
	idStr := c.Param("seat_id")
	id, _ := strconv.Atoi(idStr)

	var body struct {
		Name       *string `json:"name"`
		IsReserved *bool   `json:"isReserved"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var seat models.Seat
	if err := sc.DB.First(&seat, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, &services.NotFoundError{Collection: "Seat", ID: uint(id)})
		return
	}

	if body.Name != nil && *body.Name != "" {
		seat.Name = *body.Name
	}
	if body.IsReserved != nil {
		seat.IsReserved = *body.IsReserved
	}

	if err := sc.DB.Save(&seat).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	events.Broadcast(events.EventSeatChange, seat)
	utils.RespondJSON(c, http.StatusOK, "Seat updated", seat)
}

// DeleteSeat -> removes the seat and returns the removed record
func (sc *SeatController) DeleteSeat(c *gin.Context) {
	idStr := c.Param("seat_id")
	id, _ := strconv.Atoi(idStr)

	var seat models.Seat
	if err := sc.DB.First(&seat, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, &services.NotFoundError{Collection: "Seat", ID: uint(id)})
		return
	}

	if err := sc.DB.Delete(&seat).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	events.Broadcast(events.EventSeatChange, gin.H{"deleted": seat.ID})
	utils.InfoLogger.Printf("Seat %d deleted", seat.ID)
	utils.RespondJSON(c, http.StatusOK, "Seat deleted", seat)
}

package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/99xcafe/pos-backend/events"
	"github.com/99xcafe/pos-backend/models"
	"github.com/99xcafe/pos-backend/utils"
)

type StatsController struct {
	DB *gorm.DB
}

func NewStatsController(db *gorm.DB) *StatsController {
	return &StatsController{DB: db}
}

// DashboardStats collects the counters the management dashboard shows.
func DashboardStats(db *gorm.DB) (map[string]interface{}, error) {
	var freeSeats, reservedSeats, bookings, orders int64
	var revenue float64

	if err := db.Model(&models.Seat{}).Where("is_reserved = ?", false).Count(&freeSeats).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&models.Seat{}).Where("is_reserved = ?", true).Count(&reservedSeats).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&models.Booking{}).Count(&bookings).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&models.Order{}).Count(&orders).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&models.Order{}).Select("COALESCE(SUM(total), 0)").Scan(&revenue).Error; err != nil {
		return nil, err
	}

	return map[string]interface{}{
		"seats": map[string]interface{}{
			"free":     freeSeats,
			"reserved": reservedSeats,
			"total":    freeSeats + reservedSeats,
		},
		"bookings": bookings,
		"orders":   orders,
		"revenue":  revenue,
	}, nil
}

// broadcastStats pushes refreshed dashboard counters to the event feed.
// A failed collection only skips the push; the mutation that triggered
// it already succeeded.
func broadcastStats(db *gorm.DB) {
	stats, err := DashboardStats(db)
	if err != nil {
		utils.ErrorLogger.Printf("Failed to collect dashboard stats: %v", err)
		return
	}
	events.Broadcast(events.EventStatsUpdate, stats)
}

// GetStats -> dashboard counters for the management app
func (sc *StatsController) GetStats(c *gin.Context) {
	stats, err := DashboardStats(sc.DB)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Dashboard stats", stats)
}

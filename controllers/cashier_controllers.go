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

type CashierController struct {
	DB *gorm.DB
}

func NewCashierController(db *gorm.DB) *CashierController {
	return &CashierController{DB: db}
}

// GetAllCashiers
func (cc *CashierController) GetAllCashiers(c *gin.Context) {
	var cashiers []models.Cashier
	if err := cc.DB.Find(&cashiers).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "All cashiers", cashiers)
}

// CreateCashier
func (cc *CashierController) CreateCashier(c *gin.Context) {
	var body struct {
		Name string `json:"name"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	if body.Name == "" {
		utils.RespondError(c, http.StatusBadRequest, &services.ValidationError{Field: "Cashier name"})
		return
	}

	cashier := models.Cashier{
		Name: body.Name,
	}
	if err := cc.DB.Create(&cashier).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	events.Broadcast(events.EventCashierChange, cashier)
	utils.RespondJSON(c, http.StatusCreated, "Cashier created", cashier)
}

// UpdateCashier
func (cc *CashierController) UpdateCashier(c *gin.Context) {
	idStr := c.Param("cashier_id")
	id, _ := strconv.Atoi(idStr)

	var body struct {
		Name string `json:"name"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var cashier models.Cashier
	if err := cc.DB.First(&cashier, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, &services.NotFoundError{Collection: "Cashier", ID: uint(id)})
		return
	}

	if body.Name != "" {
		cashier.Name = body.Name
	}

	if err := cc.DB.Save(&cashier).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	events.Broadcast(events.EventCashierChange, cashier)
	utils.RespondJSON(c, http.StatusOK, "Cashier updated", cashier)
}

// DeleteCashier -> removes the cashier and returns the removed record
func (cc *CashierController) DeleteCashier(c *gin.Context) {
	idStr := c.Param("cashier_id")
	id, _ := strconv.Atoi(idStr)

	var cashier models.Cashier
	if err := cc.DB.First(&cashier, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, &services.NotFoundError{Collection: "Cashier", ID: uint(id)})
		return
	}

	if err := cc.DB.Delete(&cashier).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	events.Broadcast(events.EventCashierChange, gin.H{"deleted": cashier.ID})
	utils.RespondJSON(c, http.StatusOK, "Cashier deleted", cashier)
}

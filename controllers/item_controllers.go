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

type ItemController struct {
	DB *gorm.DB
}

func NewItemController(db *gorm.DB) *ItemController {
	return &ItemController{DB: db}
}

// GetAllItems
func (ic *ItemController) GetAllItems(c *gin.Context) {
	var items []models.Item
	if err := ic.DB.Find(&items).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "All items", items)
}

// CreateItem -> categoryId must resolve before anything is written
func (ic *ItemController) CreateItem(c *gin.Context) {
	var body struct {
		Name       string        `json:"name"`
		Price      *float64      `json:"price"`
		CategoryID models.FlexID `json:"categoryId"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if body.Name == "" {
		utils.RespondError(c, http.StatusBadRequest, &services.ValidationError{Field: "Item name"})
		return
	}
	if body.Price == nil {
		utils.RespondError(c, http.StatusBadRequest, &services.ValidationError{Field: "Item price"})
		return
	}
	if *body.Price < 0 {
		utils.RespondError(c, http.StatusBadRequest, &services.ValidationError{Field: "Item price", Msg: "Item price must not be negative."})
		return
	}
	if body.CategoryID == 0 {
		utils.RespondError(c, http.StatusBadRequest, &services.ValidationError{Field: "categoryId"})
		return
	}

	var category models.Category
	if err := ic.DB.First(&category, body.CategoryID.Uint()).Error; err != nil {
		utils.RespondError(c, http.StatusBadRequest, &services.InvalidReferenceError{Field: "categoryId", Value: body.CategoryID.Uint()})
		return
	}

	item := models.Item{
		Name:       body.Name,
		Price:      *body.Price,
		CategoryID: category.ID,
	}
	if err := ic.DB.Create(&item).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	events.Broadcast(events.EventItemChange, item)
	utils.InfoLogger.Printf("New item created: %s (%s)", item.Name, utils.FormatAmount(item.Price))
	utils.RespondJSON(c, http.StatusCreated, "Item created", item)
}

// UpdateItem -> same fields as create; a changed categoryId is re-validated
func (ic *ItemController) UpdateItem(c *gin.Context) {
	idStr := c.Param("item_id")
	id, _ := strconv.Atoi(idStr)

	var body struct {
		Name       string         `json:"name"`
		Price      *float64       `json:"price"`
		CategoryID *models.FlexID `json:"categoryId"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var item models.Item
	if err := ic.DB.First(&item, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, &services.NotFoundError{Collection: "Item", ID: uint(id)})
		return
	}

	if body.Name != "" {
		item.Name = body.Name
	}
	if body.Price != nil {
		if *body.Price < 0 {
			utils.RespondError(c, http.StatusBadRequest, &services.ValidationError{Field: "Item price", Msg: "Item price must not be negative."})
			return
		}
		item.Price = *body.Price
	}
	if body.CategoryID != nil {
		var category models.Category
		if err := ic.DB.First(&category, body.CategoryID.Uint()).Error; err != nil {
			utils.RespondError(c, http.StatusBadRequest, &services.InvalidReferenceError{Field: "categoryId", Value: body.CategoryID.Uint()})
			return
		}
		item.CategoryID = category.ID
	}

	if err := ic.DB.Save(&item).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	events.Broadcast(events.EventItemChange, item)
	utils.RespondJSON(c, http.StatusOK, "Item updated", item)
}

// DeleteItem -> removes the item and returns the removed record. Order
// lines keep their snapshot of the item, so this never rewrites history.
func (ic *ItemController) DeleteItem(c *gin.Context) {
	idStr := c.Param("item_id")
	id, _ := strconv.Atoi(idStr)

	var item models.Item
	if err := ic.DB.First(&item, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, &services.NotFoundError{Collection: "Item", ID: uint(id)})
		return
	}

	if err := ic.DB.Delete(&item).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	events.Broadcast(events.EventItemChange, gin.H{"deleted": item.ID})
	utils.RespondJSON(c, http.StatusOK, "Item deleted", item)
}

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

type OrderController struct {
	DB     *gorm.DB
	pricer *services.OrderPricer
	mu     sync.Mutex
}

func NewOrderController(db *gorm.DB) *OrderController {
	return &OrderController{
		DB:     db,
		pricer: services.NewOrderPricer(db),
	}
}

type orderRequest struct {
	SeatID *models.FlexID       `json:"seatId"`
	Lines  []services.LineInput `json:"lines"`
}

// GetAllOrders -> list orders with their lines
func (oc *OrderController) GetAllOrders(c *gin.Context) {
	var orders []models.Order
	if err := oc.DB.Preload("Lines").Find(&orders).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "All orders", orders)
}

// GetOrderByID -> detail of one order
func (oc *OrderController) GetOrderByID(c *gin.Context) {
	idStr := c.Param("order_id")
	id, _ := strconv.Atoi(idStr)

	var order models.Order
	if err := oc.DB.Preload("Lines").First(&order, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, &services.NotFoundError{Collection: "Order", ID: uint(id)})
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Order detail", order)
}

// CreateOrder -> prices the lines first; an unknown item rejects the whole
// order before anything is written.
func (oc *OrderController) CreateOrder(c *gin.Context) {
	var body orderRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	if len(body.Lines) == 0 {
		utils.RespondError(c, http.StatusBadRequest, &services.ValidationError{Field: "lines", Msg: "Order lines required."})
		return
	}

	oc.mu.Lock()
	defer oc.mu.Unlock()

	lines, total, err := oc.pricer.Price(body.Lines)
	if err != nil {
		utils.RespondError(c, services.HTTPStatus(err), err)
		return
	}

	order := models.Order{
		SeatID: seatIDPtr(body.SeatID),
		Total:  total,
		Lines:  lines,
	}
	if err := oc.DB.Create(&order).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	events.Broadcast(events.EventOrderCreate, order)
	broadcastStats(oc.DB)
	utils.InfoLogger.Printf("Order %d created, total %s", order.ID, utils.FormatAmount(order.Total))
	utils.RespondJSON(c, http.StatusCreated, "Order created", order)
}

// UpdateOrder -> replaces seatId, lines and total wholesale; there is no
// incremental line diffing.
func (oc *OrderController) UpdateOrder(c *gin.Context) {
	idStr := c.Param("order_id")
	id, _ := strconv.Atoi(idStr)

	var body orderRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	if len(body.Lines) == 0 {
		utils.RespondError(c, http.StatusBadRequest, &services.ValidationError{Field: "lines", Msg: "Order lines required."})
		return
	}

	oc.mu.Lock()
	defer oc.mu.Unlock()

	var order models.Order
	if err := oc.DB.Preload("Lines").First(&order, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, &services.NotFoundError{Collection: "Order", ID: uint(id)})
		return
	}

	// Pricing happens before any write, so a bad line leaves the stored
	// order exactly as it was.
	lines, total, err := oc.pricer.Price(body.Lines)
	if err != nil {
		utils.RespondError(c, services.HTTPStatus(err), err)
		return
	}

	err = oc.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("order_id = ?", order.ID).Delete(&models.OrderLine{}).Error; err != nil {
			return err
		}
		for i := range lines {
			lines[i].OrderID = order.ID
			if err := tx.Create(&lines[i]).Error; err != nil {
				return err
			}
		}
		order.SeatID = seatIDPtr(body.SeatID)
		order.Total = total
		order.Lines = lines
		return tx.Save(&order).Error
	})
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	events.Broadcast(events.EventOrderUpdate, order)
	broadcastStats(oc.DB)
	utils.InfoLogger.Printf("Order %d updated, total %s", order.ID, utils.FormatAmount(order.Total))
	utils.RespondJSON(c, http.StatusOK, "Order updated", order)
}

// DeleteOrder -> removes the order and its lines, returns the removed order
func (oc *OrderController) DeleteOrder(c *gin.Context) {
	idStr := c.Param("order_id")
	id, _ := strconv.Atoi(idStr)

	oc.mu.Lock()
	defer oc.mu.Unlock()

	var order models.Order
	if err := oc.DB.Preload("Lines").First(&order, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, &services.NotFoundError{Collection: "Order", ID: uint(id)})
		return
	}

	err := oc.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("order_id = ?", order.ID).Delete(&models.OrderLine{}).Error; err != nil {
			return err
		}
		return tx.Delete(&order).Error
	})
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	events.Broadcast(events.EventOrderDelete, gin.H{"deleted": order.ID})
	broadcastStats(oc.DB)
	utils.InfoLogger.Printf("Order %d deleted", order.ID)
	utils.RespondJSON(c, http.StatusOK, "Order deleted", order)
}

func seatIDPtr(id *models.FlexID) *uint {
	if id == nil || *id == 0 {
		return nil
	}
	v := id.Uint()
	return &v
}

package router

import (
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/99xcafe/pos-backend/controllers"
	"github.com/99xcafe/pos-backend/middlewares"
)

func SetupRouter(db *gorm.DB) *gin.Engine {
	r := gin.Default()

	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddlewares())
	r.Use(middlewares.LoggerMiddleware())
	// 50 requests per second per IP across the whole API. Must be
	// registered before any route or gin never runs it.
	r.Use(middlewares.NewRateLimiter(50, 1).RateLimit())

	// Management front-end, when deployed next to the binary.
	workDir, _ := os.Getwd()
	appPath := filepath.Join(workDir, "app")
	if _, err := os.Stat(appPath); err == nil {
		r.Static("/app", appPath)
	}
	indexPath := filepath.Join(workDir, "index.html")
	if _, err := os.Stat(indexPath); err == nil {
		r.StaticFile("/index.html", indexPath)
		r.GET("/", func(c *gin.Context) {
			c.File(indexPath)
		})
	}

	categoryCtrl := controllers.NewCategoryController(db)
	itemCtrl := controllers.NewItemController(db)
	seatCtrl := controllers.NewSeatController(db)
	cashierCtrl := controllers.NewCashierController(db)
	bookingCtrl := controllers.NewBookingController(db)
	orderCtrl := controllers.NewOrderController(db)
	statsCtrl := controllers.NewStatsController(db)

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	api := r.Group("/api")
	api.Use(middlewares.NewWriteRateLimiter())
	{
		// CATEGORIES
		api.GET("/categories", categoryCtrl.GetAllCategories)
		api.POST("/categories", categoryCtrl.CreateCategory)
		api.PUT("/categories/:cat_id", categoryCtrl.UpdateCategory)
		api.DELETE("/categories/:cat_id", categoryCtrl.DeleteCategory)

		// ITEMS
		api.GET("/items", itemCtrl.GetAllItems)
		api.POST("/items", itemCtrl.CreateItem)
		api.PUT("/items/:item_id", itemCtrl.UpdateItem)
		api.DELETE("/items/:item_id", itemCtrl.DeleteItem)

		// SEATS
		api.GET("/seats", seatCtrl.GetAllSeats)
		api.POST("/seats", seatCtrl.CreateSeat)
		api.PUT("/seats/:seat_id", seatCtrl.UpdateSeat)
		api.DELETE("/seats/:seat_id", seatCtrl.DeleteSeat)

		// CASHIERS
		api.GET("/cashiers", cashierCtrl.GetAllCashiers)
		api.POST("/cashiers", cashierCtrl.CreateCashier)
		api.PUT("/cashiers/:cashier_id", cashierCtrl.UpdateCashier)
		api.DELETE("/cashiers/:cashier_id", cashierCtrl.DeleteCashier)

		// BOOKINGS (create reserves seats, update re-reserves, delete releases)
		api.GET("/bookings", bookingCtrl.GetAllBookings)
		api.POST("/bookings", bookingCtrl.CreateBooking)
		api.PUT("/bookings/:booking_id", bookingCtrl.UpdateBooking)
		api.DELETE("/bookings/:booking_id", bookingCtrl.DeleteBooking)

		// ORDERS
		api.GET("/orders", orderCtrl.GetAllOrders)
		api.POST("/orders", orderCtrl.CreateOrder)
		api.GET("/orders/:order_id", orderCtrl.GetOrderByID)
		api.PUT("/orders/:order_id", orderCtrl.UpdateOrder)
		api.DELETE("/orders/:order_id", orderCtrl.DeleteOrder)

		// Dashboard
		api.GET("/stats", statsCtrl.GetStats)
	}

	// Live change feed for the management app
	r.GET("/api/events/ws", controllers.EventsHandler)

	return r
}

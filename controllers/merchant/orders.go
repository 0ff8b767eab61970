package merchantControllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	orderControllers "github.com/Evan-Joseph/hospital-delivery-system/controllers/order"
	"github.com/Evan-Joseph/hospital-delivery-system/models"
)

// merchantOrder loads an order and checks it belongs to this restaurant.
func merchantOrder(db *gorm.DB, c *gin.Context, restaurantID uint) (*models.Order, bool) {
	orderID, ok := parseUintParam(c, "order_id")
	if !ok {
		return nil, false
	}

	var order models.Order
	if err := db.Where("id = ? AND restaurant_id = ?", orderID, restaurantID).
		First(&order).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch order"})
		}
		return nil, false
	}
	return &order, true
}

// GET /merchant/orders — incoming orders, newest first. The dashboard tabs
// filter by lifecycle state via the optional ?status= query.
func GetOrders(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		restaurant, ok := restaurantFor(db, c)
		if !ok {
			return
		}

		query := db.Preload("Items").Where("restaurant_id = ?", restaurant.ID)
		if raw := c.Query("status"); raw != "" {
			status, ok := models.ParseOrderStatus(raw)
			if !ok {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown order status"})
				return
			}
			query = query.Where("status = ?", status)
		}

		var orders []models.Order
		if err := query.Order("order_date DESC").Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

// POST /merchant/orders/:order_id/advance
// Moves the order exactly one step forward: confirm payment, start
// preparing, send out, mark delivered. The order model decides what the
// next step is; terminal orders have none.
func AdvanceOrder(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		restaurant, ok := restaurantFor(db, c)
		if !ok {
			return
		}
		order, ok := merchantOrder(db, c, restaurant.ID)
		if !ok {
			return
		}

		next, hasNext := order.Status.Next()
		if !hasNext {
			c.JSON(http.StatusConflict, gin.H{"error": "Order is already in a terminal state"})
			return
		}

		updated, err := orderControllers.UpdateStatus(db, order.ID, next)
		switch {
		case errors.Is(err, models.ErrInvalidTransition):
			c.JSON(http.StatusConflict, gin.H{"error": "Order status changed concurrently, refresh and retry"})
		case err != nil:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update order status"})
		default:
			orderControllers.BroadcastOrder(*updated)
			c.JSON(http.StatusOK, updated)
		}
	}
}

type cancelOrderRequest struct {
	Confirm bool `json:"confirm"`
}

// POST /merchant/orders/:order_id/cancel
// Cancellation is destructive, so the client must send an explicit
// confirmation flag; a bare request is rejected.
func CancelOrder(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		restaurant, ok := restaurantFor(db, c)
		if !ok {
			return
		}

		var req cancelOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil || !req.Confirm {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Cancellation requires confirmation"})
			return
		}

		order, ok := merchantOrder(db, c, restaurant.ID)
		if !ok {
			return
		}

		updated, err := orderControllers.UpdateStatus(db, order.ID, models.OrderStatusCancelled)
		switch {
		case errors.Is(err, models.ErrInvalidTransition):
			c.JSON(http.StatusConflict, gin.H{"error": "Delivered or cancelled orders cannot be cancelled"})
		case err != nil:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to cancel order"})
		default:
			orderControllers.BroadcastOrder(*updated)
			c.JSON(http.StatusOK, updated)
		}
	}
}

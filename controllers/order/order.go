package orderControllers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Evan-Joseph/hospital-delivery-system/middleware"
	"github.com/Evan-Joseph/hospital-delivery-system/models"
	"github.com/Evan-Joseph/hospital-delivery-system/pricing"
)

// -------- Request Structs --------

type PlaceOrderRequest struct {
	PaymentMethod    string `json:"payment_method" binding:"required"` // "qr" or "cash"
	PaymentMethodID  string `json:"payment_method_id"`                 // which merchant QR code, when paying by QR
	DeliveryLocation string `json:"delivery_location"`                 // overrides the stored bed location
	CustomerName     string `json:"customer_name" binding:"required"`
	CustomerPhone    string `json:"customer_phone" binding:"required"`
}

type RateOrderRequest struct {
	Rating int `json:"rating" binding:"required,min=1,max=5"`
}

// -------- Core Logic --------

func parsePaymentMethod(s string) (models.PaymentMethodKind, error) {
	switch models.PaymentMethodKind(s) {
	case models.PaymentMethodQR:
		return models.PaymentMethodQR, nil
	case models.PaymentMethodCash:
		return models.PaymentMethodCash, nil
	default:
		return "", fmt.Errorf("invalid payment method %q", s)
	}
}

// PlaceOrder runs the whole checkout in one transaction: the discount is
// recomputed against the restaurant's promotions as stored right now (a
// displayed quote is never trusted), items are frozen into snapshots, and
// the cart is cleared only as part of the same commit. Any failure leaves
// the cart untouched and no order behind.
func PlaceOrder(db *gorm.DB, userID string, req PlaceOrderRequest) (*models.Order, error) {
	method, err := parsePaymentMethod(req.PaymentMethod)
	if err != nil {
		return nil, err
	}

	var cart models.Cart
	if err := db.Preload("Items").Where("user_id = ?", userID).First(&cart).Error; err != nil {
		return nil, err
	}
	if len(cart.Items) == 0 {
		return nil, models.ErrEmptyCart
	}

	deliveryLocation := req.DeliveryLocation
	if deliveryLocation == "" {
		var stored models.DeliveryLocation
		if err := db.Where("user_id = ?", userID).First(&stored).Error; err == nil {
			deliveryLocation = stored.Details
		}
	}
	if deliveryLocation == "" {
		return nil, errors.New("delivery location is required")
	}

	var order models.Order
	err = db.Transaction(func(tx *gorm.DB) error {
		var restaurant models.Restaurant
		if err := tx.Preload("Promotions").Preload("PaymentMethods").
			First(&restaurant, "id = ?", cart.RestaurantID()).Error; err != nil {
			return err
		}
		if restaurant.Status != models.RestaurantStatusApproved {
			return errors.New("restaurant is not accepting orders")
		}

		var paymentQR string
		if method == models.PaymentMethodQR {
			pm := pickPaymentMethod(restaurant.PaymentMethods, req.PaymentMethodID)
			if pm == nil {
				return errors.New("restaurant has no payment QR code configured")
			}
			paymentQR = pm.QRCodeURL
		}

		subtotal := cart.Subtotal()
		promo, discount := pricing.BestDiscount(subtotal, restaurant.Promotions)

		items := make([]models.OrderItem, 0, len(cart.Items))
		for _, line := range cart.Items {
			items = append(items, models.OrderItem{
				MenuItemID:   line.MenuItemID,
				Name:         line.Name,
				Description:  line.Description,
				Price:        line.Price,
				ImageURL:     line.ImageURL,
				RestaurantID: line.RestaurantID,
				Quantity:     line.Quantity,
			})
		}

		code, err := GenerateVerificationCode()
		if err != nil {
			return err
		}

		order = models.Order{
			CustomerID:       userID,
			RestaurantID:     restaurant.ID,
			RestaurantName:   restaurant.Name,
			Items:            items,
			TotalAmount:      subtotal - discount,
			DiscountAmount:   discount,
			AppliedPromotion: pricing.Snapshot(promo),
			Status:           models.InitialOrderStatus(method),
			PaymentMethod:    method,
			PaymentQRCodeURL: paymentQR,
			DeliveryLocation: deliveryLocation,
			VerificationCode: code,
			CustomerName:     req.CustomerName,
			CustomerPhone:    req.CustomerPhone,
			OrderDate:        time.Now(),
		}
		if err := tx.Create(&order).Error; err != nil {
			return err
		}

		// Clearing the cart inside the transaction means a failed order
		// keeps the cart and a placed order always consumes it.
		return tx.Where("cart_id = ?", cart.CartID).Delete(&models.CartItem{}).Error
	})
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func pickPaymentMethod(methods []models.PaymentMethod, publicID string) *models.PaymentMethod {
	if len(methods) == 0 {
		return nil
	}
	if publicID == "" {
		return &methods[0]
	}
	for i := range methods {
		if methods[i].PublicID == publicID {
			return &methods[i]
		}
	}
	return nil
}

// UpdateStatus validates the transition against the state machine before the
// write, then guards the write itself on the old status so a concurrent
// transition cannot be overwritten.
func UpdateStatus(db *gorm.DB, orderID uint, newStatus models.OrderStatus) (*models.Order, error) {
	var order models.Order
	if err := db.First(&order, "id = ?", orderID).Error; err != nil {
		return nil, err
	}

	if !order.Status.CanTransition(newStatus) {
		return nil, models.ErrInvalidTransition
	}

	result := db.Model(&models.Order{}).
		Where("id = ? AND status = ?", orderID, order.Status).
		Update("status", newStatus)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		// Somebody else transitioned the order between our read and write.
		return nil, models.ErrInvalidTransition
	}

	order.Status = newStatus
	if err := db.Preload("Items").First(&order, "id = ?", orderID).Error; err == nil {
		return &order, nil
	}
	return &order, nil
}

// SetRating stores the one-time 1..5 rating on a delivered order. The write
// is a single atomic update conditioned on "rating IS NULL", so the first
// rating always wins.
func SetRating(db *gorm.DB, orderID uint, rating int) (*models.Order, error) {
	if rating < 1 || rating > 5 {
		return nil, errors.New("rating must be between 1 and 5")
	}

	result := db.Model(&models.Order{}).
		Where("id = ? AND status = ? AND rating IS NULL", orderID, models.OrderStatusDelivered).
		Update("rating", rating)
	if result.Error != nil {
		return nil, result.Error
	}

	var order models.Order
	if err := db.Preload("Items").First(&order, "id = ?", orderID).Error; err != nil {
		return nil, err
	}
	if result.RowsAffected == 0 {
		if order.Rating != nil {
			return nil, models.ErrAlreadyRated
		}
		return nil, models.ErrNotDelivered
	}
	return &order, nil
}

// -------- Handlers --------

// POST /customer/orders
func PlaceOrderHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var req PlaceOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		order, err := PlaceOrder(db, userID, req)
		switch {
		case errors.Is(err, models.ErrEmptyCart):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Your cart is empty"})
		case errors.Is(err, gorm.ErrRecordNotFound):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Cart or restaurant not found"})
		case err != nil:
			// The transaction rolled back: the cart is intact, no order exists.
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to place order: " + err.Error()})
		default:
			BroadcastOrder(*order)
			c.JSON(http.StatusCreated, order)
		}
	}
}

// GET /customer/orders — scoped to the authenticated customer. An optional
// ?status= query narrows the list to one lifecycle state.
func GetMyOrdersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		query := db.Preload("Items").Where("customer_id = ?", userID)
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

// GET /customer/orders/:order_id
func GetMyOrderHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		orderID, ok := parseOrderID(c)
		if !ok {
			return
		}

		var order models.Order
		if err := db.Preload("Items").
			Where("id = ? AND customer_id = ?", orderID, userID).
			First(&order).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch order"})
			return
		}
		c.JSON(http.StatusOK, order)
	}
}

// POST /customer/orders/:order_id/confirm-delivery
// The only customer-triggered transition: Out for Delivery -> Delivered.
func ConfirmDeliveryHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		orderID, ok := parseOrderID(c)
		if !ok {
			return
		}

		if !ownsOrder(db, c, orderID, userID) {
			return
		}

		order, err := UpdateStatus(db, orderID, models.OrderStatusDelivered)
		switch {
		case errors.Is(err, models.ErrInvalidTransition):
			c.JSON(http.StatusConflict, gin.H{"error": "Order is not out for delivery"})
		case errors.Is(err, gorm.ErrRecordNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		case err != nil:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update order"})
		default:
			BroadcastOrder(*order)
			c.JSON(http.StatusOK, order)
		}
	}
}

// POST /customer/orders/:order_id/rating
func RateOrderHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		orderID, ok := parseOrderID(c)
		if !ok {
			return
		}

		var req RateOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "rating must be an integer between 1 and 5"})
			return
		}

		if !ownsOrder(db, c, orderID, userID) {
			return
		}

		order, err := SetRating(db, orderID, req.Rating)
		switch {
		case errors.Is(err, models.ErrAlreadyRated):
			c.JSON(http.StatusConflict, gin.H{"error": "Order has already been rated"})
		case errors.Is(err, models.ErrNotDelivered):
			c.JSON(http.StatusConflict, gin.H{"error": "Only delivered orders can be rated"})
		case errors.Is(err, gorm.ErrRecordNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		case err != nil:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save rating"})
		default:
			BroadcastOrder(*order)
			c.JSON(http.StatusOK, order)
		}
	}
}

// GET /admin/orders — the unfiltered descending-by-date view.
func GetAllOrdersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var orders []models.Order
		if err := db.Preload("Items").
			Order("order_date DESC").
			Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

// -------- Helpers --------

func parseOrderID(c *gin.Context) (uint, bool) {
	raw := c.Param("order_id")
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "order_id must be a positive integer"})
		return 0, false
	}
	return uint(id), true
}

func ownsOrder(db *gorm.DB, c *gin.Context, orderID uint, userID string) bool {
	var count int64
	if err := db.Model(&models.Order{}).
		Where("id = ? AND customer_id = ?", orderID, userID).
		Count(&count).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch order"})
		return false
	}
	if count == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return false
	}
	return true
}

package cartControllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Evan-Joseph/hospital-delivery-system/middleware"
	"github.com/Evan-Joseph/hospital-delivery-system/models"
	"github.com/Evan-Joseph/hospital-delivery-system/pricing"
)

type AddItemInput struct {
	MenuItemID uint `json:"menu_item_id" binding:"required"`
}

type UpdateQuantityInput struct {
	Quantity *int `json:"quantity" binding:"required"`
}

// -------- Core Logic --------

// loadOrCreateCart fetches the customer's single cart, creating it lazily so
// customers who signed up before the cart table existed still get one.
func loadOrCreateCart(db *gorm.DB, userID string) (*models.Cart, error) {
	var cart models.Cart
	err := db.Preload("Items", func(db *gorm.DB) *gorm.DB {
		return db.Order("cart_items.added_at ASC")
	}).Where("user_id = ?", userID).First(&cart).Error
	if err == gorm.ErrRecordNotFound {
		cart = models.Cart{UserID: userID}
		if err := db.Create(&cart).Error; err != nil {
			return nil, err
		}
		return &cart, nil
	}
	if err != nil {
		return nil, err
	}
	return &cart, nil
}

// AddItem puts one unit of a menu item into the cart. A non-empty cart from
// another restaurant rejects the add and stays untouched; an existing line
// for the same item increments its quantity instead.
func AddItem(db *gorm.DB, userID string, menuItemID uint) (*models.CartItem, error) {
	var menuItem models.MenuItem
	if err := db.First(&menuItem, "id = ?", menuItemID).Error; err != nil {
		return nil, err
	}

	cart, err := loadOrCreateCart(db, userID)
	if err != nil {
		return nil, err
	}

	if restID := cart.RestaurantID(); restID != 0 && restID != menuItem.RestaurantID {
		return nil, models.ErrRestaurantMismatch
	}

	var item models.CartItem
	err = db.Where("cart_id = ? AND menu_item_id = ?", cart.CartID, menuItemID).First(&item).Error
	if err == gorm.ErrRecordNotFound {
		item = models.CartItem{
			CartID:       cart.CartID,
			MenuItemID:   menuItem.ID,
			Name:         menuItem.Name,
			Description:  menuItem.Description,
			Price:        menuItem.Price,
			ImageURL:     menuItem.ImageURL,
			RestaurantID: menuItem.RestaurantID,
			Quantity:     1,
			AddedAt:      time.Now(),
		}
		if err := db.Create(&item).Error; err != nil {
			return nil, err
		}
		return &item, nil
	}
	if err != nil {
		return nil, err
	}

	item.Quantity++
	item.AddedAt = time.Now()
	if err := db.Save(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// UpdateQuantity sets a cart line's quantity. Zero removes the line;
// negative quantities are invalid input.
func UpdateQuantity(db *gorm.DB, userID string, menuItemID uint, quantity int) error {
	if quantity < 0 {
		return errors.New("quantity must not be negative")
	}

	var cart models.Cart
	if err := db.Where("user_id = ?", userID).First(&cart).Error; err != nil {
		return err
	}

	if quantity == 0 {
		result := db.Where("cart_id = ? AND menu_item_id = ?", cart.CartID, menuItemID).
			Delete(&models.CartItem{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	}

	result := db.Model(&models.CartItem{}).
		Where("cart_id = ? AND menu_item_id = ?", cart.CartID, menuItemID).
		Update("quantity", quantity)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Reorder merges a past order's items back into the cart. The usual
// single-restaurant guard applies against a non-empty cart.
func Reorder(db *gorm.DB, userID string, orderID uint) (*models.Cart, error) {
	var order models.Order
	if err := db.Preload("Items").
		Where("id = ? AND customer_id = ?", orderID, userID).
		First(&order).Error; err != nil {
		return nil, err
	}
	if len(order.Items) == 0 {
		return nil, models.ErrEmptyCart
	}

	cart, err := loadOrCreateCart(db, userID)
	if err != nil {
		return nil, err
	}
	if restID := cart.RestaurantID(); restID != 0 && restID != order.RestaurantID {
		return nil, models.ErrRestaurantMismatch
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		for _, past := range order.Items {
			var line models.CartItem
			lookupErr := tx.Where("cart_id = ? AND menu_item_id = ?", cart.CartID, past.MenuItemID).
				First(&line).Error

			switch {
			case lookupErr == gorm.ErrRecordNotFound:
				line = models.CartItem{
					CartID:       cart.CartID,
					MenuItemID:   past.MenuItemID,
					Name:         past.Name,
					Description:  past.Description,
					Price:        past.Price,
					ImageURL:     past.ImageURL,
					RestaurantID: order.RestaurantID,
					Quantity:     past.Quantity,
					AddedAt:      time.Now(),
				}
				if err := tx.Create(&line).Error; err != nil {
					return err
				}
			case lookupErr == nil:
				line.Quantity += past.Quantity
				line.AddedAt = time.Now()
				if err := tx.Save(&line).Error; err != nil {
					return err
				}
			default:
				return lookupErr
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return loadOrCreateCart(db, userID)
}

// -------- Handlers --------

// GET /customer/cart
func GetCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		cart, err := loadOrCreateCart(db, userID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}

		// Advisory quote against the restaurant's current promotions. The
		// checkout transaction recomputes it; this one is display-only.
		quote := pricing.ComputeQuote(cart.Subtotal(), nil)
		if restID := cart.RestaurantID(); restID != 0 {
			var promos []models.Promotion
			if err := db.Where("restaurant_id = ?", restID).Find(&promos).Error; err == nil {
				quote = pricing.ComputeQuote(cart.Subtotal(), promos)
			}
		}

		c.JSON(http.StatusOK, gin.H{
			"items":         cart.Items,
			"item_count":    cart.ItemCount(),
			"restaurant_id": cart.RestaurantID(),
			"quote":         quote,
		})
	}
}

// POST /customer/cart
func AddItemHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var input AddItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		item, err := AddItem(db, userID, input.MenuItemID)
		switch {
		case errors.Is(err, models.ErrRestaurantMismatch):
			c.JSON(http.StatusConflict, gin.H{"error": "You can only order from one restaurant at a time. Clear your cart first."})
		case errors.Is(err, gorm.ErrRecordNotFound):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Menu item does not exist"})
		case err != nil:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add item to cart"})
		default:
			c.JSON(http.StatusCreated, item)
		}
	}
}

// PUT /customer/cart/:menu_item_id
func UpdateQuantityHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		menuItemID, ok := parseUintParam(c, "menu_item_id")
		if !ok {
			return
		}

		var input UpdateQuantityInput
		if err := c.ShouldBindJSON(&input); err != nil || input.Quantity == nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "quantity is required"})
			return
		}

		err := UpdateQuantity(db, userID, menuItemID, *input.Quantity)
		switch {
		case err != nil && err.Error() == "quantity must not be negative":
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, gorm.ErrRecordNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Cart item not found"})
		case err != nil:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart item"})
		default:
			c.JSON(http.StatusOK, gin.H{"message": "Cart item updated"})
		}
	}
}

// DELETE /customer/cart/:menu_item_id
func DeleteItemHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		menuItemID, ok := parseUintParam(c, "menu_item_id")
		if !ok {
			return
		}

		var cart models.Cart
		if err := db.Where("user_id = ?", userID).First(&cart).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Cart not found"})
			return
		}

		result := db.Where("cart_id = ? AND menu_item_id = ?", cart.CartID, menuItemID).
			Delete(&models.CartItem{})
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete item"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Cart item not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Cart item deleted"})
	}
}

// DELETE /customer/cart
func ClearCartHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var cart models.Cart
		if err := db.Where("user_id = ?", userID).First(&cart).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}
		if err := db.Where("cart_id = ?", cart.CartID).Delete(&models.CartItem{}).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear cart"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Cart cleared"})
	}
}

// POST /customer/cart/reorder/:order_id
func ReorderHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		orderID, ok := parseUintParam(c, "order_id")
		if !ok {
			return
		}

		cart, err := Reorder(db, userID, orderID)
		switch {
		case errors.Is(err, models.ErrRestaurantMismatch):
			c.JSON(http.StatusConflict, gin.H{"error": "Your cart holds items from another restaurant. Clear it before re-ordering."})
		case errors.Is(err, models.ErrEmptyCart):
			c.JSON(http.StatusBadRequest, gin.H{"error": "The past order has no items"})
		case errors.Is(err, gorm.ErrRecordNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		case err != nil:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to re-order"})
		default:
			c.JSON(http.StatusOK, gin.H{"message": "Items added to cart", "items": cart.Items})
		}
	}
}

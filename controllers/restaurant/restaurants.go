package restaurantControllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Evan-Joseph/hospital-delivery-system/models"
)

// ListApproved returns the customer-facing restaurant listing. Only Approved
// restaurants appear; the result is served from the redis cache when warm.
func ListApproved(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		if cached, ok := cachedListing(ctx); ok {
			c.Data(http.StatusOK, "application/json", cached)
			return
		}

		var restaurants []models.Restaurant
		if err := db.Where("status = ?", models.RestaurantStatusApproved).
			Order("rating DESC").
			Find(&restaurants).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch restaurants"})
			return
		}

		storeListing(ctx, restaurants)
		c.JSON(http.StatusOK, restaurants)
	}
}

// GetByID returns one approved restaurant with its menu, promotions and
// payment methods — everything the cart and checkout pages need.
func GetByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("restaurant_id"), 10, 64)
		if err != nil || id == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "restaurant_id must be a positive integer"})
			return
		}

		var restaurant models.Restaurant
		if err := db.Preload("Menu", "is_available = ?", true).
			Preload("Promotions", "is_active = ?", true).
			Preload("PaymentMethods").
			Where("id = ? AND status = ?", uint(id), models.RestaurantStatusApproved).
			First(&restaurant).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Restaurant not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch restaurant"})
			return
		}
		c.JSON(http.StatusOK, restaurant)
	}
}

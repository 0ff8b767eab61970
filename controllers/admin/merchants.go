package adminController

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	restaurantControllers "github.com/Evan-Joseph/hospital-delivery-system/controllers/restaurant"
	"github.com/Evan-Joseph/hospital-delivery-system/models"
)

// ListPendingMerchants returns all restaurants awaiting approval.
func ListPendingMerchants(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var pending []models.Restaurant
		if err := db.Where("status = ?", models.RestaurantStatusPending).
			Order("created_at ASC").
			Find(&pending).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch pending merchants"})
			return
		}
		c.JSON(http.StatusOK, pending)
	}
}

// ListMerchants returns all restaurants regardless of status.
func ListMerchants(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var restaurants []models.Restaurant
		if err := db.Order("created_at DESC").Find(&restaurants).Error; err != nil {
			log.Println("❌ Failed to fetch merchants:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch merchants"})
			return
		}
		c.JSON(http.StatusOK, restaurants)
	}
}

type merchantStatusRequest struct {
	RestaurantID uint `json:"restaurant_id" binding:"required"`
}

func setMerchantStatus(db *gorm.DB, c *gin.Context, status models.RestaurantStatus) {
	var req merchantStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	var restaurant models.Restaurant
	if err := db.First(&restaurant, "id = ?", req.RestaurantID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Restaurant not found"})
		return
	}

	if err := db.Model(&restaurant).Update("status", status).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update merchant status"})
		return
	}

	// Visibility changed, the cached public listing is stale.
	restaurantControllers.InvalidateListingCache(c.Request.Context())

	log.Printf("✅ Merchant %s (%d) -> %s", restaurant.Name, restaurant.ID, status)
	c.JSON(http.StatusOK, gin.H{"message": "Merchant status updated", "status": status})
}

// ApproveMerchant makes the restaurant customer-visible.
func ApproveMerchant(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		setMerchantStatus(db, c, models.RestaurantStatusApproved)
	}
}

func RejectMerchant(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		setMerchantStatus(db, c, models.RestaurantStatusRejected)
	}
}

func SuspendMerchant(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		setMerchantStatus(db, c, models.RestaurantStatusSuspended)
	}
}

package merchantControllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Evan-Joseph/hospital-delivery-system/middleware"
	"github.com/Evan-Joseph/hospital-delivery-system/models"
)

// restaurantFor resolves the authenticated merchant's restaurant. Every
// merchant endpoint goes through this so a merchant can only ever touch
// their own menu, promotions and orders.
func restaurantFor(db *gorm.DB, c *gin.Context) (*models.Restaurant, bool) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return nil, false
	}

	var restaurant models.Restaurant
	if err := db.Where("owner_uid = ?", userID).First(&restaurant).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "No restaurant registered for this account"})
		return nil, false
	}
	return &restaurant, true
}

// GET /merchant/restaurant
func GetRestaurant(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		restaurant, ok := restaurantFor(db, c)
		if !ok {
			return
		}
		if err := db.Preload("Menu").Preload("Promotions").Preload("PaymentMethods").
			First(restaurant, "id = ?", restaurant.ID).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch restaurant"})
			return
		}
		c.JSON(http.StatusOK, restaurant)
	}
}

type updateRestaurantInput struct {
	Name         *string `json:"name"`
	Cuisine      *string `json:"cuisine"`
	Description  *string `json:"description"`
	ImageURL     *string `json:"image_url"`
	DeliveryTime *string `json:"delivery_time"`
	Distance     *string `json:"distance"`
}

// PUT /merchant/restaurant
func UpdateRestaurant(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		restaurant, ok := restaurantFor(db, c)
		if !ok {
			return
		}

		var input updateRestaurantInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		updates := map[string]interface{}{}
		if input.Name != nil {
			updates["name"] = *input.Name
		}
		if input.Cuisine != nil {
			updates["cuisine"] = *input.Cuisine
		}
		if input.Description != nil {
			updates["description"] = *input.Description
		}
		if input.ImageURL != nil {
			updates["image_url"] = *input.ImageURL
		}
		if input.DeliveryTime != nil {
			updates["delivery_time"] = *input.DeliveryTime
		}
		if input.Distance != nil {
			updates["distance"] = *input.Distance
		}
		if len(updates) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "No fields to update"})
			return
		}

		if err := db.Model(restaurant).Updates(updates).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update restaurant"})
			return
		}
		c.JSON(http.StatusOK, restaurant)
	}
}

func parseUintParam(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": name + " must be a positive integer"})
		return 0, false
	}
	return uint(id), true
}

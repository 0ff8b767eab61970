package merchantControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Evan-Joseph/hospital-delivery-system/models"
)

type menuItemInput struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price" binding:"required,gt=0"`
	ImageURL    string  `json:"image_url"`
	IsAvailable *bool   `json:"is_available"`
}

// POST /merchant/menu
func CreateMenuItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		restaurant, ok := restaurantFor(db, c)
		if !ok {
			return
		}

		var input menuItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		item := models.MenuItem{
			RestaurantID: restaurant.ID,
			Name:         input.Name,
			Description:  input.Description,
			Price:        input.Price,
			ImageURL:     input.ImageURL,
			IsAvailable:  true,
		}
		if input.IsAvailable != nil {
			item.IsAvailable = *input.IsAvailable
		}

		if err := db.Create(&item).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create menu item"})
			return
		}
		c.JSON(http.StatusCreated, item)
	}
}

// GET /merchant/menu
func GetMenu(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		restaurant, ok := restaurantFor(db, c)
		if !ok {
			return
		}

		var items []models.MenuItem
		if err := db.Where("restaurant_id = ?", restaurant.ID).
			Order("created_at ASC").
			Find(&items).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch menu"})
			return
		}
		c.JSON(http.StatusOK, items)
	}
}

// PUT /merchant/menu/:item_id
func UpdateMenuItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		restaurant, ok := restaurantFor(db, c)
		if !ok {
			return
		}
		itemID, ok := parseUintParam(c, "item_id")
		if !ok {
			return
		}

		var item models.MenuItem
		if err := db.Where("id = ? AND restaurant_id = ?", itemID, restaurant.ID).
			First(&item).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Menu item not found"})
			return
		}

		var input menuItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		item.Name = input.Name
		item.Description = input.Description
		item.Price = input.Price
		item.ImageURL = input.ImageURL
		if input.IsAvailable != nil {
			item.IsAvailable = *input.IsAvailable
		}

		if err := db.Save(&item).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update menu item"})
			return
		}
		c.JSON(http.StatusOK, item)
	}
}

// DELETE /merchant/menu/:item_id
func DeleteMenuItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		restaurant, ok := restaurantFor(db, c)
		if !ok {
			return
		}
		itemID, ok := parseUintParam(c, "item_id")
		if !ok {
			return
		}

		result := db.Where("id = ? AND restaurant_id = ?", itemID, restaurant.ID).
			Delete(&models.MenuItem{})
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete menu item"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Menu item not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Menu item deleted"})
	}
}

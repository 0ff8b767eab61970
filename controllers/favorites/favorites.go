package favoritesControllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Evan-Joseph/hospital-delivery-system/middleware"
	"github.com/Evan-Joseph/hospital-delivery-system/models"
)

type addFavoriteInput struct {
	MenuItemID uint `json:"menu_item_id" binding:"required"`
}

// GET /customer/favorites
func ListFavorites(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var favorites []models.Favorite
		if err := db.Where("user_id = ?", userID).
			Order("added_at DESC").
			Find(&favorites).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch favorites"})
			return
		}
		c.JSON(http.StatusOK, favorites)
	}
}

// POST /customer/favorites
func AddFavorite(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var input addFavoriteInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		var menuItem models.MenuItem
		if err := db.First(&menuItem, "id = ?", input.MenuItemID).Error; err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Menu item does not exist"})
			return
		}

		// Adding twice is a no-op thanks to the unique (user, item) index.
		var existing models.Favorite
		if err := db.Where("user_id = ? AND menu_item_id = ?", userID, input.MenuItemID).
			First(&existing).Error; err == nil {
			c.JSON(http.StatusOK, existing)
			return
		}

		favorite := models.Favorite{
			UserID:       userID,
			MenuItemID:   menuItem.ID,
			RestaurantID: menuItem.RestaurantID,
			ItemName:     menuItem.Name,
			AddedAt:      time.Now(),
		}
		if err := db.Create(&favorite).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add favorite"})
			return
		}
		c.JSON(http.StatusCreated, favorite)
	}
}

// DELETE /customer/favorites/:menu_item_id
func RemoveFavorite(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		menuItemID, err := strconv.ParseUint(c.Param("menu_item_id"), 10, 64)
		if err != nil || menuItemID == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "menu_item_id must be a positive integer"})
			return
		}

		result := db.Where("user_id = ? AND menu_item_id = ?", userID, uint(menuItemID)).
			Delete(&models.Favorite{})
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove favorite"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Favorite not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Favorite removed"})
	}
}

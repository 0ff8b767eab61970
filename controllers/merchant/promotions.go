package merchantControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Evan-Joseph/hospital-delivery-system/models"
)

type promotionInput struct {
	Description string  `json:"description" binding:"required"`
	Type        string  `json:"type" binding:"required"`
	MinValue    float64 `json:"min_value"`
	Amount      float64 `json:"amount"`
	Percentage  float64 `json:"percentage"`
	IsActive    *bool   `json:"is_active"`
}

func parsePromotionType(s string) (models.PromotionType, bool) {
	switch models.PromotionType(s) {
	case models.PromotionFixedAmount, models.PromotionPercentage, models.PromotionFreeDelivery:
		return models.PromotionType(s), true
	}
	return "", false
}

// POST /merchant/promotions
func CreatePromotion(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		restaurant, ok := restaurantFor(db, c)
		if !ok {
			return
		}

		var input promotionInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		promoType, ok := parsePromotionType(input.Type)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown promotion type"})
			return
		}
		if promoType == models.PromotionFixedAmount && input.Amount <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "amount must be positive for fixed-amount discounts"})
			return
		}

		promo := models.Promotion{
			PublicID:     uuid.NewString(),
			RestaurantID: restaurant.ID,
			Description:  input.Description,
			Type:         promoType,
			MinValue:     input.MinValue,
			Amount:       input.Amount,
			Percentage:   input.Percentage,
			IsActive:     true,
		}
		if input.IsActive != nil {
			promo.IsActive = *input.IsActive
		}

		if err := db.Create(&promo).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create promotion"})
			return
		}
		c.JSON(http.StatusCreated, promo)
	}
}

// GET /merchant/promotions
func GetPromotions(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		restaurant, ok := restaurantFor(db, c)
		if !ok {
			return
		}

		var promos []models.Promotion
		if err := db.Where("restaurant_id = ?", restaurant.ID).
			Order("created_at ASC").
			Find(&promos).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch promotions"})
			return
		}
		c.JSON(http.StatusOK, promos)
	}
}

// PUT /merchant/promotions/:promo_id
func UpdatePromotion(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		restaurant, ok := restaurantFor(db, c)
		if !ok {
			return
		}
		promoID := c.Param("promo_id")

		var promo models.Promotion
		if err := db.Where("public_id = ? AND restaurant_id = ?", promoID, restaurant.ID).
			First(&promo).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Promotion not found"})
			return
		}

		var input promotionInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		promoType, ok := parsePromotionType(input.Type)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown promotion type"})
			return
		}

		promo.Description = input.Description
		promo.Type = promoType
		promo.MinValue = input.MinValue
		promo.Amount = input.Amount
		promo.Percentage = input.Percentage
		if input.IsActive != nil {
			promo.IsActive = *input.IsActive
		}

		if err := db.Save(&promo).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update promotion"})
			return
		}
		c.JSON(http.StatusOK, promo)
	}
}

// DELETE /merchant/promotions/:promo_id
func DeletePromotion(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		restaurant, ok := restaurantFor(db, c)
		if !ok {
			return
		}
		promoID := c.Param("promo_id")

		result := db.Where("public_id = ? AND restaurant_id = ?", promoID, restaurant.ID).
			Delete(&models.Promotion{})
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete promotion"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Promotion not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Promotion deleted"})
	}
}

package merchantControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Evan-Joseph/hospital-delivery-system/models"
)

type paymentMethodInput struct {
	Type      string `json:"type" binding:"required,oneof=alipay wechat custom"`
	Name      string `json:"name" binding:"required"`
	QRCodeURL string `json:"qr_code_url" binding:"required"`
}

// POST /merchant/payment-methods
func AddPaymentMethod(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		restaurant, ok := restaurantFor(db, c)
		if !ok {
			return
		}

		var input paymentMethodInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		method := models.PaymentMethod{
			PublicID:     uuid.NewString(),
			RestaurantID: restaurant.ID,
			Type:         input.Type,
			Name:         input.Name,
			QRCodeURL:    input.QRCodeURL,
		}
		if err := db.Create(&method).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add payment method"})
			return
		}
		c.JSON(http.StatusCreated, method)
	}
}

// GET /merchant/payment-methods
func GetPaymentMethods(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		restaurant, ok := restaurantFor(db, c)
		if !ok {
			return
		}

		var methods []models.PaymentMethod
		if err := db.Where("restaurant_id = ?", restaurant.ID).
			Order("created_at ASC").
			Find(&methods).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch payment methods"})
			return
		}
		c.JSON(http.StatusOK, methods)
	}
}

// DELETE /merchant/payment-methods/:method_id
func DeletePaymentMethod(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		restaurant, ok := restaurantFor(db, c)
		if !ok {
			return
		}
		methodID := c.Param("method_id")

		result := db.Where("public_id = ? AND restaurant_id = ?", methodID, restaurant.ID).
			Delete(&models.PaymentMethod{})
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete payment method"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Payment method not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Payment method deleted"})
	}
}

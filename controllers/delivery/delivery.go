package deliveryControllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Evan-Joseph/hospital-delivery-system/middleware"
	"github.com/Evan-Joseph/hospital-delivery-system/models"
)

type scanInput struct {
	QRValue string `json:"qr_value" binding:"required"`
}

type manualLocationInput struct {
	Details string `json:"details" binding:"required"`
}

// ScanBedCode resolves a scanned bed QR payload and stores the bed as the
// customer's delivery location. Re-scanning overwrites the previous one.
func ScanBedCode(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var input scanInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "qr_value is required"})
			return
		}

		bed, err := models.FindActiveBedByQRValue(db, input.QRValue)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Unknown or inactive bed code"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to look up bed code"})
			return
		}

		location := models.DeliveryLocation{
			UserID:     userID,
			BedID:      bed.BedID,
			Department: bed.Department,
			Room:       bed.Room,
			Details:    bed.Details,
		}
		if err := upsertLocation(db, &location); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save delivery location"})
			return
		}
		c.JSON(http.StatusOK, location)
	}
}

// SetLocation lets the customer type a drop-off point by hand, for visitors
// without a bed code.
func SetLocation(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var input manualLocationInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "details is required"})
			return
		}

		location := models.DeliveryLocation{
			UserID:  userID,
			Details: input.Details,
		}
		if err := upsertLocation(db, &location); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save delivery location"})
			return
		}
		c.JSON(http.StatusOK, location)
	}
}

// GET /customer/delivery-location
func GetLocation(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var location models.DeliveryLocation
		if err := db.Where("user_id = ?", userID).First(&location).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "No delivery location set"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch delivery location"})
			return
		}
		c.JSON(http.StatusOK, location)
	}
}

func upsertLocation(db *gorm.DB, location *models.DeliveryLocation) error {
	return db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"bed_id", "department", "room", "details", "updated_at",
		}),
	}).Create(location).Error
}

package adminController

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	qrcode "github.com/skip2/go-qrcode"
	"gorm.io/gorm"

	uploadControllers "github.com/Evan-Joseph/hospital-delivery-system/controllers/upload"
	"github.com/Evan-Joseph/hospital-delivery-system/models"
)

type bedQRInput struct {
	BedID      string `json:"bed_id" binding:"required"`
	Department string `json:"department"`
	Room       string `json:"room"`
	Details    string `json:"details" binding:"required"`
	IsActive   *bool  `json:"is_active"`
}

// CreateBedQRCode registers a bed and renders its printable QR PNG into the
// uploads directory. The QR payload is an opaque token; scanning clients
// exchange it for the bed record via the public scan endpoint.
func CreateBedQRCode(db *gorm.DB, uploadDir, publicBaseURL string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input bedQRInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		qrValue := "bed:" + uuid.NewString()

		qrDir := filepath.Join(uploadDir, "bedqr")
		if err := os.MkdirAll(qrDir, os.ModePerm); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create QR folder"})
			return
		}

		filename := fmt.Sprintf("bed_%s.png", uploadControllers.SanitizeFilename(input.BedID))
		savePath := filepath.Join(qrDir, filename)
		if err := qrcode.WriteFile(qrValue, qrcode.Medium, 256, savePath); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to render QR code"})
			return
		}

		code := models.BedQRCode{
			BedID:      input.BedID,
			Department: input.Department,
			Room:       input.Room,
			Details:    input.Details,
			QRValue:    qrValue,
			ImageURL:   fmt.Sprintf("%s/uploads/bedqr/%s", publicBaseURL, filename),
			IsActive:   true,
		}
		if input.IsActive != nil {
			code.IsActive = *input.IsActive
		}

		if err := models.SaveBedQRCode(db, &code); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save bed QR code"})
			return
		}
		c.JSON(http.StatusCreated, code)
	}
}

// GET /admin/bed-qrcodes
func ListBedQRCodes(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		codes, err := models.GetAllBedQRCodes(db)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch bed QR codes"})
			return
		}
		c.JSON(http.StatusOK, codes)
	}
}

// PUT /admin/bed-qrcodes/:id — edit the record; the printed QR stays valid
// because the payload token never changes.
func UpdateBedQRCode(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil || id == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "id must be a positive integer"})
			return
		}

		var code models.BedQRCode
		if err := db.First(&code, "id = ?", uint(id)).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Bed QR code not found"})
			return
		}

		var input bedQRInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		code.BedID = input.BedID
		code.Department = input.Department
		code.Room = input.Room
		code.Details = input.Details
		if input.IsActive != nil {
			code.IsActive = *input.IsActive
		}

		if err := db.Save(&code).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update bed QR code"})
			return
		}
		c.JSON(http.StatusOK, code)
	}
}

// DELETE /admin/bed-qrcodes/:id
func DeleteBedQRCode(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil || id == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "id must be a positive integer"})
			return
		}

		result := db.Delete(&models.BedQRCode{}, "id = ?", uint(id))
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete bed QR code"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Bed QR code not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Bed QR code deleted"})
	}
}

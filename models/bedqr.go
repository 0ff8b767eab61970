package models

import (
	"log"
	"time"

	"gorm.io/gorm"
)

// BedQRCode is an admin-managed record identifying a hospital bed. The
// printed QR encodes QRValue; scanning it sets the customer's delivery
// location to Details.
type BedQRCode struct {
	ID         uint           `json:"id" gorm:"primaryKey;autoIncrement"`
	BedID      string         `json:"bed_id" gorm:"uniqueIndex;not null"`
	Department string         `json:"department"`
	Room       string         `json:"room"`
	Details    string         `json:"details" gorm:"not null"`
	QRValue    string         `json:"qr_value" gorm:"uniqueIndex;not null"`
	ImageURL   string         `json:"image_url"`
	IsActive   bool           `json:"is_active" gorm:"default:true"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `json:"-" gorm:"index"`
}

func SaveBedQRCode(db *gorm.DB, code *BedQRCode) error {
	if err := db.Create(code).Error; err != nil {
		return err
	}
	log.Printf("📁 Saved bed QR code %s -> %s", code.BedID, code.QRValue)
	return nil
}

func GetAllBedQRCodes(db *gorm.DB) ([]BedQRCode, error) {
	var codes []BedQRCode
	if err := db.Order("created_at DESC").Find(&codes).Error; err != nil {
		return nil, err
	}
	return codes, nil
}

// FindActiveBedByQRValue resolves a scanned QR payload to its bed record.
func FindActiveBedByQRValue(db *gorm.DB, qrValue string) (*BedQRCode, error) {
	var code BedQRCode
	if err := db.Where("qr_value = ? AND is_active = ?", qrValue, true).First(&code).Error; err != nil {
		return nil, err
	}
	return &code, nil
}

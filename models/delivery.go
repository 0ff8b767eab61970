package models

import "time"

// DeliveryLocation is the customer's current drop-off point, usually set by
// scanning a bed QR code. One row per customer, overwritten on re-scan.
type DeliveryLocation struct {
	ID         uint      `gorm:"primaryKey" json:"-"`
	UserID     string    `gorm:"uniqueIndex;not null" json:"user_id"`
	BedID      string    `json:"bed_id"`
	Department string    `json:"department"`
	Room       string    `json:"room"`
	Details    string    `gorm:"not null" json:"details"`
	UpdatedAt  time.Time `json:"updated_at"`
}

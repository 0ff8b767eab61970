package models

import (
	"time"

	"gorm.io/gorm"
)

type RestaurantStatus string
type PromotionType string

const (
	// Merchant approval statuses. Only Approved restaurants are customer-visible.
	RestaurantStatusPending   RestaurantStatus = "Pending"
	RestaurantStatusApproved  RestaurantStatus = "Approved"
	RestaurantStatusRejected  RestaurantStatus = "Rejected"
	RestaurantStatusSuspended RestaurantStatus = "Suspended"

	// Promotion types. Only fixed-amount discounts are applied by the
	// pricing engine; the other two are stored for forward compatibility.
	PromotionFixedAmount  PromotionType = "discount_fixed_amount"
	PromotionPercentage   PromotionType = "discount_percentage"
	PromotionFreeDelivery PromotionType = "free_delivery"
)

type Restaurant struct {
	ID             uint             `gorm:"primaryKey" json:"id"`
	OwnerUID       string           `gorm:"uniqueIndex;not null" json:"owner_uid"`
	Name           string           `gorm:"not null" json:"name"`
	Cuisine        string           `json:"cuisine"`
	Description    string           `json:"description"`
	ImageURL       string           `json:"image_url"`
	Rating         float64          `json:"rating"`
	DeliveryTime   string           `json:"delivery_time"`
	Distance       string           `json:"distance"`
	Status         RestaurantStatus `gorm:"type:VARCHAR(10);default:'Pending'" json:"status"`
	Menu           []MenuItem       `gorm:"foreignKey:RestaurantID;constraint:OnDelete:CASCADE" json:"menu,omitempty"`
	Promotions     []Promotion      `gorm:"foreignKey:RestaurantID;constraint:OnDelete:CASCADE" json:"promotions,omitempty"`
	PaymentMethods []PaymentMethod  `gorm:"foreignKey:RestaurantID;constraint:OnDelete:CASCADE" json:"payment_methods,omitempty"`
	CreatedAt      time.Time        `json:"created_at"`
	UpdatedAt      time.Time        `json:"updated_at"`
}

type MenuItem struct {
	ID           uint           `gorm:"primaryKey" json:"id"`
	RestaurantID uint           `gorm:"index;not null" json:"restaurant_id"`
	Name         string         `gorm:"not null" json:"name"`
	Description  string         `json:"description"`
	Price        float64        `gorm:"not null" json:"price"`
	ImageURL     string         `json:"image_url"`
	IsAvailable  bool           `gorm:"default:true" json:"is_available"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}

// Promotion belongs to a restaurant. Details carries the threshold and the
// benefit; which fields matter depends on Type.
type Promotion struct {
	ID           uint          `gorm:"primaryKey" json:"-"`
	PublicID     string        `gorm:"uniqueIndex;not null" json:"id"`
	RestaurantID uint          `gorm:"index;not null" json:"restaurant_id"`
	Description  string        `gorm:"not null" json:"description"`
	Type         PromotionType `gorm:"type:VARCHAR(30)" json:"type"`
	MinValue     float64       `json:"min_value"`  // Minimum cart subtotal to qualify
	Amount       float64       `json:"amount"`     // Fixed discount amount
	Percentage   float64       `json:"percentage"` // Reserved for discount_percentage
	IsActive     bool          `gorm:"default:true" json:"is_active"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`
}

// PaymentMethod is a merchant collection QR code shown at checkout.
type PaymentMethod struct {
	ID           uint      `gorm:"primaryKey" json:"-"`
	PublicID     string    `gorm:"uniqueIndex;not null" json:"id"`
	RestaurantID uint      `gorm:"index;not null" json:"restaurant_id"`
	Type         string    `gorm:"type:VARCHAR(10)" json:"type"` // "alipay", "wechat" or "custom"
	Name         string    `json:"name"`
	QRCodeURL    string    `json:"qr_code_url"`
	CreatedAt    time.Time `json:"created_at"`
}

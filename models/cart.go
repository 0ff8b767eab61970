package models

import "time"

type Cart struct {
	CartID    uint       `gorm:"primaryKey" json:"cart_id"`
	UserID    string     `gorm:"uniqueIndex" json:"user_id"` // Enforces ONE cart per customer
	Items     []CartItem `gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE" json:"items"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// CartItem is a menu item snapshot plus a quantity. Snapshots keep the cart
// stable against merchant menu edits made while the customer is browsing.
type CartItem struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	CartID       uint      `gorm:"index" json:"-"`
	MenuItemID   uint      `gorm:"index" json:"menu_item_id"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	Price        float64   `json:"price"`
	ImageURL     string    `json:"image_url"`
	RestaurantID uint      `json:"restaurant_id"`
	Quantity     int       `json:"quantity"`
	AddedAt      time.Time `json:"added_at"`
}

// RestaurantID returns the single restaurant the cart belongs to, or 0 when
// the cart is empty. All items share one restaurant id by invariant.
func (c *Cart) RestaurantID() uint {
	if len(c.Items) == 0 {
		return 0
	}
	return c.Items[0].RestaurantID
}

// Subtotal is the pre-discount sum; discounts are the pricing engine's job.
func (c *Cart) Subtotal() float64 {
	var total float64
	for _, item := range c.Items {
		total += item.Price * float64(item.Quantity)
	}
	return total
}

// ItemCount is the total quantity across all cart lines.
func (c *Cart) ItemCount() int {
	var count int
	for _, item := range c.Items {
		count += item.Quantity
	}
	return count
}

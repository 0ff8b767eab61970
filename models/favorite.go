package models

import "time"

// Favorite marks a menu item a customer wants to find again quickly.
type Favorite struct {
	ID           uint      `gorm:"primaryKey" json:"-"`
	UserID       string    `gorm:"index:idx_fav_user_item,unique;not null" json:"user_id"`
	MenuItemID   uint      `gorm:"index:idx_fav_user_item,unique;not null" json:"menu_item_id"`
	RestaurantID uint      `gorm:"index" json:"restaurant_id"`
	ItemName     string    `json:"item_name"`
	AddedAt      time.Time `json:"added_at"`
}

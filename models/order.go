package models

import (
	"time"

	"gorm.io/gorm"
)

type OrderStatus string
type PaymentMethodKind string

const (
	// Order statuses (customer-facing wire values)
	OrderStatusPendingPayment OrderStatus = "Pending Payment"  // Waiting for the merchant to confirm QR payment
	OrderStatusPlaced         OrderStatus = "Order Placed"     // Payment confirmed (or cash on delivery)
	OrderStatusPreparing      OrderStatus = "Preparing"        // Kitchen is working on it
	OrderStatusOutForDelivery OrderStatus = "Out for Delivery" // On its way to the bed
	OrderStatusDelivered      OrderStatus = "Delivered"        // Customer confirmed the handoff
	OrderStatusCancelled      OrderStatus = "Cancelled"        // Cancelled before delivery

	// Payment methods offered at checkout
	PaymentMethodQR   PaymentMethodKind = "qr"   // Scan the merchant's payment QR code
	PaymentMethodCash PaymentMethodKind = "cash" // Cash on delivery
)

// forwardStatus maps each status to the single legal next step of the
// fulfilment chain. Terminal statuses have no entry.
var forwardStatus = map[OrderStatus]OrderStatus{
	OrderStatusPendingPayment: OrderStatusPlaced,
	OrderStatusPlaced:         OrderStatusPreparing,
	OrderStatusPreparing:      OrderStatusOutForDelivery,
	OrderStatusOutForDelivery: OrderStatusDelivered,
}

// ParseOrderStatus validates a wire string against the known statuses.
func ParseOrderStatus(s string) (OrderStatus, bool) {
	switch OrderStatus(s) {
	case OrderStatusPendingPayment, OrderStatusPlaced, OrderStatusPreparing,
		OrderStatusOutForDelivery, OrderStatusDelivered, OrderStatusCancelled:
		return OrderStatus(s), true
	}
	return "", false
}

// IsTerminal reports whether no further transitions are permitted.
func (s OrderStatus) IsTerminal() bool {
	return s == OrderStatusDelivered || s == OrderStatusCancelled
}

// Next returns the single forward step, if any.
func (s OrderStatus) Next() (OrderStatus, bool) {
	next, ok := forwardStatus[s]
	return next, ok
}

// CanTransition enforces the order state machine: one forward step at a time,
// or cancellation from any non-terminal state. Skipping intermediate states
// is rejected even when the target lies further down the chain.
func (s OrderStatus) CanTransition(to OrderStatus) bool {
	if s.IsTerminal() {
		return false
	}
	if to == OrderStatusCancelled {
		return true
	}
	next, ok := forwardStatus[s]
	return ok && next == to
}

// InitialOrderStatus selects the creation status: cash orders are accepted
// immediately, QR payments wait for the merchant to confirm receipt.
func InitialOrderStatus(method PaymentMethodKind) OrderStatus {
	if method == PaymentMethodCash {
		return OrderStatusPlaced
	}
	return OrderStatusPendingPayment
}

// PromotionSnapshot is the promotion as it was when the order was placed,
// embedded on the order so later merchant edits cannot rewrite history.
type PromotionSnapshot struct {
	PromotionID string        `json:"id"`
	Description string        `json:"description"`
	Type        PromotionType `json:"type"`
	MinValue    float64       `json:"min_value"`
	Amount      float64       `json:"amount"`
}

type Order struct {
	ID               uint               `gorm:"primaryKey" json:"id"`
	CustomerID       string             `gorm:"index;not null" json:"customer_id"`
	RestaurantID     uint               `gorm:"index;not null" json:"restaurant_id"`
	RestaurantName   string             `json:"restaurant_name"`
	Items            []OrderItem        `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
	TotalAmount      float64            `json:"total_amount"`
	DiscountAmount   float64            `json:"discount_amount"`
	AppliedPromotion *PromotionSnapshot `gorm:"embedded;embeddedPrefix:promo_" json:"applied_promotion,omitempty"`
	Status           OrderStatus        `gorm:"type:VARCHAR(20)" json:"status"`
	PaymentMethod    PaymentMethodKind  `gorm:"type:VARCHAR(10)" json:"payment_method"`
	PaymentQRCodeURL string             `json:"payment_qr_code_url,omitempty"`
	DeliveryLocation string             `gorm:"not null" json:"delivery_location"`
	VerificationCode string             `gorm:"type:VARCHAR(6)" json:"verification_code"`
	CustomerName     string             `json:"customer_name"`
	CustomerPhone    string             `json:"customer_phone"`
	Rating           *int               `json:"rating,omitempty"`
	OrderDate        time.Time          `gorm:"index" json:"order_date"`
}

// OrderItem is an immutable snapshot of a menu item at order time.
type OrderItem struct {
	ID           uint    `gorm:"primaryKey" json:"-"`
	OrderID      uint    `gorm:"index" json:"-"`
	MenuItemID   uint    `json:"menu_item_id"`
	Name         string  `json:"name"`
	Description  string  `json:"description"`
	Price        float64 `json:"price"`
	ImageURL     string  `json:"image_url"`
	RestaurantID uint    `json:"restaurant_id"`
	Quantity     int     `json:"quantity"`
}

// AfterFind drops the zero-value snapshot GORM materializes for the embedded
// pointer, so an undiscounted order keeps a nil applied_promotion after a
// reload instead of growing an empty one.
func (o *Order) AfterFind(*gorm.DB) error {
	if o.AppliedPromotion != nil && o.AppliedPromotion.PromotionID == "" {
		o.AppliedPromotion = nil
	}
	return nil
}

// ItemsSubtotal recomputes the pre-discount sum from the item snapshots.
func (o *Order) ItemsSubtotal() float64 {
	var total float64
	for _, item := range o.Items {
		total += item.Price * float64(item.Quantity)
	}
	return total
}

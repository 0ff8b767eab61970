package models

import "errors"

// Sentinel errors shared by the stores. Handlers map these onto HTTP codes
// with errors.Is instead of matching message strings.
var (
	// ErrRestaurantMismatch: the cart already holds items from another restaurant.
	ErrRestaurantMismatch = errors.New("cart contains items from another restaurant")

	// ErrInvalidTransition: the requested status is not reachable from the current one.
	ErrInvalidTransition = errors.New("invalid order status transition")

	// ErrAlreadyRated: the order has a rating and ratings are write-once.
	ErrAlreadyRated = errors.New("order has already been rated")

	// ErrEmptyCart: checkout attempted with no cart items.
	ErrEmptyCart = errors.New("cart is empty")

	// ErrNotDelivered: rating attempted before the order was delivered.
	ErrNotDelivered = errors.New("order has not been delivered yet")
)

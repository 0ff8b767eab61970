package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	t.Run("ForwardChain", func(t *testing.T) {
		chain := []OrderStatus{
			OrderStatusPendingPayment,
			OrderStatusPlaced,
			OrderStatusPreparing,
			OrderStatusOutForDelivery,
			OrderStatusDelivered,
		}
		for i := 0; i < len(chain)-1; i++ {
			assert.True(t, chain[i].CanTransition(chain[i+1]),
				"%s -> %s should be legal", chain[i], chain[i+1])
		}
	})

	t.Run("SkippingStatesRejected", func(t *testing.T) {
		assert.False(t, OrderStatusPendingPayment.CanTransition(OrderStatusDelivered))
		assert.False(t, OrderStatusPendingPayment.CanTransition(OrderStatusPreparing))
		assert.False(t, OrderStatusPlaced.CanTransition(OrderStatusOutForDelivery))
	})

	t.Run("BackwardsRejected", func(t *testing.T) {
		assert.False(t, OrderStatusPreparing.CanTransition(OrderStatusPlaced))
		assert.False(t, OrderStatusOutForDelivery.CanTransition(OrderStatusPreparing))
	})

	t.Run("CancelFromAnyNonTerminal", func(t *testing.T) {
		for _, s := range []OrderStatus{
			OrderStatusPendingPayment, OrderStatusPlaced,
			OrderStatusPreparing, OrderStatusOutForDelivery,
		} {
			assert.True(t, s.CanTransition(OrderStatusCancelled), "cancel from %s", s)
		}
	})

	t.Run("TerminalStatesAreFinal", func(t *testing.T) {
		for _, terminal := range []OrderStatus{OrderStatusDelivered, OrderStatusCancelled} {
			assert.True(t, terminal.IsTerminal())
			for _, to := range []OrderStatus{
				OrderStatusPendingPayment, OrderStatusPlaced, OrderStatusPreparing,
				OrderStatusOutForDelivery, OrderStatusDelivered, OrderStatusCancelled,
			} {
				assert.False(t, terminal.CanTransition(to), "%s -> %s", terminal, to)
			}
		}
	})
}

func TestInitialOrderStatus(t *testing.T) {
	assert.Equal(t, OrderStatusPlaced, InitialOrderStatus(PaymentMethodCash))
	assert.Equal(t, OrderStatusPendingPayment, InitialOrderStatus(PaymentMethodQR))
}

func TestParseOrderStatus(t *testing.T) {
	s, ok := ParseOrderStatus("Out for Delivery")
	assert.True(t, ok)
	assert.Equal(t, OrderStatusOutForDelivery, s)

	_, ok = ParseOrderStatus("shipped")
	assert.False(t, ok)
}

func TestNext(t *testing.T) {
	next, ok := OrderStatusPreparing.Next()
	assert.True(t, ok)
	assert.Equal(t, OrderStatusOutForDelivery, next)

	_, ok = OrderStatusDelivered.Next()
	assert.False(t, ok)
	_, ok = OrderStatusCancelled.Next()
	assert.False(t, ok)
}

func TestCartHelpers(t *testing.T) {
	cart := Cart{Items: []CartItem{
		{MenuItemID: 1, RestaurantID: 7, Price: 12.5, Quantity: 2},
		{MenuItemID: 2, RestaurantID: 7, Price: 30, Quantity: 1},
	}}
	assert.Equal(t, uint(7), cart.RestaurantID())
	assert.InDelta(t, 55, cart.Subtotal(), 0.01)
	assert.Equal(t, 3, cart.ItemCount())

	empty := Cart{}
	assert.Equal(t, uint(0), empty.RestaurantID())
	assert.Zero(t, empty.Subtotal())
}

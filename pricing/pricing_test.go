package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Evan-Joseph/hospital-delivery-system/models"
)

func fixedPromo(id string, minValue, amount float64, active bool) models.Promotion {
	return models.Promotion{
		PublicID:    id,
		Description: id,
		Type:        models.PromotionFixedAmount,
		MinValue:    minValue,
		Amount:      amount,
		IsActive:    active,
	}
}

func TestBestDiscount(t *testing.T) {
	promos := []models.Promotion{
		fixedPromo("p100-10", 100, 10, true),
		fixedPromo("p50-5", 50, 5, true),
	}

	t.Run("PicksLargestApplicableAmount", func(t *testing.T) {
		promo, discount := BestDiscount(120, promos)
		assert.NotNil(t, promo)
		assert.Equal(t, "p100-10", promo.PublicID)
		assert.InDelta(t, 10, discount, 0.01)
	})

	t.Run("BelowEveryThreshold", func(t *testing.T) {
		promo, discount := BestDiscount(40, promos)
		assert.Nil(t, promo)
		assert.Zero(t, discount)
	})

	t.Run("MidThresholdPicksSmaller", func(t *testing.T) {
		promo, discount := BestDiscount(60, promos)
		assert.Equal(t, "p50-5", promo.PublicID)
		assert.InDelta(t, 5, discount, 0.01)
	})

	t.Run("InactiveIgnored", func(t *testing.T) {
		promo, discount := BestDiscount(120, []models.Promotion{
			fixedPromo("off", 0, 50, false),
			fixedPromo("on", 0, 5, true),
		})
		assert.Equal(t, "on", promo.PublicID)
		assert.InDelta(t, 5, discount, 0.01)
	})

	t.Run("ReservedTypesNeverApply", func(t *testing.T) {
		promo, discount := BestDiscount(200, []models.Promotion{
			{PublicID: "pct", Type: models.PromotionPercentage, Percentage: 20, IsActive: true},
			{PublicID: "free", Type: models.PromotionFreeDelivery, IsActive: true},
		})
		assert.Nil(t, promo)
		assert.Zero(t, discount)
	})

	t.Run("TieKeepsFirstInInputOrder", func(t *testing.T) {
		tied := []models.Promotion{
			fixedPromo("first", 0, 8, true),
			fixedPromo("second", 0, 8, true),
		}
		promo, _ := BestDiscount(100, tied)
		assert.Equal(t, "first", promo.PublicID)
	})

	t.Run("DiscountClampedToSubtotal", func(t *testing.T) {
		promo, discount := BestDiscount(3, []models.Promotion{
			fixedPromo("big", 0, 10, true),
		})
		assert.Equal(t, "big", promo.PublicID)
		assert.InDelta(t, 3, discount, 0.01)
	})

	t.Run("EmptyList", func(t *testing.T) {
		promo, discount := BestDiscount(100, nil)
		assert.Nil(t, promo)
		assert.Zero(t, discount)
	})

	t.Run("Deterministic", func(t *testing.T) {
		p1, d1 := BestDiscount(120, promos)
		p2, d2 := BestDiscount(120, promos)
		assert.Equal(t, p1.PublicID, p2.PublicID)
		assert.Equal(t, d1, d2)
	})
}

func TestComputeQuote(t *testing.T) {
	promos := []models.Promotion{
		fixedPromo("p100-10", 100, 10, true),
		fixedPromo("p50-5", 50, 5, true),
	}

	quote := ComputeQuote(120, promos)
	assert.InDelta(t, 120, quote.Subtotal, 0.01)
	assert.InDelta(t, 10, quote.Discount, 0.01)
	assert.InDelta(t, 110, quote.Total, 0.01)
	assert.NotNil(t, quote.Promotion)

	quote = ComputeQuote(40, promos)
	assert.Zero(t, quote.Discount)
	assert.InDelta(t, 40, quote.Total, 0.01)
	assert.Nil(t, quote.Promotion)
}

func TestSnapshot(t *testing.T) {
	assert.Nil(t, Snapshot(nil))

	p := fixedPromo("p100-10", 100, 10, true)
	snap := Snapshot(&p)
	assert.Equal(t, "p100-10", snap.PromotionID)
	assert.Equal(t, models.PromotionFixedAmount, snap.Type)
	assert.InDelta(t, 100, snap.MinValue, 0.01)
	assert.InDelta(t, 10, snap.Amount, 0.01)
}

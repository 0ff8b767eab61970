// Package pricing selects the best applicable promotion for a cart and
// computes the resulting totals. It is pure computation: callers must
// re-invoke it at the moment an order is persisted rather than trust a
// previously displayed discount.
package pricing

import "github.com/Evan-Joseph/hospital-delivery-system/models"

// Quote is the pricing engine's full answer for one cart subtotal.
type Quote struct {
	Subtotal  float64           `json:"subtotal"`
	Discount  float64           `json:"discount"`
	Total     float64           `json:"total"`
	Promotion *models.Promotion `json:"promotion,omitempty"`
}

// BestDiscount picks the applicable promotion with the largest fixed amount.
//
// Only active fixed-amount promotions participate; percentage and
// free-delivery types are reserved and never applied. A promotion is
// applicable when the subtotal meets its minimum spend. Ties keep the
// first-encountered promotion in input order; callers depend on that
// stability, so it must not be "improved" with a secondary tie-break.
//
// The discount is clamped to the subtotal so a misconfigured promotion can
// never produce a negative total. The original platform had no such cap;
// this is a deliberate hardening.
func BestDiscount(subtotal float64, promotions []models.Promotion) (*models.Promotion, float64) {
	var best *models.Promotion
	var bestAmount float64

	for i := range promotions {
		p := &promotions[i]
		if !p.IsActive || p.Type != models.PromotionFixedAmount {
			continue
		}
		if subtotal < p.MinValue {
			continue
		}
		if p.Amount > bestAmount {
			bestAmount = p.Amount
			best = p
		}
	}

	if best == nil {
		return nil, 0
	}
	if bestAmount > subtotal {
		bestAmount = subtotal
	}
	return best, bestAmount
}

// ComputeQuote bundles BestDiscount with the final total.
func ComputeQuote(subtotal float64, promotions []models.Promotion) Quote {
	promo, discount := BestDiscount(subtotal, promotions)
	return Quote{
		Subtotal:  subtotal,
		Discount:  discount,
		Total:     subtotal - discount,
		Promotion: promo,
	}
}

// Snapshot freezes the applied promotion for storage on an order.
func Snapshot(p *models.Promotion) *models.PromotionSnapshot {
	if p == nil {
		return nil
	}
	return &models.PromotionSnapshot{
		PromotionID: p.PublicID,
		Description: p.Description,
		Type:        p.Type,
		MinValue:    p.MinValue,
		Amount:      p.Amount,
	}
}

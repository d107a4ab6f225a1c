// Package pricing computes job item totals and job totals.
//
// All functions are pure: identical inputs always produce identical outputs,
// and adjustments are applied in the exact order they are stored on the item,
// so results are reproducible across any number of calls.
package pricing

import "slick_jobs/internal/domain/entities"

// ComputeItemTotal prices one job item.
//
// The running total starts at unitPrice * quantity. Pricing rules are applied
// first, then upcharges, each in stored order. A percentage adjustment is
// applied against the then-current running total, not the original base, so
// percentages compound. Adjustment ids that are missing from the catalogs are
// skipped.
func ComputeItemTotal(
	unitPrice float64,
	quantity int,
	appliedRuleIDs []string,
	addedUpchargeIDs []string,
	ruleCatalog map[string]entities.PricingRule,
	upchargeCatalog map[string]entities.Upcharge,
) float64 {
	running := unitPrice * float64(quantity)

	for _, id := range appliedRuleIDs {
		rule, ok := ruleCatalog[id]
		if !ok {
			continue
		}
		running = applyAdjustment(running, rule.Type, rule.Value)
	}

	for _, id := range addedUpchargeIDs {
		up, ok := upchargeCatalog[id]
		if !ok {
			continue
		}
		running = applyAdjustment(running, up.Type, up.Value)
	}

	return running
}

// ComputeJobTotals derives subtotal, discount and total from priced items and
// an optional promotion. The discount is capped at the subtotal so the total
// never goes negative. Inactive promotions contribute nothing.
func ComputeJobTotals(items []entities.JobItem, promo *entities.Promotion) (subtotal, discount, total float64) {
	for _, it := range items {
		subtotal += it.Total
	}

	if promo != nil && promo.IsActive {
		if promo.Type == entities.AdjustmentPercentage {
			discount = subtotal * promo.Value / 100
		} else {
			discount = promo.Value
		}
		if discount > subtotal {
			discount = subtotal
		}
	}

	return subtotal, discount, subtotal - discount
}

func applyAdjustment(running float64, typ entities.AdjustmentType, value float64) float64 {
	if typ == entities.AdjustmentPercentage {
		return running + running*value/100
	}
	return running + value
}

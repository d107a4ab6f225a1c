package pricing

import (
	"testing"

	"slick_jobs/internal/domain/entities"
)

func TestComputeItemTotal(t *testing.T) {
	rules := map[string]entities.PricingRule{
		"rule-fixed-25": {ID: "rule-fixed-25", Type: entities.AdjustmentFixedAmount, Value: 25},
		"rule-pct-50":   {ID: "rule-pct-50", Type: entities.AdjustmentPercentage, Value: 50},
	}
	upcharges := map[string]entities.Upcharge{
		"up-pct-10":   {ID: "up-pct-10", Type: entities.AdjustmentPercentage, Value: 10},
		"up-fixed-10": {ID: "up-fixed-10", Type: entities.AdjustmentFixedAmount, Value: 10},
	}

	t.Run("fixed rule then percentage upcharge compounds", func(t *testing.T) {
		got := ComputeItemTotal(100, 1, []string{"rule-fixed-25"}, []string{"up-pct-10"}, rules, upcharges)
		if got != 137.5 {
			t.Fatalf("expected 137.5, got %v", got)
		}
	})

	t.Run("reproducible across calls", func(t *testing.T) {
		first := ComputeItemTotal(100, 1, []string{"rule-fixed-25"}, []string{"up-pct-10"}, rules, upcharges)
		for i := 0; i < 100; i++ {
			if got := ComputeItemTotal(100, 1, []string{"rule-fixed-25"}, []string{"up-pct-10"}, rules, upcharges); got != first {
				t.Fatalf("call %d produced %v, expected %v", i, got, first)
			}
		}
	})

	t.Run("percentage applies against running total", func(t *testing.T) {
		// (50*2 + 25) * 1.5 = 187.5, then +10 = 197.5
		got := ComputeItemTotal(50, 2, []string{"rule-fixed-25", "rule-pct-50"}, []string{"up-fixed-10"}, rules, upcharges)
		if got != 197.5 {
			t.Fatalf("expected 197.5, got %v", got)
		}
	})

	t.Run("unknown adjustment ids are skipped", func(t *testing.T) {
		got := ComputeItemTotal(100, 1, []string{"missing"}, []string{"also-missing"}, rules, upcharges)
		if got != 100 {
			t.Fatalf("expected 100, got %v", got)
		}
	})

	t.Run("no adjustments", func(t *testing.T) {
		if got := ComputeItemTotal(80, 3, nil, nil, rules, upcharges); got != 240 {
			t.Fatalf("expected 240, got %v", got)
		}
	})
}

func TestComputeJobTotals(t *testing.T) {
	items := []entities.JobItem{{Total: 30}, {Total: 20}}

	t.Run("no promotion", func(t *testing.T) {
		subtotal, discount, total := ComputeJobTotals(items, nil)
		if subtotal != 50 || discount != 0 || total != 50 {
			t.Fatalf("unexpected totals: %v %v %v", subtotal, discount, total)
		}
	})

	t.Run("percentage promotion", func(t *testing.T) {
		promo := &entities.Promotion{Type: entities.AdjustmentPercentage, Value: 10, IsActive: true}
		_, discount, total := ComputeJobTotals(items, promo)
		if discount != 5 || total != 45 {
			t.Fatalf("unexpected discount/total: %v %v", discount, total)
		}
	})

	t.Run("discount capped at subtotal", func(t *testing.T) {
		promo := &entities.Promotion{Type: entities.AdjustmentPercentage, Value: 200, IsActive: true}
		_, discount, total := ComputeJobTotals(items, promo)
		if discount != 50 {
			t.Fatalf("expected discount capped at 50, got %v", discount)
		}
		if total != 0 {
			t.Fatalf("expected total 0, got %v", total)
		}
	})

	t.Run("fixed promotion capped at subtotal", func(t *testing.T) {
		promo := &entities.Promotion{Type: entities.AdjustmentFixedAmount, Value: 80, IsActive: true}
		_, discount, total := ComputeJobTotals(items, promo)
		if discount != 50 || total != 0 {
			t.Fatalf("unexpected discount/total: %v %v", discount, total)
		}
	})

	t.Run("inactive promotion ignored", func(t *testing.T) {
		promo := &entities.Promotion{Type: entities.AdjustmentFixedAmount, Value: 10, IsActive: false}
		_, discount, total := ComputeJobTotals(items, promo)
		if discount != 0 || total != 50 {
			t.Fatalf("unexpected discount/total: %v %v", discount, total)
		}
	})

	t.Run("empty items", func(t *testing.T) {
		promo := &entities.Promotion{Type: entities.AdjustmentFixedAmount, Value: 10, IsActive: true}
		subtotal, discount, total := ComputeJobTotals(nil, promo)
		if subtotal != 0 || discount != 0 || total != 0 {
			t.Fatalf("unexpected totals: %v %v %v", subtotal, discount, total)
		}
	})
}

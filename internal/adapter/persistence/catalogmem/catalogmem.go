// Package catalogmem is an in-memory catalog store used for local and demo
// deployments. In production the catalogs are owned by an external
// collaborator; this store mirrors its read interface with seeded data.
package catalogmem

import (
	"context"
	"strings"
	"sync"

	"slick_jobs/internal/domain/entities"
	"slick_jobs/internal/usecase/interfaces"
)

type Store struct {
	mu          sync.RWMutex
	services    []entities.Service
	rules       []entities.PricingRule
	upcharges   []entities.Upcharge
	promotions  []entities.Promotion
	technicians []string
}

var (
	_ interfaces.ICatalogStore        = (*Store)(nil)
	_ interfaces.ITechnicianDirectory = (*Store)(nil)
)

// NewSeeded builds the catalog used in dev/demo mode.
func NewSeeded() *Store {
	return &Store{
		services: []entities.Service{
			{ID: "svc-exterior-wash", Name: "Exterior Wash", BasePrice: 49},
			{ID: "svc-interior-detail", Name: "Interior Detail", BasePrice: 149},
			{ID: "svc-full-detail", Name: "Full Detail", BasePrice: 249},
			{ID: "svc-paint-correction", Name: "Paint Correction", BasePrice: 499},
			{ID: "svc-ceramic-coating", Name: "Ceramic Coating", BasePrice: 899},
			{ID: "svc-engine-bay", Name: "Engine Bay Cleaning", BasePrice: 89},
		},
		rules: []entities.PricingRule{
			{ID: "rule-oversize-vehicle", Name: "Oversize Vehicle", Type: entities.AdjustmentPercentage, Value: 25},
			{ID: "rule-fleet-discount", Name: "Fleet Discount", Type: entities.AdjustmentPercentage, Value: -10},
			{ID: "rule-mobile-callout", Name: "Mobile Call-out", Type: entities.AdjustmentFixedAmount, Value: 35},
		},
		upcharges: []entities.Upcharge{
			{ID: "up-pet-hair", Name: "Pet Hair Removal", Type: entities.AdjustmentFixedAmount, Value: 40},
			{ID: "up-heavy-soiling", Name: "Heavy Soiling", Type: entities.AdjustmentPercentage, Value: 15},
			{ID: "up-odor-treatment", Name: "Odor Treatment", Type: entities.AdjustmentFixedAmount, Value: 60},
		},
		promotions: []entities.Promotion{
			{ID: "promo-spring", Code: "SPRING10", Type: entities.AdjustmentPercentage, Value: 10, IsActive: true},
			{ID: "promo-flat25", Code: "FLAT25", Type: entities.AdjustmentFixedAmount, Value: 25, IsActive: true},
			{ID: "promo-expired", Code: "WINTER20", Type: entities.AdjustmentPercentage, Value: 20, IsActive: false},
		},
		technicians: []string{"tech-1", "tech-2", "tech-3"},
	}
}

func (s *Store) ListServices(ctx context.Context) ([]entities.Service, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]entities.Service(nil), s.services...), nil
}

func (s *Store) ListPricingRules(ctx context.Context) ([]entities.PricingRule, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]entities.PricingRule(nil), s.rules...), nil
}

func (s *Store) ListUpcharges(ctx context.Context) ([]entities.Upcharge, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]entities.Upcharge(nil), s.upcharges...), nil
}

func (s *Store) GetPromotionByCode(ctx context.Context, code string) (entities.Promotion, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.promotions {
		if strings.EqualFold(p.Code, code) {
			return p, nil
		}
	}
	return entities.Promotion{}, nil
}

func (s *Store) ListTechnicianIDs(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]string(nil), s.technicians...), nil
}

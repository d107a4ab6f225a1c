package interfaces

import (
	"context"

	"slick_jobs/internal/domain/entities"
)

// ICatalogStore is the read-only view of the service/pricing catalogs owned
// by an external collaborator. The job core never invents or mutates catalog
// entries; it only resolves the adjustments a job references.
//
// GetPromotionByCode returns a zero-ID Promotion when the code is unknown.
type ICatalogStore interface {
	ListServices(ctx context.Context) ([]entities.Service, error)
	ListPricingRules(ctx context.Context) ([]entities.PricingRule, error)
	ListUpcharges(ctx context.Context) ([]entities.Upcharge, error)
	GetPromotionByCode(ctx context.Context, code string) (entities.Promotion, error)
}

// ITechnicianDirectory supplies the known technician ids for leaderboard
// queries. Owned by the external identity provider.
type ITechnicianDirectory interface {
	ListTechnicianIDs(ctx context.Context) ([]string, error)
}

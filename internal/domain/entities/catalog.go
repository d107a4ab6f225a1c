package entities

// AdjustmentType is shared by pricing rules, upcharges and promotions.

type AdjustmentType string

const (
	AdjustmentFixedAmount AdjustmentType = "fixedAmount"
	AdjustmentPercentage  AdjustmentType = "percentage"
)

// Service is a catalog entry a job item points at. The catalog itself is
// owned by an external collaborator; the job core only reads it.
type Service struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	BasePrice float64 `json:"base_price"`
}

// PricingRule is a named adjustment applied to a job item, in stored order.
type PricingRule struct {
	ID    string         `json:"id"`
	Name  string         `json:"name"`
	Type  AdjustmentType `json:"type"`
	Value float64        `json:"value"`
}

// Upcharge is an ad-hoc additional charge attachable to any job item.
type Upcharge struct {
	ID    string         `json:"id"`
	Name  string         `json:"name"`
	Type  AdjustmentType `json:"type"`
	Value float64        `json:"value"`
}

// Promotion is a code-activated discount applied to a job's subtotal.
type Promotion struct {
	ID       string         `json:"id"`
	Code     string         `json:"code"`
	Type     AdjustmentType `json:"type"`
	Value    float64        `json:"value"`
	IsActive bool           `json:"is_active"`
}

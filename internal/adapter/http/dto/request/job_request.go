package request

import (
	"strings"

	"slick_jobs/internal/domain/entities"
	"slick_jobs/internal/usecase"
)

type CreateJobRequest struct {
	CustomerID string `json:"customer_id" binding:"required"`
	VehicleID  string `json:"vehicle_id" binding:"required"`
}

type JobItemRequest struct {
	ID                    string   `json:"id"`
	ServiceID             string   `json:"service_id" binding:"required"`
	Quantity              int      `json:"quantity"`
	UnitPrice             float64  `json:"unit_price"`
	AppliedPricingRuleIDs []string `json:"applied_pricing_rule_ids"`
	AddedUpchargeIDs      []string `json:"added_upcharge_ids"`
}

// JobSaveRequest carries the full desired job state. Derived fields (totals,
// payment status, timestamps) are never accepted from the wire.
type JobSaveRequest struct {
	CustomerID            string           `json:"customer_id"`
	VehicleID             string           `json:"vehicle_id"`
	Status                string           `json:"status"`
	Items                 []JobItemRequest `json:"items"`
	PromotionCode         string           `json:"promotion_code"`
	Notes                 string           `json:"notes"`
	AssignedTechnicianIDs []string         `json:"assigned_technician_ids"`
}

func (r JobSaveRequest) ToInput(id string) usecase.JobSaveInput {
	items := make([]usecase.JobItemInput, 0, len(r.Items))
	for _, it := range r.Items {
		quantity := it.Quantity
		if quantity <= 0 {
			quantity = 1
		}
		items = append(items, usecase.JobItemInput{
			ID:                    it.ID,
			ServiceID:             it.ServiceID,
			Quantity:              quantity,
			UnitPrice:             it.UnitPrice,
			AppliedPricingRuleIDs: it.AppliedPricingRuleIDs,
			AddedUpchargeIDs:      it.AddedUpchargeIDs,
		})
	}

	return usecase.JobSaveInput{
		ID:                    id,
		CustomerID:            r.CustomerID,
		VehicleID:             r.VehicleID,
		Status:                entities.JobStatus(strings.TrimSpace(r.Status)),
		Items:                 items,
		PromotionCode:         r.PromotionCode,
		Notes:                 r.Notes,
		AssignedTechnicianIDs: r.AssignedTechnicianIDs,
	}
}

type ApproveJobRequest struct {
	SignatureStorageID string `json:"signature_storage_id" binding:"required"`
}

type AddPhotoRequest struct {
	StorageID string `json:"storage_id" binding:"required"`
}

type ChecklistProgressRequest struct {
	ItemID           string   `json:"item_id" binding:"required"`
	CompletedTaskIDs []string `json:"completed_task_ids"`
}

type VisualQuoteRequest struct {
	ImageStorageIDs []string `json:"image_storage_ids" binding:"required"`
}

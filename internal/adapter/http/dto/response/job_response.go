package response

import (
	"time"

	"slick_jobs/internal/domain/entities"
)

type JobItemResponse struct {
	ID                        string   `json:"id"`
	ServiceID                 string   `json:"service_id"`
	Quantity                  int      `json:"quantity"`
	UnitPrice                 float64  `json:"unit_price"`
	AppliedPricingRuleIDs     []string `json:"applied_pricing_rule_ids,omitempty"`
	AddedUpchargeIDs          []string `json:"added_upcharge_ids,omitempty"`
	Total                     float64  `json:"total"`
	ChecklistCompletedTaskIDs []string `json:"checklist_completed_task_ids,omitempty"`
}

type PaymentResponse struct {
	Amount float64   `json:"amount"`
	Date   time.Time `json:"date"`
	Method string    `json:"method"`
	Notes  string    `json:"notes,omitempty"`
}

type JobResponse struct {
	ID         string `json:"id"`
	CustomerID string `json:"customer_id"`
	VehicleID  string `json:"vehicle_id"`

	Status       string    `json:"status"`
	EstimateDate time.Time `json:"estimate_date"`

	WorkOrderDate  *time.Time `json:"work_order_date,omitempty"`
	InvoiceDate    *time.Time `json:"invoice_date,omitempty"`
	CompletionDate *time.Time `json:"completion_date,omitempty"`

	Items []JobItemResponse `json:"items"`
	Notes string            `json:"notes,omitempty"`

	Payments        []PaymentResponse `json:"payments,omitempty"`
	PaymentReceived float64           `json:"payment_received"`
	PaymentStatus   string            `json:"payment_status"`

	DiscountAmount     float64 `json:"discount_amount"`
	AppliedPromotionID string  `json:"applied_promotion_id,omitempty"`
	TotalAmount        float64 `json:"total_amount"`

	AssignedTechnicianIDs []string `json:"assigned_technician_ids,omitempty"`

	VisualQuoteStatus     string   `json:"visual_quote_status"`
	VisualQuoteStorageIDs []string `json:"visual_quote_storage_ids,omitempty"`

	CustomerApprovalStatus string     `json:"customer_approval_status,omitempty"`
	ApprovedAt             *time.Time `json:"approved_at,omitempty"`

	PublicLinkKey   string   `json:"public_link_key"`
	PhotoStorageIDs []string `json:"photo_storage_ids,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func FromJob(j entities.Job) JobResponse {
	items := make([]JobItemResponse, 0, len(j.JobItems))
	for _, it := range j.JobItems {
		items = append(items, JobItemResponse{
			ID:                        it.ID,
			ServiceID:                 it.ServiceID,
			Quantity:                  it.Quantity,
			UnitPrice:                 it.UnitPrice,
			AppliedPricingRuleIDs:     it.AppliedPricingRuleIDs,
			AddedUpchargeIDs:          it.AddedUpchargeIDs,
			Total:                     it.Total,
			ChecklistCompletedTaskIDs: it.ChecklistCompletedTaskIDs,
		})
	}

	payments := make([]PaymentResponse, 0, len(j.Payments))
	for _, p := range j.Payments {
		payments = append(payments, PaymentResponse{Amount: p.Amount, Date: p.Date, Method: p.Method, Notes: p.Notes})
	}

	return JobResponse{
		ID:                     j.ID,
		CustomerID:             j.CustomerID,
		VehicleID:              j.VehicleID,
		Status:                 string(j.Status),
		EstimateDate:           j.EstimateDate,
		WorkOrderDate:          j.WorkOrderDate,
		InvoiceDate:            j.InvoiceDate,
		CompletionDate:         j.CompletionDate,
		Items:                  items,
		Notes:                  j.Notes,
		Payments:               payments,
		PaymentReceived:        j.PaymentReceived,
		PaymentStatus:          string(j.PaymentStatus),
		DiscountAmount:         j.DiscountAmount,
		AppliedPromotionID:     j.AppliedPromotionID,
		TotalAmount:            j.TotalAmount,
		AssignedTechnicianIDs:  j.AssignedTechnicianIDs,
		VisualQuoteStatus:      string(j.VisualQuoteStatus),
		VisualQuoteStorageIDs:  j.VisualQuoteStorageIDs,
		CustomerApprovalStatus: string(j.CustomerApprovalStatus),
		ApprovedAt:             j.ApprovedAt,
		PublicLinkKey:          j.PublicLinkKey,
		PhotoStorageIDs:        j.PhotoStorageIDs,
		CreatedAt:              j.CreatedAt,
		UpdatedAt:              j.UpdatedAt,
	}
}

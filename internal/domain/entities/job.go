package entities

import "time"

// JobStatus represents the lifecycle of a job.
//
// Domain notes:
//   - Transitions are monotonic along estimate -> workOrder -> invoice -> completed.
//   - cancelled is reachable from any non-terminal status.
//   - completed and cancelled are terminal.

type JobStatus string

const (
	JobStatusEstimate  JobStatus = "estimate"
	JobStatusWorkOrder JobStatus = "workOrder"
	JobStatusInvoice   JobStatus = "invoice"
	JobStatusCompleted JobStatus = "completed"
	JobStatusCancelled JobStatus = "cancelled"
)

// PaymentStatus is derived from paymentReceived vs totalAmount and is never
// set directly by callers.

type PaymentStatus string

const (
	PaymentStatusUnpaid  PaymentStatus = "unpaid"
	PaymentStatusPartial PaymentStatus = "partial"
	PaymentStatusPaid    PaymentStatus = "paid"
)

// VisualQuoteStatus tracks the AI-assisted quoting pipeline on a job.

type VisualQuoteStatus string

const (
	VisualQuoteStatusNone     VisualQuoteStatus = "none"
	VisualQuoteStatusPending  VisualQuoteStatus = "pending"
	VisualQuoteStatusComplete VisualQuoteStatus = "complete"
	VisualQuoteStatusFailed   VisualQuoteStatus = "failed"
)

// ApprovalStatus is owned by the customer-approval flow; the job core only
// initializes it on estimate creation and records the Approve() outcome.

type ApprovalStatus string

const (
	ApprovalStatusNone     ApprovalStatus = ""
	ApprovalStatusPending  ApprovalStatus = "pending"
	ApprovalStatusApproved ApprovalStatus = "approved"
)

// ActorRole comes from the external identity provider.

type ActorRole string

const (
	RoleAdmin      ActorRole = "admin"
	RoleTechnician ActorRole = "technician"
)

// Actor is the authenticated caller as resolved by the identity collaborator.
type Actor struct {
	ID   string    `json:"id"`
	Role ActorRole `json:"role"`
}

// Payment is one entry in a job's append-only payment ledger.
type Payment struct {
	Amount float64   `json:"amount"`
	Date   time.Time `json:"date"`
	Method string    `json:"method"`
	Notes  string    `json:"notes,omitempty"`
}

// JobItem is one service line on a job.
//
// Total is always derived by the pricing engine from UnitPrice, Quantity and
// the applied rule/upcharge adjustments; it is never hand-edited.
// ChecklistCompletedTaskIDs is owned by the checklist collaborator and must be
// preserved verbatim across edits to other fields.
type JobItem struct {
	ID                        string   `json:"id"`
	ServiceID                 string   `json:"service_id"`
	Quantity                  int      `json:"quantity"`
	UnitPrice                 float64  `json:"unit_price"`
	AppliedPricingRuleIDs     []string `json:"applied_pricing_rule_ids,omitempty"`
	AddedUpchargeIDs          []string `json:"added_upcharge_ids,omitempty"`
	Total                     float64  `json:"total"`
	ChecklistCompletedTaskIDs []string `json:"checklist_completed_task_ids,omitempty"`
}

// Job is the central billable entity.
//
// Derived fields (Total on items, TotalAmount, PaymentReceived, PaymentStatus)
// are recomputed on every mutation; the persisted values are a cache, not a
// source of truth.
//
// Lifecycle timestamps are set exactly once, the first time the job enters the
// corresponding status, and are never cleared by later edits.
type Job struct {
	ID         string `json:"id"`
	CustomerID string `json:"customer_id"`
	VehicleID  string `json:"vehicle_id"`

	Status       JobStatus `json:"status"`
	EstimateDate time.Time `json:"estimate_date"`

	WorkOrderDate  *time.Time `json:"work_order_date,omitempty"`
	InvoiceDate    *time.Time `json:"invoice_date,omitempty"`
	CompletionDate *time.Time `json:"completion_date,omitempty"`

	JobItems []JobItem `json:"job_items"`
	Notes    string    `json:"notes,omitempty"`

	Payments        []Payment     `json:"payments,omitempty"`
	PaymentReceived float64       `json:"payment_received"`
	PaymentStatus   PaymentStatus `json:"payment_status"`

	DiscountAmount     float64 `json:"discount_amount"`
	AppliedPromotionID string  `json:"applied_promotion_id,omitempty"`
	TotalAmount        float64 `json:"total_amount"`

	AssignedTechnicianIDs []string `json:"assigned_technician_ids,omitempty"`

	VisualQuoteStatus     VisualQuoteStatus `json:"visual_quote_status"`
	VisualQuoteStorageIDs []string          `json:"visual_quote_storage_ids,omitempty"`
	// VisualQuoteGeneration is bumped on every Initiate call so an async
	// write-back can detect that its snapshot went stale and no-op.
	VisualQuoteGeneration int `json:"visual_quote_generation"`

	InventoryDebited bool `json:"inventory_debited"`

	CustomerApprovalStatus ApprovalStatus `json:"customer_approval_status,omitempty"`
	ApprovalSignatureID    string         `json:"approval_signature_id,omitempty"`
	ApprovedAt             *time.Time     `json:"approved_at,omitempty"`

	// PublicLinkKey is an immutable random token minted at creation and used
	// by the external customer portal for unauthenticated lookups.
	PublicLinkKey string `json:"public_link_key"`

	PhotoStorageIDs []string `json:"photo_storage_ids,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// StatsTime is the timestamp a job contributes to the per-status stats index:
// the completion date for completed jobs, the creation time otherwise.
func (j Job) StatsTime() time.Time {
	if j.Status == JobStatusCompleted && j.CompletionDate != nil {
		return *j.CompletionDate
	}
	return j.CreatedAt
}

package usecase

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"

	"slick_jobs/internal/domain/aggregate"
	"slick_jobs/internal/domain/entities"
	"slick_jobs/internal/domain/pricing"
	"slick_jobs/internal/usecase/interfaces"
)

var (
	ErrJobNotFound       = errors.New("job not found")
	ErrInvalidJobID      = errors.New("invalid job id")
	ErrInvalidCustomerID = errors.New("invalid customer id")
	ErrInvalidVehicleID  = errors.New("invalid vehicle id")
	ErrInvalidStatus     = errors.New("invalid job status")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrInvalidSignature  = errors.New("invalid signature reference")
)

// JobItemInput is the caller-supplied shape of one job line. Totals are never
// accepted from callers; they are recomputed by the pricing engine.
type JobItemInput struct {
	ID                    string
	ServiceID             string
	Quantity              int
	UnitPrice             float64
	AppliedPricingRuleIDs []string
	AddedUpchargeIDs      []string
}

// JobSaveInput is the full desired state accepted by Save. An empty ID means
// a new job is being created.
type JobSaveInput struct {
	ID                    string
	CustomerID            string
	VehicleID             string
	Status                entities.JobStatus
	Items                 []JobItemInput
	PromotionCode         string
	Notes                 string
	AssignedTechnicianIDs []string
}

// IJobUseCase exposes the job lifecycle operations.
type IJobUseCase interface {
	CreateDraft(ctx context.Context, actor entities.Actor, customerID, vehicleID string) (entities.Job, error)
	Save(ctx context.Context, actor entities.Actor, input JobSaveInput) (entities.Job, error)
	ConvertToWorkOrder(ctx context.Context, id string) (entities.Job, error)
	GenerateInvoice(ctx context.Context, id string) (entities.Job, error)
	Approve(ctx context.Context, id, signatureRef string) (entities.Job, error)
	AddPhoto(ctx context.Context, id, storageID string) (entities.Job, error)
	UpdateChecklistProgress(ctx context.Context, id, itemID string, completedTaskIDs []string) (entities.Job, error)
	Remove(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (entities.Job, error)
	GetByPublicKey(ctx context.Context, key string) (entities.Job, error)
}

// JobUseCase owns the job state machine: it recomputes pricing on every save,
// derives payment status, keeps lifecycle timestamps set-once, and commits
// every mutation together with its aggregate index delta.
type JobUseCase struct {
	repo      interfaces.IJobRepository
	catalog   interfaces.ICatalogStore
	inventory interfaces.IInventoryService
	runner    interfaces.ITaskRunner

	// autoInventoryDebit mirrors the business opt-in for automatic inventory
	// deduction on job completion.
	autoInventoryDebit bool
}

var _ IJobUseCase = (*JobUseCase)(nil)

func NewJobUseCase(
	repo interfaces.IJobRepository,
	catalog interfaces.ICatalogStore,
	inventory interfaces.IInventoryService,
	runner interfaces.ITaskRunner,
	autoInventoryDebit bool,
) *JobUseCase {
	return &JobUseCase{
		repo:               repo,
		catalog:            catalog,
		inventory:          inventory,
		runner:             runner,
		autoInventoryDebit: autoInventoryDebit,
	}
}

// statusRank orders the forward lifecycle. cancelled is handled separately.
var statusRank = map[entities.JobStatus]int{
	entities.JobStatusEstimate:  0,
	entities.JobStatusWorkOrder: 1,
	entities.JobStatusInvoice:   2,
	entities.JobStatusCompleted: 3,
}

func canTransition(from, to entities.JobStatus) bool {
	if from == to {
		return true
	}
	if from == entities.JobStatusCompleted || from == entities.JobStatusCancelled {
		return false
	}
	if to == entities.JobStatusCancelled {
		return true
	}
	fromRank, okFrom := statusRank[from]
	toRank, okTo := statusRank[to]
	return okFrom && okTo && toRank > fromRank
}

func (u *JobUseCase) CreateDraft(ctx context.Context, actor entities.Actor, customerID, vehicleID string) (entities.Job, error) {
	customerID = strings.TrimSpace(customerID)
	vehicleID = strings.TrimSpace(vehicleID)
	if customerID == "" {
		return entities.Job{}, ErrInvalidCustomerID
	}
	if vehicleID == "" {
		return entities.Job{}, ErrInvalidVehicleID
	}

	return u.Save(ctx, actor, JobSaveInput{
		CustomerID: customerID,
		VehicleID:  vehicleID,
		Status:     entities.JobStatusEstimate,
	})
}

func (u *JobUseCase) Save(ctx context.Context, actor entities.Actor, input JobSaveInput) (entities.Job, error) {
	input.ID = strings.TrimSpace(input.ID)

	var old *entities.Job
	if input.ID != "" {
		existing, err := u.repo.GetByID(ctx, input.ID)
		if err != nil {
			return entities.Job{}, err
		}
		if existing.ID == "" {
			return entities.Job{}, ErrJobNotFound
		}
		old = &existing
	}

	job, err := u.buildSnapshot(ctx, actor, old, input)
	if err != nil {
		return entities.Job{}, err
	}

	if err := u.commit(ctx, old, &job); err != nil {
		return entities.Job{}, err
	}

	u.maybeDebitInventory(old, job)

	log.Printf("[job][usecase] save success job_id=%s status=%s total=%.2f", job.ID, job.Status, job.TotalAmount)
	return job, nil
}

// buildSnapshot produces the new job state from the desired input, enforcing
// the state machine and recomputing every derived field.
func (u *JobUseCase) buildSnapshot(ctx context.Context, actor entities.Actor, old *entities.Job, input JobSaveInput) (entities.Job, error) {
	now := time.Now().UTC()

	status := input.Status
	if status == "" {
		status = entities.JobStatusEstimate
	}
	if _, known := statusRank[status]; !known && status != entities.JobStatusCancelled {
		return entities.Job{}, errors.Wrapf(ErrInvalidStatus, "status %q", status)
	}

	var job entities.Job
	if old != nil {
		if !canTransition(old.Status, status) {
			return entities.Job{}, errors.Wrapf(ErrInvalidTransition, "%s -> %s", old.Status, status)
		}
		job = *old
		job.CustomerID = orDefault(strings.TrimSpace(input.CustomerID), old.CustomerID)
		job.VehicleID = orDefault(strings.TrimSpace(input.VehicleID), old.VehicleID)
	} else {
		job = entities.Job{
			ID:            uuid.NewString(),
			CustomerID:    strings.TrimSpace(input.CustomerID),
			VehicleID:     strings.TrimSpace(input.VehicleID),
			EstimateDate:  now,
			CreatedAt:     now,
			PublicLinkKey: uuid.NewString(),
			PaymentStatus: entities.PaymentStatusUnpaid,

			VisualQuoteStatus: entities.VisualQuoteStatusNone,
		}
		if status == entities.JobStatusEstimate {
			job.CustomerApprovalStatus = entities.ApprovalStatusPending
		}
		// A technician creating a job is assigned to it automatically.
		if actor.Role == entities.RoleTechnician && actor.ID != "" {
			input.AssignedTechnicianIDs = appendUnique(input.AssignedTechnicianIDs, actor.ID)
		}
	}

	job.Status = status
	job.Notes = input.Notes
	job.AssignedTechnicianIDs = input.AssignedTechnicianIDs
	job.UpdatedAt = now

	u.stampLifecycle(&job, now)

	items, err := u.priceItems(ctx, old, input.Items)
	if err != nil {
		return entities.Job{}, err
	}
	job.JobItems = items

	if err := u.applyPromotion(ctx, &job, input.PromotionCode); err != nil {
		return entities.Job{}, err
	}

	job.PaymentReceived = sumPayments(job.Payments)
	job.PaymentStatus = derivePaymentStatus(job.PaymentReceived, job.TotalAmount)

	return job, nil
}

// stampLifecycle sets each lifecycle timestamp the first time the job enters
// the corresponding status. Already-set dates are never touched.
func (u *JobUseCase) stampLifecycle(job *entities.Job, now time.Time) {
	switch job.Status {
	case entities.JobStatusWorkOrder:
		if job.WorkOrderDate == nil {
			job.WorkOrderDate = &now
		}
	case entities.JobStatusInvoice:
		if job.InvoiceDate == nil {
			job.InvoiceDate = &now
		}
	case entities.JobStatusCompleted:
		if job.CompletionDate == nil {
			job.CompletionDate = &now
		}
	}
}

// priceItems recomputes every item total and carries checklist progress over
// from the old snapshot for items that still exist, matched by item id.
func (u *JobUseCase) priceItems(ctx context.Context, old *entities.Job, inputs []JobItemInput) ([]entities.JobItem, error) {
	if len(inputs) == 0 {
		return nil, nil
	}

	ruleCatalog, upchargeCatalog, err := u.loadAdjustmentCatalogs(ctx)
	if err != nil {
		return nil, err
	}

	var oldChecklists map[string][]string
	if old != nil {
		oldChecklists = make(map[string][]string, len(old.JobItems))
		for _, it := range old.JobItems {
			oldChecklists[it.ID] = it.ChecklistCompletedTaskIDs
		}
	}

	items := make([]entities.JobItem, 0, len(inputs))
	for _, in := range inputs {
		id := strings.TrimSpace(in.ID)
		if id == "" {
			id = uuid.NewString()
		}
		items = append(items, entities.JobItem{
			ID:                        id,
			ServiceID:                 in.ServiceID,
			Quantity:                  in.Quantity,
			UnitPrice:                 in.UnitPrice,
			AppliedPricingRuleIDs:     in.AppliedPricingRuleIDs,
			AddedUpchargeIDs:          in.AddedUpchargeIDs,
			Total:                     pricing.ComputeItemTotal(in.UnitPrice, in.Quantity, in.AppliedPricingRuleIDs, in.AddedUpchargeIDs, ruleCatalog, upchargeCatalog),
			ChecklistCompletedTaskIDs: oldChecklists[id],
		})
	}
	return items, nil
}

func (u *JobUseCase) loadAdjustmentCatalogs(ctx context.Context) (map[string]entities.PricingRule, map[string]entities.Upcharge, error) {
	rules, err := u.catalog.ListPricingRules(ctx)
	if err != nil {
		return nil, nil, errors.Wrap(err, "loading pricing rules")
	}
	upcharges, err := u.catalog.ListUpcharges(ctx)
	if err != nil {
		return nil, nil, errors.Wrap(err, "loading upcharges")
	}

	ruleCatalog := make(map[string]entities.PricingRule, len(rules))
	for _, r := range rules {
		ruleCatalog[r.ID] = r
	}
	upchargeCatalog := make(map[string]entities.Upcharge, len(upcharges))
	for _, up := range upcharges {
		upchargeCatalog[up.ID] = up
	}
	return ruleCatalog, upchargeCatalog, nil
}

// applyPromotion resolves the promotion code (if any) and recomputes the
// job's totals. An unknown or inactive code simply yields no discount.
func (u *JobUseCase) applyPromotion(ctx context.Context, job *entities.Job, code string) error {
	var promo *entities.Promotion
	job.AppliedPromotionID = ""

	if code = strings.TrimSpace(code); code != "" {
		p, err := u.catalog.GetPromotionByCode(ctx, code)
		if err != nil {
			return errors.Wrap(err, "resolving promotion")
		}
		if p.ID != "" && p.IsActive {
			promo = &p
			job.AppliedPromotionID = p.ID
		}
	}

	_, discount, total := pricing.ComputeJobTotals(job.JobItems, promo)
	job.DiscountAmount = discount
	job.TotalAmount = total
	return nil
}

// commit diffs the snapshots into an aggregate delta and writes everything as
// one unit. The InventoryDebited flag is flipped inside the same transaction
// that observes the completion, so concurrent saves cannot double-schedule
// the debit.
func (u *JobUseCase) commit(ctx context.Context, old, job *entities.Job) error {
	if u.shouldDebitInventory(old, *job) {
		job.InventoryDebited = true
	}

	delta, err := aggregate.Diff(old, job)
	if err != nil {
		return err
	}
	return u.repo.Commit(ctx, interfaces.JobTransaction{
		Put:          job,
		IndexPuts:    delta.Puts,
		IndexDeletes: delta.Deletes,
	})
}

func (u *JobUseCase) shouldDebitInventory(old *entities.Job, job entities.Job) bool {
	if !u.autoInventoryDebit || job.Status != entities.JobStatusCompleted || job.InventoryDebited {
		return false
	}
	return old == nil || !old.InventoryDebited
}

// maybeDebitInventory schedules the debit side effect after a commit that
// flipped the guard flag from false to true.
func (u *JobUseCase) maybeDebitInventory(old *entities.Job, job entities.Job) {
	if !job.InventoryDebited {
		return
	}
	if old != nil && old.InventoryDebited {
		return
	}
	if u.inventory == nil || u.runner == nil {
		return
	}

	jobID := job.ID
	u.runner.Go("inventory-debit", func(ctx context.Context) error {
		return u.inventory.DebitForJob(ctx, jobID)
	})
	log.Printf("[job][usecase] inventory debit scheduled job_id=%s", jobID)
}

func (u *JobUseCase) ConvertToWorkOrder(ctx context.Context, id string) (entities.Job, error) {
	return u.transition(ctx, id, entities.JobStatusWorkOrder)
}

func (u *JobUseCase) GenerateInvoice(ctx context.Context, id string) (entities.Job, error) {
	return u.transition(ctx, id, entities.JobStatusInvoice)
}

func (u *JobUseCase) transition(ctx context.Context, id string, to entities.JobStatus) (entities.Job, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Job{}, ErrInvalidJobID
	}

	old, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Job{}, err
	}
	if old.ID == "" {
		return entities.Job{}, ErrJobNotFound
	}
	if old.Status == to {
		// Timestamp is already stamped; repeating the call is a no-op.
		return old, nil
	}
	if !canTransition(old.Status, to) {
		return entities.Job{}, errors.Wrapf(ErrInvalidTransition, "%s -> %s", old.Status, to)
	}

	job := old
	job.Status = to
	now := time.Now().UTC()
	job.UpdatedAt = now
	u.stampLifecycle(&job, now)

	if err := u.commit(ctx, &old, &job); err != nil {
		return entities.Job{}, err
	}
	log.Printf("[job][usecase] transition success job_id=%s %s -> %s", job.ID, old.Status, to)
	return job, nil
}

// Approve records the customer approval outcome. It touches neither pricing
// nor aggregates.
func (u *JobUseCase) Approve(ctx context.Context, id, signatureRef string) (entities.Job, error) {
	signatureRef = strings.TrimSpace(signatureRef)
	if signatureRef == "" {
		return entities.Job{}, ErrInvalidSignature
	}

	return u.narrowUpdate(ctx, id, func(job *entities.Job, now time.Time) {
		job.CustomerApprovalStatus = entities.ApprovalStatusApproved
		job.ApprovalSignatureID = signatureRef
		job.ApprovedAt = &now
	})
}

func (u *JobUseCase) AddPhoto(ctx context.Context, id, storageID string) (entities.Job, error) {
	storageID = strings.TrimSpace(storageID)
	if storageID == "" {
		return entities.Job{}, errors.New("invalid photo storage id")
	}

	return u.narrowUpdate(ctx, id, func(job *entities.Job, _ time.Time) {
		job.PhotoStorageIDs = append(job.PhotoStorageIDs, storageID)
	})
}

func (u *JobUseCase) UpdateChecklistProgress(ctx context.Context, id, itemID string, completedTaskIDs []string) (entities.Job, error) {
	itemID = strings.TrimSpace(itemID)
	if itemID == "" {
		return entities.Job{}, errors.New("invalid job item id")
	}

	return u.narrowUpdate(ctx, id, func(job *entities.Job, _ time.Time) {
		for i := range job.JobItems {
			if job.JobItems[i].ID == itemID {
				job.JobItems[i].ChecklistCompletedTaskIDs = completedTaskIDs
				return
			}
		}
	})
}

// narrowUpdate applies a mutation that must not disturb totals, status or
// aggregates, so it commits the job write with no index delta.
func (u *JobUseCase) narrowUpdate(ctx context.Context, id string, mutate func(job *entities.Job, now time.Time)) (entities.Job, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Job{}, ErrInvalidJobID
	}

	job, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Job{}, err
	}
	if job.ID == "" {
		return entities.Job{}, ErrJobNotFound
	}

	now := time.Now().UTC()
	mutate(&job, now)
	job.UpdatedAt = now

	if err := u.repo.Commit(ctx, interfaces.JobTransaction{Put: &job}); err != nil {
		return entities.Job{}, err
	}
	return job, nil
}

// Remove deletes the job and its aggregate entries. Deleting a missing job
// is a no-op.
func (u *JobUseCase) Remove(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidJobID
	}

	old, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if old.ID == "" {
		return nil
	}

	delta, err := aggregate.Diff(&old, nil)
	if err != nil {
		return err
	}
	if err := u.repo.Commit(ctx, interfaces.JobTransaction{
		DeleteID:     old.ID,
		IndexDeletes: delta.Deletes,
	}); err != nil {
		return err
	}
	log.Printf("[job][usecase] remove success job_id=%s", id)
	return nil
}

func (u *JobUseCase) GetByID(ctx context.Context, id string) (entities.Job, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Job{}, ErrInvalidJobID
	}

	job, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Job{}, err
	}
	if job.ID == "" {
		return entities.Job{}, ErrJobNotFound
	}
	return job, nil
}

func (u *JobUseCase) GetByPublicKey(ctx context.Context, key string) (entities.Job, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return entities.Job{}, errors.New("invalid public link key")
	}

	job, err := u.repo.GetByPublicKey(ctx, key)
	if err != nil {
		return entities.Job{}, err
	}
	if job.ID == "" {
		return entities.Job{}, ErrJobNotFound
	}
	return job, nil
}

func sumPayments(payments []entities.Payment) float64 {
	total := 0.0
	for _, p := range payments {
		total += p.Amount
	}
	return total
}

func derivePaymentStatus(received, total float64) entities.PaymentStatus {
	switch {
	case received <= 0:
		return entities.PaymentStatusUnpaid
	case received >= total:
		return entities.PaymentStatusPaid
	default:
		return entities.PaymentStatusPartial
	}
}

func orDefault(v, def string) string {
	if v != "" {
		return v
	}
	return def
}

func appendUnique(list []string, v string) []string {
	for _, existing := range list {
		if existing == v {
			return list
		}
	}
	return append(list, v)
}

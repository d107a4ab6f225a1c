package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/cockroachdb/errors"

	"slick_jobs/internal/domain/aggregate"
	"slick_jobs/internal/domain/entities"
	"slick_jobs/internal/usecase/interfaces"
)

var (
	ErrInvalidAmount          = errors.New("invalid payment amount")
	ErrNoBalanceDue           = errors.New("no balance due")
	ErrGatewayNotConfigured   = errors.New("payment gateway not configured")
	ErrGatewayPaymentDeclined = errors.New("gateway payment not approved")
)

// IPaymentUseCase appends payments to a job's ledger and derives the
// resulting payment and job status.
type IPaymentUseCase interface {
	ApplyPayment(ctx context.Context, jobID string, amount float64, date time.Time, method, notes string) (entities.Job, error)
	ChargeAndApply(ctx context.Context, jobID string, gatewayPayload json.RawMessage) (entities.Job, error)
}

// PaymentUseCase implements the payment ledger. A payment that fully covers
// the total escalates the job to completed, stamps the completion date once,
// and re-syncs all three aggregate indexes, because the completion newly
// qualifies the job for the service/technician rollups.
type PaymentUseCase struct {
	repo      interfaces.IJobRepository
	gateway   interfaces.IPaymentGateway
	inventory interfaces.IInventoryService
	runner    interfaces.ITaskRunner

	autoInventoryDebit bool
}

var _ IPaymentUseCase = (*PaymentUseCase)(nil)

func NewPaymentUseCase(
	repo interfaces.IJobRepository,
	gateway interfaces.IPaymentGateway,
	inventory interfaces.IInventoryService,
	runner interfaces.ITaskRunner,
	autoInventoryDebit bool,
) *PaymentUseCase {
	return &PaymentUseCase{
		repo:               repo,
		gateway:            gateway,
		inventory:          inventory,
		runner:             runner,
		autoInventoryDebit: autoInventoryDebit,
	}
}

func (u *PaymentUseCase) ApplyPayment(ctx context.Context, jobID string, amount float64, date time.Time, method, notes string) (entities.Job, error) {
	jobID = strings.TrimSpace(jobID)
	if jobID == "" {
		return entities.Job{}, ErrInvalidJobID
	}
	if amount <= 0 {
		return entities.Job{}, errors.Wrapf(ErrInvalidAmount, "amount %.2f", amount)
	}

	old, err := u.repo.GetByID(ctx, jobID)
	if err != nil {
		return entities.Job{}, err
	}
	if old.ID == "" {
		return entities.Job{}, ErrJobNotFound
	}

	now := time.Now().UTC()
	if date.IsZero() {
		date = now
	}

	job := old
	job.Payments = append(append([]entities.Payment(nil), old.Payments...), entities.Payment{
		Amount: amount,
		Date:   date.UTC(),
		Method: method,
		Notes:  notes,
	})
	job.PaymentReceived = sumPayments(job.Payments)
	job.PaymentStatus = derivePaymentStatus(job.PaymentReceived, job.TotalAmount)
	job.UpdatedAt = now

	if job.PaymentStatus == entities.PaymentStatusPaid && canTransition(old.Status, entities.JobStatusCompleted) && old.Status != entities.JobStatusCompleted {
		job.Status = entities.JobStatusCompleted
		if job.CompletionDate == nil {
			job.CompletionDate = &now
		}
	}

	firstCompletion := old.Status != entities.JobStatusCompleted && job.Status == entities.JobStatusCompleted &&
		!job.InventoryDebited && u.autoInventoryDebit
	if firstCompletion {
		job.InventoryDebited = true
	}

	delta, err := aggregate.Diff(&old, &job)
	if err != nil {
		return entities.Job{}, err
	}
	if err := u.repo.Commit(ctx, interfaces.JobTransaction{
		Put:          &job,
		IndexPuts:    delta.Puts,
		IndexDeletes: delta.Deletes,
	}); err != nil {
		return entities.Job{}, err
	}

	if firstCompletion && u.inventory != nil && u.runner != nil {
		u.runner.Go("inventory-debit", func(ctx context.Context) error {
			return u.inventory.DebitForJob(ctx, jobID)
		})
		log.Printf("[payment][usecase] inventory debit scheduled job_id=%s", jobID)
	}

	log.Printf("[payment][usecase] payment applied job_id=%s amount=%.2f received=%.2f status=%s", jobID, amount, job.PaymentReceived, job.PaymentStatus)
	return job, nil
}

// ChargeAndApply charges the job's outstanding balance through the external
// gateway and records the approved amount in the ledger. The charged amount
// always comes from the job in the database, never from the caller.
func (u *PaymentUseCase) ChargeAndApply(ctx context.Context, jobID string, gatewayPayload json.RawMessage) (entities.Job, error) {
	jobID = strings.TrimSpace(jobID)
	if jobID == "" {
		return entities.Job{}, ErrInvalidJobID
	}
	if u.gateway == nil {
		return entities.Job{}, ErrGatewayNotConfigured
	}

	job, err := u.repo.GetByID(ctx, jobID)
	if err != nil {
		return entities.Job{}, err
	}
	if job.ID == "" {
		return entities.Job{}, ErrJobNotFound
	}

	due := job.TotalAmount - job.PaymentReceived
	if due <= 0 {
		return entities.Job{}, ErrNoBalanceDue
	}

	payload := map[string]any{}
	if len(gatewayPayload) > 0 && json.Valid(gatewayPayload) {
		if err := json.Unmarshal(gatewayPayload, &payload); err != nil {
			payload = map[string]any{}
		}
	}
	if _, ok := payload["external_reference"]; !ok {
		payload["external_reference"] = jobID
	}
	if _, ok := payload["description"]; !ok {
		payload["description"] = fmt.Sprintf("Job %s", jobID)
	}
	payload["transaction_amount"] = due

	body, err := json.Marshal(payload)
	if err != nil {
		return entities.Job{}, err
	}

	log.Printf("[payment][usecase] charging gateway job_id=%s amount=%.2f", jobID, due)
	providerPaymentID, providerStatus, _, err := u.gateway.CreatePayment(ctx, body)
	if err != nil {
		log.Printf("[payment][usecase] gateway charge failed job_id=%s err=%v", jobID, err)
		return entities.Job{}, err
	}
	if providerStatus != "approved" {
		return entities.Job{}, errors.Wrapf(ErrGatewayPaymentDeclined, "provider status %q", providerStatus)
	}

	notes := fmt.Sprintf("gateway payment %s", providerPaymentID)
	return u.ApplyPayment(ctx, jobID, due, time.Now().UTC(), "card", notes)
}

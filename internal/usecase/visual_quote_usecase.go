package usecase

import (
	"context"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"slick_jobs/internal/domain/aggregate"
	"slick_jobs/internal/domain/entities"
	"slick_jobs/internal/domain/pricing"
	"slick_jobs/internal/retry"
	"slick_jobs/internal/usecase/interfaces"
)

var (
	ErrRateLimited   = errors.New("rate limited")
	ErrNoImages      = errors.New("no images supplied")
	ErrInvalidActor  = errors.New("invalid actor")
	ErrAnalysisEmpty = errors.New("analysis returned no suggestions")
)

// IVisualQuoteUseCase drives the AI-assisted quoting pipeline.
type IVisualQuoteUseCase interface {
	Initiate(ctx context.Context, actor entities.Actor, jobID string, imageStorageIDs []string) (entities.Job, error)
}

// VisualQuoteUseCase schedules the asynchronous image analysis. Initiation
// resets the job's items and marks the quote pending; the analysis task runs
// under a bounded-retry decorator and writes back through the repository with
// a staleness guard, so a job deleted or re-initiated in the interim turns the
// write-back into a no-op.
type VisualQuoteUseCase struct {
	repo     interfaces.IJobRepository
	catalog  interfaces.ICatalogStore
	analyzer interfaces.IImageAnalyzer
	runner   interfaces.ITaskRunner
	policy   retry.Policy

	// Per-actor token buckets gate the external analysis call.
	limit    rate.Limit
	burst    int
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
}

var _ IVisualQuoteUseCase = (*VisualQuoteUseCase)(nil)

func NewVisualQuoteUseCase(
	repo interfaces.IJobRepository,
	catalog interfaces.ICatalogStore,
	analyzer interfaces.IImageAnalyzer,
	runner interfaces.ITaskRunner,
	policy retry.Policy,
	perActorPerMinute int,
) *VisualQuoteUseCase {
	if perActorPerMinute <= 0 {
		perActorPerMinute = 10
	}
	return &VisualQuoteUseCase{
		repo:     repo,
		catalog:  catalog,
		analyzer: analyzer,
		runner:   runner,
		policy:   policy,
		limit:    rate.Limit(float64(perActorPerMinute) / 60.0),
		burst:    perActorPerMinute,
		limiters: make(map[string]*rate.Limiter),
	}
}

func (u *VisualQuoteUseCase) allow(actorID string) bool {
	u.mu.Lock()
	defer u.mu.Unlock()

	lim, ok := u.limiters[actorID]
	if !ok {
		lim = rate.NewLimiter(u.limit, u.burst)
		u.limiters[actorID] = lim
	}
	return lim.Allow()
}

func (u *VisualQuoteUseCase) Initiate(ctx context.Context, actor entities.Actor, jobID string, imageStorageIDs []string) (entities.Job, error) {
	jobID = strings.TrimSpace(jobID)
	if jobID == "" {
		return entities.Job{}, ErrInvalidJobID
	}
	if strings.TrimSpace(actor.ID) == "" {
		return entities.Job{}, ErrInvalidActor
	}
	if len(imageStorageIDs) == 0 {
		return entities.Job{}, ErrNoImages
	}

	if !u.allow(actor.ID) {
		log.Printf("[visualquote][usecase] rate limited actor_id=%s", actor.ID)
		return entities.Job{}, errors.WithHintf(ErrRateLimited, "capacity renews within %.0f seconds", 1/float64(u.limit))
	}

	old, err := u.repo.GetByID(ctx, jobID)
	if err != nil {
		return entities.Job{}, err
	}
	if old.ID == "" {
		return entities.Job{}, ErrJobNotFound
	}

	// The quote restarts pricing from scratch: items, discount and totals are
	// cleared until the analysis writes the suggested lines back.
	job := old
	job.JobItems = nil
	job.DiscountAmount = 0
	job.AppliedPromotionID = ""
	job.TotalAmount = 0
	job.PaymentStatus = derivePaymentStatus(job.PaymentReceived, job.TotalAmount)
	job.VisualQuoteStatus = entities.VisualQuoteStatusPending
	job.VisualQuoteStorageIDs = imageStorageIDs
	job.VisualQuoteGeneration++
	job.UpdatedAt = time.Now().UTC()

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

	generation := job.VisualQuoteGeneration
	u.runner.Go("visual-quote-analysis", func(ctx context.Context) error {
		return u.runAnalysis(ctx, jobID, generation, imageStorageIDs)
	})

	log.Printf("[visualquote][usecase] analysis scheduled job_id=%s generation=%d images=%d", jobID, generation, len(imageStorageIDs))
	return job, nil
}

// runAnalysis is the asynchronous task body. It retries the external analysis
// within the policy budget; the terminal outcome (complete or failed) is
// written back exactly once, guarded against stale snapshots.
func (u *VisualQuoteUseCase) runAnalysis(ctx context.Context, jobID string, generation int, imageStorageIDs []string) error {
	services, err := u.catalog.ListServices(ctx)
	if err != nil {
		return u.failQuote(ctx, jobID, generation, err)
	}
	upcharges, err := u.catalog.ListUpcharges(ctx)
	if err != nil {
		return u.failQuote(ctx, jobID, generation, err)
	}

	var result interfaces.AnalysisResult
	err = retry.Do(ctx, u.policy, func(ctx context.Context) error {
		r, analyzeErr := u.analyzer.Analyze(ctx, imageStorageIDs, services, upcharges)
		if analyzeErr != nil {
			return analyzeErr
		}
		result = r
		return nil
	})
	if err != nil {
		return u.failQuote(ctx, jobID, generation, err)
	}

	return u.completeQuote(ctx, jobID, generation, result, services, upcharges)
}

// staleOrMissing loads the job and reports whether the write-back should
// no-op: the job is gone, was re-initiated, or already left the pending state.
func (u *VisualQuoteUseCase) staleOrMissing(ctx context.Context, jobID string, generation int) (entities.Job, bool, error) {
	job, err := u.repo.GetByID(ctx, jobID)
	if err != nil {
		return entities.Job{}, false, err
	}
	if job.ID == "" || job.VisualQuoteGeneration != generation || job.VisualQuoteStatus != entities.VisualQuoteStatusPending {
		log.Printf("[visualquote][usecase] stale write-back skipped job_id=%s generation=%d", jobID, generation)
		return entities.Job{}, true, nil
	}
	return job, false, nil
}

func (u *VisualQuoteUseCase) completeQuote(
	ctx context.Context,
	jobID string,
	generation int,
	result interfaces.AnalysisResult,
	services []entities.Service,
	upcharges []entities.Upcharge,
) error {
	old, stale, err := u.staleOrMissing(ctx, jobID, generation)
	if err != nil || stale {
		return err
	}

	serviceCatalog := make(map[string]entities.Service, len(services))
	for _, s := range services {
		serviceCatalog[s.ID] = s
	}
	upchargeCatalog := make(map[string]entities.Upcharge, len(upcharges))
	for _, up := range upcharges {
		upchargeCatalog[up.ID] = up
	}

	// One item per suggested service at its base price; every suggested
	// upcharge lands on the first item. Unknown ids are dropped.
	var items []entities.JobItem
	for _, serviceID := range result.SuggestedServiceIDs {
		svc, ok := serviceCatalog[serviceID]
		if !ok {
			continue
		}
		item := entities.JobItem{
			ID:        uuid.NewString(),
			ServiceID: svc.ID,
			Quantity:  1,
			UnitPrice: svc.BasePrice,
		}
		if len(items) == 0 {
			for _, upID := range result.SuggestedUpchargeIDs {
				if _, ok := upchargeCatalog[upID]; ok {
					item.AddedUpchargeIDs = append(item.AddedUpchargeIDs, upID)
				}
			}
		}
		items = append(items, item)
	}
	if len(items) == 0 {
		return u.failQuote(ctx, jobID, generation, ErrAnalysisEmpty)
	}

	for i := range items {
		items[i].Total = pricing.ComputeItemTotal(items[i].UnitPrice, items[i].Quantity, nil, items[i].AddedUpchargeIDs, nil, upchargeCatalog)
	}

	job := old
	job.JobItems = items
	_, _, total := pricing.ComputeJobTotals(items, nil)
	job.TotalAmount = total
	job.PaymentStatus = derivePaymentStatus(job.PaymentReceived, job.TotalAmount)
	job.VisualQuoteStatus = entities.VisualQuoteStatusComplete
	job.UpdatedAt = time.Now().UTC()

	if err := u.commitQuote(ctx, &old, &job); err != nil {
		return err
	}
	log.Printf("[visualquote][usecase] quote complete job_id=%s items=%d total=%.2f", jobID, len(items), total)
	return nil
}

// failQuote records the terminal failure as job state; the initiating caller
// has already returned, so nothing is re-thrown.
func (u *VisualQuoteUseCase) failQuote(ctx context.Context, jobID string, generation int, cause error) error {
	log.Printf("[visualquote][usecase] analysis failed job_id=%s generation=%d err=%v", jobID, generation, cause)

	old, stale, err := u.staleOrMissing(ctx, jobID, generation)
	if err != nil || stale {
		return err
	}

	job := old
	job.VisualQuoteStatus = entities.VisualQuoteStatusFailed
	job.UpdatedAt = time.Now().UTC()

	return u.commitQuote(ctx, &old, &job)
}

func (u *VisualQuoteUseCase) commitQuote(ctx context.Context, old, job *entities.Job) error {
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

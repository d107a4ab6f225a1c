package interfaces

import (
	"context"

	"slick_jobs/internal/domain/entities"
)

// AnalysisResult is the structured output of the external image-analysis
// function: catalog ids it suggests for the photographed vehicle.
type AnalysisResult struct {
	SuggestedServiceIDs  []string `json:"suggested_service_ids"`
	SuggestedUpchargeIDs []string `json:"suggested_upcharge_ids"`
}

// IImageAnalyzer abstracts the external vision/LLM call. It is a black box:
// it either returns suggested catalog ids or fails.
type IImageAnalyzer interface {
	Analyze(ctx context.Context, imageStorageIDs []string, services []entities.Service, upcharges []entities.Upcharge) (AnalysisResult, error)
}

// IInventoryService is the external inventory collaborator. DebitForJob is
// triggered at most once per job completion; retries and failure handling
// are the collaborator's responsibility.
type IInventoryService interface {
	DebitForJob(ctx context.Context, jobID string) error
}

// ITaskRunner schedules fire-and-forget work outside the calling transaction.
type ITaskRunner interface {
	Go(name string, fn func(ctx context.Context) error)
}

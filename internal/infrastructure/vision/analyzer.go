// Package vision calls the external image-analysis service that proposes job
// line items from vehicle photos. The model call itself is a black box: it
// returns suggested catalog ids or fails.
package vision

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/cockroachdb/errors"

	"slick_jobs/internal/domain/entities"
	"slick_jobs/internal/usecase/interfaces"
)

var ErrMissingVisionAPIURL = errors.New("missing VISION_API_URL")

type Analyzer struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	mockMode   bool
}

var _ interfaces.IImageAnalyzer = (*Analyzer)(nil)

// NewAnalyzer reads VISION_API_URL and VISION_API_KEY from the environment.
// VISION_API_MOCK enables a local mode that suggests the first catalog
// entries without any network call.
func NewAnalyzer() (*Analyzer, error) {
	if isVisionMockEnabled() {
		log.Printf("[vision][analyzer] mock mode enabled")
		return &Analyzer{mockMode: true}, nil
	}

	baseURL := strings.TrimSpace(os.Getenv("VISION_API_URL"))
	if baseURL == "" {
		log.Printf("[vision][analyzer] missing VISION_API_URL")
		return nil, ErrMissingVisionAPIURL
	}

	return &Analyzer{
		httpClient: &http.Client{Timeout: 60 * time.Second},
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     strings.TrimSpace(os.Getenv("VISION_API_KEY")),
	}, nil
}

type analyzeRequest struct {
	ImageStorageIDs []string            `json:"image_storage_ids"`
	Services        []entities.Service  `json:"services"`
	Upcharges       []entities.Upcharge `json:"upcharges"`
}

func (a *Analyzer) Analyze(ctx context.Context, imageStorageIDs []string, services []entities.Service, upcharges []entities.Upcharge) (interfaces.AnalysisResult, error) {
	if a.mockMode {
		return a.mockAnalyze(imageStorageIDs, services, upcharges)
	}

	body, err := json.Marshal(analyzeRequest{
		ImageStorageIDs: imageStorageIDs,
		Services:        services,
		Upcharges:       upcharges,
	})
	if err != nil {
		return interfaces.AnalysisResult{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.baseURL+"/v1/analyze", bytes.NewReader(body))
	if err != nil {
		return interfaces.AnalysisResult{}, err
	}
	req.Header.Set("Content-Type", "application/json")
	if a.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+a.apiKey)
	}

	log.Printf("[vision][analyzer] analyze start images=%d services=%d", len(imageStorageIDs), len(services))
	resp, err := a.httpClient.Do(req)
	if err != nil {
		return interfaces.AnalysisResult{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return interfaces.AnalysisResult{}, errors.Newf("vision api status %d", resp.StatusCode)
	}

	var result interfaces.AnalysisResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return interfaces.AnalysisResult{}, errors.Wrap(err, "decoding analysis response")
	}
	log.Printf("[vision][analyzer] analyze success services=%d upcharges=%d", len(result.SuggestedServiceIDs), len(result.SuggestedUpchargeIDs))
	return result, nil
}

func (a *Analyzer) mockAnalyze(imageStorageIDs []string, services []entities.Service, upcharges []entities.Upcharge) (interfaces.AnalysisResult, error) {
	if len(services) == 0 {
		return interfaces.AnalysisResult{}, fmt.Errorf("mock analyzer has no services to suggest")
	}

	// Deterministic suggestion: one service per image (capped by the
	// catalog), first upcharge attached.
	result := interfaces.AnalysisResult{}
	for i := 0; i < len(imageStorageIDs) && i < len(services); i++ {
		result.SuggestedServiceIDs = append(result.SuggestedServiceIDs, services[i].ID)
	}
	if len(upcharges) > 0 {
		result.SuggestedUpchargeIDs = []string{upcharges[0].ID}
	}
	log.Printf("[vision][analyzer] mock analyze images=%d suggested=%d", len(imageStorageIDs), len(result.SuggestedServiceIDs))
	return result, nil
}

func isVisionMockEnabled() bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv("VISION_API_MOCK")))
	switch v {
	case "1", "true", "yes", "on", "mock":
		return true
	}
	return false
}

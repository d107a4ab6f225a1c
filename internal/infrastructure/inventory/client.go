// Package inventory triggers the external inventory collaborator's debit for
// a completed job. The trigger is at-most-once per completion; retries and
// reconciliation are the collaborator's responsibility.
package inventory

import (
	"bytes"
	"context"
	"encoding/json"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/cockroachdb/errors"

	"slick_jobs/internal/usecase/interfaces"
)

var ErrMissingInventoryURL = errors.New("missing INVENTORY_SERVICE_URL")

type Client struct {
	httpClient *http.Client
	baseURL    string
	mockMode   bool
}

var _ interfaces.IInventoryService = (*Client)(nil)

// NewClient reads INVENTORY_SERVICE_URL from the environment.
// INVENTORY_MOCK makes DebitForJob a logged no-op for local runs.
func NewClient() (*Client, error) {
	if isInventoryMockEnabled() {
		log.Printf("[inventory][client] mock mode enabled")
		return &Client{mockMode: true}, nil
	}

	baseURL := strings.TrimSpace(os.Getenv("INVENTORY_SERVICE_URL"))
	if baseURL == "" {
		log.Printf("[inventory][client] missing INVENTORY_SERVICE_URL")
		return nil, ErrMissingInventoryURL
	}

	return &Client{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		baseURL:    strings.TrimRight(baseURL, "/"),
	}, nil
}

func (c *Client) DebitForJob(ctx context.Context, jobID string) error {
	if c.mockMode {
		log.Printf("[inventory][client] mock debit job_id=%s", jobID)
		return nil
	}

	body, err := json.Marshal(map[string]string{"job_id": jobID})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/debits", bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return errors.Newf("inventory service status %d", resp.StatusCode)
	}
	log.Printf("[inventory][client] debit triggered job_id=%s", jobID)
	return nil
}

func isInventoryMockEnabled() bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv("INVENTORY_MOCK")))
	switch v {
	case "1", "true", "yes", "on", "mock":
		return true
	}
	return false
}

package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"slick_jobs/internal/adapter/http/handlers/mocks"
	"slick_jobs/internal/domain/entities"
	"slick_jobs/internal/usecase"

	"github.com/cockroachdb/errors"
	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestVisualQuoteHandler_InitiateVisualQuote(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing images", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIVisualQuoteUseCase(ctrl)
		h := NewVisualQuoteHandler(uc)

		r := gin.New()
		r.POST("/v1/jobs/:id/visual-quote", h.InitiateVisualQuote)

		req := httptest.NewRequest(http.MethodPost, "/v1/jobs/job-1/visual-quote", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("rate limited maps to 429 with renewal hint", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIVisualQuoteUseCase(ctrl)
		h := NewVisualQuoteHandler(uc)

		r := gin.New()
		r.POST("/v1/jobs/:id/visual-quote", h.InitiateVisualQuote)

		uc.EXPECT().Initiate(gomock.Any(), gomock.Any(), "job-1", []string{"img-1"}).
			Return(entities.Job{}, errors.WithHintf(usecase.ErrRateLimited, "capacity renews within %.0f seconds", 6.0))

		req := httptest.NewRequest(http.MethodPost, "/v1/jobs/job-1/visual-quote", bytes.NewBufferString(`{"image_storage_ids":["img-1"]}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-Actor-ID", "adm-1")
		req.Header.Set("X-Actor-Role", "admin")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusTooManyRequests {
			t.Fatalf("expected 429, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		msg, _ := body["message"].(string)
		if !strings.Contains(msg, "capacity renews") {
			t.Fatalf("expected renewal hint in message, got %q", msg)
		}
	})

	t.Run("accepted returns the pending job", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIVisualQuoteUseCase(ctrl)
		h := NewVisualQuoteHandler(uc)

		r := gin.New()
		r.POST("/v1/jobs/:id/visual-quote", h.InitiateVisualQuote)

		wantActor := entities.Actor{ID: "adm-1", Role: entities.RoleAdmin}
		uc.EXPECT().Initiate(gomock.Any(), wantActor, "job-1", []string{"img-1", "img-2"}).
			Return(entities.Job{ID: "job-1", VisualQuoteStatus: entities.VisualQuoteStatusPending}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/jobs/job-1/visual-quote", bytes.NewBufferString(`{"image_storage_ids":["img-1","img-2"]}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-Actor-ID", "adm-1")
		req.Header.Set("X-Actor-Role", "admin")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusAccepted {
			t.Fatalf("expected 202, got %d body=%s", w.Code, w.Body.String())
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		if body["visual_quote_status"] != "pending" {
			t.Fatalf("expected pending status, got %v", body["visual_quote_status"])
		}
	})
}

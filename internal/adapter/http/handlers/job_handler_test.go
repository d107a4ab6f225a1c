package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"slick_jobs/internal/adapter/http/handlers/mocks"
	"slick_jobs/internal/domain/entities"
	"slick_jobs/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestJobHandler_CreateJob(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIJobUseCase(ctrl)
		h := NewJobHandler(uc)

		r := gin.New()
		r.POST("/v1/jobs", h.CreateJob)

		req := httptest.NewRequest(http.MethodPost, "/v1/jobs", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing required fields", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIJobUseCase(ctrl)
		h := NewJobHandler(uc)

		r := gin.New()
		r.POST("/v1/jobs", h.CreateJob)

		req := httptest.NewRequest(http.MethodPost, "/v1/jobs", bytes.NewBufferString(`{"customer_id":"cust-1"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("actor headers reach the usecase", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIJobUseCase(ctrl)
		h := NewJobHandler(uc)

		r := gin.New()
		r.POST("/v1/jobs", h.CreateJob)

		wantActor := entities.Actor{ID: "tech-1", Role: entities.RoleTechnician}
		uc.EXPECT().CreateDraft(gomock.Any(), wantActor, "cust-1", "veh-1").
			Return(entities.Job{ID: "job-1", Status: entities.JobStatusEstimate}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/jobs", bytes.NewBufferString(`{"customer_id":"cust-1","vehicle_id":"veh-1"}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-Actor-ID", "tech-1")
		req.Header.Set("X-Actor-Role", "technician")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d body=%s", w.Code, w.Body.String())
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		if body["id"] != "job-1" {
			t.Fatalf("expected job id in body, got %v", body["id"])
		}
	})
}

func TestJobHandler_Transitions(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid transition maps to 409", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIJobUseCase(ctrl)
		h := NewJobHandler(uc)

		r := gin.New()
		r.PATCH("/v1/jobs/:id/work-order", h.ConvertToWorkOrder)

		uc.EXPECT().ConvertToWorkOrder(gomock.Any(), "job-1").Return(entities.Job{}, usecase.ErrInvalidTransition)

		req := httptest.NewRequest(http.MethodPatch, "/v1/jobs/job-1/work-order", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("missing job maps to 404", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIJobUseCase(ctrl)
		h := NewJobHandler(uc)

		r := gin.New()
		r.PATCH("/v1/jobs/:id/invoice", h.GenerateInvoice)

		uc.EXPECT().GenerateInvoice(gomock.Any(), "gone").Return(entities.Job{}, usecase.ErrJobNotFound)

		req := httptest.NewRequest(http.MethodPatch, "/v1/jobs/gone/invoice", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("successful transition returns job", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIJobUseCase(ctrl)
		h := NewJobHandler(uc)

		r := gin.New()
		r.PATCH("/v1/jobs/:id/work-order", h.ConvertToWorkOrder)

		uc.EXPECT().ConvertToWorkOrder(gomock.Any(), "job-1").
			Return(entities.Job{ID: "job-1", Status: entities.JobStatusWorkOrder}, nil)

		req := httptest.NewRequest(http.MethodPatch, "/v1/jobs/job-1/work-order", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		if body["status"] != "workOrder" {
			t.Fatalf("expected workOrder, got %v", body["status"])
		}
	})
}

func TestJobHandler_GetAndDelete(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("public link read", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIJobUseCase(ctrl)
		h := NewJobHandler(uc)

		r := gin.New()
		r.GET("/v1/jobs/public/:key", h.GetJobByPublicKey)

		uc.EXPECT().GetByPublicKey(gomock.Any(), "pub-key-1").
			Return(entities.Job{ID: "job-1", PublicLinkKey: "pub-key-1"}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/jobs/public/pub-key-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("delete returns no content", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIJobUseCase(ctrl)
		h := NewJobHandler(uc)

		r := gin.New()
		r.DELETE("/v1/jobs/:id", h.DeleteJob)

		uc.EXPECT().Remove(gomock.Any(), "job-1").Return(nil)

		req := httptest.NewRequest(http.MethodDelete, "/v1/jobs/job-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
	})
}

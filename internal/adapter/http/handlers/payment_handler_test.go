package handlers

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"slick_jobs/internal/adapter/http/handlers/mocks"
	"slick_jobs/internal/domain/entities"
	"slick_jobs/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestPaymentHandler_CreatePayment(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("non positive amount", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc)

		r := gin.New()
		r.POST("/v1/jobs/:id/payments", h.CreatePayment)

		req := httptest.NewRequest(http.MethodPost, "/v1/jobs/job-1/payments", bytes.NewBufferString(`{"amount":0,"method":"cash"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("payment recorded", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc)

		r := gin.New()
		r.POST("/v1/jobs/:id/payments", h.CreatePayment)

		uc.EXPECT().ApplyPayment(gomock.Any(), "job-1", 40.0, gomock.Any(), "cash", "first installment").
			Return(entities.Job{ID: "job-1", PaymentStatus: entities.PaymentStatusPartial, PaymentReceived: 40}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/jobs/job-1/payments", bytes.NewBufferString(`{"amount":40,"method":"cash","notes":"first installment"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d body=%s", w.Code, w.Body.String())
		}
	})

	t.Run("missing job maps to 404", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc)

		r := gin.New()
		r.POST("/v1/jobs/:id/payments", h.CreatePayment)

		uc.EXPECT().ApplyPayment(gomock.Any(), "gone", 40.0, gomock.Any(), "cash", "").
			Return(entities.Job{}, usecase.ErrJobNotFound)

		req := httptest.NewRequest(http.MethodPost, "/v1/jobs/gone/payments", bytes.NewBufferString(`{"amount":40,"method":"cash"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestPaymentHandler_CreateGatewayPayment(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("declined charge maps to 422", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc)

		r := gin.New()
		r.POST("/v1/jobs/:id/payments/gateway", h.CreateGatewayPayment)

		uc.EXPECT().ChargeAndApply(gomock.Any(), "job-1", gomock.Any()).
			Return(entities.Job{}, usecase.ErrGatewayPaymentDeclined)

		req := httptest.NewRequest(http.MethodPost, "/v1/jobs/job-1/payments/gateway", bytes.NewBufferString(`{"payload":{"token":"tok"}}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
	})

	t.Run("no balance due maps to 409", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc)

		r := gin.New()
		r.POST("/v1/jobs/:id/payments/gateway", h.CreateGatewayPayment)

		uc.EXPECT().ChargeAndApply(gomock.Any(), "job-1", gomock.Any()).
			Return(entities.Job{}, usecase.ErrNoBalanceDue)

		req := httptest.NewRequest(http.MethodPost, "/v1/jobs/job-1/payments/gateway", bytes.NewBufferString(`{"payload":{}}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("approved charge returns the paid job", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc)

		r := gin.New()
		r.POST("/v1/jobs/:id/payments/gateway", h.CreateGatewayPayment)

		uc.EXPECT().ChargeAndApply(gomock.Any(), "job-1", gomock.Any()).
			Return(entities.Job{ID: "job-1", Status: entities.JobStatusCompleted, PaymentStatus: entities.PaymentStatusPaid}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/jobs/job-1/payments/gateway", bytes.NewBufferString(`{"payload":{"token":"tok"}}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

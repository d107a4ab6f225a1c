package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"slick_jobs/internal/adapter/http/handlers/mocks"
	"slick_jobs/internal/domain/entities"
	"slick_jobs/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestReportHandler_GetReports(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("malformed start date", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIReportUseCase(ctrl)
		h := NewReportHandler(uc)

		r := gin.New()
		r.GET("/v1/reports", h.GetReports)

		req := httptest.NewRequest(http.MethodGet, "/v1/reports?start=yesterday", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("inverted range maps to 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIReportUseCase(ctrl)
		h := NewReportHandler(uc)

		r := gin.New()
		r.GET("/v1/reports", h.GetReports)

		uc.EXPECT().GetReportsData(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), "").
			Return(entities.ReportsData{}, usecase.ErrInvalidRange)

		req := httptest.NewRequest(http.MethodGet, "/v1/reports?start=2026-08-31&end=2026-08-01", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("parses dates and forwards the technician filter", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIReportUseCase(ctrl)
		h := NewReportHandler(uc)

		r := gin.New()
		r.GET("/v1/reports", h.GetReports)

		wantStart := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
		wantEnd := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)
		uc.EXPECT().GetReportsData(gomock.Any(), gomock.Any(), wantStart, wantEnd, "tech-1").
			Return(entities.ReportsData{
				Revenue: []entities.RevenuePoint{{Day: wantStart, Revenue: 420, CompletedJobs: 2}},
			}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/reports?start=2026-08-01&end=2026-08-31&technician_id=tech-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d body=%s", w.Code, w.Body.String())
		}
		var body struct {
			Revenue []map[string]any `json:"revenue"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		if len(body.Revenue) != 1 || body.Revenue[0]["revenue"] != 420.0 {
			t.Fatalf("unexpected revenue payload: %+v", body.Revenue)
		}
	})
}

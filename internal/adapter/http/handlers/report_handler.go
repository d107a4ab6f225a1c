package handlers

import (
	"errors"
	"net/http"
	response "slick_jobs/internal/adapter/http/dto/response"
	"slick_jobs/internal/usecase"
	"slick_jobs/pkg"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

// ReportHandler serves the reporting dashboard queries.

type ReportHandler struct {
	usecase usecase.IReportUseCase
}

func NewReportHandler(uc usecase.IReportUseCase) *ReportHandler {
	return &ReportHandler{usecase: uc}
}

// GetReports returns revenue over time, service performance and the
// technician leaderboard for a date range. Dates accept RFC 3339 or
// YYYY-MM-DD; an omitted range defaults to the last 30 days.
func (h *ReportHandler) GetReports(c *gin.Context) {
	now := time.Now().UTC()
	start, err := parseReportTime(c.Query("start"), now.AddDate(0, 0, -30))
	if err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid start date", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	end, err := parseReportTime(c.Query("end"), now)
	if err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid end date", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	actor := actorFromHeaders(c)
	data, err := h.usecase.GetReportsData(c.Request.Context(), actor, start, end, c.Query("technician_id"))
	if err != nil {
		appErr := mapReportError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromReportsData(data))
}

func parseReportTime(raw string, fallback time.Time) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return fallback, nil
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t.UTC(), nil
	}
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return time.Time{}, err
	}
	return t.UTC(), nil
}

func mapReportError(err error) *pkg.DomainError {
	switch {
	case errors.Is(err, usecase.ErrInvalidRange):
		return pkg.NewDomainErrorSimple("INVALID_RANGE", "End date precedes start date", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

package handlers

import (
	"log"
	"net/http"
	request "slick_jobs/internal/adapter/http/dto/request"
	response "slick_jobs/internal/adapter/http/dto/response"
	"slick_jobs/internal/usecase"
	"slick_jobs/pkg"

	"github.com/cockroachdb/errors"
	"github.com/gin-gonic/gin"
)

// VisualQuoteHandler handles HTTP requests for the AI-assisted quote pipeline.

type VisualQuoteHandler struct {
	usecase usecase.IVisualQuoteUseCase
}

func NewVisualQuoteHandler(uc usecase.IVisualQuoteUseCase) *VisualQuoteHandler {
	return &VisualQuoteHandler{usecase: uc}
}

// InitiateVisualQuote resets the job's line items and schedules the image
// analysis. The response is the pending job; clients poll the job for the
// completed quote.
func (h *VisualQuoteHandler) InitiateVisualQuote(c *gin.Context) {
	jobID := c.Param("id")
	log.Printf("[visual-quote][handler] initiate start job_id=%s", jobID)

	var payload request.VisualQuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	actor := actorFromHeaders(c)
	job, err := h.usecase.Initiate(c.Request.Context(), actor, jobID, payload.ImageStorageIDs)
	if err != nil {
		log.Printf("[visual-quote][handler] initiate failed job_id=%s actor_id=%s err=%v", jobID, actor.ID, err)
		appErr := mapVisualQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[visual-quote][handler] initiate accepted job_id=%s generation=%d", job.ID, job.VisualQuoteGeneration)

	c.JSON(http.StatusAccepted, response.FromJob(job))
}

func mapVisualQuoteError(err error) *pkg.DomainError {
	switch {
	case errors.Is(err, usecase.ErrRateLimited):
		message := "Analysis rate limit reached"
		if hint := errors.FlattenHints(err); hint != "" {
			message = message + "; " + hint
		}
		return pkg.NewDomainErrorSimple("RATE_LIMITED", message, http.StatusTooManyRequests)
	case errors.Is(err, usecase.ErrNoImages), errors.Is(err, usecase.ErrInvalidActor), errors.Is(err, usecase.ErrInvalidJobID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidTransition):
		return pkg.NewDomainErrorSimple("INVALID_TRANSITION", "Status transition not allowed", http.StatusConflict)
	case errors.Is(err, usecase.ErrJobNotFound):
		return pkg.NewDomainErrorSimple("JOB_NOT_FOUND", "Job not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"
	request "slick_jobs/internal/adapter/http/dto/request"
	response "slick_jobs/internal/adapter/http/dto/response"
	"slick_jobs/internal/domain/entities"
	"slick_jobs/internal/usecase"
	"slick_jobs/pkg"
	"strings"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidJobPayload = pkg.NewDomainErrorSimple("INVALID_JOB_INPUT", "Invalid job payload", http.StatusBadRequest)
)

// actorFromHeaders resolves the authenticated caller from the headers set by
// the identity gateway in front of this service. Unknown roles fall back to
// technician, the least privileged role.
func actorFromHeaders(c *gin.Context) entities.Actor {
	role := entities.ActorRole(strings.TrimSpace(c.GetHeader("X-Actor-Role")))
	if role != entities.RoleAdmin {
		role = entities.RoleTechnician
	}
	return entities.Actor{
		ID:   strings.TrimSpace(c.GetHeader("X-Actor-ID")),
		Role: role,
	}
}

// JobHandler handles HTTP requests for the job lifecycle.

type JobHandler struct {
	usecase usecase.IJobUseCase
}

func NewJobHandler(uc usecase.IJobUseCase) *JobHandler {
	return &JobHandler{usecase: uc}
}

// CreateJob creates a new draft estimate for a customer vehicle.
func (h *JobHandler) CreateJob(c *gin.Context) {
	var payload request.CreateJobRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidJobPayload.HTTPStatus, errInvalidJobPayload.ToHTTPError())
		return
	}

	actor := actorFromHeaders(c)
	job, err := h.usecase.CreateDraft(c.Request.Context(), actor, payload.CustomerID, payload.VehicleID)
	if err != nil {
		log.Printf("[job][handler] create failed customer_id=%s err=%v", payload.CustomerID, err)
		appErr := mapJobError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[job][handler] create success job_id=%s", job.ID)

	c.JSON(http.StatusCreated, response.FromJob(job))
}

// SaveJob replaces the caller-editable state of a job and reprices it.
func (h *JobHandler) SaveJob(c *gin.Context) {
	id := c.Param("id")
	var payload request.JobSaveRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidJobPayload.HTTPStatus, errInvalidJobPayload.ToHTTPError())
		return
	}

	actor := actorFromHeaders(c)
	job, err := h.usecase.Save(c.Request.Context(), actor, payload.ToInput(id))
	if err != nil {
		log.Printf("[job][handler] save failed job_id=%s err=%v", id, err)
		appErr := mapJobError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromJob(job))
}

func (h *JobHandler) GetJob(c *gin.Context) {
	id := c.Param("id")
	job, err := h.usecase.GetByID(c.Request.Context(), id)
	if err != nil {
		appErr := mapJobError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromJob(job))
}

// GetJobByPublicKey serves the unauthenticated customer-facing view.
func (h *JobHandler) GetJobByPublicKey(c *gin.Context) {
	key := c.Param("key")
	job, err := h.usecase.GetByPublicKey(c.Request.Context(), key)
	if err != nil {
		appErr := mapJobError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromJob(job))
}

func (h *JobHandler) DeleteJob(c *gin.Context) {
	id := c.Param("id")
	if err := h.usecase.Remove(c.Request.Context(), id); err != nil {
		log.Printf("[job][handler] delete failed job_id=%s err=%v", id, err)
		appErr := mapJobError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[job][handler] delete success job_id=%s", id)

	c.Status(http.StatusNoContent)
}

func (h *JobHandler) ConvertToWorkOrder(c *gin.Context) {
	h.patchJobStatus(c, h.usecase.ConvertToWorkOrder)
}

func (h *JobHandler) GenerateInvoice(c *gin.Context) {
	h.patchJobStatus(c, h.usecase.GenerateInvoice)
}

func (h *JobHandler) patchJobStatus(c *gin.Context, updater func(ctx context.Context, id string) (entities.Job, error)) {
	id := c.Param("id")
	job, err := updater(c.Request.Context(), id)
	if err != nil {
		log.Printf("[job][handler] status patch failed job_id=%s err=%v", id, err)
		appErr := mapJobError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[job][handler] status patch success job_id=%s status=%s", job.ID, job.Status)

	c.JSON(http.StatusOK, response.FromJob(job))
}

// ApproveJob records the customer's signature on an estimate.
func (h *JobHandler) ApproveJob(c *gin.Context) {
	id := c.Param("id")
	var payload request.ApproveJobRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidJobPayload.HTTPStatus, errInvalidJobPayload.ToHTTPError())
		return
	}

	job, err := h.usecase.Approve(c.Request.Context(), id, payload.SignatureStorageID)
	if err != nil {
		appErr := mapJobError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromJob(job))
}

func (h *JobHandler) AddPhoto(c *gin.Context) {
	id := c.Param("id")
	var payload request.AddPhotoRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidJobPayload.HTTPStatus, errInvalidJobPayload.ToHTTPError())
		return
	}

	job, err := h.usecase.AddPhoto(c.Request.Context(), id, payload.StorageID)
	if err != nil {
		appErr := mapJobError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromJob(job))
}

func (h *JobHandler) UpdateChecklist(c *gin.Context) {
	id := c.Param("id")
	var payload request.ChecklistProgressRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidJobPayload.HTTPStatus, errInvalidJobPayload.ToHTTPError())
		return
	}

	job, err := h.usecase.UpdateChecklistProgress(c.Request.Context(), id, payload.ItemID, payload.CompletedTaskIDs)
	if err != nil {
		appErr := mapJobError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromJob(job))
}

func mapJobError(err error) *pkg.DomainError {
	switch {
	case errors.Is(err, usecase.ErrInvalidJobID),
		errors.Is(err, usecase.ErrInvalidCustomerID),
		errors.Is(err, usecase.ErrInvalidVehicleID),
		errors.Is(err, usecase.ErrInvalidStatus),
		errors.Is(err, usecase.ErrInvalidSignature):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidTransition):
		return pkg.NewDomainErrorSimple("INVALID_TRANSITION", "Status transition not allowed", http.StatusConflict)
	case errors.Is(err, usecase.ErrJobNotFound):
		return pkg.NewDomainErrorSimple("JOB_NOT_FOUND", "Job not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

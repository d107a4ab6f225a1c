package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"os"
	request "slick_jobs/internal/adapter/http/dto/request"
	response "slick_jobs/internal/adapter/http/dto/response"
	"slick_jobs/internal/usecase"
	"slick_jobs/pkg"
	"strings"

	"github.com/gin-gonic/gin"
)

// PaymentHandler handles HTTP requests for a job's payment ledger.

type PaymentHandler struct {
	usecase usecase.IPaymentUseCase
}

func NewPaymentHandler(uc usecase.IPaymentUseCase) *PaymentHandler {
	return &PaymentHandler{usecase: uc}
}

// CreatePayment records a manual payment on a job.
func (h *PaymentHandler) CreatePayment(c *gin.Context) {
	jobID := c.Param("id")
	log.Printf("[payment][handler] create start job_id=%s", jobID)

	var payload request.PaymentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	amount, err := payload.ResolveAmount()
	if err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_PAYMENT_AMOUNT", "Payment amount must be positive", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	job, err := h.usecase.ApplyPayment(c.Request.Context(), jobID, amount, payload.ResolveDate(), payload.Method, payload.Notes)
	if err != nil {
		log.Printf("[payment][handler] create failed job_id=%s err=%v", jobID, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[payment][handler] create success job_id=%s payment_status=%s job_status=%s", job.ID, job.PaymentStatus, job.Status)

	c.JSON(http.StatusOK, response.FromJob(job))
}

// CreateGatewayPayment charges the outstanding balance through the card
// gateway and records the approved charge on the ledger.
func (h *PaymentHandler) CreateGatewayPayment(c *gin.Context) {
	jobID := c.Param("id")
	log.Printf("[payment][handler] gateway-create start job_id=%s", jobID)
	mockMode := isPaymentGatewayMockEnabled()

	gatewayPayload, err := readGatewayPayload(c)
	if err != nil {
		if mockMode {
			log.Printf("[payment][handler] payload invalid in mock mode; fallback to empty payload job_id=%s err=%v", jobID, err)
			gatewayPayload = json.RawMessage("{}")
		} else {
			log.Printf("[payment][handler] invalid payload job_id=%s err=%v", jobID, err)
			appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
	}

	job, err := h.usecase.ChargeAndApply(c.Request.Context(), jobID, gatewayPayload)
	if err != nil {
		log.Printf("[payment][handler] gateway-create failed job_id=%s err=%v", jobID, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[payment][handler] gateway-create success job_id=%s payment_status=%s", job.ID, job.PaymentStatus)

	c.JSON(http.StatusOK, response.FromJob(job))
}

func readGatewayPayload(c *gin.Context) (json.RawMessage, error) {
	var payload request.GatewayPaymentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		return nil, err
	}
	if len(payload.Payload) == 0 {
		return json.RawMessage("{}"), nil
	}
	return payload.Payload, nil
}

func isPaymentGatewayMockEnabled() bool {
	return strings.EqualFold(strings.TrimSpace(os.Getenv("PAYMENT_GATEWAY_MOCK")), "true")
}

func mapPaymentError(err error) *pkg.DomainError {
	switch {
	case errors.Is(err, usecase.ErrInvalidAmount):
		return pkg.NewDomainErrorSimple("INVALID_PAYMENT_AMOUNT", "Payment amount must be positive", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrNoBalanceDue):
		return pkg.NewDomainErrorSimple("NO_BALANCE_DUE", "Job has no outstanding balance", http.StatusConflict)
	case errors.Is(err, usecase.ErrGatewayNotConfigured):
		return pkg.NewDomainErrorSimple("GATEWAY_NOT_CONFIGURED", "Payment gateway not configured", http.StatusServiceUnavailable)
	case errors.Is(err, usecase.ErrGatewayPaymentDeclined):
		return pkg.NewDomainErrorSimple("PAYMENT_DECLINED", "Payment was not approved by the gateway", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrJobNotFound):
		return pkg.NewDomainErrorSimple("JOB_NOT_FOUND", "Job not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

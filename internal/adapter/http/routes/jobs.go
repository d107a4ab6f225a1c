package routes

import (
	"slick_jobs/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathJobs    = "/jobs"
	PathReports = "/reports"
)

func addJobRoutes(
	rg *gin.RouterGroup,
	jobHandler *handlers.JobHandler,
	paymentHandler *handlers.PaymentHandler,
	visualQuoteHandler *handlers.VisualQuoteHandler,
) {
	jobs := rg.Group(PathJobs)
	{
		jobs.POST("", jobHandler.CreateJob)

		// Customer-facing read; no auth headers required.
		jobs.GET("/public/:key", jobHandler.GetJobByPublicKey)

		jobs.GET("/:id", jobHandler.GetJob)
		jobs.PUT("/:id", jobHandler.SaveJob)
		jobs.DELETE("/:id", jobHandler.DeleteJob)

		jobs.PATCH("/:id/work-order", jobHandler.ConvertToWorkOrder)
		jobs.PATCH("/:id/invoice", jobHandler.GenerateInvoice)
		jobs.PATCH("/:id/approve", jobHandler.ApproveJob)
		jobs.PATCH("/:id/photos", jobHandler.AddPhoto)
		jobs.PATCH("/:id/checklist", jobHandler.UpdateChecklist)

		jobs.POST("/:id/payments", paymentHandler.CreatePayment)
		jobs.POST("/:id/payments/gateway", paymentHandler.CreateGatewayPayment)

		jobs.POST("/:id/visual-quote", visualQuoteHandler.InitiateVisualQuote)
	}
}

func addReportRoutes(rg *gin.RouterGroup, reportHandler *handlers.ReportHandler) {
	rg.GET(PathReports, reportHandler.GetReports)
}

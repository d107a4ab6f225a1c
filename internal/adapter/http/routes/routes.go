package routes

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	_ "slick_jobs/docs" // This will be auto-generated
	"slick_jobs/internal/adapter/http/handlers"
	"slick_jobs/internal/adapter/persistence/badgerstore"
	"slick_jobs/internal/adapter/persistence/catalogmem"
	repository2 "slick_jobs/internal/adapter/persistence/repository"
	"slick_jobs/internal/infrastructure/database"
	"slick_jobs/internal/infrastructure/inventory"
	"slick_jobs/internal/infrastructure/payments"
	"slick_jobs/internal/infrastructure/vision"
	"slick_jobs/internal/retry"
	"slick_jobs/internal/tasks"
	"slick_jobs/internal/usecase"
	"slick_jobs/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	store := connectJobStore()
	catalog := catalogmem.NewSeeded()
	runner := tasks.NewRunner(2 * time.Minute)

	var inventoryService interfaces.IInventoryService
	inventoryClient, err := inventory.NewClient()
	if err != nil {
		log.Printf("Inventory service not configured: %v", err)
	} else {
		inventoryService = inventoryClient
	}

	var analyzer interfaces.IImageAnalyzer
	visionAnalyzer, err := vision.NewAnalyzer()
	if err != nil {
		log.Printf("Vision analyzer not configured: %v", err)
	} else {
		analyzer = visionAnalyzer
	}

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
	} else {
		paymentGateway = mpGateway
	}

	autoDebit := strings.EqualFold(os.Getenv("AUTO_INVENTORY_DEBIT"), "true")

	jobUseCase := usecase.NewJobUseCase(store, catalog, inventoryService, runner, autoDebit)
	paymentUseCase := usecase.NewPaymentUseCase(store, paymentGateway, inventoryService, runner, autoDebit)
	visualQuoteUseCase := usecase.NewVisualQuoteUseCase(store, catalog, analyzer, runner, retry.DefaultPolicy(), analysisRatePerMinute())
	reportUseCase := usecase.NewReportUseCase(store, catalog, catalog)

	jobHandler := handlers.NewJobHandler(jobUseCase)
	paymentHandler := handlers.NewPaymentHandler(paymentUseCase)
	visualQuoteHandler := handlers.NewVisualQuoteHandler(visualQuoteUseCase)
	reportHandler := handlers.NewReportHandler(reportUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addJobRoutes(v1, jobHandler, paymentHandler, visualQuoteHandler)
	addReportRoutes(v1, reportHandler)
}

// jobStore is the persistence surface the use cases need; both backends
// implement it.
type jobStore interface {
	interfaces.IJobRepository
	interfaces.IAggregateIndex
}

// connectJobStore picks the persistence backend. BADGER_PATH selects the
// embedded store, which is the zero-infrastructure option for local runs;
// otherwise jobs live in DynamoDB.
func connectJobStore() jobStore {
	if path := strings.TrimSpace(os.Getenv("BADGER_PATH")); path != "" {
		store, err := badgerstore.Open(path)
		if err != nil {
			log.Fatalf("failed to open badger store at %s: %v", path, err)
		}
		log.Printf("[routes] using badger store path=%s", path)
		return store
	}
	return repository2.NewJobDynamoRepository(database.ConnectDynamoDB())
}

func analysisRatePerMinute() int {
	raw := strings.TrimSpace(os.Getenv("ANALYSIS_RATE_PER_MINUTE"))
	if raw == "" {
		return 10
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		log.Printf("[routes] invalid ANALYSIS_RATE_PER_MINUTE=%q; using default", raw)
		return 10
	}
	return n
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}

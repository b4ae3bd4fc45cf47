package routes

import (
	"log"
	"os"
	"strconv"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/yonubear/New-printshop/docs" // This will be auto-generated
	"github.com/yonubear/New-printshop/internal/adapter/http/handlers"
	repository2 "github.com/yonubear/New-printshop/internal/adapter/persistence/repository"
	"github.com/yonubear/New-printshop/internal/infrastructure/database"
	"github.com/yonubear/New-printshop/internal/infrastructure/payments"
	"github.com/yonubear/New-printshop/internal/usecase"
	"github.com/yonubear/New-printshop/internal/usecase/interfaces"
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
	ddb := database.ConnectDynamoDB()

	paperRepo := repository2.NewPaperOptionDynamoRepository(ddb)
	pricingRepo := repository2.NewPrintPricingDynamoRepository(ddb)
	finishingRepo := repository2.NewFinishingOptionDynamoRepository(ddb)
	quoteRepo := repository2.NewQuoteDynamoRepository(ddb)
	paymentRepo := repository2.NewQuotePaymentDynamoRepository(ddb)

	estimateUseCase := usecase.NewEstimateUseCase(paperRepo, pricingRepo, finishingRepo)
	catalogUseCase := usecase.NewCatalogUseCase(paperRepo, pricingRepo, finishingRepo)
	quoteUseCase := usecase.NewQuoteUseCase(quoteRepo, paperRepo, pricingRepo, finishingRepo)

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
	} else {
		paymentGateway = mpGateway
	}

	paymentUseCase := usecase.NewQuotePaymentUseCase(paymentRepo, quoteRepo, paymentGateway)

	estimateHandler := handlers.NewEstimateHandler(estimateUseCase)
	catalogHandler := handlers.NewCatalogHandler(catalogUseCase)
	quoteHandler := handlers.NewQuoteHandler(quoteUseCase)
	quotePaymentHandler := handlers.NewQuotePaymentHandler(paymentUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addCatalogRoutes(v1, catalogHandler)
	addQuoteRoutes(v1, estimateHandler, quoteHandler, quotePaymentHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}

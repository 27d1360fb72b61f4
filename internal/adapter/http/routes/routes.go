package routes

import (
	"context"
	"log"
	"strconv"

	_ "gemtrade_backoffice/docs" // This will be auto-generated
	"gemtrade_backoffice/internal/adapter/http/handlers"
	repository2 "gemtrade_backoffice/internal/adapter/persistence/repository"
	"gemtrade_backoffice/internal/infrastructure/database"
	"gemtrade_backoffice/internal/infrastructure/logger"

	"gemtrade_backoffice/internal/usecase"

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
	zlog, err := logger.New()
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}

	ddb, err := database.NewDynamoDBClient(context.Background(), database.DynamoDBConfigFromEnv())
	if err != nil {
		zlog.Fatalw("failed to connect to dynamodb", "error", err)
	}

	paymentRepo := repository2.NewPaymentDynamoRepository(ddb)
	orderRepo := repository2.NewOrderDynamoRepository(ddb)
	mediatorRepo := repository2.NewMediatorDynamoRepository(ddb)
	bankRepo := repository2.NewBankDynamoRepository(ddb)

	paymentUseCase := usecase.NewPaymentUseCase(paymentRepo, orderRepo, mediatorRepo, bankRepo, zlog)
	profitUseCase := usecase.NewProfitUseCase(paymentRepo, orderRepo, zlog)

	paymentHandler := handlers.NewPaymentHandler(paymentUseCase)
	profitHandler := handlers.NewProfitHandler(profitUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addPaymentRoutes(v1, paymentHandler)
	addOrderRoutes(v1, paymentHandler, profitHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}

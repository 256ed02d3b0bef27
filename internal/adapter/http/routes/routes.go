package routes

import (
	"log"
	"strconv"

	_ "github.com/x17green/realest-sub003/docs" // swag generated
	"github.com/x17green/realest-sub003/internal/adapter/http/handlers"
	"github.com/x17green/realest-sub003/internal/adapter/persistence/repository"
	"github.com/x17green/realest-sub003/internal/infrastructure/cache"
	"github.com/x17green/realest-sub003/internal/infrastructure/database"
	"github.com/x17green/realest-sub003/internal/usecase"

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
	ddb := database.ConnectDynamoDB()
	redisClient := cache.ConnectRedis()

	propertyRepo := repository.NewPropertyDynamoRepository(ddb)
	detailsRepo := repository.NewPropertyDetailsDynamoRepository(ddb)
	inquiryRepo := repository.NewInquiryDynamoRepository(ddb)
	actionRepo := repository.NewAdminActionDynamoRepository(ddb)
	profileRepo := repository.NewProfileDynamoRepository(ddb)
	searchCache := cache.NewRedisSearchCache(redisClient)

	propertyUseCase := usecase.NewPropertyUseCase(propertyRepo, detailsRepo, actionRepo, profileRepo, searchCache)
	inquiryUseCase := usecase.NewInquiryUseCase(inquiryRepo, propertyRepo)
	analyticsUseCase := usecase.NewAnalyticsUseCase(profileRepo, propertyRepo, inquiryRepo, actionRepo)

	propertyHandler := handlers.NewPropertyHandler(propertyUseCase)
	inquiryHandler := handlers.NewInquiryHandler(inquiryUseCase)
	adminHandler := handlers.NewAdminHandler(propertyUseCase, analyticsUseCase)

	api := router.Group("/api")
	addPingRoutes(api)
	addPropertyRoutes(api, propertyHandler, inquiryHandler)
	addInquiryRoutes(api, inquiryHandler)
	addAdminRoutes(api, adminHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}

package routes

import (
	"imobiliaria-backend/internal/api/handlers"
	"imobiliaria-backend/internal/api/middleware"
	"imobiliaria-backend/internal/auth"
	"imobiliaria-backend/internal/config"
	"imobiliaria-backend/internal/repository"
	"imobiliaria-backend/internal/service"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config) *gin.Engine {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.CORS(cfg))

	// Initialize validator
	validator := service.NewValidator()

	// Initialize repositories
	landlordRepo := repository.NewLandlordRepository(db)
	tenantRepo := repository.NewTenantRepository(db)
	propertyRepo := repository.NewPropertyRepository(db)
	contractRepo := repository.NewContractRepository(db)
	settlementRepo := repository.NewSettlementRepository(db)

	// Initialize services
	landlordService := service.NewLandlordService(landlordRepo, validator)
	tenantService := service.NewTenantService(tenantRepo, validator)
	propertyService := service.NewPropertyService(propertyRepo, validator)
	contractService := service.NewContractService(contractRepo, validator)
	searchService := service.NewSearchService(landlordRepo, tenantRepo, propertyRepo, contractRepo, cfg.SearchGroupLimit)
	settlementService := service.NewSettlementService(settlementRepo, contractRepo, validator)

	authService := auth.NewAuthService(cfg.JWTSecret, cfg.DefaultCompanyID)
	authMiddleware := auth.NewAuthMiddleware(authService)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	landlordHandler := handlers.NewLandlordHandler(landlordService)
	tenantHandler := handlers.NewTenantHandler(tenantService)
	propertyHandler := handlers.NewPropertyHandler(propertyService)
	contractHandler := handlers.NewContractHandler(contractService)
	searchHandler := handlers.NewSearchHandler(searchService)
	settlementHandler := handlers.NewSettlementHandler(settlementService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API v1 routes, all scoped to the caller's company
	v1 := router.Group("/api/v1")
	v1.Use(authMiddleware.RequireAuth())
	{
		landlords := v1.Group("/landlords")
		{
			landlords.GET("", landlordHandler.ListLandlords)
			landlords.POST("", landlordHandler.CreateLandlord)
			landlords.GET("/:id", landlordHandler.GetLandlord)
			landlords.PATCH("/:id", landlordHandler.UpdateLandlord)
			landlords.PUT("/:id", landlordHandler.UpdateLandlord)
		}

		tenants := v1.Group("/tenants")
		{
			tenants.GET("", tenantHandler.ListTenants)
			tenants.POST("", tenantHandler.CreateTenant)
			tenants.GET("/:id", tenantHandler.GetTenant)
			tenants.PATCH("/:id", tenantHandler.UpdateTenant)
			tenants.PUT("/:id", tenantHandler.UpdateTenant)
		}

		properties := v1.Group("/properties")
		{
			properties.GET("", propertyHandler.ListProperties)
			properties.POST("", propertyHandler.CreateProperty)
			properties.GET("/:id", propertyHandler.GetProperty)
			properties.PATCH("/:id", propertyHandler.UpdateProperty)
			properties.PUT("/:id", propertyHandler.UpdateProperty)
		}

		contracts := v1.Group("/contracts")
		{
			contracts.GET("", contractHandler.ListContracts)
			contracts.POST("", contractHandler.CreateContract)
			contracts.GET("/:id", contractHandler.GetContract)
			contracts.PATCH("/:id", contractHandler.UpdateContract)
			contracts.PUT("/:id", contractHandler.UpdateContract)
			contracts.GET("/:id/settlements", settlementHandler.ListContractSettlements)
		}

		settlements := v1.Group("/settlements")
		{
			settlements.POST("", settlementHandler.RecordSettlement)
			settlements.GET("/:id", settlementHandler.GetSettlement)
		}

		v1.GET("/search", searchHandler.Search)
	}

	return router
}

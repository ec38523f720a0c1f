package routes

import (
	"github.com/rafasilverio93/designar/internal/api/handlers"
	"github.com/rafasilverio93/designar/internal/api/middleware"
	"github.com/rafasilverio93/designar/internal/config"
	"github.com/rafasilverio93/designar/internal/repository"
	"github.com/rafasilverio93/designar/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application.
// Paths keep the wire contract of the original client views.
func SetupRoutes(db *gorm.DB, cfg *config.Config) *gin.Engine {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg))

	// Initialize validator
	validator := validator.New()

	// Initialize repositories
	territoryRepo := repository.NewTerritoryRepository(db)
	outingRepo := repository.NewOutingRepository(db)
	assignmentRepo := repository.NewAssignmentRepository(db)

	// Initialize services
	notifier := service.NewNotifier(cfg)
	territoryService := service.NewTerritoryService(territoryRepo, validator)
	outingService := service.NewOutingService(outingRepo, notifier, validator)
	assignmentService := service.NewAssignmentService(assignmentRepo, territoryRepo, outingRepo, validator)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	territoryHandler := handlers.NewTerritoryHandler(territoryService)
	outingHandler := handlers.NewOutingHandler(outingService)
	assignmentHandler := handlers.NewAssignmentHandler(assignmentService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Territory routes
	territorios := router.Group("/territorios")
	{
		territorios.GET("", territoryHandler.ListTerritories)
		territorios.POST("", territoryHandler.CreateTerritory)
		territorios.PUT("/:id", territoryHandler.UpdateTerritory)
		territorios.DELETE("/:id", territoryHandler.DeleteTerritory)
	}

	// Outing routes
	saidasCampo := router.Group("/saidas_campo")
	{
		saidasCampo.GET("", outingHandler.ListOutings)
		saidasCampo.POST("", outingHandler.CreateOuting)
		saidasCampo.PUT("/:id", outingHandler.UpdateOuting)
		saidasCampo.DELETE("/:id", outingHandler.DeleteOuting)
	}

	// Assignment routes
	designacoes := router.Group("/designacoes")
	{
		designacoes.GET("", assignmentHandler.ListAssignments)
		designacoes.POST("", assignmentHandler.CreateAssignment)
		designacoes.PUT("/:id", assignmentHandler.UpdateAssignment)
		designacoes.DELETE("/:id", assignmentHandler.DeleteAssignment)
	}

	// Catch-all route for undefined endpoints
	router.NoRoute(func(c *gin.Context) {
		c.JSON(404, gin.H{
			"error":      "Endpoint not found",
			"path":       c.Request.URL.Path,
			"method":     c.Request.Method,
			"request_id": c.GetString("request_id"),
		})
	})

	return router
}

// SetupHealthRoutes sets up only health check routes (useful for testing)
func SetupHealthRoutes(db *gorm.DB) *gin.Engine {
	router := gin.New()
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())

	healthHandler := handlers.NewHealthHandler(db)
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	return router
}

package routes

import (
	"context"
	"net/http"
	"time"

	_ "github.com/franciscosanchezn/best-before-api/docs" // Import generated docs
	"github.com/franciscosanchezn/best-before-api/internal/controllers"
	"github.com/franciscosanchezn/best-before-api/internal/middleware"
	"github.com/franciscosanchezn/best-before-api/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// HealthChecker reports whether the database is reachable
type HealthChecker func(ctx context.Context) error

// Dependencies are the collaborators the router wires into routes
type Dependencies struct {
	Foods       controllers.FoodController
	Health      HealthChecker
	Metrics     *middleware.Metrics
	RateLimiter *middleware.RateLimiter
	Logger      logrus.FieldLogger
}

// SetupRouter builds the gin engine with middleware and every route
func SetupRouter(deps Dependencies) *gin.Engine {
	router := gin.New()
	router.HandleMethodNotAllowed = true
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger(deps.Logger))
	if deps.Metrics != nil {
		router.Use(deps.Metrics.Instrument())
	}

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, models.NewAPIError(models.ErrNotFound, "Route not found"))
	})
	router.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, models.NewAPIError(models.ErrMethodNotAllowed, "Method not allowed"))
	})

	setupRoutes(router, deps)
	return router
}

// setupRoutes defines the routes for the Gin router
func setupRoutes(router *gin.Engine, deps Dependencies) {
	router.GET("/health", healthCheckHandler(deps.Health))

	if deps.Metrics != nil {
		router.GET("/metrics", gin.WrapH(deps.Metrics.Handler()))
	}

	v0 := router.Group("/api/v0")
	if deps.RateLimiter != nil {
		v0.Use(deps.RateLimiter.Handler())
	}
	{
		v0.GET("/foods", deps.Foods.ListFoods)
		v0.POST("/foods", deps.Foods.CreateFood)
		v0.DELETE("/foods/:id", deps.Foods.DeleteFood)
	}

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}

// healthCheckHandler handles the health check endpoint
// @Summary Health check
// @Description Check if the service and its database are reachable
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /health [get]
func healthCheckHandler(check HealthChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		status, database := http.StatusOK, "up"
		if check != nil {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
			defer cancel()
			if err := check(ctx); err != nil {
				status, database = http.StatusServiceUnavailable, "down"
			}
		}

		health := "healthy"
		if status != http.StatusOK {
			health = "unhealthy"
		}
		c.JSON(status, gin.H{
			"status":    health,
			"database":  database,
			"timestamp": time.Now().UTC().Format(time.RFC3339),
			"service":   "best-before-api",
		})
	}
}

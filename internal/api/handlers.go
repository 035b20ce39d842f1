package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pageza/mealmatch/backend/internal/logger"
	"github.com/pageza/mealmatch/backend/internal/middleware"
	"github.com/pageza/mealmatch/backend/internal/service"
)

// Version is reported by the health check
const Version = "v1.0.0"

// HealthCheck returns the health status of the API
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"message": "MealMatch API is running",
		"version": Version,
	})
}

// Dependencies are the services the HTTP surface needs
type Dependencies struct {
	Catalog     service.ICatalogService
	Plans       service.IPlanService
	PlanLimiter *middleware.RateLimiter
	Log         *logger.Logger
}

// RegisterRoutes registers all API routes
func RegisterRoutes(router *gin.Engine, deps Dependencies) {
	if deps.Log == nil {
		deps.Log = logger.NewNop()
	}

	router.GET("/health", HealthCheck)
	router.GET("/api/health", HealthCheck)

	if deps.PlanLimiter == nil {
		deps.Log.Warn("plan generation rate limiting disabled")
	}

	v1 := router.Group("/api/v1")
	NewMealHandler(deps.Catalog, deps.Log).RegisterRoutes(v1)
	NewMealPlanHandler(deps.Plans, deps.PlanLimiter, deps.Log).RegisterRoutes(v1)
}

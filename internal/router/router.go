package router

import (
	"github.com/gin-gonic/gin"
	"github.com/pageza/mealmatch/backend/internal/api"
	"github.com/pageza/mealmatch/backend/internal/logger"
	"github.com/pageza/mealmatch/backend/internal/middleware"
)

// SetupRouter configures the application middleware and routes
func SetupRouter(deps api.Dependencies, allowedOrigins ...string) *gin.Engine {
	if deps.Log == nil {
		deps.Log = logger.NewNop()
	}

	router := gin.New()
	router.Use(
		middleware.Recovery(deps.Log),
		middleware.RequestLogger(deps.Log),
		middleware.CORS(allowedOrigins...),
		middleware.ErrorHandler(),
	)

	api.RegisterRoutes(router, deps)
	return router
}

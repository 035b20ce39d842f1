package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/pageza/mealmatch/backend/config"
	"github.com/pageza/mealmatch/backend/internal/api"
	"github.com/pageza/mealmatch/backend/internal/database"
	"github.com/pageza/mealmatch/backend/internal/logger"
	"github.com/pageza/mealmatch/backend/internal/mealplan"
	"github.com/pageza/mealmatch/backend/internal/middleware"
	"github.com/pageza/mealmatch/backend/internal/router"
	"github.com/pageza/mealmatch/backend/internal/server"
	"github.com/pageza/mealmatch/backend/internal/service"
)

func main() {
	// Initialize configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}
	gin.SetMode(config.GetEnvironment().GinMode())

	zl, err := logger.New(cfg.LogMode)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer zl.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := database.Open(cfg, zl)
	if err != nil {
		zl.Fatal("failed to connect to database", "error", err)
	}
	if err := database.RunMigrations(db, zl); err != nil {
		zl.Fatal("failed to run migrations", "error", err)
	}

	// Continue without rate limiting if Redis is not available
	var planLimiter *middleware.RateLimiter
	if redisClient, err := database.NewRedisClient(cfg, zl); err != nil {
		zl.Warn("failed to connect to Redis for rate limiting", "error", err)
	} else {
		defer redisClient.Close()
		planLimiter = middleware.NewPlanGenerationRateLimiter(redisClient, cfg.PlanRateLimitPerHr, zl)
	}

	var archive service.PlanArchive
	switch s3Cfg, err := config.NewS3Config(ctx, cfg); {
	case errors.Is(err, config.ErrNoBucket):
		zl.Info("plan archiving disabled")
	case err != nil:
		zl.Warn("failed to initialize plan archive", "error", err)
	default:
		archive = service.NewObjectPlanArchive(s3Cfg, service.DefaultArchiveURLExpiry)
		zl.Info("plan archiving enabled", "bucket", s3Cfg.BucketName)
	}

	catalog := service.NewCatalogService(db, zl)
	planner := mealplan.NewPlanner(catalog, zl, mealplan.WithMinEligibleMeals(cfg.MinEligibleMeals))

	r := router.SetupRouter(api.Dependencies{
		Catalog:     catalog,
		Plans:       service.NewPlanService(planner, archive, zl),
		PlanLimiter: planLimiter,
		Log:         zl,
	})

	srv := server.New(cfg, r, zl)
	if err := srv.Run(ctx); err != nil {
		zl.Fatal("server error", "error", err)
	}
	zl.Info("server stopped")
}

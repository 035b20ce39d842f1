package main

import (
	"context"
	"flag"
	"log"
	"time"

	"github.com/pageza/mealmatch/backend/config"
	"github.com/pageza/mealmatch/backend/internal/database"
	"github.com/pageza/mealmatch/backend/internal/logger"
)

func main() {
	migrate := flag.Bool("migrate", true, "Run migrations before seeding")
	timeout := flag.Duration("timeout", time.Minute, "Overall seeding timeout")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	zl, err := logger.New(cfg.LogMode)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer zl.Sync()

	db, err := database.Open(cfg, zl)
	if err != nil {
		zl.Fatal("failed to connect to database", "error", err)
	}
	if *migrate {
		if err := database.RunMigrations(db, zl); err != nil {
			zl.Fatal("failed to apply migrations", "error", err)
		}
	}

	meals, err := database.SampleMeals()
	if err != nil {
		zl.Fatal("failed to build sample catalog", "error", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	created, err := database.SeedCatalog(ctx, db, meals)
	if err != nil {
		zl.Fatal("failed to seed catalog", "error", err)
	}
	zl.Info("seeded custom meal catalog", "created", created, "skipped", len(meals)-created)
}

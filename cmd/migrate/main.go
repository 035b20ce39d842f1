package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/pageza/mealmatch/backend/config"
	"github.com/pageza/mealmatch/backend/internal/database"
	"github.com/pageza/mealmatch/backend/internal/logger"
	"github.com/pageza/mealmatch/backend/internal/model"
)

func main() {
	// Parse command line flags
	rollback := flag.Bool("rollback", false, "Drop the custom meal catalog table")
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

	if *rollback {
		if err := db.Migrator().DropTable(&model.CustomMeal{}); err != nil {
			zl.Fatal("failed to roll back catalog schema", "error", err)
		}
		fmt.Println("Successfully dropped custom_meals")
		return
	}

	if err := database.RunMigrations(db, zl); err != nil {
		zl.Fatal("failed to apply migrations", "error", err)
	}
	fmt.Println("All migrations applied successfully.")
}

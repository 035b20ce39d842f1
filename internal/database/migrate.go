package database

import (
	"fmt"

	"github.com/pageza/mealmatch/backend/internal/logger"
	"github.com/pageza/mealmatch/backend/internal/model"
	"gorm.io/gorm"
)

// RunMigrations brings the catalog schema up to date
func RunMigrations(db *gorm.DB, log *logger.Logger) error {
	log.Info("running GORM auto-migration", "driver", db.Dialector.Name())
	if err := db.AutoMigrate(&model.CustomMeal{}); err != nil {
		return fmt.Errorf("failed to migrate custom meals: %w", err)
	}
	return nil
}

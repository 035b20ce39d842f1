package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/pageza/mealmatch/backend/internal/mealplan"
	"github.com/pageza/mealmatch/backend/internal/model"
)

// ICatalogService defines the interface for meal catalog operations
type ICatalogService interface {
	mealplan.Catalog
	CreateMeal(ctx context.Context, meal *model.CustomMeal) (*model.CustomMeal, error)
	GetMeal(ctx context.Context, id uuid.UUID) (*model.CustomMeal, error)
	ListMeals(ctx context.Context, filter MealFilter) ([]*model.CustomMeal, error)
	DeactivateMeal(ctx context.Context, id uuid.UUID) error
}

// IPlanService defines the interface for meal plan generation
type IPlanService interface {
	GeneratePlan(ctx context.Context, prefs mealplan.UserPreferences, archive bool) (*GeneratedPlan, error)
}

// PlanArchive stores a generated plan and returns a URL it can be fetched from
type PlanArchive interface {
	ArchivePlan(ctx context.Context, result *mealplan.PlanResult) (string, error)
}

package api

import (
	"github.com/pageza/mealmatch/backend/internal/mealplan"
	"github.com/pageza/mealmatch/backend/internal/model"
)

// GeneratePlanRequest is the body of POST /meal-plans/generate
type GeneratePlanRequest struct {
	HealthGoal          string   `json:"health_goal" binding:"required"`
	MealTimes           []string `json:"meal_times" binding:"required,min=1"`
	DietaryRestrictions []string `json:"dietary_restrictions"`
	Allergies           []string `json:"allergies"`
	ExcludeIngredients  []string `json:"exclude_ingredients"`
	DurationWeeks       *int     `json:"duration_weeks"`
	Archive             bool     `json:"archive"`
}

// CreateMealRequest is the body of POST /meals
type CreateMealRequest struct {
	Name              string                `json:"name" binding:"required"`
	Description       string                `json:"description"`
	Category          string                `json:"category" binding:"required"`
	Calories          float64               `json:"calories" binding:"gte=0"`
	Protein           float64               `json:"protein" binding:"gte=0"`
	Carbs             float64               `json:"carbs" binding:"gte=0"`
	Fat               float64               `json:"fat" binding:"gte=0"`
	Fiber             float64               `json:"fiber" binding:"gte=0"`
	Sugar             float64               `json:"sugar" binding:"gte=0"`
	Allergens         []string              `json:"allergens"`
	DietaryTags       []string              `json:"dietary_tags"`
	HealthGoals       []string              `json:"health_goals"`
	PreparationMethod string                `json:"preparation_method"`
	GlycemicIndex     string                `json:"glycemic_index"`
	Ingredients       []mealplan.Ingredient `json:"ingredients"`
	Price             float64               `json:"price" binding:"gte=0"`
	PlanEligible      *bool                 `json:"plan_eligible"`
}

// MealResponse wraps a single catalog meal
type MealResponse struct {
	Meal        *model.CustomMeal     `json:"meal"`
	Ingredients []mealplan.Ingredient `json:"ingredients"`
}

// MealListResponse wraps a list of catalog meals
type MealListResponse struct {
	Meals []*model.CustomMeal `json:"meals"`
	Count int                 `json:"count"`
}

// InsufficientCandidatesResponse is returned with 422 when filtering leaves
// too few meals
type InsufficientCandidatesResponse struct {
	Error    string `json:"error"`
	Found    int    `json:"found"`
	Required int    `json:"required"`
}

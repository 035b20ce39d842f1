package mealplan

import (
	"fmt"
	"strings"
)

// HealthGoal is the dietary objective that parameterizes targets and scoring.
type HealthGoal string

const (
	GoalWeightLoss         HealthGoal = "weight_loss"
	GoalMuscleGain         HealthGoal = "muscle_gain"
	GoalMaintenance        HealthGoal = "maintenance"
	GoalDiabetesManagement HealthGoal = "diabetes_management"
	GoalHeartHealth        HealthGoal = "heart_health"
)

// HealthGoals lists every supported goal in a stable order.
var HealthGoals = []HealthGoal{
	GoalWeightLoss,
	GoalMuscleGain,
	GoalMaintenance,
	GoalDiabetesManagement,
	GoalHeartHealth,
}

// Valid reports whether g is one of the supported goals.
func (g HealthGoal) Valid() bool {
	for _, known := range HealthGoals {
		if g == known {
			return true
		}
	}
	return false
}

// MealTime is a slot within a day.
type MealTime string

const (
	Breakfast MealTime = "breakfast"
	Lunch     MealTime = "lunch"
	Dinner    MealTime = "dinner"
	Snack     MealTime = "snack"
)

// ParseMealTime normalizes s to a known MealTime, ignoring case and whitespace.
func ParseMealTime(s string) (MealTime, error) {
	mt := MealTime(strings.ToLower(strings.TrimSpace(s)))
	switch mt {
	case Breakfast, Lunch, Dinner, Snack:
		return mt, nil
	}
	return "", fmt.Errorf("unknown meal time %q", s)
}

// Matches compares meal times case-insensitively.
func (m MealTime) Matches(other MealTime) bool {
	return strings.EqualFold(string(m), string(other))
}

type PreparationMethod string

const (
	PrepFried   PreparationMethod = "fried"
	PrepGrilled PreparationMethod = "grilled"
	PrepSteamed PreparationMethod = "steamed"
	PrepBaked   PreparationMethod = "baked"
	PrepRoasted PreparationMethod = "roasted"
	PrepBoiled  PreparationMethod = "boiled"
	PrepRaw     PreparationMethod = "raw"
)

func (p PreparationMethod) is(methods ...PreparationMethod) bool {
	for _, m := range methods {
		if strings.EqualFold(string(p), string(m)) {
			return true
		}
	}
	return false
}

type GlycemicIndex string

const (
	GlycemicLow    GlycemicIndex = "low"
	GlycemicMedium GlycemicIndex = "medium"
	GlycemicHigh   GlycemicIndex = "high"
)

// Nutrition holds per-serving values; all fields are non-negative.
type Nutrition struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
	Fiber    float64 `json:"fiber"`
	Sugar    float64 `json:"sugar"`
}

// Ingredient is one entry of a meal's detailed breakdown.
type Ingredient struct {
	Name     string `json:"name"`
	Category string `json:"category"`
	Optional bool   `json:"optional"`
}

// CandidateMeal is a read-only catalog entry. The planner never mutates it.
type CandidateMeal struct {
	ID                string            `json:"id"`
	Name              string            `json:"name"`
	Category          MealTime          `json:"category"`
	Nutrition         Nutrition         `json:"nutrition"`
	Allergens         []string          `json:"allergens"`
	DietaryTags       []string          `json:"dietary_tags"`
	HealthGoals       []HealthGoal      `json:"health_goals"`
	PreparationMethod PreparationMethod `json:"preparation_method"`
	GlycemicIndex     GlycemicIndex     `json:"glycemic_index"`
	Ingredients       []Ingredient      `json:"ingredients"`
}

// UserPreferences is the input of a planning run.
type UserPreferences struct {
	HealthGoal          HealthGoal `json:"health_goal"`
	DietaryRestrictions []string   `json:"dietary_restrictions"`
	Allergies           []string   `json:"allergies"`
	ExcludeIngredients  []string   `json:"exclude_ingredients"`
	MealTimes           []MealTime `json:"meal_times"`
	DurationWeeks       int        `json:"duration_weeks"`
}

// Validate checks the preconditions every later stage relies on.
func (p UserPreferences) Validate() error {
	if !p.HealthGoal.Valid() {
		return fmt.Errorf("%w: %w: %q", ErrInvalidPreferences, ErrUnknownHealthGoal, p.HealthGoal)
	}
	if len(p.MealTimes) == 0 {
		return fmt.Errorf("%w: at least one meal time is required", ErrInvalidPreferences)
	}
	seen := make(map[MealTime]bool, len(p.MealTimes))
	for _, mt := range p.MealTimes {
		parsed, err := ParseMealTime(string(mt))
		if err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidPreferences, err)
		}
		if seen[parsed] {
			return fmt.Errorf("%w: duplicate meal time %q", ErrInvalidPreferences, mt)
		}
		seen[parsed] = true
	}
	if p.DurationWeeks < 1 {
		return fmt.Errorf("%w: duration must be at least one week, got %d", ErrInvalidPreferences, p.DurationWeeks)
	}
	return nil
}

// CalorieRange is a per-day calorie band.
type CalorieRange struct {
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	Target float64 `json:"target"`
}

// NutritionalTargets are derived once per run and never changed afterwards.
type NutritionalTargets struct {
	CaloriesPerDay  CalorieRange `json:"calories_per_day"`
	MealsPerDay     int          `json:"meals_per_day"`
	CaloriesPerMeal float64      `json:"calories_per_meal"`
	ProteinGrams    float64      `json:"protein_grams"`
	CarbsGrams      float64      `json:"carbs_grams"`
	FatGrams        float64      `json:"fat_grams"`
	FiberMin        float64      `json:"fiber_min"`
	SugarMax        float64      `json:"sugar_max"`
}

// ScoredMeal pairs a meal with its goal fitness. Scores from different goals
// are not comparable.
type ScoredMeal struct {
	CandidateMeal
	Score int `json:"score"`
}

// Slot identifies one (week, day, meal time) position.
type Slot struct {
	WeekNumber int      `json:"week_number"`
	DayOfWeek  int      `json:"day_of_week"`
	MealTime   MealTime `json:"meal_time"`
}

// MealAssignment places a meal in a slot. Sequence is the slot's position on
// the plan's time axis and is unique within a plan.
type MealAssignment struct {
	Sequence       int           `json:"sequence"`
	WeekNumber     int           `json:"week_number"`
	DayOfWeek      int           `json:"day_of_week"`
	MealTime       MealTime      `json:"meal_time"`
	Meal           CandidateMeal `json:"meal"`
	Customizations []string      `json:"customizations"`
}

// Slot returns the position of the assignment.
func (a MealAssignment) Slot() Slot {
	return Slot{WeekNumber: a.WeekNumber, DayOfWeek: a.DayOfWeek, MealTime: a.MealTime}
}

// MealPlan is the ordered schedule plus the slots that could not be filled.
type MealPlan struct {
	Assignments   []MealAssignment `json:"assignments"`
	UnfilledSlots []Slot           `json:"unfilled_slots"`
}

// ExpectedSlots is durationWeeks × 7 × |mealTimes|.
func ExpectedSlots(prefs UserPreferences) int {
	return prefs.DurationWeeks * DaysPerWeek * len(prefs.MealTimes)
}

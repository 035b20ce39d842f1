package mealplan

import (
	"fmt"
	"math"
)

const (
	kcalPerGramProtein = 4
	kcalPerGramCarbs   = 4
	kcalPerGramFat     = 9

	// DaysPerWeek is the number of days scheduled for every plan week.
	DaysPerWeek = 7
)

type goalTargets struct {
	calories   CalorieRange
	proteinPct float64
	carbsPct   float64
	fatPct     float64
	fiberMin   float64
	sugarMax   float64
}

var targetTable = map[HealthGoal]goalTargets{
	GoalWeightLoss: {
		calories:   CalorieRange{Min: 1400, Max: 1800, Target: 1600},
		proteinPct: 30, carbsPct: 40, fatPct: 30,
		fiberMin: 30, sugarMax: 40,
	},
	GoalMuscleGain: {
		calories:   CalorieRange{Min: 2500, Max: 3200, Target: 2800},
		proteinPct: 35, carbsPct: 45, fatPct: 20,
		fiberMin: 35, sugarMax: 60,
	},
	GoalMaintenance: {
		calories:   CalorieRange{Min: 2000, Max: 2400, Target: 2200},
		proteinPct: 25, carbsPct: 50, fatPct: 25,
		fiberMin: 28, sugarMax: 50,
	},
	GoalDiabetesManagement: {
		calories:   CalorieRange{Min: 1600, Max: 2000, Target: 1800},
		proteinPct: 25, carbsPct: 40, fatPct: 35,
		fiberMin: 35, sugarMax: 25,
	},
	GoalHeartHealth: {
		calories:   CalorieRange{Min: 1800, Max: 2200, Target: 2000},
		proteinPct: 25, carbsPct: 50, fatPct: 25,
		fiberMin: 30, sugarMax: 36,
	},
}

// CalculateTargets derives the day and per-meal targets for goal when
// mealsPerDay meal times are requested.
func CalculateTargets(goal HealthGoal, mealsPerDay int) (NutritionalTargets, error) {
	if mealsPerDay < 1 {
		return NutritionalTargets{}, fmt.Errorf("%w: meals per day must be at least 1, got %d", ErrInvalidPreferences, mealsPerDay)
	}
	t, ok := targetTable[goal]
	if !ok {
		return NutritionalTargets{}, fmt.Errorf("%w: %q", ErrUnknownHealthGoal, goal)
	}

	day := t.calories.Target
	return NutritionalTargets{
		CaloriesPerDay:  t.calories,
		MealsPerDay:     mealsPerDay,
		CaloriesPerMeal: math.Round(day / float64(mealsPerDay)),
		ProteinGrams:    macroGrams(day, t.proteinPct, kcalPerGramProtein),
		CarbsGrams:      macroGrams(day, t.carbsPct, kcalPerGramCarbs),
		FatGrams:        macroGrams(day, t.fatPct, kcalPerGramFat),
		FiberMin:        t.fiberMin,
		SugarMax:        t.sugarMax,
	}, nil
}

func macroGrams(calories, pct float64, kcalPerGram float64) float64 {
	return math.Round(calories * pct / 100 / kcalPerGram)
}

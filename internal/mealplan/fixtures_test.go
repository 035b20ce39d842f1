package mealplan

import (
	"context"
	"fmt"

	"github.com/stretchr/testify/mock"
)

type mealOpt func(*CandidateMeal)

func withNutrition(n Nutrition) mealOpt {
	return func(m *CandidateMeal) { m.Nutrition = n }
}

func withAllergens(tags ...string) mealOpt {
	return func(m *CandidateMeal) { m.Allergens = tags }
}

func withDietary(tags ...string) mealOpt {
	return func(m *CandidateMeal) { m.DietaryTags = tags }
}

func withGoals(goals ...HealthGoal) mealOpt {
	return func(m *CandidateMeal) { m.HealthGoals = goals }
}

func withIngredients(names ...string) mealOpt {
	return func(m *CandidateMeal) {
		for _, n := range names {
			m.Ingredients = append(m.Ingredients, Ingredient{Name: n, Category: "other"})
		}
	}
}

func withPrep(p PreparationMethod) mealOpt {
	return func(m *CandidateMeal) { m.PreparationMethod = p }
}

func newMeal(id string, category MealTime, calories float64, opts ...mealOpt) CandidateMeal {
	m := CandidateMeal{
		ID:                id,
		Name:              "Meal " + id,
		Category:          category,
		Nutrition:         Nutrition{Calories: calories, Protein: 25, Carbs: 60, Fat: 20, Fiber: 4, Sugar: 9},
		PreparationMethod: PrepBaked,
		GlycemicIndex:     GlycemicMedium,
	}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// seededCatalog returns perMealTime meals for each of breakfast, lunch and
// dinner with calories close to the maintenance per-meal target.
func seededCatalog(perMealTime int) []CandidateMeal {
	var meals []CandidateMeal
	for _, mt := range []MealTime{Breakfast, Lunch, Dinner} {
		for i := 0; i < perMealTime; i++ {
			meals = append(meals, newMeal(fmt.Sprintf("%s-%02d", mt, i), mt, 700+float64(i)*5,
				withNutrition(Nutrition{Calories: 700 + float64(i)*5, Protein: 45, Carbs: 80, Fat: 22, Fiber: 6, Sugar: 8}),
				withAllergens("dairy"),
				withIngredients("rice", "spinach"),
			))
		}
	}
	return meals
}

func scoredFrom(meals ...CandidateMeal) []ScoredMeal {
	out := make([]ScoredMeal, len(meals))
	for i, m := range meals {
		out[i] = ScoredMeal{CandidateMeal: m, Score: len(meals) - i}
	}
	return out
}

// MockCatalog is a testify mock of Catalog.
type MockCatalog struct {
	mock.Mock
}

func (m *MockCatalog) ListEligibleMeals(ctx context.Context, criteria CatalogCriteria) ([]CandidateMeal, error) {
	args := m.Called(ctx, criteria)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]CandidateMeal), args.Error(1)
}

// staticCatalog serves a fixed snapshot.
type staticCatalog []CandidateMeal

func (c staticCatalog) ListEligibleMeals(context.Context, CatalogCriteria) ([]CandidateMeal, error) {
	return c, nil
}

package mealplan

import "strings"

// MinEligibleMeals is the smallest filtered catalog a plan is built from.
const MinEligibleMeals = 20

// FilterCandidates returns the meals that satisfy every mandatory constraint
// in prefs. The catalog slice is not modified.
//
// Meals without a detailed ingredient list pass the excluded-ingredient check
// unconditionally. Catalog entries with incomplete data can therefore slip an
// excluded ingredient through.
func FilterCandidates(catalog []CandidateMeal, prefs UserPreferences) []CandidateMeal {
	allergies := toSet(prefs.Allergies)
	excluded := toSet(prefs.ExcludeIngredients)

	out := make([]CandidateMeal, 0, len(catalog))
	for _, meal := range catalog {
		if containsAny(meal.Allergens, allergies) {
			continue
		}
		if !containsAll(meal.DietaryTags, prefs.DietaryRestrictions) {
			continue
		}
		if hasExcludedIngredient(meal.Ingredients, excluded) {
			continue
		}
		if !supportsGoal(meal.HealthGoals, prefs.HealthGoal) {
			continue
		}
		out = append(out, meal)
	}
	return out
}

// EnsureEnoughCandidates fails with an *InsufficientCandidatesError when
// found is below min.
func EnsureEnoughCandidates(found, min int) error {
	if found < min {
		return &InsufficientCandidatesError{Found: found, Required: min}
	}
	return nil
}

func supportsGoal(goals []HealthGoal, goal HealthGoal) bool {
	if len(goals) == 0 {
		return true
	}
	for _, g := range goals {
		if strings.EqualFold(string(g), string(goal)) {
			return true
		}
	}
	return false
}

func hasExcludedIngredient(ingredients []Ingredient, excluded map[string]struct{}) bool {
	if len(excluded) == 0 {
		return false
	}
	for _, ing := range ingredients {
		if _, ok := excluded[normalize(ing.Name)]; ok {
			return true
		}
	}
	return false
}

func containsAny(tags []string, set map[string]struct{}) bool {
	if len(set) == 0 {
		return false
	}
	for _, tag := range tags {
		if _, ok := set[normalize(tag)]; ok {
			return true
		}
	}
	return false
}

func containsAll(tags []string, required []string) bool {
	if len(required) == 0 {
		return true
	}
	have := toSet(tags)
	for _, r := range required {
		if _, ok := have[normalize(r)]; !ok {
			return false
		}
	}
	return true
}

func toSet(values []string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		if n := normalize(v); n != "" {
			set[n] = struct{}{}
		}
	}
	return set
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

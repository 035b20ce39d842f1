package mealplan

// proteinDeficitRatio is the share of target protein below which a plan is
// considered protein deficient.
const proteinDeficitRatio = 0.9

// ValidationReport compares achieved daily averages with the targets.
type ValidationReport struct {
	AvgCaloriesPerDay float64 `json:"avg_calories_per_day"`
	AvgProteinPerDay  float64 `json:"avg_protein_per_day"`
	CaloriesInRange   bool    `json:"calories_in_range"`
	ProteinDeficit    bool    `json:"protein_deficit"`
	MeetsTargets      bool    `json:"meets_targets"`
}

// ValidatePlan averages the plan's calories and protein over days. It only
// reports; the plan is never changed.
func ValidatePlan(plan MealPlan, targets NutritionalTargets, days int) ValidationReport {
	if days < 1 {
		return ValidationReport{}
	}
	var calories, protein float64
	for _, a := range plan.Assignments {
		calories += a.Meal.Nutrition.Calories
		protein += a.Meal.Nutrition.Protein
	}

	r := ValidationReport{
		AvgCaloriesPerDay: calories / float64(days),
		AvgProteinPerDay:  protein / float64(days),
	}
	r.CaloriesInRange = r.AvgCaloriesPerDay >= targets.CaloriesPerDay.Min &&
		r.AvgCaloriesPerDay <= targets.CaloriesPerDay.Max
	r.ProteinDeficit = r.AvgProteinPerDay < proteinDeficitRatio*targets.ProteinGrams
	r.MeetsTargets = r.CaloriesInRange && !r.ProteinDeficit
	return r
}

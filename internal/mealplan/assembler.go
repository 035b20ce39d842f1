package mealplan

import "context"

const (
	calorieWindowLow  = 0.7
	calorieWindowHigh = 1.3
	dailyCalorieCap   = 1.1
)

// Assemble walks weeks, days and meal times in order and greedily fills each
// slot with the best-scored meal that fits the remaining calorie budget.
// Slots without any meal of their category are recorded in UnfilledSlots.
// ctx is checked between weeks.
func Assemble(ctx context.Context, scored []ScoredMeal, prefs UserPreferences, targets NutritionalTargets) (MealPlan, error) {
	byTime := bucketByMealTime(scored, prefs.MealTimes)
	dailyTarget := targets.CaloriesPerDay.Target

	plan := MealPlan{
		Assignments: make([]MealAssignment, 0, ExpectedSlots(prefs)),
	}
	seq := 0
	for week := 1; week <= prefs.DurationWeeks; week++ {
		if err := ctx.Err(); err != nil {
			return MealPlan{}, err
		}
		for day := 1; day <= DaysPerWeek; day++ {
			eaten := 0.0
			for i, mt := range prefs.MealTimes {
				candidates := byTime[i]
				if len(candidates) == 0 {
					plan.UnfilledSlots = append(plan.UnfilledSlots, Slot{WeekNumber: week, DayOfWeek: day, MealTime: mt})
					continue
				}

				remainingSlots := len(prefs.MealTimes) - i
				slotTarget := (dailyTarget - eaten) / float64(remainingSlots)
				meal := selectBestFit(candidates, slotTarget, eaten, dailyTarget)

				plan.Assignments = append(plan.Assignments, MealAssignment{
					Sequence:       seq,
					WeekNumber:     week,
					DayOfWeek:      day,
					MealTime:       mt,
					Meal:           meal.CandidateMeal,
					Customizations: []string{},
				})
				seq++
				eaten += meal.Nutrition.Calories
			}
		}
	}
	return plan, nil
}

// selectBestFit picks the first (highest-scored) candidate whose calories fall
// within the flexible window around target and keep the day under the cap.
// Without a fit it returns the top candidate. candidates must be non-empty.
func selectBestFit(candidates []ScoredMeal, target, eaten, dailyTarget float64) ScoredMeal {
	low, high := target*calorieWindowLow, target*calorieWindowHigh
	limit := dailyTarget * dailyCalorieCap
	for _, c := range candidates {
		kcal := c.Nutrition.Calories
		if kcal >= low && kcal <= high && eaten+kcal <= limit {
			return c
		}
	}
	return candidates[0]
}

// bucketByMealTime groups scored meals by the index of their meal time in
// mealTimes, keeping score order within each bucket.
func bucketByMealTime(scored []ScoredMeal, mealTimes []MealTime) [][]ScoredMeal {
	buckets := make([][]ScoredMeal, len(mealTimes))
	for _, m := range scored {
		for i, mt := range mealTimes {
			if m.Category.Matches(mt) {
				buckets[i] = append(buckets[i], m)
				break
			}
		}
	}
	return buckets
}

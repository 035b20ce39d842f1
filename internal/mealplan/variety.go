package mealplan

// LookbackWindow is the number of preceding slots searched for repeats. It is
// sized for three meals a day over one week and is not rescaled for plans
// with fewer meal times.
const LookbackWindow = 21

// VarietyReport summarizes the variety pass.
type VarietyReport struct {
	Substitutions   int `json:"substitutions"`
	RetainedRepeats int `json:"retained_repeats"`
	LookbackWindow  int `json:"lookback_window"`
}

// EnforceVariety replaces meals repeated within the trailing window with a
// meal of the same meal time taken from the original plan, when one is not in
// that window. Slot identity, count and order are preserved.
func EnforceVariety(plan MealPlan, window int) (MealPlan, VarietyReport) {
	report := VarietyReport{LookbackWindow: window}
	original := plan.Assignments
	varied := make([]MealAssignment, 0, len(original))

	for _, a := range original {
		recent := recentMealIDs(varied, a.Sequence, window)
		if _, repeated := recent[a.Meal.ID]; !repeated {
			varied = append(varied, a)
			continue
		}
		if sub, ok := findSubstitute(original, a.MealTime, recent); ok {
			a.Meal = sub
			report.Substitutions++
		} else {
			report.RetainedRepeats++
		}
		varied = append(varied, a)
	}

	return MealPlan{Assignments: varied, UnfilledSlots: plan.UnfilledSlots}, report
}

// recentMealIDs collects meal ids of assignments whose sequence lies in
// [seq-window, seq). assigned is ordered by sequence.
func recentMealIDs(assigned []MealAssignment, seq, window int) map[string]struct{} {
	ids := make(map[string]struct{}, window)
	for i := len(assigned) - 1; i >= 0; i-- {
		s := assigned[i].Sequence
		if s < seq-window {
			break
		}
		if s < seq {
			ids[assigned[i].Meal.ID] = struct{}{}
		}
	}
	return ids
}

func findSubstitute(original []MealAssignment, mt MealTime, recent map[string]struct{}) (CandidateMeal, bool) {
	for _, o := range original {
		if !o.MealTime.Matches(mt) {
			continue
		}
		if _, used := recent[o.Meal.ID]; !used {
			return o.Meal, true
		}
	}
	return CandidateMeal{}, false
}

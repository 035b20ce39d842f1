package mealplan

import (
	"fmt"
	"sort"
)

// ScoreFunc returns the goal-specific fitness delta of a meal.
type ScoreFunc func(meal CandidateMeal) int

var goalScorers = map[HealthGoal]ScoreFunc{
	GoalWeightLoss:         scoreWeightLoss,
	GoalMuscleGain:         scoreMuscleGain,
	GoalDiabetesManagement: scoreDiabetesManagement,
	GoalHeartHealth:        scoreHeartHealth,
	GoalMaintenance:        scoreMaintenance,
}

// ScoreMeal returns the total score of meal under goal, including the
// goal-agnostic bonuses.
func ScoreMeal(meal CandidateMeal, goal HealthGoal) (int, error) {
	score, ok := goalScorers[goal]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownHealthGoal, goal)
	}
	return score(meal) + scoreGeneral(meal), nil
}

// ScoreMeals scores every meal and sorts best first. Equal scores keep their
// input order.
func ScoreMeals(meals []CandidateMeal, goal HealthGoal) ([]ScoredMeal, error) {
	scored := make([]ScoredMeal, 0, len(meals))
	for _, meal := range meals {
		s, err := ScoreMeal(meal, goal)
		if err != nil {
			return nil, err
		}
		scored = append(scored, ScoredMeal{CandidateMeal: meal, Score: s})
	}
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})
	return scored, nil
}

func scoreGeneral(m CandidateMeal) int {
	score := 0
	if m.Nutrition.Protein > 20 {
		score += 2
	}
	if m.Nutrition.Fiber > 5 {
		score += 2
	}
	return score
}

func scoreWeightLoss(m CandidateMeal) int {
	n := m.Nutrition
	score := 0
	if n.Calories < 600 {
		score += 10
	}
	if n.Calories > 800 {
		score -= 5
	}
	if n.Fiber > 7 {
		score += 8
	}
	if m.PreparationMethod.is(PrepFried) {
		score -= 5
	} else {
		score += 8
	}
	if n.Sugar < 10 {
		score += 5
	}
	if n.Fat < 15 {
		score += 5
	}
	return score
}

func scoreMuscleGain(m CandidateMeal) int {
	n := m.Nutrition
	score := 0
	switch {
	case n.Protein > 35:
		score += 10
	case n.Protein > 25:
		score += 5
	}
	if n.Calories >= 600 && n.Calories <= 900 {
		score += 8
	}
	if n.Carbs > 50 {
		score += 5
	}
	if m.PreparationMethod.is(PrepGrilled, PrepBaked) {
		score += 3
	}
	if m.PreparationMethod.is(PrepFried) {
		score -= 3
	}
	return score
}

func scoreDiabetesManagement(m CandidateMeal) int {
	n := m.Nutrition
	score := 0
	if n.Sugar < 8 {
		score += 10
	}
	if n.Sugar > 15 {
		score -= 8
	}
	switch m.GlycemicIndex {
	case GlycemicLow:
		score += 8
	case GlycemicHigh:
		score -= 5
	}
	if n.Fiber > 6 {
		score += 6
	}
	if n.Carbs < 45 {
		score += 5
	}
	return score
}

func scoreHeartHealth(m CandidateMeal) int {
	n := m.Nutrition
	score := 0
	if n.Fat < 15 {
		score += 8
	}
	if n.Fat > 25 {
		score -= 6
	}
	if n.Fiber > 6 {
		score += 6
	}
	if m.PreparationMethod.is(PrepSteamed, PrepGrilled, PrepBaked) {
		score += 5
	}
	if m.PreparationMethod.is(PrepFried) {
		score -= 8
	}
	if n.Sugar < 10 {
		score += 3
	}
	return score
}

func scoreMaintenance(m CandidateMeal) int {
	n := m.Nutrition
	score := 0
	if n.Calories >= 500 && n.Calories <= 800 {
		score += 5
	}
	if n.Protein >= 15 && n.Protein <= 40 {
		score += 3
	}
	if n.Fiber > 4 {
		score += 2
	}
	if m.PreparationMethod.is(PrepFried) {
		score -= 3
	}
	return score
}

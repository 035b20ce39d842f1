package service

import (
	"context"
	"errors"
	"testing"

	"github.com/pageza/mealmatch/backend/internal/mealplan"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubCatalog []mealplan.CandidateMeal

func (s stubCatalog) ListEligibleMeals(context.Context, mealplan.CatalogCriteria) ([]mealplan.CandidateMeal, error) {
	return s, nil
}

type recordingArchive struct {
	calls int
	err   error
}

func (r *recordingArchive) ArchivePlan(_ context.Context, result *mealplan.PlanResult) (string, error) {
	r.calls++
	if r.err != nil {
		return "", r.err
	}
	return "https://archive.example.com/" + string(result.Preferences.HealthGoal), nil
}

func lunchCatalog(n int) stubCatalog {
	out := make(stubCatalog, n)
	for i := range out {
		out[i] = mealplan.CandidateMeal{
			ID:        string(rune('a' + i)),
			Name:      "Lunch",
			Category:  mealplan.Lunch,
			Nutrition: mealplan.Nutrition{Calories: 700, Protein: 40, Fiber: 6},
		}
	}
	return out
}

var lunchOnly = mealplan.UserPreferences{
	HealthGoal:    mealplan.GoalMaintenance,
	MealTimes:     []mealplan.MealTime{mealplan.Lunch},
	DurationWeeks: 1,
}

func TestGeneratePlanWithoutArchive(t *testing.T) {
	svc := NewPlanService(mealplan.NewPlanner(lunchCatalog(20), nil), nil, nil)

	got, err := svc.GeneratePlan(context.Background(), lunchOnly, false)
	require.NoError(t, err)
	assert.Len(t, got.Plan.Assignments, 7)
	assert.Empty(t, got.ArchiveURL)
}

func TestGeneratePlanArchives(t *testing.T) {
	archive := &recordingArchive{}
	svc := NewPlanService(mealplan.NewPlanner(lunchCatalog(20), nil), archive, nil)

	got, err := svc.GeneratePlan(context.Background(), lunchOnly, true)
	require.NoError(t, err)
	assert.Equal(t, "https://archive.example.com/maintenance", got.ArchiveURL)
	assert.Equal(t, 1, archive.calls)

	// archiving is opt-in per request
	_, err = svc.GeneratePlan(context.Background(), lunchOnly, false)
	require.NoError(t, err)
	assert.Equal(t, 1, archive.calls)
}

func TestGeneratePlanArchiveErrors(t *testing.T) {
	svc := NewPlanService(mealplan.NewPlanner(lunchCatalog(20), nil), nil, nil)
	_, err := svc.GeneratePlan(context.Background(), lunchOnly, true)
	assert.ErrorIs(t, err, ErrArchiveDisabled)

	uploadErr := errors.New("access denied")
	svc = NewPlanService(mealplan.NewPlanner(lunchCatalog(20), nil), &recordingArchive{err: uploadErr}, nil)
	_, err = svc.GeneratePlan(context.Background(), lunchOnly, true)
	assert.ErrorIs(t, err, uploadErr)
}

func TestGeneratePlanPropagatesPlannerErrors(t *testing.T) {
	archive := &recordingArchive{}
	svc := NewPlanService(mealplan.NewPlanner(lunchCatalog(5), nil), archive, nil)

	_, err := svc.GeneratePlan(context.Background(), lunchOnly, true)
	var insufficient *mealplan.InsufficientCandidatesError
	require.ErrorAs(t, err, &insufficient)
	assert.Equal(t, 5, insufficient.Found)
	assert.Zero(t, archive.calls)
}

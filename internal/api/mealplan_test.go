package api

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/pageza/mealmatch/backend/internal/middleware"
	"github.com/pageza/mealmatch/backend/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestGeneratePlan(t *testing.T) {
	env := setupTestEnv(t, nil)

	w := env.do(t, http.MethodPost, "/api/v1/meal-plans/generate", map[string]any{
		"health_goal": "maintenance",
		"meal_times":  []string{"Breakfast", "lunch", "dinner"},
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	plan := decode[service.GeneratedPlan](t, w)
	require.NotNil(t, plan.PlanResult)
	assert.Len(t, plan.Plan.Assignments, 21)
	assert.Empty(t, plan.Plan.UnfilledSlots)
	assert.Equal(t, float64(2200), plan.Targets.CaloriesPerDay.Target)
	assert.Equal(t, 1, plan.Preferences.DurationWeeks)
	assert.Equal(t, 27, plan.CandidateCount)
	assert.Empty(t, plan.ArchiveURL)
}

func TestGeneratePlanArchives(t *testing.T) {
	archive := &fakeArchive{}
	env := setupTestEnv(t, archive)

	w := env.do(t, http.MethodPost, "/api/v1/meal-plans/generate", map[string]any{
		"health_goal": "heart_health",
		"meal_times":  []string{"lunch", "dinner"},
		"archive":     true,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	plan := decode[service.GeneratedPlan](t, w)
	assert.Equal(t, "https://plans.example.com/heart_health", plan.ArchiveURL)
	require.Len(t, archive.archived, 1)
}

func TestGeneratePlanArchiveNotConfigured(t *testing.T) {
	env := setupTestEnv(t, nil)

	w := env.do(t, http.MethodPost, "/api/v1/meal-plans/generate", map[string]any{
		"health_goal": "maintenance",
		"meal_times":  []string{"lunch"},
		"archive":     true,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), service.ErrArchiveDisabled.Error())
}

func TestGeneratePlanInsufficientCandidates(t *testing.T) {
	env := setupTestEnv(t, nil)

	w := env.do(t, http.MethodPost, "/api/v1/meal-plans/generate", map[string]any{
		"health_goal":          "maintenance",
		"meal_times":           []string{"breakfast", "lunch", "dinner"},
		"dietary_restrictions": []string{"vegan"},
	})
	require.Equal(t, http.StatusUnprocessableEntity, w.Code, w.Body.String())

	resp := decode[InsufficientCandidatesResponse](t, w)
	assert.Equal(t, 9, resp.Found)
	assert.Equal(t, 20, resp.Required)
	assert.Contains(t, resp.Error, "only 9 meals match")
}

func TestGeneratePlanBadRequests(t *testing.T) {
	env := setupTestEnv(t, nil)

	tests := []struct {
		name string
		body map[string]any
	}{
		{"missing goal", map[string]any{"meal_times": []string{"lunch"}}},
		{"missing meal times", map[string]any{"health_goal": "maintenance"}},
		{"empty meal times", map[string]any{"health_goal": "maintenance", "meal_times": []string{}}},
		{"unknown goal", map[string]any{"health_goal": "bulking", "meal_times": []string{"lunch"}}},
		{"unknown meal time", map[string]any{"health_goal": "maintenance", "meal_times": []string{"brunch"}}},
		{"duplicate meal time", map[string]any{"health_goal": "maintenance", "meal_times": []string{"lunch", "LUNCH"}}},
		{"zero weeks", map[string]any{"health_goal": "maintenance", "meal_times": []string{"lunch"}, "duration_weeks": 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := env.do(t, http.MethodPost, "/api/v1/meal-plans/generate", tt.body)
			assert.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
		})
	}
}

func TestGeneratePlanInternalError(t *testing.T) {
	plans := new(MockPlanService)
	plans.On("GeneratePlan", mock.Anything, mock.Anything, false).
		Return(nil, errors.New("failed to load meal catalog: connection reset"))
	env := setupTestEnv(t, nil, withPlans(plans))

	w := env.do(t, http.MethodPost, "/api/v1/meal-plans/generate", map[string]any{
		"health_goal": "weight_loss",
		"meal_times":  []string{"dinner"},
	})
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"failed to generate meal plan"}`, w.Body.String())
	plans.AssertExpectations(t)
}

func TestGeneratePlanRateLimited(t *testing.T) {
	limiter := middleware.NewRateLimiter(&countingStore{}, middleware.RateLimitConfig{
		Window:    time.Hour,
		Limit:     1,
		KeyPrefix: "test:plans",
	}, nil)
	env := setupTestEnv(t, nil, withLimiter(limiter))
	body := map[string]any{"health_goal": "maintenance", "meal_times": []string{"lunch"}}

	first := env.do(t, http.MethodPost, "/api/v1/meal-plans/generate", body)
	assert.Equal(t, http.StatusOK, first.Code, first.Body.String())

	second := env.do(t, http.MethodPost, "/api/v1/meal-plans/generate", body)
	assert.Equal(t, http.StatusTooManyRequests, second.Code)
}

package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pageza/mealmatch/backend/internal/mealplan"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockObjectStore struct {
	mock.Mock
}

func (m *MockObjectStore) PutJSON(ctx context.Context, objectKey string, body []byte) error {
	return m.Called(ctx, objectKey, body).Error(0)
}

func (m *MockObjectStore) GeneratePresignedURL(ctx context.Context, objectKey string, expiration time.Duration) (string, error) {
	args := m.Called(ctx, objectKey, expiration)
	return args.String(0), args.Error(1)
}

func TestArchivePlan(t *testing.T) {
	id := uuid.MustParse("3b241101-e2bb-4255-8caf-4136c566a962")
	key := "meal-plans/weight_loss/3b241101-e2bb-4255-8caf-4136c566a962.json"
	result := &mealplan.PlanResult{
		Preferences: mealplan.UserPreferences{HealthGoal: mealplan.GoalWeightLoss, DurationWeeks: 1},
	}

	store := new(MockObjectStore)
	store.On("PutJSON", mock.Anything, key, mock.MatchedBy(func(body []byte) bool {
		var decoded mealplan.PlanResult
		return json.Unmarshal(body, &decoded) == nil && decoded.Preferences.HealthGoal == mealplan.GoalWeightLoss
	})).Return(nil)
	store.On("GeneratePresignedURL", mock.Anything, key, time.Hour).Return("https://s3.example.com/signed", nil)

	archive := NewObjectPlanArchive(store, time.Hour)
	archive.newID = func() uuid.UUID { return id }

	url, err := archive.ArchivePlan(context.Background(), result)
	require.NoError(t, err)
	assert.Equal(t, "https://s3.example.com/signed", url)
	store.AssertExpectations(t)
}

func TestArchivePlanUploadFailure(t *testing.T) {
	store := new(MockObjectStore)
	store.On("PutJSON", mock.Anything, mock.Anything, mock.Anything).Return(errors.New("no such bucket"))

	archive := NewObjectPlanArchive(store, 0)
	assert.Equal(t, DefaultArchiveURLExpiry, archive.expiry)

	_, err := archive.ArchivePlan(context.Background(), &mealplan.PlanResult{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no such bucket")
	store.AssertNotCalled(t, "GeneratePresignedURL", mock.Anything, mock.Anything, mock.Anything)
}

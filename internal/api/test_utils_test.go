package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pageza/mealmatch/backend/internal/database"
	"github.com/pageza/mealmatch/backend/internal/logger"
	"github.com/pageza/mealmatch/backend/internal/mealplan"
	"github.com/pageza/mealmatch/backend/internal/middleware"
	"github.com/pageza/mealmatch/backend/internal/service"
	"github.com/pageza/mealmatch/backend/internal/testhelpers"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// testEnv is a router backed by a seeded SQLite catalog
type testEnv struct {
	router  *gin.Engine
	db      *gorm.DB
	catalog *service.CatalogService
}

type testEnvOption func(*Dependencies)

func withPlans(plans service.IPlanService) testEnvOption {
	return func(d *Dependencies) { d.Plans = plans }
}

func withLimiter(rl *middleware.RateLimiter) testEnvOption {
	return func(d *Dependencies) { d.PlanLimiter = rl }
}

func setupTestEnv(t *testing.T, archive service.PlanArchive, opts ...testEnvOption) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := testhelpers.SetupSQLiteDB(t)
	meals, err := database.SampleMeals()
	require.NoError(t, err)
	_, err = database.SeedCatalog(context.Background(), db, meals)
	require.NoError(t, err)

	log := logger.NewNop()
	catalog := service.NewCatalogService(db, log)
	planner := mealplan.NewPlanner(catalog, log)

	deps := Dependencies{
		Catalog: catalog,
		Plans:   service.NewPlanService(planner, archive, log),
		Log:     log,
	}
	for _, opt := range opts {
		opt(&deps)
	}

	router := gin.New()
	router.Use(middleware.ErrorHandler())
	RegisterRoutes(router, deps)

	return &testEnv{router: router, db: db, catalog: catalog}
}

func (e *testEnv) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

// MockPlanService is a testify mock of service.IPlanService
type MockPlanService struct {
	mock.Mock
}

func (m *MockPlanService) GeneratePlan(ctx context.Context, prefs mealplan.UserPreferences, archive bool) (*service.GeneratedPlan, error) {
	args := m.Called(ctx, prefs, archive)
	if plan, ok := args.Get(0).(*service.GeneratedPlan); ok {
		return plan, args.Error(1)
	}
	return nil, args.Error(1)
}

// fakeArchive records archived plans and hands back a fixed URL
type fakeArchive struct {
	archived []*mealplan.PlanResult
	err      error
}

func (f *fakeArchive) ArchivePlan(_ context.Context, result *mealplan.PlanResult) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.archived = append(f.archived, result)
	return "https://plans.example.com/" + string(result.Preferences.HealthGoal), nil
}

// countingStore is an in-memory middleware.Counter
type countingStore struct {
	counts map[string]int64
}

func (c *countingStore) Incr(_ context.Context, key string, _ time.Duration) (int64, error) {
	if c.counts == nil {
		c.counts = map[string]int64{}
	}
	c.counts[key]++
	return c.counts[key], nil
}

package database

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/pageza/mealmatch/backend/config"
	"github.com/pageza/mealmatch/backend/internal/logger"
	"github.com/pageza/mealmatch/backend/internal/mealplan"
	"github.com/pageza/mealmatch/backend/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenSQLiteAndSeed(t *testing.T) {
	cfg := &config.Config{
		DBDriver:   config.DriverSQLite,
		SQLitePath: filepath.Join(t.TempDir(), "catalog.db"),
	}
	log := logger.NewNop()

	db, err := Open(cfg, log)
	require.NoError(t, err)
	require.NoError(t, RunMigrations(db, log))

	meals, err := SampleMeals()
	require.NoError(t, err)

	created, err := SeedCatalog(context.Background(), db, meals)
	require.NoError(t, err)
	assert.Equal(t, len(meals), created)

	// seeding again is a no-op
	again, err := SampleMeals()
	require.NoError(t, err)
	created, err = SeedCatalog(context.Background(), db, again)
	require.NoError(t, err)
	assert.Zero(t, created)

	var count int64
	require.NoError(t, db.Model(&model.CustomMeal{}).Count(&count).Error)
	assert.Equal(t, int64(len(meals)), count)
}

func TestSampleMealsCoverEveryMealTime(t *testing.T) {
	meals, err := SampleMeals()
	require.NoError(t, err)

	perTime := map[mealplan.MealTime]int{}
	for i := range meals {
		c, err := meals[i].ToCandidate()
		require.NoError(t, err)
		perTime[c.Category]++
		assert.NotEmpty(t, c.Ingredients, meals[i].Name)
	}
	for _, mt := range []mealplan.MealTime{mealplan.Breakfast, mealplan.Lunch, mealplan.Dinner, mealplan.Snack} {
		assert.Positive(t, perTime[mt], mt)
	}
}

func TestParseIngredients(t *testing.T) {
	got := parseIngredients("oats, milk ,?honey,")
	require.Len(t, got, 3)
	assert.Equal(t, "milk", got[1].Name)
	assert.False(t, got[1].Optional)
	assert.Equal(t, "honey", got[2].Name)
	assert.True(t, got[2].Optional)
}

func TestOpenUnsupportedDriver(t *testing.T) {
	_, err := Open(&config.Config{DBDriver: "mysql"}, logger.NewNop())
	assert.Error(t, err)
}

func TestPostgresDSN(t *testing.T) {
	cfg := &config.Config{DBHost: "db", DBPort: "5432", DBUser: "u", DBPassword: "p", DBName: "meals"}
	assert.Equal(t, "host=db port=5432 user=u password=p dbname=meals sslmode=disable", PostgresDSN(cfg))
}

func TestRedisOptions(t *testing.T) {
	opts, err := RedisOptions(&config.Config{RedisHost: "cache", RedisPort: "6380", RedisPassword: "pw", RedisDB: 2})
	require.NoError(t, err)
	assert.Equal(t, "cache:6380", opts.Addr)
	assert.Equal(t, 2, opts.DB)

	opts, err = RedisOptions(&config.Config{RedisHost: "ignored", RedisURL: "redis://:secret@localhost:6379/1"})
	require.NoError(t, err)
	assert.Equal(t, "localhost:6379", opts.Addr)
	assert.Equal(t, "secret", opts.Password)
	assert.Equal(t, 1, opts.DB)

	_, err = RedisOptions(&config.Config{RedisURL: "not-a-url://x"})
	assert.Error(t, err)
}

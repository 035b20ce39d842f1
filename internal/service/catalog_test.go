package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/pageza/mealmatch/backend/internal/mealplan"
	"github.com/pageza/mealmatch/backend/internal/model"
	"github.com/pageza/mealmatch/backend/internal/testhelpers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

func createMeal(t *testing.T, svc *CatalogService, name, category string, mutate ...func(*model.CustomMeal)) *model.CustomMeal {
	t.Helper()
	meal := &model.CustomMeal{
		Name:         name,
		Category:     category,
		Calories:     550,
		Protein:      30,
		IsActive:     true,
		PlanEligible: true,
	}
	require.NoError(t, meal.SetIngredients([]mealplan.Ingredient{{Name: "rice", Category: "grain"}}))
	for _, m := range mutate {
		m(meal)
	}
	created, err := svc.CreateMeal(context.Background(), meal)
	require.NoError(t, err)
	return created
}

func newCatalog(t *testing.T) (*CatalogService, *gorm.DB) {
	db := testhelpers.SetupSQLiteDB(t)
	return NewCatalogService(db, nil), db
}

func TestCatalogCreateAndGet(t *testing.T) {
	svc, _ := newCatalog(t)

	created := createMeal(t, svc, "Rice Bowl", " Lunch ")
	assert.NotEqual(t, uuid.Nil, created.ID)
	assert.Equal(t, "lunch", created.Category)

	got, err := svc.GetMeal(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Rice Bowl", got.Name)

	_, err = svc.GetMeal(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrMealNotFound)
}

func TestCatalogListEligibleMeals(t *testing.T) {
	svc, db := newCatalog(t)
	ctx := context.Background()

	createMeal(t, svc, "Active", "lunch")
	createMeal(t, svc, "Retired", "lunch", func(m *model.CustomMeal) { m.IsActive = false })
	createMeal(t, svc, "A la carte", "dinner", func(m *model.CustomMeal) { m.PlanEligible = false })
	broken := createMeal(t, svc, "Broken", "dinner")
	require.NoError(t, db.Model(&model.CustomMeal{}).Where("id = ?", broken.ID).
		Update("detailed_ingredients", datatypes.JSON(`{not json`)).Error)

	all, err := svc.ListEligibleMeals(ctx, mealplan.CatalogCriteria{})
	require.NoError(t, err)
	assert.Len(t, all, 3)

	eligible, err := svc.ListEligibleMeals(ctx, mealplan.CatalogCriteria{ActiveOnly: true, PlanEligibleOnly: true})
	require.NoError(t, err)
	require.Len(t, eligible, 1)
	assert.Equal(t, "Active", eligible[0].Name)
	assert.Equal(t, mealplan.Lunch, eligible[0].Category)
	require.Len(t, eligible[0].Ingredients, 1)
}

func TestCatalogListMealsAndDeactivate(t *testing.T) {
	svc, _ := newCatalog(t)
	ctx := context.Background()

	lunch := createMeal(t, svc, "Soup", "lunch")
	createMeal(t, svc, "Steak", "dinner")

	lunches, err := svc.ListMeals(ctx, MealFilter{Category: "LUNCH", ActiveOnly: true})
	require.NoError(t, err)
	require.Len(t, lunches, 1)
	assert.Equal(t, lunch.ID, lunches[0].ID)

	require.NoError(t, svc.DeactivateMeal(ctx, lunch.ID))
	assert.ErrorIs(t, svc.DeactivateMeal(ctx, uuid.New()), ErrMealNotFound)

	active, err := svc.ListMeals(ctx, MealFilter{ActiveOnly: true})
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, "Steak", active[0].Name)

	all, err := svc.ListMeals(ctx, MealFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

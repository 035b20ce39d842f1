package service

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/pageza/mealmatch/backend/internal/logger"
	"github.com/pageza/mealmatch/backend/internal/mealplan"
	"github.com/pageza/mealmatch/backend/internal/model"
	"gorm.io/gorm"
)

// ErrMealNotFound is returned when a catalog meal does not exist
var ErrMealNotFound = errors.New("meal not found")

// MealFilter narrows ListMeals
type MealFilter struct {
	Category   string
	ActiveOnly bool
}

// CatalogService handles custom meal catalog operations
type CatalogService struct {
	db  *gorm.DB
	log *logger.Logger
}

// NewCatalogService creates a new CatalogService instance
func NewCatalogService(db *gorm.DB, log *logger.Logger) *CatalogService {
	if log == nil {
		log = logger.NewNop()
	}
	return &CatalogService{
		db:  db,
		log: log,
	}
}

// ListEligibleMeals returns the catalog snapshot a planning run works on.
// Rows whose ingredient breakdown cannot be decoded are left out.
func (s *CatalogService) ListEligibleMeals(ctx context.Context, criteria mealplan.CatalogCriteria) ([]mealplan.CandidateMeal, error) {
	query := s.db.WithContext(ctx).Model(&model.CustomMeal{})
	if criteria.ActiveOnly {
		query = query.Where("is_active = ?", true)
	}
	if criteria.PlanEligibleOnly {
		query = query.Where("plan_eligible = ?", true)
	}

	var meals []model.CustomMeal
	if err := query.Order("created_at ASC, id ASC").Find(&meals).Error; err != nil {
		return nil, err
	}

	out := make([]mealplan.CandidateMeal, 0, len(meals))
	for i := range meals {
		candidate, err := meals[i].ToCandidate()
		if err != nil {
			s.log.Warn("skipping meal with unreadable ingredients", "meal_id", meals[i].ID, "error", err)
			continue
		}
		out = append(out, candidate)
	}
	return out, nil
}

// CreateMeal creates a new catalog meal
func (s *CatalogService) CreateMeal(ctx context.Context, meal *model.CustomMeal) (*model.CustomMeal, error) {
	meal.Category = strings.ToLower(strings.TrimSpace(meal.Category))
	if err := s.db.WithContext(ctx).Create(meal).Error; err != nil {
		return nil, err
	}
	return meal, nil
}

// GetMeal retrieves a catalog meal by ID
func (s *CatalogService) GetMeal(ctx context.Context, id uuid.UUID) (*model.CustomMeal, error) {
	var meal model.CustomMeal
	if err := s.db.WithContext(ctx).First(&meal, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMealNotFound
		}
		return nil, err
	}
	return &meal, nil
}

// ListMeals lists catalog meals matching filter
func (s *CatalogService) ListMeals(ctx context.Context, filter MealFilter) ([]*model.CustomMeal, error) {
	var meals []model.CustomMeal
	query := s.db.WithContext(ctx)
	if filter.Category != "" {
		query = query.Where("category = ?", strings.ToLower(filter.Category))
	}
	if filter.ActiveOnly {
		query = query.Where("is_active = ?", true)
	}
	if err := query.Order("created_at ASC, id ASC").Find(&meals).Error; err != nil {
		return nil, err
	}
	// Convert to []*model.CustomMeal
	result := make([]*model.CustomMeal, len(meals))
	for i := range meals {
		result[i] = &meals[i]
	}
	return result, nil
}

// DeactivateMeal removes a meal from future plans without deleting it
func (s *CatalogService) DeactivateMeal(ctx context.Context, id uuid.UUID) error {
	res := s.db.WithContext(ctx).Model(&model.CustomMeal{}).Where("id = ?", id).Update("is_active", false)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrMealNotFound
	}
	return nil
}

package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/pageza/mealmatch/backend/internal/mealplan"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// JSONBStringArray is a custom type for handling string arrays in JSONB
type JSONBStringArray []string

// Value implements the driver.Valuer interface
func (a JSONBStringArray) Value() (driver.Value, error) {
	if len(a) == 0 {
		return "[]", nil
	}
	b, err := json.Marshal(a)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan implements the sql.Scanner interface
func (a *JSONBStringArray) Scan(value interface{}) error {
	if value == nil {
		*a = JSONBStringArray{}
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return fmt.Errorf("unsupported JSONBStringArray source %T", value)
	}

	return json.Unmarshal(bytes, a)
}

// CustomMeal is a catalog meal a subscriber plan can be built from.
type CustomMeal struct {
	ID                  uuid.UUID        `gorm:"type:uuid;primary_key" json:"id"`
	CreatedAt           time.Time        `json:"created_at"`
	UpdatedAt           time.Time        `json:"updated_at"`
	DeletedAt           gorm.DeletedAt   `gorm:"index" json:"-"`
	Name                string           `gorm:"size:255;not null" json:"name"`
	Description         string           `gorm:"type:text" json:"description"`
	Category            string           `gorm:"size:20;not null;index" json:"category"`
	Calories            float64          `gorm:"type:float" json:"calories"`
	Protein             float64          `gorm:"type:float" json:"protein"`
	Carbs               float64          `gorm:"type:float" json:"carbs"`
	Fat                 float64          `gorm:"type:float" json:"fat"`
	Fiber               float64          `gorm:"type:float" json:"fiber"`
	Sugar               float64          `gorm:"type:float" json:"sugar"`
	Allergens           JSONBStringArray `gorm:"type:jsonb;not null;default:'[]'" json:"allergens"`
	DietaryTags         JSONBStringArray `gorm:"type:jsonb;not null;default:'[]'" json:"dietary_tags"`
	HealthGoals         JSONBStringArray `gorm:"type:jsonb;not null;default:'[]'" json:"health_goals"`
	PreparationMethod   string           `gorm:"size:30" json:"preparation_method"`
	GlycemicIndex       string           `gorm:"size:10" json:"glycemic_index"`
	DetailedIngredients datatypes.JSON   `gorm:"type:jsonb" json:"detailed_ingredients"`
	Price               float64          `gorm:"type:float" json:"price"`
	IsActive            bool             `gorm:"not null;index" json:"is_active"`
	PlanEligible        bool             `gorm:"not null;index" json:"plan_eligible"`
}

func (CustomMeal) TableName() string {
	return "custom_meals"
}

// BeforeCreate assigns an id when the caller did not.
func (m *CustomMeal) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

// Ingredients decodes the detailed ingredient breakdown. An empty column
// yields no ingredients.
func (m *CustomMeal) Ingredients() ([]mealplan.Ingredient, error) {
	if len(m.DetailedIngredients) == 0 {
		return nil, nil
	}
	var out []mealplan.Ingredient
	if err := json.Unmarshal(m.DetailedIngredients, &out); err != nil {
		return nil, fmt.Errorf("decode ingredients of meal %s: %w", m.ID, err)
	}
	return out, nil
}

// SetIngredients encodes ingredients into the detailed breakdown column.
func (m *CustomMeal) SetIngredients(ingredients []mealplan.Ingredient) error {
	if len(ingredients) == 0 {
		m.DetailedIngredients = nil
		return nil
	}
	b, err := json.Marshal(ingredients)
	if err != nil {
		return err
	}
	m.DetailedIngredients = datatypes.JSON(b)
	return nil
}

// ToCandidate converts the row to the planner's read-only meal shape.
func (m *CustomMeal) ToCandidate() (mealplan.CandidateMeal, error) {
	ingredients, err := m.Ingredients()
	if err != nil {
		return mealplan.CandidateMeal{}, err
	}
	goals := make([]mealplan.HealthGoal, len(m.HealthGoals))
	for i, g := range m.HealthGoals {
		goals[i] = mealplan.HealthGoal(g)
	}
	return mealplan.CandidateMeal{
		ID:       m.ID.String(),
		Name:     m.Name,
		Category: mealplan.MealTime(m.Category),
		Nutrition: mealplan.Nutrition{
			Calories: m.Calories,
			Protein:  m.Protein,
			Carbs:    m.Carbs,
			Fat:      m.Fat,
			Fiber:    m.Fiber,
			Sugar:    m.Sugar,
		},
		Allergens:         []string(m.Allergens),
		DietaryTags:       []string(m.DietaryTags),
		HealthGoals:       goals,
		PreparationMethod: mealplan.PreparationMethod(m.PreparationMethod),
		GlycemicIndex:     mealplan.GlycemicIndex(m.GlycemicIndex),
		Ingredients:       ingredients,
	}, nil
}

package database

import (
	"context"
	"fmt"
	"strings"

	"github.com/pageza/mealmatch/backend/internal/mealplan"
	"github.com/pageza/mealmatch/backend/internal/model"
	"gorm.io/gorm"
)

type sampleMeal struct {
	name      string
	category  string
	nutrition mealplan.Nutrition
	allergens []string
	dietary   []string
	goals     []string
	prep      string
	glycemic  string
	price     float64
	// comma separated; a leading "?" marks an ingredient that can be omitted
	ingredients string
}

var sampleMeals = []sampleMeal{
	{"Overnight Oats with Berries", "breakfast", mealplan.Nutrition{Calories: 690, Protein: 28, Carbs: 98, Fat: 18, Fiber: 12, Sugar: 14}, []string{"dairy"}, []string{"vegetarian"}, nil, "raw", "low", 9.5, "oats,milk,blueberries,?honey"},
	{"Veggie Omelette", "breakfast", mealplan.Nutrition{Calories: 720, Protein: 42, Carbs: 30, Fat: 44, Fiber: 6, Sugar: 6}, []string{"eggs", "dairy"}, []string{"vegetarian", "gluten-free"}, nil, "baked", "low", 10, "eggs,spinach,peppers,?feta"},
	{"Greek Yogurt Parfait", "breakfast", mealplan.Nutrition{Calories: 610, Protein: 36, Carbs: 78, Fat: 14, Fiber: 8, Sugar: 22}, []string{"dairy", "tree_nuts"}, []string{"vegetarian", "gluten-free"}, nil, "raw", "medium", 8.5, "greek yogurt,granola,strawberries,?almonds"},
	{"Tofu Scramble", "breakfast", mealplan.Nutrition{Calories: 700, Protein: 38, Carbs: 52, Fat: 34, Fiber: 9, Sugar: 5}, []string{"soy"}, []string{"vegan", "vegetarian", "gluten-free", "dairy-free"}, []string{"heart_health", "maintenance", "weight_loss"}, "grilled", "low", 9.75, "tofu,turmeric,kale,potatoes"},
	{"Avocado Toast with Egg", "breakfast", mealplan.Nutrition{Calories: 740, Protein: 30, Carbs: 68, Fat: 38, Fiber: 14, Sugar: 4}, []string{"eggs", "gluten"}, []string{"vegetarian"}, nil, "baked", "medium", 9, "sourdough,avocado,eggs,?cilantro"},
	{"Protein Pancakes", "breakfast", mealplan.Nutrition{Calories: 760, Protein: 48, Carbs: 92, Fat: 18, Fiber: 5, Sugar: 18}, []string{"eggs", "gluten", "dairy"}, []string{"vegetarian"}, []string{"muscle_gain", "maintenance"}, "baked", "high", 10.5, "flour,whey,eggs,banana,?maple syrup"},
	{"Chia Coconut Pudding", "breakfast", mealplan.Nutrition{Calories: 650, Protein: 18, Carbs: 60, Fat: 38, Fiber: 18, Sugar: 12}, nil, []string{"vegan", "vegetarian", "gluten-free", "dairy-free"}, nil, "raw", "low", 8, "chia seeds,coconut milk,mango"},
	{"Breakfast Burrito", "breakfast", mealplan.Nutrition{Calories: 780, Protein: 40, Carbs: 74, Fat: 34, Fiber: 10, Sugar: 4}, []string{"eggs", "gluten", "dairy"}, nil, []string{"muscle_gain", "maintenance"}, "grilled", "medium", 11, "tortilla,eggs,black beans,cheddar,?salsa"},

	{"Grilled Chicken Quinoa Bowl", "lunch", mealplan.Nutrition{Calories: 720, Protein: 52, Carbs: 70, Fat: 22, Fiber: 9, Sugar: 6}, nil, []string{"gluten-free", "dairy-free"}, nil, "grilled", "low", 13.5, "chicken breast,quinoa,cucumber,?tahini"},
	{"Lentil Soup with Greens", "lunch", mealplan.Nutrition{Calories: 640, Protein: 32, Carbs: 88, Fat: 14, Fiber: 20, Sugar: 7}, nil, []string{"vegan", "vegetarian", "gluten-free", "dairy-free"}, []string{"diabetes_management", "heart_health", "weight_loss", "maintenance"}, "boiled", "low", 10.5, "lentils,carrots,celery,kale"},
	{"Turkey Club Wrap", "lunch", mealplan.Nutrition{Calories: 760, Protein: 46, Carbs: 66, Fat: 32, Fiber: 6, Sugar: 5}, []string{"gluten", "dairy"}, nil, nil, "raw", "medium", 12, "tortilla,turkey,bacon,lettuce,?mayonnaise"},
	{"Falafel Mezze Plate", "lunch", mealplan.Nutrition{Calories: 780, Protein: 26, Carbs: 84, Fat: 38, Fiber: 16, Sugar: 8}, []string{"sesame", "gluten"}, []string{"vegan", "vegetarian", "dairy-free"}, nil, "fried", "medium", 12.5, "chickpeas,tahini,pita,tomato,?parsley"},
	{"Salmon Poke Bowl", "lunch", mealplan.Nutrition{Calories: 700, Protein: 40, Carbs: 76, Fat: 24, Fiber: 7, Sugar: 9}, []string{"fish", "soy", "sesame"}, []string{"dairy-free"}, []string{"heart_health", "maintenance", "muscle_gain"}, "raw", "medium", 15, "salmon,rice,edamame,seaweed,soy sauce"},
	{"Black Bean Burrito Bowl", "lunch", mealplan.Nutrition{Calories: 730, Protein: 28, Carbs: 104, Fat: 20, Fiber: 22, Sugar: 6}, []string{"dairy"}, []string{"vegetarian", "gluten-free"}, nil, "steamed", "low", 11, "black beans,rice,corn,cheddar,?cilantro"},
	{"Thai Peanut Noodles", "lunch", mealplan.Nutrition{Calories: 790, Protein: 30, Carbs: 96, Fat: 32, Fiber: 8, Sugar: 14}, []string{"peanuts", "soy", "gluten"}, []string{"vegan", "vegetarian", "dairy-free"}, nil, "boiled", "high", 11.5, "noodles,peanut butter,cabbage,tofu,?lime"},
	{"Mediterranean Chickpea Salad", "lunch", mealplan.Nutrition{Calories: 660, Protein: 24, Carbs: 72, Fat: 30, Fiber: 18, Sugar: 9}, []string{"dairy"}, []string{"vegetarian", "gluten-free"}, []string{"heart_health", "weight_loss", "diabetes_management", "maintenance"}, "raw", "low", 10, "chickpeas,cucumber,olives,feta,?red onion"},

	{"Herb Roasted Chicken with Vegetables", "dinner", mealplan.Nutrition{Calories: 740, Protein: 56, Carbs: 48, Fat: 32, Fiber: 9, Sugar: 8}, nil, []string{"gluten-free", "dairy-free"}, nil, "roasted", "low", 15, "chicken thighs,carrots,potatoes,rosemary"},
	{"Baked Cod with Quinoa", "dinner", mealplan.Nutrition{Calories: 680, Protein: 48, Carbs: 64, Fat: 20, Fiber: 8, Sugar: 4}, []string{"fish"}, []string{"gluten-free", "dairy-free"}, []string{"heart_health", "weight_loss", "diabetes_management", "maintenance"}, "baked", "low", 16, "cod,quinoa,asparagus,lemon"},
	{"Beef and Broccoli Stir Fry", "dinner", mealplan.Nutrition{Calories: 790, Protein: 50, Carbs: 70, Fat: 30, Fiber: 6, Sugar: 10}, []string{"soy"}, []string{"dairy-free"}, []string{"muscle_gain", "maintenance"}, "grilled", "medium", 15.5, "beef sirloin,broccoli,rice,soy sauce,?sesame seeds"},
	{"Vegetable Lasagna", "dinner", mealplan.Nutrition{Calories: 760, Protein: 34, Carbs: 82, Fat: 30, Fiber: 10, Sugar: 12}, []string{"gluten", "dairy", "eggs"}, []string{"vegetarian"}, nil, "baked", "medium", 13, "pasta,ricotta,zucchini,tomato sauce"},
	{"Shrimp Tacos", "dinner", mealplan.Nutrition{Calories: 710, Protein: 38, Carbs: 74, Fat: 26, Fiber: 9, Sugar: 6}, []string{"shellfish"}, []string{"dairy-free"}, nil, "grilled", "medium", 14.5, "shrimp,corn tortillas,cabbage,lime,?cilantro"},
	{"Chickpea Coconut Curry", "dinner", mealplan.Nutrition{Calories: 750, Protein: 24, Carbs: 90, Fat: 32, Fiber: 18, Sugar: 11}, nil, []string{"vegan", "vegetarian", "gluten-free", "dairy-free"}, nil, "boiled", "medium", 12, "chickpeas,coconut milk,spinach,rice"},
	{"Turkey Meatballs with Zoodles", "dinner", mealplan.Nutrition{Calories: 620, Protein: 46, Carbs: 30, Fat: 30, Fiber: 8, Sugar: 9}, []string{"eggs"}, []string{"gluten-free", "dairy-free"}, []string{"weight_loss", "diabetes_management", "maintenance"}, "baked", "low", 14, "ground turkey,zucchini,tomato sauce,eggs"},
	{"Crispy Fried Chicken Plate", "dinner", mealplan.Nutrition{Calories: 980, Protein: 52, Carbs: 78, Fat: 50, Fiber: 4, Sugar: 6}, []string{"gluten", "eggs", "dairy"}, nil, []string{"muscle_gain"}, "fried", "high", 13.5, "chicken,flour,buttermilk,coleslaw"},

	{"Apple with Almond Butter", "snack", mealplan.Nutrition{Calories: 280, Protein: 7, Carbs: 30, Fat: 16, Fiber: 7, Sugar: 19}, []string{"tree_nuts"}, []string{"vegan", "vegetarian", "gluten-free", "dairy-free"}, nil, "raw", "low", 4, "apple,almond butter"},
	{"Hummus and Veggie Sticks", "snack", mealplan.Nutrition{Calories: 240, Protein: 8, Carbs: 26, Fat: 12, Fiber: 8, Sugar: 5}, []string{"sesame"}, []string{"vegan", "vegetarian", "gluten-free", "dairy-free"}, nil, "raw", "low", 4.5, "chickpeas,tahini,carrots,cucumber"},
	{"Cottage Cheese Bowl", "snack", mealplan.Nutrition{Calories: 260, Protein: 26, Carbs: 16, Fat: 8, Fiber: 2, Sugar: 12}, []string{"dairy"}, []string{"vegetarian", "gluten-free"}, []string{"muscle_gain", "weight_loss", "maintenance"}, "raw", "low", 4, "cottage cheese,pineapple"},
	{"Roasted Chickpeas", "snack", mealplan.Nutrition{Calories: 220, Protein: 10, Carbs: 30, Fat: 6, Fiber: 9, Sugar: 2}, nil, []string{"vegan", "vegetarian", "gluten-free", "dairy-free"}, nil, "roasted", "low", 3.5, "chickpeas,paprika,olive oil"},
}

// SampleMeals returns the built-in catalog used for seeding and tests.
func SampleMeals() ([]model.CustomMeal, error) {
	meals := make([]model.CustomMeal, 0, len(sampleMeals))
	for _, s := range sampleMeals {
		m := model.CustomMeal{
			Name:              s.name,
			Description:       fmt.Sprintf("%s, %s", s.name, s.prep),
			Category:          s.category,
			Calories:          s.nutrition.Calories,
			Protein:           s.nutrition.Protein,
			Carbs:             s.nutrition.Carbs,
			Fat:               s.nutrition.Fat,
			Fiber:             s.nutrition.Fiber,
			Sugar:             s.nutrition.Sugar,
			Allergens:         model.JSONBStringArray(s.allergens),
			DietaryTags:       model.JSONBStringArray(s.dietary),
			HealthGoals:       model.JSONBStringArray(s.goals),
			PreparationMethod: s.prep,
			GlycemicIndex:     s.glycemic,
			Price:             s.price,
			IsActive:          true,
			PlanEligible:      true,
		}
		if err := m.SetIngredients(parseIngredients(s.ingredients)); err != nil {
			return nil, fmt.Errorf("sample meal %q: %w", s.name, err)
		}
		meals = append(meals, m)
	}
	return meals, nil
}

func parseIngredients(list string) []mealplan.Ingredient {
	var out []mealplan.Ingredient
	for _, raw := range strings.Split(list, ",") {
		name := strings.TrimSpace(raw)
		if name == "" {
			continue
		}
		optional := strings.HasPrefix(name, "?")
		out = append(out, mealplan.Ingredient{
			Name:     strings.TrimPrefix(name, "?"),
			Category: "ingredient",
			Optional: optional,
		})
	}
	return out
}

// SeedCatalog inserts meals that are not already present by name and
// returns how many were created.
func SeedCatalog(ctx context.Context, db *gorm.DB, meals []model.CustomMeal) (int, error) {
	created := 0
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for i := range meals {
			var count int64
			if err := tx.Model(&model.CustomMeal{}).Where("name = ?", meals[i].Name).Count(&count).Error; err != nil {
				return err
			}
			if count > 0 {
				continue
			}
			if err := tx.Create(&meals[i]).Error; err != nil {
				return fmt.Errorf("failed to seed %q: %w", meals[i].Name, err)
			}
			created++
		}
		return nil
	})
	return created, err
}

package api

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/pageza/mealmatch/backend/internal/logger"
	"github.com/pageza/mealmatch/backend/internal/mealplan"
	"github.com/pageza/mealmatch/backend/internal/model"
	"github.com/pageza/mealmatch/backend/internal/service"
)

// MealHandler serves the custom meal catalog
type MealHandler struct {
	catalog service.ICatalogService
	log     *logger.Logger
}

func NewMealHandler(catalog service.ICatalogService, log *logger.Logger) *MealHandler {
	if log == nil {
		log = logger.NewNop()
	}
	return &MealHandler{catalog: catalog, log: log}
}

func (h *MealHandler) RegisterRoutes(router *gin.RouterGroup) {
	meals := router.Group("/meals")
	{
		meals.GET("", h.ListMeals)
		meals.GET("/:id", h.GetMeal)
		meals.POST("", h.CreateMeal)
		meals.DELETE("/:id", h.DeactivateMeal)
	}
}

func (h *MealHandler) ListMeals(c *gin.Context) {
	filter := service.MealFilter{
		Category:   c.Query("category"),
		ActiveOnly: c.Query("include_inactive") != "true",
	}
	if filter.Category != "" {
		if _, err := mealplan.ParseMealTime(filter.Category); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}

	meals, err := h.catalog.ListMeals(c.Request.Context(), filter)
	if err != nil {
		h.log.Error("failed to list meals", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch meals"})
		return
	}

	c.JSON(http.StatusOK, MealListResponse{Meals: meals, Count: len(meals)})
}

func (h *MealHandler) GetMeal(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid meal id"})
		return
	}

	meal, err := h.catalog.GetMeal(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrMealNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Meal not found"})
			return
		}
		h.log.Error("failed to fetch meal", "meal_id", id, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch meal"})
		return
	}

	ingredients, err := meal.Ingredients()
	if err != nil {
		h.log.Warn("meal has unreadable ingredients", "meal_id", id, "error", err)
	}
	c.JSON(http.StatusOK, MealResponse{Meal: meal, Ingredients: ingredients})
}

func (h *MealHandler) CreateMeal(c *gin.Context) {
	var req CreateMealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	meal, err := req.toModel()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid meal", "details": err.Error()})
		return
	}

	created, err := h.catalog.CreateMeal(c.Request.Context(), meal)
	if err != nil {
		h.log.Error("failed to create meal", "name", req.Name, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create meal"})
		return
	}

	c.JSON(http.StatusCreated, MealResponse{Meal: created, Ingredients: req.Ingredients})
}

func (h *MealHandler) DeactivateMeal(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid meal id"})
		return
	}

	if err := h.catalog.DeactivateMeal(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrMealNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Meal not found"})
			return
		}
		h.log.Error("failed to deactivate meal", "meal_id", id, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to deactivate meal"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Meal deactivated successfully",
		"id":      id,
	})
}

func (r CreateMealRequest) toModel() (*model.CustomMeal, error) {
	category, err := mealplan.ParseMealTime(r.Category)
	if err != nil {
		return nil, err
	}
	goals := make([]string, 0, len(r.HealthGoals))
	for _, g := range r.HealthGoals {
		goal := mealplan.HealthGoal(strings.ToLower(strings.TrimSpace(g)))
		if !goal.Valid() {
			return nil, errors.New("unknown health goal " + g)
		}
		goals = append(goals, string(goal))
	}
	planEligible := true
	if r.PlanEligible != nil {
		planEligible = *r.PlanEligible
	}

	meal := &model.CustomMeal{
		Name:              strings.TrimSpace(r.Name),
		Description:       r.Description,
		Category:          string(category),
		Calories:          r.Calories,
		Protein:           r.Protein,
		Carbs:             r.Carbs,
		Fat:               r.Fat,
		Fiber:             r.Fiber,
		Sugar:             r.Sugar,
		Allergens:         model.JSONBStringArray(r.Allergens),
		DietaryTags:       model.JSONBStringArray(r.DietaryTags),
		HealthGoals:       model.JSONBStringArray(goals),
		PreparationMethod: strings.ToLower(r.PreparationMethod),
		GlycemicIndex:     strings.ToLower(r.GlycemicIndex),
		Price:             r.Price,
		IsActive:          true,
		PlanEligible:      planEligible,
	}
	if err := meal.SetIngredients(r.Ingredients); err != nil {
		return nil, err
	}
	return meal, nil
}

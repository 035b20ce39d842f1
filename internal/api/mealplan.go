package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pageza/mealmatch/backend/internal/logger"
	"github.com/pageza/mealmatch/backend/internal/mealplan"
	"github.com/pageza/mealmatch/backend/internal/middleware"
	"github.com/pageza/mealmatch/backend/internal/service"
)

// MealPlanHandler serves plan generation
type MealPlanHandler struct {
	plans   service.IPlanService
	limiter *middleware.RateLimiter
	log     *logger.Logger
}

// NewMealPlanHandler creates a handler. limiter may be nil to disable rate limiting.
func NewMealPlanHandler(plans service.IPlanService, limiter *middleware.RateLimiter, log *logger.Logger) *MealPlanHandler {
	if log == nil {
		log = logger.NewNop()
	}
	return &MealPlanHandler{plans: plans, limiter: limiter, log: log}
}

func (h *MealPlanHandler) RegisterRoutes(router *gin.RouterGroup) {
	plans := router.Group("/meal-plans")
	if h.limiter != nil {
		plans.POST("/generate", h.limiter.RateLimitMiddleware(), h.GeneratePlan)
	} else {
		plans.POST("/generate", h.GeneratePlan)
	}
}

func (h *MealPlanHandler) GeneratePlan(c *gin.Context) {
	var req GeneratePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	prefs, err := req.preferences()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid preferences", "details": err.Error()})
		return
	}

	result, err := h.plans.GeneratePlan(c.Request.Context(), prefs, req.Archive)
	if err != nil {
		h.writePlanError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *MealPlanHandler) writePlanError(c *gin.Context, err error) {
	var insufficient *mealplan.InsufficientCandidatesError
	switch {
	case errors.As(err, &insufficient):
		c.JSON(http.StatusUnprocessableEntity, InsufficientCandidatesResponse{
			Error:    insufficient.Error(),
			Found:    insufficient.Found,
			Required: insufficient.Required,
		})
	case errors.Is(err, mealplan.ErrInvalidPreferences):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid preferences", "details": err.Error()})
	case errors.Is(err, service.ErrArchiveDisabled):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		h.log.Error("meal plan generation failed", "error", err)
		c.Status(http.StatusInternalServerError)
		_ = c.Error(errors.New("failed to generate meal plan"))
	}
}

// preferences converts the request into planner input. Meal times are
// normalized here; everything else is checked by the planner.
func (r GeneratePlanRequest) preferences() (mealplan.UserPreferences, error) {
	mealTimes := make([]mealplan.MealTime, len(r.MealTimes))
	for i, s := range r.MealTimes {
		mt, err := mealplan.ParseMealTime(s)
		if err != nil {
			return mealplan.UserPreferences{}, err
		}
		mealTimes[i] = mt
	}
	weeks := 1
	if r.DurationWeeks != nil {
		weeks = *r.DurationWeeks
	}
	return mealplan.UserPreferences{
		HealthGoal:          mealplan.HealthGoal(r.HealthGoal),
		DietaryRestrictions: r.DietaryRestrictions,
		Allergies:           r.Allergies,
		ExcludeIngredients:  r.ExcludeIngredients,
		MealTimes:           mealTimes,
		DurationWeeks:       weeks,
	}, nil
}

package mealplan

import (
	"context"
	"fmt"

	"github.com/pageza/mealmatch/backend/internal/logger"
)

// CatalogCriteria narrows the catalog query to meals a plan may use.
type CatalogCriteria struct {
	ActiveOnly       bool
	PlanEligibleOnly bool
}

// Catalog supplies the read-only meal snapshot for a planning run.
type Catalog interface {
	ListEligibleMeals(ctx context.Context, criteria CatalogCriteria) ([]CandidateMeal, error)
}

// PlanResult is the schedule together with everything needed to judge it.
type PlanResult struct {
	Preferences    UserPreferences    `json:"preferences"`
	Targets        NutritionalTargets `json:"targets"`
	Plan           MealPlan           `json:"plan"`
	Variety        VarietyReport      `json:"variety"`
	Validation     ValidationReport   `json:"validation"`
	CandidateCount int                `json:"candidate_count"`
}

// Planner generates custom meal plans from an injected catalog.
type Planner struct {
	catalog        Catalog
	log            *logger.Logger
	minEligible    int
	lookbackWindow int
}

// Option configures a Planner.
type Option func(*Planner)

// WithMinEligibleMeals overrides the minimum filtered catalog size.
func WithMinEligibleMeals(n int) Option {
	return func(p *Planner) {
		if n > 0 {
			p.minEligible = n
		}
	}
}

// WithLookbackWindow overrides the variety lookback window.
func WithLookbackWindow(n int) Option {
	return func(p *Planner) {
		if n > 0 {
			p.lookbackWindow = n
		}
	}
}

// NewPlanner creates a Planner. A nil log discards output.
func NewPlanner(catalog Catalog, log *logger.Logger, opts ...Option) *Planner {
	if log == nil {
		log = logger.NewNop()
	}
	p := &Planner{
		catalog:        catalog,
		log:            log,
		minEligible:    MinEligibleMeals,
		lookbackWindow: LookbackWindow,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// GenerateCustomMealPlan builds a plan for prefs. It fails on invalid
// preferences, catalog errors, cancellation, or when fewer than the minimum
// number of meals survive filtering. Unfilled slots, retained repeats and
// missed targets are reported in the result, not as errors.
func (p *Planner) GenerateCustomMealPlan(ctx context.Context, prefs UserPreferences) (*PlanResult, error) {
	if err := prefs.Validate(); err != nil {
		return nil, err
	}
	log := p.log.With("health_goal", prefs.HealthGoal, "weeks", prefs.DurationWeeks, "meal_times", prefs.MealTimes)

	targets, err := CalculateTargets(prefs.HealthGoal, len(prefs.MealTimes))
	if err != nil {
		return nil, err
	}

	catalog, err := p.catalog.ListEligibleMeals(ctx, CatalogCriteria{ActiveOnly: true, PlanEligibleOnly: true})
	if err != nil {
		return nil, fmt.Errorf("failed to load meal catalog: %w", err)
	}

	candidates := FilterCandidates(catalog, prefs)
	log.Debug("filtered meal catalog", "catalog_size", len(catalog), "eligible", len(candidates))
	if err := EnsureEnoughCandidates(len(candidates), p.minEligible); err != nil {
		log.Info("not enough eligible meals", "eligible", len(candidates), "required", p.minEligible)
		return nil, err
	}

	scored, err := ScoreMeals(candidates, prefs.HealthGoal)
	if err != nil {
		return nil, err
	}

	plan, err := Assemble(ctx, scored, prefs, targets)
	if err != nil {
		return nil, err
	}
	if n := len(plan.UnfilledSlots); n > 0 {
		log.Warn("meal plan has unfilled slots", "unfilled", n, "expected", ExpectedSlots(prefs))
	}

	plan, variety := EnforceVariety(plan, p.lookbackWindow)
	if variety.RetainedRepeats > 0 {
		log.Debug("repeats kept within lookback window", "retained", variety.RetainedRepeats, "substitutions", variety.Substitutions)
	}

	validation := ValidatePlan(plan, targets, prefs.DurationWeeks*DaysPerWeek)
	if !validation.MeetsTargets {
		log.Warn("meal plan misses nutritional targets",
			"avg_calories", validation.AvgCaloriesPerDay,
			"calories_in_range", validation.CaloriesInRange,
			"avg_protein", validation.AvgProteinPerDay,
			"protein_deficit", validation.ProteinDeficit,
		)
	}

	log.Info("generated meal plan", "assignments", len(plan.Assignments), "eligible", len(candidates))
	return &PlanResult{
		Preferences:    prefs,
		Targets:        targets,
		Plan:           plan,
		Variety:        variety,
		Validation:     validation,
		CandidateCount: len(candidates),
	}, nil
}

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/pageza/mealmatch/backend/internal/logger"
	"github.com/pageza/mealmatch/backend/internal/mealplan"
)

// ErrArchiveDisabled is returned when an archive is requested but no archive
// backend is configured
var ErrArchiveDisabled = errors.New("plan archiving is not configured")

// GeneratedPlan is a planner result plus where it was archived, if anywhere
type GeneratedPlan struct {
	*mealplan.PlanResult
	ArchiveURL string `json:"archive_url,omitempty"`
}

// PlanService runs the planner and optionally archives its output
type PlanService struct {
	planner *mealplan.Planner
	archive PlanArchive
	log     *logger.Logger
}

// NewPlanService creates a new PlanService instance. archive may be nil.
func NewPlanService(planner *mealplan.Planner, archive PlanArchive, log *logger.Logger) *PlanService {
	if log == nil {
		log = logger.NewNop()
	}
	return &PlanService{
		planner: planner,
		archive: archive,
		log:     log,
	}
}

// GeneratePlan builds a plan for prefs and archives it when asked to
func (s *PlanService) GeneratePlan(ctx context.Context, prefs mealplan.UserPreferences, archive bool) (*GeneratedPlan, error) {
	if archive && s.archive == nil {
		return nil, ErrArchiveDisabled
	}

	result, err := s.planner.GenerateCustomMealPlan(ctx, prefs)
	if err != nil {
		return nil, err
	}

	out := &GeneratedPlan{PlanResult: result}
	if archive {
		url, err := s.archive.ArchivePlan(ctx, result)
		if err != nil {
			return nil, fmt.Errorf("failed to archive meal plan: %w", err)
		}
		s.log.Info("archived meal plan", "health_goal", prefs.HealthGoal, "assignments", len(result.Plan.Assignments))
		out.ArchiveURL = url
	}
	return out, nil
}

package mealplan

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidPreferences marks caller errors detected before any computation.
	ErrInvalidPreferences = errors.New("invalid meal plan preferences")
	// ErrUnknownHealthGoal is returned when no target table or scorer exists for a goal.
	ErrUnknownHealthGoal = errors.New("unknown health goal")
	// ErrInsufficientCandidates is wrapped by InsufficientCandidatesError.
	ErrInsufficientCandidates = errors.New("insufficient eligible meals")
)

// InsufficientCandidatesError reports that filtering left too few meals to
// build a plan. The caller may retry with relaxed preferences.
type InsufficientCandidatesError struct {
	Found    int
	Required int
}

func (e *InsufficientCandidatesError) Error() string {
	return fmt.Sprintf("only %d meals match your preferences (need at least %d); please relax your dietary restrictions, allergies or excluded ingredients",
		e.Found, e.Required)
}

func (e *InsufficientCandidatesError) Unwrap() error { return ErrInsufficientCandidates }

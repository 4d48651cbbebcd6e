// Package lifecycle contains the pure status rules shared by feedback,
// incidents and improvements.
// This is part of the Functional Core - no I/O, only pure functions.
package lifecycle

import (
	"time"

	"github.com/example/portfolio/internal/models"
)

// InitialStatus returns the status a new record gets when the caller leaves it empty.
func InitialStatus() models.TrackedStatus {
	return models.StatusOpen
}

// IsValid reports whether s is a known lifecycle status.
func IsValid(s models.TrackedStatus) bool {
	for _, known := range models.TrackedStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// StatusTransitionResult captures the new status and the ClosedAt value that goes with it.
type StatusTransitionResult struct {
	NewStatus models.TrackedStatus
	ClosedAt  *time.Time
	// Changed is true when NewStatus differs from the previous status.
	Changed bool
}

// ApplyStatusTransition computes the side effects of moving to next, based on the
// previously persisted status and ClosedAt (not the caller's copy).
// Rules:
// - Moving to closed sets ClosedAt to now only if it was nil; re-closing keeps the original time.
// - Moving to reopened clears ClosedAt.
// - Any other transition leaves ClosedAt untouched.
// An empty next keeps prev (or the initial status when there is no prev).
func ApplyStatusTransition(prev models.TrackedStatus, prevClosedAt *time.Time, next models.TrackedStatus, now time.Time) StatusTransitionResult {
	if next == "" {
		next = prev
	}
	if next == "" {
		next = InitialStatus()
	}

	res := StatusTransitionResult{
		NewStatus: next,
		ClosedAt:  prevClosedAt,
		Changed:   prev != "" && prev != next,
	}

	switch next {
	case models.StatusClosed:
		if prevClosedAt == nil {
			closed := now
			res.ClosedAt = &closed
		}
	case models.StatusReopened:
		res.ClosedAt = nil
	}

	return res
}

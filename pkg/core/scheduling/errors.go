package scheduling

import (
	"fmt"
	"strings"
	"time"

	"github.com/brightfold/agency-ops/pkg/core/model"
)

// ConflictError is returned when a candidate slot overlaps a slot already
// selected for the same staff member on the same date. The caller should
// surface it and prompt for a different slot; there is nothing to retry.
type ConflictError struct {
	StaffID   string
	Date      time.Time
	Candidate model.TimeSlot
	Existing  model.TimeSlot
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("slot %s-%s conflicts with selected slot %s-%s for staff %s on %s",
		e.Candidate.Start.Format("15:04"),
		e.Candidate.End.Format("15:04"),
		e.Existing.Start.Format("15:04"),
		e.Existing.End.Format("15:04"),
		e.StaffID,
		e.Date.Format("2006-01-02"))
}

// OverflowError is returned when selecting a slot would push a phase's
// cumulative selected duration past its required hours.
type OverflowError struct {
	Phase          model.Phase
	RequiredHours  float64
	SelectedHours  float64
	CandidateHours float64
}

func (e *OverflowError) Error() string {
	return fmt.Sprintf("selecting %gh would exceed the %s phase requirement: %gh selected of %gh required",
		e.CandidateHours, e.Phase, e.SelectedHours, e.RequiredHours)
}

// PhaseShortfall names a phase that has not reached its required hours
// and by how much.
type PhaseShortfall struct {
	Phase          model.Phase
	RemainingHours float64
}

// IncompleteBookingError is returned when a booking is finalized before
// both phases reach their required hours. It lists only the phases that
// are short, with exact remaining amounts, so the message can be shown
// to the user as-is.
type IncompleteBookingError struct {
	Shortfalls []PhaseShortfall
}

func (e *IncompleteBookingError) Error() string {
	parts := make([]string, len(e.Shortfalls))
	for i, s := range e.Shortfalls {
		parts[i] = fmt.Sprintf("%s: %gh remaining", s.Phase, s.RemainingHours)
	}
	return "booking incomplete: " + strings.Join(parts, ", ")
}

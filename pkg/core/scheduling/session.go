package scheduling

import (
	"github.com/brightfold/agency-ops/pkg/core/model"
)

// Session tracks slot selections for one booking attempt across both
// phases of a brief. It carries the caller-managed state the finder and
// persistence layer stay free of: nothing here is persisted, and the
// session is discarded once the booking is committed or abandoned.
type Session struct {
	BriefID  string
	required model.EstimatedHours
	selected map[model.Phase][]model.TimeSlot
}

// NewSession starts a booking session for a brief's estimated hours.
func NewSession(briefID string, required model.EstimatedHours) *Session {
	return &Session{
		BriefID:  briefID,
		required: required,
		selected: map[model.Phase][]model.TimeSlot{
			model.PhaseShoot: {},
			model.PhaseEdit:  {},
		},
	}
}

// Select adds a candidate slot to the session.
//
// It returns a ConflictError if the candidate overlaps any already
// selected slot for the same staff member on the same date, in either
// phase, and an OverflowError if the candidate's duration would push its
// phase past the required hours. Non-overlapping slots for the same
// staff member on the same day are fine.
func (s *Session) Select(candidate model.TimeSlot) error {
	for _, phase := range []model.Phase{model.PhaseShoot, model.PhaseEdit} {
		for _, existing := range s.selected[phase] {
			if existing.StaffID != candidate.StaffID || !sameDay(existing.Date, candidate.Date) {
				continue
			}
			if existing.Overlaps(candidate) {
				return &ConflictError{
					StaffID:   candidate.StaffID,
					Date:      candidate.Date,
					Candidate: candidate,
					Existing:  existing,
				}
			}
		}
	}

	selectedHours := s.SelectedHours(candidate.Phase)
	requiredHours := s.required.ForPhase(candidate.Phase)
	if selectedHours+candidate.DurationHours > requiredHours {
		return &OverflowError{
			Phase:          candidate.Phase,
			RequiredHours:  requiredHours,
			SelectedHours:  selectedHours,
			CandidateHours: candidate.DurationHours,
		}
	}

	s.selected[candidate.Phase] = append(s.selected[candidate.Phase], candidate)
	return nil
}

// Deselect removes a previously selected slot, matching on staff, phase,
// and start time. Returns false if no matching slot was selected.
func (s *Session) Deselect(slot model.TimeSlot) bool {
	selected := s.selected[slot.Phase]
	for i, existing := range selected {
		if existing.StaffID == slot.StaffID && existing.Start.Equal(slot.Start) {
			s.selected[slot.Phase] = append(selected[:i], selected[i+1:]...)
			return true
		}
	}
	return false
}

// Selected returns the slots selected for a phase.
func (s *Session) Selected(phase model.Phase) []model.TimeSlot {
	return s.selected[phase]
}

// AllSelected returns every selected slot across both phases.
func (s *Session) AllSelected() []model.TimeSlot {
	all := make([]model.TimeSlot, 0, len(s.selected[model.PhaseShoot])+len(s.selected[model.PhaseEdit]))
	all = append(all, s.selected[model.PhaseShoot]...)
	all = append(all, s.selected[model.PhaseEdit]...)
	return all
}

// SelectedHours returns the cumulative selected duration for a phase.
func (s *Session) SelectedHours(phase model.Phase) float64 {
	var total float64
	for _, slot := range s.selected[phase] {
		total += slot.DurationHours
	}
	return total
}

// RemainingHours returns how many hours a phase still needs.
func (s *Session) RemainingHours(phase model.Phase) float64 {
	remaining := s.required.ForPhase(phase) - s.SelectedHours(phase)
	if remaining < 0 {
		return 0
	}
	return remaining
}

// Shortfalls lists the phases that have not reached their required hours.
// Phases that are fully met are omitted.
func (s *Session) Shortfalls() []PhaseShortfall {
	var shortfalls []PhaseShortfall
	for _, phase := range []model.Phase{model.PhaseShoot, model.PhaseEdit} {
		if remaining := s.RemainingHours(phase); remaining > 0 {
			shortfalls = append(shortfalls, PhaseShortfall{Phase: phase, RemainingHours: remaining})
		}
	}
	return shortfalls
}

// Complete reports whether both phases have reached their required hours.
func (s *Session) Complete() bool {
	return len(s.Shortfalls()) == 0
}

// Finalize returns an IncompleteBookingError naming each short phase, or
// nil when the session is ready to be committed.
func (s *Session) Finalize() error {
	if shortfalls := s.Shortfalls(); len(shortfalls) > 0 {
		return &IncompleteBookingError{Shortfalls: shortfalls}
	}
	return nil
}

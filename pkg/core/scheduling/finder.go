// Package scheduling finds and ranks candidate booking slots for brief
// phases and guards slot selection within a booking session. Like the
// availability package it is pure computation over caller-supplied
// snapshots: no I/O, no shared state, safe to call concurrently.
package scheduling

import (
	"time"

	"github.com/brightfold/agency-ops/pkg/core/model"
)

// Slot duration precedence: one slot per free sub-window, largest
// practical block first. A 1-hour slot is only offered when the phase
// needs 2 hours or less, to discourage fragmenting a large requirement
// into many tiny sessions.
var slotDurations = []float64{6, 4, 3, 2}

const smallRemainderHours = 2

// SearchParams describes one slot search for a single phase of a brief.
type SearchParams struct {
	// Staff is the roster to search, each with their calendar loaded.
	Staff []model.StaffMember

	// Phase being booked; stamped onto every emitted slot.
	Phase model.Phase

	// RemainingHours is how much of the phase is still unselected.
	// It gates slot durations: larger blocks are only offered while
	// they fit, though the 1-hour fallback can exceed a sub-hour
	// remainder.
	RemainingHours float64

	// DueDate is a hard boundary: work must finish strictly before it,
	// so the last searchable day is DueDate minus one day.
	DueDate time.Time

	// SearchWindowDays bounds the search range from today. The due-date
	// boundary wins when the window would extend past it.
	SearchWindowDays int

	// OtherPhaseSlots are slots tentatively selected for the other phase
	// in the same session. They block their staff member's time even
	// though nothing has been persisted yet.
	OtherPhaseSlots []model.TimeSlot

	// ExtraBlocks are additional blocking intervals applied to every
	// staff member, such as studio-wide recurring meetings.
	ExtraBlocks []Interval

	// Now anchors "today" for the search range and soonness scoring.
	Now time.Time
}

// FindAvailableSlots enumerates candidate bookable slots for a phase
// across the roster and search window, excluding conflicts, and returns
// them in ranked order. An empty result is a valid outcome (fully booked
// staff, or a window too narrow before the deadline), not an error.
//
// The result is a flat list across all staff and days and is not
// deduplicated by staff: the same staff member may appear with candidate
// slots on several days.
func FindAvailableSlots(params SearchParams) []model.TimeSlot {
	if params.RemainingHours <= 0 {
		return nil
	}

	today := midnight(params.Now)
	lastDay := midnight(params.DueDate).AddDate(0, 0, -1)

	windowEnd := today.AddDate(0, 0, params.SearchWindowDays)
	if windowEnd.After(lastDay) {
		windowEnd = lastDay
	}

	var slots []model.TimeSlot

	for day := today; !day.After(windowEnd); day = day.AddDate(0, 0, 1) {
		if isWeekend(day) {
			continue
		}

		for _, staff := range params.Staff {
			free := freeWindows(staff, day, params.OtherPhaseSlots, params.ExtraBlocks)

			for _, window := range free {
				duration, ok := chooseDuration(window, params.RemainingHours)
				if !ok {
					continue
				}

				slots = append(slots, model.TimeSlot{
					StaffID:       staff.ID,
					Phase:         params.Phase,
					Date:          day,
					Start:         window.Start,
					End:           window.Start.Add(time.Duration(duration * float64(time.Hour))),
					DurationHours: duration,
				})
			}
		}
	}

	rankSlots(slots, params.DueDate, today)

	return slots
}

// freeWindows computes the free sub-windows of the staff member's working
// day after subtracting calendar entries, same-session other-phase slots,
// and studio-wide blocks.
func freeWindows(staff model.StaffMember, day time.Time, otherPhaseSlots []model.TimeSlot, extraBlocks []Interval) []Interval {
	windows := []Interval{workingWindow(day)}

	var blocks []Interval
	for _, entry := range staff.Calendar {
		// All entry types block; multi-day entries block every day they span
		if overlapsDay(entry.StartTime, entry.EndTime, day) {
			blocks = append(blocks, Interval{Start: entry.StartTime, End: entry.EndTime})
		}
	}
	for _, slot := range otherPhaseSlots {
		if slot.StaffID == staff.ID && sameDay(slot.Date, day) {
			blocks = append(blocks, Interval{Start: slot.Start, End: slot.End})
		}
	}
	for _, block := range extraBlocks {
		if overlapsDay(block.Start, block.End, day) {
			blocks = append(blocks, block)
		}
	}

	return subtractAll(windows, blocks)
}

// chooseDuration picks the single slot duration offered from a free
// sub-window, or reports that the window yields no slot.
func chooseDuration(window Interval, remainingHours float64) (float64, bool) {
	available := window.hours()

	for _, duration := range slotDurations {
		if available >= duration && remainingHours >= duration {
			return duration, true
		}
	}

	if available >= 1 && remainingHours <= smallRemainderHours {
		return 1, true
	}

	return 0, false
}


package scheduling

import (
	"sort"
	"time"

	"github.com/brightfold/agency-ops/pkg/core/model"
)

// Ranking weights. Deadline-buffer buckets dominate duration, which
// dominates the soonness bonus: bucket gaps (200) exceed the maximum
// duration contribution (60) plus the maximum soonness bonus (5), so a
// lower bucket can never outrank a higher one.
const (
	scoreBufferOver14Days = 1000
	scoreBufferOver7Days  = 800
	scoreBufferOver3Days  = 600
	scoreBufferTight      = 400

	scorePerDurationHour = 10

	scoreSoonWithin2Days = 5
	scoreSoonWithin7Days = 2
)

// SlotScore computes the priority score for a candidate slot. Higher
// scores rank first. More days of buffer before the due date score
// higher: the heuristic rewards early completion, not urgency-based
// scheduling.
func SlotScore(slot model.TimeSlot, dueDate, today time.Time) float64 {
	score := deadlineBufferScore(slot.Date, dueDate)
	score += slot.DurationHours * scorePerDurationHour
	score += soonnessScore(slot.Date, today)
	return score
}

// rankSlots sorts slots by descending score with a stable tie-break by
// date then start time ascending.
func rankSlots(slots []model.TimeSlot, dueDate, today time.Time) {
	sort.SliceStable(slots, func(i, j int) bool {
		scoreI := SlotScore(slots[i], dueDate, today)
		scoreJ := SlotScore(slots[j], dueDate, today)
		if scoreI != scoreJ {
			return scoreI > scoreJ
		}
		if !slots[i].Date.Equal(slots[j].Date) {
			return slots[i].Date.Before(slots[j].Date)
		}
		return slots[i].Start.Before(slots[j].Start)
	})
}

func deadlineBufferScore(slotDate, dueDate time.Time) float64 {
	daysUntilDue := daysBetween(slotDate, midnight(dueDate))

	switch {
	case daysUntilDue > 14:
		return scoreBufferOver14Days
	case daysUntilDue > 7:
		return scoreBufferOver7Days
	case daysUntilDue > 3:
		return scoreBufferOver3Days
	default:
		return scoreBufferTight
	}
}

func soonnessScore(slotDate, today time.Time) float64 {
	daysOut := daysBetween(today, slotDate)

	switch {
	case daysOut <= 2:
		return scoreSoonWithin2Days
	case daysOut <= 7:
		return scoreSoonWithin7Days
	default:
		return 0
	}
}

// daysBetween counts calendar days from one day to another, negative
// when to precedes from. Stepping by AddDate keeps the count right
// across DST transitions, where a naive duration division comes up a
// day short.
func daysBetween(from, to time.Time) int {
	if to.Before(from) {
		return -daysBetween(to, from)
	}
	days := 0
	for day := midnight(from); day.Before(midnight(to)); day = day.AddDate(0, 0, 1) {
		days++
	}
	return days
}

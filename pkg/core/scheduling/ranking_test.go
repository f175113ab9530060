package scheduling

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/brightfold/agency-ops/pkg/core/model"
)

func slotOn(date time.Time, startHour int, hours float64) model.TimeSlot {
	return model.TimeSlot{
		StaffID:       "staff-1",
		Phase:         model.PhaseShoot,
		Date:          date,
		Start:         at(date, startHour),
		End:           at(date, startHour).Add(time.Duration(hours * float64(time.Hour))),
		DurationHours: hours,
	}
}

func TestSlotScore_DeadlineBufferBuckets(t *testing.T) {
	dueDate := monday.AddDate(0, 0, 30)

	tests := []struct {
		name     string
		slotDate time.Time
		expected float64
	}{
		{"more than 14 days of buffer", dueDate.AddDate(0, 0, -15), scoreBufferOver14Days},
		{"more than 7 days of buffer", dueDate.AddDate(0, 0, -8), scoreBufferOver7Days},
		{"more than 3 days of buffer", dueDate.AddDate(0, 0, -4), scoreBufferOver3Days},
		{"3 days or less of buffer", dueDate.AddDate(0, 0, -3), scoreBufferTight},
		{"day before due date", dueDate.AddDate(0, 0, -1), scoreBufferTight},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, deadlineBufferScore(tt.slotDate, dueDate))
		})
	}
}

func TestSlotScore_BufferDominatesDuration(t *testing.T) {
	dueDate := monday.AddDate(0, 0, 30)

	// A 1h slot with >14 days of buffer outranks a 6h slot with less buffer
	early := slotOn(monday, 9, 1)
	late := slotOn(dueDate.AddDate(0, 0, -8), 9, 6)

	assert.Greater(t,
		SlotScore(early, dueDate, monday),
		SlotScore(late, dueDate, monday))
}

func TestSlotScore_DurationBreaksBucketTies(t *testing.T) {
	dueDate := monday.AddDate(0, 0, 40)

	// Same bucket, same soonness day: longer slot scores higher
	long := slotOn(monday, 9, 6)
	short := slotOn(monday, 9, 2)

	assert.Greater(t,
		SlotScore(long, dueDate, monday),
		SlotScore(short, dueDate, monday))
}

func TestSlotScore_SoonnessIsMinorTiebreak(t *testing.T) {
	dueDate := monday.AddDate(0, 0, 60)

	// All in the >14d bucket with equal duration; nearer dates get a bonus
	within2 := slotOn(monday.AddDate(0, 0, 1), 9, 4)
	within7 := slotOn(monday.AddDate(0, 0, 4), 9, 4)
	later := slotOn(monday.AddDate(0, 0, 14), 9, 4)

	scoreWithin2 := SlotScore(within2, dueDate, monday)
	scoreWithin7 := SlotScore(within7, dueDate, monday)
	scoreLater := SlotScore(later, dueDate, monday)

	assert.Greater(t, scoreWithin2, scoreWithin7)
	assert.Greater(t, scoreWithin7, scoreLater)

	// The bonus never overcomes a duration difference
	longerLater := slotOn(monday.AddDate(0, 0, 14), 9, 6)
	assert.Greater(t, SlotScore(longerLater, dueDate, monday), scoreWithin2)
}

func TestRankSlots_StableTieBreak(t *testing.T) {
	dueDate := monday.AddDate(0, 0, 60)

	tuesday := monday.AddDate(0, 0, 1)
	slots := []model.TimeSlot{
		slotOn(tuesday, 13, 4),
		slotOn(tuesday, 9, 4),
		slotOn(monday, 13, 4),
		slotOn(monday, 9, 4),
	}

	rankSlots(slots, dueDate, monday)

	// Identical scores sort by date then start time ascending
	assert.Equal(t, at(monday, 9), slots[0].Start)
	assert.Equal(t, at(monday, 13), slots[1].Start)
	assert.Equal(t, at(tuesday, 9), slots[2].Start)
	assert.Equal(t, at(tuesday, 13), slots[3].Start)
}

func TestDaysBetween(t *testing.T) {
	assert.Equal(t, 0, daysBetween(monday, monday))
	assert.Equal(t, 7, daysBetween(monday, monday.AddDate(0, 0, 7)))
	assert.Equal(t, -3, daysBetween(monday, monday.AddDate(0, 0, -3)))
}

func TestDaysBetween_SpringForward(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Skip("tzdata unavailable")
	}

	// 2026-03-08 loses an hour in New York; the span is still 15 days
	from := time.Date(2026, 3, 7, 0, 0, 0, 0, loc)
	to := time.Date(2026, 3, 22, 0, 0, 0, 0, loc)

	assert.Equal(t, 15, daysBetween(from, to))
}

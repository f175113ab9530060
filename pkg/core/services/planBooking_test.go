package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/brightfold/agency-ops/internal/config"
	"github.com/brightfold/agency-ops/pkg/core/model"
	"github.com/brightfold/agency-ops/pkg/db"
)

// 2026-03-02 is a Monday
var monday = date(2026, 3, 2)

func testConfig() *config.Config {
	return &config.Config{
		DatabaseURL:             "postgres://localhost/test",
		DefaultSearchWindowDays: 5,
	}
}

func TestPlanBriefBooking_FindsSlotsForActiveStaff(t *testing.T) {
	store := &mockStore{
		staff: []db.Staff{
			{ID: "s1", FirstName: "Ana", LastName: "Reyes", Status: "Active", MonthlyAvailableHours: 160},
			{ID: "s2", FirstName: "Ben", LastName: "Okafor", Status: "Inactive", MonthlyAvailableHours: 160},
		},
		briefs: []db.Brief{
			{ID: "b1", Title: "Spring campaign", ClientID: "c1", Status: "Open", DueDate: monday.AddDate(0, 0, 60), ShootHours: 8, EditHours: 12},
		},
	}

	result, err := PlanBriefBooking(context.Background(), store, testConfig(), zap.NewNop(), PlanBookingArgs{
		BriefID: "b1",
		Phase:   model.PhaseShoot,
		Now:     monday,
	})

	require.NoError(t, err)
	assert.Equal(t, "b1", result.Brief.ID)
	assert.Equal(t, 8.0, result.RemainingHours)
	require.NotEmpty(t, result.Slots)

	for _, slot := range result.Slots {
		assert.Equal(t, "s1", slot.StaffID, "inactive staff must not be offered")
		assert.Equal(t, model.PhaseShoot, slot.Phase)
	}

	// Empty calendar: the top slot is the largest block on the first day
	top := result.Slots[0]
	assert.Equal(t, monday, top.Date)
	assert.Equal(t, 9, top.Start.Hour())
	assert.Equal(t, 6.0, top.DurationHours)
}

func TestPlanBriefBooking_DefaultsRemainingToPhaseEstimate(t *testing.T) {
	store := &mockStore{
		staff: []db.Staff{
			{ID: "s1", FirstName: "Ana", LastName: "Reyes", Status: "Active", MonthlyAvailableHours: 160},
		},
		briefs: []db.Brief{
			{ID: "b1", DueDate: monday.AddDate(0, 0, 60), ShootHours: 8, EditHours: 2},
		},
	}

	result, err := PlanBriefBooking(context.Background(), store, testConfig(), zap.NewNop(), PlanBookingArgs{
		BriefID: "b1",
		Phase:   model.PhaseEdit,
		Now:     monday,
	})

	require.NoError(t, err)
	assert.Equal(t, 2.0, result.RemainingHours)

	// A 2 hour remainder caps slot durations at 2 hours
	for _, slot := range result.Slots {
		assert.LessOrEqual(t, slot.DurationHours, 2.0)
	}
}

func TestPlanBriefBooking_RecurringBlockAppliesToEveryone(t *testing.T) {
	cfg := testConfig()
	cfg.RecurringBlocks = []config.RecurringBlock{
		{Label: "All hands", RRule: "FREQ=WEEKLY;BYDAY=MO", StartTime: "09:00", DurationMinutes: 60},
	}

	store := &mockStore{
		staff: []db.Staff{
			{ID: "s1", FirstName: "Ana", LastName: "Reyes", Status: "Active", MonthlyAvailableHours: 160},
		},
		briefs: []db.Brief{
			{ID: "b1", DueDate: monday.AddDate(0, 0, 60), ShootHours: 8, EditHours: 12},
		},
	}

	result, err := PlanBriefBooking(context.Background(), store, cfg, zap.NewNop(), PlanBookingArgs{
		BriefID: "b1",
		Phase:   model.PhaseShoot,
		Now:     monday,
	})

	require.NoError(t, err)
	for _, slot := range result.Slots {
		if slot.Date.Equal(monday) {
			assert.False(t, slot.Start.Before(monday.Add(10*time.Hour)),
				"Monday slots must start after the all hands")
		}
	}
}

func TestPlanBriefBooking_OtherPhaseSlotsBlockTime(t *testing.T) {
	store := &mockStore{
		staff: []db.Staff{
			{ID: "s1", FirstName: "Ana", LastName: "Reyes", Status: "Active", MonthlyAvailableHours: 160},
		},
		briefs: []db.Brief{
			{ID: "b1", DueDate: monday.AddDate(0, 0, 60), ShootHours: 8, EditHours: 12},
		},
	}

	shootSlot := model.TimeSlot{
		StaffID:       "s1",
		Phase:         model.PhaseShoot,
		Date:          monday,
		Start:         monday.Add(9 * time.Hour),
		End:           monday.Add(15 * time.Hour),
		DurationHours: 6,
	}

	result, err := PlanBriefBooking(context.Background(), store, testConfig(), zap.NewNop(), PlanBookingArgs{
		BriefID:         "b1",
		Phase:           model.PhaseEdit,
		OtherPhaseSlots: []model.TimeSlot{shootSlot},
		Now:             monday,
	})

	require.NoError(t, err)
	for _, slot := range result.Slots {
		if slot.Date.Equal(monday) {
			assert.False(t, slot.Start.Before(monday.Add(15*time.Hour)),
				"tentative shoot selection must block Monday morning")
		}
	}
}

func TestPlanBriefBooking_InvalidPhase(t *testing.T) {
	store := &mockStore{}

	_, err := PlanBriefBooking(context.Background(), store, testConfig(), zap.NewNop(), PlanBookingArgs{
		BriefID: "b1",
		Phase:   model.Phase("review"),
		Now:     monday,
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid phase")
}

func TestPlanBriefBooking_BriefNotFound(t *testing.T) {
	store := &mockStore{}

	_, err := PlanBriefBooking(context.Background(), store, testConfig(), zap.NewNop(), PlanBookingArgs{
		BriefID: "missing",
		Phase:   model.PhaseShoot,
		Now:     monday,
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, db.ErrNotFound))
}

func TestPlanBriefBooking_EmptyResultIsNotAnError(t *testing.T) {
	// Due tomorrow: the last searchable day is today, and today is Sunday
	sunday := date(2026, 3, 1)
	store := &mockStore{
		staff: []db.Staff{
			{ID: "s1", FirstName: "Ana", LastName: "Reyes", Status: "Active", MonthlyAvailableHours: 160},
		},
		briefs: []db.Brief{
			{ID: "b1", DueDate: sunday.AddDate(0, 0, 1), ShootHours: 8, EditHours: 12},
		},
	}

	result, err := PlanBriefBooking(context.Background(), store, testConfig(), zap.NewNop(), PlanBookingArgs{
		BriefID: "b1",
		Phase:   model.PhaseShoot,
		Now:     sunday,
	})

	require.NoError(t, err)
	assert.Empty(t, result.Slots)
}

package services

import (
	"context"
	"fmt"
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/brightfold/agency-ops/pkg/core/availability"
	"github.com/brightfold/agency-ops/pkg/core/model"
	"github.com/brightfold/agency-ops/pkg/db"
)

// UtilizationStore defines the database operations needed for the utilization report
type UtilizationStore interface {
	GetStaff(ctx context.Context) ([]db.Staff, error)
	GetBriefs(ctx context.Context) ([]db.Brief, error)
	GetCalendarEntries(ctx context.Context) ([]db.CalendarEntry, error)
}

// StaffUtilization is one staff member's row in the utilization report.
// ShareHours is their divided slice of assigned-brief estimates, used
// only for the aggregate view; it deliberately differs from the
// undivided totals the assignment capacity check uses.
type StaffUtilization struct {
	StaffID     string
	Name        string
	Utilization availability.Utilization
	ShareHours  float64
}

// TeamUtilizationResult contains the team-wide utilization report
type TeamUtilizationResult struct {
	Week          time.Time
	Staff         []StaffUtilization
	TotalBooked   float64
	TotalCapacity float64
	BookedPercent float64
	OverbookedIDs []string
}

// TeamUtilization builds the weekly utilization report across all active
// staff. Per-staff figures come from the Sunday–Saturday week containing
// now; the aggregate percentage is team booked hours over team capacity.
func TeamUtilization(
	ctx context.Context,
	database UtilizationStore,
	logger *zap.Logger,
	now time.Time,
) (*TeamUtilizationResult, error) {
	logger.Debug("Starting teamUtilization", zap.Time("now", now))

	if now.IsZero() {
		now = time.Now()
	}

	// Step 1: Fetch staff, briefs, and calendars
	staffRecords, err := database.GetStaff(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch staff: %w", err)
	}
	logger.Debug("Found staff", zap.Int("count", len(staffRecords)))

	briefRecords, err := database.GetBriefs(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch briefs: %w", err)
	}
	allBriefs := toModelBriefs(briefRecords)

	entries, err := database.GetCalendarEntries(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch calendar entries: %w", err)
	}

	roster := make([]model.StaffMember, 0, len(staffRecords))
	for _, record := range staffRecords {
		roster = append(roster, toModelStaff(record, entries))
	}
	roster = filterActiveStaff(roster)
	logger.Debug("Active staff", zap.Int("count", len(roster)))

	// Step 2: Per-staff weekly utilization and divided brief shares
	result := &TeamUtilizationResult{
		Week:  now,
		Staff: make([]StaffUtilization, 0, len(roster)),
	}

	for _, staff := range roster {
		util := availability.WeeklyUtilization(staff, allBriefs, now)

		var share float64
		for _, brief := range allBriefs {
			if brief.IsAssigned(staff.ID) {
				share += availability.BriefShareHours(brief)
			}
		}

		result.Staff = append(result.Staff, StaffUtilization{
			StaffID:     staff.ID,
			Name:        staffName(staff),
			Utilization: util,
			ShareHours:  share,
		})

		result.TotalBooked += util.Booked
		result.TotalCapacity += util.Total

		if _, over := availability.Overcommitted(staff, allBriefs); over {
			result.OverbookedIDs = append(result.OverbookedIDs, staff.ID)
		}
	}

	if result.TotalCapacity > 0 {
		result.BookedPercent = result.TotalBooked / result.TotalCapacity * 100
	}

	// Busiest staff first
	sort.Slice(result.Staff, func(i, j int) bool {
		if result.Staff[i].Utilization.Booked != result.Staff[j].Utilization.Booked {
			return result.Staff[i].Utilization.Booked > result.Staff[j].Utilization.Booked
		}
		return result.Staff[i].Name < result.Staff[j].Name
	})

	logger.Info("Utilization report completed",
		zap.Int("staff_count", len(result.Staff)),
		zap.Float64("total_booked", result.TotalBooked),
		zap.Float64("booked_percent", result.BookedPercent),
		zap.Int("overbooked_count", len(result.OverbookedIDs)))

	return result, nil
}

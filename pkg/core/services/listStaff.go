package services

import (
	"context"
	"fmt"
	"sort"

	"go.uber.org/zap"

	"github.com/brightfold/agency-ops/pkg/core/availability"
	"github.com/brightfold/agency-ops/pkg/core/model"
	"github.com/brightfold/agency-ops/pkg/db"
)

// ListStaffStore defines the database operations needed for listing staff
type ListStaffStore interface {
	GetStaff(ctx context.Context) ([]db.Staff, error)
	GetBriefs(ctx context.Context) ([]db.Brief, error)
	GetCalendarEntries(ctx context.Context) ([]db.CalendarEntry, error)
}

// StaffOverview is one staff member's row in the roster listing
type StaffOverview struct {
	Staff          model.StaffMember
	AssignedBriefs int
	AvailableHours float64
	Overcommitted  bool
}

// ListStaff returns the roster with each member's remaining available
// hours. Pass activeOnly to hide inactive staff.
func ListStaff(
	ctx context.Context,
	database ListStaffStore,
	logger *zap.Logger,
	activeOnly bool,
) ([]StaffOverview, error) {
	logger.Debug("Starting listStaff", zap.Bool("active_only", activeOnly))

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
	if activeOnly {
		roster = filterActiveStaff(roster)
	}

	overviews := make([]StaffOverview, 0, len(roster))
	for _, staff := range roster {
		assigned := 0
		for _, brief := range allBriefs {
			if brief.IsAssigned(staff.ID) {
				assigned++
			}
		}

		_, over := availability.Overcommitted(staff, allBriefs)

		overviews = append(overviews, StaffOverview{
			Staff:          staff,
			AssignedBriefs: assigned,
			AvailableHours: availability.HoursExcludingBrief(staff, allBriefs, ""),
			Overcommitted:  over,
		})
	}

	sort.Slice(overviews, func(i, j int) bool {
		return staffName(overviews[i].Staff) < staffName(overviews[j].Staff)
	})

	logger.Debug("List staff completed", zap.Int("count", len(overviews)))

	return overviews, nil
}

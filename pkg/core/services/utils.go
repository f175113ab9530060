package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/teambition/rrule-go"

	"github.com/brightfold/agency-ops/internal/config"
	"github.com/brightfold/agency-ops/pkg/core/model"
	"github.com/brightfold/agency-ops/pkg/core/scheduling"
	"github.com/brightfold/agency-ops/pkg/db"
)

// toModelStaff converts a database staff record to a domain staff member,
// attaching their calendar entries.
func toModelStaff(record db.Staff, entries []db.CalendarEntry) model.StaffMember {
	staff := model.StaffMember{
		ID:                    record.ID,
		FirstName:             record.FirstName,
		LastName:              record.LastName,
		Email:                 record.Email,
		Status:                record.Status,
		MonthlyAvailableHours: record.MonthlyAvailableHours,
	}

	for _, entry := range entries {
		if entry.StaffID == record.ID {
			staff.Calendar = append(staff.Calendar, toModelCalendarEntry(entry))
		}
	}

	return staff
}

// toModelBrief converts a database brief record to a domain brief
func toModelBrief(record db.Brief) model.Brief {
	return model.Brief{
		ID:       record.ID,
		Title:    record.Title,
		ClientID: record.ClientID,
		Status:   record.Status,
		DueDate:  record.DueDate,
		EstimatedHours: model.EstimatedHours{
			Shoot: record.ShootHours,
			Edit:  record.EditHours,
		},
		AssignedStaff: record.AssignedStaff,
	}
}

// toModelCalendarEntry converts a database calendar entry record to a domain entry
func toModelCalendarEntry(record db.CalendarEntry) model.CalendarEntry {
	return model.CalendarEntry{
		ID:        record.ID,
		StaffID:   record.StaffID,
		BriefID:   record.BriefID,
		Type:      model.EntryType(record.Type),
		StartTime: record.StartTime,
		EndTime:   record.EndTime,
	}
}

// toModelBriefs converts a slice of database brief records
func toModelBriefs(records []db.Brief) []model.Brief {
	briefs := make([]model.Brief, len(records))
	for i, record := range records {
		briefs[i] = toModelBrief(record)
	}
	return briefs
}

// filterActiveStaff filters staff to only those with "Active" status (case-insensitive)
func filterActiveStaff(staff []model.StaffMember) []model.StaffMember {
	active := make([]model.StaffMember, 0)
	for _, member := range staff {
		if strings.EqualFold(member.Status, "Active") {
			active = append(active, member)
		}
	}
	return active
}

// staffName formats a staff member's display name
func staffName(staff model.StaffMember) string {
	return fmt.Sprintf("%s %s", staff.FirstName, staff.LastName)
}

// expandRecurringBlocks expands configured recurring blocks into concrete
// blocking intervals between from and to. Each rrule occurrence date is
// combined with the block's fixed start clock time and duration.
func expandRecurringBlocks(blocks []config.RecurringBlock, from, to time.Time) ([]scheduling.Interval, error) {
	intervals := make([]scheduling.Interval, 0)

	for i, block := range blocks {
		rule, err := rrule.StrToRRule(block.RRule)
		if err != nil {
			return nil, fmt.Errorf("failed to parse rrule for recurring block %d: %w", i, err)
		}

		clock, err := time.Parse("15:04", block.StartTime)
		if err != nil {
			return nil, fmt.Errorf("failed to parse startTime for recurring block %d: %w", i, err)
		}

		// Anchor the rule at the search start so occurrences land in range
		rule.DTStart(from)

		for _, occurrence := range rule.Between(from, to, true) {
			start := time.Date(
				occurrence.Year(), occurrence.Month(), occurrence.Day(),
				clock.Hour(), clock.Minute(), 0, 0, from.Location(),
			)
			intervals = append(intervals, scheduling.Interval{
				Start: start,
				End:   start.Add(time.Duration(block.DurationMinutes) * time.Minute),
			})
		}
	}

	return intervals, nil
}

// Package availability computes remaining bookable hours for staff
// members from their calendar and brief assignments. All functions are
// pure: they operate on caller-supplied snapshots and have no side
// effects, so concurrent calls are safe.
package availability

import (
	"time"

	"github.com/brightfold/agency-ops/pkg/core/model"
)

// Utilization reports a staff member's load for the current calendar week.
//
// Booked counts only calendar entries inside the current Sunday–Saturday
// week. Upcoming is the full sum of assigned-brief hours regardless of
// week, a forward-looking indicator of committed-but-unscheduled work.
// Total is the raw capacity baseline, not prorated to the week. These
// denominators are intentionally different from HoursExcludingBrief.
type Utilization struct {
	Available float64
	Booked    float64
	Total     float64
	Upcoming  float64
}

// HoursExcludingBrief returns the staff member's remaining available
// hours: capacity minus all-time calendar hours minus the full estimated
// hours of every assigned brief. excludeBriefID removes one brief from
// the assigned tally, used when deciding whether to add the staff member
// to that brief so it does not double-count. Pass "" to exclude nothing.
//
// The result is floored at zero; callers that need to detect overbooking
// should use Overcommitted instead.
//
// Calendar hours are summed across all time, not scoped to the current
// month, even though the capacity baseline is monthly. The mismatch is
// intentional and load-bearing: downstream reports depend on it.
func HoursExcludingBrief(staff model.StaffMember, allBriefs []model.Brief, excludeBriefID string) float64 {
	committed := calendarHours(staff) + assignedBriefHours(staff.ID, allBriefs, excludeBriefID)

	remaining := staff.MonthlyAvailableHours - committed
	if remaining < 0 {
		return 0
	}
	return remaining
}

// Overcommitted returns the staff member's total committed hours
// (calendar plus assigned briefs) and whether that total exceeds their
// capacity baseline.
func Overcommitted(staff model.StaffMember, allBriefs []model.Brief) (float64, bool) {
	committed := calendarHours(staff) + assignedBriefHours(staff.ID, allBriefs, "")
	return committed, committed > staff.MonthlyAvailableHours
}

// WeeklyUtilization computes the staff member's utilization for the
// calendar week containing now (weeks run Sunday through Saturday).
func WeeklyUtilization(staff model.StaffMember, allBriefs []model.Brief, now time.Time) Utilization {
	weekStart := startOfWeek(now)
	weekEnd := weekStart.AddDate(0, 0, 7)

	var booked float64
	for _, entry := range staff.Calendar {
		if entry.StartTime.Before(weekEnd) && entry.EndTime.After(weekStart) {
			booked += entry.Hours()
		}
	}

	util := Utilization{
		Booked:   booked,
		Total:    staff.MonthlyAvailableHours,
		Upcoming: assignedBriefHours(staff.ID, allBriefs, ""),
	}

	util.Available = util.Total - util.Booked
	if util.Available < 0 {
		util.Available = 0
	}

	return util
}

// BriefShareHours returns the brief's total estimated hours divided
// evenly across its assignees. This divided figure is used only for
// aggregate utilization percentages; assignment eligibility checks use
// the full undivided total via HoursExcludingBrief. The two conventions
// deliberately disagree.
func BriefShareHours(brief model.Brief) float64 {
	if len(brief.AssignedStaff) == 0 {
		return brief.EstimatedHours.Total()
	}
	return brief.EstimatedHours.Total() / float64(len(brief.AssignedStaff))
}

// calendarHours sums the duration of every calendar entry regardless of
// date or type.
func calendarHours(staff model.StaffMember) float64 {
	var total float64
	for _, entry := range staff.Calendar {
		total += entry.Hours()
	}
	return total
}

// assignedBriefHours sums the full shoot+edit estimate of every brief
// assigned to the staff member, skipping excludeBriefID if non-empty.
func assignedBriefHours(staffID string, allBriefs []model.Brief, excludeBriefID string) float64 {
	var total float64
	for _, brief := range allBriefs {
		if excludeBriefID != "" && brief.ID == excludeBriefID {
			continue
		}
		if brief.IsAssigned(staffID) {
			total += brief.EstimatedHours.Total()
		}
	}
	return total
}

// startOfWeek returns midnight on the Sunday of the week containing t.
func startOfWeek(t time.Time) time.Time {
	normalized := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return normalized.AddDate(0, 0, -int(normalized.Weekday()))
}

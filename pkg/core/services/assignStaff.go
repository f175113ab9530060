package services

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/brightfold/agency-ops/pkg/core/availability"
	"github.com/brightfold/agency-ops/pkg/db"
)

// AssignStaffStore defines the database operations needed for managing assignments
type AssignStaffStore interface {
	GetBriefByID(ctx context.Context, id string) (*db.Brief, error)
	GetBriefs(ctx context.Context) ([]db.Brief, error)
	GetStaffByID(ctx context.Context, id string) (*db.Staff, error)
	GetCalendarEntriesForStaff(ctx context.Context, staffID string) ([]db.CalendarEntry, error)
	AddBriefAssignment(ctx context.Context, briefID, staffID string) error
	RemoveBriefAssignment(ctx context.Context, briefID, staffID string) error
}

// AssignStaffResult contains the assignment outcome
type AssignStaffResult struct {
	BriefID        string
	StaffID        string
	StaffName      string
	RequiredHours  float64
	AvailableHours float64
	Forced         bool
}

// AssignStaff assigns a staff member to a brief after checking they have
// enough available hours for the brief's full estimate. The check uses
// the undivided shoot+edit total regardless of how many others are
// already assigned. If force is true an over-capacity assignment is
// allowed through with a warning.
func AssignStaff(
	ctx context.Context,
	database AssignStaffStore,
	logger *zap.Logger,
	briefID string,
	staffID string,
	force bool,
) (*AssignStaffResult, error) {
	logger.Debug("Starting assignStaff",
		zap.String("brief_id", briefID),
		zap.String("staff_id", staffID),
		zap.Bool("force", force))

	// Step 1: Fetch the brief and staff member
	briefRecord, err := database.GetBriefByID(ctx, briefID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch brief: %w", err)
	}
	brief := toModelBrief(*briefRecord)

	if brief.IsAssigned(staffID) {
		return nil, fmt.Errorf("staff %s is already assigned to brief %s", staffID, briefID)
	}

	staffRecord, err := database.GetStaffByID(ctx, staffID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch staff: %w", err)
	}

	if !strings.EqualFold(staffRecord.Status, "Active") {
		return nil, fmt.Errorf("staff %s is not active", staffID)
	}

	entries, err := database.GetCalendarEntriesForStaff(ctx, staffID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch calendar entries: %w", err)
	}
	staff := toModelStaff(*staffRecord, entries)

	// Step 2: Check capacity against every other assigned brief
	briefRecords, err := database.GetBriefs(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch briefs: %w", err)
	}
	allBriefs := toModelBriefs(briefRecords)

	requiredHours := brief.EstimatedHours.Total()
	availableHours := availability.HoursExcludingBrief(staff, allBriefs, briefID)

	logger.Debug("Capacity check",
		zap.Float64("required_hours", requiredHours),
		zap.Float64("available_hours", availableHours))

	if availableHours < requiredHours {
		if !force {
			return nil, fmt.Errorf(
				"staff %s has %.1fh available but brief requires %.1fh (use force to assign anyway)",
				staffID, availableHours, requiredHours,
			)
		}
		logger.Warn("Assigning over capacity",
			zap.String("staff_id", staffID),
			zap.Float64("required_hours", requiredHours),
			zap.Float64("available_hours", availableHours))
	}

	// Step 3: Save the assignment
	if err := database.AddBriefAssignment(ctx, briefID, staffID); err != nil {
		return nil, fmt.Errorf("failed to save assignment: %w", err)
	}

	logger.Info("Staff assigned",
		zap.String("brief_id", briefID),
		zap.String("staff_id", staffID))

	return &AssignStaffResult{
		BriefID:        briefID,
		StaffID:        staffID,
		StaffName:      staffName(staff),
		RequiredHours:  requiredHours,
		AvailableHours: availableHours,
		Forced:         force && availableHours < requiredHours,
	}, nil
}

// UnassignStaff removes a staff member from a brief
func UnassignStaff(
	ctx context.Context,
	database AssignStaffStore,
	logger *zap.Logger,
	briefID string,
	staffID string,
) error {
	logger.Debug("Starting unassignStaff",
		zap.String("brief_id", briefID),
		zap.String("staff_id", staffID))

	briefRecord, err := database.GetBriefByID(ctx, briefID)
	if err != nil {
		return fmt.Errorf("failed to fetch brief: %w", err)
	}

	if !toModelBrief(*briefRecord).IsAssigned(staffID) {
		return fmt.Errorf("staff %s is not assigned to brief %s", staffID, briefID)
	}

	if err := database.RemoveBriefAssignment(ctx, briefID, staffID); err != nil {
		return fmt.Errorf("failed to remove assignment: %w", err)
	}

	logger.Info("Staff unassigned",
		zap.String("brief_id", briefID),
		zap.String("staff_id", staffID))

	return nil
}

package services

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/brightfold/agency-ops/internal/config"
	"github.com/brightfold/agency-ops/pkg/core/model"
	"github.com/brightfold/agency-ops/pkg/core/scheduling"
	"github.com/brightfold/agency-ops/pkg/db"
)

// PlanBookingStore defines the database operations needed for planning a booking
type PlanBookingStore interface {
	GetBriefByID(ctx context.Context, id string) (*db.Brief, error)
	GetStaff(ctx context.Context) ([]db.Staff, error)
	GetCalendarEntries(ctx context.Context) ([]db.CalendarEntry, error)
}

// PlanBookingArgs describes one slot search within a booking session
type PlanBookingArgs struct {
	BriefID string
	Phase   model.Phase

	// RemainingHours is the phase's unselected balance, tracked by the
	// caller's session. Zero or negative means the full phase estimate.
	RemainingHours float64

	// OtherPhaseSlots are slots tentatively selected for the other phase,
	// blocking their staff even before anything is persisted.
	OtherPhaseSlots []model.TimeSlot

	// Now anchors the search range. Zero means time.Now().
	Now time.Time
}

// PlanBookingResult contains the ranked candidate slots for one phase
type PlanBookingResult struct {
	Brief          model.Brief
	Phase          model.Phase
	RemainingHours float64
	Slots          []model.TimeSlot
}

// PlanBriefBooking finds ranked candidate slots for one phase of a brief.
// It searches every active staff member's calendar inside the configured
// search window, stopping the day before the brief's due date. An empty
// slot list is a legitimate outcome, not an error.
func PlanBriefBooking(
	ctx context.Context,
	database PlanBookingStore,
	cfg *config.Config,
	logger *zap.Logger,
	args PlanBookingArgs,
) (*PlanBookingResult, error) {
	logger.Debug("Starting planBriefBooking",
		zap.String("brief_id", args.BriefID),
		zap.String("phase", string(args.Phase)))

	if !args.Phase.IsValid() {
		return nil, fmt.Errorf("invalid phase: %s", args.Phase)
	}

	now := args.Now
	if now.IsZero() {
		now = time.Now()
	}

	// Step 1: Fetch the brief
	briefRecord, err := database.GetBriefByID(ctx, args.BriefID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch brief: %w", err)
	}
	brief := toModelBrief(*briefRecord)
	logger.Debug("Found brief",
		zap.String("title", brief.Title),
		zap.Time("due_date", brief.DueDate))

	remaining := args.RemainingHours
	if remaining <= 0 {
		remaining = brief.EstimatedHours.ForPhase(args.Phase)
	}

	// Step 2: Fetch staff and calendars
	staffRecords, err := database.GetStaff(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch staff: %w", err)
	}
	logger.Debug("Found staff", zap.Int("count", len(staffRecords)))

	entries, err := database.GetCalendarEntries(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch calendar entries: %w", err)
	}
	logger.Debug("Found calendar entries", zap.Int("count", len(entries)))

	roster := make([]model.StaffMember, 0, len(staffRecords))
	for _, record := range staffRecords {
		roster = append(roster, toModelStaff(record, entries))
	}
	roster = filterActiveStaff(roster)
	logger.Debug("Active staff", zap.Int("count", len(roster)))

	// Step 3: Expand studio-wide recurring blocks across the search range
	searchEnd := now.AddDate(0, 0, cfg.DefaultSearchWindowDays)
	extraBlocks, err := expandRecurringBlocks(cfg.RecurringBlocks, now, searchEnd)
	if err != nil {
		return nil, fmt.Errorf("failed to expand recurring blocks: %w", err)
	}
	logger.Debug("Expanded recurring blocks", zap.Int("count", len(extraBlocks)))

	// Step 4: Run the slot search
	slots := scheduling.FindAvailableSlots(scheduling.SearchParams{
		Staff:            roster,
		Phase:            args.Phase,
		RemainingHours:   remaining,
		DueDate:          brief.DueDate,
		SearchWindowDays: cfg.DefaultSearchWindowDays,
		OtherPhaseSlots:  args.OtherPhaseSlots,
		ExtraBlocks:      extraBlocks,
		Now:              now,
	})

	logger.Info("Slot search completed",
		zap.String("brief_id", brief.ID),
		zap.String("phase", string(args.Phase)),
		zap.Float64("remaining_hours", remaining),
		zap.Int("slot_count", len(slots)))

	return &PlanBookingResult{
		Brief:          brief,
		Phase:          args.Phase,
		RemainingHours: remaining,
		Slots:          slots,
	}, nil
}

package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/brightfold/agency-ops/pkg/core/model"
	"github.com/brightfold/agency-ops/pkg/core/scheduling"
	"github.com/brightfold/agency-ops/pkg/db"
)

// CommitBookingStore defines the database operations needed for committing a booking
type CommitBookingStore interface {
	GetCalendarEntriesForStaff(ctx context.Context, staffID string) ([]db.CalendarEntry, error)
	InsertCalendarEntries(ctx context.Context, entries []db.CalendarEntry) error
}

// CommitBookingResult contains the persisted booking details
type CommitBookingResult struct {
	BriefID    string
	EntryIDs   []string
	TotalHours float64
}

// CommitBooking persists a completed booking session as calendar entries.
// Both phases must be fully covered: a session with any shortfall is
// rejected with an IncompleteBookingError and nothing is written. Each
// selected slot is re-checked against the staff member's current
// calendar, so slots that were found before a competing booking landed
// (or that never came from the finder at all) are rejected with a
// ConflictError instead of being written over existing entries.
func CommitBooking(
	ctx context.Context,
	database CommitBookingStore,
	logger *zap.Logger,
	session *scheduling.Session,
) (*CommitBookingResult, error) {
	logger.Debug("Starting commitBooking", zap.String("brief_id", session.BriefID))

	if err := session.Finalize(); err != nil {
		logger.Warn("Session incomplete, refusing to commit",
			zap.String("brief_id", session.BriefID),
			zap.Error(err))
		return nil, err
	}

	selected := session.AllSelected()

	if err := checkCalendarConflicts(ctx, database, selected); err != nil {
		logger.Warn("Selected slot conflicts with the current calendar",
			zap.String("brief_id", session.BriefID),
			zap.Error(err))
		return nil, err
	}
	entries := make([]db.CalendarEntry, len(selected))
	entryIDs := make([]string, len(selected))
	var totalHours float64

	for i, slot := range selected {
		id := uuid.New().String()
		entries[i] = db.CalendarEntry{
			ID:        id,
			StaffID:   slot.StaffID,
			BriefID:   session.BriefID,
			Type:      string(model.EntryBooked),
			StartTime: slot.Start,
			EndTime:   slot.End,
		}
		entryIDs[i] = id
		totalHours += slot.DurationHours
	}

	if err := database.InsertCalendarEntries(ctx, entries); err != nil {
		return nil, fmt.Errorf("failed to save booking: %w", err)
	}

	logger.Info("Booking committed",
		zap.String("brief_id", session.BriefID),
		zap.Int("entry_count", len(entries)),
		zap.Float64("total_hours", totalHours))

	return &CommitBookingResult{
		BriefID:    session.BriefID,
		EntryIDs:   entryIDs,
		TotalHours: totalHours,
	}, nil
}

// checkCalendarConflicts verifies that no selected slot overlaps an
// existing calendar entry of its staff member. Calendars are fetched
// once per staff member.
func checkCalendarConflicts(ctx context.Context, database CommitBookingStore, selected []model.TimeSlot) error {
	calendars := make(map[string][]db.CalendarEntry)

	for _, slot := range selected {
		entries, ok := calendars[slot.StaffID]
		if !ok {
			var err error
			entries, err = database.GetCalendarEntriesForStaff(ctx, slot.StaffID)
			if err != nil {
				return fmt.Errorf("failed to load calendar for staff %s: %w", slot.StaffID, err)
			}
			calendars[slot.StaffID] = entries
		}

		for _, entry := range entries {
			if entry.StartTime.Before(slot.End) && entry.EndTime.After(slot.Start) {
				return &scheduling.ConflictError{
					StaffID:   slot.StaffID,
					Date:      slot.Date,
					Candidate: slot,
					Existing: model.TimeSlot{
						StaffID: entry.StaffID,
						Start:   entry.StartTime,
						End:     entry.EndTime,
					},
				}
			}
		}
	}

	return nil
}

// CancelBookingStore defines the database operations needed for cancelling a booking
type CancelBookingStore interface {
	DeleteCalendarEntry(ctx context.Context, id string) error
}

// CancelBooking deletes a single booked calendar entry. Entries are never
// edited in place: rescheduling is a cancel followed by a fresh booking.
func CancelBooking(
	ctx context.Context,
	database CancelBookingStore,
	logger *zap.Logger,
	entryID string,
) error {
	logger.Debug("Starting cancelBooking", zap.String("entry_id", entryID))

	if err := database.DeleteCalendarEntry(ctx, entryID); err != nil {
		return fmt.Errorf("failed to cancel booking %s: %w", entryID, err)
	}

	logger.Info("Booking cancelled", zap.String("entry_id", entryID))
	return nil
}

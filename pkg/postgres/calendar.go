package postgres

import (
	"context"
	"fmt"

	"github.com/brightfold/agency-ops/pkg/db"
)

// GetCalendarEntries retrieves all calendar entry records
func (d *DB) GetCalendarEntries(ctx context.Context) ([]db.CalendarEntry, error) {
	return d.queryCalendarEntries(ctx, `
		SELECT id, staff_id, COALESCE(brief_id::text, ''), entry_type, start_time, end_time
		FROM calendar_entry
		ORDER BY start_time
	`)
}

// GetCalendarEntriesForStaff retrieves calendar entries for one staff member
func (d *DB) GetCalendarEntriesForStaff(ctx context.Context, staffID string) ([]db.CalendarEntry, error) {
	return d.queryCalendarEntries(ctx, `
		SELECT id, staff_id, COALESCE(brief_id::text, ''), entry_type, start_time, end_time
		FROM calendar_entry
		WHERE staff_id = $1
		ORDER BY start_time
	`, staffID)
}

// InsertCalendarEntries inserts calendar entry records in a single
// transaction, so a committed booking is either fully written or not at all.
func (d *DB) InsertCalendarEntries(ctx context.Context, entries []db.CalendarEntry) error {
	if len(entries) == 0 {
		return nil
	}

	tx, err := d.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	for _, entry := range entries {
		briefID := any(entry.BriefID)
		if entry.BriefID == "" {
			briefID = nil
		}

		_, err := tx.Exec(ctx, `
			INSERT INTO calendar_entry (id, staff_id, brief_id, entry_type, start_time, end_time)
			VALUES ($1, $2, $3, $4, $5, $6)
		`, entry.ID, entry.StaffID, briefID, entry.Type, entry.StartTime, entry.EndTime)
		if err != nil {
			return fmt.Errorf("failed to insert calendar entry %s: %w", entry.ID, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit calendar entries: %w", err)
	}

	return nil
}

// DeleteCalendarEntry deletes a calendar entry by ID. Cancelled bookings
// are deleted and re-created, never updated.
func (d *DB) DeleteCalendarEntry(ctx context.Context, id string) error {
	tag, err := d.pool.Exec(ctx, `
		DELETE FROM calendar_entry WHERE id = $1
	`, id)
	if err != nil {
		return fmt.Errorf("failed to delete calendar entry %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return db.ErrNotFound
	}
	return nil
}

func (d *DB) queryCalendarEntries(ctx context.Context, query string, args ...any) ([]db.CalendarEntry, error) {
	rows, err := d.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query calendar entries: %w", err)
	}
	defer rows.Close()

	var entries []db.CalendarEntry
	for rows.Next() {
		var e db.CalendarEntry
		if err := rows.Scan(&e.ID, &e.StaffID, &e.BriefID, &e.Type, &e.StartTime, &e.EndTime); err != nil {
			return nil, fmt.Errorf("failed to scan calendar entry: %w", err)
		}
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating calendar entries: %w", err)
	}

	return entries, nil
}

package services

import (
	"context"
	"time"

	"github.com/brightfold/agency-ops/pkg/db"
)

// mockStore is an in-memory db.Store for service tests. Writes are
// recorded so tests can assert on what would have been persisted.
type mockStore struct {
	staff   []db.Staff
	briefs  []db.Brief
	entries []db.CalendarEntry

	insertedEntries    []db.CalendarEntry
	addedAssignments   [][2]string
	removedAssignments [][2]string
	deletedEntryIDs    []string

	err error
}

func (m *mockStore) GetStaff(ctx context.Context) ([]db.Staff, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.staff, nil
}

func (m *mockStore) GetStaffByID(ctx context.Context, id string) (*db.Staff, error) {
	if m.err != nil {
		return nil, m.err
	}
	for i := range m.staff {
		if m.staff[i].ID == id {
			return &m.staff[i], nil
		}
	}
	return nil, db.ErrNotFound
}

func (m *mockStore) GetBriefs(ctx context.Context) ([]db.Brief, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.briefs, nil
}

func (m *mockStore) GetBriefByID(ctx context.Context, id string) (*db.Brief, error) {
	if m.err != nil {
		return nil, m.err
	}
	for i := range m.briefs {
		if m.briefs[i].ID == id {
			return &m.briefs[i], nil
		}
	}
	return nil, db.ErrNotFound
}

func (m *mockStore) AddBriefAssignment(ctx context.Context, briefID, staffID string) error {
	if m.err != nil {
		return m.err
	}
	m.addedAssignments = append(m.addedAssignments, [2]string{briefID, staffID})
	return nil
}

func (m *mockStore) RemoveBriefAssignment(ctx context.Context, briefID, staffID string) error {
	if m.err != nil {
		return m.err
	}
	m.removedAssignments = append(m.removedAssignments, [2]string{briefID, staffID})
	return nil
}

func (m *mockStore) GetCalendarEntries(ctx context.Context) ([]db.CalendarEntry, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.entries, nil
}

func (m *mockStore) GetCalendarEntriesForStaff(ctx context.Context, staffID string) ([]db.CalendarEntry, error) {
	if m.err != nil {
		return nil, m.err
	}
	var filtered []db.CalendarEntry
	for _, entry := range m.entries {
		if entry.StaffID == staffID {
			filtered = append(filtered, entry)
		}
	}
	return filtered, nil
}

func (m *mockStore) InsertCalendarEntries(ctx context.Context, entries []db.CalendarEntry) error {
	if m.err != nil {
		return m.err
	}
	m.insertedEntries = append(m.insertedEntries, entries...)
	return nil
}

func (m *mockStore) DeleteCalendarEntry(ctx context.Context, id string) error {
	if m.err != nil {
		return m.err
	}
	for _, entry := range m.entries {
		if entry.ID == id {
			m.deletedEntryIDs = append(m.deletedEntryIDs, id)
			return nil
		}
	}
	return db.ErrNotFound
}

// date returns midnight UTC on the given day
func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

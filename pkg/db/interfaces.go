package db

import (
	"context"
	"errors"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("record not found")

// StaffStore defines the interface for staff database operations
type StaffStore interface {
	GetStaff(ctx context.Context) ([]Staff, error)
	GetStaffByID(ctx context.Context, id string) (*Staff, error)
}

// BriefStore defines the interface for brief database operations
type BriefStore interface {
	GetBriefs(ctx context.Context) ([]Brief, error)
	GetBriefByID(ctx context.Context, id string) (*Brief, error)
	AddBriefAssignment(ctx context.Context, briefID, staffID string) error
	RemoveBriefAssignment(ctx context.Context, briefID, staffID string) error
}

// CalendarStore defines the interface for calendar entry database
// operations. Entries are append-and-delete only: cancellation removes
// the row rather than mutating it.
type CalendarStore interface {
	GetCalendarEntries(ctx context.Context) ([]CalendarEntry, error)
	GetCalendarEntriesForStaff(ctx context.Context, staffID string) ([]CalendarEntry, error)
	InsertCalendarEntries(ctx context.Context, entries []CalendarEntry) error
	DeleteCalendarEntry(ctx context.Context, id string) error
}

// Store combines all database operations
type Store interface {
	StaffStore
	BriefStore
	CalendarStore
}

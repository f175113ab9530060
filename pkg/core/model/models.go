package model

import "time"

// Phase identifies which half of a brief's work a booking covers.
type Phase string

const (
	PhaseShoot Phase = "shoot"
	PhaseEdit  Phase = "edit"
)

func (p Phase) IsValid() bool {
	return p == PhaseShoot || p == PhaseEdit
}

// EntryType classifies a calendar entry. The type is semantic only:
// every entry blocks its interval regardless of type.
type EntryType string

const (
	EntryBooked  EntryType = "booked"
	EntryBlocked EntryType = "blocked"
	EntryHoliday EntryType = "holiday"
	EntryMeeting EntryType = "meeting"
)

func (t EntryType) IsValid() bool {
	switch t {
	case EntryBooked, EntryBlocked, EntryHoliday, EntryMeeting:
		return true
	}
	return false
}

// StaffMember represents a bookable member of staff
type StaffMember struct {
	ID                    string
	FirstName             string
	LastName              string
	Email                 string
	Status                string
	MonthlyAvailableHours float64
	Calendar              []CalendarEntry
}

// CalendarEntry represents a committed block of time on a staff member's
// calendar. Entries are never mutated in place: a cancelled booking is
// deleted and a replacement inserted.
type CalendarEntry struct {
	ID        string
	StaffID   string
	BriefID   string // empty when not linked to a brief
	Type      EntryType
	StartTime time.Time // EndTime must be after StartTime
	EndTime   time.Time
}

// Hours returns the entry duration in hours.
func (e CalendarEntry) Hours() float64 {
	return e.EndTime.Sub(e.StartTime).Hours()
}

// EstimatedHours splits a brief's estimate across its two phases.
type EstimatedHours struct {
	Shoot float64
	Edit  float64
}

// Total returns the full work the brief demands across both phases.
func (h EstimatedHours) Total() float64 {
	return h.Shoot + h.Edit
}

// ForPhase returns the estimate for a single phase.
func (h EstimatedHours) ForPhase(phase Phase) float64 {
	if phase == PhaseShoot {
		return h.Shoot
	}
	return h.Edit
}

// Brief represents a client project moving through the workflow
type Brief struct {
	ID             string
	Title          string
	ClientID       string
	Status         string
	DueDate        time.Time
	EstimatedHours EstimatedHours
	AssignedStaff  []string
}

// IsAssigned reports whether the given staff member is assigned to the brief.
func (b Brief) IsAssigned(staffID string) bool {
	for _, id := range b.AssignedStaff {
		if id == staffID {
			return true
		}
	}
	return false
}

// TimeSlot is a candidate bookable interval produced by the slot finder.
// Slots are ephemeral: they exist only during a booking session and are
// not persisted until the session is committed as calendar entries.
type TimeSlot struct {
	StaffID       string
	Phase         Phase
	Date          time.Time // midnight on the slot's day
	Start         time.Time
	End           time.Time
	DurationHours float64
}

// Overlaps reports whether two slots overlap in time using half-open
// interval semantics: [Start, End).
func (s TimeSlot) Overlaps(other TimeSlot) bool {
	return other.Start.Before(s.End) && other.End.After(s.Start)
}

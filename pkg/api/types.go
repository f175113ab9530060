package api

import (
	"fmt"
	"time"

	"github.com/brightfold/agency-ops/pkg/core/model"
	"github.com/brightfold/agency-ops/pkg/core/services"
	"github.com/brightfold/agency-ops/pkg/db"
)

// timeSlotJSON is the wire form of a candidate or selected slot
type timeSlotJSON struct {
	StaffID       string    `json:"staffId"`
	Phase         string    `json:"phase"`
	Date          string    `json:"date"`
	Start         time.Time `json:"start"`
	End           time.Time `json:"end"`
	DurationHours float64   `json:"durationHours"`
}

func toTimeSlotJSON(slot model.TimeSlot) timeSlotJSON {
	return timeSlotJSON{
		StaffID:       slot.StaffID,
		Phase:         string(slot.Phase),
		Date:          slot.Date.Format("2006-01-02"),
		Start:         slot.Start,
		End:           slot.End,
		DurationHours: slot.DurationHours,
	}
}

func (s timeSlotJSON) toModel() (model.TimeSlot, error) {
	phase := model.Phase(s.Phase)
	if !phase.IsValid() {
		return model.TimeSlot{}, fmt.Errorf("invalid phase: %s", s.Phase)
	}

	date, err := time.Parse("2006-01-02", s.Date)
	if err != nil {
		return model.TimeSlot{}, fmt.Errorf("invalid date: %s", s.Date)
	}

	if !s.End.After(s.Start) {
		return model.TimeSlot{}, fmt.Errorf("slot end must be after start")
	}

	// Conflict detection keys slots by date, so it must match the start
	if s.Start.Year() != date.Year() || s.Start.YearDay() != date.YearDay() {
		return model.TimeSlot{}, fmt.Errorf("slot date %s does not match start %s", s.Date, s.Start.Format("2006-01-02"))
	}

	return model.TimeSlot{
		StaffID:       s.StaffID,
		Phase:         phase,
		Date:          date,
		Start:         s.Start,
		End:           s.End,
		DurationHours: s.End.Sub(s.Start).Hours(),
	}, nil
}

// findSlotsResponse is the response body for GET /briefs/{id}/slots
type findSlotsResponse struct {
	BriefID        string         `json:"briefId"`
	Phase          string         `json:"phase"`
	RemainingHours float64        `json:"remainingHours"`
	Slots          []timeSlotJSON `json:"slots"`
}

// createBookingRequest is the request body for POST /briefs/{id}/bookings
type createBookingRequest struct {
	Slots []timeSlotJSON `json:"slots"`
}

// createBookingResponse is the response body for a committed booking
type createBookingResponse struct {
	BriefID    string   `json:"briefId"`
	EntryIDs   []string `json:"entryIds"`
	TotalHours float64  `json:"totalHours"`
}

// assignStaffRequest is the request body for POST /briefs/{id}/assignments
type assignStaffRequest struct {
	StaffID string `json:"staffId"`
	Force   bool   `json:"force,omitempty"`
}

// assignStaffResponse is the response body for a saved assignment
type assignStaffResponse struct {
	BriefID        string  `json:"briefId"`
	StaffID        string  `json:"staffId"`
	StaffName      string  `json:"staffName"`
	RequiredHours  float64 `json:"requiredHours"`
	AvailableHours float64 `json:"availableHours"`
	Forced         bool    `json:"forced"`
}

// staffOverviewJSON is one row of GET /staff
type staffOverviewJSON struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Email          string  `json:"email"`
	Status         string  `json:"status"`
	AssignedBriefs int     `json:"assignedBriefs"`
	AvailableHours float64 `json:"availableHours"`
	Overcommitted  bool    `json:"overcommitted"`
}

func toStaffOverviewJSON(overview services.StaffOverview) staffOverviewJSON {
	return staffOverviewJSON{
		ID:             overview.Staff.ID,
		Name:           fmt.Sprintf("%s %s", overview.Staff.FirstName, overview.Staff.LastName),
		Email:          overview.Staff.Email,
		Status:         overview.Staff.Status,
		AssignedBriefs: overview.AssignedBriefs,
		AvailableHours: overview.AvailableHours,
		Overcommitted:  overview.Overcommitted,
	}
}

// calendarEntryJSON is the wire form of a committed calendar entry
type calendarEntryJSON struct {
	ID        string    `json:"id"`
	BriefID   string    `json:"briefId,omitempty"`
	Type      string    `json:"type"`
	StartTime time.Time `json:"startTime"`
	EndTime   time.Time `json:"endTime"`
}

// staffDetailJSON is the response body for GET /staff/{staffID}
type staffDetailJSON struct {
	ID                    string              `json:"id"`
	Name                  string              `json:"name"`
	Email                 string              `json:"email"`
	Status                string              `json:"status"`
	MonthlyAvailableHours float64             `json:"monthlyAvailableHours"`
	Calendar              []calendarEntryJSON `json:"calendar"`
}

// briefJSON is the wire form of a brief
type briefJSON struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	ClientID      string    `json:"clientId"`
	Status        string    `json:"status"`
	DueDate       time.Time `json:"dueDate"`
	ShootHours    float64   `json:"shootHours"`
	EditHours     float64   `json:"editHours"`
	AssignedStaff []string  `json:"assignedStaff"`
}

func toBriefJSON(record db.Brief) briefJSON {
	assigned := record.AssignedStaff
	if assigned == nil {
		assigned = []string{}
	}
	return briefJSON{
		ID:            record.ID,
		Title:         record.Title,
		ClientID:      record.ClientID,
		Status:        record.Status,
		DueDate:       record.DueDate,
		ShootHours:    record.ShootHours,
		EditHours:     record.EditHours,
		AssignedStaff: assigned,
	}
}

// staffUtilizationJSON is one row of GET /staff/utilization
type staffUtilizationJSON struct {
	StaffID        string  `json:"staffId"`
	Name           string  `json:"name"`
	BookedHours    float64 `json:"bookedHours"`
	AvailableHours float64 `json:"availableHours"`
	TotalHours     float64 `json:"totalHours"`
	UpcomingHours  float64 `json:"upcomingHours"`
	ShareHours     float64 `json:"shareHours"`
}

// teamUtilizationResponse is the response body for GET /staff/utilization
type teamUtilizationResponse struct {
	Staff         []staffUtilizationJSON `json:"staff"`
	TotalBooked   float64                `json:"totalBooked"`
	TotalCapacity float64                `json:"totalCapacity"`
	BookedPercent float64                `json:"bookedPercent"`
	OverbookedIDs []string               `json:"overbookedIds,omitempty"`
}

package db

import "time"

// Staff represents a database staff record
type Staff struct {
	ID                    string
	FirstName             string
	LastName              string
	Email                 string
	Status                string
	MonthlyAvailableHours float64
}

// Brief represents a database brief record
type Brief struct {
	ID            string
	Title         string
	ClientID      string
	Status        string
	DueDate       time.Time
	ShootHours    float64
	EditHours     float64
	AssignedStaff []string
}

// CalendarEntry represents a database calendar entry record
type CalendarEntry struct {
	ID        string
	StaffID   string
	BriefID   string // empty when not linked to a brief
	Type      string
	StartTime time.Time
	EndTime   time.Time
}

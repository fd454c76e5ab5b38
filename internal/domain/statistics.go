package domain

import (
	"math"
	"time"
)

type ParticipantSource string

const (
	SourceRegistration ParticipantSource = "registration"
	SourceGuest        ParticipantSource = "guest"
)

// Participant is one row of the merged registration and approved-guest view.
type Participant struct {
	Source       ParticipantSource `json:"source"`
	ID           string            `json:"id"`
	Name         string            `json:"name"`
	Phone        string            `json:"phone"`
	Email        string            `json:"email"`
	CheckInCode  string            `json:"checkInCode"`
	CheckedIn    bool              `json:"checkedIn"`
	Cancelled    bool              `json:"cancelled"`
	CheckInTime  *time.Time        `json:"checkInTime"`
	RegisteredAt time.Time         `json:"registeredAt"`
	CustomFields map[string]string `json:"customFields"`
}

type EventStatistics struct {
	Event          *Event         `json:"event"`
	Participants   []*Participant `json:"participants"`
	FieldNames     []string       `json:"fieldNames"`
	Registered     int            `json:"registered"`
	CheckedIn      int            `json:"checkedIn"`
	NotCheckedIn   int            `json:"notCheckedIn"`
	Cancelled      int            `json:"cancelled"`
	AttendanceRate float64        `json:"attendanceRate"`
}

// AttendanceRate returns checkedIn/registered as a percentage rounded to 2 decimals.
func AttendanceRate(checkedIn, registered int) float64 {
	if registered == 0 {
		return 0
	}
	return math.Round(float64(checkedIn)/float64(registered)*100*100) / 100
}

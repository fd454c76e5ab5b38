package domain

import "time"

type RegistrationStatus int8

const (
	RegistrationStatusRegistered RegistrationStatus = 1
	RegistrationStatusCheckedIn  RegistrationStatus = 2
	RegistrationStatusCancelled  RegistrationStatus = 3
)

// ActiveRegistrationStatuses count toward event capacity.
var ActiveRegistrationStatuses = []RegistrationStatus{RegistrationStatusRegistered, RegistrationStatusCheckedIn}

func (s RegistrationStatus) String() string {
	switch s {
	case RegistrationStatusRegistered:
		return "Đã đăng ký"
	case RegistrationStatusCheckedIn:
		return "Đã check-in"
	case RegistrationStatusCancelled:
		return "Đã hủy"
	}
	return "Không xác định"
}

type EventRegistration struct {
	ID          string             `json:"id"`
	EventID     string             `json:"eventId"`
	UserZaloID  string             `json:"userZaloId"`
	Name        string             `json:"name"`
	PhoneNumber string             `json:"phoneNumber"`
	Email       string             `json:"email"`
	CheckInCode string             `json:"checkInCode"`
	Status      RegistrationStatus `json:"status"`
	CheckInTime *time.Time         `json:"checkInTime"`
	CreatedAt   time.Time          `json:"createdAt"`
	UpdatedAt   time.Time          `json:"updatedAt"`
}

type RegisterInput struct {
	EventID     string `validate:"required"`
	Name        string `validate:"required,max=255"`
	PhoneNumber string `validate:"required,phone_vn"`
	Email       string `validate:"omitempty,email"`
}

// CheckInResult reports which participant source matched a check-in code.
type CheckInResult struct {
	Source      ParticipantSource `json:"source"`
	ID          string            `json:"id"`
	EventID     string            `json:"eventId"`
	Name        string            `json:"name"`
	CheckInTime time.Time         `json:"checkInTime"`
}

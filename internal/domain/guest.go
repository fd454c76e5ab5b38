package domain

import "time"

type GuestStatus int8

const (
	GuestStatusPending    GuestStatus = 0
	GuestStatusApproved   GuestStatus = 1
	GuestStatusRejected   GuestStatus = 2
	GuestStatusCancelled  GuestStatus = 3
	GuestStatusRegistered GuestStatus = 5
)

func (s GuestStatus) Valid() bool {
	switch s {
	case GuestStatusPending, GuestStatusApproved, GuestStatusRejected,
		GuestStatusCancelled, GuestStatusRegistered:
		return true
	}
	return false
}

func (s GuestStatus) IsTerminal() bool {
	return s == GuestStatusApproved || s == GuestStatusRejected || s == GuestStatusCancelled
}

// AwaitsDecision reports whether an admin may still approve or reject the entry.
func (s GuestStatus) AwaitsDecision() bool {
	return s == GuestStatusPending || s == GuestStatusRegistered
}

// Engaged reports whether the entry still ties the guest to the event.
func (s GuestStatus) Engaged() bool {
	return s == GuestStatusApproved || s == GuestStatusRegistered
}

func (s GuestStatus) String() string {
	switch s {
	case GuestStatusPending:
		return "Chờ xử lý"
	case GuestStatusApproved:
		return "Đã duyệt"
	case GuestStatusRejected:
		return "Từ chối"
	case GuestStatusCancelled:
		return "Đã hủy"
	case GuestStatusRegistered:
		return "Chờ duyệt"
	}
	return "Không xác định"
}

// EventGuest is the container created when a member registers a batch of guests.
type EventGuest struct {
	ID         string    `json:"id"`
	EventID    string    `json:"eventId"`
	UserZaloID string    `json:"userZaloId"`
	Note       string    `json:"note"`
	CreatedAt  time.Time `json:"createdAt"`
}

type GuestList struct {
	ID            string      `json:"id"`
	EventGuestID  string      `json:"eventGuestId"`
	EventID       string      `json:"eventId"`
	GuestName     string      `json:"guestName"`
	GuestPhone    string      `json:"guestPhone"`
	GuestEmail    string      `json:"guestEmail"`
	Status        GuestStatus `json:"status"`
	CheckInCode   string      `json:"checkInCode"`
	CheckInStatus bool        `json:"checkInStatus"`
	CheckInTime   *time.Time  `json:"checkInTime"`
	CreatedAt     time.Time   `json:"createdAt"`
	UpdatedAt     time.Time   `json:"updatedAt"`
}

type GuestInput struct {
	GuestName  string `validate:"required,max=255"`
	GuestPhone string `validate:"required,phone_vn"`
	GuestEmail string `validate:"omitempty,email"`
}

type GuestFilter struct {
	EventID string
	Status  *GuestStatus
	Keyword string
}

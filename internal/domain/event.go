package domain

import "time"

type EventType int8

const (
	EventTypeInternal EventType = 1
	EventTypePublic   EventType = 2
)

func (t EventType) Valid() bool {
	return t == EventTypeInternal || t == EventTypePublic
}

// UnlimitedJoinCount marks an event without a participant cap.
const UnlimitedJoinCount = -1

// EventStatus is derived from the current time and never persisted.
type EventStatus string

const (
	EventStatusUpcoming EventStatus = "upcoming"
	EventStatusOngoing  EventStatus = "ongoing"
	EventStatusEnded    EventStatus = "ended"
)

func (s EventStatus) Valid() bool {
	switch s {
	case EventStatusUpcoming, EventStatusOngoing, EventStatusEnded:
		return true
	}
	return false
}

type Event struct {
	ID           string    `json:"id"`
	GroupID      string    `json:"groupId"`
	Title        string    `json:"title"`
	Content      string    `json:"content"`
	Address      string    `json:"address"`
	StartTime    time.Time `json:"startTime"`
	EndTime      time.Time `json:"endTime"`
	Type         EventType `json:"type"`
	JoinCount    int       `json:"joinCount"`
	NeedApproval bool      `json:"needApproval"`
	IsActive     bool      `json:"isActive"`
	Banner       string    `json:"banner"`
	Images       []string  `json:"images"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// StatusAt reports the lifecycle phase of the event at now.
func (e *Event) StatusAt(now time.Time) EventStatus {
	switch {
	case now.Before(e.StartTime):
		return EventStatusUpcoming
	case now.After(e.EndTime):
		return EventStatusEnded
	default:
		return EventStatusOngoing
	}
}

func (e *Event) IsUnlimited() bool {
	return e.JoinCount == UnlimitedJoinCount
}

type EventInput struct {
	GroupID      string    `validate:"required_if=Type 1"`
	Title        string    `validate:"required,max=255"`
	Content      string
	Address      string    `validate:"max=500"`
	StartTime    time.Time `validate:"required"`
	EndTime      time.Time `validate:"required,gtfield=StartTime"`
	Type         EventType `validate:"event_type"`
	JoinCount    int       `validate:"gte=-1"`
	NeedApproval bool
	IsActive     bool
	Banner       string
	Images       []string
}

// VisibilityScope selects which events a caller may see.
type VisibilityScope int

const (
	ScopePublic VisibilityScope = iota
	ScopeMember
	ScopeAll
)

// GroupTypeMine restricts a listing to events the caller has joined as a guest.
const GroupTypeMine = "me"

type EventQuery struct {
	Keyword   string
	GroupID   string
	Type      EventType
	Status    EventStatus
	GroupType string
	From      *time.Time
	To        *time.Time
	Draw      int
	Start     int
	Length    int
}

// EventFilter is the repository form of EventQuery with the caller's scope resolved.
type EventFilter struct {
	EventQuery
	Scope      VisibilityScope
	UserZaloID string
	Now        time.Time
	OnlyJoined bool
}

type EventListItem struct {
	Event
	Status      EventStatus `json:"status"`
	IsRegister  bool        `json:"isRegister"`
	IsCheckIn   bool        `json:"isCheckIn"`
	CheckInCode string      `json:"checkInCode"`
}

// EventCounts carries the rows visible to the caller and how many of them
// survive the query filters.
type EventCounts struct {
	Total    int
	Filtered int
}

type EventPage struct {
	Draw            int              `json:"draw"`
	RecordsTotal    int              `json:"recordsTotal"`
	RecordsFiltered int              `json:"recordsFiltered"`
	Data            []*EventListItem `json:"data"`
}

type CapacityInfo struct {
	MaxParticipants     int  `json:"maxParticipants"`
	RegisteredCount     int  `json:"registeredCount"`
	ApprovedGuestsCount int  `json:"approvedGuestsCount"`
	TotalParticipants   int  `json:"totalParticipants"`
	RemainingSlots      int  `json:"remainingSlots"`
	IsUnlimited         bool `json:"isUnlimited"`
	IsFull              bool `json:"isFull"`
}

// NewCapacityInfo combines the two participant counters against joinCount.
func NewCapacityInfo(joinCount, registered, approvedGuests int) CapacityInfo {
	info := CapacityInfo{
		MaxParticipants:     joinCount,
		RegisteredCount:     registered,
		ApprovedGuestsCount: approvedGuests,
		TotalParticipants:   registered + approvedGuests,
	}
	if joinCount == UnlimitedJoinCount {
		info.IsUnlimited = true
		info.RemainingSlots = -1
		return info
	}
	info.RemainingSlots = max(0, joinCount-info.TotalParticipants)
	info.IsFull = info.RemainingSlots == 0
	return info
}

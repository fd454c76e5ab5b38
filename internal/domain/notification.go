package domain

import "time"

type TriggerKey string

const (
	TriggerGuestApproved       TriggerKey = "guest_approved"
	TriggerRegistrationCreated TriggerKey = "registration_created"
)

func (k TriggerKey) Valid() bool {
	return k == TriggerGuestApproved || k == TriggerRegistrationCreated
}

const ChannelZNS = "zns"

// Template parameter sources an admin may map onto ZNS template params.
const (
	SourceEventTitle     = "event.title"
	SourceEventStartTime = "event.start_time"
	SourceEventAddress   = "event.address"
	SourceGuestName      = "guest.name"
	SourceGuestPhone     = "guest.phone"
	SourceCheckInCode    = "check_in_code"
)

var TemplateSources = map[string]struct{}{
	SourceEventTitle:     {},
	SourceEventStartTime: {},
	SourceEventAddress:   {},
	SourceGuestName:      {},
	SourceGuestPhone:     {},
	SourceCheckInCode:    {},
}

type NotificationTemplate struct {
	ID           string            `json:"id"`
	TriggerKey   TriggerKey        `json:"triggerKey"`
	Channel      string            `json:"channel"`
	TemplateID   string            `json:"templateId"`
	ParamMapping map[string]string `json:"paramMapping"`
	IsEnabled    bool              `json:"isEnabled"`
	UpdatedAt    time.Time         `json:"updatedAt"`
}

type TemplateInput struct {
	TriggerKey   TriggerKey        `validate:"required"`
	TemplateID   string            `validate:"required,max=100"`
	ParamMapping map[string]string `validate:"required,min=1"`
	IsEnabled    bool
}

// Recipient is the person a templated message is addressed to.
type Recipient struct {
	Name        string
	Phone       string
	CheckInCode string
}

package dto

import (
	"time"

	"github.com/tienchinh21/bkasim-cms/internal/domain"
)

type EventRequest struct {
	GroupID      string    `json:"groupId"`
	Title        string    `json:"title" binding:"required"`
	Content      string    `json:"content"`
	Address      string    `json:"address"`
	StartTime    time.Time `json:"startTime" binding:"required"`
	EndTime      time.Time `json:"endTime" binding:"required"`
	Type         int8      `json:"type" binding:"required"`
	JoinCount    *int      `json:"joinCount"`
	NeedApproval bool      `json:"needApproval"`
	IsActive     *bool     `json:"isActive"`
	Banner       string    `json:"banner"`
	Images       []string  `json:"images"`
}

// ToInput fills the defaults: no joinCount means unlimited, no isActive means active.
func (r EventRequest) ToInput() domain.EventInput {
	joinCount := domain.UnlimitedJoinCount
	if r.JoinCount != nil {
		joinCount = *r.JoinCount
	}
	active := true
	if r.IsActive != nil {
		active = *r.IsActive
	}
	return domain.EventInput{
		GroupID:      r.GroupID,
		Title:        r.Title,
		Content:      r.Content,
		Address:      r.Address,
		StartTime:    r.StartTime,
		EndTime:      r.EndTime,
		Type:         domain.EventType(r.Type),
		JoinCount:    joinCount,
		NeedApproval: r.NeedApproval,
		IsActive:     active,
		Banner:       r.Banner,
		Images:       r.Images,
	}
}

type EventPageQuery struct {
	Keyword   string `form:"keyword"`
	GroupID   string `form:"groupId"`
	Type      int8   `form:"type"`
	Status    string `form:"status"`
	GroupType string `form:"groupType"`
	FromDate  string `form:"fromDate"`
	ToDate    string `form:"toDate"`
	Draw      int    `form:"draw"`
	Start     int    `form:"start"`
	Length    int    `form:"length"`
}

type RegisterRequest struct {
	Name        string `json:"name" binding:"required"`
	PhoneNumber string `json:"phoneNumber" binding:"required"`
	Email       string `json:"email"`
}

type CheckInRequest struct {
	CheckInCode string `json:"checkInCode" binding:"required"`
}

type GuestRequest struct {
	GuestName  string `json:"guestName" binding:"required"`
	GuestPhone string `json:"guestPhone" binding:"required"`
	GuestEmail string `json:"guestEmail"`
}

type CreateGuestsRequest struct {
	Note   string         `json:"note"`
	Guests []GuestRequest `json:"guests" binding:"required,min=1,dive"`
}

func (r CreateGuestsRequest) ToInputs() []domain.GuestInput {
	out := make([]domain.GuestInput, 0, len(r.Guests))
	for _, g := range r.Guests {
		out = append(out, domain.GuestInput{
			GuestName:  g.GuestName,
			GuestPhone: g.GuestPhone,
			GuestEmail: g.GuestEmail,
		})
	}
	return out
}

type CustomFieldRequest struct {
	EventID    string `json:"eventId"`
	FieldName  string `json:"fieldName" binding:"required"`
	FieldType  string `json:"fieldType" binding:"required"`
	IsRequired bool   `json:"isRequired"`
	SortOrder  int    `json:"sortOrder"`
}

func (r CustomFieldRequest) ToInput() domain.CustomFieldInput {
	return domain.CustomFieldInput{
		EventID:    r.EventID,
		FieldName:  r.FieldName,
		FieldType:  domain.FieldType(r.FieldType),
		IsRequired: r.IsRequired,
		SortOrder:  r.SortOrder,
	}
}

type GuestValuesRequest struct {
	GuestListID string                   `json:"guestListId" binding:"required"`
	Values      []domain.FieldValueInput `json:"values"`
}

type RegistrationValuesRequest struct {
	EventRegistrationID string                   `json:"eventRegistrationId" binding:"required"`
	Values              []domain.FieldValueInput `json:"values"`
}

// GiftForm is bound from multipart/form-data; images arrive as files.
type GiftForm struct {
	EventID    string   `form:"eventId"`
	GiftName   string   `form:"giftName" binding:"required"`
	Quantity   int      `form:"quantity"`
	KeepImages []string `form:"keepImages"`
}

type GroupRequest struct {
	GroupName   string `json:"groupName" binding:"required"`
	Description string `json:"description"`
	Logo        string `json:"logo"`
	IsActive    *bool  `json:"isActive"`
}

func (r GroupRequest) ToInput() domain.GroupInput {
	active := true
	if r.IsActive != nil {
		active = *r.IsActive
	}
	return domain.GroupInput{
		GroupName:   r.GroupName,
		Description: r.Description,
		Logo:        r.Logo,
		IsActive:    active,
	}
}

type MembershipRequest struct {
	Fullname    string `json:"fullname" binding:"required"`
	PhoneNumber string `json:"phoneNumber" binding:"required"`
	Email       string `json:"email"`
}

type SponsorRequest struct {
	SponsorName string `json:"sponsorName" binding:"required"`
	Logo        string `json:"logo"`
	Website     string `json:"website"`
}

type TemplateRequest struct {
	TriggerKey   string            `json:"triggerKey" binding:"required"`
	TemplateID   string            `json:"templateId" binding:"required"`
	ParamMapping map[string]string `json:"paramMapping" binding:"required"`
	IsEnabled    bool              `json:"isEnabled"`
}

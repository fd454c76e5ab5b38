package domain

import "time"

type FieldType string

const (
	FieldTypeText     FieldType = "text"
	FieldTypeTextarea FieldType = "textarea"
	FieldTypeNumber   FieldType = "number"
	FieldTypeEmail    FieldType = "email"
	FieldTypePhone    FieldType = "phone"
	FieldTypeDate     FieldType = "date"
)

func (t FieldType) Valid() bool {
	switch t {
	case FieldTypeText, FieldTypeTextarea, FieldTypeNumber,
		FieldTypeEmail, FieldTypePhone, FieldTypeDate:
		return true
	}
	return false
}

type EventCustomField struct {
	ID         string    `json:"id"`
	EventID    string    `json:"eventId"`
	FieldName  string    `json:"fieldName"`
	FieldType  FieldType `json:"fieldType"`
	IsRequired bool      `json:"isRequired"`
	SortOrder  int       `json:"sortOrder"`
	CreatedAt  time.Time `json:"createdAt"`
}

type CustomFieldInput struct {
	EventID    string    `validate:"required"`
	FieldName  string    `validate:"required,max=255"`
	FieldType  FieldType `validate:"field_type"`
	IsRequired bool
	SortOrder  int `validate:"gte=0"`
}

// EventCustomFieldValue keeps a copy of the field name so values stay readable
// after the field definition is deleted. Exactly one owner id is set.
type EventCustomFieldValue struct {
	ID                  string    `json:"id"`
	EventCustomFieldID  string    `json:"eventCustomFieldId"`
	FieldName           string    `json:"fieldName"`
	EventRegistrationID *string   `json:"eventRegistrationId"`
	GuestListID         *string   `json:"guestListId"`
	FieldValue          string    `json:"fieldValue"`
	CreatedAt           time.Time `json:"createdAt"`
}

type FieldValueInput struct {
	EventCustomFieldID string `json:"eventCustomFieldId"`
	FieldValue         string `json:"fieldValue"`
}

type GuestSubmission struct {
	GuestListID string
	Values      []FieldValueInput
}

type RegistrationSubmission struct {
	EventRegistrationID string
	Values              []FieldValueInput
}

package domain

import (
	"errors"
	"strings"
)

var (
	ErrEventNotFound           = errors.New("event not found")
	ErrRegistrationNotFound    = errors.New("registration not found")
	ErrGuestNotFound           = errors.New("guest not found")
	ErrEventGuestNotFound      = errors.New("event guest not found")
	ErrCustomFieldNotFound     = errors.New("custom field not found")
	ErrGiftNotFound            = errors.New("gift not found")
	ErrGroupNotFound           = errors.New("group not found")
	ErrMembershipNotFound      = errors.New("membership not found")
	ErrMembershipGroupNotFound = errors.New("membership group not found")
	ErrSponsorNotFound         = errors.New("sponsor not found")
	ErrTemplateNotFound        = errors.New("notification template not found")
	ErrCheckInCodeNotFound     = errors.New("check-in code not found")
)

var (
	ErrEventFull               = errors.New("event is full")
	ErrEventClosed             = errors.New("event is not open for registration")
	ErrAlreadyRegistered       = errors.New("user already registered for this event")
	ErrAlreadyMember           = errors.New("user already requested to join this group")
	ErrAlreadyCheckedIn        = errors.New("participant already checked in")
	ErrInvalidStatusTransition = errors.New("invalid status transition")
	ErrCheckInCodeExhausted    = errors.New("could not generate unique check-in code")
)

var (
	ErrValidation            = errors.New("validation error")
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrForbidden             = errors.New("forbidden")
	ErrUnauthorized          = errors.New("unauthorized")
)

// MissingFieldsError lists the required custom fields absent from a submission.
type MissingFieldsError struct {
	Fields []string
}

func (e *MissingFieldsError) Error() string {
	return ErrMissingRequiredFields.Error() + ": " + strings.Join(e.Fields, ", ")
}

func (e *MissingFieldsError) Unwrap() error {
	return ErrMissingRequiredFields
}

// ValidationDetail returns the text following ErrValidation in a wrapped chain.
func ValidationDetail(err error) string {
	msg := err.Error()
	marker := ErrValidation.Error() + ": "
	if i := strings.Index(msg, marker); i >= 0 {
		return msg[i+len(marker):]
	}
	return ""
}

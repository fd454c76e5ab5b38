package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/tienchinh21/bkasim-cms/internal/domain"
	"github.com/tienchinh21/bkasim-cms/internal/service/ports"
	"github.com/tienchinh21/bkasim-cms/pkg/validator"
	"github.com/wb-go/wbf/logger"
)

const dateLayout = "2006-01-02"

type CustomFieldService struct {
	fieldRepo ports.CustomFieldRepo
	valueRepo ports.CustomFieldValueRepo
	eventRepo ports.EventRepo
	guestRepo ports.GuestRepo
	regRepo   ports.RegistrationRepo
	codes     codeIssuer
	notifier  ports.GuestNotifier
	activity  ports.ActivityRecorder
	logger    logger.Logger
	now       func() time.Time
}

func NewCustomFieldService(
	fieldRepo ports.CustomFieldRepo,
	valueRepo ports.CustomFieldValueRepo,
	eventRepo ports.EventRepo,
	guestRepo ports.GuestRepo,
	regRepo ports.RegistrationRepo,
	codes codeIssuer,
	notifier ports.GuestNotifier,
	activity ports.ActivityRecorder,
	logger logger.Logger,
) *CustomFieldService {
	return &CustomFieldService{
		fieldRepo: fieldRepo,
		valueRepo: valueRepo,
		eventRepo: eventRepo,
		guestRepo: guestRepo,
		regRepo:   regRepo,
		codes:     codes,
		notifier:  notifier,
		activity:  activity,
		logger:    logger,
		now:       time.Now,
	}
}

func (s *CustomFieldService) ListByEvent(ctx context.Context, eventID string) ([]*domain.EventCustomField, error) {
	return s.fieldRepo.ListByEvent(ctx, eventID)
}

func (s *CustomFieldService) Create(ctx context.Context, caller domain.Caller, input domain.CustomFieldInput) (*domain.EventCustomField, error) {
	if err := validator.Validate(ctx, input); err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrValidation, err.Error())
	}
	if _, err := s.eventRepo.GetByID(ctx, input.EventID); err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}
	name := strings.TrimSpace(input.FieldName)
	if err := s.ensureUniqueName(ctx, input.EventID, "", name); err != nil {
		return nil, err
	}

	field := &domain.EventCustomField{
		ID:         uuid.New().String(),
		EventID:    input.EventID,
		FieldName:  name,
		FieldType:  input.FieldType,
		IsRequired: input.IsRequired,
		SortOrder:  input.SortOrder,
		CreatedAt:  s.now().UTC(),
	}
	if err := s.fieldRepo.Create(ctx, field); err != nil {
		return nil, fmt.Errorf("create custom field: %w", err)
	}
	s.activity.Record(ctx, caller, domain.ActionCreate, domain.EntityCustomField, field.ID)
	return field, nil
}

// Update changes the definition in place. The owning event cannot be changed.
func (s *CustomFieldService) Update(ctx context.Context, caller domain.Caller, id string, input domain.CustomFieldInput) (*domain.EventCustomField, error) {
	field, err := s.fieldRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get custom field: %w", err)
	}
	input.EventID = field.EventID
	if err = validator.Validate(ctx, input); err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrValidation, err.Error())
	}

	name := strings.TrimSpace(input.FieldName)
	if err = s.ensureUniqueName(ctx, field.EventID, field.ID, name); err != nil {
		return nil, err
	}

	field.FieldName = name
	field.FieldType = input.FieldType
	field.IsRequired = input.IsRequired
	field.SortOrder = input.SortOrder

	if err = s.fieldRepo.Update(ctx, field); err != nil {
		return nil, fmt.Errorf("update custom field: %w", err)
	}
	s.activity.Record(ctx, caller, domain.ActionUpdate, domain.EntityCustomField, field.ID)
	return field, nil
}

// ensureUniqueName rejects a name another field of the event already uses,
// ignoring case. Export columns are keyed by name.
func (s *CustomFieldService) ensureUniqueName(ctx context.Context, eventID, selfID, name string) error {
	fields, err := s.fieldRepo.ListByEvent(ctx, eventID)
	if err != nil {
		return fmt.Errorf("list custom fields: %w", err)
	}
	for _, f := range fields {
		if f.ID != selfID && strings.EqualFold(f.FieldName, name) {
			return fmt.Errorf("%w: trường %q đã tồn tại", domain.ErrValidation, name)
		}
	}
	return nil
}

func (s *CustomFieldService) Delete(ctx context.Context, caller domain.Caller, id string) error {
	if err := s.fieldRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete custom field: %w", err)
	}
	s.activity.Record(ctx, caller, domain.ActionDelete, domain.EntityCustomField, id)
	return nil
}

// SubmitGuestValues stores a pending guest's answers and moves the entry out of
// Pending: to Registered when the event needs approval, otherwise straight to
// Approved with a check-in code. A missing required field saves nothing.
// Only the member who submitted the guest list, or an admin, may answer.
func (s *CustomFieldService) SubmitGuestValues(ctx context.Context, caller domain.Caller, sub domain.GuestSubmission) (*domain.GuestList, error) {
	if !caller.IsAuthenticated() {
		return nil, domain.ErrUnauthorized
	}
	guest, err := s.guestRepo.GetByID(ctx, sub.GuestListID)
	if err != nil {
		return nil, fmt.Errorf("get guest: %w", err)
	}
	if !caller.IsAdmin() {
		eg, err := s.guestRepo.GetEventGuest(ctx, guest.EventGuestID)
		if err != nil {
			return nil, fmt.Errorf("get event guest: %w", err)
		}
		if eg.UserZaloID != caller.UserZaloID {
			return nil, domain.ErrForbidden
		}
	}
	if guest.Status != domain.GuestStatusPending {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidStatusTransition, guest.Status)
	}

	event, err := s.eventRepo.GetByID(ctx, guest.EventID)
	if err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}

	values, err := s.collectValues(ctx, event.ID, sub.Values)
	if err != nil {
		return nil, err
	}
	for _, v := range values {
		v.GuestListID = &guest.ID
	}
	if len(values) > 0 {
		if err = s.valueRepo.CreateBatch(ctx, values); err != nil {
			return nil, fmt.Errorf("save custom field values: %w", err)
		}
	}

	if event.NeedApproval {
		if err = s.guestRepo.UpdateStatus(ctx, guest.ID, domain.GuestStatusRegistered, ""); err != nil {
			return nil, fmt.Errorf("update guest status: %w", err)
		}
		guest.Status = domain.GuestStatusRegistered
		s.logger.LogAttrs(ctx, logger.InfoLevel, "guest awaiting approval",
			logger.String("guest_list_id", guest.ID),
			logger.String("event_id", event.ID),
		)
		go s.notifier.NotifyGuestAwaitingApproval(context.WithoutCancel(ctx), event, guest)
		return guest, nil
	}

	code, err := s.codes.Generate(ctx)
	if err != nil {
		return nil, fmt.Errorf("generate check-in code: %w", err)
	}
	if err = s.guestRepo.UpdateStatus(ctx, guest.ID, domain.GuestStatusApproved, code); err != nil {
		return nil, fmt.Errorf("update guest status: %w", err)
	}
	guest.Status = domain.GuestStatusApproved
	guest.CheckInCode = code

	s.logger.LogAttrs(ctx, logger.InfoLevel, "guest approved",
		logger.String("guest_list_id", guest.ID),
		logger.String("event_id", event.ID),
	)
	go s.notifier.NotifyGuestApproved(context.WithoutCancel(ctx), event, guest)

	return guest, nil
}

// SubmitRegistrationValues stores answers for a registration. The registration
// status is not affected.
func (s *CustomFieldService) SubmitRegistrationValues(ctx context.Context, caller domain.Caller, sub domain.RegistrationSubmission) ([]*domain.EventCustomFieldValue, error) {
	reg, err := s.regRepo.GetByID(ctx, sub.EventRegistrationID)
	if err != nil {
		return nil, fmt.Errorf("get registration: %w", err)
	}
	if !caller.IsAdmin() && reg.UserZaloID != caller.UserZaloID {
		return nil, domain.ErrForbidden
	}
	if reg.Status == domain.RegistrationStatusCancelled {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidStatusTransition, reg.Status)
	}

	values, err := s.collectValues(ctx, reg.EventID, sub.Values)
	if err != nil {
		return nil, err
	}
	for _, v := range values {
		v.EventRegistrationID = &reg.ID
	}
	if len(values) > 0 {
		if err = s.valueRepo.CreateBatch(ctx, values); err != nil {
			return nil, fmt.Errorf("save custom field values: %w", err)
		}
	}
	return values, nil
}

// collectValues checks a submission against the event's field definitions.
// Blank optional answers are dropped; every blank required field is reported.
func (s *CustomFieldService) collectValues(ctx context.Context, eventID string, inputs []domain.FieldValueInput) ([]*domain.EventCustomFieldValue, error) {
	fields, err := s.fieldRepo.ListByEvent(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("list custom fields: %w", err)
	}

	byID := make(map[string]*domain.EventCustomField, len(fields))
	for _, f := range fields {
		byID[f.ID] = f
	}

	answers := make(map[string]string, len(inputs))
	for _, in := range inputs {
		if _, ok := byID[in.EventCustomFieldID]; !ok {
			return nil, fmt.Errorf("%w: trường %q không thuộc sự kiện", domain.ErrValidation, in.EventCustomFieldID)
		}
		answers[in.EventCustomFieldID] = strings.TrimSpace(in.FieldValue)
	}

	var missing []string
	for _, f := range fields {
		if f.IsRequired && answers[f.ID] == "" {
			missing = append(missing, f.FieldName)
		}
	}
	if len(missing) > 0 {
		return nil, &domain.MissingFieldsError{Fields: missing}
	}

	now := s.now().UTC()
	values := make([]*domain.EventCustomFieldValue, 0, len(answers))
	for _, f := range fields {
		answer, ok := answers[f.ID]
		if !ok || answer == "" {
			continue
		}
		if err = checkFieldValue(ctx, f, answer); err != nil {
			return nil, err
		}
		values = append(values, &domain.EventCustomFieldValue{
			ID:                 uuid.New().String(),
			EventCustomFieldID: f.ID,
			FieldName:          f.FieldName,
			FieldValue:         answer,
			CreatedAt:          now,
		})
	}
	return values, nil
}

func checkFieldValue(ctx context.Context, f *domain.EventCustomField, value string) error {
	var ok bool
	switch f.FieldType {
	case domain.FieldTypeNumber:
		_, err := strconv.ParseFloat(value, 64)
		ok = err == nil
	case domain.FieldTypeEmail:
		ok = validator.Var(ctx, value, "email") == nil
	case domain.FieldTypePhone:
		ok = validator.IsPhone(value)
	case domain.FieldTypeDate:
		_, err := time.Parse(dateLayout, value)
		ok = err == nil
	default:
		ok = true
	}
	if !ok {
		return fmt.Errorf("%w: %s: %s", domain.ErrValidation, validator.ErrInvalidFormat, f.FieldName)
	}
	return nil
}

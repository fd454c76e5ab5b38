package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/tienchinh21/bkasim-cms/internal/domain"
	"github.com/tienchinh21/bkasim-cms/internal/service/ports"
	"github.com/tienchinh21/bkasim-cms/pkg/validator"
	"github.com/wb-go/wbf/logger"
)

type codeIssuer interface {
	Generate(ctx context.Context) (string, error)
}

type RegistrationService struct {
	regRepo   ports.RegistrationRepo
	eventRepo ports.EventRepo
	guestRepo ports.GuestRepo
	codes     codeIssuer
	notifier  ports.GuestNotifier
	activity  ports.ActivityRecorder
	logger    logger.Logger
	now       func() time.Time
}

func NewRegistrationService(
	regRepo ports.RegistrationRepo,
	eventRepo ports.EventRepo,
	guestRepo ports.GuestRepo,
	codes codeIssuer,
	notifier ports.GuestNotifier,
	activity ports.ActivityRecorder,
	logger logger.Logger,
) *RegistrationService {
	return &RegistrationService{
		regRepo:   regRepo,
		eventRepo: eventRepo,
		guestRepo: guestRepo,
		codes:     codes,
		notifier:  notifier,
		activity:  activity,
		logger:    logger,
		now:       time.Now,
	}
}

// Register signs the caller up for an event. The capacity check reads the
// counters without a lock, so two concurrent requests may both pass it.
func (s *RegistrationService) Register(ctx context.Context, caller domain.Caller, input domain.RegisterInput) (*domain.EventRegistration, error) {
	if !caller.IsAuthenticated() {
		return nil, domain.ErrUnauthorized
	}
	input.PhoneNumber = strings.TrimSpace(input.PhoneNumber)
	if err := validator.Validate(ctx, input); err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrValidation, err.Error())
	}

	event, err := s.eventRepo.GetByID(ctx, input.EventID)
	if err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}
	now := s.now().UTC()
	if !event.IsActive || event.StatusAt(now) == domain.EventStatusEnded {
		return nil, domain.ErrEventClosed
	}

	_, err = s.regRepo.GetActiveByEventAndUser(ctx, event.ID, caller.UserZaloID)
	switch {
	case err == nil:
		return nil, domain.ErrAlreadyRegistered
	case !errors.Is(err, domain.ErrRegistrationNotFound):
		return nil, fmt.Errorf("get registration: %w", err)
	}

	if !event.IsUnlimited() {
		full, err := s.isFull(ctx, event)
		if err != nil {
			return nil, err
		}
		if full {
			return nil, domain.ErrEventFull
		}
	}

	code, err := s.codes.Generate(ctx)
	if err != nil {
		return nil, fmt.Errorf("generate check-in code: %w", err)
	}

	reg := &domain.EventRegistration{
		ID:          uuid.New().String(),
		EventID:     event.ID,
		UserZaloID:  caller.UserZaloID,
		Name:        input.Name,
		PhoneNumber: input.PhoneNumber,
		Email:       input.Email,
		CheckInCode: code,
		Status:      domain.RegistrationStatusRegistered,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err = s.regRepo.Create(ctx, reg); err != nil {
		return nil, fmt.Errorf("create registration: %w", err)
	}

	s.logger.LogAttrs(ctx, logger.InfoLevel, "registration created",
		logger.String("registration_id", reg.ID),
		logger.String("event_id", event.ID),
		logger.String("user_zalo_id", caller.UserZaloID),
	)

	go s.notifier.NotifyRegistrationCreated(context.WithoutCancel(ctx), event, reg)

	return reg, nil
}

func (s *RegistrationService) isFull(ctx context.Context, event *domain.Event) (bool, error) {
	registered, err := s.regRepo.CountActiveByEvent(ctx, event.ID)
	if err != nil {
		return false, fmt.Errorf("count registrations: %w", err)
	}
	approved, err := s.guestRepo.CountApprovedByEvent(ctx, event.ID)
	if err != nil {
		return false, fmt.Errorf("count approved guests: %w", err)
	}
	return domain.NewCapacityInfo(event.JoinCount, registered, approved).IsFull, nil
}

func (s *RegistrationService) Cancel(ctx context.Context, caller domain.Caller, id string) error {
	reg, err := s.regRepo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("get registration: %w", err)
	}
	if !caller.IsAdmin() && reg.UserZaloID != caller.UserZaloID {
		return domain.ErrForbidden
	}
	if reg.Status != domain.RegistrationStatusRegistered {
		return fmt.Errorf("%w: %s", domain.ErrInvalidStatusTransition, reg.Status)
	}

	if err = s.regRepo.UpdateStatus(ctx, id, domain.RegistrationStatusCancelled, nil); err != nil {
		return fmt.Errorf("cancel registration: %w", err)
	}

	s.logger.LogAttrs(ctx, logger.InfoLevel, "registration cancelled",
		logger.String("registration_id", id),
		logger.String("actor", caller.Actor()),
	)
	if caller.IsAdmin() {
		s.activity.Record(ctx, caller, domain.ActionCancel, domain.EntityRegistration, id)
	}
	return nil
}

// CheckIn resolves a code against registrations first and guest lists second.
func (s *RegistrationService) CheckIn(ctx context.Context, caller domain.Caller, code string) (*domain.CheckInResult, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return nil, fmt.Errorf("%w: mã check-in trống", domain.ErrValidation)
	}
	now := s.now().UTC()

	reg, err := s.regRepo.GetByCheckInCode(ctx, code)
	switch {
	case err == nil:
		return s.checkInRegistration(ctx, caller, reg, now)
	case !errors.Is(err, domain.ErrRegistrationNotFound):
		return nil, fmt.Errorf("get registration by code: %w", err)
	}

	guest, err := s.guestRepo.GetByCheckInCode(ctx, code)
	if err != nil {
		if errors.Is(err, domain.ErrGuestNotFound) {
			return nil, domain.ErrCheckInCodeNotFound
		}
		return nil, fmt.Errorf("get guest by code: %w", err)
	}
	return s.checkInGuest(ctx, caller, guest, now)
}

func (s *RegistrationService) checkInRegistration(ctx context.Context, caller domain.Caller, reg *domain.EventRegistration, now time.Time) (*domain.CheckInResult, error) {
	switch reg.Status {
	case domain.RegistrationStatusCheckedIn:
		return nil, domain.ErrAlreadyCheckedIn
	case domain.RegistrationStatusCancelled:
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidStatusTransition, reg.Status)
	}

	if err := s.regRepo.UpdateStatus(ctx, reg.ID, domain.RegistrationStatusCheckedIn, &now); err != nil {
		return nil, fmt.Errorf("check in registration: %w", err)
	}
	s.activity.Record(ctx, caller, domain.ActionCheckIn, domain.EntityRegistration, reg.ID)

	return &domain.CheckInResult{
		Source:      domain.SourceRegistration,
		ID:          reg.ID,
		EventID:     reg.EventID,
		Name:        reg.Name,
		CheckInTime: now,
	}, nil
}

func (s *RegistrationService) checkInGuest(ctx context.Context, caller domain.Caller, guest *domain.GuestList, now time.Time) (*domain.CheckInResult, error) {
	if guest.Status != domain.GuestStatusApproved {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidStatusTransition, guest.Status)
	}
	if guest.CheckInStatus {
		return nil, domain.ErrAlreadyCheckedIn
	}

	if err := s.guestRepo.CheckIn(ctx, guest.ID, now); err != nil {
		return nil, fmt.Errorf("check in guest: %w", err)
	}
	s.activity.Record(ctx, caller, domain.ActionCheckIn, domain.EntityGuestList, guest.ID)

	return &domain.CheckInResult{
		Source:      domain.SourceGuest,
		ID:          guest.ID,
		EventID:     guest.EventID,
		Name:        guest.GuestName,
		CheckInTime: now,
	}, nil
}

func (s *RegistrationService) ListByEvent(ctx context.Context, eventID string) ([]*domain.EventRegistration, error) {
	if _, err := s.eventRepo.GetByID(ctx, eventID); err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}
	return s.regRepo.ListByEvent(ctx, eventID)
}

package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/tienchinh21/bkasim-cms/internal/domain"
	"github.com/tienchinh21/bkasim-cms/internal/service/ports"
	"github.com/tienchinh21/bkasim-cms/pkg/validator"
	"github.com/wb-go/wbf/logger"
)

const maxGuestsPerBatch = 50

type GuestService struct {
	guestRepo ports.GuestRepo
	eventRepo ports.EventRepo
	codes     codeIssuer
	notifier  ports.GuestNotifier
	activity  ports.ActivityRecorder
	logger    logger.Logger
	now       func() time.Time
}

func NewGuestService(
	guestRepo ports.GuestRepo,
	eventRepo ports.EventRepo,
	codes codeIssuer,
	notifier ports.GuestNotifier,
	activity ports.ActivityRecorder,
	logger logger.Logger,
) *GuestService {
	return &GuestService{
		guestRepo: guestRepo,
		eventRepo: eventRepo,
		codes:     codes,
		notifier:  notifier,
		activity:  activity,
		logger:    logger,
		now:       time.Now,
	}
}

// CreateBatch registers guests on behalf of the caller. Every row starts Pending
// until its custom field values are submitted.
func (s *GuestService) CreateBatch(ctx context.Context, caller domain.Caller, eventID, note string, inputs []domain.GuestInput) (*domain.EventGuest, []*domain.GuestList, error) {
	if !caller.IsAuthenticated() {
		return nil, nil, domain.ErrUnauthorized
	}
	if len(inputs) == 0 || len(inputs) > maxGuestsPerBatch {
		return nil, nil, fmt.Errorf("%w: số lượng khách phải từ 1 đến %d", domain.ErrValidation, maxGuestsPerBatch)
	}
	for i := range inputs {
		inputs[i].GuestPhone = strings.TrimSpace(inputs[i].GuestPhone)
		if err := validator.Validate(ctx, inputs[i]); err != nil {
			return nil, nil, fmt.Errorf("%w: khách %d: %s", domain.ErrValidation, i+1, err.Error())
		}
	}

	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return nil, nil, fmt.Errorf("get event: %w", err)
	}
	now := s.now().UTC()
	if !event.IsActive || event.StatusAt(now) == domain.EventStatusEnded {
		return nil, nil, domain.ErrEventClosed
	}

	eg := &domain.EventGuest{
		ID:         uuid.New().String(),
		EventID:    event.ID,
		UserZaloID: caller.UserZaloID,
		Note:       note,
		CreatedAt:  now,
	}
	guests := make([]*domain.GuestList, 0, len(inputs))
	for _, in := range inputs {
		guests = append(guests, &domain.GuestList{
			ID:           uuid.New().String(),
			EventGuestID: eg.ID,
			EventID:      event.ID,
			GuestName:    in.GuestName,
			GuestPhone:   in.GuestPhone,
			GuestEmail:   in.GuestEmail,
			Status:       domain.GuestStatusPending,
			CreatedAt:    now,
			UpdatedAt:    now,
		})
	}

	if err = s.guestRepo.CreateBatch(ctx, eg, guests); err != nil {
		return nil, nil, fmt.Errorf("create guests: %w", err)
	}

	s.logger.LogAttrs(ctx, logger.InfoLevel, "guests registered",
		logger.String("event_guest_id", eg.ID),
		logger.String("event_id", event.ID),
		logger.Int("count", len(guests)),
	)

	return eg, guests, nil
}

func (s *GuestService) List(ctx context.Context, f domain.GuestFilter) ([]*domain.GuestList, error) {
	if f.Status != nil && !f.Status.Valid() {
		return nil, fmt.Errorf("%w: trạng thái không hợp lệ", domain.ErrValidation)
	}
	f.Keyword = strings.TrimSpace(f.Keyword)
	return s.guestRepo.List(ctx, f)
}

// Approve approves every row of the container still awaiting a decision.
// Rows already in a terminal state are left untouched.
func (s *GuestService) Approve(ctx context.Context, caller domain.Caller, eventGuestID string) ([]*domain.GuestList, error) {
	eg, err := s.guestRepo.GetEventGuest(ctx, eventGuestID)
	if err != nil {
		return nil, fmt.Errorf("get event guest: %w", err)
	}

	event, err := s.eventRepo.GetByID(ctx, eg.EventID)
	if err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}

	guests, err := s.guestRepo.ListByEventGuest(ctx, eventGuestID)
	if err != nil {
		return nil, fmt.Errorf("list guests: %w", err)
	}

	approved := make([]*domain.GuestList, 0, len(guests))
	for _, g := range guests {
		if !g.Status.AwaitsDecision() {
			continue
		}
		if err = s.approve(ctx, event, g); err != nil {
			return approved, err
		}
		approved = append(approved, g)
	}

	s.activity.Record(ctx, caller, domain.ActionApprove, domain.EntityEventGuest, eventGuestID)
	return approved, nil
}

func (s *GuestService) ApproveItem(ctx context.Context, caller domain.Caller, guestListID string) (*domain.GuestList, error) {
	guest, err := s.guestRepo.GetByID(ctx, guestListID)
	if err != nil {
		return nil, fmt.Errorf("get guest: %w", err)
	}
	if !guest.Status.AwaitsDecision() {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidStatusTransition, guest.Status)
	}

	event, err := s.eventRepo.GetByID(ctx, guest.EventID)
	if err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}

	if err = s.approve(ctx, event, guest); err != nil {
		return nil, err
	}
	s.activity.Record(ctx, caller, domain.ActionApprove, domain.EntityGuestList, guest.ID)
	return guest, nil
}

func (s *GuestService) approve(ctx context.Context, event *domain.Event, guest *domain.GuestList) error {
	code, err := s.codes.Generate(ctx)
	if err != nil {
		return fmt.Errorf("generate check-in code: %w", err)
	}
	if err = s.guestRepo.UpdateStatus(ctx, guest.ID, domain.GuestStatusApproved, code); err != nil {
		return fmt.Errorf("approve guest: %w", err)
	}
	guest.Status = domain.GuestStatusApproved
	guest.CheckInCode = code

	s.logger.LogAttrs(ctx, logger.InfoLevel, "guest approved",
		logger.String("guest_list_id", guest.ID),
		logger.String("event_id", event.ID),
	)

	go s.notifier.NotifyGuestApproved(context.WithoutCancel(ctx), event, guest)
	return nil
}

func (s *GuestService) RejectItem(ctx context.Context, caller domain.Caller, guestListID string) (*domain.GuestList, error) {
	guest, err := s.guestRepo.GetByID(ctx, guestListID)
	if err != nil {
		return nil, fmt.Errorf("get guest: %w", err)
	}
	if !guest.Status.AwaitsDecision() {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidStatusTransition, guest.Status)
	}

	if err = s.guestRepo.UpdateStatus(ctx, guest.ID, domain.GuestStatusRejected, ""); err != nil {
		return nil, fmt.Errorf("reject guest: %w", err)
	}
	guest.Status = domain.GuestStatusRejected

	s.activity.Record(ctx, caller, domain.ActionReject, domain.EntityGuestList, guest.ID)
	return guest, nil
}

func (s *GuestService) CancelItem(ctx context.Context, caller domain.Caller, guestListID string) (*domain.GuestList, error) {
	guest, err := s.guestRepo.GetByID(ctx, guestListID)
	if err != nil {
		return nil, fmt.Errorf("get guest: %w", err)
	}
	if guest.Status.IsTerminal() {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidStatusTransition, guest.Status)
	}

	if err = s.guestRepo.UpdateStatus(ctx, guest.ID, domain.GuestStatusCancelled, ""); err != nil {
		return nil, fmt.Errorf("cancel guest: %w", err)
	}
	guest.Status = domain.GuestStatusCancelled

	s.activity.Record(ctx, caller, domain.ActionCancel, domain.EntityGuestList, guest.ID)
	return guest, nil
}

// ExpireStale cancels guest entries left undecided after their event ended.
func (s *GuestService) ExpireStale(ctx context.Context) ([]*domain.GuestList, error) {
	cancelled, err := s.guestRepo.CancelStale(ctx, s.now())
	if err != nil {
		return nil, fmt.Errorf("expire stale guests: %w", err)
	}
	return cancelled, nil
}

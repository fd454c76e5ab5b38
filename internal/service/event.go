package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/tienchinh21/bkasim-cms/internal/domain"
	"github.com/tienchinh21/bkasim-cms/internal/service/ports"
	"github.com/tienchinh21/bkasim-cms/pkg/validator"
	"github.com/wb-go/wbf/logger"
)

const (
	defaultPageLength = 10
	maxPageLength     = 100
)

type EventService struct {
	repo           ports.EventRepo
	regRepo        ports.RegistrationRepo
	guestRepo      ports.GuestRepo
	membershipRepo ports.MembershipRepo
	activity       ports.ActivityRecorder
	logger         logger.Logger
	now            func() time.Time
}

func NewEventService(
	repo ports.EventRepo,
	regRepo ports.RegistrationRepo,
	guestRepo ports.GuestRepo,
	membershipRepo ports.MembershipRepo,
	activity ports.ActivityRecorder,
	logger logger.Logger,
) *EventService {
	return &EventService{
		repo:           repo,
		regRepo:        regRepo,
		guestRepo:      guestRepo,
		membershipRepo: membershipRepo,
		activity:       activity,
		logger:         logger,
		now:            time.Now,
	}
}

func (s *EventService) Create(ctx context.Context, caller domain.Caller, input domain.EventInput) (*domain.Event, error) {
	if err := validator.Validate(ctx, input); err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrValidation, err.Error())
	}

	now := s.now().UTC()
	event := &domain.Event{
		ID:        uuid.New().String(),
		CreatedAt: now,
		UpdatedAt: now,
	}
	applyEventInput(event, input)

	if err := s.repo.Create(ctx, event); err != nil {
		return nil, fmt.Errorf("create event: %w", err)
	}

	s.logger.LogAttrs(ctx, logger.InfoLevel, "event created",
		logger.String("event_id", event.ID),
		logger.String("actor", caller.Actor()),
	)
	s.activity.Record(ctx, caller, domain.ActionCreate, domain.EntityEvent, event.ID)

	return event, nil
}

func (s *EventService) Update(ctx context.Context, caller domain.Caller, id string, input domain.EventInput) (*domain.Event, error) {
	if err := validator.Validate(ctx, input); err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrValidation, err.Error())
	}

	event, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}
	applyEventInput(event, input)
	event.UpdatedAt = s.now().UTC()

	if err = s.repo.Update(ctx, event); err != nil {
		return nil, fmt.Errorf("update event: %w", err)
	}
	s.activity.Record(ctx, caller, domain.ActionUpdate, domain.EntityEvent, event.ID)

	return event, nil
}

func (s *EventService) Delete(ctx context.Context, caller domain.Caller, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete event: %w", err)
	}
	s.activity.Record(ctx, caller, domain.ActionDelete, domain.EntityEvent, id)
	return nil
}

func (s *EventService) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	return s.repo.GetByID(ctx, id)
}

func applyEventInput(e *domain.Event, in domain.EventInput) {
	e.GroupID = in.GroupID
	e.Title = in.Title
	e.Content = in.Content
	e.Address = in.Address
	e.StartTime = in.StartTime.UTC()
	e.EndTime = in.EndTime.UTC()
	e.Type = in.Type
	e.JoinCount = in.JoinCount
	e.NeedApproval = in.NeedApproval
	e.IsActive = in.IsActive
	e.Banner = in.Banner
	e.Images = in.Images
}

// List returns the page of events visible to caller, each enriched with the
// caller's own registration state.
func (s *EventService) List(ctx context.Context, caller domain.Caller, q domain.EventQuery) (*domain.EventPage, error) {
	if q.Status != "" && !q.Status.Valid() {
		return nil, fmt.Errorf("%w: trạng thái không hợp lệ", domain.ErrValidation)
	}
	if q.Type != 0 && !q.Type.Valid() {
		return nil, fmt.Errorf("%w: loại sự kiện không hợp lệ", domain.ErrValidation)
	}
	if q.Length <= 0 {
		q.Length = defaultPageLength
	}
	q.Length = min(q.Length, maxPageLength)
	q.Start = max(q.Start, 0)

	now := s.now().UTC()
	filter := domain.EventFilter{
		EventQuery: q,
		Scope:      visibilityScope(caller),
		UserZaloID: caller.UserZaloID,
		Now:        now,
		OnlyJoined: q.GroupType == domain.GroupTypeMine && caller.IsAuthenticated(),
	}

	events, counts, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}

	var (
		phone    string
		resolved bool
	)
	phoneFor := func() string {
		if !resolved {
			phone, resolved = s.callerPhone(ctx, caller), true
		}
		return phone
	}

	items := make([]*domain.EventListItem, 0, len(events))
	for _, e := range events {
		item := &domain.EventListItem{Event: *e, Status: e.StatusAt(now)}
		if caller.IsAuthenticated() {
			if err = s.enrich(ctx, item, caller.UserZaloID, phoneFor); err != nil {
				return nil, err
			}
		}
		items = append(items, item)
	}

	return &domain.EventPage{
		Draw:            q.Draw,
		RecordsTotal:    counts.Total,
		RecordsFiltered: counts.Filtered,
		Data:            items,
	}, nil
}

func visibilityScope(caller domain.Caller) domain.VisibilityScope {
	switch {
	case caller.IsAdmin():
		return domain.ScopeAll
	case caller.IsAuthenticated():
		return domain.ScopeMember
	default:
		return domain.ScopePublic
	}
}

// callerPhone prefers the token claim and falls back to the member profile.
func (s *EventService) callerPhone(ctx context.Context, caller domain.Caller) string {
	if caller.Phone != "" || !caller.IsAuthenticated() {
		return caller.Phone
	}
	m, err := s.membershipRepo.GetByUserZaloID(ctx, caller.UserZaloID)
	if err != nil {
		if !errors.Is(err, domain.ErrMembershipNotFound) {
			s.logger.LogAttrs(ctx, logger.WarnLevel, "failed to load membership for phone lookup",
				logger.String("user_zalo_id", caller.UserZaloID),
				logger.String("error", err.Error()),
			)
		}
		return ""
	}
	return m.PhoneNumber
}

// enrich fills the registration flags. A direct registration wins over a
// guest-list entry matched by phone, which is only resolved on a miss.
func (s *EventService) enrich(ctx context.Context, item *domain.EventListItem, userZaloID string, phoneFor func() string) error {
	reg, err := s.regRepo.GetActiveByEventAndUser(ctx, item.ID, userZaloID)
	switch {
	case err == nil:
		item.IsRegister = true
		item.IsCheckIn = reg.Status == domain.RegistrationStatusCheckedIn
		item.CheckInCode = reg.CheckInCode
		return nil
	case !errors.Is(err, domain.ErrRegistrationNotFound):
		return fmt.Errorf("get registration: %w", err)
	}

	phone := phoneFor()
	if phone == "" {
		return nil
	}
	guest, err := s.guestRepo.FindByEventAndPhone(ctx, item.ID, phone)
	switch {
	case err == nil:
		item.IsRegister = guest.Status.Engaged()
		item.IsCheckIn = guest.CheckInStatus
		item.CheckInCode = guest.CheckInCode
	case !errors.Is(err, domain.ErrGuestNotFound):
		return fmt.Errorf("find guest: %w", err)
	}
	return nil
}

// CapacityInfo sums active registrations and approved guests against joinCount.
// The figure is read without locking; concurrent approvals can overshoot it.
func (s *EventService) CapacityInfo(ctx context.Context, eventID string) (*domain.CapacityInfo, error) {
	event, err := s.repo.GetByID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}

	registered, err := s.regRepo.CountActiveByEvent(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("count registrations: %w", err)
	}

	approved, err := s.guestRepo.CountApprovedByEvent(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("count approved guests: %w", err)
	}

	info := domain.NewCapacityInfo(event.JoinCount, registered, approved)
	return &info, nil
}

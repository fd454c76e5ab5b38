package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/tienchinh21/bkasim-cms/internal/domain"
	"github.com/tienchinh21/bkasim-cms/internal/service/ports/mocks"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

var (
	admin  = domain.Caller{UserZaloID: "admin-1", Role: domain.RoleAdmin}
	member = domain.Caller{UserZaloID: "zalo-1", Phone: "0901234567", Role: domain.RoleUser}
)

type eventDeps struct {
	events      *mocks.MockEventRepo
	regs        *mocks.MockRegistrationRepo
	guests      *mocks.MockGuestRepo
	memberships *mocks.MockMembershipRepo
	activity    *mocks.MockActivityRecorder
}

func newEventService(t *testing.T) (*EventService, eventDeps) {
	d := eventDeps{
		events:      mocks.NewMockEventRepo(t),
		regs:        mocks.NewMockRegistrationRepo(t),
		guests:      mocks.NewMockGuestRepo(t),
		memberships: mocks.NewMockMembershipRepo(t),
		activity:    mocks.NewMockActivityRecorder(t),
	}
	svc := NewEventService(d.events, d.regs, d.guests, d.memberships, d.activity, newTestLogger(t))
	return svc, d
}

func validEventInput() domain.EventInput {
	start := time.Now().Add(24 * time.Hour)
	return domain.EventInput{
		Title:     "Hội thảo",
		StartTime: start,
		EndTime:   start.Add(2 * time.Hour),
		Type:      domain.EventTypePublic,
		JoinCount: 100,
		IsActive:  true,
	}
}

func TestEventService_Create_Success(t *testing.T) {
	svc, d := newEventService(t)

	d.events.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	d.activity.EXPECT().Record(mock.Anything, admin, domain.ActionCreate, domain.EntityEvent, mock.Anything).Return()

	event, err := svc.Create(context.Background(), admin, validEventInput())

	require.NoError(t, err)
	assert.NotEmpty(t, event.ID)
	assert.Equal(t, "Hội thảo", event.Title)
	assert.Equal(t, 100, event.JoinCount)
	assert.True(t, event.IsActive)
}

func TestEventService_Create_EndBeforeStart(t *testing.T) {
	svc, _ := newEventService(t)

	input := validEventInput()
	input.EndTime = input.StartTime.Add(-time.Hour)

	_, err := svc.Create(context.Background(), admin, input)

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestEventService_Create_InternalRequiresGroup(t *testing.T) {
	svc, _ := newEventService(t)

	input := validEventInput()
	input.Type = domain.EventTypeInternal

	_, err := svc.Create(context.Background(), admin, input)

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestEventService_Create_InvalidJoinCount(t *testing.T) {
	svc, _ := newEventService(t)

	input := validEventInput()
	input.JoinCount = -2

	_, err := svc.Create(context.Background(), admin, input)

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestEventService_Update_NotFound(t *testing.T) {
	svc, d := newEventService(t)

	d.events.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrEventNotFound)

	_, err := svc.Update(context.Background(), admin, "missing", validEventInput())

	assert.ErrorIs(t, err, domain.ErrEventNotFound)
}

func TestEventService_Delete_RecordsActivity(t *testing.T) {
	svc, d := newEventService(t)

	d.events.EXPECT().Delete(mock.Anything, "e1").Return(nil)
	d.activity.EXPECT().Record(mock.Anything, admin, domain.ActionDelete, domain.EntityEvent, "e1").Return()

	require.NoError(t, svc.Delete(context.Background(), admin, "e1"))
}

func TestEventService_CapacityInfo_Full(t *testing.T) {
	svc, d := newEventService(t)

	d.events.EXPECT().GetByID(mock.Anything, "e1").Return(&domain.Event{ID: "e1", JoinCount: 5}, nil)
	d.regs.EXPECT().CountActiveByEvent(mock.Anything, "e1").Return(3, nil)
	d.guests.EXPECT().CountApprovedByEvent(mock.Anything, "e1").Return(2, nil)

	info, err := svc.CapacityInfo(context.Background(), "e1")

	require.NoError(t, err)
	assert.Equal(t, 5, info.TotalParticipants)
	assert.Equal(t, 0, info.RemainingSlots)
	assert.True(t, info.IsFull)
	assert.False(t, info.IsUnlimited)
}

func TestEventService_CapacityInfo_Unlimited(t *testing.T) {
	svc, d := newEventService(t)

	d.events.EXPECT().GetByID(mock.Anything, "e1").Return(&domain.Event{ID: "e1", JoinCount: domain.UnlimitedJoinCount}, nil)
	d.regs.EXPECT().CountActiveByEvent(mock.Anything, "e1").Return(1000, nil)
	d.guests.EXPECT().CountApprovedByEvent(mock.Anything, "e1").Return(500, nil)

	info, err := svc.CapacityInfo(context.Background(), "e1")

	require.NoError(t, err)
	assert.True(t, info.IsUnlimited)
	assert.False(t, info.IsFull)
	assert.Equal(t, -1, info.RemainingSlots)
	assert.Equal(t, 1500, info.TotalParticipants)
}

func TestEventService_CapacityInfo_CountError(t *testing.T) {
	svc, d := newEventService(t)

	d.events.EXPECT().GetByID(mock.Anything, "e1").Return(&domain.Event{ID: "e1", JoinCount: 5}, nil)
	d.regs.EXPECT().CountActiveByEvent(mock.Anything, "e1").Return(0, errors.New("db error"))

	_, err := svc.CapacityInfo(context.Background(), "e1")

	assert.Error(t, err)
}

func TestEventService_List_AnonymousScopeAndDefaults(t *testing.T) {
	svc, d := newEventService(t)
	now := time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	d.events.EXPECT().List(mock.Anything, mock.MatchedBy(func(f domain.EventFilter) bool {
		return f.Scope == domain.ScopePublic && f.Length == defaultPageLength && !f.OnlyJoined && f.Now.Equal(now)
	})).Return([]*domain.Event{
		{ID: "e1", StartTime: now.Add(time.Hour), EndTime: now.Add(2 * time.Hour)},
		{ID: "e2", StartTime: now.Add(-2 * time.Hour), EndTime: now.Add(-time.Hour)},
	}, domain.EventCounts{Total: 2, Filtered: 2}, nil)

	page, err := svc.List(context.Background(), domain.Caller{}, domain.EventQuery{Draw: 3, GroupType: domain.GroupTypeMine})

	require.NoError(t, err)
	assert.Equal(t, 3, page.Draw)
	assert.Equal(t, 2, page.RecordsTotal)
	require.Len(t, page.Data, 2)
	assert.Equal(t, domain.EventStatusUpcoming, page.Data[0].Status)
	assert.Equal(t, domain.EventStatusEnded, page.Data[1].Status)
	assert.False(t, page.Data[0].IsRegister)
}

func TestEventService_List_CapsLength(t *testing.T) {
	svc, d := newEventService(t)

	d.events.EXPECT().List(mock.Anything, mock.MatchedBy(func(f domain.EventFilter) bool {
		return f.Length == maxPageLength && f.Scope == domain.ScopeAll
	})).Return(nil, domain.EventCounts{}, nil)

	page, err := svc.List(context.Background(), admin, domain.EventQuery{Length: 1000})

	require.NoError(t, err)
	assert.Empty(t, page.Data)
}

func TestEventService_List_EmptyPageSkipsMembershipLookup(t *testing.T) {
	svc, d := newEventService(t)
	caller := domain.Caller{UserZaloID: "zalo-2", Role: domain.RoleUser}

	d.events.EXPECT().List(mock.Anything, mock.Anything).Return(nil, domain.EventCounts{}, nil)

	page, err := svc.List(context.Background(), caller, domain.EventQuery{})

	require.NoError(t, err)
	assert.Empty(t, page.Data)
	d.memberships.AssertNotCalled(t, "GetByUserZaloID", mock.Anything, mock.Anything)
}

func TestEventService_List_RegisteredEventsSkipMembershipLookup(t *testing.T) {
	svc, d := newEventService(t)
	caller := domain.Caller{UserZaloID: "zalo-2", Role: domain.RoleUser}

	d.events.EXPECT().List(mock.Anything, mock.Anything).
		Return([]*domain.Event{{ID: "e1"}}, domain.EventCounts{Total: 1, Filtered: 1}, nil)
	d.regs.EXPECT().GetActiveByEventAndUser(mock.Anything, "e1", "zalo-2").
		Return(&domain.EventRegistration{Status: domain.RegistrationStatusRegistered}, nil)

	page, err := svc.List(context.Background(), caller, domain.EventQuery{})

	require.NoError(t, err)
	assert.True(t, page.Data[0].IsRegister)
	d.memberships.AssertNotCalled(t, "GetByUserZaloID", mock.Anything, mock.Anything)
}

func TestEventService_List_ResolvesProfilePhoneOnce(t *testing.T) {
	svc, d := newEventService(t)
	caller := domain.Caller{UserZaloID: "zalo-2", Role: domain.RoleUser}

	d.events.EXPECT().List(mock.Anything, mock.Anything).
		Return([]*domain.Event{{ID: "e1"}, {ID: "e2"}}, domain.EventCounts{Total: 2, Filtered: 2}, nil)
	d.memberships.EXPECT().GetByUserZaloID(mock.Anything, "zalo-2").
		Return(&domain.Membership{PhoneNumber: "0987654321"}, nil).Once()
	d.regs.EXPECT().GetActiveByEventAndUser(mock.Anything, mock.Anything, "zalo-2").Return(nil, domain.ErrRegistrationNotFound)
	d.guests.EXPECT().FindByEventAndPhone(mock.Anything, mock.Anything, "0987654321").Return(nil, domain.ErrGuestNotFound)

	page, err := svc.List(context.Background(), caller, domain.EventQuery{})

	require.NoError(t, err)
	require.Len(t, page.Data, 2)
	d.memberships.AssertNumberOfCalls(t, "GetByUserZaloID", 1)
}

func TestEventService_List_ReportsVisibleAndFilteredTotals(t *testing.T) {
	svc, d := newEventService(t)

	d.events.EXPECT().List(mock.Anything, mock.MatchedBy(func(f domain.EventFilter) bool {
		return f.Keyword == "hội"
	})).Return(nil, domain.EventCounts{Total: 12, Filtered: 3}, nil)

	page, err := svc.List(context.Background(), admin, domain.EventQuery{Keyword: "hội"})

	require.NoError(t, err)
	assert.Equal(t, 12, page.RecordsTotal)
	assert.Equal(t, 3, page.RecordsFiltered)
}

func TestEventService_List_InvalidStatus(t *testing.T) {
	svc, _ := newEventService(t)

	_, err := svc.List(context.Background(), domain.Caller{}, domain.EventQuery{Status: "soon"})

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestEventService_List_EnrichesRegistration(t *testing.T) {
	svc, d := newEventService(t)

	d.events.EXPECT().List(mock.Anything, mock.MatchedBy(func(f domain.EventFilter) bool {
		return f.Scope == domain.ScopeMember && f.OnlyJoined && f.UserZaloID == member.UserZaloID
	})).Return([]*domain.Event{{ID: "e1"}}, domain.EventCounts{Total: 1, Filtered: 1}, nil)
	d.regs.EXPECT().GetActiveByEventAndUser(mock.Anything, "e1", member.UserZaloID).
		Return(&domain.EventRegistration{CheckInCode: "ABCD2345", Status: domain.RegistrationStatusCheckedIn}, nil)

	page, err := svc.List(context.Background(), member, domain.EventQuery{GroupType: domain.GroupTypeMine})

	require.NoError(t, err)
	require.Len(t, page.Data, 1)
	assert.True(t, page.Data[0].IsRegister)
	assert.True(t, page.Data[0].IsCheckIn)
	assert.Equal(t, "ABCD2345", page.Data[0].CheckInCode)
}

func TestEventService_List_FallsBackToGuestByProfilePhone(t *testing.T) {
	svc, d := newEventService(t)
	caller := domain.Caller{UserZaloID: "zalo-2", Role: domain.RoleUser}

	d.events.EXPECT().List(mock.Anything, mock.Anything).Return([]*domain.Event{{ID: "e1"}}, domain.EventCounts{Total: 1, Filtered: 1}, nil)
	d.memberships.EXPECT().GetByUserZaloID(mock.Anything, "zalo-2").
		Return(&domain.Membership{PhoneNumber: "0987654321"}, nil)
	d.regs.EXPECT().GetActiveByEventAndUser(mock.Anything, "e1", "zalo-2").Return(nil, domain.ErrRegistrationNotFound)
	d.guests.EXPECT().FindByEventAndPhone(mock.Anything, "e1", "0987654321").
		Return(&domain.GuestList{Status: domain.GuestStatusApproved, CheckInCode: "GUEST234"}, nil)

	page, err := svc.List(context.Background(), caller, domain.EventQuery{})

	require.NoError(t, err)
	assert.True(t, page.Data[0].IsRegister)
	assert.False(t, page.Data[0].IsCheckIn)
	assert.Equal(t, "GUEST234", page.Data[0].CheckInCode)
}

func TestEventService_List_PendingGuestIsNotRegistered(t *testing.T) {
	svc, d := newEventService(t)

	d.events.EXPECT().List(mock.Anything, mock.Anything).Return([]*domain.Event{{ID: "e1"}}, domain.EventCounts{Total: 1, Filtered: 1}, nil)
	d.regs.EXPECT().GetActiveByEventAndUser(mock.Anything, "e1", member.UserZaloID).Return(nil, domain.ErrRegistrationNotFound)
	d.guests.EXPECT().FindByEventAndPhone(mock.Anything, "e1", member.Phone).
		Return(&domain.GuestList{Status: domain.GuestStatusPending}, nil)

	page, err := svc.List(context.Background(), member, domain.EventQuery{})

	require.NoError(t, err)
	assert.False(t, page.Data[0].IsRegister)
}

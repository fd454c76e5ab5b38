package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/tienchinh21/bkasim-cms/internal/domain"
	"github.com/tienchinh21/bkasim-cms/internal/service/ports/mocks"
)

type stubCodes struct {
	code string
	err  error
}

func (s stubCodes) Generate(context.Context) (string, error) {
	return s.code, s.err
}

type registrationDeps struct {
	regs     *mocks.MockRegistrationRepo
	events   *mocks.MockEventRepo
	guests   *mocks.MockGuestRepo
	notifier *mocks.MockGuestNotifier
	activity *mocks.MockActivityRecorder
}

func newRegistrationService(t *testing.T) (*RegistrationService, registrationDeps) {
	d := registrationDeps{
		regs:     mocks.NewMockRegistrationRepo(t),
		events:   mocks.NewMockEventRepo(t),
		guests:   mocks.NewMockGuestRepo(t),
		notifier: mocks.NewMockGuestNotifier(t),
		activity: mocks.NewMockActivityRecorder(t),
	}
	svc := NewRegistrationService(d.regs, d.events, d.guests, stubCodes{code: "REGC0DE2"}, d.notifier, d.activity, newTestLogger(t))
	return svc, d
}

func openEvent(joinCount int) *domain.Event {
	now := time.Now()
	return &domain.Event{
		ID:        "e1",
		Title:     "Ngày hội",
		StartTime: now.Add(time.Hour),
		EndTime:   now.Add(3 * time.Hour),
		JoinCount: joinCount,
		IsActive:  true,
	}
}

func registerInput() domain.RegisterInput {
	return domain.RegisterInput{EventID: "e1", Name: "Nguyễn Văn A", PhoneNumber: "0901234567"}
}

func TestRegistrationService_Register_Success(t *testing.T) {
	svc, d := newRegistrationService(t)

	d.events.EXPECT().GetByID(mock.Anything, "e1").Return(openEvent(10), nil)
	d.regs.EXPECT().GetActiveByEventAndUser(mock.Anything, "e1", member.UserZaloID).Return(nil, domain.ErrRegistrationNotFound)
	d.regs.EXPECT().CountActiveByEvent(mock.Anything, "e1").Return(4, nil)
	d.guests.EXPECT().CountApprovedByEvent(mock.Anything, "e1").Return(3, nil)
	d.regs.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	d.notifier.EXPECT().NotifyRegistrationCreated(mock.Anything, mock.Anything, mock.Anything).Return()

	reg, err := svc.Register(context.Background(), member, registerInput())

	require.NoError(t, err)
	assert.Equal(t, "REGC0DE2", reg.CheckInCode)
	assert.Equal(t, domain.RegistrationStatusRegistered, reg.Status)
	assert.Equal(t, member.UserZaloID, reg.UserZaloID)

	time.Sleep(50 * time.Millisecond)
}

func TestRegistrationService_Register_Full(t *testing.T) {
	svc, d := newRegistrationService(t)

	d.events.EXPECT().GetByID(mock.Anything, "e1").Return(openEvent(5), nil)
	d.regs.EXPECT().GetActiveByEventAndUser(mock.Anything, "e1", member.UserZaloID).Return(nil, domain.ErrRegistrationNotFound)
	d.regs.EXPECT().CountActiveByEvent(mock.Anything, "e1").Return(3, nil)
	d.guests.EXPECT().CountApprovedByEvent(mock.Anything, "e1").Return(2, nil)

	_, err := svc.Register(context.Background(), member, registerInput())

	assert.ErrorIs(t, err, domain.ErrEventFull)
}

func TestRegistrationService_Register_UnlimitedSkipsCounts(t *testing.T) {
	svc, d := newRegistrationService(t)

	d.events.EXPECT().GetByID(mock.Anything, "e1").Return(openEvent(domain.UnlimitedJoinCount), nil)
	d.regs.EXPECT().GetActiveByEventAndUser(mock.Anything, "e1", member.UserZaloID).Return(nil, domain.ErrRegistrationNotFound)
	d.regs.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	d.notifier.EXPECT().NotifyRegistrationCreated(mock.Anything, mock.Anything, mock.Anything).Return()

	_, err := svc.Register(context.Background(), member, registerInput())

	require.NoError(t, err)
	time.Sleep(50 * time.Millisecond)
}

func TestRegistrationService_Register_AlreadyRegistered(t *testing.T) {
	svc, d := newRegistrationService(t)

	d.events.EXPECT().GetByID(mock.Anything, "e1").Return(openEvent(10), nil)
	d.regs.EXPECT().GetActiveByEventAndUser(mock.Anything, "e1", member.UserZaloID).Return(&domain.EventRegistration{ID: "r0"}, nil)

	_, err := svc.Register(context.Background(), member, registerInput())

	assert.ErrorIs(t, err, domain.ErrAlreadyRegistered)
}

func TestRegistrationService_Register_EventEnded(t *testing.T) {
	svc, d := newRegistrationService(t)

	ended := openEvent(10)
	ended.StartTime = time.Now().Add(-3 * time.Hour)
	ended.EndTime = time.Now().Add(-time.Hour)
	d.events.EXPECT().GetByID(mock.Anything, "e1").Return(ended, nil)

	_, err := svc.Register(context.Background(), member, registerInput())

	assert.ErrorIs(t, err, domain.ErrEventClosed)
}

func TestRegistrationService_Register_Anonymous(t *testing.T) {
	svc, _ := newRegistrationService(t)

	_, err := svc.Register(context.Background(), domain.Caller{}, registerInput())

	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestRegistrationService_Register_InvalidPhone(t *testing.T) {
	svc, _ := newRegistrationService(t)

	input := registerInput()
	input.PhoneNumber = "12345"

	_, err := svc.Register(context.Background(), member, input)

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestRegistrationService_Cancel_Owner(t *testing.T) {
	svc, d := newRegistrationService(t)

	d.regs.EXPECT().GetByID(mock.Anything, "r1").
		Return(&domain.EventRegistration{ID: "r1", UserZaloID: member.UserZaloID, Status: domain.RegistrationStatusRegistered}, nil)
	d.regs.EXPECT().UpdateStatus(mock.Anything, "r1", domain.RegistrationStatusCancelled, (*time.Time)(nil)).Return(nil)

	require.NoError(t, svc.Cancel(context.Background(), member, "r1"))
}

func TestRegistrationService_Cancel_Stranger(t *testing.T) {
	svc, d := newRegistrationService(t)

	d.regs.EXPECT().GetByID(mock.Anything, "r1").
		Return(&domain.EventRegistration{ID: "r1", UserZaloID: "someone-else", Status: domain.RegistrationStatusRegistered}, nil)

	err := svc.Cancel(context.Background(), member, "r1")

	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestRegistrationService_Cancel_AlreadyCheckedIn(t *testing.T) {
	svc, d := newRegistrationService(t)

	d.regs.EXPECT().GetByID(mock.Anything, "r1").
		Return(&domain.EventRegistration{ID: "r1", UserZaloID: member.UserZaloID, Status: domain.RegistrationStatusCheckedIn}, nil)

	err := svc.Cancel(context.Background(), member, "r1")

	assert.ErrorIs(t, err, domain.ErrInvalidStatusTransition)
}

func TestRegistrationService_Cancel_AdminRecordsActivity(t *testing.T) {
	svc, d := newRegistrationService(t)

	d.regs.EXPECT().GetByID(mock.Anything, "r1").
		Return(&domain.EventRegistration{ID: "r1", UserZaloID: member.UserZaloID, Status: domain.RegistrationStatusRegistered}, nil)
	d.regs.EXPECT().UpdateStatus(mock.Anything, "r1", domain.RegistrationStatusCancelled, (*time.Time)(nil)).Return(nil)
	d.activity.EXPECT().Record(mock.Anything, admin, domain.ActionCancel, domain.EntityRegistration, "r1").Return()

	require.NoError(t, svc.Cancel(context.Background(), admin, "r1"))
}

func TestRegistrationService_CheckIn_Registration(t *testing.T) {
	svc, d := newRegistrationService(t)

	d.regs.EXPECT().GetByCheckInCode(mock.Anything, "ABCD2345").
		Return(&domain.EventRegistration{ID: "r1", EventID: "e1", Name: "A", Status: domain.RegistrationStatusRegistered}, nil)
	d.regs.EXPECT().UpdateStatus(mock.Anything, "r1", domain.RegistrationStatusCheckedIn, mock.Anything).Return(nil)
	d.activity.EXPECT().Record(mock.Anything, admin, domain.ActionCheckIn, domain.EntityRegistration, "r1").Return()

	res, err := svc.CheckIn(context.Background(), admin, "  abcd2345 ")

	require.NoError(t, err)
	assert.Equal(t, domain.SourceRegistration, res.Source)
	assert.Equal(t, "r1", res.ID)
}

func TestRegistrationService_CheckIn_RegistrationTwice(t *testing.T) {
	svc, d := newRegistrationService(t)

	d.regs.EXPECT().GetByCheckInCode(mock.Anything, "ABCD2345").
		Return(&domain.EventRegistration{ID: "r1", Status: domain.RegistrationStatusCheckedIn}, nil)

	_, err := svc.CheckIn(context.Background(), admin, "ABCD2345")

	assert.ErrorIs(t, err, domain.ErrAlreadyCheckedIn)
}

func TestRegistrationService_CheckIn_FallsBackToGuest(t *testing.T) {
	svc, d := newRegistrationService(t)

	d.regs.EXPECT().GetByCheckInCode(mock.Anything, "GUEST234").Return(nil, domain.ErrRegistrationNotFound)
	d.guests.EXPECT().GetByCheckInCode(mock.Anything, "GUEST234").
		Return(&domain.GuestList{ID: "g1", EventID: "e1", GuestName: "B", Status: domain.GuestStatusApproved}, nil)
	d.guests.EXPECT().CheckIn(mock.Anything, "g1", mock.Anything).Return(nil)
	d.activity.EXPECT().Record(mock.Anything, admin, domain.ActionCheckIn, domain.EntityGuestList, "g1").Return()

	res, err := svc.CheckIn(context.Background(), admin, "GUEST234")

	require.NoError(t, err)
	assert.Equal(t, domain.SourceGuest, res.Source)
	assert.Equal(t, "B", res.Name)
}

func TestRegistrationService_CheckIn_UnapprovedGuest(t *testing.T) {
	svc, d := newRegistrationService(t)

	d.regs.EXPECT().GetByCheckInCode(mock.Anything, "GUEST234").Return(nil, domain.ErrRegistrationNotFound)
	d.guests.EXPECT().GetByCheckInCode(mock.Anything, "GUEST234").
		Return(&domain.GuestList{ID: "g1", Status: domain.GuestStatusRejected}, nil)

	_, err := svc.CheckIn(context.Background(), admin, "GUEST234")

	assert.ErrorIs(t, err, domain.ErrInvalidStatusTransition)
}

func TestRegistrationService_CheckIn_UnknownCode(t *testing.T) {
	svc, d := newRegistrationService(t)

	d.regs.EXPECT().GetByCheckInCode(mock.Anything, "NOPE2345").Return(nil, domain.ErrRegistrationNotFound)
	d.guests.EXPECT().GetByCheckInCode(mock.Anything, "NOPE2345").Return(nil, domain.ErrGuestNotFound)

	_, err := svc.CheckIn(context.Background(), admin, "nope2345")

	assert.ErrorIs(t, err, domain.ErrCheckInCodeNotFound)
}

func TestRegistrationService_CheckIn_EmptyCode(t *testing.T) {
	svc, _ := newRegistrationService(t)

	_, err := svc.CheckIn(context.Background(), admin, "   ")

	assert.ErrorIs(t, err, domain.ErrValidation)
}

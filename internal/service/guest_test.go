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
)

type guestDeps struct {
	guests   *mocks.MockGuestRepo
	events   *mocks.MockEventRepo
	notifier *mocks.MockGuestNotifier
	activity *mocks.MockActivityRecorder
}

func newGuestService(t *testing.T) (*GuestService, guestDeps) {
	d := guestDeps{
		guests:   mocks.NewMockGuestRepo(t),
		events:   mocks.NewMockEventRepo(t),
		notifier: mocks.NewMockGuestNotifier(t),
		activity: mocks.NewMockActivityRecorder(t),
	}
	svc := NewGuestService(d.guests, d.events, stubCodes{code: "GUEST234"}, d.notifier, d.activity, newTestLogger(t))
	return svc, d
}

func TestGuestService_CreateBatch_StartsPending(t *testing.T) {
	svc, d := newGuestService(t)

	d.events.EXPECT().GetByID(mock.Anything, "e1").Return(openEvent(10), nil)
	d.guests.EXPECT().CreateBatch(mock.Anything, mock.Anything, mock.Anything).Return(nil)

	eg, guests, err := svc.CreateBatch(context.Background(), member, "e1", "bạn bè", []domain.GuestInput{
		{GuestName: "Khách 1", GuestPhone: " 0912345678 "},
		{GuestName: "Khách 2", GuestPhone: "0987654321", GuestEmail: "k2@example.com"},
	})

	require.NoError(t, err)
	assert.Equal(t, member.UserZaloID, eg.UserZaloID)
	require.Len(t, guests, 2)
	for _, g := range guests {
		assert.Equal(t, domain.GuestStatusPending, g.Status)
		assert.Equal(t, eg.ID, g.EventGuestID)
		assert.Empty(t, g.CheckInCode)
	}
	assert.Equal(t, "0912345678", guests[0].GuestPhone)
}

func TestGuestService_CreateBatch_Empty(t *testing.T) {
	svc, _ := newGuestService(t)

	_, _, err := svc.CreateBatch(context.Background(), member, "e1", "", nil)

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestGuestService_CreateBatch_InvalidPhone(t *testing.T) {
	svc, _ := newGuestService(t)

	_, _, err := svc.CreateBatch(context.Background(), member, "e1", "", []domain.GuestInput{
		{GuestName: "Khách", GuestPhone: "abc"},
	})

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestGuestService_CreateBatch_InactiveEvent(t *testing.T) {
	svc, d := newGuestService(t)

	event := openEvent(10)
	event.IsActive = false
	d.events.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)

	_, _, err := svc.CreateBatch(context.Background(), member, "e1", "", []domain.GuestInput{
		{GuestName: "Khách", GuestPhone: "0912345678"},
	})

	assert.ErrorIs(t, err, domain.ErrEventClosed)
}

func TestGuestService_Approve_SkipsDecidedRows(t *testing.T) {
	svc, d := newGuestService(t)

	d.guests.EXPECT().GetEventGuest(mock.Anything, "eg1").Return(&domain.EventGuest{ID: "eg1", EventID: "e1"}, nil)
	d.events.EXPECT().GetByID(mock.Anything, "e1").Return(openEvent(10), nil)
	d.guests.EXPECT().ListByEventGuest(mock.Anything, "eg1").Return([]*domain.GuestList{
		{ID: "g1", Status: domain.GuestStatusPending},
		{ID: "g2", Status: domain.GuestStatusRegistered},
		{ID: "g3", Status: domain.GuestStatusRejected},
	}, nil)
	d.guests.EXPECT().UpdateStatus(mock.Anything, "g1", domain.GuestStatusApproved, "GUEST234").Return(nil)
	d.guests.EXPECT().UpdateStatus(mock.Anything, "g2", domain.GuestStatusApproved, "GUEST234").Return(nil)
	d.notifier.EXPECT().NotifyGuestApproved(mock.Anything, mock.Anything, mock.Anything).Return().Times(2)
	d.activity.EXPECT().Record(mock.Anything, admin, domain.ActionApprove, domain.EntityEventGuest, "eg1").Return()

	approved, err := svc.Approve(context.Background(), admin, "eg1")

	require.NoError(t, err)
	require.Len(t, approved, 2)
	assert.Equal(t, domain.GuestStatusApproved, approved[0].Status)
	assert.Equal(t, "GUEST234", approved[1].CheckInCode)

	time.Sleep(50 * time.Millisecond)
}

func TestGuestService_ApproveItem_TerminalRejected(t *testing.T) {
	svc, d := newGuestService(t)

	d.guests.EXPECT().GetByID(mock.Anything, "g1").Return(&domain.GuestList{ID: "g1", Status: domain.GuestStatusCancelled}, nil)

	_, err := svc.ApproveItem(context.Background(), admin, "g1")

	assert.ErrorIs(t, err, domain.ErrInvalidStatusTransition)
}

func TestGuestService_ApproveItem_CodeFailure(t *testing.T) {
	svc, d := newGuestService(t)
	svc.codes = stubCodes{err: domain.ErrCheckInCodeExhausted}

	d.guests.EXPECT().GetByID(mock.Anything, "g1").Return(&domain.GuestList{ID: "g1", EventID: "e1", Status: domain.GuestStatusPending}, nil)
	d.events.EXPECT().GetByID(mock.Anything, "e1").Return(openEvent(10), nil)

	_, err := svc.ApproveItem(context.Background(), admin, "g1")

	assert.ErrorIs(t, err, domain.ErrCheckInCodeExhausted)
}

func TestGuestService_RejectItem(t *testing.T) {
	svc, d := newGuestService(t)

	d.guests.EXPECT().GetByID(mock.Anything, "g1").Return(&domain.GuestList{ID: "g1", Status: domain.GuestStatusRegistered}, nil)
	d.guests.EXPECT().UpdateStatus(mock.Anything, "g1", domain.GuestStatusRejected, "").Return(nil)
	d.activity.EXPECT().Record(mock.Anything, admin, domain.ActionReject, domain.EntityGuestList, "g1").Return()

	guest, err := svc.RejectItem(context.Background(), admin, "g1")

	require.NoError(t, err)
	assert.Equal(t, domain.GuestStatusRejected, guest.Status)
}

func TestGuestService_CancelItem_FromPending(t *testing.T) {
	svc, d := newGuestService(t)

	d.guests.EXPECT().GetByID(mock.Anything, "g1").Return(&domain.GuestList{ID: "g1", Status: domain.GuestStatusPending}, nil)
	d.guests.EXPECT().UpdateStatus(mock.Anything, "g1", domain.GuestStatusCancelled, "").Return(nil)
	d.activity.EXPECT().Record(mock.Anything, admin, domain.ActionCancel, domain.EntityGuestList, "g1").Return()

	guest, err := svc.CancelItem(context.Background(), admin, "g1")

	require.NoError(t, err)
	assert.Equal(t, domain.GuestStatusCancelled, guest.Status)
}

func TestGuestService_CancelItem_Approved(t *testing.T) {
	svc, d := newGuestService(t)

	d.guests.EXPECT().GetByID(mock.Anything, "g1").Return(&domain.GuestList{ID: "g1", Status: domain.GuestStatusApproved}, nil)

	_, err := svc.CancelItem(context.Background(), admin, "g1")

	assert.ErrorIs(t, err, domain.ErrInvalidStatusTransition)
}

func TestGuestService_List_InvalidStatus(t *testing.T) {
	svc, _ := newGuestService(t)
	status := domain.GuestStatus(9)

	_, err := svc.List(context.Background(), domain.GuestFilter{Status: &status})

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestGuestService_ExpireStale(t *testing.T) {
	svc, d := newGuestService(t)
	now := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	d.guests.EXPECT().CancelStale(mock.Anything, now).Return([]*domain.GuestList{{ID: "g1"}}, nil)

	cancelled, err := svc.ExpireStale(context.Background())

	require.NoError(t, err)
	assert.Len(t, cancelled, 1)
}

func TestGuestService_ExpireStale_Error(t *testing.T) {
	svc, d := newGuestService(t)

	d.guests.EXPECT().CancelStale(mock.Anything, mock.Anything).Return(nil, errors.New("db error"))

	_, err := svc.ExpireStale(context.Background())

	assert.Error(t, err)
}

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

type customFieldDeps struct {
	fields   *mocks.MockCustomFieldRepo
	values   *mocks.MockCustomFieldValueRepo
	events   *mocks.MockEventRepo
	guests   *mocks.MockGuestRepo
	regs     *mocks.MockRegistrationRepo
	notifier *mocks.MockGuestNotifier
	activity *mocks.MockActivityRecorder
}

func newCustomFieldService(t *testing.T) (*CustomFieldService, customFieldDeps) {
	d := customFieldDeps{
		fields:   mocks.NewMockCustomFieldRepo(t),
		values:   mocks.NewMockCustomFieldValueRepo(t),
		events:   mocks.NewMockEventRepo(t),
		guests:   mocks.NewMockGuestRepo(t),
		regs:     mocks.NewMockRegistrationRepo(t),
		notifier: mocks.NewMockGuestNotifier(t),
		activity: mocks.NewMockActivityRecorder(t),
	}
	svc := NewCustomFieldService(d.fields, d.values, d.events, d.guests, d.regs,
		stubCodes{code: "FIELD234"}, d.notifier, d.activity, newTestLogger(t))
	return svc, d
}

func eventFields() []*domain.EventCustomField {
	return []*domain.EventCustomField{
		{ID: "f1", EventID: "e1", FieldName: "Đơn vị", FieldType: domain.FieldTypeText, IsRequired: true, SortOrder: 1},
		{ID: "f2", EventID: "e1", FieldName: "Tuổi", FieldType: domain.FieldTypeNumber, IsRequired: true, SortOrder: 2},
		{ID: "f3", EventID: "e1", FieldName: "Ghi chú", FieldType: domain.FieldTypeTextarea, SortOrder: 3},
	}
}

func pendingGuest() *domain.GuestList {
	return &domain.GuestList{ID: "g1", EventGuestID: "eg1", EventID: "e1", GuestName: "Khách", Status: domain.GuestStatusPending}
}

func ownGuestList(d customFieldDeps) {
	d.guests.EXPECT().GetEventGuest(mock.Anything, "eg1").
		Return(&domain.EventGuest{ID: "eg1", EventID: "e1", UserZaloID: member.UserZaloID}, nil)
}

func TestCustomFieldService_SubmitGuestValues_MissingRequired(t *testing.T) {
	svc, d := newCustomFieldService(t)

	d.guests.EXPECT().GetByID(mock.Anything, "g1").Return(pendingGuest(), nil)
	ownGuestList(d)
	d.events.EXPECT().GetByID(mock.Anything, "e1").Return(openEvent(10), nil)
	d.fields.EXPECT().ListByEvent(mock.Anything, "e1").Return(eventFields(), nil)

	_, err := svc.SubmitGuestValues(context.Background(), member, domain.GuestSubmission{
		GuestListID: "g1",
		Values: []domain.FieldValueInput{
			{EventCustomFieldID: "f1", FieldValue: "  "},
			{EventCustomFieldID: "f3", FieldValue: "abc"},
		},
	})

	require.ErrorIs(t, err, domain.ErrMissingRequiredFields)
	var missing *domain.MissingFieldsError
	require.True(t, errors.As(err, &missing))
	assert.Equal(t, []string{"Đơn vị", "Tuổi"}, missing.Fields)
}

func TestCustomFieldService_SubmitGuestValues_ApprovesWithoutApprovalStep(t *testing.T) {
	svc, d := newCustomFieldService(t)

	d.guests.EXPECT().GetByID(mock.Anything, "g1").Return(pendingGuest(), nil)
	ownGuestList(d)
	d.events.EXPECT().GetByID(mock.Anything, "e1").Return(openEvent(10), nil)
	d.fields.EXPECT().ListByEvent(mock.Anything, "e1").Return(eventFields(), nil)
	d.values.EXPECT().CreateBatch(mock.Anything, mock.MatchedBy(func(vs []*domain.EventCustomFieldValue) bool {
		if len(vs) != 2 {
			return false
		}
		for _, v := range vs {
			if v.GuestListID == nil || *v.GuestListID != "g1" || v.EventRegistrationID != nil {
				return false
			}
		}
		return vs[0].FieldName == "Đơn vị" && vs[1].FieldValue == "30"
	})).Return(nil)
	d.guests.EXPECT().UpdateStatus(mock.Anything, "g1", domain.GuestStatusApproved, "FIELD234").Return(nil)
	d.notifier.EXPECT().NotifyGuestApproved(mock.Anything, mock.Anything, mock.Anything).Return()

	guest, err := svc.SubmitGuestValues(context.Background(), member, domain.GuestSubmission{
		GuestListID: "g1",
		Values: []domain.FieldValueInput{
			{EventCustomFieldID: "f1", FieldValue: "Phòng Kỹ thuật"},
			{EventCustomFieldID: "f2", FieldValue: "30"},
			{EventCustomFieldID: "f3", FieldValue: ""},
		},
	})

	require.NoError(t, err)
	assert.Equal(t, domain.GuestStatusApproved, guest.Status)
	assert.Equal(t, "FIELD234", guest.CheckInCode)

	time.Sleep(50 * time.Millisecond)
}

func TestCustomFieldService_SubmitGuestValues_NeedApproval(t *testing.T) {
	svc, d := newCustomFieldService(t)

	event := openEvent(10)
	event.NeedApproval = true
	d.guests.EXPECT().GetByID(mock.Anything, "g1").Return(pendingGuest(), nil)
	ownGuestList(d)
	d.events.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)
	d.fields.EXPECT().ListByEvent(mock.Anything, "e1").Return(eventFields(), nil)
	d.values.EXPECT().CreateBatch(mock.Anything, mock.Anything).Return(nil)
	d.guests.EXPECT().UpdateStatus(mock.Anything, "g1", domain.GuestStatusRegistered, "").Return(nil)
	d.notifier.EXPECT().NotifyGuestAwaitingApproval(mock.Anything, event, mock.Anything).Return()

	guest, err := svc.SubmitGuestValues(context.Background(), member, domain.GuestSubmission{
		GuestListID: "g1",
		Values: []domain.FieldValueInput{
			{EventCustomFieldID: "f1", FieldValue: "Phòng Kỹ thuật"},
			{EventCustomFieldID: "f2", FieldValue: "30"},
		},
	})

	require.NoError(t, err)
	assert.Equal(t, domain.GuestStatusRegistered, guest.Status)
	assert.Empty(t, guest.CheckInCode)

	time.Sleep(50 * time.Millisecond)
}

func TestCustomFieldService_SubmitGuestValues_NoFieldsApproves(t *testing.T) {
	svc, d := newCustomFieldService(t)

	d.guests.EXPECT().GetByID(mock.Anything, "g1").Return(pendingGuest(), nil)
	ownGuestList(d)
	d.events.EXPECT().GetByID(mock.Anything, "e1").Return(openEvent(10), nil)
	d.fields.EXPECT().ListByEvent(mock.Anything, "e1").Return(nil, nil)
	d.guests.EXPECT().UpdateStatus(mock.Anything, "g1", domain.GuestStatusApproved, "FIELD234").Return(nil)
	d.notifier.EXPECT().NotifyGuestApproved(mock.Anything, mock.Anything, mock.Anything).Return()

	guest, err := svc.SubmitGuestValues(context.Background(), member, domain.GuestSubmission{GuestListID: "g1"})

	require.NoError(t, err)
	assert.Equal(t, domain.GuestStatusApproved, guest.Status)

	time.Sleep(50 * time.Millisecond)
}

func TestCustomFieldService_SubmitGuestValues_NotPending(t *testing.T) {
	svc, d := newCustomFieldService(t)

	guest := pendingGuest()
	guest.Status = domain.GuestStatusApproved
	d.guests.EXPECT().GetByID(mock.Anything, "g1").Return(guest, nil)
	ownGuestList(d)

	_, err := svc.SubmitGuestValues(context.Background(), member, domain.GuestSubmission{GuestListID: "g1"})

	assert.ErrorIs(t, err, domain.ErrInvalidStatusTransition)
}

func TestCustomFieldService_SubmitGuestValues_UnknownField(t *testing.T) {
	svc, d := newCustomFieldService(t)

	d.guests.EXPECT().GetByID(mock.Anything, "g1").Return(pendingGuest(), nil)
	ownGuestList(d)
	d.events.EXPECT().GetByID(mock.Anything, "e1").Return(openEvent(10), nil)
	d.fields.EXPECT().ListByEvent(mock.Anything, "e1").Return(eventFields(), nil)

	_, err := svc.SubmitGuestValues(context.Background(), member, domain.GuestSubmission{
		GuestListID: "g1",
		Values:      []domain.FieldValueInput{{EventCustomFieldID: "other", FieldValue: "x"}},
	})

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestCustomFieldService_SubmitGuestValues_BadNumber(t *testing.T) {
	svc, d := newCustomFieldService(t)

	d.guests.EXPECT().GetByID(mock.Anything, "g1").Return(pendingGuest(), nil)
	ownGuestList(d)
	d.events.EXPECT().GetByID(mock.Anything, "e1").Return(openEvent(10), nil)
	d.fields.EXPECT().ListByEvent(mock.Anything, "e1").Return(eventFields(), nil)

	_, err := svc.SubmitGuestValues(context.Background(), member, domain.GuestSubmission{
		GuestListID: "g1",
		Values: []domain.FieldValueInput{
			{EventCustomFieldID: "f1", FieldValue: "Phòng"},
			{EventCustomFieldID: "f2", FieldValue: "ba mươi"},
		},
	})

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestCustomFieldService_SubmitRegistrationValues_KeepsStatus(t *testing.T) {
	svc, d := newCustomFieldService(t)

	d.regs.EXPECT().GetByID(mock.Anything, "r1").
		Return(&domain.EventRegistration{ID: "r1", EventID: "e1", UserZaloID: member.UserZaloID, Status: domain.RegistrationStatusRegistered}, nil)
	d.fields.EXPECT().ListByEvent(mock.Anything, "e1").Return(eventFields(), nil)
	d.values.EXPECT().CreateBatch(mock.Anything, mock.Anything).Return(nil)

	values, err := svc.SubmitRegistrationValues(context.Background(), member, domain.RegistrationSubmission{
		EventRegistrationID: "r1",
		Values: []domain.FieldValueInput{
			{EventCustomFieldID: "f1", FieldValue: "Phòng"},
			{EventCustomFieldID: "f2", FieldValue: "42"},
		},
	})

	require.NoError(t, err)
	require.Len(t, values, 2)
	require.NotNil(t, values[0].EventRegistrationID)
	assert.Equal(t, "r1", *values[0].EventRegistrationID)
	assert.Nil(t, values[0].GuestListID)
}

func TestCustomFieldService_SubmitRegistrationValues_Forbidden(t *testing.T) {
	svc, d := newCustomFieldService(t)

	d.regs.EXPECT().GetByID(mock.Anything, "r1").
		Return(&domain.EventRegistration{ID: "r1", UserZaloID: "other"}, nil)

	_, err := svc.SubmitRegistrationValues(context.Background(), member, domain.RegistrationSubmission{EventRegistrationID: "r1"})

	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestCustomFieldService_Create_InvalidType(t *testing.T) {
	svc, _ := newCustomFieldService(t)

	_, err := svc.Create(context.Background(), admin, domain.CustomFieldInput{
		EventID: "e1", FieldName: "Màu", FieldType: "color",
	})

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestCustomFieldService_Update_KeepsEvent(t *testing.T) {
	svc, d := newCustomFieldService(t)

	d.fields.EXPECT().GetByID(mock.Anything, "f1").Return(&domain.EventCustomField{ID: "f1", EventID: "e1"}, nil)
	d.fields.EXPECT().ListByEvent(mock.Anything, "e1").
		Return([]*domain.EventCustomField{{ID: "f1", EventID: "e1", FieldName: "email"}}, nil)
	d.fields.EXPECT().Update(mock.Anything, mock.MatchedBy(func(f *domain.EventCustomField) bool {
		return f.EventID == "e1" && f.FieldName == "Email" && f.FieldType == domain.FieldTypeEmail
	})).Return(nil)
	d.activity.EXPECT().Record(mock.Anything, admin, domain.ActionUpdate, domain.EntityCustomField, "f1").Return()

	field, err := svc.Update(context.Background(), admin, "f1", domain.CustomFieldInput{
		EventID: "e2", FieldName: " Email ", FieldType: domain.FieldTypeEmail, IsRequired: true,
	})

	require.NoError(t, err)
	assert.Equal(t, "e1", field.EventID)
	assert.True(t, field.IsRequired)
}

func TestCustomFieldService_SubmitGuestValues_Anonymous(t *testing.T) {
	svc, _ := newCustomFieldService(t)

	_, err := svc.SubmitGuestValues(context.Background(), domain.Caller{}, domain.GuestSubmission{GuestListID: "g1"})

	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestCustomFieldService_SubmitGuestValues_ForeignGuestList(t *testing.T) {
	svc, d := newCustomFieldService(t)

	d.guests.EXPECT().GetByID(mock.Anything, "g1").Return(pendingGuest(), nil)
	d.guests.EXPECT().GetEventGuest(mock.Anything, "eg1").
		Return(&domain.EventGuest{ID: "eg1", EventID: "e1", UserZaloID: "zalo-other"}, nil)

	_, err := svc.SubmitGuestValues(context.Background(), member, domain.GuestSubmission{
		GuestListID: "g1",
		Values:      []domain.FieldValueInput{{EventCustomFieldID: "f1", FieldValue: "Phòng"}},
	})

	assert.ErrorIs(t, err, domain.ErrForbidden)
	d.values.AssertNotCalled(t, "CreateBatch", mock.Anything, mock.Anything)
	d.guests.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestCustomFieldService_SubmitGuestValues_AdminSkipsOwnership(t *testing.T) {
	svc, d := newCustomFieldService(t)

	d.guests.EXPECT().GetByID(mock.Anything, "g1").Return(pendingGuest(), nil)
	d.events.EXPECT().GetByID(mock.Anything, "e1").Return(openEvent(10), nil)
	d.fields.EXPECT().ListByEvent(mock.Anything, "e1").Return(nil, nil)
	d.guests.EXPECT().UpdateStatus(mock.Anything, "g1", domain.GuestStatusApproved, "FIELD234").Return(nil)
	d.notifier.EXPECT().NotifyGuestApproved(mock.Anything, mock.Anything, mock.Anything).Return()

	guest, err := svc.SubmitGuestValues(context.Background(), admin, domain.GuestSubmission{GuestListID: "g1"})

	require.NoError(t, err)
	assert.Equal(t, domain.GuestStatusApproved, guest.Status)
	d.guests.AssertNotCalled(t, "GetEventGuest", mock.Anything, mock.Anything)

	time.Sleep(50 * time.Millisecond)
}

func TestCustomFieldService_Create_DuplicateName(t *testing.T) {
	svc, d := newCustomFieldService(t)

	d.events.EXPECT().GetByID(mock.Anything, "e1").Return(openEvent(10), nil)
	d.fields.EXPECT().ListByEvent(mock.Anything, "e1").Return(eventFields(), nil)

	_, err := svc.Create(context.Background(), admin, domain.CustomFieldInput{
		EventID: "e1", FieldName: " tuổi ", FieldType: domain.FieldTypeNumber,
	})

	assert.ErrorIs(t, err, domain.ErrValidation)
	d.fields.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCustomFieldService_Create_UniqueName(t *testing.T) {
	svc, d := newCustomFieldService(t)

	d.events.EXPECT().GetByID(mock.Anything, "e1").Return(openEvent(10), nil)
	d.fields.EXPECT().ListByEvent(mock.Anything, "e1").Return(eventFields(), nil)
	d.fields.EXPECT().Create(mock.Anything, mock.MatchedBy(func(f *domain.EventCustomField) bool {
		return f.EventID == "e1" && f.FieldName == "Email"
	})).Return(nil)
	d.activity.EXPECT().Record(mock.Anything, admin, domain.ActionCreate, domain.EntityCustomField, mock.Anything).Return()

	field, err := svc.Create(context.Background(), admin, domain.CustomFieldInput{
		EventID: "e1", FieldName: "Email", FieldType: domain.FieldTypeEmail,
	})

	require.NoError(t, err)
	assert.NotEmpty(t, field.ID)
}

func TestCustomFieldService_Update_DuplicateName(t *testing.T) {
	svc, d := newCustomFieldService(t)

	d.fields.EXPECT().GetByID(mock.Anything, "f3").Return(&domain.EventCustomField{ID: "f3", EventID: "e1", FieldName: "Ghi chú"}, nil)
	d.fields.EXPECT().ListByEvent(mock.Anything, "e1").Return(eventFields(), nil)

	_, err := svc.Update(context.Background(), admin, "f3", domain.CustomFieldInput{
		FieldName: "Đơn vị", FieldType: domain.FieldTypeText,
	})

	assert.ErrorIs(t, err, domain.ErrValidation)
	d.fields.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestCheckFieldValue(t *testing.T) {
	ctx := context.Background()
	tests := []struct {
		typ   domain.FieldType
		value string
		ok    bool
	}{
		{domain.FieldTypeNumber, "3.5", true},
		{domain.FieldTypeNumber, "x", false},
		{domain.FieldTypeEmail, "a@b.vn", true},
		{domain.FieldTypeEmail, "a@", false},
		{domain.FieldTypePhone, "0912345678", true},
		{domain.FieldTypePhone, "12", false},
		{domain.FieldTypeDate, "2026-02-28", true},
		{domain.FieldTypeDate, "28/02/2026", false},
		{domain.FieldTypeText, "bất kỳ", true},
	}
	for _, tt := range tests {
		t.Run(string(tt.typ)+"/"+tt.value, func(t *testing.T) {
			err := checkFieldValue(ctx, &domain.EventCustomField{FieldName: "f", FieldType: tt.typ}, tt.value)
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, domain.ErrValidation)
			}
		})
	}
}

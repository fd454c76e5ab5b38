package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/tienchinh21/bkasim-cms/internal/domain"
	"github.com/tienchinh21/bkasim-cms/internal/service/ports/mocks"
)

type fakeRenderer struct {
	got *domain.EventStatistics
	err error
}

func (f *fakeRenderer) Render(stats *domain.EventStatistics) ([]byte, error) {
	f.got = stats
	if f.err != nil {
		return nil, f.err
	}
	return []byte("xlsx"), nil
}

type statisticsDeps struct {
	events *mocks.MockEventRepo
	regs   *mocks.MockRegistrationRepo
	guests *mocks.MockGuestRepo
	fields *mocks.MockCustomFieldRepo
	values *mocks.MockCustomFieldValueRepo
}

func newStatisticsService(t *testing.T, renderer WorkbookRenderer) (*StatisticsService, statisticsDeps) {
	d := statisticsDeps{
		events: mocks.NewMockEventRepo(t),
		regs:   mocks.NewMockRegistrationRepo(t),
		guests: mocks.NewMockGuestRepo(t),
		fields: mocks.NewMockCustomFieldRepo(t),
		values: mocks.NewMockCustomFieldValueRepo(t),
	}
	svc := NewStatisticsService(d.events, d.regs, d.guests, d.fields, d.values, renderer, newTestLogger(t))
	return svc, d
}

func strPtr(s string) *string { return &s }

func TestStatisticsService_Statistics_Counts(t *testing.T) {
	svc, d := newStatisticsService(t, &fakeRenderer{})
	checkedIn := time.Now()

	d.events.EXPECT().GetByID(mock.Anything, "e1").Return(&domain.Event{ID: "e1"}, nil)
	d.regs.EXPECT().ListByEvent(mock.Anything, "e1").Return([]*domain.EventRegistration{
		{ID: "r1", Name: "A", Status: domain.RegistrationStatusCheckedIn, CheckInTime: &checkedIn},
		{ID: "r2", Name: "B", Status: domain.RegistrationStatusCancelled},
	}, nil)
	d.guests.EXPECT().ListApprovedByEvent(mock.Anything, "e1").Return([]*domain.GuestList{
		{ID: "g1", GuestName: "C", Status: domain.GuestStatusApproved},
	}, nil)
	d.fields.EXPECT().ListByEvent(mock.Anything, "e1").Return([]*domain.EventCustomField{
		{ID: "f2", FieldName: "Tuổi", SortOrder: 2},
		{ID: "f1", FieldName: "Đơn vị", SortOrder: 1},
	}, nil)
	d.values.EXPECT().ListByRegistrations(mock.Anything, []string{"r1", "r2"}).Return([]*domain.EventCustomFieldValue{
		{EventCustomFieldID: "f1", FieldName: "cũ", EventRegistrationID: strPtr("r1"), FieldValue: "Phòng A"},
		{EventCustomFieldID: "deleted", FieldName: "Áo", EventRegistrationID: strPtr("r1"), FieldValue: "L"},
	}, nil)
	d.values.EXPECT().ListByGuests(mock.Anything, []string{"g1"}).Return([]*domain.EventCustomFieldValue{
		{EventCustomFieldID: "f2", FieldName: "Tuổi", GuestListID: strPtr("g1"), FieldValue: "30"},
	}, nil)

	stats, err := svc.Statistics(context.Background(), "e1")

	require.NoError(t, err)
	assert.Equal(t, 2, stats.Registered)
	assert.Equal(t, 1, stats.CheckedIn)
	assert.Equal(t, 1, stats.NotCheckedIn)
	assert.Equal(t, 1, stats.Cancelled)
	assert.Equal(t, 50.0, stats.AttendanceRate)
	assert.Equal(t, []string{"Đơn vị", "Tuổi", "Áo"}, stats.FieldNames)

	require.Len(t, stats.Participants, 3)
	assert.Equal(t, "Phòng A", stats.Participants[0].CustomFields["Đơn vị"])
	assert.Equal(t, "L", stats.Participants[0].CustomFields["Áo"])
	assert.Equal(t, domain.SourceGuest, stats.Participants[2].Source)
	assert.Equal(t, "30", stats.Participants[2].CustomFields["Tuổi"])
}

func TestStatisticsService_Statistics_AttendanceRate(t *testing.T) {
	svc, d := newStatisticsService(t, &fakeRenderer{})

	regs := make([]*domain.EventRegistration, 0, 10)
	for i := range 10 {
		status := domain.RegistrationStatusRegistered
		if i < 4 {
			status = domain.RegistrationStatusCheckedIn
		}
		regs = append(regs, &domain.EventRegistration{ID: fmt.Sprintf("r%d", i), Status: status})
	}

	d.events.EXPECT().GetByID(mock.Anything, "e1").Return(&domain.Event{ID: "e1"}, nil)
	d.regs.EXPECT().ListByEvent(mock.Anything, "e1").Return(regs, nil)
	d.guests.EXPECT().ListApprovedByEvent(mock.Anything, "e1").Return(nil, nil)
	d.fields.EXPECT().ListByEvent(mock.Anything, "e1").Return(nil, nil)
	d.values.EXPECT().ListByRegistrations(mock.Anything, mock.Anything).Return(nil, nil)

	stats, err := svc.Statistics(context.Background(), "e1")

	require.NoError(t, err)
	assert.Equal(t, 10, stats.Registered)
	assert.Equal(t, 4, stats.CheckedIn)
	assert.Equal(t, 6, stats.NotCheckedIn)
	assert.Equal(t, 40.0, stats.AttendanceRate)
}

func TestStatisticsService_Statistics_Empty(t *testing.T) {
	svc, d := newStatisticsService(t, &fakeRenderer{})

	d.events.EXPECT().GetByID(mock.Anything, "e1").Return(&domain.Event{ID: "e1"}, nil)
	d.regs.EXPECT().ListByEvent(mock.Anything, "e1").Return(nil, nil)
	d.guests.EXPECT().ListApprovedByEvent(mock.Anything, "e1").Return(nil, nil)
	d.fields.EXPECT().ListByEvent(mock.Anything, "e1").Return(nil, nil)

	stats, err := svc.Statistics(context.Background(), "e1")

	require.NoError(t, err)
	assert.Zero(t, stats.Registered)
	assert.Zero(t, stats.AttendanceRate)
	assert.Empty(t, stats.Participants)
}

func TestStatisticsService_Statistics_EventNotFound(t *testing.T) {
	svc, d := newStatisticsService(t, &fakeRenderer{})

	d.events.EXPECT().GetByID(mock.Anything, "e1").Return(nil, domain.ErrEventNotFound)

	_, err := svc.Statistics(context.Background(), "e1")

	assert.ErrorIs(t, err, domain.ErrEventNotFound)
}

func TestStatisticsService_Export(t *testing.T) {
	renderer := &fakeRenderer{}
	svc, d := newStatisticsService(t, renderer)

	d.events.EXPECT().GetByID(mock.Anything, "e1").Return(&domain.Event{ID: "e1"}, nil)
	d.regs.EXPECT().ListByEvent(mock.Anything, "e1").Return(nil, nil)
	d.guests.EXPECT().ListApprovedByEvent(mock.Anything, "e1").Return(nil, nil)
	d.fields.EXPECT().ListByEvent(mock.Anything, "e1").Return(nil, nil)

	data, name, err := svc.Export(context.Background(), "e1")

	require.NoError(t, err)
	assert.Equal(t, []byte("xlsx"), data)
	assert.Equal(t, "thong-ke-su-kien-e1.xlsx", name)
	require.NotNil(t, renderer.got)
	assert.Equal(t, "e1", renderer.got.Event.ID)
}

func TestStatisticsService_Export_RenderError(t *testing.T) {
	svc, d := newStatisticsService(t, &fakeRenderer{err: errors.New("boom")})

	d.events.EXPECT().GetByID(mock.Anything, "e1").Return(&domain.Event{ID: "e1"}, nil)
	d.regs.EXPECT().ListByEvent(mock.Anything, "e1").Return(nil, nil)
	d.guests.EXPECT().ListApprovedByEvent(mock.Anything, "e1").Return(nil, nil)
	d.fields.EXPECT().ListByEvent(mock.Anything, "e1").Return(nil, nil)

	_, _, err := svc.Export(context.Background(), "e1")

	assert.Error(t, err)
}

func TestOrderedFieldNames(t *testing.T) {
	tests := []struct {
		name   string
		fields []*domain.EventCustomField
		seen   []string
		want   []string
	}{
		{
			name: "sort order then stored names",
			fields: []*domain.EventCustomField{
				{ID: "f2", FieldName: "Tuổi", SortOrder: 2},
				{ID: "f1", FieldName: "Đơn vị", SortOrder: 1},
			},
			seen: []string{"Tuổi", "Size áo", "Ca"},
			want: []string{"Đơn vị", "Tuổi", "Ca", "Size áo"},
		},
		{
			name: "shared live name is one column",
			fields: []*domain.EventCustomField{
				{ID: "f1", FieldName: "Email", SortOrder: 1},
				{ID: "f2", FieldName: "Email", SortOrder: 2},
			},
			seen: []string{"Email"},
			want: []string{"Email"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seen := make(map[string]struct{}, len(tt.seen))
			for _, n := range tt.seen {
				seen[n] = struct{}{}
			}
			assert.Equal(t, tt.want, orderedFieldNames(tt.fields, seen))
		})
	}
}

package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/tienchinh21/bkasim-cms/internal/domain"
	"github.com/tienchinh21/bkasim-cms/internal/service/ports/mocks"
)

var superAdmin = domain.Caller{UserZaloID: "root", Role: domain.RoleSuperAdmin}

func TestTemplateService_Save(t *testing.T) {
	repo := mocks.NewMockTemplateRepo(t)
	activity := mocks.NewMockActivityRecorder(t)
	svc := NewTemplateService(repo, activity)

	repo.EXPECT().Upsert(mock.Anything, mock.MatchedBy(func(tpl *domain.NotificationTemplate) bool {
		return tpl.Channel == domain.ChannelZNS && tpl.ParamMapping["ma_checkin"] == domain.SourceCheckInCode
	})).Return(nil)
	activity.EXPECT().Record(mock.Anything, superAdmin, domain.ActionUpdate, domain.EntityTemplate, string(domain.TriggerGuestApproved)).Return()

	tpl, err := svc.Save(context.Background(), superAdmin, domain.TemplateInput{
		TriggerKey: domain.TriggerGuestApproved,
		TemplateID: "123456",
		ParamMapping: map[string]string{
			"ma_checkin":  domain.SourceCheckInCode,
			"ten_khach":   domain.SourceGuestName,
			"ten_su_kien": domain.SourceEventTitle,
		},
		IsEnabled: true,
	})

	require.NoError(t, err)
	assert.True(t, tpl.IsEnabled)
	assert.Len(t, tpl.ParamMapping, 3)
}

func TestTemplateService_Save_AdminForbidden(t *testing.T) {
	svc := NewTemplateService(mocks.NewMockTemplateRepo(t), mocks.NewMockActivityRecorder(t))

	_, err := svc.Save(context.Background(), admin, domain.TemplateInput{})

	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestTemplateService_Save_UnknownTrigger(t *testing.T) {
	svc := NewTemplateService(mocks.NewMockTemplateRepo(t), mocks.NewMockActivityRecorder(t))

	_, err := svc.Save(context.Background(), superAdmin, domain.TemplateInput{
		TriggerKey:   "birthday",
		TemplateID:   "1",
		ParamMapping: map[string]string{"a": domain.SourceGuestName},
	})

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestTemplateService_Save_UnknownSources(t *testing.T) {
	svc := NewTemplateService(mocks.NewMockTemplateRepo(t), mocks.NewMockActivityRecorder(t))

	_, err := svc.Save(context.Background(), superAdmin, domain.TemplateInput{
		TriggerKey:   domain.TriggerRegistrationCreated,
		TemplateID:   "1",
		ParamMapping: map[string]string{"a": "user.salary", "b": "event.secret"},
	})

	require.ErrorIs(t, err, domain.ErrValidation)
	assert.Equal(t, "nguồn dữ liệu không hỗ trợ: event.secret, user.salary", domain.ValidationDetail(err))
}

package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/tienchinh21/bkasim-cms/internal/domain"
	"github.com/tienchinh21/bkasim-cms/internal/service/ports/mocks"
)

func TestActivityService_Record(t *testing.T) {
	repo := mocks.NewMockActivityRepo(t)
	svc := NewActivityService(repo, newTestLogger(t))

	repo.EXPECT().Create(mock.Anything, mock.MatchedBy(func(l *domain.ActivityLog) bool {
		return l.Actor == admin.UserZaloID && l.Action == domain.ActionApprove && l.EntityID == "g1"
	})).Return(nil)

	svc.Record(context.Background(), admin, domain.ActionApprove, domain.EntityGuestList, "g1")
}

func TestActivityService_Record_SwallowsError(t *testing.T) {
	repo := mocks.NewMockActivityRepo(t)
	svc := NewActivityService(repo, newTestLogger(t))

	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(errors.New("db error"))

	assert.NotPanics(t, func() {
		svc.Record(context.Background(), domain.Caller{}, domain.ActionDelete, domain.EntityEvent, "e1")
	})
}

func TestActivityService_List(t *testing.T) {
	repo := mocks.NewMockActivityRepo(t)
	svc := NewActivityService(repo, newTestLogger(t))

	repo.EXPECT().List(mock.Anything, 0, defaultPageLength).Return([]*domain.ActivityLog{{ID: "l1"}}, 7, nil)

	page, err := svc.List(context.Background(), 2, -5, 0)

	require.NoError(t, err)
	assert.Equal(t, 2, page.Draw)
	assert.Equal(t, 7, page.RecordsTotal)
	assert.Len(t, page.Data, 1)
}

func TestSponsorService_Create_InvalidWebsite(t *testing.T) {
	svc := NewSponsorService(mocks.NewMockSponsorRepo(t), mocks.NewMockActivityRecorder(t))

	_, err := svc.Create(context.Background(), admin, domain.SponsorInput{SponsorName: "ACME", Website: "not a url"})

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestSponsorService_Delete(t *testing.T) {
	repo := mocks.NewMockSponsorRepo(t)
	activity := mocks.NewMockActivityRecorder(t)
	svc := NewSponsorService(repo, activity)

	repo.EXPECT().Delete(mock.Anything, "s1").Return(nil)
	activity.EXPECT().Record(mock.Anything, admin, domain.ActionDelete, domain.EntitySponsor, "s1").Return()

	require.NoError(t, svc.Delete(context.Background(), admin, "s1"))
}

package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/tienchinh21/bkasim-cms/internal/domain"
	"github.com/tienchinh21/bkasim-cms/internal/service/ports/mocks"
)

type giftDeps struct {
	gifts    *mocks.MockGiftRepo
	events   *mocks.MockEventRepo
	storage  *mocks.MockImageStorage
	activity *mocks.MockActivityRecorder
}

func newGiftService(t *testing.T) (*GiftService, giftDeps) {
	d := giftDeps{
		gifts:    mocks.NewMockGiftRepo(t),
		events:   mocks.NewMockEventRepo(t),
		storage:  mocks.NewMockImageStorage(t),
		activity: mocks.NewMockActivityRecorder(t),
	}
	return NewGiftService(d.gifts, d.events, d.storage, d.activity, newTestLogger(t)), d
}

func upload(name string) domain.Upload {
	return domain.Upload{Filename: name, Size: 3, Content: strings.NewReader("img")}
}

func TestGiftService_Create_SavesImages(t *testing.T) {
	svc, d := newGiftService(t)

	d.events.EXPECT().GetByID(mock.Anything, "e1").Return(&domain.Event{ID: "e1"}, nil)
	d.storage.EXPECT().Save(mock.Anything, mock.Anything).Return("/uploads/a.png", nil).Once()
	d.storage.EXPECT().Save(mock.Anything, mock.Anything).Return("/uploads/b.png", nil).Once()
	d.gifts.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	d.activity.EXPECT().Record(mock.Anything, admin, domain.ActionCreate, domain.EntityGift, mock.Anything).Return()

	gift, err := svc.Create(context.Background(), admin, domain.GiftInput{
		EventID: "e1", GiftName: "Áo thun", Quantity: 20,
		Images: []domain.Upload{upload("a.png"), upload("b.png")},
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"/uploads/a.png", "/uploads/b.png"}, gift.Images)
	assert.Equal(t, 20, gift.Quantity)
}

func TestGiftService_Create_NegativeQuantity(t *testing.T) {
	svc, _ := newGiftService(t)

	_, err := svc.Create(context.Background(), admin, domain.GiftInput{EventID: "e1", GiftName: "Áo", Quantity: -1})

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestGiftService_Create_TooManyImages(t *testing.T) {
	svc, _ := newGiftService(t)

	images := make([]domain.Upload, maxGiftImages+1)
	_, err := svc.Create(context.Background(), admin, domain.GiftInput{EventID: "e1", GiftName: "Áo", Images: images})

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestGiftService_Create_RollsBackImagesOnInsertError(t *testing.T) {
	svc, d := newGiftService(t)

	d.events.EXPECT().GetByID(mock.Anything, "e1").Return(&domain.Event{ID: "e1"}, nil)
	d.storage.EXPECT().Save(mock.Anything, mock.Anything).Return("/uploads/a.png", nil)
	d.gifts.EXPECT().Create(mock.Anything, mock.Anything).Return(errors.New("db error"))
	d.storage.EXPECT().Delete(mock.Anything, "/uploads/a.png").Return(nil)

	_, err := svc.Create(context.Background(), admin, domain.GiftInput{
		EventID: "e1", GiftName: "Áo", Images: []domain.Upload{upload("a.png")},
	})

	assert.Error(t, err)
}

func TestGiftService_Update_ReplacesImages(t *testing.T) {
	svc, d := newGiftService(t)

	d.gifts.EXPECT().GetByID(mock.Anything, "gift1").Return(&domain.EventGift{
		ID: "gift1", EventID: "e1", GiftName: "Áo", Images: []string{"/uploads/old1.png", "/uploads/old2.png"},
	}, nil)
	d.storage.EXPECT().Save(mock.Anything, mock.Anything).Return("/uploads/new.png", nil)
	d.gifts.EXPECT().Update(mock.Anything, mock.MatchedBy(func(g *domain.EventGift) bool {
		return len(g.Images) == 2 && g.Images[0] == "/uploads/old2.png" && g.Images[1] == "/uploads/new.png"
	})).Return(nil)
	d.storage.EXPECT().Delete(mock.Anything, "/uploads/old1.png").Return(nil)
	d.activity.EXPECT().Record(mock.Anything, admin, domain.ActionUpdate, domain.EntityGift, "gift1").Return()

	gift, err := svc.Update(context.Background(), admin, "gift1", domain.GiftInput{
		GiftName:   "Áo mới",
		Quantity:   5,
		KeepImages: []string{"/uploads/old2.png", "/uploads/foreign.png"},
		Images:     []domain.Upload{upload("new.png")},
	})

	require.NoError(t, err)
	assert.Equal(t, "Áo mới", gift.GiftName)
	assert.Equal(t, "e1", gift.EventID)
}

func TestGiftService_Delete_RemovesFiles(t *testing.T) {
	svc, d := newGiftService(t)

	d.gifts.EXPECT().GetByID(mock.Anything, "gift1").Return(&domain.EventGift{ID: "gift1", Images: []string{"/uploads/a.png"}}, nil)
	d.gifts.EXPECT().Delete(mock.Anything, "gift1").Return(nil)
	d.storage.EXPECT().Delete(mock.Anything, "/uploads/a.png").Return(errors.New("gone"))
	d.activity.EXPECT().Record(mock.Anything, admin, domain.ActionDelete, domain.EntityGift, "gift1").Return()

	require.NoError(t, svc.Delete(context.Background(), admin, "gift1"))
}

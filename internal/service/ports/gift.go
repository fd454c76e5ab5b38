package ports

import (
	"context"

	"github.com/tienchinh21/bkasim-cms/internal/domain"
)

type GiftRepo interface {
	Create(ctx context.Context, g *domain.EventGift) error
	Update(ctx context.Context, g *domain.EventGift) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*domain.EventGift, error)
	ListByEvent(ctx context.Context, eventID string) ([]*domain.EventGift, error)
}

type ImageStorage interface {
	Save(ctx context.Context, upload domain.Upload) (string, error)
	Delete(ctx context.Context, url string) error
}

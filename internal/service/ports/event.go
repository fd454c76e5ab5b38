package ports

import (
	"context"

	"github.com/tienchinh21/bkasim-cms/internal/domain"
)

type EventRepo interface {
	Create(ctx context.Context, e *domain.Event) error
	Update(ctx context.Context, e *domain.Event) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*domain.Event, error)
	List(ctx context.Context, f domain.EventFilter) ([]*domain.Event, domain.EventCounts, error)
}

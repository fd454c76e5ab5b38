package ports

import (
	"context"

	"github.com/tienchinh21/bkasim-cms/internal/domain"
)

type ActivityRepo interface {
	Create(ctx context.Context, l *domain.ActivityLog) error
	List(ctx context.Context, offset, limit int) ([]*domain.ActivityLog, int, error)
}

type ActivityRecorder interface {
	Record(ctx context.Context, caller domain.Caller, action, entityType, entityID string)
}

package ports

import (
	"context"

	"github.com/tienchinh21/bkasim-cms/internal/domain"
)

type TemplateRepo interface {
	Upsert(ctx context.Context, t *domain.NotificationTemplate) error
	List(ctx context.Context) ([]*domain.NotificationTemplate, error)
	GetByTrigger(ctx context.Context, key domain.TriggerKey) (*domain.NotificationTemplate, error)
}

type GuestNotifier interface {
	NotifyGuestAwaitingApproval(ctx context.Context, event *domain.Event, guest *domain.GuestList)
	NotifyGuestApproved(ctx context.Context, event *domain.Event, guest *domain.GuestList)
	NotifyRegistrationCreated(ctx context.Context, event *domain.Event, reg *domain.EventRegistration)
}

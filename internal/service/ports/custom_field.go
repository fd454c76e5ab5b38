package ports

import (
	"context"

	"github.com/tienchinh21/bkasim-cms/internal/domain"
)

type CustomFieldRepo interface {
	Create(ctx context.Context, f *domain.EventCustomField) error
	Update(ctx context.Context, f *domain.EventCustomField) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*domain.EventCustomField, error)
	ListByEvent(ctx context.Context, eventID string) ([]*domain.EventCustomField, error)
}

type CustomFieldValueRepo interface {
	CreateBatch(ctx context.Context, values []*domain.EventCustomFieldValue) error
	ListByGuests(ctx context.Context, guestListIDs []string) ([]*domain.EventCustomFieldValue, error)
	ListByRegistrations(ctx context.Context, registrationIDs []string) ([]*domain.EventCustomFieldValue, error)
}

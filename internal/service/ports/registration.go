package ports

import (
	"context"
	"time"

	"github.com/tienchinh21/bkasim-cms/internal/domain"
)

type RegistrationRepo interface {
	Create(ctx context.Context, r *domain.EventRegistration) error
	GetByID(ctx context.Context, id string) (*domain.EventRegistration, error)
	GetActiveByEventAndUser(ctx context.Context, eventID, userZaloID string) (*domain.EventRegistration, error)
	GetByCheckInCode(ctx context.Context, code string) (*domain.EventRegistration, error)
	ListByEvent(ctx context.Context, eventID string) ([]*domain.EventRegistration, error)
	CountActiveByEvent(ctx context.Context, eventID string) (int, error)
	UpdateStatus(ctx context.Context, id string, status domain.RegistrationStatus, checkInTime *time.Time) error
}

// CheckInCodeRepo looks a code up across registrations and guest lists.
type CheckInCodeRepo interface {
	CheckInCodeExists(ctx context.Context, code string) (bool, error)
}

package ports

import (
	"context"
	"time"

	"github.com/tienchinh21/bkasim-cms/internal/domain"
)

type GuestRepo interface {
	CreateBatch(ctx context.Context, eg *domain.EventGuest, guests []*domain.GuestList) error
	GetEventGuest(ctx context.Context, id string) (*domain.EventGuest, error)
	GetByID(ctx context.Context, id string) (*domain.GuestList, error)
	GetByCheckInCode(ctx context.Context, code string) (*domain.GuestList, error)
	FindByEventAndPhone(ctx context.Context, eventID, phone string) (*domain.GuestList, error)
	List(ctx context.Context, f domain.GuestFilter) ([]*domain.GuestList, error)
	ListByEventGuest(ctx context.Context, eventGuestID string) ([]*domain.GuestList, error)
	ListApprovedByEvent(ctx context.Context, eventID string) ([]*domain.GuestList, error)
	CountApprovedByEvent(ctx context.Context, eventID string) (int, error)
	UpdateStatus(ctx context.Context, id string, status domain.GuestStatus, checkInCode string) error
	CheckIn(ctx context.Context, id string, at time.Time) error
	CancelStale(ctx context.Context, endedBefore time.Time) ([]*domain.GuestList, error)
}

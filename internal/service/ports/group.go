package ports

import (
	"context"

	"github.com/tienchinh21/bkasim-cms/internal/domain"
)

type GroupRepo interface {
	Create(ctx context.Context, g *domain.Group) error
	Update(ctx context.Context, g *domain.Group) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*domain.Group, error)
	List(ctx context.Context) ([]*domain.Group, error)
}

type MembershipRepo interface {
	Upsert(ctx context.Context, m *domain.Membership) error
	GetByUserZaloID(ctx context.Context, userZaloID string) (*domain.Membership, error)
}

type MembershipGroupRepo interface {
	Create(ctx context.Context, mg *domain.MembershipGroup) error
	GetByID(ctx context.Context, id string) (*domain.MembershipGroup, error)
	ListPending(ctx context.Context) ([]*domain.PendingMember, error)
	UpdateStatus(ctx context.Context, id string, status domain.MembershipStatus) error
}

type SponsorRepo interface {
	Create(ctx context.Context, s *domain.Sponsor) error
	List(ctx context.Context) ([]*domain.Sponsor, error)
	Delete(ctx context.Context, id string) error
}

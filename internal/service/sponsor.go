package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/tienchinh21/bkasim-cms/internal/domain"
	"github.com/tienchinh21/bkasim-cms/internal/service/ports"
	"github.com/tienchinh21/bkasim-cms/pkg/validator"
)

type SponsorService struct {
	repo     ports.SponsorRepo
	activity ports.ActivityRecorder
}

func NewSponsorService(repo ports.SponsorRepo, activity ports.ActivityRecorder) *SponsorService {
	return &SponsorService{repo: repo, activity: activity}
}

func (s *SponsorService) List(ctx context.Context) ([]*domain.Sponsor, error) {
	return s.repo.List(ctx)
}

func (s *SponsorService) Create(ctx context.Context, caller domain.Caller, input domain.SponsorInput) (*domain.Sponsor, error) {
	if err := validator.Validate(ctx, input); err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrValidation, err.Error())
	}

	sponsor := &domain.Sponsor{
		ID:          uuid.New().String(),
		SponsorName: input.SponsorName,
		Logo:        input.Logo,
		Website:     input.Website,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.repo.Create(ctx, sponsor); err != nil {
		return nil, fmt.Errorf("create sponsor: %w", err)
	}
	s.activity.Record(ctx, caller, domain.ActionCreate, domain.EntitySponsor, sponsor.ID)
	return sponsor, nil
}

func (s *SponsorService) Delete(ctx context.Context, caller domain.Caller, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete sponsor: %w", err)
	}
	s.activity.Record(ctx, caller, domain.ActionDelete, domain.EntitySponsor, id)
	return nil
}

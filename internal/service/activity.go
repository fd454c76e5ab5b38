package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/tienchinh21/bkasim-cms/internal/domain"
	"github.com/tienchinh21/bkasim-cms/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

type ActivityService struct {
	repo   ports.ActivityRepo
	logger logger.Logger
}

func NewActivityService(repo ports.ActivityRepo, logger logger.Logger) *ActivityService {
	return &ActivityService{repo: repo, logger: logger}
}

// Record appends an audit entry. Failures are logged and swallowed so the
// mutation that triggered them still succeeds.
func (s *ActivityService) Record(ctx context.Context, caller domain.Caller, action, entityType, entityID string) {
	entry := &domain.ActivityLog{
		ID:         uuid.New().String(),
		Actor:      caller.Actor(),
		Action:     action,
		EntityType: entityType,
		EntityID:   entityID,
		CreatedAt:  time.Now().UTC(),
	}
	if err := s.repo.Create(ctx, entry); err != nil {
		s.logger.LogAttrs(ctx, logger.ErrorLevel, "failed to record activity",
			logger.String("action", action),
			logger.String("entity_type", entityType),
			logger.String("entity_id", entityID),
			logger.String("error", err.Error()),
		)
	}
}

func (s *ActivityService) List(ctx context.Context, draw, start, length int) (*domain.ActivityPage, error) {
	if length <= 0 {
		length = defaultPageLength
	}
	length = min(length, maxPageLength)
	start = max(start, 0)

	logs, total, err := s.repo.List(ctx, start, length)
	if err != nil {
		return nil, fmt.Errorf("list activity logs: %w", err)
	}
	return &domain.ActivityPage{
		Draw:            draw,
		RecordsTotal:    total,
		RecordsFiltered: total,
		Data:            logs,
	}, nil
}

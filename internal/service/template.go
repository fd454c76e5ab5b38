package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/tienchinh21/bkasim-cms/internal/domain"
	"github.com/tienchinh21/bkasim-cms/internal/service/ports"
	"github.com/tienchinh21/bkasim-cms/pkg/validator"
)

type TemplateService struct {
	repo     ports.TemplateRepo
	activity ports.ActivityRecorder
}

func NewTemplateService(repo ports.TemplateRepo, activity ports.ActivityRecorder) *TemplateService {
	return &TemplateService{repo: repo, activity: activity}
}

func (s *TemplateService) List(ctx context.Context) ([]*domain.NotificationTemplate, error) {
	return s.repo.List(ctx)
}

// Save creates or replaces the template bound to input.TriggerKey.
func (s *TemplateService) Save(ctx context.Context, caller domain.Caller, input domain.TemplateInput) (*domain.NotificationTemplate, error) {
	if !caller.IsSuperAdmin() {
		return nil, domain.ErrForbidden
	}
	if err := validator.Validate(ctx, input); err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrValidation, err.Error())
	}
	if !input.TriggerKey.Valid() {
		return nil, fmt.Errorf("%w: trigger %q không hợp lệ", domain.ErrValidation, input.TriggerKey)
	}

	var unknown []string
	mapping := make(map[string]string, len(input.ParamMapping))
	for param, source := range input.ParamMapping {
		param = strings.TrimSpace(param)
		if param == "" {
			return nil, fmt.Errorf("%w: tên tham số trống", domain.ErrValidation)
		}
		if _, ok := domain.TemplateSources[source]; !ok {
			unknown = append(unknown, source)
			continue
		}
		mapping[param] = source
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return nil, fmt.Errorf("%w: nguồn dữ liệu không hỗ trợ: %s", domain.ErrValidation, strings.Join(unknown, ", "))
	}

	tpl := &domain.NotificationTemplate{
		ID:           uuid.New().String(),
		TriggerKey:   input.TriggerKey,
		Channel:      domain.ChannelZNS,
		TemplateID:   strings.TrimSpace(input.TemplateID),
		ParamMapping: mapping,
		IsEnabled:    input.IsEnabled,
		UpdatedAt:    time.Now().UTC(),
	}
	if err := s.repo.Upsert(ctx, tpl); err != nil {
		return nil, fmt.Errorf("save template: %w", err)
	}
	s.activity.Record(ctx, caller, domain.ActionUpdate, domain.EntityTemplate, string(tpl.TriggerKey))
	return tpl, nil
}

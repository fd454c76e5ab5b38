package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/tienchinh21/bkasim-cms/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

const templateColumns = `id, trigger_key, channel, template_id, param_mapping, is_enabled, updated_at`

type TemplateRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewTemplateRepo(db *dbpg.DB) *TemplateRepository {
	return &TemplateRepository{db: db, strategy: defaultStrategy()}
}

func scanTemplate(s rowScanner) (*domain.NotificationTemplate, error) {
	var t domain.NotificationTemplate
	var mapping []byte
	if err := s.Scan(&t.ID, &t.TriggerKey, &t.Channel, &t.TemplateID, &mapping, &t.IsEnabled, &t.UpdatedAt); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(mapping, &t.ParamMapping); err != nil {
		return nil, fmt.Errorf("decode param mapping: %w", err)
	}
	return &t, nil
}

// Upsert replaces the template for t.TriggerKey; the stored id wins on conflict.
func (r *TemplateRepository) Upsert(ctx context.Context, t *domain.NotificationTemplate) error {
	mapping, err := json.Marshal(t.ParamMapping)
	if err != nil {
		return fmt.Errorf("encode param mapping: %w", err)
	}

	query := `INSERT INTO notification_templates (id, trigger_key, channel, template_id, param_mapping, is_enabled, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7)
			  ON CONFLICT (trigger_key) DO UPDATE
			  SET channel = EXCLUDED.channel, template_id = EXCLUDED.template_id,
			      param_mapping = EXCLUDED.param_mapping, is_enabled = EXCLUDED.is_enabled,
			      updated_at = EXCLUDED.updated_at
			  RETURNING id`
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query,
		t.ID, t.TriggerKey, t.Channel, t.TemplateID, mapping, t.IsEnabled, t.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert template: %w", err)
	}
	if err = row.Scan(&t.ID); err != nil {
		return fmt.Errorf("scan template id: %w", err)
	}
	return nil
}

func (r *TemplateRepository) List(ctx context.Context) ([]*domain.NotificationTemplate, error) {
	query := `SELECT ` + templateColumns + ` FROM notification_templates ORDER BY trigger_key`
	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query)
	if err != nil {
		return nil, fmt.Errorf("list templates: %w", err)
	}
	defer rows.Close()

	var res []*domain.NotificationTemplate
	for rows.Next() {
		t, err := scanTemplate(rows)
		if err != nil {
			return nil, fmt.Errorf("scan template: %w", err)
		}
		res = append(res, t)
	}

	return res, rows.Err()
}

func (r *TemplateRepository) GetByTrigger(ctx context.Context, key domain.TriggerKey) (*domain.NotificationTemplate, error) {
	query := `SELECT ` + templateColumns + ` FROM notification_templates WHERE trigger_key = $1`
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, key)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrTemplateNotFound
		}
		return nil, fmt.Errorf("get template: %w", err)
	}

	t, err := scanTemplate(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrTemplateNotFound
		}
		return nil, fmt.Errorf("scan template: %w", err)
	}
	return t, nil
}

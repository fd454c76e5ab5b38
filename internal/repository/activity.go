package repository

import (
	"context"
	"fmt"

	"github.com/tienchinh21/bkasim-cms/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type ActivityRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewActivityRepo(db *dbpg.DB) *ActivityRepository {
	return &ActivityRepository{db: db, strategy: defaultStrategy()}
}

func (r *ActivityRepository) Create(ctx context.Context, l *domain.ActivityLog) error {
	query := `INSERT INTO activity_logs (id, actor, action, entity_type, entity_id, created_at)
			  VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.db.ExecWithRetry(ctx, r.strategy, query, l.ID, l.Actor, l.Action, l.EntityType, l.EntityID, l.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert activity log: %w", err)
	}
	return nil
}

// List returns one page newest first together with the total row count.
func (r *ActivityRepository) List(ctx context.Context, offset, limit int) ([]*domain.ActivityLog, int, error) {
	var total int
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, `SELECT COUNT(*) FROM activity_logs`)
	if err != nil {
		return nil, 0, fmt.Errorf("count activity logs: %w", err)
	}
	if err = row.Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("scan activity count: %w", err)
	}

	query := `SELECT id, actor, action, entity_type, entity_id, created_at
			  FROM activity_logs
			  ORDER BY created_at DESC
			  LIMIT $1 OFFSET $2`
	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list activity logs: %w", err)
	}
	defer rows.Close()

	var res []*domain.ActivityLog
	for rows.Next() {
		var l domain.ActivityLog
		if err = rows.Scan(&l.ID, &l.Actor, &l.Action, &l.EntityType, &l.EntityID, &l.CreatedAt); err != nil {
			return nil, 0, fmt.Errorf("scan activity log: %w", err)
		}
		res = append(res, &l)
	}

	return res, total, rows.Err()
}

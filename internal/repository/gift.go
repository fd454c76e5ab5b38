package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"
	"github.com/tienchinh21/bkasim-cms/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

const giftColumns = `id, event_id, gift_name, quantity, images, created_at, updated_at`

type GiftRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewGiftRepo(db *dbpg.DB) *GiftRepository {
	return &GiftRepository{db: db, strategy: defaultStrategy()}
}

func scanGift(s rowScanner) (*domain.EventGift, error) {
	var g domain.EventGift
	var images pq.StringArray
	if err := s.Scan(&g.ID, &g.EventID, &g.GiftName, &g.Quantity, &images, &g.CreatedAt, &g.UpdatedAt); err != nil {
		return nil, err
	}
	g.Images = images
	return &g, nil
}

func (r *GiftRepository) Create(ctx context.Context, g *domain.EventGift) error {
	query := `INSERT INTO event_gifts (id, event_id, gift_name, quantity, images, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.db.ExecWithRetry(ctx, r.strategy, query,
		g.ID, g.EventID, g.GiftName, g.Quantity, pq.Array(g.Images), g.CreatedAt, g.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert gift: %w", err)
	}
	return nil
}

func (r *GiftRepository) Update(ctx context.Context, g *domain.EventGift) error {
	query := `UPDATE event_gifts SET gift_name = $2, quantity = $3, images = $4, updated_at = $5 WHERE id = $1`
	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, g.ID, g.GiftName, g.Quantity, pq.Array(g.Images), g.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update gift: %w", err)
	}
	return checkAffected(res, domain.ErrGiftNotFound)
}

func (r *GiftRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecWithRetry(ctx, r.strategy, `DELETE FROM event_gifts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete gift: %w", err)
	}
	return checkAffected(res, domain.ErrGiftNotFound)
}

func (r *GiftRepository) GetByID(ctx context.Context, id string) (*domain.EventGift, error) {
	query := `SELECT ` + giftColumns + ` FROM event_gifts WHERE id = $1`
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrGiftNotFound
		}
		return nil, fmt.Errorf("get gift: %w", err)
	}

	g, err := scanGift(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrGiftNotFound
		}
		return nil, fmt.Errorf("scan gift: %w", err)
	}
	return g, nil
}

func (r *GiftRepository) ListByEvent(ctx context.Context, eventID string) ([]*domain.EventGift, error) {
	query := `SELECT ` + giftColumns + ` FROM event_gifts WHERE event_id = $1 ORDER BY created_at`
	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, eventID)
	if err != nil {
		return nil, fmt.Errorf("list gifts: %w", err)
	}
	defer rows.Close()

	var res []*domain.EventGift
	for rows.Next() {
		g, err := scanGift(rows)
		if err != nil {
			return nil, fmt.Errorf("scan gift: %w", err)
		}
		res = append(res, g)
	}

	return res, rows.Err()
}

package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/tienchinh21/bkasim-cms/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

const guestColumns = `gl.id, gl.event_guest_id, eg.event_id, gl.guest_name, gl.guest_phone, gl.guest_email,
	gl.status, COALESCE(gl.check_in_code, ''), gl.check_in_status, gl.check_in_time,
	gl.created_at, gl.updated_at`

const guestFrom = ` FROM guest_lists gl JOIN event_guests eg ON eg.id = gl.event_guest_id`

type GuestRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewGuestRepo(db *dbpg.DB) *GuestRepository {
	return &GuestRepository{db: db, strategy: defaultStrategy()}
}

func scanGuest(s rowScanner) (*domain.GuestList, error) {
	var g domain.GuestList
	var checkInTime sql.NullTime
	if err := s.Scan(
		&g.ID, &g.EventGuestID, &g.EventID, &g.GuestName, &g.GuestPhone, &g.GuestEmail,
		&g.Status, &g.CheckInCode, &g.CheckInStatus, &checkInTime,
		&g.CreatedAt, &g.UpdatedAt,
	); err != nil {
		return nil, err
	}
	g.CheckInTime = timePtr(checkInTime)
	return &g, nil
}

// CreateBatch stores the container and its rows in one transaction.
func (r *GuestRepository) CreateBatch(ctx context.Context, eg *domain.EventGuest, guests []*domain.GuestList) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO event_guests (id, event_id, user_zalo_id, note, created_at) VALUES ($1, $2, $3, $4, $5)`,
		eg.ID, eg.EventID, eg.UserZaloID, eg.Note, eg.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert event guest: %w", err)
	}

	query := `INSERT INTO guest_lists (id, event_guest_id, guest_name, guest_phone, guest_email,
			  	status, check_in_code, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	for _, g := range guests {
		if _, err = tx.ExecContext(ctx, query,
			g.ID, eg.ID, g.GuestName, g.GuestPhone, g.GuestEmail,
			g.Status, nullString(g.CheckInCode), g.CreatedAt, g.UpdatedAt,
		); err != nil {
			return fmt.Errorf("insert guest: %w", err)
		}
	}

	return tx.Commit()
}

func (r *GuestRepository) GetEventGuest(ctx context.Context, id string) (*domain.EventGuest, error) {
	query := `SELECT id, event_id, user_zalo_id, note, created_at FROM event_guests WHERE id = $1`
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrEventGuestNotFound
		}
		return nil, fmt.Errorf("get event guest: %w", err)
	}

	var eg domain.EventGuest
	if err = row.Scan(&eg.ID, &eg.EventID, &eg.UserZaloID, &eg.Note, &eg.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrEventGuestNotFound
		}
		return nil, fmt.Errorf("scan event guest: %w", err)
	}
	return &eg, nil
}

func (r *GuestRepository) getOne(ctx context.Context, cond string, args ...any) (*domain.GuestList, error) {
	query := `SELECT ` + guestColumns + guestFrom + ` WHERE ` + cond + ` LIMIT 1`
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, args...)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrGuestNotFound
		}
		return nil, fmt.Errorf("get guest: %w", err)
	}

	g, err := scanGuest(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrGuestNotFound
		}
		return nil, fmt.Errorf("scan guest: %w", err)
	}
	return g, nil
}

func (r *GuestRepository) GetByID(ctx context.Context, id string) (*domain.GuestList, error) {
	return r.getOne(ctx, "gl.id = $1", id)
}

func (r *GuestRepository) GetByCheckInCode(ctx context.Context, code string) (*domain.GuestList, error) {
	return r.getOne(ctx, "gl.check_in_code = $1", code)
}

// FindByEventAndPhone prefers rows still tied to the event over closed ones.
func (r *GuestRepository) FindByEventAndPhone(ctx context.Context, eventID, phone string) (*domain.GuestList, error) {
	return r.getOne(ctx,
		`eg.event_id = $1 AND gl.guest_phone = $2
		 ORDER BY (gl.status IN ($3, $4)) DESC, gl.created_at DESC`,
		eventID, phone, domain.GuestStatusApproved, domain.GuestStatusRegistered,
	)
}

func (r *GuestRepository) list(ctx context.Context, w *where, order string) ([]*domain.GuestList, error) {
	query := `SELECT ` + guestColumns + guestFrom + w.sql() + ` ORDER BY ` + order
	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, w.args...)
	if err != nil {
		return nil, fmt.Errorf("list guests: %w", err)
	}
	defer rows.Close()

	var res []*domain.GuestList
	for rows.Next() {
		g, err := scanGuest(rows)
		if err != nil {
			return nil, fmt.Errorf("scan guest: %w", err)
		}
		res = append(res, g)
	}

	return res, rows.Err()
}

func (r *GuestRepository) List(ctx context.Context, f domain.GuestFilter) ([]*domain.GuestList, error) {
	var w where
	if f.EventID != "" {
		w.add("eg.event_id = ?", f.EventID)
	}
	if f.Status != nil {
		w.add("gl.status = ?", *f.Status)
	}
	if f.Keyword != "" {
		kw := w.arg("%" + f.Keyword + "%")
		w.add("(gl.guest_name ILIKE " + kw + " OR gl.guest_phone ILIKE " + kw + ")")
	}
	return r.list(ctx, &w, "gl.created_at DESC")
}

func (r *GuestRepository) ListByEventGuest(ctx context.Context, eventGuestID string) ([]*domain.GuestList, error) {
	var w where
	w.add("gl.event_guest_id = ?", eventGuestID)
	return r.list(ctx, &w, "gl.created_at")
}

func (r *GuestRepository) ListApprovedByEvent(ctx context.Context, eventID string) ([]*domain.GuestList, error) {
	var w where
	w.add("eg.event_id = ?", eventID)
	w.add("gl.status = ?", domain.GuestStatusApproved)
	return r.list(ctx, &w, "gl.created_at")
}

func (r *GuestRepository) CountApprovedByEvent(ctx context.Context, eventID string) (int, error) {
	query := `SELECT COUNT(*)` + guestFrom + ` WHERE eg.event_id = $1 AND gl.status = $2`
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, eventID, domain.GuestStatusApproved)
	if err != nil {
		return 0, fmt.Errorf("count approved guests: %w", err)
	}

	var n int
	if err = row.Scan(&n); err != nil {
		return 0, fmt.Errorf("scan guest count: %w", err)
	}
	return n, nil
}

// UpdateStatus sets the status and replaces the check-in code; an empty code clears it.
func (r *GuestRepository) UpdateStatus(ctx context.Context, id string, status domain.GuestStatus, checkInCode string) error {
	query := `UPDATE guest_lists SET status = $2, check_in_code = $3, updated_at = now() WHERE id = $1`
	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, id, status, nullString(checkInCode))
	if err != nil {
		return fmt.Errorf("update guest status: %w", err)
	}
	return checkAffected(res, domain.ErrGuestNotFound)
}

// CancelStale cancels entries still awaiting a decision for events that ended before t.
func (r *GuestRepository) CancelStale(ctx context.Context, t time.Time) ([]*domain.GuestList, error) {
	query := `UPDATE guest_lists gl
			  SET status = $1, updated_at = now()
			  FROM event_guests eg JOIN events e ON e.id = eg.event_id
			  WHERE eg.id = gl.event_guest_id AND gl.status IN ($2, $3) AND e.end_time < $4
			  RETURNING ` + guestColumns
	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query,
		domain.GuestStatusCancelled, domain.GuestStatusPending, domain.GuestStatusRegistered, t,
	)
	if err != nil {
		return nil, fmt.Errorf("cancel stale guests: %w", err)
	}
	defer rows.Close()

	var res []*domain.GuestList
	for rows.Next() {
		g, err := scanGuest(rows)
		if err != nil {
			return nil, fmt.Errorf("scan guest: %w", err)
		}
		res = append(res, g)
	}

	return res, rows.Err()
}

func (r *GuestRepository) CheckIn(ctx context.Context, id string, at time.Time) error {
	query := `UPDATE guest_lists
			  SET check_in_status = TRUE, check_in_time = $2, updated_at = now()
			  WHERE id = $1 AND NOT check_in_status`
	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, id, at)
	if err != nil {
		return fmt.Errorf("check in guest: %w", err)
	}
	return checkAffected(res, domain.ErrAlreadyCheckedIn)
}

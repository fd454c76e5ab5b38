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

const eventColumns = `e.id, COALESCE(e.group_id::text, ''), e.title, e.content, e.address,
	e.start_time, e.end_time, e.type, e.join_count, e.need_approval, e.is_active,
	e.banner, e.images, e.created_at, e.updated_at`

type EventRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewEventRepo(db *dbpg.DB) *EventRepository {
	return &EventRepository{db: db, strategy: defaultStrategy()}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEvent(s rowScanner) (*domain.Event, error) {
	var e domain.Event
	var images pq.StringArray
	if err := s.Scan(
		&e.ID, &e.GroupID, &e.Title, &e.Content, &e.Address,
		&e.StartTime, &e.EndTime, &e.Type, &e.JoinCount, &e.NeedApproval, &e.IsActive,
		&e.Banner, &images, &e.CreatedAt, &e.UpdatedAt,
	); err != nil {
		return nil, err
	}
	e.Images = images
	return &e, nil
}

func (r *EventRepository) Create(ctx context.Context, e *domain.Event) error {
	query := `INSERT INTO events (id, group_id, title, content, address, start_time, end_time,
			  	type, join_count, need_approval, is_active, banner, images, created_at, updated_at)
			  VALUES ($1, NULLIF($2, '')::uuid, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		e.ID, e.GroupID, e.Title, e.Content, e.Address, e.StartTime, e.EndTime,
		e.Type, e.JoinCount, e.NeedApproval, e.IsActive, e.Banner, pq.Array(e.Images),
		e.CreatedAt, e.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert event: %w", err)
	}
	return nil
}

func (r *EventRepository) Update(ctx context.Context, e *domain.Event) error {
	query := `UPDATE events
			  SET group_id = NULLIF($2, '')::uuid, title = $3, content = $4, address = $5,
			      start_time = $6, end_time = $7, type = $8, join_count = $9,
			      need_approval = $10, is_active = $11, banner = $12, images = $13, updated_at = $14
			  WHERE id = $1`
	res, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		e.ID, e.GroupID, e.Title, e.Content, e.Address, e.StartTime, e.EndTime,
		e.Type, e.JoinCount, e.NeedApproval, e.IsActive, e.Banner, pq.Array(e.Images),
		e.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update event: %w", err)
	}
	return checkAffected(res, domain.ErrEventNotFound)
}

func (r *EventRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecWithRetry(ctx, r.strategy, `DELETE FROM events WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete event: %w", err)
	}
	return checkAffected(res, domain.ErrEventNotFound)
}

func (r *EventRepository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events e WHERE e.id = $1`
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrEventNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}

	e, err := scanEvent(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrEventNotFound
		}
		return nil, fmt.Errorf("scan event: %w", err)
	}
	return e, nil
}

// List applies the visibility scope and query filters, returning one page with
// the visible and filtered totals.
func (r *EventRepository) List(ctx context.Context, f domain.EventFilter) ([]*domain.Event, domain.EventCounts, error) {
	var w where
	applyScope(&w, f)
	scopeConds, scopeArgs := len(w.conds), len(w.args)
	scopeSQL := w.sql()

	applyFilters(&w, f)

	var counts domain.EventCounts
	total, err := r.count(ctx, scopeSQL, w.args[:scopeArgs])
	if err != nil {
		return nil, counts, err
	}
	counts.Total, counts.Filtered = total, total
	if len(w.conds) > scopeConds {
		if counts.Filtered, err = r.count(ctx, w.sql(), w.args); err != nil {
			return nil, counts, err
		}
	}

	args := append(w.args, f.Length, f.Start)
	query := fmt.Sprintf(`SELECT %s FROM events e%s
			  ORDER BY e.start_time DESC
			  LIMIT $%d OFFSET $%d`, eventColumns, w.sql(), len(args)-1, len(args))

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, args...)
	if err != nil {
		return nil, counts, fmt.Errorf("list events: %w", err)
	}
	defer rows.Close()

	var res []*domain.Event
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, counts, fmt.Errorf("scan event: %w", err)
		}
		res = append(res, e)
	}

	return res, counts, rows.Err()
}

func applyFilters(w *where, f domain.EventFilter) {
	if f.Keyword != "" {
		w.add("e.title ILIKE ?", "%"+f.Keyword+"%")
	}
	if f.GroupID != "" {
		w.add("e.group_id::text = ?", f.GroupID)
	}
	if f.Type != 0 {
		w.add("e.type = ?", f.Type)
	}
	switch f.Status {
	case domain.EventStatusUpcoming:
		w.add("e.start_time > ?", f.Now)
	case domain.EventStatusOngoing:
		now := w.arg(f.Now)
		w.add("e.start_time <= " + now + " AND e.end_time >= " + now)
	case domain.EventStatusEnded:
		w.add("e.end_time < ?", f.Now)
	}
	if f.From != nil {
		w.add("e.start_time >= ?", *f.From)
	}
	if f.To != nil {
		w.add("e.start_time <= ?", *f.To)
	}
}

func (r *EventRepository) count(ctx context.Context, cond string, args []any) (int, error) {
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, `SELECT COUNT(*) FROM events e`+cond, args...)
	if err != nil {
		return 0, fmt.Errorf("count events: %w", err)
	}
	var n int
	if err = row.Scan(&n); err != nil {
		return 0, fmt.Errorf("scan event count: %w", err)
	}
	return n, nil
}

// applyScope limits internal events to callers tied to them through an approved
// group membership, an active registration or an engaged guest entry.
func applyScope(w *where, f domain.EventFilter) {
	if f.Scope != domain.ScopeAll {
		w.add("e.is_active")
	}

	if f.Scope == domain.ScopeMember || f.OnlyJoined {
		user := w.arg(f.UserZaloID)

		if f.Scope == domain.ScopeMember {
			w.add(fmt.Sprintf(`(e.type = %d
				OR EXISTS (SELECT 1 FROM membership_groups mg
					WHERE mg.group_id = e.group_id AND mg.user_zalo_id = %s AND mg.status = %d)
				OR EXISTS (SELECT 1 FROM event_registrations er
					WHERE er.event_id = e.id AND er.user_zalo_id = %s AND er.status <> %d)
				OR EXISTS (SELECT 1 FROM guest_lists gl JOIN event_guests eg ON eg.id = gl.event_guest_id
					WHERE eg.event_id = e.id AND eg.user_zalo_id = %s AND gl.status IN (%d, %d)))`,
				domain.EventTypePublic,
				user, domain.MembershipStatusApproved,
				user, domain.RegistrationStatusCancelled,
				user, domain.GuestStatusApproved, domain.GuestStatusRegistered,
			))
		}

		if f.OnlyJoined {
			w.add(fmt.Sprintf(`EXISTS (SELECT 1 FROM guest_lists gl JOIN event_guests eg ON eg.id = gl.event_guest_id
				WHERE eg.event_id = e.id AND eg.user_zalo_id = %s AND gl.status = %d)`,
				user, domain.GuestStatusApproved,
			))
		}
		return
	}

	if f.Scope == domain.ScopePublic {
		w.add(fmt.Sprintf("e.type = %d", domain.EventTypePublic))
	}
}

package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/tienchinh21/bkasim-cms/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type GroupRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewGroupRepo(db *dbpg.DB) *GroupRepository {
	return &GroupRepository{db: db, strategy: defaultStrategy()}
}

func (r *GroupRepository) Create(ctx context.Context, g *domain.Group) error {
	query := `INSERT INTO groups (id, group_name, description, logo, is_active, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.db.ExecWithRetry(ctx, r.strategy, query,
		g.ID, g.GroupName, g.Description, g.Logo, g.IsActive, g.CreatedAt, g.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert group: %w", err)
	}
	return nil
}

func (r *GroupRepository) Update(ctx context.Context, g *domain.Group) error {
	query := `UPDATE groups SET group_name = $2, description = $3, logo = $4, is_active = $5, updated_at = $6
			  WHERE id = $1`
	res, err := r.db.ExecWithRetry(ctx, r.strategy, query,
		g.ID, g.GroupName, g.Description, g.Logo, g.IsActive, g.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update group: %w", err)
	}
	return checkAffected(res, domain.ErrGroupNotFound)
}

func (r *GroupRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecWithRetry(ctx, r.strategy, `DELETE FROM groups WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete group: %w", err)
	}
	return checkAffected(res, domain.ErrGroupNotFound)
}

func (r *GroupRepository) GetByID(ctx context.Context, id string) (*domain.Group, error) {
	query := `SELECT id, group_name, description, logo, is_active, created_at, updated_at
			  FROM groups WHERE id = $1`
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrGroupNotFound
		}
		return nil, fmt.Errorf("get group: %w", err)
	}

	var g domain.Group
	if err = row.Scan(&g.ID, &g.GroupName, &g.Description, &g.Logo, &g.IsActive, &g.CreatedAt, &g.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrGroupNotFound
		}
		return nil, fmt.Errorf("scan group: %w", err)
	}
	return &g, nil
}

func (r *GroupRepository) List(ctx context.Context) ([]*domain.Group, error) {
	query := `SELECT id, group_name, description, logo, is_active, created_at, updated_at
			  FROM groups ORDER BY group_name`
	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query)
	if err != nil {
		return nil, fmt.Errorf("list groups: %w", err)
	}
	defer rows.Close()

	var res []*domain.Group
	for rows.Next() {
		var g domain.Group
		if err = rows.Scan(&g.ID, &g.GroupName, &g.Description, &g.Logo, &g.IsActive, &g.CreatedAt, &g.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan group: %w", err)
		}
		res = append(res, &g)
	}

	return res, rows.Err()
}

type MembershipRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewMembershipRepo(db *dbpg.DB) *MembershipRepository {
	return &MembershipRepository{db: db, strategy: defaultStrategy()}
}

// Upsert keys the profile on user_zalo_id and keeps the original id and created_at.
func (r *MembershipRepository) Upsert(ctx context.Context, m *domain.Membership) error {
	query := `INSERT INTO memberships (id, user_zalo_id, fullname, phone_number, email, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7)
			  ON CONFLICT (user_zalo_id) DO UPDATE
			  SET fullname = EXCLUDED.fullname, phone_number = EXCLUDED.phone_number,
			      email = EXCLUDED.email, updated_at = EXCLUDED.updated_at
			  RETURNING id, created_at`
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query,
		m.ID, m.UserZaloID, m.Fullname, m.PhoneNumber, m.Email, m.CreatedAt, m.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert membership: %w", err)
	}
	if err = row.Scan(&m.ID, &m.CreatedAt); err != nil {
		return fmt.Errorf("scan membership: %w", err)
	}
	return nil
}

func (r *MembershipRepository) GetByUserZaloID(ctx context.Context, userZaloID string) (*domain.Membership, error) {
	query := `SELECT id, user_zalo_id, fullname, phone_number, email, created_at, updated_at
			  FROM memberships WHERE user_zalo_id = $1`
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, userZaloID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrMembershipNotFound
		}
		return nil, fmt.Errorf("get membership: %w", err)
	}

	var m domain.Membership
	if err = row.Scan(&m.ID, &m.UserZaloID, &m.Fullname, &m.PhoneNumber, &m.Email, &m.CreatedAt, &m.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrMembershipNotFound
		}
		return nil, fmt.Errorf("scan membership: %w", err)
	}
	return &m, nil
}

type MembershipGroupRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewMembershipGroupRepo(db *dbpg.DB) *MembershipGroupRepository {
	return &MembershipGroupRepository{db: db, strategy: defaultStrategy()}
}

func (r *MembershipGroupRepository) Create(ctx context.Context, mg *domain.MembershipGroup) error {
	query := `INSERT INTO membership_groups (id, user_zalo_id, group_id, status, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.db.ExecWithRetry(ctx, r.strategy, query,
		mg.ID, mg.UserZaloID, mg.GroupID, mg.Status, mg.CreatedAt, mg.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err, activeMembershipIndex) {
			return domain.ErrAlreadyMember
		}
		return fmt.Errorf("insert membership group: %w", err)
	}
	return nil
}

func (r *MembershipGroupRepository) GetByID(ctx context.Context, id string) (*domain.MembershipGroup, error) {
	query := `SELECT id, user_zalo_id, group_id, status, created_at, updated_at
			  FROM membership_groups WHERE id = $1`
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrMembershipGroupNotFound
		}
		return nil, fmt.Errorf("get membership group: %w", err)
	}

	var mg domain.MembershipGroup
	if err = row.Scan(&mg.ID, &mg.UserZaloID, &mg.GroupID, &mg.Status, &mg.CreatedAt, &mg.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrMembershipGroupNotFound
		}
		return nil, fmt.Errorf("scan membership group: %w", err)
	}
	return &mg, nil
}

func (r *MembershipGroupRepository) ListPending(ctx context.Context) ([]*domain.PendingMember, error) {
	query := `SELECT mg.id, mg.user_zalo_id, mg.group_id, mg.status, mg.created_at, mg.updated_at,
			  	g.group_name, COALESCE(m.fullname, ''), COALESCE(m.phone_number, '')
			  FROM membership_groups mg
			  JOIN groups g ON g.id = mg.group_id
			  LEFT JOIN memberships m ON m.user_zalo_id = mg.user_zalo_id
			  WHERE mg.status = $1
			  ORDER BY mg.created_at`
	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, domain.MembershipStatusPending)
	if err != nil {
		return nil, fmt.Errorf("list pending members: %w", err)
	}
	defer rows.Close()

	var res []*domain.PendingMember
	for rows.Next() {
		var p domain.PendingMember
		if err = rows.Scan(
			&p.ID, &p.UserZaloID, &p.GroupID, &p.Status, &p.CreatedAt, &p.UpdatedAt,
			&p.GroupName, &p.Fullname, &p.PhoneNumber,
		); err != nil {
			return nil, fmt.Errorf("scan pending member: %w", err)
		}
		res = append(res, &p)
	}

	return res, rows.Err()
}

func (r *MembershipGroupRepository) UpdateStatus(ctx context.Context, id string, status domain.MembershipStatus) error {
	query := `UPDATE membership_groups SET status = $2, updated_at = now() WHERE id = $1`
	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, id, status)
	if err != nil {
		return fmt.Errorf("update membership group: %w", err)
	}
	return checkAffected(res, domain.ErrMembershipGroupNotFound)
}

type SponsorRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewSponsorRepo(db *dbpg.DB) *SponsorRepository {
	return &SponsorRepository{db: db, strategy: defaultStrategy()}
}

func (r *SponsorRepository) Create(ctx context.Context, s *domain.Sponsor) error {
	query := `INSERT INTO sponsors (id, sponsor_name, logo, website, created_at) VALUES ($1, $2, $3, $4, $5)`
	if _, err := r.db.ExecWithRetry(ctx, r.strategy, query, s.ID, s.SponsorName, s.Logo, s.Website, s.CreatedAt); err != nil {
		return fmt.Errorf("insert sponsor: %w", err)
	}
	return nil
}

func (r *SponsorRepository) List(ctx context.Context) ([]*domain.Sponsor, error) {
	query := `SELECT id, sponsor_name, logo, website, created_at FROM sponsors ORDER BY created_at`
	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query)
	if err != nil {
		return nil, fmt.Errorf("list sponsors: %w", err)
	}
	defer rows.Close()

	var res []*domain.Sponsor
	for rows.Next() {
		var s domain.Sponsor
		if err = rows.Scan(&s.ID, &s.SponsorName, &s.Logo, &s.Website, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan sponsor: %w", err)
		}
		res = append(res, &s)
	}

	return res, rows.Err()
}

func (r *SponsorRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecWithRetry(ctx, r.strategy, `DELETE FROM sponsors WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete sponsor: %w", err)
	}
	return checkAffected(res, domain.ErrSponsorNotFound)
}

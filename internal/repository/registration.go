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

const registrationColumns = `id, event_id, user_zalo_id, name, phone_number, email,
	COALESCE(check_in_code, ''), status, check_in_time, created_at, updated_at`

type RegistrationRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewRegistrationRepo(db *dbpg.DB) *RegistrationRepository {
	return &RegistrationRepository{db: db, strategy: defaultStrategy()}
}

func scanRegistration(s rowScanner) (*domain.EventRegistration, error) {
	var reg domain.EventRegistration
	var checkInTime sql.NullTime
	if err := s.Scan(
		&reg.ID, &reg.EventID, &reg.UserZaloID, &reg.Name, &reg.PhoneNumber, &reg.Email,
		&reg.CheckInCode, &reg.Status, &checkInTime, &reg.CreatedAt, &reg.UpdatedAt,
	); err != nil {
		return nil, err
	}
	reg.CheckInTime = timePtr(checkInTime)
	return &reg, nil
}

func (r *RegistrationRepository) Create(ctx context.Context, reg *domain.EventRegistration) error {
	query := `INSERT INTO event_registrations (id, event_id, user_zalo_id, name, phone_number, email,
			  	check_in_code, status, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		reg.ID, reg.EventID, reg.UserZaloID, reg.Name, reg.PhoneNumber, reg.Email,
		nullString(reg.CheckInCode), reg.Status, reg.CreatedAt, reg.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err, activeRegistrationIndex) {
			return domain.ErrAlreadyRegistered
		}
		return fmt.Errorf("insert registration: %w", err)
	}
	return nil
}

func (r *RegistrationRepository) getOne(ctx context.Context, query string, args ...any) (*domain.EventRegistration, error) {
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, args...)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrRegistrationNotFound
		}
		return nil, fmt.Errorf("get registration: %w", err)
	}

	reg, err := scanRegistration(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrRegistrationNotFound
		}
		return nil, fmt.Errorf("scan registration: %w", err)
	}
	return reg, nil
}

func (r *RegistrationRepository) GetByID(ctx context.Context, id string) (*domain.EventRegistration, error) {
	query := `SELECT ` + registrationColumns + ` FROM event_registrations WHERE id = $1`
	return r.getOne(ctx, query, id)
}

func (r *RegistrationRepository) GetActiveByEventAndUser(ctx context.Context, eventID, userZaloID string) (*domain.EventRegistration, error) {
	query := `SELECT ` + registrationColumns + `
			  FROM event_registrations
			  WHERE event_id = $1 AND user_zalo_id = $2 AND status = ANY($3)
			  ORDER BY created_at DESC
			  LIMIT 1`
	return r.getOne(ctx, query, eventID, userZaloID, int64s(domain.ActiveRegistrationStatuses))
}

func (r *RegistrationRepository) GetByCheckInCode(ctx context.Context, code string) (*domain.EventRegistration, error) {
	query := `SELECT ` + registrationColumns + ` FROM event_registrations WHERE check_in_code = $1`
	return r.getOne(ctx, query, code)
}

func (r *RegistrationRepository) ListByEvent(ctx context.Context, eventID string) ([]*domain.EventRegistration, error) {
	query := `SELECT ` + registrationColumns + `
			  FROM event_registrations
			  WHERE event_id = $1
			  ORDER BY created_at`
	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, eventID)
	if err != nil {
		return nil, fmt.Errorf("list registrations by event: %w", err)
	}
	defer rows.Close()

	var res []*domain.EventRegistration
	for rows.Next() {
		reg, err := scanRegistration(rows)
		if err != nil {
			return nil, fmt.Errorf("scan registration: %w", err)
		}
		res = append(res, reg)
	}

	return res, rows.Err()
}

func (r *RegistrationRepository) CountActiveByEvent(ctx context.Context, eventID string) (int, error) {
	query := `SELECT COUNT(*) FROM event_registrations WHERE event_id = $1 AND status = ANY($2)`
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, eventID, int64s(domain.ActiveRegistrationStatuses))
	if err != nil {
		return 0, fmt.Errorf("count registrations: %w", err)
	}

	var n int
	if err = row.Scan(&n); err != nil {
		return 0, fmt.Errorf("scan registration count: %w", err)
	}
	return n, nil
}

func (r *RegistrationRepository) UpdateStatus(ctx context.Context, id string, status domain.RegistrationStatus, checkInTime *time.Time) error {
	query := `UPDATE event_registrations
			  SET status = $2, check_in_time = COALESCE($3, check_in_time), updated_at = now()
			  WHERE id = $1`
	var at sql.NullTime
	if checkInTime != nil {
		at = sql.NullTime{Time: *checkInTime, Valid: true}
	}

	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, id, status, at)
	if err != nil {
		return fmt.Errorf("update registration status: %w", err)
	}
	return checkAffected(res, domain.ErrRegistrationNotFound)
}

// CheckInCodeExists looks the code up in both participant tables.
func (r *RegistrationRepository) CheckInCodeExists(ctx context.Context, code string) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM event_registrations WHERE check_in_code = $1)
			      OR EXISTS (SELECT 1 FROM guest_lists WHERE check_in_code = $1)`
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, code)
	if err != nil {
		return false, fmt.Errorf("check code: %w", err)
	}

	var exists bool
	if err = row.Scan(&exists); err != nil {
		return false, fmt.Errorf("scan code check: %w", err)
	}
	return exists, nil
}

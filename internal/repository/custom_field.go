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

const customFieldColumns = `id, event_id, field_name, field_type, is_required, sort_order, created_at`

type CustomFieldRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewCustomFieldRepo(db *dbpg.DB) *CustomFieldRepository {
	return &CustomFieldRepository{db: db, strategy: defaultStrategy()}
}

func scanCustomField(s rowScanner) (*domain.EventCustomField, error) {
	var f domain.EventCustomField
	if err := s.Scan(&f.ID, &f.EventID, &f.FieldName, &f.FieldType, &f.IsRequired, &f.SortOrder, &f.CreatedAt); err != nil {
		return nil, err
	}
	return &f, nil
}

func (r *CustomFieldRepository) Create(ctx context.Context, f *domain.EventCustomField) error {
	query := `INSERT INTO event_custom_fields (id, event_id, field_name, field_type, is_required, sort_order, created_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.db.ExecWithRetry(ctx, r.strategy, query,
		f.ID, f.EventID, f.FieldName, f.FieldType, f.IsRequired, f.SortOrder, f.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert custom field: %w", err)
	}
	return nil
}

func (r *CustomFieldRepository) Update(ctx context.Context, f *domain.EventCustomField) error {
	query := `UPDATE event_custom_fields
			  SET field_name = $2, field_type = $3, is_required = $4, sort_order = $5
			  WHERE id = $1`
	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, f.ID, f.FieldName, f.FieldType, f.IsRequired, f.SortOrder)
	if err != nil {
		return fmt.Errorf("update custom field: %w", err)
	}
	return checkAffected(res, domain.ErrCustomFieldNotFound)
}

func (r *CustomFieldRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecWithRetry(ctx, r.strategy, `DELETE FROM event_custom_fields WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete custom field: %w", err)
	}
	return checkAffected(res, domain.ErrCustomFieldNotFound)
}

func (r *CustomFieldRepository) GetByID(ctx context.Context, id string) (*domain.EventCustomField, error) {
	query := `SELECT ` + customFieldColumns + ` FROM event_custom_fields WHERE id = $1`
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrCustomFieldNotFound
		}
		return nil, fmt.Errorf("get custom field: %w", err)
	}

	f, err := scanCustomField(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrCustomFieldNotFound
		}
		return nil, fmt.Errorf("scan custom field: %w", err)
	}
	return f, nil
}

func (r *CustomFieldRepository) ListByEvent(ctx context.Context, eventID string) ([]*domain.EventCustomField, error) {
	query := `SELECT ` + customFieldColumns + `
			  FROM event_custom_fields
			  WHERE event_id = $1
			  ORDER BY sort_order, created_at`
	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, eventID)
	if err != nil {
		return nil, fmt.Errorf("list custom fields: %w", err)
	}
	defer rows.Close()

	var res []*domain.EventCustomField
	for rows.Next() {
		f, err := scanCustomField(rows)
		if err != nil {
			return nil, fmt.Errorf("scan custom field: %w", err)
		}
		res = append(res, f)
	}

	return res, rows.Err()
}

type CustomFieldValueRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewCustomFieldValueRepo(db *dbpg.DB) *CustomFieldValueRepository {
	return &CustomFieldValueRepository{db: db, strategy: defaultStrategy()}
}

func (r *CustomFieldValueRepository) CreateBatch(ctx context.Context, values []*domain.EventCustomFieldValue) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	query := `INSERT INTO event_custom_field_values (id, event_custom_field_id, field_name,
			  	event_registration_id, guest_list_id, field_value, created_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7)`
	for _, v := range values {
		if _, err = tx.ExecContext(ctx, query,
			v.ID, v.EventCustomFieldID, v.FieldName,
			v.EventRegistrationID, v.GuestListID, v.FieldValue, v.CreatedAt,
		); err != nil {
			return fmt.Errorf("insert custom field value: %w", err)
		}
	}

	return tx.Commit()
}

func (r *CustomFieldValueRepository) listBy(ctx context.Context, column string, ids []string) ([]*domain.EventCustomFieldValue, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	query := `SELECT id, event_custom_field_id, field_name, event_registration_id, guest_list_id,
			  	field_value, created_at
			  FROM event_custom_field_values
			  WHERE ` + column + `::text = ANY($1)
			  ORDER BY created_at`
	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, pq.Array(ids))
	if err != nil {
		return nil, fmt.Errorf("list custom field values: %w", err)
	}
	defer rows.Close()

	var res []*domain.EventCustomFieldValue
	for rows.Next() {
		var v domain.EventCustomFieldValue
		var regID, guestID sql.NullString
		if err = rows.Scan(&v.ID, &v.EventCustomFieldID, &v.FieldName, &regID, &guestID, &v.FieldValue, &v.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan custom field value: %w", err)
		}
		if regID.Valid {
			v.EventRegistrationID = &regID.String
		}
		if guestID.Valid {
			v.GuestListID = &guestID.String
		}
		res = append(res, &v)
	}

	return res, rows.Err()
}

func (r *CustomFieldValueRepository) ListByGuests(ctx context.Context, guestListIDs []string) ([]*domain.EventCustomFieldValue, error) {
	return r.listBy(ctx, "guest_list_id", guestListIDs)
}

func (r *CustomFieldValueRepository) ListByRegistrations(ctx context.Context, registrationIDs []string) ([]*domain.EventCustomFieldValue, error) {
	return r.listBy(ctx, "event_registration_id", registrationIDs)
}

package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/lib/pq"
	"github.com/wb-go/wbf/retry"
)

const (
	uniqueViolation = "23505"

	activeRegistrationIndex = "uq_event_registrations_active"
	activeMembershipIndex   = "uq_membership_groups_active"
)

func defaultStrategy() retry.Strategy {
	return retry.Strategy{
		Attempts: 3,
		Delay:    500 * time.Millisecond,
		Backoff:  2,
	}
}

// isUniqueViolation reports whether err breaks the named unique constraint.
func isUniqueViolation(err error, constraint string) bool {
	var pgErr *pq.Error
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation && pgErr.Constraint == constraint
}

// checkAffected maps an UPDATE or DELETE that touched no row to notFound.
func checkAffected(res sql.Result, notFound error) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return notFound
	}
	return nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func timePtr(t sql.NullTime) *time.Time {
	if !t.Valid {
		return nil
	}
	v := t.Time
	return &v
}

// where accumulates AND-ed conditions. Each "?" in a condition is replaced by
// the next positional placeholder.
type where struct {
	conds []string
	args  []any
}

func (w *where) add(cond string, args ...any) {
	for _, a := range args {
		w.args = append(w.args, a)
		cond = strings.Replace(cond, "?", fmt.Sprintf("$%d", len(w.args)), 1)
	}
	w.conds = append(w.conds, cond)
}

// arg registers a value and returns its placeholder for reuse in several conditions.
func (w *where) arg(v any) string {
	w.args = append(w.args, v)
	return fmt.Sprintf("$%d", len(w.args))
}

func (w *where) sql() string {
	if len(w.conds) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(w.conds, " AND ")
}

func int64s[T ~int8](vs []T) pq.Int64Array {
	out := make(pq.Int64Array, 0, len(vs))
	for _, v := range vs {
		out = append(out, int64(v))
	}
	return out
}

package repository

import (
	"errors"
	"fmt"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestIsUniqueViolation(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{
			name: "named index",
			err:  &pq.Error{Code: uniqueViolation, Constraint: activeRegistrationIndex},
			want: true,
		},
		{
			name: "wrapped by retry",
			err:  fmt.Errorf("exec: %w", &pq.Error{Code: uniqueViolation, Constraint: activeRegistrationIndex}),
			want: true,
		},
		{
			name: "other unique key",
			err:  &pq.Error{Code: uniqueViolation, Constraint: "event_registrations_check_in_code_key"},
		},
		{
			name: "other postgres error",
			err:  &pq.Error{Code: "23503", Constraint: activeRegistrationIndex},
		},
		{
			name: "not a postgres error",
			err:  errors.New("connection reset"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isUniqueViolation(tt.err, activeRegistrationIndex))
		})
	}
}

func TestWhere_NumbersPlaceholders(t *testing.T) {
	var w where
	w.add("a = ? AND b = ?", 1, 2)
	p := w.arg("x")
	w.add("c = " + p + " OR d = " + p)

	assert.Equal(t, " WHERE a = $1 AND b = $2 AND c = $3 OR d = $3", w.sql())
	assert.Equal(t, []any{1, 2, "x"}, w.args)
}

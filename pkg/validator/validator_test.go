package validator

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type kind int

func (k kind) Valid() bool { return k == 1 || k == 2 }

type sample struct {
	Name  string    `validate:"required,max=5"`
	Phone string    `validate:"required,phone_vn"`
	Kind  kind      `validate:"event_type"`
	Start time.Time `validate:"required"`
	End   time.Time `validate:"required,gtfield=Start"`
}

func validSample() sample {
	now := time.Now()
	return sample{Name: "abc", Phone: "0912345678", Kind: 1, Start: now, End: now.Add(time.Hour)}
}

func TestValidate_OK(t *testing.T) {
	require.NoError(t, Validate(context.Background(), validSample()))
}

func TestValidate_Errors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(s *sample)
		want   string
	}{
		{"missing name", func(s *sample) { s.Name = "" }, ErrFieldRequired + ": Name"},
		{"long name", func(s *sample) { s.Name = "abcdefgh" }, ErrFieldExceedsMaxLen + ": Name"},
		{"bad phone", func(s *sample) { s.Phone = "12345" }, ErrInvalidFormat + ": Phone"},
		{"bad kind", func(s *sample) { s.Kind = 7 }, ErrInvalidFormat + ": Kind"},
		{"end before start", func(s *sample) { s.End = s.Start.Add(-time.Hour) }, ErrFieldBelowMinVal + ": End"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := validSample()
			tt.mutate(&s)
			err := Validate(context.Background(), s)
			require.Error(t, err)
			assert.Equal(t, tt.want, err.Error())
		})
	}
}

func TestIsPhone(t *testing.T) {
	assert.True(t, IsPhone("0912345678"))
	assert.True(t, IsPhone("84912345678"))
	assert.True(t, IsPhone("+84 912 345 678"))
	assert.False(t, IsPhone("0212345678"))
	assert.False(t, IsPhone("091234"))
}

func TestVar(t *testing.T) {
	assert.NoError(t, Var(context.Background(), "a@b.vn", "email"))
	assert.EqualError(t, Var(context.Background(), "nope", "email"), ErrInvalidFormat)
	assert.NoError(t, Var(context.Background(), "2025-01-31", "datetime=2006-01-02"))
}

package scheduler

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/tienchinh21/bkasim-cms/internal/domain"
	"github.com/tienchinh21/bkasim-cms/internal/scheduler/mocks"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func TestScheduler_SweepsOnStart(t *testing.T) {
	expirer := mocks.NewMockGuestExpirer(t)
	s := New(expirer, time.Hour, newTestLogger(t))

	expired := []*domain.GuestList{
		{ID: "g1", EventID: "e1", GuestPhone: "0901234567", Status: domain.GuestStatusCancelled},
	}
	expirer.EXPECT().ExpireStale(mock.Anything).Return(expired, nil).Once()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	s.Start(ctx)
}

func TestScheduler_SweepHasDeadline(t *testing.T) {
	expirer := mocks.NewMockGuestExpirer(t)
	s := New(expirer, time.Hour, newTestLogger(t))

	expirer.EXPECT().ExpireStale(mock.MatchedBy(func(ctx context.Context) bool {
		deadline, ok := ctx.Deadline()
		return ok && time.Until(deadline) <= maxSweepTime
	})).Return(nil, nil).Once()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	s.Start(ctx)
}

func TestScheduler_ErrorDoesNotStopLoop(t *testing.T) {
	expirer := mocks.NewMockGuestExpirer(t)
	s := New(expirer, 30*time.Millisecond, newTestLogger(t))

	expirer.EXPECT().ExpireStale(mock.Anything).Return(nil, errors.New("db error"))

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	s.Start(ctx)

	assert.GreaterOrEqual(t, len(expirer.Calls), 2)
}

func TestScheduler_StopsOnContextCancel(t *testing.T) {
	expirer := mocks.NewMockGuestExpirer(t)
	s := New(expirer, time.Second, newTestLogger(t))

	expirer.EXPECT().ExpireStale(mock.Anything).Return(nil, nil).Maybe()

	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		s.Start(ctx)
		close(done)
	}()

	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("scheduler did not stop on context cancel")
	}
}

func TestScheduler_SkipsSweepWhenCancelled(t *testing.T) {
	expirer := mocks.NewMockGuestExpirer(t)
	s := New(expirer, time.Second, newTestLogger(t))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s.Start(ctx)

	expirer.AssertNotCalled(t, "ExpireStale", mock.Anything)
}

func TestScheduler_MultipleTicks(t *testing.T) {
	expirer := mocks.NewMockGuestExpirer(t)
	s := New(expirer, 30*time.Millisecond, newTestLogger(t))

	expirer.EXPECT().ExpireStale(mock.Anything).Return(nil, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 110*time.Millisecond)
	defer cancel()

	s.Start(ctx)

	assert.GreaterOrEqual(t, len(expirer.Calls), 3)
}

func TestScheduler_SweepErrorLogsStructuredFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scheduler.log")
	log, err := logger.InitLogger("slog", "test", "test",
		logger.WithLevel(logger.ErrorLevel),
		logger.WithRotation(path, 1, 1, 1),
	)
	require.NoError(t, err)

	expirer := mocks.NewMockGuestExpirer(t)
	s := New(expirer, time.Hour, log)
	expirer.EXPECT().ExpireStale(mock.Anything).Return(nil, errors.New("db down")).Once()

	s.sweep(context.Background())

	out, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(out), `"msg":"failed to expire stale guests"`)
	assert.Contains(t, string(out), `"error":"db down"`)
	assert.Contains(t, string(out), `"took":`)
	assert.NotContains(t, string(out), "BADKEY")
}

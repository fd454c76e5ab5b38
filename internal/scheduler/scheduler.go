package scheduler

import (
	"context"
	"time"

	"github.com/tienchinh21/bkasim-cms/internal/domain"
	"github.com/wb-go/wbf/logger"
)

// maxSweepTime bounds a single sweep so a stuck query cannot overlap the next tick.
const maxSweepTime = 30 * time.Second

type guestExpirer interface {
	ExpireStale(ctx context.Context) ([]*domain.GuestList, error)
}

// Scheduler cancels guest entries that were still awaiting a decision when
// their event ended. It sweeps once on start, then every interval.
type Scheduler struct {
	guests   guestExpirer
	interval time.Duration
	logger   logger.Logger
}

func New(guests guestExpirer, interval time.Duration, logger logger.Logger) *Scheduler {
	return &Scheduler{guests: guests, interval: interval, logger: logger}
}

func (s *Scheduler) Start(ctx context.Context) {
	s.logger.LogAttrs(ctx, logger.InfoLevel, "guest expiry started", logger.Duration("interval", s.interval))

	s.sweep(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("guest expiry stopped")
			return
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

func (s *Scheduler) sweep(ctx context.Context) {
	if ctx.Err() != nil {
		return
	}

	sweepCtx, cancel := context.WithTimeout(ctx, min(s.interval, maxSweepTime))
	defer cancel()

	started := time.Now()
	expired, err := s.guests.ExpireStale(sweepCtx)
	if err != nil {
		s.logger.LogAttrs(ctx, logger.ErrorLevel, "failed to expire stale guests",
			logger.String("error", err.Error()),
			logger.Duration("took", time.Since(started)),
		)
		return
	}
	if len(expired) == 0 {
		return
	}

	for _, g := range expired {
		s.logger.LogAttrs(ctx, logger.InfoLevel, "guest entry expired",
			logger.String("guest_list_id", g.ID),
			logger.String("event_id", g.EventID),
			logger.String("guest_phone", g.GuestPhone),
		)
	}
	s.logger.LogAttrs(ctx, logger.InfoLevel, "stale guests expired",
		logger.Int("count", len(expired)),
		logger.Duration("took", time.Since(started)),
	)
}

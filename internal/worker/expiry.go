package worker

import (
	"context"
	"fmt"
	"time"

	"example.poc/messenger-client/internal/repository"
	"github.com/rs/zerolog"
)

// ExpiryWorker periodically drops messages whose ttl has run out.
type ExpiryWorker struct {
	repo     repository.IRepository
	interval time.Duration
	now      func() time.Time
}

func NewExpiryWorker(repo repository.IRepository, interval time.Duration) (*ExpiryWorker, error) {
	if repo == nil {
		return nil, fmt.Errorf("illegal argument: repository cannot be nil")
	}
	if interval <= 0 {
		return nil, fmt.Errorf("invalid interval: %v", interval)
	}

	return &ExpiryWorker{
		repo:     repo,
		interval: interval,
		now:      time.Now,
	}, nil
}

// Start blocks until ctx is cancelled.
func (w *ExpiryWorker) Start(ctx context.Context) error {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	ctx = zerolog.Ctx(ctx).With().
		Str("component", "message_expiry_worker").
		Str("interval", w.interval.String()).
		Logger().WithContext(ctx)

	for {
		select {
		case <-ticker.C:
			w.sweep(ctx)
		case <-ctx.Done():
			zerolog.Ctx(ctx).Info().Msg("stopping expiry worker, context cancelled")
			return ctx.Err()
		}
	}
}

func (w *ExpiryWorker) sweep(ctx context.Context) {
	start := time.Now()
	removed, err := w.repo.DeleteExpired(w.now())
	if err != nil {
		zerolog.Ctx(ctx).Err(err).Msg("failed to remove expired messages")
		return
	}
	zerolog.Ctx(ctx).Debug().
		Int("removed", removed).
		Int("remaining", w.repo.Count()).
		Str("duration", time.Since(start).String()).
		Msg("removed expired messages")
}

package worker

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/stayhaven/booking-system/internal/core/ports"
)

const defaultSweepInterval = time.Hour

// CompletionWorker periodically completes confirmed bookings whose checkout
// date has passed. It is the batch actor of the booking lifecycle; the
// owner-driven endpoint uses the same service path, so the checkout
// precondition holds either way.
type CompletionWorker struct {
	bookings ports.BookingService
	interval time.Duration
	log      zerolog.Logger
}

// NewCompletionWorker creates a CompletionWorker sweeping at the given
// interval. If interval <= 0, defaultSweepInterval is used.
func NewCompletionWorker(bookings ports.BookingService, interval time.Duration, log zerolog.Logger) *CompletionWorker {
	if interval <= 0 {
		interval = defaultSweepInterval
	}
	return &CompletionWorker{bookings: bookings, interval: interval, log: log}
}

// Start launches the sweep loop in a goroutine. An initial sweep runs
// immediately; subsequent sweeps run every interval until ctx is cancelled.
func (w *CompletionWorker) Start(ctx context.Context) {
	go func() {
		w.RunOnce(ctx)

		ticker := time.NewTicker(w.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				w.RunOnce(ctx)
			}
		}
	}()
}

// RunOnce performs a single sweep.
func (w *CompletionWorker) RunOnce(ctx context.Context) {
	completed, err := w.bookings.CompleteDueBookings(ctx, time.Now().UTC())
	if err != nil {
		w.log.Error().Err(err).Msg("completion sweep failed")
		return
	}
	w.log.Debug().Int("completed", completed).Msg("completion sweep ran")
}

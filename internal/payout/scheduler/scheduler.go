// Package scheduler re-runs the payout pipeline on a fixed interval. The
// next run is scheduled only after the previous one completes, so runs never
// overlap and no worker balance sees concurrent mutation from this process.
package scheduler

import (
	"context"
	"log/slog"
	"time"
)

// Runner invokes one run function at a fixed cadence.
type Runner struct {
	interval time.Duration
	run      func(context.Context) error
	logger   *slog.Logger
}

// Option configures a Runner.
type Option func(*Runner)

// WithLogger sets the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Runner) {
		r.logger = logger
	}
}

// New constructs a Runner around the given run function.
func New(interval time.Duration, run func(context.Context) error, opts ...Option) *Runner {
	r := &Runner{
		interval: interval,
		run:      run,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run executes the run function immediately, then once per interval, until
// the context is canceled. A failed run is logged and does not stop the
// loop; the next scheduled run is the retry.
//
// Cancellation only takes effect between runs. A run that has started always
// executes to completion on an uncancelable context: aborting mid-flight
// could cut an in-flight transfer off from its ledger write and turn a clean
// shutdown into a double-payout reconciliation.
func (r *Runner) Run(ctx context.Context) error {
	timer := time.NewTimer(0)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
		}

		if err := r.run(context.WithoutCancel(ctx)); err != nil {
			r.logger.ErrorContext(ctx, "payout run failed", "error", err)
		}
		timer.Reset(r.interval)
	}
}

// Package payout implements the settlement pipeline: collect worker
// balances, filter payable workers, plan transfer batches, execute them
// against the wallet daemon, and record outcomes in the ledger.
package payout

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"poolpay/internal/payout/metrics"
	"poolpay/internal/payout/models"
	"poolpay/internal/payout/ports"
)

// Config is the payout policy for one service instance. Amounts are in the
// smallest currency unit.
type Config struct {
	MinPayment   int64
	Denomination int64
	MaxAddresses int
	// MaxTxAmount caps the value of one transfer; 0 disables the cap. A
	// worker whose payout would overflow the cap is clamped to fill the
	// remaining capacity and the rest stays eligible for the next run.
	MaxTxAmount int64
	TransferFee int64
	Mixin       uint64
	// DynamicFee scales the transfer fee with the recipient count; with
	// MinerPayFee set, each payee additionally bears FeePerPayee out of
	// their own payout.
	DynamicFee  bool
	MinerPayFee bool
	FeePerPayee int64
	// MaxConcurrency bounds in-flight wallet transfers within one run.
	MaxConcurrency int
}

func (c Config) validate() error {
	if c.MinPayment <= 0 {
		return fmt.Errorf("min payment must be positive")
	}
	if c.Denomination <= 0 {
		return fmt.Errorf("denomination must be positive")
	}
	if c.MaxAddresses <= 0 {
		return fmt.Errorf("max addresses per batch must be positive")
	}
	if c.DynamicFee && c.FeePerPayee <= 0 {
		return fmt.Errorf("dynamic fee requires a positive fee per payee")
	}
	return nil
}

// Service runs the settlement pipeline. One Run settles at most once per
// worker; the scheduler guarantees runs never overlap.
type Service struct {
	store   ports.LedgerStore
	wallet  ports.WalletClient
	events  ports.EventPublisher
	keys    models.Keys
	cfg     Config
	logger  *slog.Logger
	metrics *metrics.Metrics
	tracer  trace.Tracer
	now     func() time.Time
}

// Option configures a Service.
type Option func(*Service)

// WithLogger sets the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

// WithMetrics attaches pipeline metrics.
func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

// WithEvents attaches a payment event publisher.
func WithEvents(events ports.EventPublisher) Option {
	return func(s *Service) {
		s.events = events
	}
}

// WithClock replaces the payment timestamp source, mainly for tests.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

// New constructs the payout service.
func New(store ports.LedgerStore, wallet ports.WalletClient, keys models.Keys, cfg Config, opts ...Option) (*Service, error) {
	if store == nil {
		return nil, fmt.Errorf("ledger store is required")
	}
	if wallet == nil {
		return nil, fmt.Errorf("wallet client is required")
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("payout config: %w", err)
	}
	if cfg.MaxConcurrency < 1 {
		cfg.MaxConcurrency = 1
	}

	svc := &Service{
		store:  store,
		wallet: wallet,
		keys:   keys,
		cfg:    cfg,
		logger: slog.Default(),
		tracer: otel.Tracer("poolpay/payout"),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(svc)
	}
	return svc, nil
}

// Run executes one settlement pass. A store read failure aborts the run; an
// empty candidate set is a normal no-op. Per-batch failures never abort the
// remaining batches, and no failure here crashes the process: every path
// degrades to logging and waiting for the next scheduled run.
func (s *Service) Run(ctx context.Context) error {
	start := time.Now()
	runID := uuid.NewString()
	ctx, span := s.tracer.Start(ctx, "payout.run",
		trace.WithAttributes(attribute.String("run_id", runID)))
	defer span.End()

	log := s.logger.With("run_id", runID)
	if s.metrics != nil {
		s.metrics.RunsTotal.Inc()
		defer func() {
			s.metrics.RunDuration.Observe(time.Since(start).Seconds())
		}()
	}

	workers, balances, err := s.collect(ctx)
	if err != nil {
		log.ErrorContext(ctx, "failed to read worker balances", "error", err)
		if s.metrics != nil {
			s.metrics.RunFailures.Inc()
		}
		return err
	}

	candidates := s.filter(workers, balances)
	if s.metrics != nil {
		s.metrics.EligibleWorkers.Set(float64(len(candidates)))
	}
	if len(candidates) == 0 {
		log.InfoContext(ctx, "no worker balance reached the minimum payment threshold")
		return nil
	}

	batches := s.plan(candidates)
	tally := s.execute(ctx, log, batches)

	log.InfoContext(ctx, "payout run complete",
		"batches", len(batches),
		"recorded", tally.recorded,
		"send_failed", tally.sendFailed,
		"record_failed_after_send", tally.recordFailed,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return nil
}

// collect reads the worker set and every pending balance.
func (s *Service) collect(ctx context.Context) ([]string, map[string]int64, error) {
	workers, err := s.store.Workers(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("collect workers: %w", err)
	}
	balances, err := s.store.Balances(ctx, workers)
	if err != nil {
		return nil, nil, fmt.Errorf("collect balances: %w", err)
	}
	return workers, balances, nil
}

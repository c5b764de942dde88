package payout

import (
	"context"
	"log/slog"
	"sync/atomic"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"poolpay/internal/payout/models"
)

// tally summarizes how one run's batches terminated.
type tally struct {
	recorded     int
	sendFailed   int
	recordFailed int
}

// execute settles every planned batch with bounded concurrency. Batches are
// independent: one failure never blocks the rest. The worker funcs always
// return nil so the group cannot cancel sibling batches mid-transfer.
func (s *Service) execute(ctx context.Context, log *slog.Logger, batches []models.TransferBatch) tally {
	// The score base second is read once per run. Reading the clock per
	// batch could hand two concurrent batches equal scores when they
	// straddle a second boundary.
	base := s.now().Unix()
	var seq atomic.Int64
	states := make([]models.BatchState, len(batches))

	var g errgroup.Group
	g.SetLimit(s.cfg.MaxConcurrency)
	for i, batch := range batches {
		g.Go(func() error {
			states[i] = s.settle(ctx, log, batch, base, &seq)
			return nil
		})
	}
	g.Wait()

	var t tally
	for _, state := range states {
		switch state {
		case models.StateRecorded:
			t.recorded++
		case models.StateSendFailed:
			t.sendFailed++
		case models.StateRecordFailedAfterSend:
			t.recordFailed++
		}
	}
	return t
}

// settle drives one batch through the state machine: transfer first, then
// the atomic ledger write. The write never runs before its own transfer
// confirms, and it is applied exactly once or not at all. The final state is
// recorded on the span and on every failure log line.
func (s *Service) settle(ctx context.Context, log *slog.Logger, batch models.TransferBatch, base int64, seq *atomic.Int64) (state models.BatchState) {
	state = models.StatePlanned
	ctx, span := s.tracer.Start(ctx, "payout.settle",
		trace.WithAttributes(
			attribute.Int("recipients", len(batch.Destinations)),
			attribute.Int64("amount", batch.Amount),
		))
	defer func() {
		span.SetAttributes(attribute.String("batch.state", state.String()))
		span.End()
	}()

	result, err := s.wallet.Transfer(ctx, models.TransferRequest{
		Destinations: batch.Destinations,
		Fee:          batch.Fee,
		Mixin:        batch.Mixin,
		UnlockTime:   batch.UnlockTime,
	})
	if err != nil {
		state = models.StateSendFailed
		// No ledger mutation happens for a failed transfer, so these
		// workers stay fully payable and the next run retries them.
		log.ErrorContext(ctx, "transfer rejected by wallet daemon",
			"state", state.String(),
			"error", err,
			"amount", batch.Amount,
			"fee", batch.Fee,
			"destinations", models.DestinationStrings(batch.Destinations),
		)
		if s.metrics != nil {
			s.metrics.BatchesFailed.Inc()
		}
		return state
	}

	state = models.StateSent
	log.InfoContext(ctx, "payments sent via wallet daemon",
		"state", state.String(),
		"tx_hash", result.TxHash,
		"amount", batch.Amount,
		"fee", batch.Fee,
		"recipients", len(batch.Destinations),
	)
	if s.metrics != nil {
		s.metrics.BatchesSent.Inc()
	}

	if err := s.record(ctx, batch, result.TxHash, base, seq); err != nil {
		state = models.StateRecordFailedAfterSend
		// Funds already left the wallet but the ledger still shows the old
		// balances. Retrying the write blindly risks compounding the
		// inconsistency and retrying the transfer would double-pay, so this
		// surfaces for manual reconciliation instead.
		log.ErrorContext(ctx, "critical: payments sent but ledger update failed, double payouts likely",
			"state", state.String(),
			"error", err,
			"tx_hash", result.TxHash,
			"amount", batch.Amount,
			"fee", batch.Fee,
			"destinations", models.DestinationStrings(batch.Destinations),
		)
		if s.metrics != nil {
			s.metrics.RecordFailures.Inc()
		}
		return state
	}

	state = models.StateRecorded
	if s.metrics != nil {
		s.metrics.AmountPaid.Add(float64(batch.Amount))
	}
	s.publish(ctx, log, batch, result.TxHash)
	return state
}

// record applies the batch's planned mutations plus its audit entries as one
// atomic write. Scores are the run's base second plus a per-run sequence
// offset so they stay strictly increasing even when several batches settle
// within, or straddle, the same clock second.
func (s *Service) record(ctx context.Context, batch models.TransferBatch, txHash string, base int64, seq *atomic.Int64) error {
	score := float64(base + seq.Add(1) - 1)
	entry := models.PaymentRecord{
		TxHash:     txHash,
		Amount:     batch.Amount,
		Fee:        batch.Fee,
		Mixin:      batch.Mixin,
		Recipients: len(batch.Destinations),
	}

	ops := make([]models.Op, 0, len(batch.Mutations)+1+len(batch.Destinations))
	ops = append(ops, batch.Mutations...)
	ops = append(ops, models.ZAdd(s.keys.PaymentsAll(), score, entry.EncodeGlobal()))
	for _, d := range batch.Destinations {
		ops = append(ops, models.ZAdd(s.keys.PaymentsFor(d.Address), score, entry.EncodeForWorker(d.Amount)))
	}
	return s.store.ApplyAtomic(ctx, ops)
}

// publish emits the payment event for a recorded batch, best-effort.
func (s *Service) publish(ctx context.Context, log *slog.Logger, batch models.TransferBatch, txHash string) {
	if s.events == nil {
		return
	}
	ev := models.PaymentEvent{
		TxHash:     txHash,
		Amount:     batch.Amount,
		Fee:        batch.Fee,
		Recipients: len(batch.Destinations),
		PaidAt:     s.now().UTC(),
	}
	if err := s.events.PaymentSent(ctx, ev); err != nil {
		log.WarnContext(ctx, "failed to publish payment event",
			"tx_hash", txHash,
			"error", err,
		)
	}
}

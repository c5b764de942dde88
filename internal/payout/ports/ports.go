// Package ports defines the capability interfaces the payout pipeline
// consumes. Implementations live under store/, wallet/ and events/; tests
// substitute fakes or gomock mocks.
package ports

import (
	"context"

	"poolpay/internal/payout/models"
)

//go:generate mockgen -source=ports.go -destination=../mocks/mocks.go -package=mocks

// LedgerStore is the balance ledger. ApplyAtomic must execute its ops
// all-or-nothing; a partial write is never acceptable for money movement.
type LedgerStore interface {
	// Workers returns every known worker payout address.
	Workers(ctx context.Context) ([]string, error)

	// Balances returns the pending balance for each worker. A missing or
	// unparseable balance reads as zero rather than failing the run.
	Balances(ctx context.Context, workers []string) (map[string]int64, error)

	// ApplyAtomic executes the ops as a single all-or-nothing write.
	ApplyAtomic(ctx context.Context, ops []models.Op) error

	// GlobalPayments returns up to limit entries from the global payment
	// feed, newest first.
	GlobalPayments(ctx context.Context, limit int64) ([]models.ScoredRecord, error)

	// WorkerPayments returns up to limit entries from one worker's payment
	// feed, newest first.
	WorkerPayments(ctx context.Context, address string, limit int64) ([]models.ScoredRecord, error)
}

// WalletClient is the external wallet daemon. A Transfer that returns an
// error may still have moved real funds; callers must treat the error path
// as ambiguous, not as a guarantee that nothing was sent.
type WalletClient interface {
	Transfer(ctx context.Context, req models.TransferRequest) (models.TransferResult, error)
}

// EventPublisher emits payment events for downstream consumers. Publishing
// is best-effort and must never affect settlement.
type EventPublisher interface {
	PaymentSent(ctx context.Context, ev models.PaymentEvent) error
}

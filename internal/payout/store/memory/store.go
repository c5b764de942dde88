// Package memory implements the ledger store in process memory. It backs
// unit tests and mirrors the atomicity contract of the Redis store: an
// ApplyAtomic either lands completely or not at all.
package memory

import (
	"context"
	"sort"
	"sync"

	"poolpay/internal/payout/models"
)

// Store is an in-memory ledger store.
type Store struct {
	mu     sync.Mutex
	keys   models.Keys
	set    []string
	member map[string]bool
	hashes map[string]map[string]int64
	zsets  map[string][]models.ScoredRecord

	failWorkers error
	failAtomic  error
}

// New constructs an empty in-memory ledger store.
func New(keys models.Keys) *Store {
	return &Store{
		keys:   keys,
		member: make(map[string]bool),
		hashes: make(map[string]map[string]int64),
		zsets:  make(map[string][]models.ScoredRecord),
	}
}

// Credit registers a worker and adds to its pending balance, standing in for
// the upstream accrual process.
func (s *Store) Credit(address string, amount int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.member[address] {
		s.member[address] = true
		s.set = append(s.set, address)
	}
	s.incr(s.keys.Worker(address), models.FieldBalance, amount)
}

// Balance returns a worker's current balance.
func (s *Store) Balance(address string) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.hashes[s.keys.Worker(address)][models.FieldBalance]
}

// Paid returns a worker's cumulative paid total.
func (s *Store) Paid(address string) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.hashes[s.keys.Worker(address)][models.FieldPaid]
}

// FailWorkers makes every subsequent Workers call return err. Pass nil to
// restore normal behavior.
func (s *Store) FailWorkers(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failWorkers = err
}

// FailAtomic makes every subsequent ApplyAtomic call return err without
// applying anything. Pass nil to restore normal behavior.
func (s *Store) FailAtomic(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failAtomic = err
}

// Workers returns every registered worker in registration order.
func (s *Store) Workers(ctx context.Context) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failWorkers != nil {
		return nil, s.failWorkers
	}
	out := make([]string, len(s.set))
	copy(out, s.set)
	return out, nil
}

// Balances returns each worker's balance; unknown workers read as zero.
func (s *Store) Balances(ctx context.Context, workers []string) (map[string]int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	balances := make(map[string]int64, len(workers))
	for _, w := range workers {
		balances[w] = s.hashes[s.keys.Worker(w)][models.FieldBalance]
	}
	return balances, nil
}

// ApplyAtomic applies all ops under one lock acquisition, or none when a
// failure is injected.
func (s *Store) ApplyAtomic(ctx context.Context, ops []models.Op) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failAtomic != nil {
		return s.failAtomic
	}
	for _, op := range ops {
		switch op.Kind {
		case models.OpHIncrBy:
			s.incr(op.Key, op.Field, op.Delta)
		case models.OpZAdd:
			s.zsets[op.Key] = append(s.zsets[op.Key], models.ScoredRecord{Score: op.Score, Member: op.Member})
		}
	}
	return nil
}

// GlobalPayments returns the newest entries from the global payment feed.
func (s *Store) GlobalPayments(ctx context.Context, limit int64) ([]models.ScoredRecord, error) {
	return s.feed(s.keys.PaymentsAll(), limit), nil
}

// WorkerPayments returns the newest entries from one worker's payment feed.
func (s *Store) WorkerPayments(ctx context.Context, address string, limit int64) ([]models.ScoredRecord, error) {
	return s.feed(s.keys.PaymentsFor(address), limit), nil
}

func (s *Store) feed(key string, limit int64) []models.ScoredRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	entries := make([]models.ScoredRecord, len(s.zsets[key]))
	copy(entries, s.zsets[key])
	sort.SliceStable(entries, func(i, j int) bool { return entries[i].Score > entries[j].Score })
	if limit > 0 && int64(len(entries)) > limit {
		entries = entries[:limit]
	}
	return entries
}

// incr assumes s.mu is held.
func (s *Store) incr(key, field string, delta int64) {
	h, ok := s.hashes[key]
	if !ok {
		h = make(map[string]int64)
		s.hashes[key] = h
	}
	h[field] += delta
}

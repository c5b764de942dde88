// Package redis implements the ledger store on Redis. The key layout and
// record encodings are shared with the pool's accrual side and frontend.
package redis

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"

	"poolpay/internal/payout/models"
	"poolpay/pkg/sentinel"
)

// Store is a Redis-backed ledger store.
type Store struct {
	client redis.Cmdable
	keys   models.Keys
}

// New constructs a ledger store over an established Redis client.
func New(client redis.Cmdable, keys models.Keys) *Store {
	return &Store{client: client, keys: keys}
}

// Workers returns the members of the worker set.
func (s *Store) Workers(ctx context.Context) ([]string, error) {
	workers, err := s.client.SMembers(ctx, s.keys.Workers()).Result()
	if err != nil {
		return nil, fmt.Errorf("list workers: %w: %w", sentinel.ErrUnavailable, err)
	}
	return workers, nil
}

// Balances reads every worker's balance field in one pipeline round trip.
// A missing hash, missing field, or non-numeric value reads as zero; only a
// transport-level failure aborts.
func (s *Store) Balances(ctx context.Context, workers []string) (map[string]int64, error) {
	if len(workers) == 0 {
		return map[string]int64{}, nil
	}

	pipe := s.client.Pipeline()
	cmds := make([]*redis.StringCmd, len(workers))
	for i, w := range workers {
		cmds[i] = pipe.HGet(ctx, s.keys.Worker(w), models.FieldBalance)
	}
	if _, err := pipe.Exec(ctx); err != nil && !errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("read balances: %w: %w", sentinel.ErrUnavailable, err)
	}

	balances := make(map[string]int64, len(workers))
	for i, w := range workers {
		val, err := cmds[i].Result()
		if err != nil {
			balances[w] = 0
			continue
		}
		n, err := strconv.ParseInt(val, 10, 64)
		if err != nil {
			balances[w] = 0
			continue
		}
		balances[w] = n
	}
	return balances, nil
}

// ApplyAtomic executes the ops inside a MULTI/EXEC transaction.
func (s *Store) ApplyAtomic(ctx context.Context, ops []models.Op) error {
	if len(ops) == 0 {
		return nil
	}
	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		for _, op := range ops {
			switch op.Kind {
			case models.OpHIncrBy:
				pipe.HIncrBy(ctx, op.Key, op.Field, op.Delta)
			case models.OpZAdd:
				pipe.ZAdd(ctx, op.Key, redis.Z{Score: op.Score, Member: op.Member})
			default:
				return fmt.Errorf("unsupported ledger op kind %d", op.Kind)
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("atomic ledger write: %w: %w", sentinel.ErrUnavailable, err)
	}
	return nil
}

// GlobalPayments returns the newest entries from the global payment feed.
func (s *Store) GlobalPayments(ctx context.Context, limit int64) ([]models.ScoredRecord, error) {
	return s.feed(ctx, s.keys.PaymentsAll(), limit)
}

// WorkerPayments returns the newest entries from one worker's payment feed.
func (s *Store) WorkerPayments(ctx context.Context, address string, limit int64) ([]models.ScoredRecord, error) {
	return s.feed(ctx, s.keys.PaymentsFor(address), limit)
}

func (s *Store) feed(ctx context.Context, key string, limit int64) ([]models.ScoredRecord, error) {
	if limit <= 0 {
		limit = 1
	}
	entries, err := s.client.ZRevRangeWithScores(ctx, key, 0, limit-1).Result()
	if err != nil {
		return nil, fmt.Errorf("read payment feed %s: %w: %w", key, sentinel.ErrUnavailable, err)
	}
	records := make([]models.ScoredRecord, 0, len(entries))
	for _, e := range entries {
		member, ok := e.Member.(string)
		if !ok {
			continue
		}
		records = append(records, models.ScoredRecord{Score: e.Score, Member: member})
	}
	return records, nil
}

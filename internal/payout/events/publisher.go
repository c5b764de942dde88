// Package events publishes payment events to Kafka for downstream consumers
// (pool frontend stats, accounting exports). Publishing is best-effort: a
// broker outage must never stall or fail settlement.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/twmb/franz-go/pkg/kgo"

	"poolpay/internal/payout/models"
)

// Publisher produces payment events to a single topic.
type Publisher struct {
	client *kgo.Client
	topic  string
	logger *slog.Logger
}

// Option configures a Publisher.
type Option func(*Publisher)

// WithLogger sets the logger used for delivery failures.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Publisher) {
		p.logger = logger
	}
}

// New connects a producer to the given brokers.
func New(brokers []string, topic string, opts ...Option) (*Publisher, error) {
	client, err := kgo.NewClient(
		kgo.SeedBrokers(brokers...),
		kgo.DefaultProduceTopic(topic),
	)
	if err != nil {
		return nil, fmt.Errorf("create kafka client: %w", err)
	}

	p := &Publisher{
		client: client,
		topic:  topic,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p, nil
}

// PaymentSent produces one payment event, keyed by tx hash so replays of the
// same transaction land in the same partition. Delivery is asynchronous;
// failures are logged, not returned.
func (p *Publisher) PaymentSent(ctx context.Context, ev models.PaymentEvent) error {
	payload, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("encode payment event: %w", err)
	}

	record := &kgo.Record{
		Topic: p.topic,
		Key:   []byte(ev.TxHash),
		Value: payload,
	}
	p.client.Produce(ctx, record, func(_ *kgo.Record, err error) {
		if err != nil {
			p.logger.Warn("payment event delivery failed",
				"tx_hash", ev.TxHash,
				"topic", p.topic,
				"error", err,
			)
		}
	})
	return nil
}

// Close flushes buffered records and shuts the producer down.
func (p *Publisher) Close() {
	p.client.Close()
}

//go:build integration

package events

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/twmb/franz-go/pkg/kgo"

	"poolpay/internal/payout/models"
	"poolpay/pkg/testutil/containers"
)

func TestPublisherDeliversPaymentEvent(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	broker := containers.NewRedpandaContainer(t).Broker
	const topic = "pool.payments.test"

	publisher, err := New([]string{broker}, topic)
	require.NoError(t, err)
	defer publisher.Close()

	sent := models.PaymentEvent{
		TxHash:     "deadbeef",
		Amount:     1500,
		Fee:        30,
		Recipients: 2,
		PaidAt:     time.Unix(1700000000, 0).UTC(),
	}
	require.NoError(t, publisher.PaymentSent(context.Background(), sent))

	consumer, err := kgo.NewClient(
		kgo.SeedBrokers(broker),
		kgo.ConsumeTopics(topic),
		kgo.ConsumeResetOffset(kgo.NewOffset().AtStart()),
	)
	require.NoError(t, err)
	defer consumer.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	fetches := consumer.PollFetches(ctx)
	require.NoError(t, fetches.Err())
	records := fetches.Records()
	require.Len(t, records, 1)
	require.Equal(t, "deadbeef", string(records[0].Key))

	var got models.PaymentEvent
	require.NoError(t, json.Unmarshal(records[0].Value, &got))
	require.Equal(t, sent, got)
}

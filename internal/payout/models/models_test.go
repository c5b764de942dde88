package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaymentRecordEncoding(t *testing.T) {
	record := PaymentRecord{
		TxHash:     "deadbeef",
		Amount:     1500,
		Fee:        30,
		Mixin:      3,
		Recipients: 2,
	}

	// These strings are shared with the pool frontend; they must stay
	// byte-for-byte stable.
	assert.Equal(t, "deadbeef:1500:30:3:2", record.EncodeGlobal())
	assert.Equal(t, "deadbeef:700:30:3", record.EncodeForWorker(700))
}

func TestDecodeGlobal(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		record := PaymentRecord{TxHash: "cafe", Amount: 42, Fee: 7, Mixin: 5, Recipients: 1}
		decoded, err := DecodeGlobal(record.EncodeGlobal())
		require.NoError(t, err)
		assert.Equal(t, record, decoded)
	})

	t.Run("malformed entries rejected", func(t *testing.T) {
		for _, member := range []string{
			"",
			"cafe:42:7:5",
			"cafe:notanumber:7:5:1",
			"cafe:42:7:5:one",
		} {
			_, err := DecodeGlobal(member)
			assert.Error(t, err, "member %q", member)
		}
	})
}

func TestKeys(t *testing.T) {
	keys := NewKeys("monero")

	assert.Equal(t, "monero:workers", keys.Workers())
	assert.Equal(t, "monero:workers:addr1", keys.Worker("addr1"))
	assert.Equal(t, "monero:payments:all", keys.PaymentsAll())
	assert.Equal(t, "monero:payments:addr1", keys.PaymentsFor("addr1"))
}

func TestDestinationStrings(t *testing.T) {
	got := DestinationStrings([]Destination{
		{Address: "A", Amount: 100},
		{Address: "B", Amount: 250},
	})
	assert.Equal(t, []string{"A:100", "B:250"}, got)
}

func TestBatchStateString(t *testing.T) {
	assert.Equal(t, "planned", StatePlanned.String())
	assert.Equal(t, "sent", StateSent.String())
	assert.Equal(t, "recorded", StateRecorded.String())
	assert.Equal(t, "send_failed", StateSendFailed.String())
	assert.Equal(t, "record_failed_after_send", StateRecordFailedAfterSend.String())
}

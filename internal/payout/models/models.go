package models

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Destination is one payee entry in a transfer batch. Amount is in the
// smallest currency unit.
type Destination struct {
	Address string
	Amount  int64
}

func (d Destination) String() string {
	return d.Address + ":" + strconv.FormatInt(d.Amount, 10)
}

// DestinationStrings renders a destination list for log output. This is the
// operator's only record of an attempted-but-unconfirmed payment, so every
// failure path logs it in full.
func DestinationStrings(ds []Destination) []string {
	out := make([]string, len(ds))
	for i, d := range ds {
		out[i] = d.String()
	}
	return out
}

// BatchState tracks a batch through the send/record state machine. A batch
// is planned, then sent, then recorded; the two failure states are terminal.
type BatchState int

const (
	StatePlanned BatchState = iota
	StateSent
	StateRecorded
	StateSendFailed
	// StateRecordFailedAfterSend means funds left the wallet but the ledger
	// write failed. The participant balances were not decremented, so the
	// next run would pay them again. Requires manual reconciliation.
	StateRecordFailedAfterSend
)

func (s BatchState) String() string {
	switch s {
	case StatePlanned:
		return "planned"
	case StateSent:
		return "sent"
	case StateRecorded:
		return "recorded"
	case StateSendFailed:
		return "send_failed"
	case StateRecordFailedAfterSend:
		return "record_failed_after_send"
	default:
		return "unknown"
	}
}

// TransferBatch is one wallet transfer covering up to maxAddresses payees.
// It carries the ledger mutations planned alongside its destinations so the
// post-transfer atomic write is self-contained.
type TransferBatch struct {
	Destinations []Destination
	Amount       int64 // sum of destination amounts
	Fee          int64
	Mixin        uint64
	UnlockTime   uint64
	Mutations    []Op
}

// TransferRequest is the wallet daemon transfer call.
type TransferRequest struct {
	Destinations []Destination
	Fee          int64
	Mixin        uint64
	UnlockTime   uint64
}

// TransferResult is the wallet daemon's confirmation of a transfer.
type TransferResult struct {
	TxHash string
}

// OpKind selects the ledger verb an Op executes.
type OpKind int

const (
	OpHIncrBy OpKind = iota
	OpZAdd
)

// Op is one command inside an atomic ledger write. The store executes a
// batch of these all-or-nothing.
type Op struct {
	Kind   OpKind
	Key    string
	Field  string  // OpHIncrBy
	Delta  int64   // OpHIncrBy
	Score  float64 // OpZAdd
	Member string  // OpZAdd
}

// HIncrBy builds a hash-field increment op.
func HIncrBy(key, field string, delta int64) Op {
	return Op{Kind: OpHIncrBy, Key: key, Field: field, Delta: delta}
}

// ZAdd builds a sorted-set append op.
func ZAdd(key string, score float64, member string) Op {
	return Op{Kind: OpZAdd, Key: key, Score: score, Member: member}
}

// ScoredRecord is one sorted-set entry read back from a payment feed.
type ScoredRecord struct {
	Score  float64
	Member string
}

// PaymentRecord is the persisted audit entry for one settled batch. The
// colon-delimited encodings below are shared with the pool frontend and must
// stay byte-for-byte stable.
type PaymentRecord struct {
	TxHash     string
	Amount     int64
	Fee        int64
	Mixin      uint64
	Recipients int
}

// EncodeGlobal renders the global feed entry: txHash:amount:fee:mixin:recipients.
func (r PaymentRecord) EncodeGlobal() string {
	return strings.Join([]string{
		r.TxHash,
		strconv.FormatInt(r.Amount, 10),
		strconv.FormatInt(r.Fee, 10),
		strconv.FormatUint(r.Mixin, 10),
		strconv.Itoa(r.Recipients),
	}, ":")
}

// EncodeForWorker renders the per-worker feed entry for one destination:
// txHash:amount:fee:mixin. The amount is the destination's share, not the
// batch total.
func (r PaymentRecord) EncodeForWorker(amount int64) string {
	return strings.Join([]string{
		r.TxHash,
		strconv.FormatInt(amount, 10),
		strconv.FormatInt(r.Fee, 10),
		strconv.FormatUint(r.Mixin, 10),
	}, ":")
}

// DecodeGlobal parses a global feed entry back into a PaymentRecord.
func DecodeGlobal(member string) (PaymentRecord, error) {
	parts := strings.Split(member, ":")
	if len(parts) != 5 {
		return PaymentRecord{}, fmt.Errorf("malformed payment record %q", member)
	}
	amount, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		return PaymentRecord{}, fmt.Errorf("malformed payment amount %q: %w", parts[1], err)
	}
	fee, err := strconv.ParseInt(parts[2], 10, 64)
	if err != nil {
		return PaymentRecord{}, fmt.Errorf("malformed payment fee %q: %w", parts[2], err)
	}
	mixin, err := strconv.ParseUint(parts[3], 10, 64)
	if err != nil {
		return PaymentRecord{}, fmt.Errorf("malformed payment mixin %q: %w", parts[3], err)
	}
	recipients, err := strconv.Atoi(parts[4])
	if err != nil {
		return PaymentRecord{}, fmt.Errorf("malformed recipient count %q: %w", parts[4], err)
	}
	return PaymentRecord{
		TxHash:     parts[0],
		Amount:     amount,
		Fee:        fee,
		Mixin:      mixin,
		Recipients: recipients,
	}, nil
}

// PaymentEvent is published to downstream consumers after a batch is both
// sent and recorded.
type PaymentEvent struct {
	TxHash     string    `json:"tx_hash"`
	Amount     int64     `json:"amount"`
	Fee        int64     `json:"fee"`
	Recipients int       `json:"recipients"`
	PaidAt     time.Time `json:"paid_at"`
}

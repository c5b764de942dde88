package payout

import "poolpay/internal/payout/models"

// candidate pairs a worker with the amount payable this run.
type candidate struct {
	address string
	amount  int64
}

// filter selects workers whose balance crosses the minimum payment threshold
// and computes each one's payable amount. Payouts are exact multiples of the
// denomination; the remainder keeps accruing for a later run. Under the
// payee-pays-fee policy the fee share comes out of the payout, and a worker
// whose payout would go negative is skipped entirely.
func (s *Service) filter(workers []string, balances map[string]int64) []candidate {
	var out []candidate
	for _, w := range workers {
		balance := balances[w]
		if balance < s.cfg.MinPayment {
			continue
		}
		payout := balance - balance%s.cfg.Denomination
		if s.cfg.DynamicFee && s.cfg.MinerPayFee {
			payout -= s.cfg.FeePerPayee
		}
		if payout < 0 {
			continue
		}
		out = append(out, candidate{address: w, amount: payout})
	}
	return out
}

// batchBuilder accumulates one open batch during planning.
type batchBuilder struct {
	dests  []models.Destination
	ops    []models.Op
	amount int64
}

// plan partitions the candidates into transfer batches in one deterministic
// pass. A candidate whose amount would overflow the value cap is clamped to
// exactly fill the remaining capacity; the unpaid portion stays on the
// worker's balance and settles in a later run. Each destination's ledger
// mutations are planned here, next to the payment itself, so the recorder's
// atomic write cannot be recomputed incorrectly after the transfer.
func (s *Service) plan(candidates []candidate) []models.TransferBatch {
	var batches []models.TransferBatch
	b := &batchBuilder{}

	flush := func() {
		if len(b.dests) == 0 {
			return
		}
		batches = append(batches, s.seal(b))
		b = &batchBuilder{}
	}

	for _, c := range candidates {
		amount := c.amount
		if s.cfg.MaxTxAmount > 0 && b.amount+amount > s.cfg.MaxTxAmount {
			amount = s.cfg.MaxTxAmount - b.amount
		}

		worker := s.keys.Worker(c.address)
		b.dests = append(b.dests, models.Destination{Address: c.address, Amount: amount})
		b.ops = append(b.ops, models.HIncrBy(worker, models.FieldBalance, -amount))
		if s.cfg.DynamicFee && s.cfg.MinerPayFee {
			b.ops = append(b.ops, models.HIncrBy(worker, models.FieldBalance, -s.cfg.FeePerPayee))
		}
		b.ops = append(b.ops, models.HIncrBy(worker, models.FieldPaid, amount))
		b.amount += amount

		if len(b.dests) >= s.cfg.MaxAddresses ||
			(s.cfg.MaxTxAmount > 0 && b.amount >= s.cfg.MaxTxAmount) {
			flush()
		}
	}
	flush()
	return batches
}

// seal closes an open batch into its immutable final value. The dynamic fee
// is computed once here, from the closed batch's recipient count, so it can
// never drift from the batch it belongs to.
func (s *Service) seal(b *batchBuilder) models.TransferBatch {
	fee := s.cfg.TransferFee
	if s.cfg.DynamicFee {
		fee = s.cfg.FeePerPayee * int64(len(b.dests))
	}
	return models.TransferBatch{
		Destinations: b.dests,
		Amount:       b.amount,
		Fee:          fee,
		Mixin:        s.cfg.Mixin,
		UnlockTime:   0,
		Mutations:    b.ops,
	}
}

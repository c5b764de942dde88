package models

// Keys builds the Redis key layout shared with the rest of the pool:
//
//	<coin>:workers            set of worker payout addresses
//	<coin>:workers:<address>  hash holding balance and paid fields
//	<coin>:payments:all       sorted set of global payment records
//	<coin>:payments:<address> sorted set of per-worker payment records
type Keys struct {
	coin string
}

// Hash fields on the per-worker record.
const (
	FieldBalance = "balance"
	FieldPaid    = "paid"
)

func NewKeys(coin string) Keys {
	return Keys{coin: coin}
}

// Workers is the set of all worker payout addresses.
func (k Keys) Workers() string {
	return k.coin + ":workers"
}

// Worker is the hash carrying one worker's balance and paid totals.
func (k Keys) Worker(address string) string {
	return k.coin + ":workers:" + address
}

// PaymentsAll is the global payment history feed.
func (k Keys) PaymentsAll() string {
	return k.coin + ":payments:all"
}

// PaymentsFor is one worker's payment history feed.
func (k Keys) PaymentsFor(address string) string {
	return k.coin + ":payments:" + address
}

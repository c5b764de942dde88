package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config is the full process configuration, one struct per concern.
type Config struct {
	Server   Server
	Redis    Redis
	Wallet   Wallet
	Payments Payments
	Events   Events
}

// Server captures the ops HTTP listener configuration.
type Server struct {
	Addr string
}

// Redis captures the ledger store connection configuration.
type Redis struct {
	URL string
}

// Wallet captures the wallet daemon RPC endpoint configuration.
type Wallet struct {
	URL     string
	Timeout time.Duration
}

// Payments captures the payout policy. Amounts are in the smallest
// currency unit.
type Payments struct {
	Coin           string
	MinPayment     int64
	Denomination   int64
	MaxAddresses   int
	MaxTxAmount    int64 // 0 disables the per-transaction value cap
	TransferFee    int64
	FeePerPayee    int64
	Mixin          uint64
	Interval       time.Duration
	DynamicFee     bool
	MinerPayFee    bool
	MaxConcurrency int
}

// Events captures the optional Kafka payment-event sink. Empty brokers
// disables publishing.
type Events struct {
	Brokers []string
	Topic   string
}

// FromEnv builds the configuration from environment variables so main stays
// lean. Every option has a working default except the wallet endpoint.
func FromEnv() Config {
	return Config{
		Server: Server{
			Addr: envString("POOLPAY_ADDR", ":8080"),
		},
		Redis: Redis{
			URL: envString("POOLPAY_REDIS_URL", "redis://localhost:6379"),
		},
		Wallet: Wallet{
			URL:     envString("POOLPAY_WALLET_URL", "http://localhost:8082"),
			Timeout: envDuration("POOLPAY_WALLET_TIMEOUT", 30*time.Second),
		},
		Payments: Payments{
			Coin:           envString("POOLPAY_COIN", "monero"),
			MinPayment:     envInt64("POOLPAY_MIN_PAYMENT", 100000000000),
			Denomination:   envInt64("POOLPAY_DENOMINATION", 100000000000),
			MaxAddresses:   envInt("POOLPAY_MAX_ADDRESSES", 50),
			MaxTxAmount:    envInt64("POOLPAY_MAX_TX_AMOUNT", 0),
			TransferFee:    envInt64("POOLPAY_TRANSFER_FEE", 10000000000),
			FeePerPayee:    envInt64("POOLPAY_FEE_PER_PAYEE", 0),
			Mixin:          uint64(envInt64("POOLPAY_MIXIN", 3)),
			Interval:       envDuration("POOLPAY_INTERVAL", 10*time.Minute),
			DynamicFee:     envBool("POOLPAY_DYNAMIC_FEE", false),
			MinerPayFee:    envBool("POOLPAY_MINER_PAY_FEE", false),
			MaxConcurrency: envInt("POOLPAY_MAX_CONCURRENCY", 1),
		},
		Events: Events{
			Brokers: envStrings("POOLPAY_KAFKA_BROKERS"),
			Topic:   envString("POOLPAY_KAFKA_TOPIC", "pool.payments"),
		},
	}
}

func envString(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envStrings(key string) []string {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func envInt64(key string, fallback int64) int64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return fallback
}

func envInt(key string, fallback int) int {
	return int(envInt64(key, int64(fallback)))
}

func envBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
		// bare numbers are read as seconds for pool.cfg compatibility
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return time.Duration(n) * time.Second
		}
	}
	return fallback
}

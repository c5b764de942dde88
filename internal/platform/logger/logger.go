package logger

import (
	"log/slog"
	"os"
)

// New returns the process logger. JSON output by default so the payout audit
// trail stays machine-readable; POOLPAY_LOG_FORMAT=text switches to the
// human-friendly handler for local runs.
func New() *slog.Logger {
	level := slog.LevelInfo
	if os.Getenv("POOLPAY_LOG_LEVEL") == "debug" {
		level = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{Level: level}
	if os.Getenv("POOLPAY_LOG_FORMAT") == "text" {
		return slog.New(slog.NewTextHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, opts))
}

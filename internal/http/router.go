// Package httpapi is the ops HTTP surface: health, metrics, and read-only
// payment history for the pool frontend. It never mutates the ledger.
package httpapi

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"poolpay/internal/payout/models"
	"poolpay/internal/payout/ports"
)

const defaultFeedLimit = 50

// HealthChecker reports whether the ledger connection is usable.
type HealthChecker interface {
	Health(ctx context.Context) error
}

// Handler wires the read endpoints to the ledger store.
type Handler struct {
	store  ports.LedgerStore
	health HealthChecker
	logger *slog.Logger
}

// NewHandler constructs the ops handler.
func NewHandler(store ports.LedgerStore, health HealthChecker, logger *slog.Logger) *Handler {
	return &Handler{store: store, health: health, logger: logger}
}

// NewRouter mounts all ops endpoints.
func NewRouter(h *Handler) http.Handler {
	r := chi.NewRouter()
	r.Get("/healthz", h.handleHealth)
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/payments", h.handleGlobalPayments)
	r.Get("/payments/{address}", h.handleWorkerPayments)
	return r
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	if err := h.health.Health(r.Context()); err != nil {
		h.logger.WarnContext(r.Context(), "health check failed", "error", err)
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// paymentEntry is one decoded global feed entry.
type paymentEntry struct {
	Time       int64  `json:"time"`
	TxHash     string `json:"tx_hash"`
	Amount     int64  `json:"amount"`
	Fee        int64  `json:"fee"`
	Mixin      uint64 `json:"mixin"`
	Recipients int    `json:"recipients"`
}

func (h *Handler) handleGlobalPayments(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	records, err := h.store.GlobalPayments(ctx, feedLimit(r))
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to read payment feed", "error", err)
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{"error": "payment feed unavailable"})
		return
	}

	entries := make([]paymentEntry, 0, len(records))
	for _, rec := range records {
		decoded, err := models.DecodeGlobal(rec.Member)
		if err != nil {
			h.logger.WarnContext(ctx, "skipping malformed payment record", "error", err)
			continue
		}
		entries = append(entries, paymentEntry{
			Time:       int64(rec.Score),
			TxHash:     decoded.TxHash,
			Amount:     decoded.Amount,
			Fee:        decoded.Fee,
			Mixin:      decoded.Mixin,
			Recipients: decoded.Recipients,
		})
	}
	writeJSON(w, http.StatusOK, entries)
}

// workerPaymentEntry is one raw per-worker feed entry; the per-worker
// encoding is kept opaque for frontend compatibility.
type workerPaymentEntry struct {
	Time  int64  `json:"time"`
	Entry string `json:"entry"`
}

func (h *Handler) handleWorkerPayments(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	address := chi.URLParam(r, "address")
	records, err := h.store.WorkerPayments(ctx, address, feedLimit(r))
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to read worker payment feed", "address", address, "error", err)
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{"error": "payment feed unavailable"})
		return
	}

	entries := make([]workerPaymentEntry, 0, len(records))
	for _, rec := range records {
		entries = append(entries, workerPaymentEntry{Time: int64(rec.Score), Entry: rec.Member})
	}
	writeJSON(w, http.StatusOK, entries)
}

func feedLimit(r *http.Request) int64 {
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil && n > 0 {
			return n
		}
	}
	return defaultFeedLimit
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

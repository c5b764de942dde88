package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"poolpay/internal/payout/models"
	"poolpay/internal/payout/store/memory"
)

type fakeHealth struct {
	err error
}

func (f *fakeHealth) Health(ctx context.Context) error {
	return f.err
}

func newTestRouter(t *testing.T, health *fakeHealth) (http.Handler, *memory.Store, models.Keys) {
	t.Helper()
	keys := models.NewKeys("testcoin")
	store := memory.New(keys)
	logger := slog.New(slog.DiscardHandler)
	return NewRouter(NewHandler(store, health, logger)), store, keys
}

func TestHealthz(t *testing.T) {
	t.Run("healthy", func(t *testing.T) {
		router, _, _ := newTestRouter(t, &fakeHealth{})
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("ledger down", func(t *testing.T) {
		router, _, _ := newTestRouter(t, &fakeHealth{err: errors.New("down")})
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})
}

func TestGlobalPayments(t *testing.T) {
	router, store, keys := newTestRouter(t, &fakeHealth{})

	record := models.PaymentRecord{TxHash: "cafe", Amount: 1500, Fee: 5, Mixin: 3, Recipients: 2}
	require.NoError(t, store.ApplyAtomic(context.Background(), []models.Op{
		models.ZAdd(keys.PaymentsAll(), 1000, record.EncodeGlobal()),
		models.ZAdd(keys.PaymentsAll(), 1001, "garbage-entry"),
	}))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/payments", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var entries []paymentEntry
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &entries))
	// The malformed entry is skipped, not served.
	require.Len(t, entries, 1)
	assert.Equal(t, paymentEntry{
		Time:       1000,
		TxHash:     "cafe",
		Amount:     1500,
		Fee:        5,
		Mixin:      3,
		Recipients: 2,
	}, entries[0])
}

func TestWorkerPayments(t *testing.T) {
	router, store, keys := newTestRouter(t, &fakeHealth{})

	require.NoError(t, store.ApplyAtomic(context.Background(), []models.Op{
		models.ZAdd(keys.PaymentsFor("addr1"), 1000, "cafe:700:5:3"),
		models.ZAdd(keys.PaymentsFor("addr1"), 1001, "beef:800:5:3"),
	}))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/payments/addr1?limit=1", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var entries []workerPaymentEntry
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &entries))
	require.Len(t, entries, 1)
	assert.Equal(t, workerPaymentEntry{Time: 1001, Entry: "beef:800:5:3"}, entries[0])
}

func TestMetricsEndpoint(t *testing.T) {
	router, _, _ := newTestRouter(t, &fakeHealth{})
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

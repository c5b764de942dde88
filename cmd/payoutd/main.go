package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpapi "poolpay/internal/http"
	"poolpay/internal/payout"
	"poolpay/internal/payout/events"
	"poolpay/internal/payout/metrics"
	"poolpay/internal/payout/models"
	"poolpay/internal/payout/scheduler"
	redisstore "poolpay/internal/payout/store/redis"
	"poolpay/internal/payout/wallet"
	"poolpay/internal/platform/config"
	"poolpay/internal/platform/httpserver"
	"poolpay/internal/platform/logger"
	"poolpay/internal/platform/redis"
)

// main wires the payout pipeline: Redis ledger, wallet daemon client,
// optional Kafka event sink, ops HTTP surface, and the interval scheduler.
// Business logic lives in internal/payout.
func main() {
	cfg := config.FromEnv()
	log := logger.New()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	redisClient, err := redis.New(ctx, cfg.Redis)
	if err != nil {
		log.Error("failed to connect to redis", "error", err)
		os.Exit(1)
	}
	defer redisClient.Close()

	keys := models.NewKeys(cfg.Payments.Coin)
	store := redisstore.New(redisClient.Client, keys)
	walletClient := wallet.New(cfg.Wallet.URL, cfg.Wallet.Timeout)

	opts := []payout.Option{
		payout.WithLogger(log),
		payout.WithMetrics(metrics.New()),
	}
	if len(cfg.Events.Brokers) > 0 {
		publisher, err := events.New(cfg.Events.Brokers, cfg.Events.Topic, events.WithLogger(log))
		if err != nil {
			log.Error("failed to connect to kafka", "error", err)
			os.Exit(1)
		}
		defer publisher.Close()
		opts = append(opts, payout.WithEvents(publisher))
	}

	svc, err := payout.New(store, walletClient, keys, payout.Config{
		MinPayment:     cfg.Payments.MinPayment,
		Denomination:   cfg.Payments.Denomination,
		MaxAddresses:   cfg.Payments.MaxAddresses,
		MaxTxAmount:    cfg.Payments.MaxTxAmount,
		TransferFee:    cfg.Payments.TransferFee,
		Mixin:          cfg.Payments.Mixin,
		DynamicFee:     cfg.Payments.DynamicFee,
		MinerPayFee:    cfg.Payments.MinerPayFee,
		FeePerPayee:    cfg.Payments.FeePerPayee,
		MaxConcurrency: cfg.Payments.MaxConcurrency,
	}, opts...)
	if err != nil {
		log.Error("failed to build payout service", "error", err)
		os.Exit(1)
	}

	handler := httpapi.NewHandler(store, redisClient, log)
	srv := httpserver.New(cfg.Server.Addr, httpapi.NewRouter(handler))

	go func() {
		log.Info("ops server listening", "addr", cfg.Server.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("ops server error", "error", err)
		}
	}()

	runner := scheduler.New(cfg.Payments.Interval, svc.Run, scheduler.WithLogger(log))
	log.Info("payout scheduler started",
		"coin", cfg.Payments.Coin,
		"interval", cfg.Payments.Interval.String(),
	)
	if err := runner.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		log.Error("scheduler stopped", "error", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("graceful shutdown failed", "error", err)
	}
}

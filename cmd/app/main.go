package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/virelli/ArenaForge_Go/internal/account"
	"github.com/virelli/ArenaForge_Go/internal/concurrency"
	"github.com/virelli/ArenaForge_Go/internal/config"
	"github.com/virelli/ArenaForge_Go/internal/database"
	"github.com/virelli/ArenaForge_Go/internal/database/postgres"
	"github.com/virelli/ArenaForge_Go/internal/logger"
	"github.com/virelli/ArenaForge_Go/internal/scheduler"
	"github.com/virelli/ArenaForge_Go/internal/server"
	"github.com/virelli/ArenaForge_Go/internal/worker"
)

const (
	shutdownTimeout = 15 * time.Second

	poolWorkers   = 2
	poolQueueSize = 16
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Configuration failed", "error", err)
		os.Exit(1)
	}

	warnings, err := config.ValidateEnvWithWarnings()
	if err != nil {
		slog.Error("Environment validation failed", "error", err)
		os.Exit(1)
	}

	log := logger.InitLogger(logger.NewConfig(
		cfg.LogLevel,
		cfg.LogFormat,
		cfg.ServiceName,
		cfg.Version,
		cfg.Environment,
		false,
	))
	for _, w := range warnings {
		log.Warn(w)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	dbPool, err := database.NewPool(cfg.GetDBConnString(), cfg.DBMaxConns, cfg.DBMaxConnIdleTime, cfg.DBMaxConnLifetime)
	if err != nil {
		log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	if err := postgres.InitSchema(ctx, dbPool); err != nil {
		log.Error("Failed to initialize schema", "error", err)
		os.Exit(1)
	}

	accountRepo := postgres.NewAccountRepository(dbPool)
	battleRepo := postgres.NewBattleRepository(dbPool)

	locks := concurrency.NewLockManager()
	accountService := account.NewService(accountRepo, battleRepo, locks)

	// Background maintenance: energy top-ups on a fixed interval, daily
	// reward flag reset at midnight UTC.
	pool := worker.NewPool(poolWorkers, poolQueueSize)
	pool.Start()

	sched := scheduler.New(pool)
	sched.Schedule(cfg.EnergyRestoreInterval, worker.NewEnergyRestoreJob(accountRepo))

	dailyReset := worker.NewDailyResetWorker(accountRepo)
	dailyReset.Start()

	srv := server.NewServer(cfg.Port, dbPool, accountService)

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- srv.Start()
	}()

	select {
	case err := <-serverErr:
		log.Error("Server failed", "error", err)
	case <-ctx.Done():
		log.Info("Shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Stop(shutdownCtx); err != nil {
		log.Error("Server shutdown failed", "error", err)
	}
	if err := dailyReset.Shutdown(shutdownCtx); err != nil {
		log.Error("Daily reset worker shutdown failed", "error", err)
	}
	sched.Stop()
	pool.Stop()

	log.Info("Shutdown complete")
}

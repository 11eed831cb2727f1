package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/CircuitLab-25-26J-339/circuit-sim-backend/config"
	"github.com/CircuitLab-25-26J-339/circuit-sim-backend/internal/bootstrap"
	"github.com/CircuitLab-25-26J-339/circuit-sim-backend/internal/circuit/repository"
	"github.com/CircuitLab-25-26J-339/circuit-sim-backend/internal/live"
	"github.com/redis/go-redis/v9"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	bootstrap.SetGinMode(cfg.App.Environment)
	logger := newLogger(cfg.App.LogLevel)

	// Redis is optional: without it the API still validates and solves,
	// it just skips run bookkeeping and live readings.
	var rdb *redis.Client
	rdb, err = bootstrap.OpenRedis(context.Background(), bootstrap.RedisOptions{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		log.Printf("redis unavailable, run history and live readings disabled: %v", err)
		rdb = nil
	}

	var runRepo *repository.RunRepository
	if rdb != nil {
		runRepo = repository.NewRunRepository(rdb)
	}

	liveManager := live.NewManager(runRepo, logger)
	liveManager.TuneSolver(cfg.Solver.MaxIterations, cfg.Solver.Tolerance)
	scheduler := live.NewScheduler(liveManager)
	scheduler.Start()
	defer scheduler.Stop()

	r := bootstrap.BuildRouter(bootstrap.RouterDeps{
		ServiceName: "circuit-sim-backend",
		Version:     cfg.App.Version,
		Redis:       rdb,
		Logger:      logger,
		LiveManager: liveManager,

		SolverMaxIterations: cfg.Solver.MaxIterations,
		SolverTolerance:     cfg.Solver.Tolerance,
	})

	log.Printf("listening on :%s", cfg.Server.Port)
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		log.Fatalf("server: %v", err)
	}
}

func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
}

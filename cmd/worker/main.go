package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/curation-microservice/internal/config"
	"github.com/curation-microservice/internal/pkg/logger"
	"github.com/curation-microservice/internal/repository/cache"
	redisRepo "github.com/curation-microservice/internal/repository/redis"
	"github.com/curation-microservice/internal/worker"
	"github.com/curation-microservice/internal/worker/like"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	log, err := logger.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	if !cfg.Worker.Enabled {
		log.Info("Worker disabled by configuration, exiting")
		return
	}

	log.Info("Starting Curation Worker",
		zap.String("consumer_group", cfg.Worker.ConsumerGroup))

	redisClient, err := cache.NewRedis(&cfg.Redis, log)
	if err != nil {
		log.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			log.Error("Failed to close Redis connection", zap.Error(err))
		}
	}()

	cacheRepo := cache.NewCacheRepository(redisClient)
	streamRepo := redisRepo.NewStreamRepository(redisClient.Client(), log)

	manager := worker.NewWorkerManager(log)
	manager.Register(like.NewInvalidationWorker(
		streamRepo,
		cacheRepo,
		cfg.Worker.ConsumerGroup,
		log,
	))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := manager.Start(ctx); err != nil {
		log.Fatal("Failed to start workers", zap.Error(err))
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down workers...")
	cancel()

	if err := manager.Stop(); err != nil {
		log.Error("Worker shutdown failed", zap.Error(err))
	}

	log.Info("Workers stopped")
}

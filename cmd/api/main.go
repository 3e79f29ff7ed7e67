package main

// @title Curation Microservice API
// @version 1.0.0
// @description Service for registering places, curating ordered routes of places inside districts, and liking either. All listings are paginated and enriched with like counts and the viewer's liked flag in a constant number of store queries per page.

// @contact.name API Support

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	_ "github.com/curation-microservice/docs/swagger"
	"github.com/curation-microservice/internal/config"
	httpDelivery "github.com/curation-microservice/internal/delivery/http"
	"github.com/curation-microservice/internal/delivery/http/handler"
	"github.com/curation-microservice/internal/pkg/logger"
	"github.com/curation-microservice/internal/repository/cache"
	"github.com/curation-microservice/internal/repository/postgres"
	redisRepo "github.com/curation-microservice/internal/repository/redis"
	"github.com/curation-microservice/internal/usecase"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting Curation Microservice")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
	)

	// 3. Connect to PostgreSQL
	db, err := postgres.New(&cfg.Database, log)
	if err != nil {
		log.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Failed to close PostgreSQL connection", zap.Error(err))
		}
	}()

	// 4. Connect to Redis
	redisClient, err := cache.NewRedis(&cfg.Redis, log)
	if err != nil {
		log.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			log.Error("Failed to close Redis connection", zap.Error(err))
		}
	}()

	// 5. Health checks
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.Health(ctx); err != nil {
		log.Fatal("PostgreSQL health check failed", zap.Error(err))
	}
	if err := redisClient.Health(ctx); err != nil {
		log.Fatal("Redis health check failed", zap.Error(err))
	}

	log.Info("All connections healthy")

	// 6. Initialize repositories
	placeRepo := postgres.NewPlaceRepository(db)
	routeRepo := postgres.NewRouteRepository(db)
	likeRepo := postgres.NewLikeRepository(db)
	followRepo := postgres.NewFollowRepository(db)
	cacheRepo := cache.NewCacheRepository(redisClient)
	streamRepo := redisRepo.NewStreamRepository(redisClient.Client(), log)

	log.Info("Repositories initialized")

	// 7. Initialize use cases
	enricher := usecase.NewLikeEnricher(likeRepo, log)

	placeUC := usecase.NewPlaceUseCase(
		placeRepo,
		cacheRepo,
		enricher,
		log,
		cfg.Curation.MainCuratorID,
		cfg.Cache.ListingCacheTTL,
	)

	routeUC := usecase.NewRouteUseCase(
		routeRepo,
		placeRepo,
		cacheRepo,
		enricher,
		log,
		cfg.Cache.ListingCacheTTL,
	)

	likeUC := usecase.NewLikeUseCase(likeRepo, streamRepo, enricher, log)
	feedUC := usecase.NewFeedUseCase(followRepo, enricher, log)

	log.Info("Use cases initialized")

	// 8. Initialize HTTP handlers
	placeHandler := handler.NewPlaceHandler(placeUC, log)
	routeHandler := handler.NewRouteHandler(routeUC, log)
	likeHandler := handler.NewLikeHandler(likeUC, log)
	feedHandler := handler.NewFeedHandler(feedUC, log)

	log.Info("HTTP handlers initialized")

	// 9. Initialize HTTP server
	server := httpDelivery.NewServer(
		cfg,
		log,
		placeHandler,
		routeHandler,
		likeHandler,
		feedHandler,
	)

	// 10. Start server in goroutine
	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started successfully",
		zap.String("address", cfg.GetServerAddr()),
		zap.String("env", cfg.Server.Env),
	)

	// 11. Wait for shutdown signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("Server shutdown failed", zap.Error(err))
	}

	log.Info("Server stopped")
}

package like

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/curation-microservice/internal/domain"
	"github.com/curation-microservice/internal/domain/repository"
	"github.com/curation-microservice/internal/worker"
)

const (
	maxBatchSize    = 20
	emptyQueueSleep = 100 * time.Millisecond
)

// Cache key prefixes kept in sync with the listing usecases: a like
// toggle shifts like-sorted pages, so cached anonymous listings of the
// affected kind are dropped eagerly instead of waiting for TTL expiry.
const (
	placeListingPrefix = "places:district"
	routeListingPrefix = "routes:district"
)

// InvalidationWorker consumes like events and invalidates the cached
// listing pages the liked target can appear on.
type InvalidationWorker struct {
	*worker.BaseWorker
	streamRepo   repository.StreamRepository
	cacheRepo    repository.CacheRepository
	consumerName string
}

func NewInvalidationWorker(
	streamRepo repository.StreamRepository,
	cacheRepo repository.CacheRepository,
	consumerGroup string,
	logger *zap.Logger,
) *InvalidationWorker {
	hostname, _ := os.Hostname()
	consumerName := fmt.Sprintf("%s-%d", hostname, os.Getpid())

	return &InvalidationWorker{
		BaseWorker:   worker.NewBaseWorker("like-invalidation", consumerGroup, logger),
		streamRepo:   streamRepo,
		cacheRepo:    cacheRepo,
		consumerName: consumerName,
	}
}

func (w *InvalidationWorker) Start(ctx context.Context) error {
	logger := w.Logger()
	logger.Info("Starting InvalidationWorker",
		zap.String("consumer_group", w.ConsumerGroup()),
		zap.String("consumer_name", w.consumerName))

	if err := w.streamRepo.CreateConsumerGroup(ctx, domain.StreamLikeEvents, w.ConsumerGroup()); err != nil {
		logger.Error("Failed to create consumer group", zap.Error(err))
		return fmt.Errorf("failed to create consumer group: %w", err)
	}

	for {
		select {
		case <-w.StopChan():
			logger.Info("Worker stopped")
			return nil

		case <-ctx.Done():
			logger.Info("Context cancelled")
			return ctx.Err()

		default:
			processed, err := w.processBatch(ctx)
			if err != nil {
				logger.Error("Failed to process batch", zap.Error(err))
				time.Sleep(time.Second)
				continue
			}

			if processed == 0 {
				time.Sleep(emptyQueueSleep)
			}
		}
	}
}

// processBatch drains up to maxBatchSize events and performs one
// invalidation per affected target kind, not one per event.
func (w *InvalidationWorker) processBatch(ctx context.Context) (int, error) {
	logger := w.Logger()

	messages, err := w.streamRepo.ConsumeBatch(
		ctx,
		domain.StreamLikeEvents,
		w.ConsumerGroup(),
		w.consumerName,
		maxBatchSize,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to consume batch: %w", err)
	}

	if len(messages) == 0 {
		return 0, nil
	}

	kinds := map[domain.LikeTargetKind]bool{}
	for _, msg := range messages {
		var event domain.LikeEvent
		if err := json.Unmarshal([]byte(msg.Data), &event); err != nil {
			logger.Warn("Failed to parse like event, skipping",
				zap.String("message_id", msg.ID),
				zap.Error(err))
			// Ack the broken message so it does not wedge the group.
			_ = w.streamRepo.AckMessage(ctx, domain.StreamLikeEvents, w.ConsumerGroup(), msg.ID)
			continue
		}
		kinds[event.TargetKind] = true
	}

	if kinds[domain.LikeTargetPlace] {
		if err := w.cacheRepo.DeleteByPrefix(ctx, placeListingPrefix); err != nil {
			logger.Warn("Failed to invalidate place listings", zap.Error(err))
		}
	}
	if kinds[domain.LikeTargetRoute] {
		if err := w.cacheRepo.DeleteByPrefix(ctx, routeListingPrefix); err != nil {
			logger.Warn("Failed to invalidate route listings", zap.Error(err))
		}
	}

	for _, msg := range messages {
		if err := w.streamRepo.AckMessage(ctx, domain.StreamLikeEvents, w.ConsumerGroup(), msg.ID); err != nil {
			logger.Warn("Failed to ack message",
				zap.String("message_id", msg.ID),
				zap.Error(err))
		}
	}

	logger.Debug("Processed like events", zap.Int("count", len(messages)))
	return len(messages), nil
}

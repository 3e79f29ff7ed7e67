package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/curation-microservice/internal/domain"
	"github.com/curation-microservice/internal/domain/repository"
)

type streamRepository struct {
	client *redis.Client
	logger *zap.Logger
}

func NewStreamRepository(client *redis.Client, logger *zap.Logger) repository.StreamRepository {
	return &streamRepository{
		client: client,
		logger: logger,
	}
}

func (r *streamRepository) CreateConsumerGroup(ctx context.Context, stream, group string) error {
	// Start the group at "$" (new messages only); MKSTREAM creates the
	// stream if it does not exist yet.
	err := r.client.XGroupCreateMkStream(ctx, stream, group, "$").Err()
	if err != nil {
		// BUSYGROUP means the group already exists.
		if err.Error() == "BUSYGROUP Consumer Group name already exists" {
			r.logger.Debug("Consumer group already exists",
				zap.String("stream", stream),
				zap.String("group", group))
			return nil
		}
		r.logger.Error("Failed to create consumer group",
			zap.String("stream", stream),
			zap.String("group", group),
			zap.Error(err))
		return fmt.Errorf("failed to create consumer group: %w", err)
	}

	r.logger.Info("Consumer group created",
		zap.String("stream", stream),
		zap.String("group", group))
	return nil
}

func (r *streamRepository) ConsumeBatch(
	ctx context.Context,
	stream, group, consumer string,
	count int,
) ([]domain.StreamMessage, error) {
	result, err := r.client.XReadGroup(ctx, &redis.XReadGroupArgs{
		Group:    group,
		Consumer: consumer,
		Streams:  []string{stream, ">"},
		Count:    int64(count),
		Block:    time.Second,
	}).Result()

	if err != nil {
		if err == redis.Nil {
			return nil, nil // nothing pending
		}
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		r.logger.Error("Failed to read from stream",
			zap.String("stream", stream),
			zap.Error(err))
		return nil, fmt.Errorf("failed to read from stream: %w", err)
	}

	var messages []domain.StreamMessage
	for _, s := range result {
		for _, msg := range s.Messages {
			data, ok := msg.Values["data"].(string)
			if !ok {
				r.logger.Warn("Message does not contain 'data' field",
					zap.String("message_id", msg.ID))
				continue
			}
			messages = append(messages, domain.StreamMessage{
				ID:   msg.ID,
				Data: data,
			})
		}
	}

	return messages, nil
}

func (r *streamRepository) AckMessage(ctx context.Context, stream, group, messageID string) error {
	err := r.client.XAck(ctx, stream, group, messageID).Err()
	if err != nil {
		r.logger.Error("Failed to acknowledge message",
			zap.String("stream", stream),
			zap.String("group", group),
			zap.String("message_id", messageID),
			zap.Error(err))
		return fmt.Errorf("failed to acknowledge message: %w", err)
	}

	r.logger.Debug("Message acknowledged",
		zap.String("message_id", messageID))
	return nil
}

func (r *streamRepository) Publish(ctx context.Context, stream string, data interface{}) error {
	jsonData, err := json.Marshal(data)
	if err != nil {
		r.logger.Error("Failed to marshal stream payload",
			zap.String("stream", stream),
			zap.Error(err))
		return fmt.Errorf("failed to marshal data: %w", err)
	}

	result, err := r.client.XAdd(ctx, &redis.XAddArgs{
		Stream: stream,
		Values: map[string]interface{}{
			"data": string(jsonData),
		},
	}).Result()

	if err != nil {
		r.logger.Error("Failed to publish to stream",
			zap.String("stream", stream),
			zap.Error(err))
		return fmt.Errorf("failed to publish to stream: %w", err)
	}

	r.logger.Debug("Message published to stream",
		zap.String("stream", stream),
		zap.String("message_id", result))
	return nil
}

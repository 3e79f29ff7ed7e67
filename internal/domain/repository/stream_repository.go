package repository

import (
	"context"

	"github.com/curation-microservice/internal/domain"
)

// StreamRepository publishes and consumes stream events through a
// consumer group.
type StreamRepository interface {
	CreateConsumerGroup(ctx context.Context, stream, group string) error

	// ConsumeBatch reads up to count pending messages without blocking
	// beyond a short poll.
	ConsumeBatch(ctx context.Context, stream, group, consumer string, count int) ([]domain.StreamMessage, error)

	AckMessage(ctx context.Context, stream, group, messageID string) error

	Publish(ctx context.Context, stream string, data interface{}) error
}

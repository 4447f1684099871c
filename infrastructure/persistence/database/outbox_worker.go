package database

import (
	"context"
	"fmt"
	"time"

	"github.com/xRenanMartins/ddd-tactical-modeling-and-patterns/infrastructure/persistence/retry"
	"github.com/xRenanMartins/ddd-tactical-modeling-and-patterns/pkg/logger"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// OutboxPublisher delivers a stored event envelope to the outside world
type OutboxPublisher interface {
	Publish(ctx context.Context, eventKind, payload string) error
}

// LoggingPublisher only logs the events it relays
type LoggingPublisher struct{}

func (p *LoggingPublisher) Publish(ctx context.Context, eventKind, payload string) error {
	logger.FromContext(ctx).Info("Outbox event published",
		zap.String("event_kind", eventKind),
		zap.String("payload", payload),
	)
	return nil
}

// RedisPublisher relays events with PUBLISH on a single channel
type RedisPublisher struct {
	client  redis.UniversalClient
	channel string
}

func NewRedisPublisher(client redis.UniversalClient, channel string) *RedisPublisher {
	return &RedisPublisher{client: client, channel: channel}
}

func (p *RedisPublisher) Publish(ctx context.Context, eventKind, payload string) error {
	if err := p.client.Publish(ctx, p.channel, payload).Err(); err != nil {
		return fmt.Errorf("publish %s to %s: %w", eventKind, p.channel, err)
	}
	return nil
}

// OutboxWorker polls the outbox and relays pending events
type OutboxWorker struct {
	repository   *OutboxRepository
	publisher    OutboxPublisher
	pollInterval time.Duration
	batchSize    int
	maxRetries   int
	publishRetry retry.Config
}

func NewOutboxWorker(
	repository *OutboxRepository,
	publisher OutboxPublisher,
	pollInterval time.Duration,
	batchSize int,
	maxRetries int,
) (*OutboxWorker, error) {
	if repository == nil {
		return nil, fmt.Errorf("outbox repository is required")
	}
	if publisher == nil {
		return nil, fmt.Errorf("outbox publisher is required")
	}
	if pollInterval <= 0 {
		return nil, fmt.Errorf("poll interval must be positive")
	}
	if batchSize <= 0 {
		return nil, fmt.Errorf("batch size must be positive")
	}
	if maxRetries <= 0 {
		return nil, fmt.Errorf("max retries must be positive")
	}

	publishRetry := retry.DefaultConfig
	publishRetry.RetryPredicate = func(error) bool { return true }

	return &OutboxWorker{
		repository:   repository,
		publisher:    publisher,
		pollInterval: pollInterval,
		batchSize:    batchSize,
		maxRetries:   maxRetries,
		publishRetry: publishRetry,
	}, nil
}

// SetPublishRetry overrides how often a single publish is attempted per poll
func (w *OutboxWorker) SetPublishRetry(config retry.Config) {
	w.publishRetry = config
}

// Run polls until ctx is cancelled
func (w *OutboxWorker) Run(ctx context.Context) error {
	ticker := time.NewTicker(w.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if _, err := w.ProcessBatch(ctx); err != nil {
				logger.Error("Outbox batch processing failed", zap.Error(err))
			}
		}
	}
}

// ProcessBatch relays one batch and returns how many events were published
func (w *OutboxWorker) ProcessBatch(ctx context.Context) (int, error) {
	events, err := w.repository.GetPendingEvents(ctx, w.batchSize)
	if err != nil {
		return 0, err
	}

	published := 0
	for _, event := range events {
		if err := w.repository.MarkEventProcessing(ctx, event.ID); err != nil {
			logger.Warn("Skip outbox event due to lock contention",
				zap.String("event_id", event.ID),
				zap.Error(err),
			)
			continue
		}

		err := retry.ExecuteWithRetry(ctx, w.publishRetry, func(ctx context.Context) error {
			return w.publisher.Publish(ctx, event.EventKind, event.Payload)
		})
		if err != nil {
			logger.Warn("Outbox event publish failed",
				zap.String("event_id", event.ID),
				zap.String("event_kind", event.EventKind),
				zap.Error(err),
			)
			if failErr := w.repository.MarkEventFailed(ctx, event.ID, w.maxRetries); failErr != nil {
				logger.Error("Failed to mark outbox event as failed",
					zap.String("event_id", event.ID),
					zap.Error(failErr),
				)
			}
			continue
		}

		if err := w.repository.MarkEventPublished(ctx, event.ID); err != nil {
			logger.Error("Failed to mark outbox event as published",
				zap.String("event_id", event.ID),
				zap.Error(err),
			)
			continue
		}
		published++
	}

	return published, nil
}

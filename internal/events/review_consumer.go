package events

import (
	"context"
	"encoding/json"

	"github.com/cleansync/service-booking/internal/kafka"
	"github.com/google/uuid"
	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// RatingService applies a submitted review rating to a provider profile.
type RatingService interface {
	ApplyReviewRating(ctx context.Context, providerID uuid.UUID, rating float64) error
}

// ReviewEventConsumer listens to review events and updates provider ratings.
type ReviewEventConsumer struct {
	consumer *kafka.Consumer
	service  RatingService
	logger   *zap.Logger
}

// NewReviewEventConsumer creates a new ReviewEventConsumer.
func NewReviewEventConsumer(
	brokers []string,
	groupID string,
	service RatingService,
	logger *zap.Logger,
) *ReviewEventConsumer {
	consumer := kafka.NewConsumer(brokers, groupID, TopicReviewEvents, logger)
	return &ReviewEventConsumer{
		consumer: consumer,
		service:  service,
		logger:   logger,
	}
}

// Start begins consuming review events. This blocks until the context is
// cancelled.
func (c *ReviewEventConsumer) Start(ctx context.Context) error {
	return c.consumer.Consume(ctx, c.handleMessage)
}

// Close closes the underlying Kafka consumer.
func (c *ReviewEventConsumer) Close() error {
	return c.consumer.Close()
}

func (c *ReviewEventConsumer) handleMessage(ctx context.Context, msg kafkago.Message) error {
	var cloudEvent kafka.CloudEvent
	if err := json.Unmarshal(msg.Value, &cloudEvent); err != nil {
		c.logger.Error("failed to parse cloud event from review topic",
			zap.Error(err),
			zap.String("raw", string(msg.Value)),
		)
		return nil // Don't retry malformed messages
	}

	switch cloudEvent.Type {
	case ReviewSubmitted:
		return c.handleReviewSubmitted(ctx, cloudEvent)
	default:
		c.logger.Debug("ignoring unhandled review event type",
			zap.String("type", cloudEvent.Type),
		)
		return nil
	}
}

func (c *ReviewEventConsumer) handleReviewSubmitted(ctx context.Context, cloudEvent kafka.CloudEvent) error {
	var evt ReviewSubmittedEvent
	if err := cloudEvent.ParseData(&evt); err != nil {
		c.logger.Error("failed to parse ReviewSubmittedEvent data",
			zap.Error(err),
		)
		return nil // Don't retry malformed data
	}

	c.logger.Info("processing review submitted event",
		zap.String("provider_id", evt.ProviderID.String()),
		zap.Float64("rating", evt.Rating),
	)

	if err := c.service.ApplyReviewRating(ctx, evt.ProviderID, evt.Rating); err != nil {
		c.logger.Error("failed to apply review rating",
			zap.String("provider_id", evt.ProviderID.String()),
			zap.Error(err),
		)
		return err
	}

	return nil
}

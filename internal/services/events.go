package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/umazing/store-dashboard-bff/internal/models"
)

type ProductEvent struct {
	Event string `json:"event"`
	ID    string `json:"id"`
	Name  string `json:"name,omitempty"`
	Slug  string `json:"slug,omitempty"`
}

// EventPublisher emits product lifecycle messages to Kafka so downstream
// consumers (analytics, stock alerts) can follow catalog changes. Publishing
// is best-effort: a broker failure is logged and never surfaced to the caller.
type EventPublisher struct {
	writer *kafka.Writer
}

// NewEventPublisher returns nil when no brokers are configured; a nil
// publisher is valid and publishes nothing.
func NewEventPublisher(brokers []string, topic string) *EventPublisher {
	if len(brokers) == 0 || topic == "" {
		return nil
	}

	w := kafka.NewWriter(kafka.WriterConfig{
		Brokers:  brokers,
		Topic:    topic,
		Balancer: &kafka.LeastBytes{},
	})

	return &EventPublisher{writer: w}
}

func (p *EventPublisher) ProductCreated(ctx context.Context, product models.Product) {
	p.publish(ctx, ProductEvent{
		Event: "product.created",
		ID:    product.ID,
		Name:  product.Name,
		Slug:  product.Slug,
	})
}

func (p *EventPublisher) ProductDeleted(ctx context.Context, id string) {
	p.publish(ctx, ProductEvent{
		Event: "product.deleted",
		ID:    id,
	})
}

func (p *EventPublisher) publish(ctx context.Context, event ProductEvent) {
	if p == nil || p.writer == nil {
		return
	}

	value, err := json.Marshal(event)
	if err != nil {
		zap.L().Warn("error marshaling product event", zap.Error(err))
		return
	}

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	err = p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.ID),
		Value: value,
	})
	if err != nil {
		zap.L().Warn("error writing product event to Kafka",
			zap.String("event", event.Event),
			zap.Error(err),
		)
	}
}

func (p *EventPublisher) Close() error {
	if p == nil || p.writer == nil {
		return nil
	}
	return p.writer.Close()
}

package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// Publisher writes customer CloudEvents to Kafka.
type Publisher struct {
	writer *kafkago.Writer
	source string
	logger *zap.Logger
}

// NewPublisher creates a Publisher for the customer events topic.
func NewPublisher(brokers []string, source string, logger *zap.Logger) *Publisher {
	writer := &kafkago.Writer{
		Addr:                   kafkago.TCP(brokers...),
		Topic:                  TopicCustomerEvents,
		Balancer:               &kafkago.LeastBytes{},
		AllowAutoTopicCreation: true,
		WriteTimeout:           10 * time.Second,
	}
	return &Publisher{writer: writer, source: source, logger: logger}
}

// Publish wraps the payload in a CloudEvent and writes it keyed by the
// entity id, so events for the same entity stay ordered.
func (p *Publisher) Publish(ctx context.Context, eventType, key string, data interface{}) error {
	event, err := NewCloudEvent(p.source, eventType, data)
	if err != nil {
		return err
	}
	value, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal cloud event: %w", err)
	}

	if err := p.writer.WriteMessages(ctx, kafkago.Message{
		Key:   []byte(key),
		Value: value,
	}); err != nil {
		return fmt.Errorf("failed to write message to %s: %w", TopicCustomerEvents, err)
	}

	p.logger.Debug("event published",
		zap.String("topic", TopicCustomerEvents),
		zap.String("event_type", eventType),
		zap.String("key", key),
	)
	return nil
}

// Close closes the underlying Kafka writer.
func (p *Publisher) Close() error {
	return p.writer.Close()
}

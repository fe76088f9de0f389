package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/SscSPs/remittance_pricing/internal/core/domain"
	portssvc "github.com/SscSPs/remittance_pricing/internal/core/ports/services"
	"github.com/segmentio/kafka-go"
)

// messageWriter is the part of *kafka.Writer the publisher needs.
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaOrderPublisher writes order events keyed by order id.
type KafkaOrderPublisher struct {
	writer messageWriter
}

var _ portssvc.OrderEventPublisher = (*KafkaOrderPublisher)(nil)

func NewKafkaOrderPublisher(brokers []string, topic string) *KafkaOrderPublisher {
	return &KafkaOrderPublisher{
		writer: &kafka.Writer{
			Addr:                   kafka.TCP(brokers...),
			Topic:                  topic,
			Balancer:               &kafka.LeastBytes{},
			AllowAutoTopicCreation: true,
		},
	}
}

func (k *KafkaOrderPublisher) PublishOrderPriced(ctx context.Context, order domain.Order) error {
	msg, err := json.Marshal(NewOrderPricedEvent(order))
	if err != nil {
		return fmt.Errorf("failed to marshal order event: %w", err)
	}

	if err := k.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(order.OrderID),
		Value: msg,
		Time:  time.Now(),
		Headers: []kafka.Header{
			{Key: "type", Value: []byte(OrderPricedEventType)},
		},
	}); err != nil {
		return fmt.Errorf("failed to publish order event: %w", err)
	}
	return nil
}

func (k *KafkaOrderPublisher) Close() error {
	return k.writer.Close()
}

// NoopPublisher drops events. Used when no brokers are configured.
type NoopPublisher struct{}

var _ portssvc.OrderEventPublisher = NoopPublisher{}

func (NoopPublisher) PublishOrderPriced(context.Context, domain.Order) error { return nil }

func (NoopPublisher) Close() error { return nil }

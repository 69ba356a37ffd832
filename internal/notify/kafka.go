package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/aaravmahajanofficial/ecommerce-analytics/internal/metrics"
	"github.com/aaravmahajanofficial/ecommerce-analytics/internal/models"
	"github.com/aaravmahajanofficial/ecommerce-analytics/internal/tracing"
	"github.com/segmentio/kafka-go"
)

// MessageWriter is the part of *kafka.Writer the notifier needs.
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// writerBatchTimeout bounds how long a publish waits for a batch to fill.
// Events are written one at a time from request paths.
const writerBatchTimeout = 10 * time.Millisecond

func NewKafkaWriter(brokers []string, topic string) *kafka.Writer {
	return &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireAll,
		BatchSize:    1,
		BatchTimeout: writerBatchTimeout,
	}
}

// KafkaNotifier publishes events as JSON keyed by SKU, so every event for a
// product lands on the same partition.
type KafkaNotifier struct {
	writer MessageWriter
}

func NewKafkaNotifier(writer MessageWriter) *KafkaNotifier {
	return &KafkaNotifier{writer: writer}
}

func (n *KafkaNotifier) NotifyLowStock(ctx context.Context, event models.LowStockEvent) error {

	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to encode low-stock event: %w", err)
	}

	msg := kafka.Message{
		Key:     []byte(event.SKU),
		Value:   payload,
		Headers: tracing.InjectKafkaHeaders(ctx, []kafka.Header{{Key: "event_type", Value: []byte("inventory.low_stock")}}),
	}

	if err := n.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("failed to publish low-stock event for %s: %w", event.SKU, err)
	}

	metrics.LowStockEvents.WithLabelValues("kafka", "delivered").Inc()

	return nil
}

func (n *KafkaNotifier) Close() error {
	return n.writer.Close()
}

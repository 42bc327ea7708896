package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/IBM/sarama"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"

	listdomain "github.com/ttkcys/milliyetciler/internal/list/domain"
	"github.com/ttkcys/milliyetciler/pkg/logger"
)

// Publisher wraps Kafka producer
type Publisher struct {
	producer sarama.SyncProducer
	brokers  []string
}

// NewPublisher creates a new Kafka publisher
func NewPublisher(brokers []string) (*Publisher, error) {
	config := sarama.NewConfig()
	config.Producer.Return.Successes = true
	config.Producer.Retry.Max = 3
	config.Producer.RequiredAcks = sarama.WaitForAll
	config.Producer.Compression = sarama.CompressionSnappy
	config.Producer.MaxMessageBytes = 1000000

	producer, err := sarama.NewSyncProducer(brokers, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create Kafka producer: %w", err)
	}

	logger.Logger.Info().
		Strs("brokers", brokers).
		Msg("Kafka publisher initialized")

	return &Publisher{
		producer: producer,
		brokers:  brokers,
	}, nil
}

// PublishItemAdded publishes a list item added event. Failures are
// logged, never propagated: list mutations do not depend on Kafka.
func (p *Publisher) PublishItemAdded(ctx context.Context, userID uint, kind listdomain.ListKind, itemID int64) {
	p.publish(ctx, EventTypeListItemAdded, userID, kind, itemID)
}

// PublishItemRemoved publishes a list item removed event
func (p *Publisher) PublishItemRemoved(ctx context.Context, userID uint, kind listdomain.ListKind, itemID int64) {
	p.publish(ctx, EventTypeListItemRemoved, userID, kind, itemID)
}

func (p *Publisher) publish(ctx context.Context, eventType string, userID uint, kind listdomain.ListKind, itemID int64) {
	tracer := otel.Tracer("kafka-publisher")
	ctx, span := tracer.Start(ctx, "kafka.publish."+eventType,
		trace.WithSpanKind(trace.SpanKindProducer),
		trace.WithAttributes(
			attribute.String("messaging.system", "kafka"),
			attribute.String("messaging.destination", TopicListChanged),
			attribute.String("messaging.destination_kind", "topic"),
			attribute.String("event.type", eventType),
			attribute.Int64("user.id", int64(userID)),
			attribute.String("list.kind", string(kind)),
			attribute.Int64("item.id", itemID),
		),
	)
	defer span.End()

	event := ListChangedEvent{
		EventID:   uuid.NewString(),
		EventType: eventType,
		UserID:    userID,
		Kind:      string(kind),
		ItemID:    itemID,
		Timestamp: time.Now(),
	}
	span.SetAttributes(attribute.String("event.id", event.EventID))

	eventBytes, err := json.Marshal(event)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to marshal event")
		logger.Logger.Error().Err(err).Msg("Failed to marshal list event")
		return
	}

	// Inject trace context into Kafka headers
	carrier := propagation.MapCarrier{}
	otel.GetTextMapPropagator().Inject(ctx, carrier)

	headers := []sarama.RecordHeader{
		{
			Key:   []byte("event_type"),
			Value: []byte(eventType),
		},
		{
			Key:   []byte("event_id"),
			Value: []byte(event.EventID),
		},
	}
	for key, value := range carrier {
		headers = append(headers, sarama.RecordHeader{
			Key:   []byte(key),
			Value: []byte(value),
		})
	}

	msg := &sarama.ProducerMessage{
		Topic:   TopicListChanged,
		Key:     sarama.StringEncoder(fmt.Sprintf("user_%d", userID)),
		Value:   sarama.ByteEncoder(eventBytes),
		Headers: headers,
	}

	partition, offset, err := p.producer.SendMessage(msg)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to send message")
		logger.Logger.Error().
			Err(err).
			Str("topic", TopicListChanged).
			Uint("user_id", userID).
			Str("trace_id", span.SpanContext().TraceID().String()).
			Msg("Failed to publish list event")
		return
	}

	span.SetAttributes(
		attribute.Int("messaging.kafka.partition", int(partition)),
		attribute.Int64("messaging.kafka.offset", offset),
	)
	span.SetStatus(codes.Ok, "Event published successfully")

	logger.Logger.Info().
		Str("event_id", event.EventID).
		Str("event_type", eventType).
		Str("topic", TopicListChanged).
		Int32("partition", partition).
		Int64("offset", offset).
		Uint("user_id", userID).
		Str("kind", string(kind)).
		Int64("item_id", itemID).
		Msg("List event published")
}

// Close closes the Kafka producer
func (p *Publisher) Close() error {
	if p.producer != nil {
		return p.producer.Close()
	}
	return nil
}

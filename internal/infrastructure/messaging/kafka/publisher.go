package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"restaurant/internal/domain/model"
	"restaurant/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type Publisher struct {
	writer messageWriter
	now    func() time.Time
	logger *zap.Logger
}

func NewPublisher(brokers []string, topic string, logger *zap.Logger) *Publisher {
	writer := &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireOne,
		AllowAutoTopicCreation: true,
	}
	return newPublisher(writer, logger)
}

func newPublisher(writer messageWriter, logger *zap.Logger) *Publisher {
	return &Publisher{writer: writer, now: time.Now, logger: logger}
}

func (p *Publisher) OrderAdded(ctx context.Context, order *model.Order) error {
	return p.publish(ctx, OrderEvent{
		Type:    EventOrderAdded,
		OrderID: order.ID,
		Order:   order,
	})
}

func (p *Publisher) OrderDeleted(ctx context.Context, id model.OrderID) error {
	return p.publish(ctx, OrderEvent{
		Type:    EventOrderDeleted,
		OrderID: id,
	})
}

func (p *Publisher) publish(ctx context.Context, event OrderEvent) error {
	event.EventID = uuid.NewString()
	event.OccurredAt = p.now().UTC()

	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	msg := kafka.Message{
		Key:   []byte(strconv.FormatInt(int64(event.OrderID), 10)),
		Value: payload,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte(event.Type)},
		},
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("failed to write message: %w", err)
	}

	p.logger.Debug("Order event published",
		zap.String("event_type", event.Type), zap.Int64("order_id", int64(event.OrderID)))
	return nil
}

func (p *Publisher) Close() error {
	return p.writer.Close()
}

// NopPublisher drops events; used when no broker is configured.
type NopPublisher struct{}

var _ repository.OrderEventPublisher = NopPublisher{}

func (NopPublisher) OrderAdded(context.Context, *model.Order) error { return nil }

func (NopPublisher) OrderDeleted(context.Context, model.OrderID) error { return nil }

func (NopPublisher) Close() error { return nil }

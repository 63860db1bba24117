package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"restaurant/internal/application/validation"
	"restaurant/internal/domain/model"
	"restaurant/internal/domain/repository"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

type messageReader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

func NewReader(brokers []string, topic, groupID string) *kafka.Reader {
	return kafka.NewReader(kafka.ReaderConfig{
		Brokers:  brokers,
		Topic:    topic,
		GroupID:  groupID,
		MinBytes: 1,
		MaxBytes: 10e6,
		MaxWait:  1 * time.Second,
	})
}

type retryBackoff struct {
	initial time.Duration
	max     time.Duration
}

var defaultRetryBackoff = retryBackoff{initial: 500 * time.Millisecond, max: 30 * time.Second}

// ConsumeOrders feeds place-order commands from the intake topic into the add
// order use case until ctx is cancelled. Malformed commands and unknown meals
// are committed and skipped. A storage failure blocks the partition: the same
// command is retried with backoff and nothing past it is committed until it
// succeeds.
func ConsumeOrders(ctx context.Context, wg *sync.WaitGroup, reader messageReader, addOrderUC repository.AddOrderUseCaseProvider, validator *validation.Validator, logger *zap.Logger) {
	consumeOrders(ctx, wg, reader, addOrderUC, validator, defaultRetryBackoff, logger)
}

func consumeOrders(ctx context.Context, wg *sync.WaitGroup, reader messageReader, addOrderUC repository.AddOrderUseCaseProvider, validator *validation.Validator, backoff retryBackoff, logger *zap.Logger) {
	defer wg.Done()
	defer func() {
		if err := reader.Close(); err != nil {
			logger.Error("Failed to close Kafka reader", zap.Error(err))
		}
	}()

	logger.Info("Starting Kafka order intake consumer")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				logger.Info("Kafka consumer context canceled, stopping...")
				return
			}
			logger.Error("Failed to fetch message from Kafka", zap.Error(err))
			continue
		}

		delay := backoff.initial
		for !handleMessage(ctx, msg, addOrderUC, validator, logger) {
			logger.Warn("Retrying place order command",
				zap.Int64("offset", msg.Offset), zap.Int("partition", msg.Partition), zap.Duration("delay", delay))

			timer := time.NewTimer(delay)
			select {
			case <-ctx.Done():
				timer.Stop()
				logger.Info("Kafka consumer context canceled, leaving message uncommitted", zap.Int64("offset", msg.Offset))
				return
			case <-timer.C:
			}
			delay = min(delay*2, backoff.max)
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			logger.Error("Failed to commit message", zap.Error(err), zap.Int64("offset", msg.Offset))
		}
	}
}

// handleMessage reports whether the message should be committed.
func handleMessage(ctx context.Context, msg kafka.Message, addOrderUC repository.AddOrderUseCaseProvider, validator *validation.Validator, logger *zap.Logger) bool {
	var cmd PlaceOrderCommand
	if err := json.Unmarshal(msg.Value, &cmd); err != nil {
		logger.Error("Failed to unmarshal place order command", zap.Error(err), zap.String("message", string(msg.Value)))
		return true
	}

	if err := validator.Struct(cmd); err != nil {
		logger.Info("Invalid place order command, skipping", zap.Error(err))
		return true
	}

	order, err := addOrderUC.Execute(ctx, cmd.TableID, cmd.MealID)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrUnknownMeal), errors.Is(err, model.ErrInvalidOrderData):
			logger.Info("Rejected place order command, skipping",
				zap.Uint32("table_id", uint32(cmd.TableID)), zap.Uint32("meal_id", uint32(cmd.MealID)), zap.Error(err))
			return true
		default:
			logger.Error("Failed to add order from Kafka",
				zap.Uint32("table_id", uint32(cmd.TableID)), zap.Uint32("meal_id", uint32(cmd.MealID)), zap.Error(err))
			return false
		}
	}

	logger.Info("Order processed from Kafka",
		zap.Int64("order_id", int64(order.ID)), zap.Uint32("table_id", uint32(order.TableID)))
	return true
}

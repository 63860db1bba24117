package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"restaurant/internal/domain/model"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeWriter struct {
	messages []kafka.Message
	err      error
	closed   bool
}

func (w *fakeWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	if w.err != nil {
		return w.err
	}
	w.messages = append(w.messages, msgs...)
	return nil
}

func (w *fakeWriter) Close() error {
	w.closed = true
	return nil
}

func newTestPublisher(w *fakeWriter) *Publisher {
	p := newPublisher(w, zap.NewNop())
	p.now = func() time.Time { return time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC) }
	return p
}

func decodeEvent(t *testing.T, msg kafka.Message) OrderEvent {
	t.Helper()
	var event OrderEvent
	require.NoError(t, json.Unmarshal(msg.Value, &event))
	return event
}

func TestPublisher_OrderAdded(t *testing.T) {
	t.Parallel()

	w := &fakeWriter{}
	p := newTestPublisher(w)

	addedAt := time.Date(2024, 6, 1, 11, 59, 0, 0, time.UTC)
	order := &model.Order{ID: 17, TableID: 4, MealID: 2, AddedAt: addedAt, ReadyAt: addedAt.Add(2 * time.Minute)}

	require.NoError(t, p.OrderAdded(context.Background(), order))
	require.Len(t, w.messages, 1)

	msg := w.messages[0]
	assert.Equal(t, "17", string(msg.Key))
	require.Len(t, msg.Headers, 1)
	assert.Equal(t, EventOrderAdded, string(msg.Headers[0].Value))

	event := decodeEvent(t, msg)
	assert.Equal(t, EventOrderAdded, event.Type)
	assert.Equal(t, model.OrderID(17), event.OrderID)
	require.NotNil(t, event.Order)
	assert.Equal(t, model.MealID(2), event.Order.MealID)
	assert.True(t, event.OccurredAt.Equal(time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)))

	_, err := uuid.Parse(event.EventID)
	assert.NoError(t, err)
}

func TestPublisher_OrderDeleted(t *testing.T) {
	t.Parallel()

	w := &fakeWriter{}
	p := newTestPublisher(w)

	require.NoError(t, p.OrderDeleted(context.Background(), 5))
	require.NoError(t, p.OrderDeleted(context.Background(), 5))
	require.Len(t, w.messages, 2)

	first := decodeEvent(t, w.messages[0])
	second := decodeEvent(t, w.messages[1])
	assert.Equal(t, EventOrderDeleted, first.Type)
	assert.Nil(t, first.Order)
	assert.NotEqual(t, first.EventID, second.EventID)
}

func TestPublisher_WriteFailure(t *testing.T) {
	t.Parallel()

	w := &fakeWriter{err: errors.New("broker unavailable")}
	p := newTestPublisher(w)

	err := p.OrderDeleted(context.Background(), 1)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "broker unavailable")
}

func TestPublisher_Close(t *testing.T) {
	t.Parallel()

	w := &fakeWriter{}
	require.NoError(t, newTestPublisher(w).Close())
	assert.True(t, w.closed)
}

func TestNopPublisher(t *testing.T) {
	t.Parallel()

	var p NopPublisher
	assert.NoError(t, p.OrderAdded(context.Background(), &model.Order{}))
	assert.NoError(t, p.OrderDeleted(context.Background(), 1))
	assert.NoError(t, p.Close())
}

package events

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/SscSPs/remittance_pricing/internal/core/domain"
	"github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingWriter struct {
	msgs   []kafka.Message
	err    error
	closed bool
}

func (w *recordingWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	if w.err != nil {
		return w.err
	}
	w.msgs = append(w.msgs, msgs...)
	return nil
}

func (w *recordingWriter) Close() error {
	w.closed = true
	return nil
}

func TestKafkaOrderPublisher_PublishOrderPriced(t *testing.T) {
	w := &recordingWriter{}
	p := &KafkaOrderPublisher{writer: w}

	order := domain.Order{
		OrderID:        "7f1c",
		UserID:         "user-1",
		AccountType:    domain.AccountPersonal,
		PairID:         7,
		PaymentAmount:  decimal.NewFromInt(1000),
		Rate:           decimal.NewFromInt(707),
		ReceivedAmount: decimal.NewFromInt(579740),
	}

	require.NoError(t, p.PublishOrderPriced(context.Background(), order))
	require.Len(t, w.msgs, 1)
	assert.Equal(t, []byte("7f1c"), w.msgs[0].Key)

	var event OrderPricedEvent
	require.NoError(t, json.Unmarshal(w.msgs[0].Value, &event))
	assert.Equal(t, OrderPricedEventType, event.Type)
	assert.Equal(t, "personal", event.AccountType)
	assert.True(t, event.Rate.Equal(decimal.NewFromInt(707)))

	require.NoError(t, p.Close())
	assert.True(t, w.closed)
}

func TestKafkaOrderPublisher_WriteError(t *testing.T) {
	p := &KafkaOrderPublisher{writer: &recordingWriter{err: errors.New("broker unavailable")}}

	err := p.PublishOrderPriced(context.Background(), domain.Order{OrderID: "x"})

	assert.ErrorContains(t, err, "broker unavailable")
}

func TestNoopPublisher(t *testing.T) {
	assert.NoError(t, NoopPublisher{}.PublishOrderPriced(context.Background(), domain.Order{}))
}

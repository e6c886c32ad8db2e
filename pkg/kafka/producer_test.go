package kafka

import (
	"context"
	"errors"
	"testing"
	"time"

	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingWriter struct {
	written  []kafkago.Message
	writeErr error
	closed   bool
}

func (w *recordingWriter) WriteMessages(_ context.Context, msgs ...kafkago.Message) error {
	if w.writeErr != nil {
		return w.writeErr
	}
	w.written = append(w.written, msgs...)
	return nil
}

func (w *recordingWriter) Close() error {
	w.closed = true
	return nil
}

func newTestProducer(w *recordingWriter) (*Producer, *[]string) {
	var topics []string
	p := NewProducer(Config{Brokers: []string{"localhost:9092"}})
	p.newWriter = func(topic string) writer {
		topics = append(topics, topic)
		return w
	}
	return p, &topics
}

func TestNewProducer_Defaults(t *testing.T) {
	p := NewProducer(Config{Brokers: []string{"kafka:9092"}})
	assert.Equal(t, 10*time.Millisecond, p.cfg.BatchTimeout)
	assert.Empty(t, p.writers)
}

func TestProducer_PublishConvertsHeaders(t *testing.T) {
	w := &recordingWriter{}
	p, _ := newTestProducer(w)

	err := p.Publish(context.Background(), "portfolio.events", Message{
		Key:     []byte("covenant-portfolio"),
		Value:   []byte(`{"high_count":2}`),
		Headers: map[string]string{"event_type": "portfolio.high_risk.detected"},
	})
	require.NoError(t, err)

	require.Len(t, w.written, 1)
	assert.Equal(t, []byte("covenant-portfolio"), w.written[0].Key)
	require.Len(t, w.written[0].Headers, 1)
	assert.Equal(t, "event_type", w.written[0].Headers[0].Key)
	assert.Equal(t, []byte("portfolio.high_risk.detected"), w.written[0].Headers[0].Value)
}

func TestProducer_ReusesWriterPerTopic(t *testing.T) {
	w := &recordingWriter{}
	p, topics := newTestProducer(w)

	ctx := context.Background()
	require.NoError(t, p.Publish(ctx, "a", Message{Value: []byte("1")}))
	require.NoError(t, p.Publish(ctx, "a", Message{Value: []byte("2")}))
	require.NoError(t, p.Publish(ctx, "b", Message{Value: []byte("3")}))

	assert.Equal(t, []string{"a", "b"}, *topics)
}

func TestProducer_PublishNothingSkipsWriter(t *testing.T) {
	w := &recordingWriter{}
	p, topics := newTestProducer(w)

	require.NoError(t, p.Publish(context.Background(), "a"))
	assert.Empty(t, *topics)
}

func TestProducer_PublishWrapsError(t *testing.T) {
	w := &recordingWriter{writeErr: errors.New("broker down")}
	p, _ := newTestProducer(w)

	err := p.Publish(context.Background(), "portfolio.events", Message{Value: []byte("x")})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "kafka publish to portfolio.events")
	assert.ErrorIs(t, err, w.writeErr)
}

func TestProducer_CloseClosesWriters(t *testing.T) {
	w := &recordingWriter{}
	p, _ := newTestProducer(w)
	require.NoError(t, p.Publish(context.Background(), "a", Message{Value: []byte("1")}))

	require.NoError(t, p.Close())
	assert.True(t, w.closed)
	assert.Empty(t, p.writers)
}

func TestParseBrokers(t *testing.T) {
	tests := []struct {
		raw  string
		want []string
	}{
		{"", nil},
		{"kafka:9092", []string{"kafka:9092"}},
		{"a:9092, b:9092,,", []string{"a:9092", "b:9092"}},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseBrokers(tt.raw))
		})
	}
}

// Package kafka publishes order events and customer notifications to Kafka.
//
// Every topic gets its own writer behind a circuit breaker. While a broker is
// unreachable the breaker opens and writes fail fast with gobreaker.ErrOpenState
// instead of blocking the request that triggered them.
package kafka

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"time"

	"catering/internal/pkg/metrics"

	"github.com/segmentio/kafka-go"
	gobreaker "github.com/sony/gobreaker/v2"
)

// messageWriter is the part of *kafka.Writer the adapters use.
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// ParseBrokers splits a comma separated broker list, dropping blanks.
func ParseBrokers(csv string) []string {
	brokers := make([]string, 0)
	for _, b := range strings.Split(csv, ",") {
		if b = strings.TrimSpace(b); b != "" {
			brokers = append(brokers, b)
		}
	}
	return brokers
}

// NewWriter returns a writer keyed by message key, so all messages of one
// order land on the same partition in order.
func NewWriter(brokers []string, topic string) *kafka.Writer {
	return &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireOne,
		WriteTimeout: 5 * time.Second,
	}
}

// BreakerSettings tunes the circuit breaker in front of a writer.
type BreakerSettings struct {
	// ConsecutiveFailures opens the breaker.
	ConsecutiveFailures uint32
	// OpenTimeout is how long the breaker stays open before probing again.
	OpenTimeout time.Duration
}

func DefaultBreakerSettings() BreakerSettings {
	return BreakerSettings{
		ConsecutiveFailures: 5,
		OpenTimeout:         30 * time.Second,
	}
}

type guardedWriter struct {
	topic  string
	writer messageWriter
	cb     *gobreaker.CircuitBreaker[struct{}]
}

func newGuardedWriter(
	topic string,
	writer messageWriter,
	settings BreakerSettings,
	m *metrics.Metrics,
	logger *slog.Logger,
) *guardedWriter {
	if m != nil {
		m.BrokerBreakerState.WithLabelValues(topic).Set(stateValue(gobreaker.StateClosed))
	}

	cb := gobreaker.NewCircuitBreaker[struct{}](gobreaker.Settings{
		Name:        topic,
		MaxRequests: 1,
		Timeout:     settings.OpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= settings.ConsecutiveFailures
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("kafka breaker state changed",
				"topic", name,
				"from", from.String(),
				"to", to.String(),
			)
			if m != nil {
				m.BrokerBreakerState.WithLabelValues(name).Set(stateValue(to))
			}
		},
	})

	return &guardedWriter{
		topic:  topic,
		writer: writer,
		cb:     cb,
	}
}

// writeJSON marshals every payload and writes them as one batch under key.
func (w *guardedWriter) writeJSON(ctx context.Context, msgs []keyedPayload) error {
	batch := make([]kafka.Message, 0, len(msgs))
	for _, msg := range msgs {
		data, err := json.Marshal(msg.payload)
		if err != nil {
			return err
		}
		batch = append(batch, kafka.Message{
			Key:   []byte(msg.key),
			Value: data,
			Time:  time.Now().UTC(),
		})
	}

	_, err := w.cb.Execute(func() (struct{}, error) {
		return struct{}{}, w.writer.WriteMessages(ctx, batch...)
	})
	return err
}

func (w *guardedWriter) close() error {
	return w.writer.Close()
}

type keyedPayload struct {
	key     string
	payload any
}

func stateValue(s gobreaker.State) float64 {
	switch s {
	case gobreaker.StateClosed:
		return 0
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return 0
	}
}

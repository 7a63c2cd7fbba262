// Package logsink writes notifications and order events to the structured log.
// It stands in for Kafka when no brokers are configured.
package logsink

import (
	"context"
	"log/slog"

	"catering/internal/core/domain/model/order"
	"catering/internal/core/ports"
)

type Sink struct {
	logger *slog.Logger
}

func New(logger *slog.Logger) *Sink {
	return &Sink{logger: logger.With("component", "logsink")}
}

func (s *Sink) Notify(ctx context.Context, n ports.Notification) error {
	attrs := []any{
		"type", string(n.Type),
		"order_id", n.OrderID.String(),
		"customer_id", n.CustomerID.String(),
	}
	for k, v := range n.Payload {
		attrs = append(attrs, slog.String("payload."+k, v))
	}
	s.logger.InfoContext(ctx, "notification", attrs...)
	return nil
}

func (s *Sink) Publish(ctx context.Context, events ...order.Event) error {
	for _, e := range events {
		s.logger.InfoContext(ctx, "order event",
			"type", string(e.Type),
			"order_id", e.OrderID.String(),
			"from", e.From.String(),
			"to", e.To.String(),
			"stock_released", e.StockReleased,
		)
	}
	return nil
}

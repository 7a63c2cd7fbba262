package kafka

import (
	"context"
	"log/slog"
	"time"

	"catering/internal/core/domain/model/order"
	"catering/internal/pkg/metrics"
)

// orderEventMessage is the value of a message on the order events topic.
type orderEventMessage struct {
	ID              string    `json:"id"`
	Type            string    `json:"type"`
	OrderID         string    `json:"order_id"`
	CustomerID      string    `json:"customer_id"`
	MenuID          string    `json:"menu_id"`
	From            string    `json:"from,omitempty"`
	To              string    `json:"to"`
	LoanedEquipment bool      `json:"loaned_equipment"`
	StockReleased   bool      `json:"stock_released"`
	Total           string    `json:"total"`
	OccurredAt      time.Time `json:"occurred_at"`
}

func eventMessage(e order.Event) orderEventMessage {
	msg := orderEventMessage{
		ID:              e.ID.String(),
		Type:            string(e.Type),
		OrderID:         e.OrderID.String(),
		CustomerID:      e.CustomerID.String(),
		MenuID:          e.MenuID.String(),
		To:              e.To.String(),
		LoanedEquipment: e.LoanedEquipment,
		StockReleased:   e.StockReleased,
		Total:           e.Total.String(),
		OccurredAt:      e.OccurredAt.UTC(),
	}
	if e.From != order.Unknown {
		msg.From = e.From.String()
	}
	return msg
}

// EventPublisher implements ports.EventPublisher. Messages are keyed by order id.
type EventPublisher struct {
	w *guardedWriter
}

func NewEventPublisher(
	writer messageWriter,
	topic string,
	settings BreakerSettings,
	m *metrics.Metrics,
	logger *slog.Logger,
) *EventPublisher {
	return &EventPublisher{
		w: newGuardedWriter(topic, writer, settings, m, logger),
	}
}

func (p *EventPublisher) Publish(ctx context.Context, events ...order.Event) error {
	if len(events) == 0 {
		return nil
	}

	msgs := make([]keyedPayload, 0, len(events))
	for _, e := range events {
		msgs = append(msgs, keyedPayload{key: e.OrderID.String(), payload: eventMessage(e)})
	}
	return p.w.writeJSON(ctx, msgs)
}

func (p *EventPublisher) Close() error {
	return p.w.close()
}

package kafka

import (
	"context"
	"log/slog"

	"catering/internal/core/ports"
	"catering/internal/pkg/metrics"
)

type notificationMessage struct {
	Type       string            `json:"type"`
	OrderID    string            `json:"order_id"`
	CustomerID string            `json:"customer_id"`
	Payload    map[string]string `json:"payload"`
}

// Notifier implements ports.Notifier by handing notifications to the mailer
// through the notifications topic.
type Notifier struct {
	w *guardedWriter
}

func NewNotifier(
	writer messageWriter,
	topic string,
	settings BreakerSettings,
	m *metrics.Metrics,
	logger *slog.Logger,
) *Notifier {
	return &Notifier{
		w: newGuardedWriter(topic, writer, settings, m, logger),
	}
}

func (n *Notifier) Notify(ctx context.Context, notification ports.Notification) error {
	payload := notification.Payload
	if payload == nil {
		payload = map[string]string{}
	}

	return n.w.writeJSON(ctx, []keyedPayload{{
		key: notification.OrderID.String(),
		payload: notificationMessage{
			Type:       string(notification.Type),
			OrderID:    notification.OrderID.String(),
			CustomerID: notification.CustomerID.String(),
			Payload:    payload,
		},
	}})
}

func (n *Notifier) Close() error {
	return n.w.close()
}

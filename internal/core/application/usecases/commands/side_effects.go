package commands

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	"catering/internal/core/domain/model/order"
	"catering/internal/core/ports"
	"catering/internal/pkg/metrics"
)

// SideEffects runs the notifications and event publications that follow a
// successful commit. Failures are logged and counted and never reach the caller:
// the order change is already durable.
type SideEffects struct {
	notifier  ports.Notifier
	publisher ports.EventPublisher
	metrics   *metrics.Metrics
	logger    *slog.Logger
}

func NewSideEffects(
	notifier ports.Notifier,
	publisher ports.EventPublisher,
	m *metrics.Metrics,
	logger *slog.Logger,
) *SideEffects {
	return &SideEffects{
		notifier:  notifier,
		publisher: publisher,
		metrics:   m,
		logger:    logger.With("component", "side-effects"),
	}
}

func (s *SideEffects) publish(ctx context.Context, events []order.Event) {
	if len(events) == 0 {
		return
	}

	ctx = context.WithoutCancel(ctx)
	if err := s.publisher.Publish(ctx, events...); err != nil {
		s.metrics.SideEffectFailures.WithLabelValues("publish").Inc()
		s.logger.ErrorContext(ctx, "failed to publish order events",
			"order_id", events[0].OrderID.String(),
			"count", len(events),
			"error", err,
		)
	}
}

func (s *SideEffects) notify(ctx context.Context, n ports.Notification) bool {
	ctx = context.WithoutCancel(ctx)
	if err := s.notifier.Notify(ctx, n); err != nil {
		s.metrics.SideEffectFailures.WithLabelValues("notify").Inc()
		s.logger.ErrorContext(ctx, "failed to send notification",
			"type", string(n.Type),
			"order_id", n.OrderID.String(),
			"error", err,
		)
		return false
	}
	return true
}

func orderConfirmed(o *order.Order) ports.Notification {
	details := o.Details()

	return ports.Notification{
		Type:       ports.NotificationOrderConfirmed,
		OrderID:    o.ID(),
		CustomerID: o.CustomerID(),
		Payload: map[string]string{
			"customer_name": o.CustomerName(),
			"event_date":    details.EventDate().Format(time.DateOnly),
			"event_time":    details.EventTime(),
			"address":       details.Address().String(),
			"headcount":     strconv.Itoa(details.Headcount()),
			"total_price":   o.Quote().Total().String(),
		},
	}
}

func equipmentReturnReminder(o *order.Order) ports.Notification {
	return ports.Notification{
		Type:       ports.NotificationEquipmentReturnReminder,
		OrderID:    o.ID(),
		CustomerID: o.CustomerID(),
		Payload: map[string]string{
			"customer_name": o.CustomerName(),
			"event_date":    o.Details().EventDate().Format(time.DateOnly),
			"address":       o.Details().Address().String(),
		},
	}
}

func orderCompleted(o *order.Order) ports.Notification {
	return ports.Notification{
		Type:       ports.NotificationOrderCompleted,
		OrderID:    o.ID(),
		CustomerID: o.CustomerID(),
		Payload: map[string]string{
			"customer_name": o.CustomerName(),
			"menu_id":       o.MenuID().String(),
		},
	}
}

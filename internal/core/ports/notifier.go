package ports

import (
	"context"

	"catering/internal/core/domain/model/kernel"
	"catering/internal/core/domain/model/order"
)

type NotificationType string

const (
	NotificationOrderConfirmed          NotificationType = "order-confirmed"
	NotificationEquipmentReturnReminder NotificationType = "equipment-return-reminder"
	NotificationOrderCompleted          NotificationType = "order-completed"
)

// Notification asks a collaborator (the mailer) to contact a customer.
type Notification struct {
	Type       NotificationType
	OrderID    kernel.UUID
	CustomerID kernel.UUID
	Payload    map[string]string
}

// Notifier delivers notifications. Callers treat it as fire-and-forget:
// errors are logged, never propagated to the request that triggered them.
type Notifier interface {
	Notify(ctx context.Context, n Notification) error
}

// EventPublisher broadcasts order events to downstream consumers such as the
// statistics aggregator. It is only called after the unit of work commits.
type EventPublisher interface {
	Publish(ctx context.Context, events ...order.Event) error
}

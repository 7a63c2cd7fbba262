package order

import (
	"time"

	"catering/internal/core/domain/model/kernel"
)

type EventType string

const (
	EventPlaced        EventType = "order.placed"
	EventRevised       EventType = "order.revised"
	EventStatusChanged EventType = "order.status_changed"
	EventCancelled     EventType = "order.cancelled"
)

// Event is raised by the aggregate and dispatched only after the unit of work commits.
type Event struct {
	ID              kernel.UUID
	Type            EventType
	OrderID         kernel.UUID
	CustomerID      kernel.UUID
	MenuID          kernel.UUID
	From            Status
	To              Status
	LoanedEquipment bool
	StockReleased   bool
	Total           kernel.Money
	OccurredAt      time.Time
}

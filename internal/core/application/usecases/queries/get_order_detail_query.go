package queries

import (
	"errors"
	"time"

	"catering/internal/core/domain/model/kernel"
	"catering/internal/core/domain/model/order"
	"catering/internal/pkg/guard"
)

var ErrGetOrderDetailQueryIsNotConstructed = errors.New(
	"GetOrderDetailQuery must be created via NewGetOrderDetailQuery constructor",
)

// GetOrderDetailQuery reads one order with its full status history.
// The owner and staff may read it.
type GetOrderDetailQuery struct {
	actor   kernel.Actor
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetOrderDetailQuery(actor kernel.Actor, orderID kernel.UUID) (GetOrderDetailQuery, error) {
	if err := errors.Join(actor.Validate(), orderID.Validate()); err != nil {
		return GetOrderDetailQuery{}, err
	}

	return GetOrderDetailQuery{
		actor:   actor,
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (q GetOrderDetailQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderDetailQueryIsNotConstructed)
}

func (q GetOrderDetailQuery) Actor() kernel.Actor {
	return q.actor
}

func (q GetOrderDetailQuery) OrderID() kernel.UUID {
	return q.orderID
}

// HistoryEntry is one status change, oldest first in OrderDetail.History.
type HistoryEntry struct {
	Status     order.Status
	ActorID    *kernel.UUID
	Note       string
	RecordedAt time.Time
}

// CancellationSummary is present only on cancelled orders.
type CancellationSummary struct {
	ActorID     kernel.UUID
	ContactMode order.ContactMode
	Reason      string
	CreatedAt   time.Time
}

type OrderDetail struct {
	OrderSummary
	History      []HistoryEntry
	Cancellation *CancellationSummary
}

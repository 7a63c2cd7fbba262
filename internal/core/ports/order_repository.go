// Package ports defines the contracts between the catering domain and its infrastructure.
package ports

import (
	"context"

	"catering/internal/core/domain/model/kernel"
	"catering/internal/core/domain/model/order"
)

// OrderRepository persists order aggregates together with the history
// entries and cancellation record they accumulated.
type OrderRepository interface {
	// Add inserts a new order and its pending history.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update writes the order row, appends pending history and inserts the
	// cancellation record if the order was just cancelled. A second cancellation
	// record for the same order is reported as errs.ConflictError.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get loads an order without locking it.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetForUpdate loads an order and locks its row until the transaction ends,
	// so concurrent transitions on the same order are serialized.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAllAwaitingReturn lists WAITING_RETURN orders that have loaned equipment.
	GetAllAwaitingReturn(ctx context.Context) ([]*order.Order, error)
}

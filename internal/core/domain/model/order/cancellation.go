package order

import (
	"errors"
	"time"

	"catering/internal/core/domain/model/kernel"
)

// Cancellation records who cancelled an order, how the customer was contacted
// and why. An order has at most one.
type Cancellation struct {
	id          kernel.UUID
	orderID     kernel.UUID
	actorID     kernel.UUID
	contactMode ContactMode
	reason      string
	createdAt   time.Time
}

func RestoreCancellation(
	id, orderID, actorID kernel.UUID,
	contactMode ContactMode,
	reason string,
	createdAt time.Time,
) (*Cancellation, error) {
	if err := errors.Join(id.Validate(), orderID.Validate(), actorID.Validate(), contactMode.Validate()); err != nil {
		return nil, err
	}

	return &Cancellation{
		id:          id,
		orderID:     orderID,
		actorID:     actorID,
		contactMode: contactMode,
		reason:      reason,
		createdAt:   createdAt,
	}, nil
}

func (c *Cancellation) ID() kernel.UUID {
	return c.id
}

func (c *Cancellation) OrderID() kernel.UUID {
	return c.orderID
}

func (c *Cancellation) ActorID() kernel.UUID {
	return c.actorID
}

func (c *Cancellation) ContactMode() ContactMode {
	return c.contactMode
}

func (c *Cancellation) Reason() string {
	return c.reason
}

func (c *Cancellation) CreatedAt() time.Time {
	return c.createdAt
}

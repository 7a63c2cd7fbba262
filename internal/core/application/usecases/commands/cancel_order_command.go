package commands

import (
	"errors"
	"strings"

	"catering/internal/core/domain/model/kernel"
	"catering/internal/pkg/guard"
)

var ErrCancelOrderCommandIsNotConstructed = errors.New(
	"CancelOrderCommand must be created via NewCancelOrderCommand constructor",
)

// CancelOrderCommand cancels an order on behalf of a staff member who contacted
// the customer. The contact mode is kept raw so that a terminal order is
// reported as such before the mode is judged.
type CancelOrderCommand struct { //nolint:recvcheck //using for validation
	orderID     kernel.UUID
	actor       kernel.Actor
	contactMode string
	reason      string

	guard guard.ConstructorGuard
}

func NewCancelOrderCommand(
	orderID kernel.UUID,
	actor kernel.Actor,
	contactMode string,
	reason string,
) (CancelOrderCommand, error) {
	if err := errors.Join(orderID.Validate(), actor.Validate()); err != nil {
		return CancelOrderCommand{}, err
	}

	return CancelOrderCommand{
		orderID:     orderID,
		actor:       actor,
		contactMode: strings.TrimSpace(contactMode),
		reason:      strings.TrimSpace(reason),
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (c CancelOrderCommand) Validate() error {
	return c.guard.Validate(ErrCancelOrderCommandIsNotConstructed)
}

func (c CancelOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c CancelOrderCommand) Actor() kernel.Actor {
	return c.actor
}

func (c CancelOrderCommand) ContactMode() string {
	return c.contactMode
}

func (c CancelOrderCommand) Reason() string {
	return c.reason
}

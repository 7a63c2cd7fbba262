package commands

import (
	"errors"

	"catering/internal/core/domain/model/kernel"
	"catering/internal/core/domain/model/order"
	"catering/internal/pkg/guard"
)

var ErrUpdateOrderCommandIsNotConstructed = errors.New(
	"UpdateOrderCommand must be created via NewUpdateOrderCommand constructor",
)

// UpdateOrderCommand revises the details of a PLACED order. Fields left nil in
// the patch keep their current value.
type UpdateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	actor   kernel.Actor
	patch   order.DetailsPatch

	guard guard.ConstructorGuard
}

func NewUpdateOrderCommand(orderID kernel.UUID, actor kernel.Actor, patch order.DetailsPatch) (UpdateOrderCommand, error) {
	cmd := UpdateOrderCommand{
		patch: patch,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(orderID.Validate(), actor.Validate()); err != nil {
		return UpdateOrderCommand{}, err
	}
	cmd.orderID = orderID
	cmd.actor = actor

	return cmd, nil
}

func (c UpdateOrderCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderCommandIsNotConstructed)
}

func (c UpdateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c UpdateOrderCommand) Actor() kernel.Actor {
	return c.actor
}

func (c UpdateOrderCommand) Patch() order.DetailsPatch {
	return c.patch
}

package queries

import (
	"errors"

	"catering/internal/core/domain/model/kernel"
	"catering/internal/pkg/guard"
)

var ErrListMyOrdersQueryIsNotConstructed = errors.New(
	"ListMyOrdersQuery must be created via NewListMyOrdersQuery constructor",
)

// ListMyOrdersQuery lists the orders placed by the caller, newest first.
type ListMyOrdersQuery struct {
	actor kernel.Actor

	guard guard.ConstructorGuard
}

func NewListMyOrdersQuery(actor kernel.Actor) (ListMyOrdersQuery, error) {
	if err := actor.Validate(); err != nil {
		return ListMyOrdersQuery{}, err
	}

	return ListMyOrdersQuery{
		actor: actor,
		guard: guard.NewConstructorGuard(),
	}, nil
}

func (q ListMyOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListMyOrdersQueryIsNotConstructed)
}

func (q ListMyOrdersQuery) Actor() kernel.Actor {
	return q.actor
}

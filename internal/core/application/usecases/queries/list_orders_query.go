package queries

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"catering/internal/core/domain/model/kernel"
	"catering/internal/core/domain/model/order"
	"catering/internal/pkg/errs"
	"catering/internal/pkg/guard"
)

var ErrListOrdersQueryIsNotConstructed = errors.New(
	"ListOrdersQuery must be created via NewListOrdersQuery constructor",
)

// OrderFilter narrows the administrative order list. Zero fields do not filter.
// EventFrom and EventTo are inclusive calendar days.
type OrderFilter struct {
	Status       order.Status
	EventFrom    time.Time
	EventTo      time.Time
	City         string
	CustomerName string
}

// ListOrdersQuery lists every order matching the filter, newest first.
// Staff only.
//
// Example:
//
//	q, err := NewListOrdersQuery(admin, OrderFilter{Status: order.Placed, City: "Lyon"})
//	if err != nil {
//	    return err
//	}
//	orders, err := handler.Handle(ctx, q)
type ListOrdersQuery struct {
	actor  kernel.Actor
	filter OrderFilter

	guard guard.ConstructorGuard
}

func NewListOrdersQuery(actor kernel.Actor, filter OrderFilter) (ListOrdersQuery, error) {
	if err := actor.Validate(); err != nil {
		return ListOrdersQuery{}, err
	}

	filter.City = strings.TrimSpace(filter.City)
	filter.CustomerName = strings.TrimSpace(filter.CustomerName)

	if filter.Status != order.Unknown {
		if err := filter.Status.Validate(); err != nil {
			return ListOrdersQuery{}, err
		}
	}
	if !filter.EventFrom.IsZero() && !filter.EventTo.IsZero() && filter.EventTo.Before(filter.EventFrom) {
		return ListOrdersQuery{}, errs.NewValueIsInvalidErrorWithCause(
			"event date range",
			fmt.Errorf("%s is before %s", filter.EventTo.Format(time.DateOnly), filter.EventFrom.Format(time.DateOnly)),
		)
	}

	return ListOrdersQuery{
		actor:  actor,
		filter: filter,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

func (q ListOrdersQuery) Actor() kernel.Actor {
	return q.actor
}

func (q ListOrdersQuery) Filter() OrderFilter {
	return q.filter
}

package order

import (
	"fmt"
	"slices"
	"strings"

	"catering/internal/pkg/errs"
)

// Status is the lifecycle state of an order.
//
//	PLACED ──> ACCEPTED ──> PREPARING ──> DELIVERING ──> DELIVERED ──┬──> WAITING_RETURN ──> COMPLETED
//	   │           │                                                 └──────────────────────> COMPLETED
//	   └───────────┴──> CANCELLED
//
// COMPLETED and CANCELLED are terminal. WAITING_RETURN is only reachable when
// the order has loaned equipment.
type Status int

const (
	// Unknown catches uninitialised values.
	Unknown Status = iota
	Placed
	Accepted
	Preparing
	Delivering
	Delivered
	WaitingReturn
	Completed
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:       "UNKNOWN",
		Placed:        "PLACED",
		Accepted:      "ACCEPTED",
		Preparing:     "PREPARING",
		Delivering:    "DELIVERING",
		Delivered:     "DELIVERED",
		WaitingReturn: "WAITING_RETURN",
		Completed:     "COMPLETED",
		Cancelled:     "CANCELLED",
	}
}

// Statuses lists every valid status in lifecycle order.
func Statuses() []Status {
	return []Status{Placed, Accepted, Preparing, Delivering, Delivered, WaitingReturn, Completed, Cancelled}
}

// ParseStatus accepts wire names case-insensitively.
func ParseStatus(s string) (Status, error) {
	name := strings.ToUpper(strings.TrimSpace(s))
	for _, status := range Statuses() {
		if status.String() == name {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", s))
}

func (s Status) Validate() error {
	if s < Placed || s > Cancelled {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// IsTerminal reports whether no transition can leave s.
func (s Status) IsTerminal() bool {
	return s == Completed || s == Cancelled
}

// RefundsStock reports whether cancelling from s gives the reserved menu unit back.
// Once an order has been dispatched the unit is consumed.
func (s Status) RefundsStock() bool {
	switch s {
	case Placed, Accepted, Preparing:
		return true
	case Delivering, Delivered, WaitingReturn, Completed, Cancelled, Unknown:
		return false
	default:
		return false
	}
}

// AllowedTransitions returns the destinations the transition table permits from s,
// before the loaned-equipment guard is applied.
func (s Status) AllowedTransitions() []Status {
	switch s {
	case Placed:
		return []Status{Accepted, Cancelled}
	case Accepted:
		return []Status{Preparing, Cancelled}
	case Preparing:
		return []Status{Delivering}
	case Delivering:
		return []Status{Delivered}
	case Delivered:
		return []Status{WaitingReturn, Completed}
	case WaitingReturn:
		return []Status{Completed}
	case Completed, Cancelled, Unknown:
		return nil
	default:
		return nil
	}
}

// Transition decides whether an order in from may move to to. It holds no state.
// Self-transitions and anything missing from the table are illegal, and
// DELIVERED -> WAITING_RETURN additionally requires loaned equipment.
func Transition(from, to Status, loanedEquipment bool) error {
	if !slices.Contains(from.AllowedTransitions(), to) {
		return errs.NewIllegalTransitionError(from, to)
	}

	if from == Delivered && to == WaitingReturn && !loanedEquipment {
		return errs.NewIllegalTransitionErrorWithReason(from, to, "order has no loaned equipment to return")
	}

	return nil
}

package order

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"catering/internal/core/domain/model/kernel"
	"catering/internal/pkg/errs"
)

const (
	NoteCreated  = "order created"
	NoteModified = "order modified"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order bypassed NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	ErrOrderNotModifiable  = errs.NewPreconditionFailedError("order_not_modifiable", "only PLACED orders can be modified")
	ErrOrderNotCancellable = errs.NewPreconditionFailedError("order_not_cancellable", "order is already completed or cancelled")
)

// Order is the aggregate root of a catering order. It owns its status history
// and its cancellation record.
//
// Order follows these invariants:
//   - the quote total always equals round2(menu price × headcount + delivery fee − discount)
//   - status only changes through Transition, or through Cancel for non-terminal orders
//   - every status change, including creation and revision, appends one history entry
//   - an order is never deleted; cancellation is a status
//
// History entries and the cancellation created during the lifetime of an instance
// are kept until the repository writes them.
type Order struct {
	// id is the unique identifier of the order
	id kernel.UUID

	// customerID is the actor who placed the order and owns it
	customerID kernel.UUID

	// customerName is a snapshot of the customer's display name at placement
	customerName string

	// menuID is the menu one unit of stock was reserved from
	menuID kernel.UUID

	// details holds the venue, event date and time, distance, headcount and equipment flag
	details Details

	// quote is the price computed for details; it is replaced on every revision
	quote Quote

	// status is the current state in the order lifecycle
	status Status

	createdAt time.Time
	updatedAt time.Time

	// history holds the entries appended since the instance was built or last persisted
	history []StatusHistoryEntry

	// cancellation is set by Cancel and dropped once persisted
	cancellation *Cancellation

	// events are raised by every state change and published after commit
	events []Event

	// isConstructed ensures the order was created via NewOrder or RestoreOrder
	isConstructed bool
}

// NewOrder places an order for customer. The quote must already be computed
// against the menu; NewOrder only checks it is consistent with the headcount.
//
// Parameters:
//   - id: identifier chosen by the caller (must be a valid UUID)
//   - customer: the requesting actor; any role may place an order
//   - menuID: the menu the order is served from
//   - details: validated event details
//   - quote: the price from services.PricingEngine for these details
//   - now: placement time, stored in UTC
//
// Returns:
//   - *Order: a PLACED order with one "order created" history entry and an
//     order.placed event
//   - error: the joined validation errors of the arguments
//
// Example:
//
//	details, _ := order.NewDetails(addr, eventDate, "19:30", decimal.NewFromInt(10), 12, false)
//	quote, _ := services.NewPricingEngine().Quote(menu.BasePrice(), 12, details.DistanceKm(), menu.MinHeadcount())
//	o, err := order.NewOrder(kernel.NewUUID(), actor, menu.ID(), details, quote, time.Now())
func NewOrder(
	id kernel.UUID,
	customer kernel.Actor,
	menuID kernel.UUID,
	details Details,
	quote Quote,
	now time.Time,
) (*Order, error) {
	if err := customer.Validate(); err != nil {
		return nil, err
	}

	o := &Order{
		customerName:  customer.Name(),
		status:        Placed,
		createdAt:     now.UTC(),
		updatedAt:     now.UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customer.ID()),
		o.setMenuID(menuID),
		o.setDetailsAndQuote(details, quote),
	); err != nil {
		return nil, err
	}

	actorID := customer.ID()
	o.appendHistory(Placed, &actorID, NoteCreated, now)
	o.raise(EventPlaced, Unknown, now)

	return o, nil
}

// RestoreOrder rebuilds an order read back from storage. History and cancellation
// are not loaded; they are append-only and read through queries.
//
// Parameters:
//   - status: the stored status; Unknown is rejected
//   - createdAt, updatedAt: stored timestamps, kept as read
//
// Returns:
//   - *Order: the order with no pending history and no events
//   - error: the joined validation errors of the stored columns
func RestoreOrder(
	id, customerID kernel.UUID,
	customerName string,
	menuID kernel.UUID,
	details Details,
	quote Quote,
	status Status,
	createdAt, updatedAt time.Time,
) (*Order, error) {
	o := &Order{
		customerName:  customerName,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
		o.setMenuID(menuID),
		o.setDetailsAndQuote(details, quote),
		o.setStatus(status),
	); err != nil {
		return nil, err
	}

	return o, nil
}

func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *Order) ID() kernel.UUID {
	return o.id
}

func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

// CustomerName is the display name of the customer when the order was placed.
func (o *Order) CustomerName() string {
	return o.customerName
}

func (o *Order) MenuID() kernel.UUID {
	return o.menuID
}

func (o *Order) Details() Details {
	return o.details
}

func (o *Order) Quote() Quote {
	return o.quote
}

func (o *Order) Status() Status {
	return o.status
}

func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// IsOwnedBy reports whether userID placed the order.
func (o *Order) IsOwnedBy(userID kernel.UUID) bool {
	return o.customerID.IsEqual(userID)
}

// PendingHistory returns the entries appended since the order was built.
func (o *Order) PendingHistory() []StatusHistoryEntry {
	out := make([]StatusHistoryEntry, len(o.history))
	copy(out, o.history)
	return out
}

// Cancellation is non-nil only on the instance that performed Cancel, until
// the cancellation is persisted.
func (o *Order) Cancellation() *Cancellation {
	return o.cancellation
}

// MarkPersisted drops the pending history entries and cancellation once they
// are committed. Domain events are kept for post-commit publication.
func (o *Order) MarkPersisted() {
	o.history = nil
	o.cancellation = nil
}

// DomainEvents returns the events raised since the order was built.
func (o *Order) DomainEvents() []Event {
	out := make([]Event, len(o.events))
	copy(out, o.events)
	return out
}

// Revise replaces the details and price of a PLACED order on behalf of its owner.
// Stock is not touched: the unit was reserved when the order was placed.
func (o *Order) Revise(actor kernel.Actor, details Details, quote Quote, now time.Time) error {
	if err := o.CheckRevisable(actor.ID()); err != nil {
		return err
	}

	if err := o.setDetailsAndQuote(details, quote); err != nil {
		return err
	}

	actorID := actor.ID()
	o.updatedAt = now.UTC()
	o.appendHistory(o.status, &actorID, NoteModified, now)
	o.raise(EventRevised, Placed, now)
	return nil
}

// CheckRevisable reports whether userID may revise the order right now:
// only the owner, and only while the order is PLACED.
func (o *Order) CheckRevisable(userID kernel.UUID) error {
	if !o.IsOwnedBy(userID) {
		return errs.NewForbiddenError("modify order", "order belongs to another customer")
	}
	if o.status != Placed {
		return errs.NewPreconditionFailedErrorWithCause(
			ErrOrderNotModifiable.Rule,
			ErrOrderNotModifiable.Message,
			fmt.Errorf("order is %s", o.status),
		)
	}
	return nil
}

// ChangeStatus moves the order along the transition table. A rejected
// transition leaves status and history untouched. actorID is nil for
// system-initiated changes. Cancellation goes through Cancel so that it is
// always recorded with a contact mode and reason.
func (o *Order) ChangeStatus(actorID *kernel.UUID, to Status, note string, now time.Time) error {
	if to == Cancelled {
		return errs.NewIllegalTransitionErrorWithReason(o.status, to, "use cancel")
	}
	if err := Transition(o.status, to, o.details.LoanedEquipment()); err != nil {
		return err
	}

	from := o.status
	o.status = to
	o.updatedAt = now.UTC()
	o.appendHistory(to, actorID, strings.TrimSpace(note), now)
	o.raise(EventStatusChanged, from, now)
	return nil
}

// Cancel ends a non-terminal order. It reports whether the reserved menu unit
// goes back to stock, which is the case only before dispatch.
func (o *Order) Cancel(actor kernel.Actor, mode ContactMode, reason string, now time.Time) (bool, error) {
	if o.status.IsTerminal() {
		return false, errs.NewPreconditionFailedErrorWithCause(
			ErrOrderNotCancellable.Rule,
			ErrOrderNotCancellable.Message,
			fmt.Errorf("order is %s", o.status),
		)
	}
	if err := mode.Validate(); err != nil {
		return false, err
	}
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return false, errs.NewValueIsRequiredError("reason")
	}
	if err := actor.Validate(); err != nil {
		return false, err
	}

	from := o.status
	refund := from.RefundsStock()
	actorID := actor.ID()

	o.status = Cancelled
	o.updatedAt = now.UTC()
	o.cancellation = &Cancellation{
		id:          kernel.NewUUID(),
		orderID:     o.id,
		actorID:     actorID,
		contactMode: mode,
		reason:      reason,
		createdAt:   now.UTC(),
	}
	o.appendHistory(Cancelled, &actorID, fmt.Sprintf("Cancellation (%s) - %s", mode, reason), now)
	o.raise(EventCancelled, from, now)
	o.events[len(o.events)-1].StockReleased = refund

	return refund, nil
}

func (o *Order) appendHistory(status Status, actorID *kernel.UUID, note string, now time.Time) {
	o.history = append(o.history, newStatusHistoryEntry(o.id, status, actorID, note, now))
}

func (o *Order) raise(eventType EventType, from Status, now time.Time) {
	o.events = append(o.events, Event{
		ID:              kernel.NewUUID(),
		Type:            eventType,
		OrderID:         o.id,
		CustomerID:      o.customerID,
		MenuID:          o.menuID,
		From:            from,
		To:              o.status,
		LoanedEquipment: o.details.LoanedEquipment(),
		Total:           o.quote.Total(),
		OccurredAt:      now.UTC(),
	})
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.customerID = id
	return nil
}

func (o *Order) setMenuID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.menuID = id
	return nil
}

func (o *Order) setDetailsAndQuote(details Details, quote Quote) error {
	if err := details.Validate(); err != nil {
		return err
	}
	if err := quote.CheckConsistency(details.Headcount()); err != nil {
		return err
	}
	o.details = details
	o.quote = quote
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

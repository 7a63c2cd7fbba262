package order_test

import (
	"testing"
	"time"

	"catering/internal/core/domain/model/kernel"
	"catering/internal/core/domain/model/order"
	"catering/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2026, time.May, 4, 10, 30, 0, 0, time.UTC)

func newActor(t *testing.T, role kernel.Role) kernel.Actor {
	t.Helper()
	a, err := kernel.NewActor(kernel.NewUUID(), "Camille Durand", role)
	require.NoError(t, err)
	return a
}

func newDetails(t *testing.T, headcount int, loaned bool) order.Details {
	t.Helper()
	addr, err := kernel.NewAddress("3 place de la Bourse", "Bordeaux")
	require.NoError(t, err)
	d, err := order.NewDetails(addr, now.AddDate(0, 1, 0), "12:00", decimal.NewFromInt(10), headcount, loaned)
	require.NoError(t, err)
	return d
}

// quote12 prices 12 guests at 50.00 delivered 10 km away.
func quote12() order.Quote {
	return order.NewQuote(
		kernel.MustMoney("10.90"),
		kernel.MustMoney("50.00"),
		kernel.MustMoney("0.00"),
		kernel.MustMoney("610.90"),
	)
}

func placeOrder(t *testing.T, customer kernel.Actor, loaned bool) *order.Order {
	t.Helper()
	o, err := order.NewOrder(kernel.NewUUID(), customer, kernel.NewUUID(), newDetails(t, 12, loaned), quote12(), now)
	require.NoError(t, err)
	return o
}

func TestNewOrder(t *testing.T) {
	t.Run("should create placed order with initial history", func(t *testing.T) {
		customer := newActor(t, kernel.RoleCustomer)

		o := placeOrder(t, customer, false)

		require.NoError(t, o.Validate())
		assert.Equal(t, order.Placed, o.Status())
		assert.True(t, o.IsOwnedBy(customer.ID()))
		assert.Equal(t, "Camille Durand", o.CustomerName())
		assert.Equal(t, "610.90", o.Quote().Total().String())

		history := o.PendingHistory()
		require.Len(t, history, 1)
		assert.Equal(t, order.Placed, history[0].Status())
		assert.Equal(t, order.NoteCreated, history[0].Note())
		require.NotNil(t, history[0].ActorID())
		assert.True(t, history[0].ActorID().IsEqual(customer.ID()))

		events := o.DomainEvents()
		require.Len(t, events, 1)
		assert.Equal(t, order.EventPlaced, events[0].Type)
	})

	t.Run("should reject inconsistent quote", func(t *testing.T) {
		bad := order.NewQuote(kernel.MustMoney("10.90"), kernel.MustMoney("50.00"), kernel.ZeroMoney(), kernel.MustMoney("600.00"))

		_, err := order.NewOrder(kernel.NewUUID(), newActor(t, kernel.RoleCustomer), kernel.NewUUID(), newDetails(t, 12, false), bad, now)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "total price")
	})

	t.Run("should reject missing identifiers", func(t *testing.T) {
		_, err := order.NewOrder(kernel.UUID{}, newActor(t, kernel.RoleCustomer), kernel.UUID{}, newDetails(t, 12, false), quote12(), now)

		require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
	})

	t.Run("should reject unconstructed details", func(t *testing.T) {
		_, err := order.NewOrder(kernel.NewUUID(), newActor(t, kernel.RoleCustomer), kernel.NewUUID(), order.Details{}, quote12(), now)

		require.ErrorIs(t, err, order.ErrDetailsIsNotConstructed)
	})
}

func TestOrder_ChangeStatus(t *testing.T) {
	staff := newActor(t, kernel.RoleEmployee)
	staffID := staff.ID()

	t.Run("should walk the happy path and record every step", func(t *testing.T) {
		o := placeOrder(t, newActor(t, kernel.RoleCustomer), true)

		for _, to := range []order.Status{order.Accepted, order.Preparing, order.Delivering, order.Delivered, order.WaitingReturn, order.Completed} {
			require.NoError(t, o.ChangeStatus(&staffID, to, "", now))
			assert.Equal(t, to, o.Status())
		}

		history := o.PendingHistory()
		require.Len(t, history, 7)
		assert.Equal(t, order.Completed, history[6].Status())
		assert.Len(t, o.DomainEvents(), 7)
	})

	t.Run("should leave status and history untouched on illegal transition", func(t *testing.T) {
		o := placeOrder(t, newActor(t, kernel.RoleCustomer), false)

		err := o.ChangeStatus(&staffID, order.Delivered, "skip ahead", now)

		require.ErrorIs(t, err, errs.ErrIllegalTransition)
		assert.Equal(t, order.Placed, o.Status())
		assert.Len(t, o.PendingHistory(), 1)
		assert.Len(t, o.DomainEvents(), 1)
	})

	t.Run("should refuse waiting return without loaned equipment", func(t *testing.T) {
		o := placeOrder(t, newActor(t, kernel.RoleCustomer), false)
		for _, to := range []order.Status{order.Accepted, order.Preparing, order.Delivering, order.Delivered} {
			require.NoError(t, o.ChangeStatus(&staffID, to, "", now))
		}

		err := o.ChangeStatus(&staffID, order.WaitingReturn, "", now)

		require.ErrorIs(t, err, errs.ErrIllegalTransition)
		assert.Equal(t, order.Delivered, o.Status())
		require.NoError(t, o.ChangeStatus(&staffID, order.Completed, "", now))
	})

	t.Run("should accept system transitions without actor", func(t *testing.T) {
		o := placeOrder(t, newActor(t, kernel.RoleCustomer), false)

		require.NoError(t, o.ChangeStatus(nil, order.Accepted, " auto ", now))

		last := o.PendingHistory()[1]
		assert.Nil(t, last.ActorID())
		assert.Equal(t, "auto", last.Note())
	})

	t.Run("should route cancellation to Cancel", func(t *testing.T) {
		o := placeOrder(t, newActor(t, kernel.RoleCustomer), false)

		err := o.ChangeStatus(&staffID, order.Cancelled, "", now)

		require.ErrorIs(t, err, errs.ErrIllegalTransition)
		assert.Contains(t, err.Error(), "use cancel")
		assert.Equal(t, order.Placed, o.Status())
	})
}

func TestOrder_CheckRevisable(t *testing.T) {
	customer := newActor(t, kernel.RoleCustomer)
	staffID := newActor(t, kernel.RoleEmployee).ID()

	t.Run("should allow the owner while placed", func(t *testing.T) {
		o := placeOrder(t, customer, false)

		assert.NoError(t, o.CheckRevisable(customer.ID()))
	})

	t.Run("should forbid anyone else", func(t *testing.T) {
		o := placeOrder(t, customer, false)

		require.ErrorIs(t, o.CheckRevisable(staffID), errs.ErrForbidden)
	})

	t.Run("should refuse once accepted", func(t *testing.T) {
		o := placeOrder(t, customer, false)
		require.NoError(t, o.ChangeStatus(&staffID, order.Accepted, "", now))

		require.ErrorIs(t, o.CheckRevisable(customer.ID()), order.ErrOrderNotModifiable)
	})
}

func TestOrder_Cancel(t *testing.T) {
	staff := newActor(t, kernel.RoleEmployee)
	staffID := staff.ID()

	advance := func(t *testing.T, o *order.Order, to ...order.Status) {
		t.Helper()
		for _, s := range to {
			require.NoError(t, o.ChangeStatus(&staffID, s, "", now))
		}
	}

	t.Run("should cancel placed order and refund stock", func(t *testing.T) {
		o := placeOrder(t, newActor(t, kernel.RoleCustomer), false)

		refund, err := o.Cancel(staff, order.ContactModePhone, "client a annulé l'événement", now)

		require.NoError(t, err)
		assert.True(t, refund)
		assert.Equal(t, order.Cancelled, o.Status())
		require.NotNil(t, o.Cancellation())
		assert.Equal(t, order.ContactModePhone, o.Cancellation().ContactMode())
		assert.True(t, o.Cancellation().OrderID().IsEqual(o.ID()))

		last := o.PendingHistory()[len(o.PendingHistory())-1]
		assert.Equal(t, order.Cancelled, last.Status())
		assert.Equal(t, "Cancellation (PHONE) - client a annulé l'événement", last.Note())

		events := o.DomainEvents()
		assert.Equal(t, order.EventCancelled, events[len(events)-1].Type)
		assert.True(t, events[len(events)-1].StockReleased)
	})

	t.Run("should not refund stock once dispatched", func(t *testing.T) {
		for _, path := range [][]order.Status{
			{order.Accepted, order.Preparing, order.Delivering},
			{order.Accepted, order.Preparing, order.Delivering, order.Delivered},
			{order.Accepted, order.Preparing, order.Delivering, order.Delivered, order.WaitingReturn},
		} {
			o := placeOrder(t, newActor(t, kernel.RoleCustomer), true)
			advance(t, o, path...)

			refund, err := o.Cancel(staff, order.ContactModeEmail, "équipement perdu", now)

			require.NoError(t, err)
			assert.False(t, refund, path[len(path)-1].String())
		}
	})

	t.Run("should refund stock while preparing", func(t *testing.T) {
		o := placeOrder(t, newActor(t, kernel.RoleCustomer), false)
		advance(t, o, order.Accepted, order.Preparing)

		refund, err := o.Cancel(staff, order.ContactModeEmail, "salle indisponible", now)

		require.NoError(t, err)
		assert.True(t, refund)
	})

	t.Run("should reject terminal orders", func(t *testing.T) {
		completed := placeOrder(t, newActor(t, kernel.RoleCustomer), false)
		advance(t, completed, order.Accepted, order.Preparing, order.Delivering, order.Delivered, order.Completed)
		historyBefore := len(completed.PendingHistory())

		_, err := completed.Cancel(staff, order.ContactModeEmail, "trop tard", now)

		require.ErrorIs(t, err, order.ErrOrderNotCancellable)
		assert.Equal(t, order.Completed, completed.Status())
		assert.Len(t, completed.PendingHistory(), historyBefore)
		assert.Nil(t, completed.Cancellation())
	})

	t.Run("should reject a second cancellation", func(t *testing.T) {
		o := placeOrder(t, newActor(t, kernel.RoleCustomer), false)
		_, err := o.Cancel(staff, order.ContactModeEmail, "doublon", now)
		require.NoError(t, err)

		_, err = o.Cancel(staff, order.ContactModeEmail, "doublon", now)

		require.ErrorIs(t, err, order.ErrOrderNotCancellable)
	})

	t.Run("should validate contact mode and reason", func(t *testing.T) {
		o := placeOrder(t, newActor(t, kernel.RoleCustomer), false)

		_, err := o.Cancel(staff, order.ContactModeUnknown, "raison", now)
		require.ErrorIs(t, err, order.ErrInvalidContactMode)

		_, err = o.Cancel(staff, order.ContactModeEmail, "   ", now)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)

		assert.Equal(t, order.Placed, o.Status())
	})
}

func TestOrder_Revise(t *testing.T) {
	quote15 := order.NewQuote(kernel.MustMoney("10.90"), kernel.MustMoney("50.00"), kernel.MustMoney("75.00"), kernel.MustMoney("685.90"))

	t.Run("should replace details and price while placed", func(t *testing.T) {
		customer := newActor(t, kernel.RoleCustomer)
		o := placeOrder(t, customer, false)

		err := o.Revise(customer, newDetails(t, 15, false), quote15, now)

		require.NoError(t, err)
		assert.Equal(t, order.Placed, o.Status())
		assert.Equal(t, 15, o.Details().Headcount())
		assert.Equal(t, "685.90", o.Quote().Total().String())
		history := o.PendingHistory()
		require.Len(t, history, 2)
		assert.Equal(t, order.NoteModified, history[1].Note())
		assert.Equal(t, order.Placed, history[1].Status())
	})

	t.Run("should forbid other customers", func(t *testing.T) {
		o := placeOrder(t, newActor(t, kernel.RoleCustomer), false)

		err := o.Revise(newActor(t, kernel.RoleCustomer), newDetails(t, 15, false), quote15, now)

		require.ErrorIs(t, err, errs.ErrForbidden)
		assert.Equal(t, 12, o.Details().Headcount())
	})

	t.Run("should reject orders past PLACED", func(t *testing.T) {
		customer := newActor(t, kernel.RoleCustomer)
		o := placeOrder(t, customer, false)
		require.NoError(t, o.ChangeStatus(nil, order.Accepted, "", now))

		err := o.Revise(customer, newDetails(t, 15, false), quote15, now)

		require.ErrorIs(t, err, order.ErrOrderNotModifiable)
		assert.Contains(t, err.Error(), "PLACED")
	})
}

func TestRestoreOrder(t *testing.T) {
	t.Run("should restore with given status", func(t *testing.T) {
		o, err := order.RestoreOrder(kernel.NewUUID(), kernel.NewUUID(), "Camille Durand", kernel.NewUUID(),
			newDetails(t, 12, true), quote12(), order.Delivered, now, now)

		require.NoError(t, err)
		assert.Equal(t, order.Delivered, o.Status())
		assert.Empty(t, o.PendingHistory())
		assert.Empty(t, o.DomainEvents())
	})

	t.Run("should reject unknown status", func(t *testing.T) {
		_, err := order.RestoreOrder(kernel.NewUUID(), kernel.NewUUID(), "", kernel.NewUUID(),
			newDetails(t, 12, true), quote12(), order.Unknown, now, now)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestOrder_MarkPersisted(t *testing.T) {
	o := placeOrder(t, newActor(t, kernel.RoleCustomer), false)
	_, err := o.Cancel(newActor(t, kernel.RoleAdmin), order.ContactModeEmail, "duplicate booking", now)
	require.NoError(t, err)

	o.MarkPersisted()

	assert.Empty(t, o.PendingHistory())
	assert.Nil(t, o.Cancellation())
	assert.Equal(t, order.Cancelled, o.Status())
	assert.Len(t, o.DomainEvents(), 2)
}

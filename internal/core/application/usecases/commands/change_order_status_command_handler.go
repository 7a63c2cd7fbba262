package commands

import (
	"context"
	"time"

	"catering/internal/core/domain/model/order"
	"catering/internal/pkg/errs"
)

// ChangeOrderStatusCommandHandler applies a staff transition. Reaching
// WAITING_RETURN with loaned equipment sends a return reminder, reaching
// COMPLETED sends a review invitation.
//
// CANCELLED is never reached here: it is rejected as an illegal transition
// with the reason "use cancel". CancelOrderCommandHandler records the
// cancellation row and refunds stock.
type ChangeOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	effects    *SideEffects
}

func NewChangeOrderStatusCommandHandler(uowFactory OrderUoWFactory, effects *SideEffects) ChangeOrderStatusCommandHandler {
	return ChangeOrderStatusCommandHandler{
		uowFactory: uowFactory,
		effects:    effects,
	}
}

func (h *ChangeOrderStatusCommandHandler) Handle(ctx context.Context, cmd ChangeOrderStatusCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if !cmd.Actor().IsStaff() {
		return errs.NewForbiddenError("change order status", "staff only")
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	actorID := cmd.Actor().ID()
	if err = o.ChangeStatus(&actorID, cmd.Status(), cmd.Note(), time.Now()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.effects.metrics.StatusTransitions.WithLabelValues(o.Status().String()).Inc()

	switch {
	case o.Status() == order.WaitingReturn && o.Details().LoanedEquipment():
		if h.effects.notify(ctx, equipmentReturnReminder(o)) {
			h.effects.metrics.RemindersSent.Inc()
		}
	case o.Status() == order.Completed:
		h.effects.notify(ctx, orderCompleted(o))
	}
	h.effects.publish(ctx, o.DomainEvents())

	return nil
}

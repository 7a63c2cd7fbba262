package commands

import (
	"context"
	"strconv"
	"time"

	"catering/internal/core/domain/model/order"
	"catering/internal/pkg/errs"
)

// CancelOrderCommandHandler cancels a non-terminal order, records who cancelled
// it and why, and gives the reserved unit back to the menu when the order had
// not been dispatched yet.
type CancelOrderCommandHandler struct {
	uowFactory UoWFactory
	effects    *SideEffects
}

func NewCancelOrderCommandHandler(uowFactory UoWFactory, effects *SideEffects) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
		effects:    effects,
	}
}

func (h *CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if !cmd.Actor().IsStaff() {
		return errs.NewForbiddenError("cancel order", "staff only")
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

	// An unparsable mode stays ContactModeUnknown and is rejected by Cancel
	// after the terminal-status check.
	mode, _ := order.ParseContactMode(cmd.ContactMode())

	released, err := o.Cancel(cmd.Actor(), mode, cmd.Reason(), time.Now())
	if err != nil {
		return err
	}

	if released {
		menuRepo := uow.MenuRepository()
		m, menuErr := menuRepo.GetForUpdate(ctx, o.MenuID())
		if menuErr != nil {
			return menuErr
		}
		m.ReleaseUnit()
		if err = menuRepo.Update(ctx, m); err != nil {
			return err
		}
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.effects.metrics.OrdersCancelled.WithLabelValues(strconv.FormatBool(released)).Inc()
	h.effects.publish(ctx, o.DomainEvents())

	return nil
}

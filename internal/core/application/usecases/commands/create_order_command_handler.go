package commands

import (
	"context"
	"time"

	"catering/internal/core/domain/model/order"
	"catering/internal/core/domain/services"
)

// CreateOrderCommandHandler places an order and reserves one unit of menu stock
// in the same transaction.
type CreateOrderCommandHandler struct {
	uowFactory UoWFactory
	placement  services.OrderPlacement
	effects    *SideEffects
}

func NewCreateOrderCommandHandler(
	uowFactory UoWFactory,
	placement services.OrderPlacement,
	effects *SideEffects,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		placement:  placement,
		effects:    effects,
	}
}

// Handle checks, in order: the menu exists and is active, the event is after
// today, the headcount reaches the menu minimum and stock is left. The first
// failing check is returned. Any authenticated actor may place an order.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	now := time.Now()

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	menuRepo := uow.MenuRepository()
	m, err := menuRepo.GetForUpdate(ctx, cmd.MenuID())
	if err != nil {
		return err
	}

	quote, err := h.placement.CheckPlacement(m, cmd.Details(), now)
	if err != nil {
		return err
	}

	if err = m.ReserveUnit(); err != nil {
		return err
	}

	if err = menuRepo.Update(ctx, m); err != nil {
		return err
	}

	o, err := order.NewOrder(cmd.OrderID(), cmd.Actor(), m.ID(), cmd.Details(), quote, now)
	if err != nil {
		return err
	}

	if err = uow.OrderRepository().Add(ctx, o); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.effects.metrics.OrdersPlaced.Inc()
	h.effects.notify(ctx, orderConfirmed(o))
	h.effects.publish(ctx, o.DomainEvents())

	return nil
}

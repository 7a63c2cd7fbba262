package commands

import (
	"context"
	"time"

	"catering/internal/core/domain/services"
)

// UpdateOrderCommandHandler lets a customer revise a PLACED order. The price is
// recomputed from the current menu price; stock is left alone.
type UpdateOrderCommandHandler struct {
	uowFactory UoWFactory
	placement  services.OrderPlacement
	effects    *SideEffects
}

func NewUpdateOrderCommandHandler(
	uowFactory UoWFactory,
	placement services.OrderPlacement,
	effects *SideEffects,
) UpdateOrderCommandHandler {
	return UpdateOrderCommandHandler{
		uowFactory: uowFactory,
		placement:  placement,
		effects:    effects,
	}
}

func (h *UpdateOrderCommandHandler) Handle(ctx context.Context, cmd UpdateOrderCommand) error {
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

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = o.CheckRevisable(cmd.Actor().ID()); err != nil {
		return err
	}

	details, err := o.Details().Apply(cmd.Patch())
	if err != nil {
		return err
	}

	m, err := uow.MenuRepository().Get(ctx, o.MenuID())
	if err != nil {
		return err
	}

	quote, err := h.placement.CheckRevision(m, details, now)
	if err != nil {
		return err
	}

	if err = o.Revise(cmd.Actor(), details, quote, now); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.effects.publish(ctx, o.DomainEvents())

	return nil
}

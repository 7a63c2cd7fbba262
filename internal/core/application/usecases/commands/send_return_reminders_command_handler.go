package commands

import (
	"context"
	"log/slog"
)

// SendReturnRemindersCommandHandler reminds every customer whose order waits
// for loaned equipment to come back. It only reads orders, so it uses the
// repository outside a transaction.
type SendReturnRemindersCommandHandler struct {
	uowFactory OrderUoWFactory
	effects    *SideEffects
	logger     *slog.Logger
}

func NewSendReturnRemindersCommandHandler(
	uowFactory OrderUoWFactory,
	effects *SideEffects,
	logger *slog.Logger,
) SendReturnRemindersCommandHandler {
	return SendReturnRemindersCommandHandler{
		uowFactory: uowFactory,
		effects:    effects,
		logger:     logger.With("component", "return-reminders"),
	}
}

// Handle returns how many reminders the notifier accepted. A failing
// notification does not stop the remaining ones.
func (h *SendReturnRemindersCommandHandler) Handle(ctx context.Context) (int, error) {
	orders, err := h.uowFactory.Create().OrderRepository().GetAllAwaitingReturn(ctx)
	if err != nil {
		return 0, err
	}

	sent := 0
	for _, o := range orders {
		if ctx.Err() != nil {
			return sent, ctx.Err()
		}
		if h.effects.notify(ctx, equipmentReturnReminder(o)) {
			h.effects.metrics.RemindersSent.Inc()
			sent++
		}
	}

	h.logger.InfoContext(ctx, "equipment return reminders sent", "sent", sent, "pending", len(orders))
	return sent, nil
}

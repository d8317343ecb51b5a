package commands

import (
	"context"

	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/ports"
)

// CancelOrderCommandHandler cancels an order and, when stock had already been
// consumed (Paid, Preparing, Shipped), returns it to inventory in the same
// transaction.
type CancelOrderCommandHandler struct {
	uowFactory UoWFactory
}

func NewCancelOrderCommandHandler(uowFactory UoWFactory) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{uowFactory: uowFactory}
}

func (h *CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = cancel(ctx, o, orderRepo, uow); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// cancel applies the cancellation and its stock side effect, then saves the
// order. The inventory repository is only requested when stock is owed.
func cancel(ctx context.Context, o *order.Order, orderRepo ports.OrderRepository, inventory InventoryRepoFactory) error {
	adjustment, err := o.Cancel()
	if err != nil {
		return err
	}

	if adjustment.Required() {
		if err = inventory.InventoryRepository().Apply(ctx, adjustment); err != nil {
			return err
		}
	}

	return orderRepo.Update(ctx, o)
}

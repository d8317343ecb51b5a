package commands

import (
	"context"
)

type SetProductStockCommandHandler struct {
	uowFactory UoWFactory
}

func NewSetProductStockCommandHandler(uowFactory UoWFactory) SetProductStockCommandHandler {
	return SetProductStockCommandHandler{uowFactory: uowFactory}
}

func (h *SetProductStockCommandHandler) Handle(ctx context.Context, cmd SetProductStockCommand) error {
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

	if err := uow.InventoryRepository().Upsert(ctx, cmd.ProductID(), cmd.Quantity()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

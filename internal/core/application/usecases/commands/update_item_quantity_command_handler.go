package commands

import (
	"context"

	"marketplace/internal/core/ports"
	"marketplace/internal/pkg/errs"
)

// UpdateItemQuantityCommandHandler changes a line's quantity after an
// optimistic stock check for the line's product.
type UpdateItemQuantityCommandHandler struct {
	uowFactory OrderUoWFactory
	inventory  ports.InventoryOracle
}

func NewUpdateItemQuantityCommandHandler(
	uowFactory OrderUoWFactory,
	inventory ports.InventoryOracle,
) UpdateItemQuantityCommandHandler {
	return UpdateItemQuantityCommandHandler{
		uowFactory: uowFactory,
		inventory:  inventory,
	}
}

// Handle loads the order first because the product to check is only known
// from the line item.
func (h *UpdateItemQuantityCommandHandler) Handle(ctx context.Context, cmd UpdateItemQuantityCommand) error {
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

	item, ok := o.Item(cmd.ItemID())
	if !ok {
		return errs.NewObjectNotFoundError("line item", cmd.ItemID().String())
	}

	available, err := h.inventory.AvailableStock(ctx, item.ProductID())
	if err != nil {
		return err
	}

	if _, err = o.UpdateItemQuantity(cmd.ItemID(), cmd.Quantity(), available); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

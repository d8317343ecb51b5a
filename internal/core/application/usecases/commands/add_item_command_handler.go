package commands

import (
	"context"

	"marketplace/internal/core/ports"
)

// AddItemCommandHandler adds a product line to a cart after an optimistic
// stock check against the inventory oracle. The oracle may be served from a
// cache; payment confirmation re-checks authoritatively.
type AddItemCommandHandler struct {
	uowFactory OrderUoWFactory
	inventory  ports.InventoryOracle
}

func NewAddItemCommandHandler(uowFactory OrderUoWFactory, inventory ports.InventoryOracle) AddItemCommandHandler {
	return AddItemCommandHandler{
		uowFactory: uowFactory,
		inventory:  inventory,
	}
}

// Handle reads the available stock before opening the transaction, then
// loads the order (locked), adds or merges the line and saves it.
func (h *AddItemCommandHandler) Handle(ctx context.Context, cmd AddItemCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	available, err := h.inventory.AvailableStock(ctx, cmd.ProductID())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
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

	if _, err = o.AddItem(cmd.ProductID(), cmd.StoreID(), cmd.Quantity(), cmd.UnitPrice(), available); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

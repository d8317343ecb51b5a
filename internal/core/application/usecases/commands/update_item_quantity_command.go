package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var ErrUpdateItemQuantityCommandIsNotConstructed = errors.New(
	"UpdateItemQuantityCommand must be created via NewUpdateItemQuantityCommand constructor",
)

// UpdateItemQuantityCommand replaces the quantity of a line item in a cart.
type UpdateItemQuantityCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	itemID   kernel.UUID
	quantity int

	guard guard.ConstructorGuard
}

func NewUpdateItemQuantityCommand(orderID, itemID kernel.UUID, quantity int) (UpdateItemQuantityCommand, error) {
	cmd := UpdateItemQuantityCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		setID(&cmd.orderID, "order id", orderID),
		setID(&cmd.itemID, "line item id", itemID),
		setQuantity(&cmd.quantity, quantity),
	); err != nil {
		return UpdateItemQuantityCommand{}, err
	}

	return cmd, nil
}

func (c UpdateItemQuantityCommand) Validate() error {
	return c.guard.Validate(ErrUpdateItemQuantityCommandIsNotConstructed)
}

func (c UpdateItemQuantityCommand) OrderID() kernel.UUID { return c.orderID }
func (c UpdateItemQuantityCommand) ItemID() kernel.UUID  { return c.itemID }
func (c UpdateItemQuantityCommand) Quantity() int        { return c.quantity }

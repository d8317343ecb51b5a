package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var ErrRemoveItemCommandIsNotConstructed = errors.New(
	"RemoveItemCommand must be created via NewRemoveItemCommand constructor",
)

// RemoveItemCommand deletes a line item from a cart.
type RemoveItemCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	itemID  kernel.UUID

	guard guard.ConstructorGuard
}

func NewRemoveItemCommand(orderID, itemID kernel.UUID) (RemoveItemCommand, error) {
	cmd := RemoveItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		setID(&cmd.orderID, "order id", orderID),
		setID(&cmd.itemID, "line item id", itemID),
	); err != nil {
		return RemoveItemCommand{}, err
	}

	return cmd, nil
}

func (c RemoveItemCommand) Validate() error {
	return c.guard.Validate(ErrRemoveItemCommandIsNotConstructed)
}

func (c RemoveItemCommand) OrderID() kernel.UUID { return c.orderID }
func (c RemoveItemCommand) ItemID() kernel.UUID  { return c.itemID }

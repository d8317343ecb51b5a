package commands

import (
	"errors"
	"fmt"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var ErrAddItemCommandIsNotConstructed = errors.New(
	"AddItemCommand must be created via NewAddItemCommand constructor",
)

// AddItemCommand puts a product from a store into a cart. Adding a product
// already in the cart merges into its line.
type AddItemCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	productID kernel.UUID
	storeID   kernel.UUID
	quantity  int
	unitPrice kernel.Money

	guard guard.ConstructorGuard
}

func NewAddItemCommand(
	orderID, productID, storeID kernel.UUID,
	quantity int,
	unitPrice kernel.Money,
) (AddItemCommand, error) {
	cmd := AddItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		setID(&cmd.orderID, "order id", orderID),
		setID(&cmd.productID, "product id", productID),
		setID(&cmd.storeID, "store id", storeID),
		setQuantity(&cmd.quantity, quantity),
		cmd.setUnitPrice(unitPrice),
	); err != nil {
		return AddItemCommand{}, err
	}

	return cmd, nil
}

func (c AddItemCommand) Validate() error {
	return c.guard.Validate(ErrAddItemCommandIsNotConstructed)
}

func (c AddItemCommand) OrderID() kernel.UUID    { return c.orderID }
func (c AddItemCommand) ProductID() kernel.UUID  { return c.productID }
func (c AddItemCommand) StoreID() kernel.UUID    { return c.storeID }
func (c AddItemCommand) Quantity() int           { return c.quantity }
func (c AddItemCommand) UnitPrice() kernel.Money { return c.unitPrice }

func (c *AddItemCommand) setUnitPrice(price kernel.Money) error {
	if !price.IsPositive() {
		return errs.NewValueIsInvalidErrorWithCause(
			"unit price is invalid",
			fmt.Errorf("%s is not greater than 0", price),
		)
	}
	c.unitPrice = price
	return nil
}

func setQuantity(dst *int, quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"quantity is invalid",
			fmt.Errorf("%d is not greater than 0", quantity),
		)
	}
	*dst = quantity
	return nil
}

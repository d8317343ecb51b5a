package commands

import (
	"errors"
	"fmt"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var ErrSetProductStockCommandIsNotConstructed = errors.New(
	"SetProductStockCommand must be created via NewSetProductStockCommand constructor",
)

// SetProductStockCommand overwrites the units a store has available for a
// product. Zero is allowed and marks the product as sold out.
type SetProductStockCommand struct { //nolint:recvcheck //using for validation
	productID kernel.UUID
	quantity  int

	guard guard.ConstructorGuard
}

func NewSetProductStockCommand(productID kernel.UUID, quantity int) (SetProductStockCommand, error) {
	cmd := SetProductStockCommand{
		guard: guard.NewConstructorGuard(),
	}

	var errQuantity error
	if quantity < 0 {
		errQuantity = errs.NewValueIsInvalidErrorWithCause(
			"quantity is invalid",
			fmt.Errorf("%d is negative", quantity),
		)
	}

	if err := errors.Join(setID(&cmd.productID, "product id", productID), errQuantity); err != nil {
		return SetProductStockCommand{}, err
	}

	cmd.quantity = quantity
	return cmd, nil
}

func (c SetProductStockCommand) Validate() error {
	return c.guard.Validate(ErrSetProductStockCommandIsNotConstructed)
}

func (c SetProductStockCommand) ProductID() kernel.UUID { return c.productID }
func (c SetProductStockCommand) Quantity() int          { return c.quantity }

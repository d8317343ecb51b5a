package commands

import (
	"errors"
	"fmt"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var ErrAdvanceFulfillmentCommandIsNotConstructed = errors.New(
	"AdvanceFulfillmentCommand must be created via NewAdvanceFulfillmentCommand constructor",
)

// AdvanceFulfillmentCommand moves a paid order one step along fulfillment.
// The target is the status the order should reach: Preparing, Shipped or
// Delivered.
type AdvanceFulfillmentCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	target  order.Status

	guard guard.ConstructorGuard
}

func NewAdvanceFulfillmentCommand(orderID kernel.UUID, target order.Status) (AdvanceFulfillmentCommand, error) {
	cmd := AdvanceFulfillmentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		setID(&cmd.orderID, "order id", orderID),
		cmd.setTarget(target),
	); err != nil {
		return AdvanceFulfillmentCommand{}, err
	}

	return cmd, nil
}

func (c AdvanceFulfillmentCommand) Validate() error {
	return c.guard.Validate(ErrAdvanceFulfillmentCommandIsNotConstructed)
}

func (c AdvanceFulfillmentCommand) OrderID() kernel.UUID { return c.orderID }
func (c AdvanceFulfillmentCommand) Target() order.Status { return c.target }

func (c *AdvanceFulfillmentCommand) setTarget(target order.Status) error {
	switch target {
	case order.Preparing, order.Shipped, order.Delivered:
		c.target = target
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause(
			"target status is invalid",
			fmt.Errorf("%s is not a fulfillment step", target),
		)
	}
}

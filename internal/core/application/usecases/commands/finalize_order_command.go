package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/guard"
)

var ErrFinalizeOrderCommandIsNotConstructed = errors.New(
	"FinalizeOrderCommand must be created via NewFinalizeOrderCommand constructor",
)

// FinalizeOrderCommand closes a cart and records how the buyer will pay.
type FinalizeOrderCommand struct { //nolint:recvcheck //using for validation
	orderID       kernel.UUID
	paymentMethod order.PaymentMethod

	guard guard.ConstructorGuard
}

func NewFinalizeOrderCommand(orderID kernel.UUID, paymentMethod order.PaymentMethod) (FinalizeOrderCommand, error) {
	cmd := FinalizeOrderCommand{
		paymentMethod: paymentMethod,
		guard:         guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		setID(&cmd.orderID, "order id", orderID),
		paymentMethod.Validate(),
	); err != nil {
		return FinalizeOrderCommand{}, err
	}

	return cmd, nil
}

func (c FinalizeOrderCommand) Validate() error {
	return c.guard.Validate(ErrFinalizeOrderCommandIsNotConstructed)
}

func (c FinalizeOrderCommand) OrderID() kernel.UUID               { return c.orderID }
func (c FinalizeOrderCommand) PaymentMethod() order.PaymentMethod { return c.paymentMethod }

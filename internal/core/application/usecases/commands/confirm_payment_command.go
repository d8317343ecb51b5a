package commands

import (
	"errors"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var ErrConfirmPaymentCommandIsNotConstructed = errors.New(
	"ConfirmPaymentCommand must be created via NewConfirmPaymentCommand constructor",
)

// ConfirmPaymentCommand records that an order awaiting payment was paid at
// the given time.
type ConfirmPaymentCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	paidAt  time.Time

	guard guard.ConstructorGuard
}

func NewConfirmPaymentCommand(orderID kernel.UUID, paidAt time.Time) (ConfirmPaymentCommand, error) {
	cmd := ConfirmPaymentCommand{
		guard: guard.NewConstructorGuard(),
	}

	var timeErr error
	if paidAt.IsZero() {
		timeErr = errs.NewValueIsRequiredError("paid at")
	}

	if err := errors.Join(setID(&cmd.orderID, "order id", orderID), timeErr); err != nil {
		return ConfirmPaymentCommand{}, err
	}

	cmd.paidAt = paidAt
	return cmd, nil
}

func (c ConfirmPaymentCommand) Validate() error {
	return c.guard.Validate(ErrConfirmPaymentCommandIsNotConstructed)
}

func (c ConfirmPaymentCommand) OrderID() kernel.UUID { return c.orderID }
func (c ConfirmPaymentCommand) PaidAt() time.Time    { return c.paidAt }

package commands

import (
	"errors"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand represents a request to open a new cart for a customer.
// The delivery address is snapshotted into the order and never changes.
//
// Example:
//
//	orderID := kernel.NewUUID()
//	cmd, err := NewCreateOrderCommand(orderID, customerID, address, time.Now())
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID         kernel.UUID
	customerID      kernel.UUID
	deliveryAddress kernel.Address
	createdAt       time.Time

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand validates the identifiers, the address and the
// creation time. All violations are reported together.
func NewCreateOrderCommand(
	orderID, customerID kernel.UUID,
	deliveryAddress kernel.Address,
	createdAt time.Time,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		setID(&cmd.orderID, "order id", orderID),
		setID(&cmd.customerID, "customer id", customerID),
		cmd.setDeliveryAddress(deliveryAddress),
		cmd.setCreatedAt(createdAt),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) OrderID() kernel.UUID            { return c.orderID }
func (c CreateOrderCommand) CustomerID() kernel.UUID         { return c.customerID }
func (c CreateOrderCommand) DeliveryAddress() kernel.Address { return c.deliveryAddress }
func (c CreateOrderCommand) CreatedAt() time.Time            { return c.createdAt }

func (c *CreateOrderCommand) setDeliveryAddress(address kernel.Address) error {
	if err := address.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("delivery address", err)
	}
	c.deliveryAddress = address
	return nil
}

func (c *CreateOrderCommand) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("created at")
	}
	c.createdAt = createdAt
	return nil
}

// setID is shared by every command that carries identifiers.
func setID(dst *kernel.UUID, name string, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause(name, err)
	}
	*dst = id
	return nil
}

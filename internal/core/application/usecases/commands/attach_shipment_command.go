package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/services"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var ErrAttachShipmentCommandIsNotConstructed = errors.New(
	"AttachShipmentCommand must be created via NewAttachShipmentCommand constructor",
)

// AttachShipmentCommand quotes shipping from a store's address to the order's
// delivery address and attaches the result as that store's shipment. The
// quote uses the store's own tariff when the command carries one, and the
// marketplace default otherwise.
//
// Example:
//
//	cmd, err := NewAttachShipmentCommand(orderID, storeID, storeAddress)
//	if err != nil {
//	    return err
//	}
//	err = handler.Handle(ctx, cmd) // replaces any earlier quote for the store
type AttachShipmentCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	storeID kernel.UUID
	origin  kernel.Address
	tariff  *services.Tariff

	guard guard.ConstructorGuard
}

func NewAttachShipmentCommand(orderID, storeID kernel.UUID, origin kernel.Address) (AttachShipmentCommand, error) {
	cmd := AttachShipmentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		setID(&cmd.orderID, "order id", orderID),
		setID(&cmd.storeID, "store id", storeID),
		cmd.setOrigin(origin),
	); err != nil {
		return AttachShipmentCommand{}, err
	}

	return cmd, nil
}

// NewAttachShipmentCommandWithTariff is NewAttachShipmentCommand for a store
// that prices shipping with its own tariff.
func NewAttachShipmentCommandWithTariff(
	orderID, storeID kernel.UUID,
	origin kernel.Address,
	tariff services.Tariff,
) (AttachShipmentCommand, error) {
	cmd, cmdErr := NewAttachShipmentCommand(orderID, storeID, origin)

	var tariffErr error
	if err := tariff.Validate(); err != nil {
		tariffErr = errs.NewValueIsRequiredErrorWithCause("store tariff", err)
	}

	if err := errors.Join(cmdErr, tariffErr); err != nil {
		return AttachShipmentCommand{}, err
	}

	cmd.tariff = &tariff
	return cmd, nil
}

func (c AttachShipmentCommand) Validate() error {
	return c.guard.Validate(ErrAttachShipmentCommandIsNotConstructed)
}

func (c AttachShipmentCommand) OrderID() kernel.UUID   { return c.orderID }
func (c AttachShipmentCommand) StoreID() kernel.UUID   { return c.storeID }
func (c AttachShipmentCommand) Origin() kernel.Address { return c.origin }

// Tariff returns the store's own tariff, if the command carries one.
func (c AttachShipmentCommand) Tariff() (services.Tariff, bool) {
	if c.tariff == nil {
		return services.Tariff{}, false
	}
	return *c.tariff, true
}

func (c *AttachShipmentCommand) setOrigin(origin kernel.Address) error {
	if err := origin.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("origin address", err)
	}
	c.origin = origin
	return nil
}

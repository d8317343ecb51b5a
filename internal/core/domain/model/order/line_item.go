package order

import (
	"errors"
	"fmt"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

// ErrLineItemIsNotConstructed is returned when a LineItem bypassed NewLineItem.
var ErrLineItemIsNotConstructed = errors.New("LineItem must be created via NewLineItem constructor")

// LineItem is one product line within an order.
//
// Invariants:
//   - id, order id, product id and store id are valid UUIDs
//   - quantity is at least 1
//   - unit price is strictly positive
//
// Line items have no lifecycle of their own: the owning Order creates them,
// changes their quantity while in Cart and hands out copies only.
type LineItem struct {
	id        kernel.UUID
	orderID   kernel.UUID
	productID kernel.UUID
	storeID   kernel.UUID
	quantity  int
	unitPrice kernel.Money

	guard guard.ConstructorGuard
}

// NewLineItem creates a line item with a fresh identifier.
func NewLineItem(
	orderID, productID, storeID kernel.UUID,
	quantity int,
	unitPrice kernel.Money,
) (*LineItem, error) {
	return RestoreLineItem(kernel.NewUUID(), orderID, productID, storeID, quantity, unitPrice)
}

// RestoreLineItem rebuilds a persisted line item, applying the same rules as
// NewLineItem.
func RestoreLineItem(
	id, orderID, productID, storeID kernel.UUID,
	quantity int,
	unitPrice kernel.Money,
) (*LineItem, error) {
	item := &LineItem{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		setUUID(&item.id, "line item id", id),
		setUUID(&item.orderID, "order id", orderID),
		setUUID(&item.productID, "product id", productID),
		setUUID(&item.storeID, "store id", storeID),
		item.setQuantity(quantity),
		item.setUnitPrice(unitPrice),
	); err != nil {
		return nil, err
	}

	return item, nil
}

// Validate ensures the item was created through a constructor.
func (i *LineItem) Validate() error {
	if i == nil {
		return ErrLineItemIsNotConstructed
	}
	return i.guard.Validate(ErrLineItemIsNotConstructed)
}

func (i *LineItem) ID() kernel.UUID        { return i.id }
func (i *LineItem) OrderID() kernel.UUID   { return i.orderID }
func (i *LineItem) ProductID() kernel.UUID { return i.productID }
func (i *LineItem) StoreID() kernel.UUID   { return i.storeID }
func (i *LineItem) Quantity() int          { return i.quantity }
func (i *LineItem) UnitPrice() kernel.Money {
	return i.unitPrice
}

// Subtotal is quantity x unit price, computed on every call.
func (i *LineItem) Subtotal() kernel.Money {
	return i.unitPrice.Mul(i.quantity)
}

// UpdateQuantity replaces the quantity. Non-positive values are rejected and
// leave the item unchanged.
func (i *LineItem) UpdateQuantity(quantity int) error {
	return i.setQuantity(quantity)
}

func (i *LineItem) setQuantity(quantity int) error {
	if err := validateQuantity(quantity); err != nil {
		return err
	}
	i.quantity = quantity
	return nil
}

func (i *LineItem) setUnitPrice(price kernel.Money) error {
	if !price.IsPositive() {
		return errs.NewValueIsInvalidErrorWithCause(
			"unit price is invalid",
			fmt.Errorf("%s is not greater than 0", price),
		)
	}
	i.unitPrice = price
	return nil
}

func (i *LineItem) clone() LineItem {
	return *i
}

func validateQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"quantity is invalid",
			fmt.Errorf("%d is not greater than 0", quantity),
		)
	}
	return nil
}

func setUUID(dst *kernel.UUID, name string, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause(name, err)
	}
	*dst = id
	return nil
}

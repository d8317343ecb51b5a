// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries read tables directly and never load aggregates, so they take no
// row locks and may observe a state one commit behind a running command.
package queries

import (
	"errors"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery retrieves a single order with its lines, shipments and totals.
//
// Example:
//
//	query, err := NewGetOrderQuery(orderID)
//	if err != nil {
//	    return err
//	}
//
//	view, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to load order: %w", err)
//	}
//	fmt.Printf("order %s total %s\n", view.ID, view.GrandTotal)
type GetOrderQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetOrderQuery(orderID kernel.UUID) (GetOrderQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderQuery{}, errs.NewValueIsRequiredErrorWithCause("order id", err)
	}
	return GetOrderQuery{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

func (q GetOrderQuery) OrderID() kernel.UUID { return q.orderID }

// GetOrderQueryResponse is the read model of one order. Totals are derived
// from the line and shipment rows on every read.
type GetOrderQueryResponse struct {
	ID              kernel.UUID
	CustomerID      kernel.UUID
	Status          order.Status
	PaymentMethod   order.PaymentMethod
	DeliveryAddress kernel.Address
	CreatedAt       time.Time
	PaidAt          *time.Time
	Items           []OrderItemView
	Shipments       []OrderShipmentView
	ItemsTotal      kernel.Money
	ShippingTotal   kernel.Money
	GrandTotal      kernel.Money
}

type OrderItemView struct {
	ID        kernel.UUID
	ProductID kernel.UUID
	StoreID   kernel.UUID
	Quantity  int
	UnitPrice kernel.Money
	Subtotal  kernel.Money
}

type OrderShipmentView struct {
	StoreID kernel.UUID
	Value   kernel.Money
}

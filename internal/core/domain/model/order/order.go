package order

import (
	"errors"
	"fmt"
	"math"
	"slices"
	"strings"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrOrderHasNoItems is the cause attached when finalizing an empty cart.
	ErrOrderHasNoItems = errors.New("order must have at least one line item")
)

// Order is the aggregate root of the marketplace: one buyer's purchase across
// any number of stores. All changes to its line items and shipments go
// through its methods.
//
// Order follows these invariants:
//   - id and customer id are valid UUIDs, the delivery address is a valid snapshot
//   - at most one line item per product and one shipment per store
//   - items change only in Cart, shipments only in Cart or AwaitingPayment
//   - the payment method is set exactly when the cart is finalized
//   - the payment time is set when payment is confirmed and is never before creation
//   - totals are derived from the current items and shipments on every call
//
// Every method validates all preconditions before mutating anything, so a
// returned error means the order is exactly as it was before the call.
//
// Order is not safe for concurrent mutation. Callers serialize access per
// order id (the application layer loads the order row with a lock inside a
// transaction).
type Order struct {
	id              kernel.UUID
	customerID      kernel.UUID
	deliveryAddress kernel.Address
	paymentMethod   PaymentMethod
	createdAt       time.Time
	paidAt          *time.Time
	status          Status

	// items and shipments keep insertion order; uniqueness is by product id
	// and store id respectively.
	items     []*LineItem
	shipments []StoreShipment

	events []StatusChanged

	guard guard.ConstructorGuard
}

// NewOrder opens a cart for a customer, snapshotting the delivery address.
//
// Example:
//
//	o, err := order.NewOrder(kernel.NewUUID(), customerID, address, time.Now())
//	if err != nil {
//	    return err
//	}
//	err = o.AddItem(productID, storeID, 2, price, availableStock)
func NewOrder(id, customerID kernel.UUID, deliveryAddress kernel.Address, now time.Time) (*Order, error) {
	o := &Order{
		status:    Cart,
		createdAt: now.UTC(),
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		setUUID(&o.id, "order id", id),
		setUUID(&o.customerID, "customer id", customerID),
		o.setDeliveryAddress(deliveryAddress),
		o.setCreatedAt(now),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder rebuilds a persisted order. Besides the field rules of
// NewOrder it checks that the stored state is one the state machine could
// have produced: items belong to this order and are unique per product,
// shipments are unique per store, and the payment method and payment time
// are present exactly in the states that require them.
func RestoreOrder(
	id, customerID kernel.UUID,
	deliveryAddress kernel.Address,
	status Status,
	paymentMethod PaymentMethod,
	createdAt time.Time,
	paidAt *time.Time,
	items []*LineItem,
	shipments []StoreShipment,
) (*Order, error) {
	o := &Order{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		setUUID(&o.id, "order id", id),
		setUUID(&o.customerID, "customer id", customerID),
		o.setDeliveryAddress(deliveryAddress),
		o.setCreatedAt(createdAt),
		status.Validate(),
	); err != nil {
		return nil, err
	}
	o.status = status

	if err := errors.Join(
		o.restoreItems(items),
		o.restoreShipments(shipments),
		o.restorePayment(paymentMethod, paidAt),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares orders by identity.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *Order) ID() kernel.UUID                 { return o.id }
func (o *Order) CustomerID() kernel.UUID         { return o.customerID }
func (o *Order) DeliveryAddress() kernel.Address { return o.deliveryAddress }
func (o *Order) PaymentMethod() PaymentMethod    { return o.paymentMethod }
func (o *Order) CreatedAt() time.Time            { return o.createdAt }
func (o *Order) Status() Status                  { return o.status }

// PaidAt returns a copy of the payment time, or nil before payment.
func (o *Order) PaidAt() *time.Time {
	if o.paidAt == nil {
		return nil
	}
	t := *o.paidAt
	return &t
}

// Items returns copies of the line items in insertion order.
func (o *Order) Items() []LineItem {
	out := make([]LineItem, 0, len(o.items))
	for _, item := range o.items {
		out = append(out, item.clone())
	}
	return out
}

// Item returns a copy of the line item with the given id.
func (o *Order) Item(itemID kernel.UUID) (LineItem, bool) {
	if item := o.findItem(itemID); item != nil {
		return item.clone(), true
	}
	return LineItem{}, false
}

// ItemByProduct returns a copy of the line item for the given product.
func (o *Order) ItemByProduct(productID kernel.UUID) (LineItem, bool) {
	if item := o.findItemByProduct(productID); item != nil {
		return item.clone(), true
	}
	return LineItem{}, false
}

// Shipments returns the store shipments in insertion order.
func (o *Order) Shipments() []StoreShipment {
	out := make([]StoreShipment, len(o.shipments))
	copy(out, o.shipments)
	return out
}

// Shipment returns the shipment attached for the store, if any.
func (o *Order) Shipment(storeID kernel.UUID) (StoreShipment, bool) {
	if i := o.shipmentIndex(storeID); i >= 0 {
		return o.shipments[i], true
	}
	return StoreShipment{}, false
}

// StoreIDs returns the distinct stores among the line items, in the order
// they first appear.
func (o *Order) StoreIDs() []kernel.UUID {
	stores := make([]kernel.UUID, 0, len(o.items))
	for _, item := range o.items {
		if !slices.ContainsFunc(stores, item.storeID.IsEqual) {
			stores = append(stores, item.storeID)
		}
	}
	return stores
}

// StoresMissingShipment returns the stores that have line items but no
// shipment, sorted by id.
func (o *Order) StoresMissingShipment() []kernel.UUID {
	missing := make([]kernel.UUID, 0)
	for _, storeID := range o.StoreIDs() {
		if o.shipmentIndex(storeID) < 0 {
			missing = append(missing, storeID)
		}
	}
	slices.SortFunc(missing, kernel.UUID.Compare)
	return missing
}

// ItemsTotal is the sum of the line item subtotals.
func (o *Order) ItemsTotal() kernel.Money {
	total := kernel.ZeroMoney()
	for _, item := range o.items {
		total = total.Add(item.Subtotal())
	}
	return total
}

// ShippingTotal is the sum of the store shipment values.
func (o *Order) ShippingTotal() kernel.Money {
	total := kernel.ZeroMoney()
	for _, s := range o.shipments {
		total = total.Add(s.value)
	}
	return total
}

// GrandTotal is ItemsTotal + ShippingTotal.
func (o *Order) GrandTotal() kernel.Money {
	return o.ItemsTotal().Add(o.ShippingTotal())
}

// AddItem adds a product line, or merges into the existing line for the same
// product. availableStock is the optimistic figure read from the inventory
// oracle; the resulting (summed) quantity must not exceed it.
//
// Merging keeps the existing line's store and unit price; adding the same
// product under a different store is rejected.
//
// Returns:
//   - the resulting line item (copy)
//   - InvalidArgument errors for bad ids, quantity, price or stock figure
//   - IllegalStateTransitionError outside Cart
//   - StockInsufficientError when the summed quantity exceeds availableStock
func (o *Order) AddItem(
	productID, storeID kernel.UUID,
	quantity int,
	unitPrice kernel.Money,
	availableStock int,
) (LineItem, error) {
	candidate, err := NewLineItem(o.id, productID, storeID, quantity, unitPrice)
	if err != nil {
		return LineItem{}, err
	}
	if err = validateAvailableStock(availableStock); err != nil {
		return LineItem{}, err
	}
	if err = o.status.ValidateCartMutation("add item"); err != nil {
		return LineItem{}, err
	}

	existing := o.findItemByProduct(productID)
	if existing == nil {
		if quantity > availableStock {
			return LineItem{}, errs.NewStockInsufficientError(productID.String(), quantity, availableStock)
		}
		o.items = append(o.items, candidate)
		return candidate.clone(), nil
	}

	if !existing.storeID.IsEqual(storeID) {
		return LineItem{}, errs.NewValueIsInvalidErrorWithCause(
			"store id is invalid",
			fmt.Errorf("product %s is already in the order from store %s", productID, existing.storeID),
		)
	}

	// The sum may overflow; compare against the headroom instead.
	if quantity > availableStock-existing.quantity {
		return LineItem{}, errs.NewStockInsufficientError(
			productID.String(), saturatingAdd(existing.quantity, quantity), availableStock,
		)
	}
	if err = existing.UpdateQuantity(existing.quantity + quantity); err != nil {
		return LineItem{}, err
	}
	return existing.clone(), nil
}

func saturatingAdd(a, b int) int {
	if a > math.MaxInt-b {
		return math.MaxInt
	}
	return a + b
}

// RemoveItem deletes a line item while in Cart.
func (o *Order) RemoveItem(itemID kernel.UUID) error {
	if err := itemID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("line item id", err)
	}
	if err := o.status.ValidateCartMutation("remove item"); err != nil {
		return err
	}

	i := slices.IndexFunc(o.items, func(item *LineItem) bool { return item.id.IsEqual(itemID) })
	if i < 0 {
		return errs.NewObjectNotFoundError("line item", itemID.String())
	}

	o.items = slices.Delete(o.items, i, i+1)
	return nil
}

// UpdateItemQuantity replaces a line item's quantity while in Cart.
// availableStock is the optimistic figure for the item's product.
func (o *Order) UpdateItemQuantity(itemID kernel.UUID, quantity, availableStock int) (LineItem, error) {
	if err := errors.Join(
		validateUUID("line item id", itemID),
		validateQuantity(quantity),
		validateAvailableStock(availableStock),
	); err != nil {
		return LineItem{}, err
	}
	if err := o.status.ValidateCartMutation("update item quantity"); err != nil {
		return LineItem{}, err
	}

	item := o.findItem(itemID)
	if item == nil {
		return LineItem{}, errs.NewObjectNotFoundError("line item", itemID.String())
	}
	if quantity > availableStock {
		return LineItem{}, errs.NewStockInsufficientError(item.productID.String(), quantity, availableStock)
	}

	if err := item.UpdateQuantity(quantity); err != nil {
		return LineItem{}, err
	}
	return item.clone(), nil
}

// SetShipment attaches the shipping charge for a store, replacing any
// previous charge for the same store. Allowed in Cart and AwaitingPayment.
func (o *Order) SetShipment(storeID kernel.UUID, value kernel.Money) error {
	shipment, err := NewStoreShipment(storeID, value)
	if err != nil {
		return err
	}
	if err = o.status.ValidateShipmentMutation(); err != nil {
		return err
	}

	if i := o.shipmentIndex(storeID); i >= 0 {
		o.shipments[i] = shipment
		return nil
	}
	o.shipments = append(o.shipments, shipment)
	return nil
}

// Finalize closes the cart and records the payment method.
//
// Preconditions, checked in this order:
//   - the order is in Cart (re-finalizing fails)
//   - there is at least one line item
//   - every store among the line items has a shipment (MissingShipmentError
//     names the stores that do not)
func (o *Order) Finalize(method PaymentMethod) error {
	if err := method.Validate(); err != nil {
		return err
	}

	next, err := o.status.Finalize()
	if err != nil {
		return err
	}
	if len(o.items) == 0 {
		return errs.NewIllegalStateTransitionErrorWithCause("finalize", o.status.String(), ErrOrderHasNoItems)
	}
	if missing := o.StoresMissingShipment(); len(missing) > 0 {
		ids := make([]string, len(missing))
		for i, id := range missing {
			ids[i] = id.String()
		}
		return errs.NewMissingShipmentError(ids)
	}

	o.paymentMethod = method
	o.transition(next, NewStockAdjustment(StockUnchanged, o.id, nil))
	return nil
}

// ConfirmPayment is the authoritative stock check. stock must be read from
// the inventory's source of truth immediately before calling; every line's
// quantity must be covered, otherwise the order stays in AwaitingPayment.
//
// On success the order is Paid, the payment time is now (never earlier than
// the creation time), and the returned StockDecrement adjustment lists what
// the caller must consume from inventory. Confirming twice fails, so a
// retried request cannot decrement twice.
func (o *Order) ConfirmPayment(stock StockSnapshot, now time.Time) (StockAdjustment, error) {
	next, err := o.status.ConfirmPayment()
	if err != nil {
		return StockAdjustment{}, err
	}

	for _, item := range o.items {
		if available := stock.Available(item.productID); item.quantity > available {
			return StockAdjustment{}, errs.NewStockInsufficientError(item.productID.String(), item.quantity, available)
		}
	}

	paidAt := now.UTC()
	if paidAt.Before(o.createdAt) {
		paidAt = o.createdAt
	}
	o.paidAt = &paidAt

	adjustment := NewStockAdjustment(StockDecrement, o.id, o.stockLines())
	o.transition(next, adjustment)
	return adjustment, nil
}

// StartPreparation moves a paid order to Preparing.
func (o *Order) StartPreparation() error {
	return o.advance(o.status.StartPreparation)
}

// MarkShipped moves a preparing order to Shipped.
func (o *Order) MarkShipped() error {
	return o.advance(o.status.MarkShipped)
}

// MarkDelivered moves a shipped order to Delivered.
func (o *Order) MarkDelivered() error {
	return o.advance(o.status.MarkDelivered)
}

// Cancel moves any non-terminal order to Cancelled. When the order held
// consumed stock (Paid, Preparing, Shipped) the returned StockRestore
// adjustment lists what the caller must return to inventory; cancelling from
// Cart or AwaitingPayment owes nothing because nothing was consumed.
func (o *Order) Cancel() (StockAdjustment, error) {
	next, err := o.status.Cancel()
	if err != nil {
		return StockAdjustment{}, err
	}

	adjustment := NewStockAdjustment(StockUnchanged, o.id, nil)
	if o.status.HoldsConsumedStock() {
		adjustment = NewStockAdjustment(StockRestore, o.id, o.stockLines())
	}

	o.transition(next, adjustment)
	return adjustment, nil
}

// DomainEvents returns the transitions recorded since the last clear.
func (o *Order) DomainEvents() []StatusChanged {
	out := make([]StatusChanged, len(o.events))
	copy(out, o.events)
	return out
}

// ClearDomainEvents drops recorded transitions once they were dispatched.
func (o *Order) ClearDomainEvents() {
	o.events = nil
}

func (o *Order) advance(next func() (Status, error)) error {
	status, err := next()
	if err != nil {
		return err
	}
	o.transition(status, NewStockAdjustment(StockUnchanged, o.id, nil))
	return nil
}

func (o *Order) transition(next Status, adjustment StockAdjustment) {
	o.events = append(o.events, StatusChanged{
		OrderID:    o.id,
		CustomerID: o.customerID,
		From:       o.status,
		To:         next,
		Adjustment: adjustment,
	})
	o.status = next
}

func (o *Order) stockLines() []StockLine {
	lines := make([]StockLine, 0, len(o.items))
	for _, item := range o.items {
		lines = append(lines, StockLine{ProductID: item.productID, Quantity: item.quantity})
	}
	return lines
}

func (o *Order) findItem(itemID kernel.UUID) *LineItem {
	for _, item := range o.items {
		if item.id.IsEqual(itemID) {
			return item
		}
	}
	return nil
}

func (o *Order) findItemByProduct(productID kernel.UUID) *LineItem {
	for _, item := range o.items {
		if item.productID.IsEqual(productID) {
			return item
		}
	}
	return nil
}

func (o *Order) shipmentIndex(storeID kernel.UUID) int {
	return slices.IndexFunc(o.shipments, func(s StoreShipment) bool { return s.storeID.IsEqual(storeID) })
}

func (o *Order) setDeliveryAddress(address kernel.Address) error {
	if err := address.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("delivery address", err)
	}
	o.deliveryAddress = address
	return nil
}

func (o *Order) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("created at")
	}
	o.createdAt = createdAt.UTC()
	return nil
}

func (o *Order) restoreItems(items []*LineItem) error {
	restored := make([]*LineItem, 0, len(items))
	var problems []string

	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
		if !item.orderID.IsEqual(o.id) {
			problems = append(problems, fmt.Sprintf("line item %s belongs to order %s", item.id, item.orderID))
			continue
		}
		if slices.ContainsFunc(restored, func(other *LineItem) bool { return other.productID.IsEqual(item.productID) }) {
			problems = append(problems, fmt.Sprintf("product %s appears in more than one line item", item.productID))
			continue
		}
		restored = append(restored, item)
	}

	if len(problems) > 0 {
		return errs.NewValueIsInvalidErrorWithCause("line items are invalid", errors.New(strings.Join(problems, "; ")))
	}
	if len(restored) == 0 && o.status != Cart && o.status != Cancelled {
		return errs.NewValueIsInvalidErrorWithCause("line items are invalid", ErrOrderHasNoItems)
	}

	o.items = restored
	return nil
}

func (o *Order) restoreShipments(shipments []StoreShipment) error {
	restored := make([]StoreShipment, 0, len(shipments))
	for _, s := range shipments {
		if err := s.Validate(); err != nil {
			return err
		}
		if slices.ContainsFunc(restored, func(other StoreShipment) bool { return other.storeID.IsEqual(s.storeID) }) {
			return errs.NewValueIsInvalidErrorWithCause(
				"shipments are invalid",
				fmt.Errorf("store %s has more than one shipment", s.storeID),
			)
		}
		restored = append(restored, s)
	}
	o.shipments = restored
	return nil
}

func (o *Order) restorePayment(method PaymentMethod, paidAt *time.Time) error {
	switch o.status {
	case Cart:
		if method != NoPaymentMethod || paidAt != nil {
			return errs.NewValueIsInvalidErrorWithCause(
				"payment is invalid",
				errors.New("an order in Cart has no payment method or payment time"),
			)
		}
	case AwaitingPayment:
		if err := method.Validate(); err != nil {
			return err
		}
		if paidAt != nil {
			return errs.NewValueIsInvalidErrorWithCause(
				"payment is invalid",
				errors.New("an order awaiting payment has no payment time"),
			)
		}
	case Paid, Preparing, Shipped, Delivered:
		if err := method.Validate(); err != nil {
			return err
		}
		if paidAt == nil {
			return errs.NewValueIsRequiredError("paid at")
		}
	case Cancelled, Unknown:
		if method != NoPaymentMethod {
			if err := method.Validate(); err != nil {
				return err
			}
		}
	}

	o.paymentMethod = method
	if paidAt != nil {
		if paidAt.Before(o.createdAt) {
			return errs.NewValueIsInvalidErrorWithCause(
				"paid at is invalid",
				fmt.Errorf("%s is before creation time %s", paidAt.UTC(), o.createdAt),
			)
		}
		t := paidAt.UTC()
		o.paidAt = &t
	}
	return nil
}

func validateUUID(name string, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause(name, err)
	}
	return nil
}

func validateAvailableStock(available int) error {
	if available < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"available stock is invalid",
			fmt.Errorf("%d is negative", available),
		)
	}
	return nil
}

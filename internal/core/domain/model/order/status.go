package order

import (
	"fmt"

	"marketplace/internal/pkg/errs"
)

// Status is the lifecycle state of an order.
//
// State transitions:
//
//	Cart ──> AwaitingPayment ──> Paid ──> Preparing ──> Shipped ──> Delivered
//	  │             │              │          │            │
//	  └─────────────┴──────────────┴──────────┴────────────┴──> Cancelled
//
// Delivered and Cancelled are terminal.
type Status int

const (
	// Unknown catches uninitialized values and is never a valid state.
	Unknown Status = iota

	// Cart is the initial state; items and shipments are being assembled.
	Cart

	// AwaitingPayment means the buyer finalized the cart and chose a payment
	// method. Shipments can still be re-quoted.
	AwaitingPayment

	// Paid means payment was confirmed and stock was consumed.
	Paid

	// Preparing means the stores are picking and packing.
	Preparing

	// Shipped means the parcels are in transit.
	Shipped

	// Delivered is the successful terminal state.
	Delivered

	// Cancelled is the unsuccessful terminal state.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:         "Unknown",
		Cart:            "Cart",
		AwaitingPayment: "AwaitingPayment",
		Paid:            "Paid",
		Preparing:       "Preparing",
		Shipped:         "Shipped",
		Delivered:       "Delivered",
		Cancelled:       "Cancelled",
	}
}

// ParseStatus converts a status name back into a Status.
func ParseStatus(s string) (Status, error) {
	for status, name := range getStatusStrings() {
		if status != Unknown && name == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%q is not a valid status", s))
}

// Validate rejects Unknown and out-of-range values, e.g. from persistence.
func (s Status) Validate() error {
	if s <= Unknown || s > Cancelled {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String implements fmt.Stringer; invalid values print as "Unknown".
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether no further transition is possible.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}

// HoldsConsumedStock reports whether stock was decremented for this order
// and has not been returned. Cancelling from such a state owes a restore.
func (s Status) HoldsConsumedStock() bool {
	return s == Paid || s == Preparing || s == Shipped
}

// ValidateCartMutation allows item changes only while in Cart.
func (s Status) ValidateCartMutation(operation string) error {
	if s != Cart {
		return errs.NewIllegalStateTransitionError(operation, s.String())
	}
	return nil
}

// ValidateShipmentMutation allows shipment changes in Cart and AwaitingPayment.
func (s Status) ValidateShipmentMutation() error {
	if s != Cart && s != AwaitingPayment {
		return errs.NewIllegalStateTransitionError("set shipment", s.String())
	}
	return nil
}

// Finalize transitions Cart -> AwaitingPayment.
func (s Status) Finalize() (Status, error) {
	return s.advance("finalize", Cart, AwaitingPayment)
}

// ConfirmPayment transitions AwaitingPayment -> Paid.
func (s Status) ConfirmPayment() (Status, error) {
	return s.advance("confirm payment", AwaitingPayment, Paid)
}

// StartPreparation transitions Paid -> Preparing.
func (s Status) StartPreparation() (Status, error) {
	return s.advance("start preparation", Paid, Preparing)
}

// MarkShipped transitions Preparing -> Shipped.
func (s Status) MarkShipped() (Status, error) {
	return s.advance("mark shipped", Preparing, Shipped)
}

// MarkDelivered transitions Shipped -> Delivered.
func (s Status) MarkDelivered() (Status, error) {
	return s.advance("mark delivered", Shipped, Delivered)
}

// Cancel transitions any non-terminal state to Cancelled. Cancelling an
// already cancelled order is an error, not a no-op.
func (s Status) Cancel() (Status, error) {
	if err := s.Validate(); err != nil {
		return Unknown, err
	}
	if s.IsTerminal() {
		return Unknown, errs.NewIllegalStateTransitionError("cancel", s.String())
	}
	return Cancelled, nil
}

func (s Status) advance(operation string, from, to Status) (Status, error) {
	if s != from {
		return Unknown, errs.NewIllegalStateTransitionError(operation, s.String())
	}
	return to, nil
}

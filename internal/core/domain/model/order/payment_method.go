package order

import (
	"fmt"

	"marketplace/internal/pkg/errs"
)

// PaymentMethod is the buyer's choice recorded when the cart is finalized.
// NoPaymentMethod is the zero value of an order still in Cart.
type PaymentMethod int

const (
	NoPaymentMethod PaymentMethod = iota
	CreditCard
	DebitCard
	Pix
	Boleto
)

var paymentMethodNames = map[PaymentMethod]string{
	NoPaymentMethod: "None",
	CreditCard:      "CreditCard",
	DebitCard:       "DebitCard",
	Pix:             "Pix",
	Boleto:          "Boleto",
}

func (p PaymentMethod) String() string {
	if name, ok := paymentMethodNames[p]; ok {
		return name
	}
	return "None"
}

// Validate accepts only the four real payment methods.
func (p PaymentMethod) Validate() error {
	if p < CreditCard || p > Boleto {
		return errs.NewValueIsInvalidErrorWithCause(
			"payment method is invalid",
			fmt.Errorf("%d is not a valid payment method", p),
		)
	}
	return nil
}

// ParsePaymentMethod converts a name such as "Pix" into a PaymentMethod.
func ParsePaymentMethod(s string) (PaymentMethod, error) {
	for method, name := range paymentMethodNames {
		if method != NoPaymentMethod && name == s {
			return method, nil
		}
	}
	return NoPaymentMethod, errs.NewValueIsInvalidErrorWithCause(
		"payment method is invalid",
		fmt.Errorf("%q is not a valid payment method", s),
	)
}

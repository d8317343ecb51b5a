package kernel

import (
	"fmt"

	"marketplace/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// MoneyScale is the number of decimal places kept for every amount.
const MoneyScale = 2

// Money is a non-negative monetary amount backed by an arbitrary-precision
// decimal, rounded to MoneyScale places. The zero value is a valid zero
// amount, which is what a free shipment costs.
type Money struct {
	amount decimal.Decimal
}

// NewMoney rounds amount to two places and rejects negative values.
func NewMoney(amount decimal.Decimal) (Money, error) {
	if amount.IsNegative() {
		return Money{}, errs.NewValueIsInvalidErrorWithCause(
			"money is invalid",
			fmt.Errorf("%s is negative", amount.String()),
		)
	}
	return Money{amount: amount.Round(MoneyScale)}, nil
}

// MoneyFromString parses a decimal string such as "10.00".
func MoneyFromString(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("money is invalid", err)
	}
	return NewMoney(d)
}

// MoneyFromCents builds an amount from an integer number of cents.
func MoneyFromCents(cents int64) (Money, error) {
	return NewMoney(decimal.New(cents, -MoneyScale))
}

// ZeroMoney returns a zero amount.
func ZeroMoney() Money {
	return Money{amount: decimal.Zero}
}

// Add returns the sum of both amounts.
func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount)}
}

// Mul multiplies the amount by a non-negative quantity. A negative quantity
// yields zero; quantities in the domain are validated before they get here.
func (m Money) Mul(quantity int) Money {
	if quantity <= 0 {
		return ZeroMoney()
	}
	return Money{amount: m.amount.Mul(decimal.NewFromInt(int64(quantity)))}
}

// SumMoney adds all values, returning zero for an empty list.
func SumMoney(values ...Money) Money {
	total := ZeroMoney()
	for _, v := range values {
		total = total.Add(v)
	}
	return total
}

func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

func (m Money) IsPositive() bool {
	return m.amount.IsPositive()
}

// Cmp returns -1, 0 or 1 like decimal.Decimal.Cmp.
func (m Money) Cmp(other Money) int {
	return m.amount.Cmp(other.amount)
}

// IsEqual compares by value, so 10 and 10.00 are equal.
func (m Money) IsEqual(other Money) bool {
	return m.amount.Equal(other.amount)
}

// Decimal exposes the underlying amount for persistence adapters.
func (m Money) Decimal() decimal.Decimal {
	return m.amount
}

// String renders the amount with exactly two decimal places.
func (m Money) String() string {
	return m.amount.StringFixed(MoneyScale)
}

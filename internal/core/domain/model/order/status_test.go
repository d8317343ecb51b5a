package order_test

import (
	"fmt"
	"testing"

	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var allStatuses = []order.Status{
	order.Cart,
	order.AwaitingPayment,
	order.Paid,
	order.Preparing,
	order.Shipped,
	order.Delivered,
	order.Cancelled,
}

func TestStatus_Validate(t *testing.T) {
	for _, status := range allStatuses {
		t.Run(fmt.Sprintf("should validate %s status", status), func(t *testing.T) {
			require.NoError(t, status.Validate())
		})
	}

	t.Run("should reject Unknown status", func(t *testing.T) {
		err := order.Unknown.Validate()

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject out of range status", func(t *testing.T) {
		err := order.Status(42).Validate()

		require.Error(t, err)
		assert.Contains(t, err.Error(), "42 is not a valid status")
	})
}

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "AwaitingPayment", order.AwaitingPayment.String())
	assert.Equal(t, "Cancelled", order.Cancelled.String())
	assert.Equal(t, "Unknown", order.Status(-3).String())
}

func TestParseStatus(t *testing.T) {
	for _, status := range allStatuses {
		parsed, err := order.ParseStatus(status.String())

		require.NoError(t, err)
		assert.Equal(t, status, parsed)
	}

	_, err := order.ParseStatus("Unknown")
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)

	_, err = order.ParseStatus("shipped")
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestStatus_Transitions(t *testing.T) {
	type transition func(order.Status) (order.Status, error)

	tests := []struct {
		name    string
		apply   transition
		from    order.Status
		to      order.Status
		opLabel string
	}{
		{"finalize", order.Status.Finalize, order.Cart, order.AwaitingPayment, "finalize"},
		{"confirm payment", order.Status.ConfirmPayment, order.AwaitingPayment, order.Paid, "confirm payment"},
		{"start preparation", order.Status.StartPreparation, order.Paid, order.Preparing, "start preparation"},
		{"mark shipped", order.Status.MarkShipped, order.Preparing, order.Shipped, "mark shipped"},
		{"mark delivered", order.Status.MarkDelivered, order.Shipped, order.Delivered, "mark delivered"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, from := range allStatuses {
				next, err := tt.apply(from)

				if from == tt.from {
					require.NoError(t, err)
					assert.Equal(t, tt.to, next)
					continue
				}

				require.Error(t, err, "from %s", from)
				assert.ErrorIs(t, err, errs.ErrIllegalStateTransition)
				assert.Contains(t, err.Error(), "cannot "+tt.opLabel+" in "+from.String()+" status")
				assert.Equal(t, order.Unknown, next)
			}
		})
	}
}

func TestStatus_Cancel(t *testing.T) {
	t.Run("should cancel every non-terminal status", func(t *testing.T) {
		for _, from := range []order.Status{order.Cart, order.AwaitingPayment, order.Paid, order.Preparing, order.Shipped} {
			next, err := from.Cancel()

			require.NoError(t, err, "from %s", from)
			assert.Equal(t, order.Cancelled, next)
		}
	})

	t.Run("should reject terminal statuses", func(t *testing.T) {
		for _, from := range []order.Status{order.Delivered, order.Cancelled} {
			_, err := from.Cancel()

			assert.ErrorIs(t, err, errs.ErrIllegalStateTransition, "from %s", from)
		}
	})

	t.Run("should reject Unknown", func(t *testing.T) {
		_, err := order.Unknown.Cancel()

		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestStatus_Predicates(t *testing.T) {
	terminal := map[order.Status]bool{order.Delivered: true, order.Cancelled: true}
	consumed := map[order.Status]bool{order.Paid: true, order.Preparing: true, order.Shipped: true}

	for _, s := range allStatuses {
		assert.Equal(t, terminal[s], s.IsTerminal(), "IsTerminal(%s)", s)
		assert.Equal(t, consumed[s], s.HoldsConsumedStock(), "HoldsConsumedStock(%s)", s)
	}
}

func TestStatus_MutationGuards(t *testing.T) {
	for _, s := range allStatuses {
		cartErr := s.ValidateCartMutation("add item")
		shipmentErr := s.ValidateShipmentMutation()

		if s == order.Cart {
			assert.NoError(t, cartErr)
		} else {
			assert.ErrorIs(t, cartErr, errs.ErrIllegalStateTransition, "cart mutation in %s", s)
		}

		if s == order.Cart || s == order.AwaitingPayment {
			assert.NoError(t, shipmentErr)
		} else {
			assert.ErrorIs(t, shipmentErr, errs.ErrIllegalStateTransition, "shipment mutation in %s", s)
		}
	}
}

func TestPaymentMethod(t *testing.T) {
	t.Run("should round trip names", func(t *testing.T) {
		for _, m := range []order.PaymentMethod{order.CreditCard, order.DebitCard, order.Pix, order.Boleto} {
			require.NoError(t, m.Validate())

			parsed, err := order.ParsePaymentMethod(m.String())
			require.NoError(t, err)
			assert.Equal(t, m, parsed)
		}
	})

	t.Run("should reject the empty method", func(t *testing.T) {
		assert.ErrorIs(t, order.NoPaymentMethod.Validate(), errs.ErrValueIsInvalid)

		_, err := order.ParsePaymentMethod("None")
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

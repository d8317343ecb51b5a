package order_test

import (
	"testing"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"

	"github.com/stretchr/testify/require"
)

var createdAt = time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

func mustMoney(t *testing.T, s string) kernel.Money {
	t.Helper()
	m, err := kernel.MoneyFromString(s)
	require.NoError(t, err)
	return m
}

func mustAddress(t *testing.T) kernel.Address {
	t.Helper()
	a, err := kernel.NewAddress(kernel.AddressFields{
		Street:     "Rua das Flores",
		Number:     "120",
		District:   "Centro",
		PostalCode: "01001-000",
		City:       "São Paulo",
		State:      "SP",
	})
	require.NoError(t, err)
	return a
}

func newCart(t *testing.T) *order.Order {
	t.Helper()
	o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), mustAddress(t), createdAt)
	require.NoError(t, err)
	return o
}

// newAwaitingPayment returns an order with one line per store, every store
// shipped, finalized with Pix.
func newAwaitingPayment(t *testing.T, lines ...order.StockLine) *order.Order {
	t.Helper()
	o := newCart(t)
	for _, line := range lines {
		storeID := kernel.NewUUID()
		_, err := o.AddItem(line.ProductID, storeID, line.Quantity, mustMoney(t, "10.00"), line.Quantity)
		require.NoError(t, err)
		require.NoError(t, o.SetShipment(storeID, mustMoney(t, "5.00")))
	}
	require.NoError(t, o.Finalize(order.Pix))
	return o
}

func newPaid(t *testing.T, lines ...order.StockLine) *order.Order {
	t.Helper()
	o := newAwaitingPayment(t, lines...)
	stock := order.StockSnapshot{}
	for _, line := range lines {
		stock[line.ProductID] = line.Quantity
	}
	_, err := o.ConfirmPayment(stock, createdAt.Add(time.Hour))
	require.NoError(t, err)
	return o
}

// newInStatus walks a fresh order with a single line through the state
// machine until it reaches the requested status.
func newInStatus(t *testing.T, status order.Status) *order.Order {
	t.Helper()
	line := order.StockLine{ProductID: kernel.NewUUID(), Quantity: 1}

	switch status {
	case order.Cart:
		return newCart(t)
	case order.AwaitingPayment:
		return newAwaitingPayment(t, line)
	case order.Paid:
		return newPaid(t, line)
	case order.Preparing:
		o := newPaid(t, line)
		require.NoError(t, o.StartPreparation())
		return o
	case order.Shipped:
		o := newInStatus(t, order.Preparing)
		require.NoError(t, o.MarkShipped())
		return o
	case order.Delivered:
		o := newInStatus(t, order.Shipped)
		require.NoError(t, o.MarkDelivered())
		return o
	case order.Cancelled:
		o := newCart(t)
		_, err := o.Cancel()
		require.NoError(t, err)
		return o
	default:
		t.Fatalf("unsupported status %s", status)
		return nil
	}
}

package order_test

import (
	"testing"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStockSnapshot_Available(t *testing.T) {
	known, negative, missing := kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID()
	snapshot := order.StockSnapshot{known: 4, negative: -1}

	assert.Equal(t, 4, snapshot.Available(known))
	assert.Equal(t, 0, snapshot.Available(negative))
	assert.Equal(t, 0, snapshot.Available(missing))

	var empty order.StockSnapshot
	assert.Equal(t, 0, empty.Available(known))
}

func TestStockAdjustment(t *testing.T) {
	orderID := kernel.NewUUID()
	lines := []order.StockLine{{ProductID: kernel.NewUUID(), Quantity: 2}}

	t.Run("should copy lines", func(t *testing.T) {
		adj := order.NewStockAdjustment(order.StockDecrement, orderID, lines)
		lines[0].Quantity = 99

		assert.Equal(t, 2, adj.Lines()[0].Quantity)
		assert.True(t, adj.Required())
		assert.Equal(t, "Decrement", adj.Kind().String())
	})

	t.Run("should drop lines for unchanged", func(t *testing.T) {
		adj := order.NewStockAdjustment(order.StockUnchanged, orderID, lines)

		assert.False(t, adj.Required())
		assert.Empty(t, adj.Lines())
		assert.True(t, adj.OrderID().IsEqual(orderID))
	})
}

func TestStoreShipment(t *testing.T) {
	storeID := kernel.NewUUID()

	t.Run("should accept free shipment", func(t *testing.T) {
		s, err := order.NewStoreShipment(storeID, kernel.ZeroMoney())

		require.NoError(t, err)
		require.NoError(t, s.Validate())
		assert.True(t, s.Value().IsZero())
	})

	t.Run("should reject missing store", func(t *testing.T) {
		_, err := order.NewStoreShipment(kernel.UUID{}, mustMoney(t, "1.00"))

		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should compare by value", func(t *testing.T) {
		a, _ := order.NewStoreShipment(storeID, mustMoney(t, "5"))
		b, _ := order.NewStoreShipment(storeID, mustMoney(t, "5.00"))
		c, _ := order.NewStoreShipment(storeID, mustMoney(t, "6.00"))

		assert.True(t, a.IsEqual(b))
		assert.False(t, a.IsEqual(c))
	})

	t.Run("should fail validation for zero value", func(t *testing.T) {
		assert.ErrorIs(t, order.StoreShipment{}.Validate(), order.ErrStoreShipmentIsNotConstructed)
	})
}

package guard_test

import (
	"errors"
	"testing"

	"marketplace/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("constructed_guard_returns_nil", func(t *testing.T) {
		g := guard.NewConstructorGuard()

		require.NoError(t, g.Validate(errors.New("not constructed")))
		require.NoError(t, g.Validate(nil))
	})

	t.Run("zero_value_guard_returns_custom_error", func(t *testing.T) {
		var g guard.ConstructorGuard
		expected := errors.New("entity not constructed")

		err := g.Validate(expected)

		require.Error(t, err)
		assert.Equal(t, expected, err)
	})

	t.Run("zero_value_guard_returns_default_error_when_nil", func(t *testing.T) {
		var g guard.ConstructorGuard

		err := g.Validate(nil)

		assert.Equal(t, guard.ErrDefaultConstructorGuard, err)
	})
}

// TestConstructorGuard_EmbeddedInValueObject shows the guard inside a value
// object: only the constructor yields a valid instance.
func TestConstructorGuard_EmbeddedInValueObject(t *testing.T) {
	type shipment struct {
		storeID string
		cents   int
		guard   guard.ConstructorGuard
	}

	errShipmentNotConstructed := errors.New("shipment must be created via newShipment")

	newShipment := func(storeID string, cents int) (shipment, error) {
		if storeID == "" {
			return shipment{}, errors.New("store id is required")
		}
		if cents < 0 {
			return shipment{}, errors.New("value cannot be negative")
		}
		return shipment{storeID: storeID, cents: cents, guard: guard.NewConstructorGuard()}, nil
	}

	t.Run("constructor_output_is_valid", func(t *testing.T) {
		s, err := newShipment("store-1", 500)

		require.NoError(t, err)
		require.NoError(t, s.guard.Validate(errShipmentNotConstructed))
	})

	t.Run("literal_is_rejected", func(t *testing.T) {
		s := shipment{storeID: "store-1", cents: 500}

		assert.Equal(t, errShipmentNotConstructed, s.guard.Validate(errShipmentNotConstructed))
	})

	t.Run("failed_construction_returns_zero_value", func(t *testing.T) {
		s, err := newShipment("", 500)

		require.Error(t, err)
		assert.Equal(t, errShipmentNotConstructed, s.guard.Validate(errShipmentNotConstructed))
	})
}

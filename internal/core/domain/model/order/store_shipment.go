package order

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

// ErrStoreShipmentIsNotConstructed is returned when a StoreShipment bypassed
// NewStoreShipment.
var ErrStoreShipmentIsNotConstructed = errors.New("StoreShipment must be created via NewStoreShipment constructor")

// StoreShipment is the shipping charge quoted for one store's portion of an
// order. It is an immutable value object; equality is by store and value.
type StoreShipment struct {
	storeID kernel.UUID
	value   kernel.Money

	guard guard.ConstructorGuard
}

// NewStoreShipment validates the store id. kernel.Money cannot hold a
// negative amount, so a free shipment (zero) is the lower bound.
func NewStoreShipment(storeID kernel.UUID, value kernel.Money) (StoreShipment, error) {
	s := StoreShipment{guard: guard.NewConstructorGuard()}
	if err := setUUID(&s.storeID, "store id", storeID); err != nil {
		return StoreShipment{}, err
	}
	s.value = value
	return s, nil
}

func (s StoreShipment) Validate() error {
	return s.guard.Validate(ErrStoreShipmentIsNotConstructed)
}

func (s StoreShipment) StoreID() kernel.UUID { return s.storeID }
func (s StoreShipment) Value() kernel.Money  { return s.value }

// IsEqual compares store id and value.
func (s StoreShipment) IsEqual(other StoreShipment) bool {
	return s.storeID.IsEqual(other.storeID) && s.value.IsEqual(other.value)
}

// Package guard provides ConstructorGuard, a marker embedded in value objects,
// entities and command objects to detect instances that bypassed their
// constructor.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when the guarded object
// is a zero value and no specific error was supplied.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard records whether its owner was built by a constructor.
// The zero value is "not constructed".
//
// Example:
//
//	type StoreShipment struct {
//	    storeID kernel.UUID
//	    value   kernel.Money
//	    guard   guard.ConstructorGuard
//	}
//
//	func (s StoreShipment) Validate() error {
//	    return s.guard.Validate(ErrStoreShipmentIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard marked as constructed. Call it only from
// the owner's constructor.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil for a constructed guard. Otherwise it returns
// validationError, or ErrDefaultConstructorGuard when validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if g.isConstructed {
		return nil
	}
	if validationError == nil {
		return ErrDefaultConstructorGuard
	}
	return validationError
}

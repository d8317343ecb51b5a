package errs

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrObjectNotFound         = errors.New("object not found")
	ErrValueIsInvalid         = errors.New("value is invalid")
	ErrValueIsOutOfRange      = errors.New("value is out of range")
	ErrValueIsRequired        = errors.New("value is required")
	ErrIllegalStateTransition = errors.New("illegal state transition")
	ErrStockInsufficient      = errors.New("stock is insufficient")
	ErrMissingShipment        = errors.New("shipment is missing")
)

// IsInvalidArgument reports whether err belongs to the malformed-input family:
// required, invalid or out-of-range values. Such errors are always raised
// before any state is mutated.
func IsInvalidArgument(err error) bool {
	return errors.Is(err, ErrValueIsRequired) ||
		errors.Is(err, ErrValueIsInvalid) ||
		errors.Is(err, ErrValueIsOutOfRange)
}

// ObjectNotFoundError is returned when a referenced object does not exist.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: param is: %s, ID is: %s (cause: %v)",
			ErrObjectNotFound, e.ParamName, e.ID, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrObjectNotFound, e.ID)
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// ValueIsInvalidError is returned when a value fails a domain rule.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsInvalidError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", ErrValueIsInvalid, e.ParamName, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrValueIsInvalid, e.ParamName)
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// ValueIsOutOfRangeError is returned when a value lies outside [Min, Max].
type ValueIsOutOfRangeError struct {
	ParamName string
	Value     any
	Min       any
	Max       any
	Cause     error
}

func NewValueIsOutOfRangeError(paramName string, value, minValue, maxValue any) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue}
}

func NewValueIsOutOfRangeErrorWithCause(
	paramName string,
	value, minValue, maxValue any,
	cause error,
) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue, Cause: cause}
}

func (e *ValueIsOutOfRangeError) Error() string {
	msg := fmt.Sprintf("%s: %s is %s, min value is %s, max value is %s",
		ErrValueIsInvalid, sanitize(e.Value), e.ParamName, sanitize(e.Min), sanitize(e.Max))
	if e.Cause != nil {
		return fmt.Sprintf("%s (cause: %v)", msg, e.Cause)
	}
	return msg
}

func (e *ValueIsOutOfRangeError) Unwrap() error {
	return ErrValueIsOutOfRange
}

// ValueIsRequiredError is returned when a mandatory value is empty.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsRequiredError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", ErrValueIsRequired, e.ParamName, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrValueIsRequired, e.ParamName)
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// IllegalStateTransitionError is returned when an operation is not permitted
// in the aggregate's current state.
type IllegalStateTransitionError struct {
	Operation string
	From      string
	Cause     error
}

func NewIllegalStateTransitionError(operation, from string) *IllegalStateTransitionError {
	return &IllegalStateTransitionError{Operation: operation, From: from}
}

func NewIllegalStateTransitionErrorWithCause(operation, from string, cause error) *IllegalStateTransitionError {
	return &IllegalStateTransitionError{Operation: operation, From: from, Cause: cause}
}

func (e *IllegalStateTransitionError) Error() string {
	msg := fmt.Sprintf("%s: cannot %s in %s status", ErrIllegalStateTransition, e.Operation, e.From)
	if e.Cause != nil {
		return fmt.Sprintf("%s (cause: %v)", msg, e.Cause)
	}
	return msg
}

func (e *IllegalStateTransitionError) Unwrap() error {
	return ErrIllegalStateTransition
}

// StockInsufficientError carries the product whose requested quantity exceeds
// the available stock, so callers can build their own user-facing message.
type StockInsufficientError struct {
	ProductID string
	Requested int
	Available int
}

func NewStockInsufficientError(productID string, requested, available int) *StockInsufficientError {
	return &StockInsufficientError{ProductID: productID, Requested: requested, Available: available}
}

func (e *StockInsufficientError) Error() string {
	return fmt.Sprintf("%s: product %s requested %d, available %d",
		ErrStockInsufficient, e.ProductID, e.Requested, e.Available)
}

func (e *StockInsufficientError) Unwrap() error {
	return ErrStockInsufficient
}

// MissingShipmentError lists the stores that have line items but no shipment.
type MissingShipmentError struct {
	StoreIDs []string
}

func NewMissingShipmentError(storeIDs []string) *MissingShipmentError {
	ids := make([]string, len(storeIDs))
	copy(ids, storeIDs)
	return &MissingShipmentError{StoreIDs: ids}
}

func (e *MissingShipmentError) Error() string {
	return fmt.Sprintf("%s: stores [%s]", ErrMissingShipment, strings.Join(e.StoreIDs, ", "))
}

func (e *MissingShipmentError) Unwrap() error {
	return ErrMissingShipment
}

func sanitize(v any) string {
	return strings.ReplaceAll(fmt.Sprintf("%v", v), "\n", " ")
}

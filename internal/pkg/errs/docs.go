// Package errs provides the error vocabulary shared by the marketplace order
// service. Every error type follows the same shape:
//   - A sentinel error variable (e.g., ErrStockInsufficient)
//   - A struct type carrying the structured details
//   - Constructor functions with and without cause where a cause makes sense
//   - Error() for formatting and Unwrap() returning the sentinel
//
// The families map onto the order aggregate's failure kinds:
//   - InvalidArgument: ValueIsRequiredError, ValueIsInvalidError,
//     ValueIsOutOfRangeError (see IsInvalidArgument)
//   - NotFound: ObjectNotFoundError
//   - IllegalStateTransition: IllegalStateTransitionError
//   - StockInsufficient: StockInsufficientError (product, requested, available)
//   - MissingShipment: MissingShipmentError (store ids)
//
// Callers classify with errors.Is against the sentinels and extract details
// with errors.As; user-facing wording is built from the struct fields by the
// caller, never by the domain.
package errs

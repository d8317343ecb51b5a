// Package kernel holds the shared value objects of the marketplace domain.
//
// The package includes:
//   - UUID: identifier for orders, line items, customers, products and stores
//   - Money: non-rounding-error monetary amount with two decimal places
//   - Address: the delivery (or store origin) address snapshot
//
// All values are immutable and safe for concurrent reads. Zero values are
// invalid and are rejected by each type's Validate method.
package kernel

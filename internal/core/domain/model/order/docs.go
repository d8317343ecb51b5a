// Package order implements the marketplace Order aggregate: a cart that
// collects line items from several independently operated stores, attaches
// one shipping charge per store and then moves through payment and delivery.
//
// The package includes:
//   - Order: the aggregate root owning line items and store shipments
//   - LineItem: one product line (product, store, quantity, unit price)
//   - StoreShipment: the shipping charge quoted for one store's portion
//   - Status: the fulfillment state machine
//   - StockSnapshot / StockAdjustment: the two-phase stock protocol
//
// Key business rules:
//   - Items can be added, changed or removed only while in Cart
//   - At most one line per product; repeated additions merge and the summed
//     quantity is re-checked against the optimistic stock figure
//   - Finalizing requires at least one item and a shipment for every store
//   - Payment confirmation re-checks stock against an authoritative snapshot
//   - Cart -> AwaitingPayment -> Paid -> Preparing -> Shipped -> Delivered,
//     with Cancelled reachable from every non-terminal state
//   - Every failed operation leaves the aggregate unchanged
//
// The aggregate performs no I/O. Stock figures are supplied by the caller and
// the stock side effects owed to inventory are returned as StockAdjustment
// values, never executed here.
package order

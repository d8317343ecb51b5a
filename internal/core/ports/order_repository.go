// Package ports defines the contracts between the order core and the outside
// world: persistence, inventory, shipping quotes and event delivery.
// Adapters under internal/adapters implement them; the application layer and
// its tests depend only on these interfaces.
package ports

import (
	"context"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates,
// including their line items and store shipments.
type OrderRepository interface {
	// Add persists a new order aggregate with all its children.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists the current state of an existing order, replacing its
	// line items and shipments with the aggregate's collections.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order by id. Inside a transaction the order row is
	// locked until commit, which serializes concurrent commands on the same
	// order. Returns errs.ObjectNotFoundError when the order does not exist.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAwaitingPaymentCreatedBefore returns up to limit orders still waiting
	// for payment that were created before the given time, oldest first.
	GetAwaitingPaymentCreatedBefore(ctx context.Context, before time.Time, limit int) ([]*order.Order, error)
}

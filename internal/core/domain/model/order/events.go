package order

import "marketplace/internal/core/domain/model/kernel"

// StatusChanged is recorded by the aggregate on every state transition and
// published after the enclosing transaction commits. Adjustment carries the
// stock side effect owed by the transition, if any.
type StatusChanged struct {
	OrderID    kernel.UUID
	CustomerID kernel.UUID
	From       Status
	To         Status
	Adjustment StockAdjustment
}

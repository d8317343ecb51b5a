package ports

import (
	"context"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
)

// InventoryOracle reports available stock. Figures may be stale by the time
// an order is paid; they back the optimistic check made while the cart is
// assembled.
type InventoryOracle interface {
	// AvailableStock returns the non-negative units available for a product.
	// Unknown products have no stock.
	AvailableStock(ctx context.Context, productID kernel.UUID) (int, error)

	// Snapshot returns the available units for every requested product.
	Snapshot(ctx context.Context, productIDs []kernel.UUID) (order.StockSnapshot, error)
}

// InventoryRepository is the authoritative, transactional side of inventory.
//
// Within a unit of work, Snapshot locks the product rows it reads so the
// figures cannot change before Apply runs in the same transaction.
type InventoryRepository interface {
	InventoryOracle

	// Apply performs the stock side effect owed by an order transition.
	// A decrement that would drive any product below zero fails with
	// errs.StockInsufficientError and changes nothing.
	Apply(ctx context.Context, adjustment order.StockAdjustment) error

	// Upsert sets the units available for a product.
	Upsert(ctx context.Context, productID kernel.UUID, quantity int) error
}

package stockcache

import (
	"context"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/ports"
)

var _ ports.EventPublisher = (*Invalidator)(nil)

// Invalidator listens to order status changes and evicts the products whose
// stock a transition consumed or returned.
type Invalidator struct {
	cache *Cache
}

func NewInvalidator(cache *Cache) *Invalidator {
	return &Invalidator{cache: cache}
}

func (i *Invalidator) Publish(ctx context.Context, event order.StatusChanged) error {
	if !event.Adjustment.Required() {
		return nil
	}

	lines := event.Adjustment.Lines()
	ids := make([]kernel.UUID, len(lines))
	for n, line := range lines {
		ids[n] = line.ProductID
	}
	return i.cache.Invalidate(ctx, ids...)
}

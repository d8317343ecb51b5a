package ports

import (
	"context"

	"marketplace/internal/core/domain/model/order"
)

// EventPublisher delivers order status changes to the rest of the system
// after the transaction that produced them has committed.
type EventPublisher interface {
	Publish(ctx context.Context, event order.StatusChanged) error
}

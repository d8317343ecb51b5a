package ports

import (
	"context"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/services"

	"github.com/shopspring/decimal"
)

// ShippingQuoteService prices shipping from a store's address to the buyer's.
// Callers turn the quote into a StoreShipment; the order never calls it.
type ShippingQuoteService interface {
	// Quote prices the route with the marketplace default tariff.
	Quote(ctx context.Context, origin, destination kernel.Address) (kernel.Money, error)

	// QuoteWithTariff prices the route with a store's own tariff.
	QuoteWithTariff(ctx context.Context, tariff services.Tariff, origin, destination kernel.Address) (kernel.Money, error)
}

// DistanceEstimator measures the route between two addresses in kilometres.
type DistanceEstimator interface {
	DistanceKm(ctx context.Context, origin, destination kernel.Address) (decimal.Decimal, error)
}

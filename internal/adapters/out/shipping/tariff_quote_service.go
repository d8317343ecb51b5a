package shipping

import (
	"context"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/services"
	"marketplace/internal/core/ports"
	"marketplace/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var _ ports.ShippingQuoteService = (*TariffQuoteService)(nil)

// TariffQuoteService prices a shipment with the marketplace default tariff or
// with a store's own one. The distance estimator is consulted only for
// distance-based tariffs.
type TariffQuoteService struct {
	calculator services.ShippingCalculator
	tariff     services.Tariff
	distances  ports.DistanceEstimator
}

func NewTariffQuoteService(
	calculator services.ShippingCalculator,
	tariff services.Tariff,
	distances ports.DistanceEstimator,
) (*TariffQuoteService, error) {
	if err := tariff.Validate(); err != nil {
		return nil, errs.NewValueIsRequiredErrorWithCause("tariff", err)
	}
	if tariff.Kind().NeedsDistance() && distances == nil {
		return nil, errs.NewValueIsRequiredError("distance estimator")
	}

	return &TariffQuoteService{
		calculator: calculator,
		tariff:     tariff,
		distances:  distances,
	}, nil
}

// Quote prices the route with the default tariff.
func (s *TariffQuoteService) Quote(ctx context.Context, origin, destination kernel.Address) (kernel.Money, error) {
	return s.QuoteWithTariff(ctx, s.tariff, origin, destination)
}

// QuoteWithTariff prices the route with the given tariff. Stores that price
// by distance need the service to have been built with an estimator.
func (s *TariffQuoteService) QuoteWithTariff(
	ctx context.Context,
	tariff services.Tariff,
	origin, destination kernel.Address,
) (kernel.Money, error) {
	if err := tariff.Validate(); err != nil {
		return kernel.Money{}, errs.NewValueIsRequiredErrorWithCause("tariff", err)
	}

	distance := decimal.Zero
	if tariff.Kind().NeedsDistance() {
		if s.distances == nil {
			return kernel.Money{}, errs.NewValueIsRequiredError("distance estimator")
		}
		var err error
		if distance, err = s.distances.DistanceKm(ctx, origin, destination); err != nil {
			return kernel.Money{}, err
		}
	}

	return s.calculator.Calculate(tariff, distance)
}

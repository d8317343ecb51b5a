package services

import (
	"fmt"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// DistanceBand is one step of a distance-band tariff. A route whose length is
// at most UpToKm is charged rate x Multiplier. The last band of a table must
// be open-ended (Unbounded) so every distance is covered.
type DistanceBand struct {
	UpToKm     decimal.Decimal
	Unbounded  bool
	Multiplier decimal.Decimal
}

// DefaultDistanceBands is the table used when none is configured:
// up to 10 km x1, up to 50 km x2, up to 200 km x3, beyond x5.
func DefaultDistanceBands() []DistanceBand {
	return []DistanceBand{
		{UpToKm: decimal.NewFromInt(10), Multiplier: decimal.NewFromInt(1)},
		{UpToKm: decimal.NewFromInt(50), Multiplier: decimal.NewFromInt(2)},
		{UpToKm: decimal.NewFromInt(200), Multiplier: decimal.NewFromInt(3)},
		{Unbounded: true, Multiplier: decimal.NewFromInt(5)},
	}
}

// ShippingCalculator is a domain service that prices one store's shipment
// from its tariff and the route length. It performs no I/O: the caller
// measures the distance (only when Tariff.Kind().NeedsDistance()) and passes
// it in.
//
// Example usage:
//
//	calc, _ := services.NewShippingCalculator()
//	tariff, _ := services.NewTariff(services.TariffPerKm, decimal.RequireFromString("0.50"))
//	value, err := calc.Calculate(tariff, decimal.NewFromInt(12))
//	// value == 6.00
type ShippingCalculator struct {
	bands []DistanceBand
}

// NewShippingCalculator builds a calculator with the given band table, or with
// DefaultDistanceBands when none is given. Bands must have strictly
// increasing upper bounds, non-negative multipliers, and end with exactly one
// open-ended band.
func NewShippingCalculator(bands ...DistanceBand) (ShippingCalculator, error) {
	if len(bands) == 0 {
		bands = DefaultDistanceBands()
	}
	if err := validateBands(bands); err != nil {
		return ShippingCalculator{}, err
	}

	copied := make([]DistanceBand, len(bands))
	copy(copied, bands)
	return ShippingCalculator{bands: copied}, nil
}

// Bands returns a copy of the band table.
func (c ShippingCalculator) Bands() []DistanceBand {
	out := make([]DistanceBand, len(c.bands))
	copy(out, c.bands)
	return out
}

// Calculate returns the shipping value for the tariff. distanceKm is ignored
// for Free and Fixed tariffs.
//
// Returns:
//   - the charge, rounded to cents
//   - ValueIsRequiredError for an unconstructed tariff
//   - ValueIsInvalidError for a negative distance
func (c ShippingCalculator) Calculate(tariff Tariff, distanceKm decimal.Decimal) (kernel.Money, error) {
	if err := tariff.Validate(); err != nil {
		return kernel.Money{}, errs.NewValueIsRequiredErrorWithCause("tariff", err)
	}

	switch tariff.kind {
	case TariffFree:
		return kernel.ZeroMoney(), nil
	case TariffFixed:
		return kernel.NewMoney(tariff.rate)
	}

	if distanceKm.IsNegative() {
		return kernel.Money{}, errs.NewValueIsInvalidErrorWithCause(
			"distance is invalid",
			fmt.Errorf("%s km is negative", distanceKm),
		)
	}

	switch tariff.kind {
	case TariffPerKm:
		return kernel.NewMoney(tariff.rate.Mul(distanceKm))
	case TariffDistanceBand:
		return kernel.NewMoney(tariff.rate.Mul(c.bandFor(distanceKm).Multiplier))
	default:
		return kernel.Money{}, errs.NewValueIsInvalidErrorWithCause(
			"tariff kind is invalid",
			fmt.Errorf("%s is not supported", tariff.kind),
		)
	}
}

func (c ShippingCalculator) bandFor(distanceKm decimal.Decimal) DistanceBand {
	for _, band := range c.bands {
		if band.Unbounded || distanceKm.LessThanOrEqual(band.UpToKm) {
			return band
		}
	}
	// unreachable: validateBands guarantees a trailing open-ended band
	return c.bands[len(c.bands)-1]
}

func validateBands(bands []DistanceBand) error {
	invalid := func(format string, args ...any) error {
		return errs.NewValueIsInvalidErrorWithCause("distance bands are invalid", fmt.Errorf(format, args...))
	}

	previous := decimal.Zero
	for i, band := range bands {
		last := i == len(bands)-1

		if band.Multiplier.IsNegative() {
			return invalid("band %d has negative multiplier %s", i, band.Multiplier)
		}
		if band.Unbounded != last {
			if last {
				return invalid("last band must be open-ended")
			}
			return invalid("band %d is open-ended but is not the last band", i)
		}
		if band.Unbounded {
			continue
		}
		if !band.UpToKm.GreaterThan(previous) {
			return invalid("band %d upper bound %s is not greater than %s", i, band.UpToKm, previous)
		}
		previous = band.UpToKm
	}
	return nil
}

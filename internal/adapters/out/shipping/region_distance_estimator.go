// Package shipping implements the shipping quote ports: a tariff-based quote
// service and a distance estimator that works from address fields alone.
package shipping

import (
	"context"
	"strings"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/ports"
	"marketplace/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var _ ports.DistanceEstimator = RegionDistanceEstimator{}

// RegionDistances are the kilometre figures assumed for each proximity level.
type RegionDistances struct {
	SameDistrict decimal.Decimal
	SameCity     decimal.Decimal
	SameState    decimal.Decimal
	Interstate   decimal.Decimal
}

// DefaultRegionDistances returns 3 km within a district, 15 km within a
// city, 150 km within a state and 800 km across states.
func DefaultRegionDistances() RegionDistances {
	return RegionDistances{
		SameDistrict: decimal.NewFromInt(3),
		SameCity:     decimal.NewFromInt(15),
		SameState:    decimal.NewFromInt(150),
		Interstate:   decimal.NewFromInt(800),
	}
}

// RegionDistanceEstimator guesses the route length by comparing the state,
// city and district of two addresses. It stands in for a routing API and
// never performs I/O.
type RegionDistanceEstimator struct {
	distances RegionDistances
}

func NewRegionDistanceEstimator(distances RegionDistances) (RegionDistanceEstimator, error) {
	for name, km := range map[string]decimal.Decimal{
		"same district distance": distances.SameDistrict,
		"same city distance":     distances.SameCity,
		"same state distance":    distances.SameState,
		"interstate distance":    distances.Interstate,
	} {
		if km.IsNegative() {
			return RegionDistanceEstimator{}, errs.NewValueIsOutOfRangeError(name, km, 0, "unbounded")
		}
	}
	return RegionDistanceEstimator{distances: distances}, nil
}

func (e RegionDistanceEstimator) DistanceKm(_ context.Context, origin, destination kernel.Address) (decimal.Decimal, error) {
	if err := origin.Validate(); err != nil {
		return decimal.Zero, errs.NewValueIsRequiredErrorWithCause("origin address", err)
	}
	if err := destination.Validate(); err != nil {
		return decimal.Zero, errs.NewValueIsRequiredErrorWithCause("destination address", err)
	}

	switch {
	case !sameName(origin.State(), destination.State()):
		return e.distances.Interstate, nil
	case !sameName(origin.City(), destination.City()):
		return e.distances.SameState, nil
	case !sameName(origin.District(), destination.District()):
		return e.distances.SameCity, nil
	default:
		return e.distances.SameDistrict, nil
	}
}

func sameName(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}

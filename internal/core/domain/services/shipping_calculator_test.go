package services_test

import (
	"testing"

	"marketplace/internal/core/domain/services"
	"marketplace/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustTariff(t *testing.T, kind services.TariffKind, rate string) services.Tariff {
	t.Helper()
	tariff, err := services.NewTariff(kind, decimal.RequireFromString(rate))
	require.NoError(t, err)
	return tariff
}

func TestNewTariff(t *testing.T) {
	t.Run("should reject negative rate", func(t *testing.T) {
		_, err := services.NewTariff(services.TariffFixed, decimal.RequireFromString("-1"))

		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "tariff rate is invalid")
	})

	t.Run("should reject unknown kind", func(t *testing.T) {
		_, err := services.NewTariff(services.TariffUnknown, decimal.Zero)

		assert.Contains(t, err.Error(), "tariff kind is invalid")
	})

	t.Run("should parse configured kind", func(t *testing.T) {
		kind, err := services.ParseTariffKind("DistanceBand")

		require.NoError(t, err)
		assert.Equal(t, services.TariffDistanceBand, kind)
		assert.True(t, kind.NeedsDistance())
		assert.False(t, services.TariffFixed.NeedsDistance())

		_, err = services.ParseTariffKind("Weight")
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestShippingCalculator_Calculate(t *testing.T) {
	calc, err := services.NewShippingCalculator()
	require.NoError(t, err)

	tests := []struct {
		name     string
		kind     services.TariffKind
		rate     string
		distance string
		want     string
	}{
		{"free ignores distance", services.TariffFree, "9.99", "500", "0.00"},
		{"fixed ignores distance", services.TariffFixed, "12.50", "500", "12.50"},
		{"fixed ignores negative distance", services.TariffFixed, "12.50", "-1", "12.50"},
		{"per km", services.TariffPerKm, "0.50", "12", "6.00"},
		{"per km rounds to cents", services.TariffPerKm, "0.333", "3", "1.00"},
		{"per km zero distance", services.TariffPerKm, "0.50", "0", "0.00"},
		{"first band", services.TariffDistanceBand, "8.00", "10", "8.00"},
		{"second band", services.TariffDistanceBand, "8.00", "10.01", "16.00"},
		{"third band", services.TariffDistanceBand, "8.00", "200", "24.00"},
		{"open band", services.TariffDistanceBand, "8.00", "1200", "40.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			value, err := calc.Calculate(mustTariff(t, tt.kind, tt.rate), decimal.RequireFromString(tt.distance))

			require.NoError(t, err)
			assert.Equal(t, tt.want, value.String())
		})
	}

	t.Run("should reject negative distance", func(t *testing.T) {
		_, err := calc.Calculate(mustTariff(t, services.TariffPerKm, "1"), decimal.RequireFromString("-0.1"))

		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "distance is invalid")
	})

	t.Run("should reject unconstructed tariff", func(t *testing.T) {
		_, err := calc.Calculate(services.Tariff{}, decimal.Zero)

		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestNewShippingCalculator(t *testing.T) {
	km := decimal.NewFromInt
	mult := decimal.NewFromInt

	t.Run("should use custom bands", func(t *testing.T) {
		calc, err := services.NewShippingCalculator(
			services.DistanceBand{UpToKm: km(5), Multiplier: mult(1)},
			services.DistanceBand{Unbounded: true, Multiplier: mult(4)},
		)
		require.NoError(t, err)

		value, err := calc.Calculate(mustTariff(t, services.TariffDistanceBand, "2.00"), km(6))

		require.NoError(t, err)
		assert.Equal(t, "8.00", value.String())
		assert.Len(t, calc.Bands(), 2)
	})

	tests := []struct {
		name  string
		bands []services.DistanceBand
		cause string
	}{
		{
			name:  "missing open band",
			bands: []services.DistanceBand{{UpToKm: km(10), Multiplier: mult(1)}},
			cause: "last band must be open-ended",
		},
		{
			name: "open band in the middle",
			bands: []services.DistanceBand{
				{Unbounded: true, Multiplier: mult(1)},
				{Unbounded: true, Multiplier: mult(2)},
			},
			cause: "band 0 is open-ended",
		},
		{
			name: "bounds not increasing",
			bands: []services.DistanceBand{
				{UpToKm: km(50), Multiplier: mult(1)},
				{UpToKm: km(50), Multiplier: mult(2)},
				{Unbounded: true, Multiplier: mult(3)},
			},
			cause: "band 1 upper bound 50 is not greater than 50",
		},
		{
			name: "negative multiplier",
			bands: []services.DistanceBand{
				{Unbounded: true, Multiplier: mult(-1)},
			},
			cause: "negative multiplier",
		},
	}

	for _, tt := range tests {
		t.Run("should reject "+tt.name, func(t *testing.T) {
			_, err := services.NewShippingCalculator(tt.bands...)

			require.Error(t, err)
			assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
			assert.Contains(t, err.Error(), tt.cause)
		})
	}
}

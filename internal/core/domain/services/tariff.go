package services

import (
	"errors"
	"fmt"

	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// ErrTariffIsNotConstructed is returned when a Tariff bypassed NewTariff.
var ErrTariffIsNotConstructed = errors.New("Tariff must be created via NewTariff constructor")

// TariffKind selects how a store prices its shipping.
type TariffKind int

const (
	TariffUnknown TariffKind = iota
	// TariffFree ships at no cost.
	TariffFree
	// TariffFixed charges the base rate regardless of distance.
	TariffFixed
	// TariffPerKm charges the base rate for every kilometre.
	TariffPerKm
	// TariffDistanceBand charges the base rate times the multiplier of the
	// distance band the route falls into.
	TariffDistanceBand
)

var tariffKindNames = map[TariffKind]string{
	TariffUnknown:      "Unknown",
	TariffFree:         "Free",
	TariffFixed:        "Fixed",
	TariffPerKm:        "PerKm",
	TariffDistanceBand: "DistanceBand",
}

func (k TariffKind) String() string {
	if name, ok := tariffKindNames[k]; ok {
		return name
	}
	return "Unknown"
}

// ParseTariffKind converts a configuration value such as "PerKm".
func ParseTariffKind(s string) (TariffKind, error) {
	for kind, name := range tariffKindNames {
		if kind != TariffUnknown && name == s {
			return kind, nil
		}
	}
	return TariffUnknown, errs.NewValueIsInvalidErrorWithCause(
		"tariff kind is invalid",
		fmt.Errorf("%q is not a valid tariff kind", s),
	)
}

// NeedsDistance reports whether the charge depends on the route length.
func (k TariffKind) NeedsDistance() bool {
	return k == TariffPerKm || k == TariffDistanceBand
}

// Tariff is a store's shipping pricing rule: a kind plus a base rate.
type Tariff struct {
	kind TariffKind
	rate decimal.Decimal

	guard guard.ConstructorGuard
}

// NewTariff validates the kind and rejects a negative base rate.
func NewTariff(kind TariffKind, rate decimal.Decimal) (Tariff, error) {
	t := Tariff{guard: guard.NewConstructorGuard()}

	if err := errors.Join(t.setKind(kind), t.setRate(rate)); err != nil {
		return Tariff{}, err
	}
	return t, nil
}

func (t Tariff) Validate() error {
	return t.guard.Validate(ErrTariffIsNotConstructed)
}

func (t Tariff) Kind() TariffKind      { return t.kind }
func (t Tariff) Rate() decimal.Decimal { return t.rate }

func (t *Tariff) setKind(kind TariffKind) error {
	if kind <= TariffUnknown || kind > TariffDistanceBand {
		return errs.NewValueIsInvalidErrorWithCause(
			"tariff kind is invalid",
			fmt.Errorf("%d is not a valid tariff kind", kind),
		)
	}
	t.kind = kind
	return nil
}

func (t *Tariff) setRate(rate decimal.Decimal) error {
	if rate.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause(
			"tariff rate is invalid",
			fmt.Errorf("%s is negative", rate),
		)
	}
	t.rate = rate
	return nil
}

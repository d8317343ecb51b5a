package kernel

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

// ErrAddressIsNotConstructed is returned when validating a zero-value Address.
var ErrAddressIsNotConstructed = errors.New("address must be created via NewAddress constructor")

// postalCodePattern matches a Brazilian CEP in the NNNNN-NNN form.
var postalCodePattern = regexp.MustCompile(`^\d{5}-\d{3}$`)

// AddressFields groups the raw parts of an address, so constructors and
// adapters do not pass seven positional strings around.
type AddressFields struct {
	Street     string
	Number     string
	Complement string
	District   string
	PostalCode string
	City       string
	State      string
}

// Address is an immutable postal address. Orders snapshot the delivery
// address at creation; stores expose an origin address for shipping quotes.
//
// Invariants:
//   - street, number, district, city are non-blank
//   - postal code matches NNNNN-NNN
//   - state is a two-letter code
//   - complement is optional
type Address struct {
	street     string
	number     string
	complement string
	district   string
	postalCode string
	city       string
	state      string

	guard guard.ConstructorGuard
}

// NewAddress validates every field and joins all violations into one error.
func NewAddress(f AddressFields) (Address, error) {
	a := Address{
		complement: strings.TrimSpace(f.Complement),
		guard:      guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		a.setStreet(f.Street),
		a.setNumber(f.Number),
		a.setDistrict(f.District),
		a.setPostalCode(f.PostalCode),
		a.setCity(f.City),
		a.setState(f.State),
	); err != nil {
		return Address{}, err
	}

	return a, nil
}

// Validate reports whether the address was built by NewAddress.
func (a Address) Validate() error {
	return a.guard.Validate(ErrAddressIsNotConstructed)
}

func (a Address) Street() string     { return a.street }
func (a Address) Number() string     { return a.number }
func (a Address) Complement() string { return a.complement }
func (a Address) District() string   { return a.district }
func (a Address) PostalCode() string { return a.postalCode }
func (a Address) City() string       { return a.city }
func (a Address) State() string      { return a.state }

// Fields returns the raw parts, e.g. for persistence.
func (a Address) Fields() AddressFields {
	return AddressFields{
		Street:     a.street,
		Number:     a.number,
		Complement: a.complement,
		District:   a.district,
		PostalCode: a.postalCode,
		City:       a.city,
		State:      a.state,
	}
}

// IsEqual compares addresses field by field.
func (a Address) IsEqual(other Address) bool {
	return a.Fields() == other.Fields()
}

// String formats the address on one line:
// "street, number[, complement] - district, city - state, postal code".
func (a Address) String() string {
	complement := ""
	if a.complement != "" {
		complement = ", " + a.complement
	}
	return fmt.Sprintf("%s, %s%s - %s, %s - %s, %s",
		a.street, a.number, complement, a.district, a.city, a.state, a.postalCode)
}

func (a *Address) setStreet(v string) error {
	return setRequired(&a.street, "street", v)
}

func (a *Address) setNumber(v string) error {
	return setRequired(&a.number, "number", v)
}

func (a *Address) setDistrict(v string) error {
	return setRequired(&a.district, "district", v)
}

func (a *Address) setCity(v string) error {
	return setRequired(&a.city, "city", v)
}

func (a *Address) setPostalCode(v string) error {
	v = strings.TrimSpace(v)
	if v == "" {
		return errs.NewValueIsRequiredError("postal code")
	}
	if !postalCodePattern.MatchString(v) {
		return errs.NewValueIsInvalidErrorWithCause("postal code", fmt.Errorf("%q is not in NNNNN-NNN format", v))
	}
	a.postalCode = v
	return nil
}

func (a *Address) setState(v string) error {
	v = strings.ToUpper(strings.TrimSpace(v))
	if len(v) != 2 {
		return errs.NewValueIsInvalidErrorWithCause("state", fmt.Errorf("%q is not a two-letter code", v))
	}
	a.state = v
	return nil
}

func setRequired(dst *string, name, v string) error {
	v = strings.TrimSpace(v)
	if v == "" {
		return errs.NewValueIsRequiredError(name)
	}
	*dst = v
	return nil
}

package kernel

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"catering/internal/pkg/errs"
	"catering/internal/pkg/guard"
)

const (
	AddressLineMinLength = 5
	CityMinLength        = 2
	CityMaxLength        = 120
)

// ErrAddressIsNotConstructed is returned when an Address skipped NewAddress.
var ErrAddressIsNotConstructed = errs.NewValueIsRequiredError("address must be created via NewAddress constructor")

// Address is the venue an order is delivered to. It is an immutable value object;
// the zero value is invalid.
//
// Example:
//
//	addr, err := kernel.NewAddress("12 rue des Lilas", "Bordeaux")
//	if err != nil {
//	    // Handle validation error
//	}
//	fmt.Println(addr) // 12 rue des Lilas, Bordeaux
type Address struct { //nolint:recvcheck //using for validation
	line  string
	city  string
	guard guard.ConstructorGuard
}

// NewAddress trims both parts and validates their lengths.
func NewAddress(line, city string) (Address, error) {
	addr := Address{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(addr.setLine(line), addr.setCity(city)); err != nil {
		return Address{}, err
	}

	return addr, nil
}

func (a Address) Validate() error {
	return a.guard.Validate(ErrAddressIsNotConstructed)
}

func (a Address) Line() string {
	return a.line
}

func (a Address) City() string {
	return a.city
}

func (a Address) String() string {
	return fmt.Sprintf("%s, %s", a.line, a.city)
}

// IsEqual compares both parts; the city comparison ignores case.
func (a Address) IsEqual(other Address) bool {
	return a.line == other.line && strings.EqualFold(a.city, other.city)
}

func (a *Address) setLine(line string) error {
	line = strings.TrimSpace(line)
	if line == "" {
		return errs.NewValueIsRequiredError("address")
	}
	if utf8.RuneCountInString(line) < AddressLineMinLength {
		return errs.NewValueIsInvalidErrorWithCause(
			"address",
			fmt.Errorf("must be at least %d characters", AddressLineMinLength),
		)
	}

	a.line = line
	return nil
}

func (a *Address) setCity(city string) error {
	city = strings.TrimSpace(city)
	if city == "" {
		return errs.NewValueIsRequiredError("city")
	}
	if n := utf8.RuneCountInString(city); n < CityMinLength || n > CityMaxLength {
		return errs.NewValueIsOutOfRangeError("city length", n, CityMinLength, CityMaxLength)
	}

	a.city = city
	return nil
}

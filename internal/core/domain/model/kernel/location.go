package kernel

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"warehouse/internal/pkg/errs"
	"warehouse/internal/pkg/guard"
)

const maxWarehouseCodeLength = 5

var ErrLocationIsNotConstructed = errs.NewValueIsRequiredError(
	"location must be created via NewLocation or LocationFromString constructors")

// Location is a stock location inside a warehouse, written as "<WAREHOUSE>/<NAME>",
// for example "WH/Stock1". The warehouse short code is upper-case alphanumeric and at
// most five characters long.
type Location struct { //nolint:recvcheck //using for validation
	warehouse string
	name      string
	guard     guard.ConstructorGuard
}

func NewLocation(warehouse string, name string) (Location, error) {
	loc := Location{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(loc.setWarehouse(warehouse), loc.setName(name)); err != nil {
		return Location{}, err
	}

	return loc, nil
}

// ValidateWarehouseCode checks a warehouse short code on its own.
func ValidateWarehouseCode(code string) error {
	var loc Location
	return loc.setWarehouse(code)
}

// LocationFromString parses the "<WAREHOUSE>/<NAME>" form.
func LocationFromString(code string) (Location, error) {
	warehouse, name, ok := strings.Cut(strings.TrimSpace(code), "/")
	if !ok {
		return Location{}, errs.NewValueIsInvalidErrorWithCause(
			"location", fmt.Errorf("%q has no warehouse prefix", code))
	}
	return NewLocation(warehouse, name)
}

func (l Location) Validate() error {
	return l.guard.Validate(ErrLocationIsNotConstructed)
}

func (l Location) Warehouse() string {
	return l.warehouse
}

func (l Location) Name() string {
	return l.name
}

func (l Location) String() string {
	return l.warehouse + "/" + l.name
}

func (l Location) IsEqual(other Location) bool {
	return l.Validate() == nil && other.Validate() == nil &&
		l.warehouse == other.warehouse && l.name == other.name
}

func (l *Location) setWarehouse(warehouse string) error {
	if warehouse == "" {
		return errs.NewValueIsRequiredError("warehouse")
	}
	if len(warehouse) > maxWarehouseCodeLength {
		return errs.NewValueIsOutOfRangeError("warehouse length", len(warehouse), 1, maxWarehouseCodeLength)
	}
	for _, r := range warehouse {
		if !unicode.IsUpper(r) && !unicode.IsDigit(r) {
			return errs.NewValueIsInvalidErrorWithCause(
				"warehouse", fmt.Errorf("%q must be upper-case alphanumeric", warehouse))
		}
	}

	l.warehouse = warehouse
	return nil
}

func (l *Location) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("location name")
	}
	if strings.Contains(name, "/") {
		return errs.NewValueIsInvalidErrorWithCause("location name", fmt.Errorf("%q must not contain '/'", name))
	}

	l.name = name
	return nil
}

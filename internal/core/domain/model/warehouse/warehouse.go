package warehouse

import (
	"errors"
	"fmt"
	"strings"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/pkg/errs"
	"warehouse/internal/pkg/guard"
)

var ErrWarehouseIsNotConstructed = errors.New("Warehouse must be created via NewWarehouse constructor")

// Warehouse is a site and the stock locations inside it.
//
// Warehouse follows these invariants:
//   - code is a valid warehouse short code
//   - every location belongs to the warehouse code
//   - location codes are unique and keep insertion order
type Warehouse struct {
	code    string
	name    string
	address string

	locations []StorageLocation

	// version is the persisted revision used for optimistic locking
	version int

	guard guard.ConstructorGuard
}

// NewWarehouse creates a warehouse without locations.
//
// Example:
//
//	w, err := warehouse.NewWarehouse("WH", "Main Warehouse", "12 Dock Road")
//	if err != nil {
//	    return err
//	}
//	loc, err := w.AddLocation("Stock1", "Storage Room A")
//	fmt.Println(loc.Location()) // WH/Stock1
func NewWarehouse(code string, name string, address string) (*Warehouse, error) {
	return RestoreWarehouse(code, name, address, nil, 0)
}

// RestoreWarehouse rebuilds a warehouse read from persistence.
func RestoreWarehouse(
	code string,
	name string,
	address string,
	locations []StorageLocation,
	version int,
) (*Warehouse, error) {
	w := &Warehouse{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		w.setCode(code),
		w.setName(name),
		w.setAddress(address),
		w.setVersion(version),
	); err != nil {
		return nil, err
	}

	for _, loc := range locations {
		if err := w.addLocation(loc); err != nil {
			return nil, err
		}
	}

	return w, nil
}

func (w *Warehouse) Validate() error {
	if w == nil {
		return ErrWarehouseIsNotConstructed
	}
	return w.guard.Validate(ErrWarehouseIsNotConstructed)
}

func (w *Warehouse) Code() string {
	return w.code
}

func (w *Warehouse) Name() string {
	return w.name
}

func (w *Warehouse) Address() string {
	return w.address
}

func (w *Warehouse) Version() int {
	return w.version
}

// Locations returns a copy of the locations in insertion order.
func (w *Warehouse) Locations() []StorageLocation {
	out := make([]StorageLocation, len(w.locations))
	copy(out, w.locations)
	return out
}

// Has reports whether the location is registered in this warehouse.
func (w *Warehouse) Has(location kernel.Location) bool {
	for _, loc := range w.locations {
		if loc.location.IsEqual(location) {
			return true
		}
	}
	return false
}

// AddLocation registers a location under the warehouse code.
func (w *Warehouse) AddLocation(code string, name string) (StorageLocation, error) {
	location, err := kernel.NewLocation(w.code, code)
	if err != nil {
		return StorageLocation{}, err
	}

	loc, err := NewStorageLocation(location, name)
	if err != nil {
		return StorageLocation{}, err
	}

	if err = w.addLocation(loc); err != nil {
		return StorageLocation{}, err
	}
	return loc, nil
}

func (w *Warehouse) addLocation(loc StorageLocation) error {
	if err := loc.Validate(); err != nil {
		return err
	}
	if loc.location.Warehouse() != w.code {
		return errs.NewValueIsInvalidErrorWithCause(
			"location", fmt.Errorf("%q is not in warehouse %q", loc.location.String(), w.code))
	}
	if w.Has(loc.location) {
		return errs.NewValueIsInvalidErrorWithCause(
			"location code", fmt.Errorf("%q is already used", loc.location.String()))
	}

	w.locations = append(w.locations, loc)
	return nil
}

func (w *Warehouse) setCode(code string) error {
	code = strings.TrimSpace(code)
	if err := kernel.ValidateWarehouseCode(code); err != nil {
		return err
	}
	w.code = code
	return nil
}

func (w *Warehouse) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("warehouse name")
	}
	w.name = name
	return nil
}

func (w *Warehouse) setAddress(address string) error {
	w.address = strings.TrimSpace(address)
	return nil
}

func (w *Warehouse) setVersion(version int) error {
	if version < 0 {
		return errs.NewValueIsOutOfRangeError("version", version, 0, "unbounded")
	}
	w.version = version
	return nil
}

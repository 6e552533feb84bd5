package warehouse

import (
	"errors"
	"strings"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/pkg/errs"
	"warehouse/internal/pkg/guard"
)

var ErrStorageLocationIsNotConstructed = errors.New(
	"StorageLocation must be created via NewStorageLocation constructor")

// StorageLocation is a named place inside a warehouse, such as a storage room or a rack.
type StorageLocation struct { //nolint:recvcheck //using for validation
	location kernel.Location
	name     string

	guard guard.ConstructorGuard
}

func NewStorageLocation(location kernel.Location, name string) (StorageLocation, error) {
	sl := StorageLocation{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(sl.setLocation(location), sl.setName(name)); err != nil {
		return StorageLocation{}, err
	}

	return sl, nil
}

func (s StorageLocation) Validate() error {
	return s.guard.Validate(ErrStorageLocationIsNotConstructed)
}

// Location is the code orders use, for example WH/Stock1.
func (s StorageLocation) Location() kernel.Location {
	return s.location
}

func (s StorageLocation) Name() string {
	return s.name
}

func (s *StorageLocation) setLocation(location kernel.Location) error {
	if err := location.Validate(); err != nil {
		return err
	}
	s.location = location
	return nil
}

func (s *StorageLocation) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("location name")
	}
	s.name = name
	return nil
}

package commands

import (
	"errors"
	"strings"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/pkg/errs"
	"warehouse/internal/pkg/guard"
)

var (
	ErrAddLocationCommandIsNotConstructed = errors.New(
		"AddLocationCommand must be created via NewAddLocationCommand constructor",
	)
)

// AddLocationCommand registers a stock location inside an existing warehouse.
//
// Example:
//
//	cmd, err := NewAddLocationCommand("WH", "Stock4", "Cold Room")
type AddLocationCommand struct { //nolint:recvcheck //using for validation
	location kernel.Location
	name     string

	guard guard.ConstructorGuard
}

func NewAddLocationCommand(warehouseCode string, code string, name string) (AddLocationCommand, error) {
	cmd := AddLocationCommand{
		guard: guard.NewConstructorGuard(),
	}

	location, err := kernel.NewLocation(strings.TrimSpace(warehouseCode), strings.TrimSpace(code))
	if err = errors.Join(err, cmd.setName(name)); err != nil {
		return AddLocationCommand{}, err
	}
	cmd.location = location

	return cmd, nil
}

func (c AddLocationCommand) Validate() error {
	return c.guard.Validate(ErrAddLocationCommandIsNotConstructed)
}

func (c AddLocationCommand) Location() kernel.Location {
	return c.location
}

func (c AddLocationCommand) Name() string {
	return c.name
}

func (c *AddLocationCommand) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("location name")
	}

	c.name = name
	return nil
}

package commands

import (
	"errors"
	"strings"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/pkg/errs"
	"warehouse/internal/pkg/guard"
)

var (
	ErrCreateWarehouseCommandIsNotConstructed = errors.New(
		"CreateWarehouseCommand must be created via NewCreateWarehouseCommand constructor",
	)
)

// CreateWarehouseCommand registers a new warehouse under a unique short code.
//
// Example:
//
//	cmd, err := NewCreateWarehouseCommand("WH", "Main Warehouse", "12 Dock Road")
type CreateWarehouseCommand struct { //nolint:recvcheck //using for validation
	code    string
	name    string
	address string

	guard guard.ConstructorGuard
}

func NewCreateWarehouseCommand(code string, name string, address string) (CreateWarehouseCommand, error) {
	cmd := CreateWarehouseCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCode(code),
		cmd.setName(name),
	); err != nil {
		return CreateWarehouseCommand{}, err
	}
	cmd.address = strings.TrimSpace(address)

	return cmd, nil
}

func (c CreateWarehouseCommand) Validate() error {
	return c.guard.Validate(ErrCreateWarehouseCommandIsNotConstructed)
}

func (c CreateWarehouseCommand) Code() string {
	return c.code
}

func (c CreateWarehouseCommand) Name() string {
	return c.name
}

func (c CreateWarehouseCommand) Address() string {
	return c.address
}

func (c *CreateWarehouseCommand) setCode(code string) error {
	code = strings.TrimSpace(code)
	if err := kernel.ValidateWarehouseCode(code); err != nil {
		return err
	}

	c.code = code
	return nil
}

func (c *CreateWarehouseCommand) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("warehouse name")
	}

	c.name = name
	return nil
}

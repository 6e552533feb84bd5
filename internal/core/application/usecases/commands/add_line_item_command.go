package commands

import (
	"errors"
	"fmt"
	"strings"

	"warehouse/internal/core/domain/model/order"
	"warehouse/internal/pkg/errs"
	"warehouse/internal/pkg/guard"
)

var (
	ErrAddLineItemCommandIsNotConstructed = errors.New(
		"AddLineItemCommand must be created via NewAddLineItemCommand constructor",
	)
)

// AddLineItemCommand appends a product line to an existing order.
type AddLineItemCommand struct { //nolint:recvcheck //using for validation
	kind     order.Kind
	orderID  int
	code     string
	name     string
	quantity int

	guard guard.ConstructorGuard
}

// NewAddLineItemCommand validates the target order and the product line.
//
// Example:
//
//	cmd, err := NewAddLineItemCommand(order.Delivery, 7, "DESK001", "Desk", 6)
func NewAddLineItemCommand(
	kind order.Kind,
	orderID int,
	code string,
	name string,
	quantity int,
) (AddLineItemCommand, error) {
	cmd := AddLineItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setKind(kind),
		cmd.setOrderID(orderID),
		cmd.setCode(code),
		cmd.setName(name),
		cmd.setQuantity(quantity),
	); err != nil {
		return AddLineItemCommand{}, err
	}

	return cmd, nil
}

func (c AddLineItemCommand) Validate() error {
	return c.guard.Validate(ErrAddLineItemCommandIsNotConstructed)
}

func (c AddLineItemCommand) Kind() order.Kind {
	return c.kind
}

func (c AddLineItemCommand) OrderID() int {
	return c.orderID
}

func (c AddLineItemCommand) Code() string {
	return c.code
}

func (c AddLineItemCommand) Name() string {
	return c.name
}

func (c AddLineItemCommand) Quantity() int {
	return c.quantity
}

func (c *AddLineItemCommand) setKind(kind order.Kind) error {
	if err := kind.Validate(); err != nil {
		return err
	}

	c.kind = kind
	return nil
}

func (c *AddLineItemCommand) setOrderID(orderID int) error {
	if orderID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("order id is invalid", fmt.Errorf("%d is not greater than 0", orderID))
	}

	c.orderID = orderID
	return nil
}

func (c *AddLineItemCommand) setCode(code string) error {
	code = strings.TrimSpace(code)
	if code == "" {
		return errs.NewValueIsRequiredError("code")
	}

	c.code = code
	return nil
}

func (c *AddLineItemCommand) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}

	c.name = name
	return nil
}

func (c *AddLineItemCommand) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity is invalid", fmt.Errorf("%d is not greater than 0", quantity))
	}

	c.quantity = quantity
	return nil
}

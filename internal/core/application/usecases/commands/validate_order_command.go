package commands

import (
	"errors"
	"fmt"

	"warehouse/internal/core/domain/model/order"
	"warehouse/internal/pkg/errs"
	"warehouse/internal/pkg/guard"
)

var (
	ErrValidateOrderCommandIsNotConstructed = errors.New(
		"ValidateOrderCommand must be created via NewValidateOrderCommand constructor",
	)
)

// ValidateOrderCommand asks to move an order one step along its workflow.
type ValidateOrderCommand struct { //nolint:recvcheck //using for validation
	kind    order.Kind
	orderID int

	guard guard.ConstructorGuard
}

func NewValidateOrderCommand(kind order.Kind, orderID int) (ValidateOrderCommand, error) {
	cmd := ValidateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setKind(kind),
		cmd.setOrderID(orderID),
	); err != nil {
		return ValidateOrderCommand{}, err
	}

	return cmd, nil
}

func (c ValidateOrderCommand) Validate() error {
	return c.guard.Validate(ErrValidateOrderCommandIsNotConstructed)
}

func (c ValidateOrderCommand) Kind() order.Kind {
	return c.kind
}

func (c ValidateOrderCommand) OrderID() int {
	return c.orderID
}

func (c *ValidateOrderCommand) setKind(kind order.Kind) error {
	if err := kind.Validate(); err != nil {
		return err
	}

	c.kind = kind
	return nil
}

func (c *ValidateOrderCommand) setOrderID(orderID int) error {
	if orderID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("order id is invalid", fmt.Errorf("%d is not greater than 0", orderID))
	}

	c.orderID = orderID
	return nil
}

package commands

import (
	"errors"
	"strings"
	"time"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/order"
	"warehouse/internal/pkg/errs"
	"warehouse/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
)

// CreateOrderCommand represents a request to open a new receipt or delivery.
// The sequence number is allocated by the handler.
//
// Example:
//
//	loc, _ := kernel.LocationFromString("WH/Stock1")
//	cmd, err := NewCreateOrderCommand(order.Delivery, "Azure Interior", loc, scheduledAt)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	id, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
//	fmt.Println(order.FormatReference(order.Delivery, id)) // WH/OUT/0006
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	kind        order.Kind
	partner     string
	location    kernel.Location
	scheduledAt time.Time

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to open a Draft order.
func NewCreateOrderCommand(
	kind order.Kind,
	partner string,
	location kernel.Location,
	scheduledAt time.Time,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setKind(kind),
		cmd.setPartner(partner),
		cmd.setLocation(location),
		cmd.setScheduledAt(scheduledAt),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) Kind() order.Kind {
	return c.kind
}

func (c CreateOrderCommand) Partner() string {
	return c.partner
}

func (c CreateOrderCommand) Location() kernel.Location {
	return c.location
}

func (c CreateOrderCommand) ScheduledAt() time.Time {
	return c.scheduledAt
}

func (c *CreateOrderCommand) setKind(kind order.Kind) error {
	if err := kind.Validate(); err != nil {
		return err
	}

	c.kind = kind
	return nil
}

func (c *CreateOrderCommand) setPartner(partner string) error {
	partner = strings.TrimSpace(partner)
	if partner == "" {
		return errs.NewValueIsRequiredError("partner")
	}

	c.partner = partner
	return nil
}

func (c *CreateOrderCommand) setLocation(location kernel.Location) error {
	if err := location.Validate(); err != nil {
		return err
	}

	c.location = location
	return nil
}

func (c *CreateOrderCommand) setScheduledAt(scheduledAt time.Time) error {
	if scheduledAt.IsZero() {
		return errs.NewValueIsRequiredError("scheduled date")
	}

	c.scheduledAt = scheduledAt
	return nil
}

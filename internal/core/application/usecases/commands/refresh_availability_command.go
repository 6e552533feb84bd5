package commands

import (
	"errors"
	"fmt"

	"warehouse/internal/pkg/errs"
	"warehouse/internal/pkg/guard"
)

var (
	ErrRefreshAvailabilityCommandIsNotConstructed = errors.New(
		"RefreshAvailabilityCommand must be created via NewRefreshAvailabilityCommand constructor",
	)
)

// RefreshAvailabilityCommand re-reads stock for delivery lines. Without a delivery id
// it targets every Draft or Waiting delivery.
type RefreshAvailabilityCommand struct { //nolint:recvcheck //using for validation
	deliveryID int

	guard guard.ConstructorGuard
}

// NewRefreshAvailabilityCommand targets all open deliveries.
func NewRefreshAvailabilityCommand() (RefreshAvailabilityCommand, error) {
	return RefreshAvailabilityCommand{
		guard: guard.NewConstructorGuard(),
	}, nil
}

// NewRefreshDeliveryAvailabilityCommand targets a single delivery.
func NewRefreshDeliveryAvailabilityCommand(deliveryID int) (RefreshAvailabilityCommand, error) {
	if deliveryID <= 0 {
		return RefreshAvailabilityCommand{}, errs.NewValueIsInvalidErrorWithCause(
			"delivery id is invalid", fmt.Errorf("%d is not greater than 0", deliveryID),
		)
	}

	return RefreshAvailabilityCommand{
		deliveryID: deliveryID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c RefreshAvailabilityCommand) Validate() error {
	return c.guard.Validate(ErrRefreshAvailabilityCommandIsNotConstructed)
}

// DeliveryID returns the targeted delivery and whether one was set.
func (c RefreshAvailabilityCommand) DeliveryID() (int, bool) {
	return c.deliveryID, c.deliveryID > 0
}

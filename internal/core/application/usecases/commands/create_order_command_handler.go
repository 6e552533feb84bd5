package commands

import (
	"context"
	"errors"
	"fmt"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/order"
	"warehouse/internal/core/ports"
	"warehouse/internal/pkg/errs"
)

// CreateOrderCommandHandler allocates the next sequence number for the kind and
// persists a Draft order without lines. The location must be registered in the
// warehouse registry.
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order creation command and returns the allocated id.
// Sequence allocation and insert share one transaction.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := checkLocation(ctx, uow.WarehouseRepository(), cmd.Location()); err != nil {
		return 0, err
	}

	orderRepo := uow.OrderRepository()
	id, err := orderRepo.NextID(ctx, cmd.Kind())
	if err != nil {
		return 0, err
	}

	o, err := order.NewOrder(id, cmd.Kind(), cmd.Partner(), cmd.Location(), cmd.ScheduledAt())
	if err != nil {
		return 0, err
	}

	if err = orderRepo.Add(ctx, o); err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return id, nil
}

// checkLocation fails with a ValueIsInvalidError when the location is not registered.
func checkLocation(ctx context.Context, repo ports.WarehouseRepository, location kernel.Location) error {
	w, err := repo.Get(ctx, location.Warehouse())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return errs.NewValueIsInvalidErrorWithCause(
			"location", fmt.Errorf("warehouse %q is not registered", location.Warehouse()))
	}
	if err != nil {
		return err
	}

	if !w.Has(location) {
		return errs.NewValueIsInvalidErrorWithCause(
			"location", fmt.Errorf("%q is not registered", location.String()))
	}
	return nil
}

package commands

import (
	"context"
	"errors"
	"fmt"

	"warehouse/internal/core/domain/model/warehouse"
	"warehouse/internal/pkg/errs"
)

// CreateWarehouseCommandHandler adds a warehouse without locations. Short codes are
// unique across the registry.
type CreateWarehouseCommandHandler struct {
	uowFactory WarehouseUoWFactory
}

func NewCreateWarehouseCommandHandler(uowFactory WarehouseUoWFactory) CreateWarehouseCommandHandler {
	return CreateWarehouseCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h *CreateWarehouseCommandHandler) Handle(ctx context.Context, cmd CreateWarehouseCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	w, err := warehouse.NewWarehouse(cmd.Code(), cmd.Name(), cmd.Address())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.WarehouseRepository()
	_, err = repo.Get(ctx, cmd.Code())
	switch {
	case err == nil:
		return errs.NewValueIsInvalidErrorWithCause(
			"warehouse code", fmt.Errorf("short code %q is already used", cmd.Code()))
	case !errors.Is(err, errs.ErrObjectNotFound):
		return err
	}

	if err = repo.Add(ctx, w); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

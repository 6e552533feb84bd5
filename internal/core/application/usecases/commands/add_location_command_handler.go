package commands

import (
	"context"

	"warehouse/internal/core/domain/model/kernel"
)

// AddLocationCommandHandler appends a location to a registered warehouse.
type AddLocationCommandHandler struct {
	uowFactory WarehouseUoWFactory
}

func NewAddLocationCommandHandler(uowFactory WarehouseUoWFactory) AddLocationCommandHandler {
	return AddLocationCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle returns the full location, for example WH/Stock4. A location code already
// used in the warehouse fails with errs.ValueIsInvalidError.
func (h *AddLocationCommandHandler) Handle(ctx context.Context, cmd AddLocationCommand) (kernel.Location, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.Location{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return kernel.Location{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.WarehouseRepository()
	w, err := repo.Get(ctx, cmd.Location().Warehouse())
	if err != nil {
		return kernel.Location{}, err
	}

	added, err := w.AddLocation(cmd.Location().Name(), cmd.Name())
	if err != nil {
		return kernel.Location{}, err
	}

	if err = repo.Update(ctx, w); err != nil {
		return kernel.Location{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.Location{}, err
	}

	return added.Location(), nil
}

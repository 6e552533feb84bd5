package commands

import (
	"context"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/order"
)

// AddLineItemCommandHandler appends a line with a generated id. The stock flag of a
// delivery line comes from the inventory lookup; receipt lines are always in stock.
type AddLineItemCommandHandler struct {
	uowFactory StockUoWFactory
}

func NewAddLineItemCommandHandler(uowFactory StockUoWFactory) AddLineItemCommandHandler {
	return AddLineItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle returns the id of the new line. Done orders reject the line with
// errs.TransitionIsInvalidError.
func (h *AddLineItemCommandHandler) Handle(ctx context.Context, cmd AddLineItemCommand) (kernel.UUID, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.UUID{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return kernel.UUID{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.Get(ctx, cmd.Kind(), cmd.OrderID())
	if err != nil {
		return kernel.UUID{}, err
	}

	inStock, err := newStockChecker(uow.Inventory()).InStock(ctx, cmd.Kind(), cmd.Code(), cmd.Quantity())
	if err != nil {
		return kernel.UUID{}, err
	}

	line, err := order.NewLineItem(kernel.NewUUID(), cmd.Code(), cmd.Name(), cmd.Quantity(), inStock)
	if err != nil {
		return kernel.UUID{}, err
	}

	if err = o.AddLine(line); err != nil {
		return kernel.UUID{}, err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return kernel.UUID{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.UUID{}, err
	}

	return line.ID(), nil
}

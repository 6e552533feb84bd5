package commands

import (
	"context"
	"errors"
	"time"

	"warehouse/internal/core/domain/model/order"
	"warehouse/internal/core/domain/services"
	"warehouse/internal/pkg/errs"
)

// ValidateOrderResult describes the outcome of a Validate action.
type ValidateOrderResult struct {
	Reference string
	Previous  order.Status
	Status    order.Status

	// Changed is false when the action was a no-op: Waiting stayed Waiting or the
	// order was already Done.
	Changed bool

	// Posted is the number of ledger entries written when the order reached Done.
	Posted int
}

// ValidateOrderCommandHandler runs the workflow engine on one order. Reaching Done
// posts the order's stock movements to the ledger in the same transaction. An order
// whose movements are already in the ledger is never posted again.
//
// Example:
//
//	handler := NewValidateOrderCommandHandler(uowFactory, services.NewStockPoster())
//	cmd, _ := NewValidateOrderCommand(order.Delivery, 7)
//	res, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(res.Reference, res.Previous, "->", res.Status)
type ValidateOrderCommandHandler struct {
	uowFactory UoWFactory
	poster     services.StockPoster
	now        func() time.Time
}

func NewValidateOrderCommandHandler(uowFactory UoWFactory, poster services.StockPoster) ValidateOrderCommandHandler {
	return ValidateOrderCommandHandler{
		uowFactory: uowFactory,
		poster:     poster,
		now:        time.Now,
	}
}

// Handle advances the order. An invalid transition is not an error here: the result
// carries the unchanged status.
func (h *ValidateOrderCommandHandler) Handle(ctx context.Context, cmd ValidateOrderCommand) (ValidateOrderResult, error) {
	if err := cmd.Validate(); err != nil {
		return ValidateOrderResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return ValidateOrderResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.Get(ctx, cmd.Kind(), cmd.OrderID())
	if err != nil {
		return ValidateOrderResult{}, err
	}

	res := ValidateOrderResult{
		Reference: o.Reference(),
		Previous:  o.Status(),
	}

	if err = o.Advance(); err != nil {
		if errors.Is(err, errs.ErrTransitionIsInvalid) {
			res.Status = o.Status()
			return res, nil
		}
		return ValidateOrderResult{}, err
	}

	res.Status = o.Status()
	res.Changed = res.Status != res.Previous
	if !res.Changed {
		return res, nil
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return ValidateOrderResult{}, err
	}

	if o.Status() == order.Done {
		ledgerRepo := uow.LedgerRepository()
		posted, err := ledgerRepo.GetByReference(ctx, o.Reference())
		if err != nil {
			return ValidateOrderResult{}, err
		}
		if len(posted) > 0 {
			return ValidateOrderResult{}, errs.NewTransitionIsInvalidError(
				o.Reference(), res.Previous.String(), "post stock twice for",
			)
		}

		entries, err := h.poster.Post(o, h.now())
		if err != nil {
			return ValidateOrderResult{}, err
		}
		if len(entries) > 0 {
			if err = ledgerRepo.Append(ctx, entries...); err != nil {
				return ValidateOrderResult{}, err
			}
		}
		res.Posted = len(entries)
	}

	if err = uow.Commit(ctx); err != nil {
		return ValidateOrderResult{}, err
	}

	return res, nil
}

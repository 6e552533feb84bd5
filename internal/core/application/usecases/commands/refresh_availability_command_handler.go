package commands

import (
	"context"
	"errors"

	"warehouse/internal/core/domain/model/order"
	"warehouse/internal/pkg/errs"
)

// RefreshAvailabilityResult counts the deliveries inspected, those whose line stock
// flags changed and those skipped because another writer got there first.
type RefreshAvailabilityResult struct {
	Checked int
	Updated int
	Skipped int
}

// RefreshAvailabilityCommandHandler pulls fresh stock flags from the inventory
// lookup into open deliveries. Statuses are not touched; the next Validate action
// picks up the new flags. Every delivery is refreshed in its own transaction.
type RefreshAvailabilityCommandHandler struct {
	uowFactory StockUoWFactory
}

func NewRefreshAvailabilityCommandHandler(uowFactory StockUoWFactory) RefreshAvailabilityCommandHandler {
	return RefreshAvailabilityCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle refreshes one delivery, or every Draft and Waiting delivery. In the full pass
// a delivery changed or removed concurrently is counted as skipped and the pass goes on.
func (h *RefreshAvailabilityCommandHandler) Handle(
	ctx context.Context,
	cmd RefreshAvailabilityCommand,
) (RefreshAvailabilityResult, error) {
	if err := cmd.Validate(); err != nil {
		return RefreshAvailabilityResult{}, err
	}

	var res RefreshAvailabilityResult
	if id, ok := cmd.DeliveryID(); ok {
		if err := h.refresh(ctx, id, &res); err != nil {
			return RefreshAvailabilityResult{}, err
		}
		return res, nil
	}

	ids, err := h.openDeliveries(ctx)
	if err != nil {
		return RefreshAvailabilityResult{}, err
	}

	for _, id := range ids {
		err = h.refresh(ctx, id, &res)
		switch {
		case err == nil:
		case errors.Is(err, errs.ErrVersionIsInvalid), errors.Is(err, errs.ErrObjectNotFound):
			res.Skipped++
		default:
			return RefreshAvailabilityResult{}, err
		}
	}

	return res, nil
}

func (h *RefreshAvailabilityCommandHandler) openDeliveries(ctx context.Context) ([]int, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	deliveries, err := uow.OrderRepository().GetAllInStatus(ctx, order.Delivery, order.Draft, order.Waiting)
	if err != nil {
		return nil, err
	}

	ids := make([]int, 0, len(deliveries))
	for _, o := range deliveries {
		ids = append(ids, o.ID())
	}
	return ids, nil
}

func (h *RefreshAvailabilityCommandHandler) refresh(ctx context.Context, id int, res *RefreshAvailabilityResult) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.Get(ctx, order.Delivery, id)
	if err != nil {
		return err
	}

	updated := false
	if !o.Status().IsTerminal() {
		checker := newStockChecker(uow.Inventory())
		for _, line := range o.Lines() {
			inStock, err := checker.InStock(ctx, o.Kind(), line.Code(), line.Quantity())
			if err != nil {
				return err
			}

			lineChanged, err := o.SetLineAvailability(line.ID(), inStock)
			if err != nil {
				return err
			}
			updated = updated || lineChanged
		}

		if updated {
			if err = orderRepo.Update(ctx, o); err != nil {
				return err
			}
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if !o.Status().IsTerminal() {
		res.Checked++
	}
	if updated {
		res.Updated++
	}
	return nil
}

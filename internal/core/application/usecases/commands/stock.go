package commands

import (
	"context"

	"warehouse/internal/core/domain/model/order"
	"warehouse/internal/core/ports"
)

// stockChecker resolves line stock flags through the inventory lookup, caching the
// on-hand quantity per product for the lifetime of one command.
type stockChecker struct {
	inventory ports.InventoryLookup
	onHand    map[string]int
}

func newStockChecker(inventory ports.InventoryLookup) *stockChecker {
	return &stockChecker{
		inventory: inventory,
		onHand:    make(map[string]int),
	}
}

// InStock reports whether a line of the given kind can be fulfilled. Receipts bring
// stock in and are always satisfiable.
func (c *stockChecker) InStock(ctx context.Context, kind order.Kind, sku string, quantity int) (bool, error) {
	if kind == order.Receipt {
		return true, nil
	}

	available, ok := c.onHand[sku]
	if !ok {
		var err error
		available, err = c.inventory.OnHand(ctx, sku)
		if err != nil {
			return false, err
		}
		c.onHand[sku] = available
	}

	return available >= quantity, nil
}

package ports

import (
	"context"

	"warehouse/internal/core/domain/model/ledger"
)

// LedgerRepository is the append-only store of stock movements.
type LedgerRepository interface {
	// Append stores entries in the given order.
	Append(ctx context.Context, entries ...ledger.Entry) error

	// GetByReference returns the movements posted for one order, oldest first.
	GetByReference(ctx context.Context, reference string) ([]ledger.Entry, error)
}

// InventoryLookup answers stock availability questions for line items. It is the only
// source of the line item stock flag.
type InventoryLookup interface {
	// OnHand returns the current stock of a product code across all locations.
	OnHand(ctx context.Context, sku string) (int, error)
}

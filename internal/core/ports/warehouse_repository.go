package ports

import (
	"context"

	"warehouse/internal/core/domain/model/warehouse"
)

// WarehouseRepository defines the persistence contract for warehouse aggregates,
// keyed by short code.
type WarehouseRepository interface {
	// Add persists a new warehouse with its locations.
	Add(ctx context.Context, aggregate *warehouse.Warehouse) error

	// Update persists name, address and locations. It fails with
	// errs.VersionIsInvalidError when the stored version differs from aggregate.Version().
	Update(ctx context.Context, aggregate *warehouse.Warehouse) error

	// Get loads a warehouse with its locations in insertion order.
	Get(ctx context.Context, code string) (*warehouse.Warehouse, error)
}

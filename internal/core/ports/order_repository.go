// Package ports defines the contracts between the warehouse core and its
// infrastructure: persistence, stock lookup and transaction boundaries.
package ports

import (
	"context"

	"warehouse/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Orders are identified by kind and per-kind sequence number.
type OrderRepository interface {
	// NextID returns the next free sequence number for the kind.
	NextID(ctx context.Context, kind order.Kind) (int, error)

	// Add persists a new order with its lines.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists status and line changes. It fails with errs.VersionIsInvalidError
	// when the stored version differs from aggregate.Version().
	Update(ctx context.Context, aggregate *order.Order) error

	// Get loads an order with its lines in display order.
	Get(ctx context.Context, kind order.Kind, id int) (*order.Order, error)

	// GetAllInStatus loads every order of the kind in one of the given statuses.
	GetAllInStatus(ctx context.Context, kind order.Kind, statuses ...order.Status) ([]*order.Order, error)
}

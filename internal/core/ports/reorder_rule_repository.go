package ports

import (
	"context"

	"warehouse/internal/core/domain/model/stock"
)

// ReorderRuleRepository stores one reorder rule per product.
type ReorderRuleRepository interface {
	// Save inserts the rule or replaces the product's existing one.
	Save(ctx context.Context, rule stock.ReorderRule) error
}

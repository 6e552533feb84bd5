package queries

import (
	"errors"
	"strings"
	"time"

	"warehouse/internal/core/domain/model/stock"
	"warehouse/internal/pkg/guard"
)

var (
	ErrGetStockQueryIsNotConstructed = errors.New(
		"GetStockQuery must be created via NewGetStockQuery constructor",
	)
)

// GetStockQuery lists on-hand stock per product next to its reorder point.
//
// Example:
//
//	query, _ := NewGetStockQuery("desk", stock.LowStock)
//	rows, err := NewGetStockQueryHandler(db).Handle(ctx, query)
type GetStockQuery struct {
	search string
	status stock.LevelStatus

	guard guard.ConstructorGuard
}

// NewGetStockQuery matches search against sku and product name, case-insensitively.
// An empty search matches every product and stock.UnknownLevel disables the status
// filter. The LowStock filter includes critical products.
func NewGetStockQuery(search string, status stock.LevelStatus) (GetStockQuery, error) {
	if status != stock.UnknownLevel {
		if err := status.Validate(); err != nil {
			return GetStockQuery{}, err
		}
	}

	return GetStockQuery{
		search: strings.TrimSpace(search),
		status: status,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

func (q GetStockQuery) Validate() error {
	return q.guard.Validate(ErrGetStockQueryIsNotConstructed)
}

func (q GetStockQuery) Search() string {
	return q.search
}

func (q GetStockQuery) Status() stock.LevelStatus {
	return q.status
}

// GetStockQueryResponse is one product of the stock view. LastMovedAt is nil for
// products that only have a reorder rule.
type GetStockQueryResponse struct {
	SKU          string
	Product      string
	OnHand       int
	ReorderPoint int
	Status       stock.LevelStatus
	LastMovedAt  *time.Time
}

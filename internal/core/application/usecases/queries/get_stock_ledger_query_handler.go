package queries

import (
	"context"
	"time"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/ledger"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetStockLedgerQueryHandler reads ledger entries with a running balance per product.
type GetStockLedgerQueryHandler struct {
	db *gorm.DB
}

func NewGetStockLedgerQueryHandler(db *gorm.DB) GetStockLedgerQueryHandler {
	return GetStockLedgerQueryHandler{db: db}
}

// Handle returns movements oldest first. The balance is computed before the sku
// filter is applied, so it is the same whether or not a sku is given.
func (h GetStockLedgerQueryHandler) Handle(
	ctx context.Context,
	query GetStockLedgerQuery,
) ([]GetStockLedgerQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT id, type, sku, product, quantity, location_warehouse, location_name, reference, posted_at, running_stock
		FROM (
			SELECT
				*,
				SUM(quantity) OVER (PARTITION BY sku ORDER BY posted_at, id) AS running_stock
			FROM ledger_entries
		) moves
		WHERE ? = '' OR sku = ?
		ORDER BY posted_at, id
	`, query.SKU(), query.SKU()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make([]GetStockLedgerQueryResponse, 0)
	for rows.Next() {
		var (
			resp               GetStockLedgerQueryResponse
			id                 uuid.UUID
			entryType          int
			warehouse, locName string
			postedAt           time.Time
		)

		if err = rows.Scan(
			&id,
			&entryType,
			&resp.SKU,
			&resp.Product,
			&resp.Quantity,
			&warehouse,
			&locName,
			&resp.Reference,
			&postedAt,
			&resp.RunningStock,
		); err != nil {
			return nil, err
		}

		resp.ID, err = kernel.UUIDFromBytes(id[:])
		if err != nil {
			return nil, err
		}
		resp.Type = ledger.EntryType(entryType)
		resp.Location = warehouse + "/" + locName
		resp.PostedAt = postedAt.UTC()
		result = append(result, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return result, nil
}

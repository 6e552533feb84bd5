package queries

import (
	"context"
	"database/sql"
	"strings"

	"warehouse/internal/core/domain/model/stock"

	"gorm.io/gorm"
)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// GetStockQueryHandler reads stock levels from the ledger and the reorder rules.
type GetStockQueryHandler struct {
	db *gorm.DB
}

func NewGetStockQueryHandler(db *gorm.DB) GetStockQueryHandler {
	return GetStockQueryHandler{db: db}
}

// Handle returns products sorted by sku. Products without a reorder rule have a
// reorder point of zero.
func (h GetStockQueryHandler) Handle(ctx context.Context, query GetStockQuery) ([]GetStockQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	levels, err := stockLevels(ctx, h.db, query.Search())
	if err != nil {
		return nil, err
	}

	if query.Status() == stock.UnknownLevel {
		return levels, nil
	}

	result := make([]GetStockQueryResponse, 0, len(levels))
	for _, l := range levels {
		if stock.NewLevel(l.OnHand, l.ReorderPoint).Matches(query.Status()) {
			result = append(result, l)
		}
	}
	return result, nil
}

func stockLevels(ctx context.Context, db *gorm.DB, search string) ([]GetStockQueryResponse, error) {
	pattern := "%" + likeEscaper.Replace(search) + "%"

	rows, err := db.WithContext(ctx).Raw(`
		WITH on_hand AS (
			SELECT sku, SUM(quantity) AS quantity, MAX(product) AS product, MAX(posted_at) AS last_moved_at
			FROM ledger_entries
			GROUP BY sku
		)
		SELECT
			COALESCE(h.sku, r.sku),
			COALESCE(h.product, ''),
			COALESCE(h.quantity, 0),
			COALESCE(r.point, 0),
			h.last_moved_at
		FROM on_hand h
		FULL OUTER JOIN reorder_rules r ON r.sku = h.sku
		WHERE ? = ''
			OR COALESCE(h.sku, r.sku) ILIKE ?
			OR COALESCE(h.product, '') ILIKE ?
		ORDER BY 1
	`, search, pattern, pattern).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make([]GetStockQueryResponse, 0)
	for rows.Next() {
		var (
			resp        GetStockQueryResponse
			lastMovedAt sql.NullTime
		)
		if err = rows.Scan(&resp.SKU, &resp.Product, &resp.OnHand, &resp.ReorderPoint, &lastMovedAt); err != nil {
			return nil, err
		}

		resp.Status = stock.NewLevel(resp.OnHand, resp.ReorderPoint).Status()
		if lastMovedAt.Valid {
			at := lastMovedAt.Time.UTC()
			resp.LastMovedAt = &at
		}
		result = append(result, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return result, nil
}

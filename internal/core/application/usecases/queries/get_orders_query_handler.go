package queries

import (
	"context"
	"time"

	"warehouse/internal/core/domain/model/order"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// GetOrdersQueryHandler reads the order list with line counts and shortfall flags.
type GetOrdersQueryHandler struct {
	db *gorm.DB
}

func NewGetOrdersQueryHandler(db *gorm.DB) GetOrdersQueryHandler {
	return GetOrdersQueryHandler{db: db}
}

// Handle returns the orders sorted by id.
func (h GetOrdersQueryHandler) Handle(ctx context.Context, query GetOrdersQuery) ([]GetOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	statuses := make([]int64, 0, len(query.Statuses()))
	for _, s := range query.Statuses() {
		statuses = append(statuses, int64(s))
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.partner,
			o.location_warehouse,
			o.location_name,
			o.scheduled_at,
			o.status,
			COUNT(l.id),
			COALESCE(BOOL_OR(NOT l.in_stock), false)
		FROM orders o
		LEFT JOIN order_lines l ON l.order_kind = o.kind AND l.order_id = o.id
		WHERE o.kind = ?
			AND (cardinality(?::int[]) = 0 OR o.status = ANY(?::int[]))
		GROUP BY o.kind, o.id
		ORDER BY o.id
	`, int(query.Kind()), pq.Array(statuses), pq.Array(statuses)).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make([]GetOrdersQueryResponse, 0)
	for rows.Next() {
		var (
			resp               GetOrdersQueryResponse
			warehouse, locName string
			scheduledAt        time.Time
			status             int
		)

		if err = rows.Scan(
			&resp.ID,
			&resp.Partner,
			&warehouse,
			&locName,
			&scheduledAt,
			&status,
			&resp.Lines,
			&resp.HasShortfall,
		); err != nil {
			return nil, err
		}

		resp.Reference = order.FormatReference(query.Kind(), resp.ID)
		resp.Location = warehouse + "/" + locName
		resp.ScheduledAt = scheduledAt.UTC()
		resp.Status = order.Status(status)
		result = append(result, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return result, nil
}

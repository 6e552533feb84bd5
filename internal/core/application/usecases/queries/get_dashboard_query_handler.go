package queries

import (
	"context"
	"time"

	"warehouse/internal/core/domain/model/ledger"
	"warehouse/internal/core/domain/model/order"
	"warehouse/internal/core/domain/model/stock"

	"gorm.io/gorm"
)

// GetDashboardQueryResponse holds the dashboard totals. "Today" is the UTC day of the
// time passed to Handle.
type GetDashboardQueryResponse struct {
	TotalStock     int
	ReceivedToday  int
	DeliveredToday int
	LowStockItems  int
	Receipts       OrderCounters
	Deliveries     OrderCounters
}

// OrderCounters counts orders of one kind. Open orders are not Done; late orders are
// open orders scheduled before the current time. Waiting is always zero for receipts.
type OrderCounters struct {
	Total   int
	Open    int
	Late    int
	Waiting int
}

// GetDashboardQueryHandler computes the dashboard totals.
type GetDashboardQueryHandler struct {
	db *gorm.DB
}

func NewGetDashboardQueryHandler(db *gorm.DB) GetDashboardQueryHandler {
	return GetDashboardQueryHandler{db: db}
}

func (h GetDashboardQueryHandler) Handle(ctx context.Context, at time.Time) (GetDashboardQueryResponse, error) {
	var resp GetDashboardQueryResponse

	at = at.UTC()
	dayStart := time.Date(at.Year(), at.Month(), at.Day(), 0, 0, 0, 0, time.UTC)
	dayEnd := dayStart.AddDate(0, 0, 1)

	err := h.db.WithContext(ctx).Raw(`
		SELECT
			COALESCE(SUM(quantity), 0),
			COALESCE(SUM(quantity) FILTER (WHERE type = ? AND posted_at >= ? AND posted_at < ?), 0),
			COALESCE(-SUM(quantity) FILTER (WHERE type = ? AND posted_at >= ? AND posted_at < ?), 0)
		FROM ledger_entries
	`,
		int(ledger.Receive), dayStart, dayEnd,
		int(ledger.Deliver), dayStart, dayEnd,
	).Row().Scan(&resp.TotalStock, &resp.ReceivedToday, &resp.DeliveredToday)
	if err != nil {
		return GetDashboardQueryResponse{}, err
	}

	if err = h.countOrders(ctx, at, &resp); err != nil {
		return GetDashboardQueryResponse{}, err
	}

	levels, err := stockLevels(ctx, h.db, "")
	if err != nil {
		return GetDashboardQueryResponse{}, err
	}
	for _, l := range levels {
		if stock.NewLevel(l.OnHand, l.ReorderPoint).IsLow() {
			resp.LowStockItems++
		}
	}

	return resp, nil
}

func (h GetDashboardQueryHandler) countOrders(ctx context.Context, at time.Time, resp *GetDashboardQueryResponse) error {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			kind,
			COUNT(*),
			COUNT(*) FILTER (WHERE status <> ?),
			COUNT(*) FILTER (WHERE status <> ? AND scheduled_at < ?),
			COUNT(*) FILTER (WHERE status = ?)
		FROM orders
		GROUP BY kind
	`, int(order.Done), int(order.Done), at, int(order.Waiting)).Rows()
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			kind     int
			counters OrderCounters
		)
		if err = rows.Scan(&kind, &counters.Total, &counters.Open, &counters.Late, &counters.Waiting); err != nil {
			return err
		}

		switch order.Kind(kind) {
		case order.Receipt:
			resp.Receipts = counters
		case order.Delivery:
			resp.Deliveries = counters
		}
	}

	return rows.Err()
}

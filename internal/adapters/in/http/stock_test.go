package http_test

import (
	"net/http"
	"testing"
	"time"

	httpin "warehouse/internal/adapters/in/http"
	"warehouse/internal/core/application/usecases/commands"
	"warehouse/internal/core/application/usecases/queries"
	"warehouse/internal/core/domain/model/stock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestServer_GetStock(t *testing.T) {
	movedAt := time.Date(2025, 12, 1, 9, 0, 0, 0, time.UTC)

	t.Run("should list every product without filters", func(t *testing.T) {
		f := newFixture(t)
		f.stock.On("Handle", mock.Anything, mock.MatchedBy(func(q queries.GetStockQuery) bool {
			return q.Search() == "" && q.Status() == stock.UnknownLevel
		})).Return([]queries.GetStockQueryResponse{{
			SKU:          "DESK001",
			Product:      "Desk",
			OnHand:       44,
			ReorderPoint: 10,
			Status:       stock.InStock,
			LastMovedAt:  &movedAt,
		}}, nil)

		rec := f.do(http.MethodGet, "/api/v1/stock", "")

		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		items := decode[[]httpin.StockItem](t, rec)
		require.Len(t, items, 1)
		assert.Equal(t, "in-stock", items[0].Status)
		assert.Equal(t, 44, items[0].OnHand)
		require.NotNil(t, items[0].LastMovedAt)
		assert.True(t, movedAt.Equal(*items[0].LastMovedAt))
	})

	t.Run("should pass search and status", func(t *testing.T) {
		f := newFixture(t)
		f.stock.On("Handle", mock.Anything, mock.MatchedBy(func(q queries.GetStockQuery) bool {
			return q.Search() == "desk" && q.Status() == stock.Critical
		})).Return([]queries.GetStockQueryResponse{}, nil)

		rec := f.do(http.MethodGet, "/api/v1/stock?search=desk&status=critical", "")

		assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	})

	t.Run("should reject unknown status", func(t *testing.T) {
		f := newFixture(t)

		rec := f.do(http.MethodGet, "/api/v1/stock?status=plenty", "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestServer_GetStockAlerts(t *testing.T) {
	f := newFixture(t)
	f.stock.On("Handle", mock.Anything, mock.MatchedBy(func(q queries.GetStockQuery) bool {
		return q.Status() == stock.LowStock
	})).Return([]queries.GetStockQueryResponse{
		{SKU: "CHAIR001", OnHand: 12, ReorderPoint: 15, Status: stock.LowStock},
		{SKU: "LAMP001", OnHand: 2, ReorderPoint: 8, Status: stock.Critical},
	}, nil)

	rec := f.do(http.MethodGet, "/api/v1/stock/alerts", "")

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	items := decode[[]httpin.StockItem](t, rec)
	require.Len(t, items, 2)
	assert.Equal(t, "critical", items[1].Status)
	assert.Nil(t, items[1].LastMovedAt)
}

func TestServer_SetReorderPoint(t *testing.T) {
	t.Run("should save reorder point", func(t *testing.T) {
		f := newFixture(t)
		f.reorder.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.SetReorderPointCommand) bool {
			return cmd.Rule().SKU() == "DESK001" && cmd.Rule().Point() == 10
		})).Return(nil)

		rec := f.do(http.MethodPut, "/api/v1/stock/DESK001/reorder-point", `{"point":10}`)

		assert.Equal(t, http.StatusNoContent, rec.Code, rec.Body.String())
	})

	t.Run("should reject negative point", func(t *testing.T) {
		f := newFixture(t)

		rec := f.do(http.MethodPut, "/api/v1/stock/DESK001/reorder-point", `{"point":-1}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestServer_GetDashboard(t *testing.T) {
	f := newFixture(t)
	f.dashboard.On("Handle", mock.Anything, mock.AnythingOfType("time.Time")).Return(queries.GetDashboardQueryResponse{
		TotalStock:     19,
		ReceivedToday:  5,
		DeliveredToday: 6,
		LowStockItems:  1,
		Receipts:       queries.OrderCounters{Total: 2, Open: 1, Late: 1},
		Deliveries:     queries.OrderCounters{Total: 3, Open: 2, Late: 1, Waiting: 1},
	}, nil)

	rec := f.do(http.MethodGet, "/api/v1/dashboard", "")

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	dashboard := decode[httpin.Dashboard](t, rec)
	assert.Equal(t, 19, dashboard.TotalStock)
	assert.Equal(t, 1, dashboard.LowStockItems)
	assert.Equal(t, httpin.OrderCounters{Total: 3, Open: 2, Late: 1, Waiting: 1}, dashboard.Deliveries)
}

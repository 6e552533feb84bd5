package http

import (
	"net/http"
	"time"

	"warehouse/internal/core/application/usecases/commands"
	"warehouse/internal/core/application/usecases/queries"
	"warehouse/internal/core/domain/model/stock"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
)

// GetStock handles GET /api/v1/stock - stock levels, optionally searched and filtered
// by level status.
func (s *Server) GetStock(ctx echo.Context) error {
	var search, status *string
	if err := runtime.BindQueryParameter("form", true, false, "search", ctx.QueryParams(), &search); err != nil {
		return ctx.JSON(http.StatusBadRequest, newError(http.StatusBadRequest, "Invalid search"))
	}
	if err := runtime.BindQueryParameter("form", true, false, "status", ctx.QueryParams(), &status); err != nil {
		return ctx.JSON(http.StatusBadRequest, newError(http.StatusBadRequest, "Invalid status filter"))
	}

	filter := stock.UnknownLevel
	if status != nil {
		parsed, err := stock.ParseLevelStatus(*status)
		if err != nil {
			return s.fail(ctx, err, "")
		}
		filter = parsed
	}

	return s.stockLevels(ctx, deref(search), filter)
}

// GetStockAlerts handles GET /api/v1/stock/alerts - products at or below their
// reorder point.
func (s *Server) GetStockAlerts(ctx echo.Context) error {
	return s.stockLevels(ctx, "", stock.LowStock)
}

func (s *Server) stockLevels(ctx echo.Context, search string, filter stock.LevelStatus) error {
	query, err := queries.NewGetStockQuery(search, filter)
	if err != nil {
		return s.fail(ctx, err, "")
	}

	levels, err := s.getStock.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err, "Failed to retrieve stock")
	}

	response := make([]StockItem, len(levels))
	for i, l := range levels {
		response[i] = toStockItem(l)
	}
	return ctx.JSON(http.StatusOK, response)
}

// SetReorderPoint handles PUT /api/v1/stock/{sku}/reorder-point.
func (s *Server) SetReorderPoint(ctx echo.Context) error {
	var sku string
	err := runtime.BindStyledParameterWithLocation("simple", false, "sku", runtime.ParamLocationPath, ctx.Param("sku"), &sku)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, newError(http.StatusBadRequest, "Invalid sku"))
	}

	var body ReorderPoint
	if err = bindBody(ctx, &body); err != nil {
		return s.fail(ctx, err, "")
	}

	cmd, err := commands.NewSetReorderPointCommand(sku, body.Point)
	if err != nil {
		return s.fail(ctx, err, "")
	}

	if err = s.setReorderPoint.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err, "Failed to set reorder point")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetDashboard handles GET /api/v1/dashboard.
func (s *Server) GetDashboard(ctx echo.Context) error {
	totals, err := s.getDashboard.Handle(ctx.Request().Context(), time.Now())
	if err != nil {
		return s.fail(ctx, err, "Failed to retrieve dashboard")
	}

	return ctx.JSON(http.StatusOK, toDashboard(totals))
}

package http

import (
	"net/http"

	"warehouse/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
)

// GetStockLedger handles GET /api/v1/ledger - stock movements, optionally of one SKU.
func (s *Server) GetStockLedger(ctx echo.Context) error {
	var sku *string
	if err := runtime.BindQueryParameter("form", true, false, "sku", ctx.QueryParams(), &sku); err != nil {
		return ctx.JSON(http.StatusBadRequest, newError(http.StatusBadRequest, "Invalid sku"))
	}

	entries, err := s.getStockLedgerHandler.Handle(ctx.Request().Context(), queries.NewGetStockLedgerQuery(deref(sku)))
	if err != nil {
		return s.fail(ctx, err, "Failed to retrieve stock ledger")
	}

	response := make([]LedgerEntry, len(entries))
	for i, e := range entries {
		response[i] = toLedgerEntry(e)
	}
	return ctx.JSON(http.StatusOK, response)
}

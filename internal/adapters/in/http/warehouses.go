package http

import (
	"net/http"

	"warehouse/internal/core/application/usecases/commands"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
)

// ListWarehouses handles GET /api/v1/warehouses.
func (s *Server) ListWarehouses(ctx echo.Context) error {
	warehouses, err := s.getWarehouses.Handle(ctx.Request().Context())
	if err != nil {
		return s.fail(ctx, err, "Failed to retrieve warehouses")
	}

	response := make([]Warehouse, len(warehouses))
	for i, w := range warehouses {
		response[i] = toWarehouse(w)
	}
	return ctx.JSON(http.StatusOK, response)
}

// CreateWarehouse handles POST /api/v1/warehouses. A short code already in use
// answers 400.
func (s *Server) CreateWarehouse(ctx echo.Context) error {
	var body NewWarehouse
	if err := bindBody(ctx, &body); err != nil {
		return s.fail(ctx, err, "")
	}

	cmd, err := commands.NewCreateWarehouseCommand(body.Code, body.Name, body.Address)
	if err != nil {
		return s.fail(ctx, err, "")
	}

	if err = s.createWarehouse.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err, "Failed to create warehouse")
	}

	return ctx.NoContent(http.StatusCreated)
}

// AddLocation handles POST /api/v1/warehouses/{code}/locations.
func (s *Server) AddLocation(ctx echo.Context) error {
	var code string
	err := runtime.BindStyledParameterWithLocation("simple", false, "code", runtime.ParamLocationPath, ctx.Param("code"), &code)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, newError(http.StatusBadRequest, "Invalid warehouse code"))
	}

	var body NewLocation
	if err = bindBody(ctx, &body); err != nil {
		return s.fail(ctx, err, "")
	}

	cmd, err := commands.NewAddLocationCommand(code, body.Code, body.Name)
	if err != nil {
		return s.fail(ctx, err, "")
	}

	location, err := s.addLocation.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err, "Failed to add location")
	}

	return ctx.JSON(http.StatusCreated, CreatedLocation{Location: location.String()})
}

package http

import (
	"net/http"

	"warehouse/internal/core/application/usecases/commands"
	"warehouse/internal/core/application/usecases/queries"
	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/order"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
)

// ListOrders handles GET /api/v1/{receipts|deliveries}, optionally filtered by status.
func (s *Server) ListOrders(kind order.Kind) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		var names *[]string
		if err := runtime.BindQueryParameter("form", true, false, "status", ctx.QueryParams(), &names); err != nil {
			return ctx.JSON(http.StatusBadRequest, newError(http.StatusBadRequest, "Invalid status filter"))
		}

		var statuses []order.Status
		for _, name := range deref(names) {
			status, err := order.ParseStatus(name)
			if err != nil {
				return s.fail(ctx, err, "")
			}
			statuses = append(statuses, status)
		}

		query, err := queries.NewGetOrdersQuery(kind, statuses...)
		if err != nil {
			return s.fail(ctx, err, "")
		}

		orders, err := s.getOrdersHandler.Handle(ctx.Request().Context(), query)
		if err != nil {
			return s.fail(ctx, err, "Failed to retrieve orders")
		}

		response := make([]OrderSummary, len(orders))
		for i, o := range orders {
			response[i] = toOrderSummary(o)
		}
		return ctx.JSON(http.StatusOK, response)
	}
}

// CreateOrder handles POST /api/v1/{receipts|deliveries}.
func (s *Server) CreateOrder(kind order.Kind) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		var body NewOrder
		if err := bindBody(ctx, &body); err != nil {
			return s.fail(ctx, err, "")
		}

		location, err := kernel.LocationFromString(body.Location)
		if err != nil {
			return s.fail(ctx, err, "")
		}

		cmd, err := commands.NewCreateOrderCommand(kind, body.Partner, location, body.ScheduledAt)
		if err != nil {
			return s.fail(ctx, err, "")
		}

		id, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
		if err != nil {
			return s.fail(ctx, err, "Failed to create order")
		}

		return ctx.JSON(http.StatusCreated, CreatedOrder{
			ID:        id,
			Reference: order.FormatReference(kind, id),
		})
	}
}

// GetOrder handles GET /api/v1/{receipts|deliveries}/{id}.
func (s *Server) GetOrder(kind order.Kind) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		id, err := bindID(ctx)
		if err != nil {
			return s.fail(ctx, err, "")
		}

		query, err := queries.NewGetOrderQuery(kind, id)
		if err != nil {
			return s.fail(ctx, err, "")
		}

		details, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
		if err != nil {
			return s.fail(ctx, err, "Failed to retrieve order")
		}

		return ctx.JSON(http.StatusOK, toOrderDetails(details))
	}
}

// AddLine handles POST /api/v1/{receipts|deliveries}/{id}/lines.
func (s *Server) AddLine(kind order.Kind) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		id, err := bindID(ctx)
		if err != nil {
			return s.fail(ctx, err, "")
		}

		var body NewLine
		if err = bindBody(ctx, &body); err != nil {
			return s.fail(ctx, err, "")
		}

		cmd, err := commands.NewAddLineItemCommand(kind, id, body.Code, body.Name, body.Quantity)
		if err != nil {
			return s.fail(ctx, err, "")
		}

		lineID, err := s.addLineHandler.Handle(ctx.Request().Context(), cmd)
		if err != nil {
			return s.fail(ctx, err, "Failed to add line")
		}

		return ctx.JSON(http.StatusCreated, CreatedLine{ID: lineID.String()})
	}
}

// ValidateOrder handles POST /api/v1/{receipts|deliveries}/{id}/validate. A Done order
// answers 200 with changed=false.
func (s *Server) ValidateOrder(kind order.Kind) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		id, err := bindID(ctx)
		if err != nil {
			return s.fail(ctx, err, "")
		}

		cmd, err := commands.NewValidateOrderCommand(kind, id)
		if err != nil {
			return s.fail(ctx, err, "")
		}

		result, err := s.validateHandler.Handle(ctx.Request().Context(), cmd)
		if err != nil {
			return s.fail(ctx, err, "Failed to validate order")
		}

		return ctx.JSON(http.StatusOK, toValidateResult(result))
	}
}

// RefreshAvailability handles POST /api/v1/deliveries/{id}/availability.
func (s *Server) RefreshAvailability(ctx echo.Context) error {
	id, err := bindID(ctx)
	if err != nil {
		return s.fail(ctx, err, "")
	}

	cmd, err := commands.NewRefreshDeliveryAvailabilityCommand(id)
	if err != nil {
		return s.fail(ctx, err, "")
	}

	result, err := s.refreshHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err, "Failed to refresh availability")
	}

	return ctx.JSON(http.StatusOK, RefreshResult{
		Checked: result.Checked,
		Updated: result.Updated,
		Skipped: result.Skipped,
	})
}

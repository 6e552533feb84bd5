package http

import (
	"context"
	"net/http"
	"time"

	"warehouse/internal/core/application/session"
	"warehouse/internal/core/application/usecases/commands"
	"warehouse/internal/core/application/usecases/queries"
	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/order"
	"warehouse/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/oapi-codegen/runtime"
	"github.com/sirupsen/logrus"
	echoSwagger "github.com/swaggo/echo-swagger"
)

const sessionTokenHeader = "X-Session-Token"

type OrderCreator interface {
	Handle(ctx context.Context, cmd commands.CreateOrderCommand) (int, error)
}

type AvailabilityRefresher interface {
	Handle(ctx context.Context, cmd commands.RefreshAvailabilityCommand) (commands.RefreshAvailabilityResult, error)
}

type OrderLister interface {
	Handle(ctx context.Context, query queries.GetOrdersQuery) ([]queries.GetOrdersQueryResponse, error)
}

type LedgerReader interface {
	Handle(ctx context.Context, query queries.GetStockLedgerQuery) ([]queries.GetStockLedgerQueryResponse, error)
}

type WarehouseCreator interface {
	Handle(ctx context.Context, cmd commands.CreateWarehouseCommand) error
}

type LocationAdder interface {
	Handle(ctx context.Context, cmd commands.AddLocationCommand) (kernel.Location, error)
}

type ReorderPointSetter interface {
	Handle(ctx context.Context, cmd commands.SetReorderPointCommand) error
}

type WarehouseLister interface {
	Handle(ctx context.Context) ([]queries.GetWarehousesQueryResponse, error)
}

type StockReader interface {
	Handle(ctx context.Context, query queries.GetStockQuery) ([]queries.GetStockQueryResponse, error)
}

type DashboardReader interface {
	Handle(ctx context.Context, at time.Time) (queries.GetDashboardQueryResponse, error)
}

// Server exposes the use cases over REST. Every route is described by the embedded
// OpenAPI document.
type Server struct {
	// Command handlers
	createOrderHandler OrderCreator
	addLineHandler     session.LineAdder
	validateHandler    session.OrderValidator
	refreshHandler     AvailabilityRefresher
	createWarehouse    WarehouseCreator
	addLocation        LocationAdder
	setReorderPoint    ReorderPointSetter

	// Query handlers
	getOrdersHandler      OrderLister
	getOrderHandler       session.OrderReader
	getStockLedgerHandler LedgerReader
	getWarehouses         WarehouseLister
	getStock              StockReader
	getDashboard          DashboardReader

	sessions *session.Manager
	logger   *logrus.Entry
}

func NewServer(
	createOrderHandler OrderCreator,
	addLineHandler session.LineAdder,
	validateHandler session.OrderValidator,
	refreshHandler AvailabilityRefresher,
	createWarehouse WarehouseCreator,
	addLocation LocationAdder,
	setReorderPoint ReorderPointSetter,
	getOrdersHandler OrderLister,
	getOrderHandler session.OrderReader,
	getStockLedgerHandler LedgerReader,
	getWarehouses WarehouseLister,
	getStock StockReader,
	getDashboard DashboardReader,
	sessions *session.Manager,
	logger *logrus.Logger,
) *Server {
	return &Server{
		createOrderHandler:    createOrderHandler,
		addLineHandler:        addLineHandler,
		validateHandler:       validateHandler,
		refreshHandler:        refreshHandler,
		createWarehouse:       createWarehouse,
		addLocation:           addLocation,
		setReorderPoint:       setReorderPoint,
		getOrdersHandler:      getOrdersHandler,
		getOrderHandler:       getOrderHandler,
		getStockLedgerHandler: getStockLedgerHandler,
		getWarehouses:         getWarehouses,
		getStock:              getStock,
		getDashboard:          getDashboard,
		sessions:              sessions,
		logger:                logger.WithField("component", "http"),
	}
}

// Register installs the middleware chain and the routes on e.
func (s *Server) Register(e *echo.Echo) error {
	doc, err := LoadSpec()
	if err != nil {
		return err
	}
	validate, err := RequestValidator(doc)
	if err != nil {
		return err
	}
	registerDoc()

	e.Validator = NewBodyValidator()
	e.Use(middleware.Recover())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:  true,
		LogURI:     true,
		LogStatus:  true,
		LogLatency: true,
		LogValuesFunc: func(_ echo.Context, v middleware.RequestLoggerValues) error {
			s.logger.WithFields(logrus.Fields{
				"method":  v.Method,
				"uri":     v.URI,
				"status":  v.Status,
				"latency": v.Latency.String(),
			}).Debug("request")
			return nil
		},
	}))

	e.GET("/health", func(ctx echo.Context) error {
		return ctx.String(http.StatusOK, "Healthy")
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api/v1", validate)
	for _, kind := range []order.Kind{order.Receipt, order.Delivery} {
		g := api.Group("/" + collection(kind))
		g.GET("", s.ListOrders(kind))
		g.POST("", s.CreateOrder(kind))
		g.GET("/:id", s.GetOrder(kind))
		g.POST("/:id/lines", s.AddLine(kind))
		g.POST("/:id/validate", s.ValidateOrder(kind))
	}
	api.POST("/deliveries/:id/availability", s.RefreshAvailability)
	api.GET("/ledger", s.GetStockLedger)
	api.GET("/stock", s.GetStock)
	api.GET("/stock/alerts", s.GetStockAlerts)
	api.PUT("/stock/:sku/reorder-point", s.SetReorderPoint)
	api.GET("/dashboard", s.GetDashboard)
	api.GET("/warehouses", s.ListWarehouses)
	api.POST("/warehouses", s.CreateWarehouse)
	api.POST("/warehouses/:code/locations", s.AddLocation)

	api.POST("/session", s.Login)
	api.GET("/session", s.GetSession)
	api.DELETE("/session", s.Logout)
	api.POST("/session/navigate", s.Navigate)
	api.POST("/session/back", s.Back)
	api.POST("/session/open", s.OpenOrder)
	api.POST("/session/view/validate", s.ValidateOpenOrder)
	api.POST("/session/view/lines", s.AddOpenOrderLine)
	api.POST("/session/view/cancel", s.CancelOpenOrder)

	return nil
}

// collection is the path segment of a kind.
func collection(kind order.Kind) string {
	if kind == order.Receipt {
		return "receipts"
	}
	return "deliveries"
}

func kindOf(segment string) (order.Kind, error) {
	switch segment {
	case "receipts":
		return order.Receipt, nil
	case "deliveries":
		return order.Delivery, nil
	default:
		return order.UnknownKind, errs.NewValueIsInvalidError("kind")
	}
}

func bindID(ctx echo.Context) (int, error) {
	var id int
	err := runtime.BindStyledParameterWithLocation("simple", false, "id", runtime.ParamLocationPath, ctx.Param("id"), &id)
	if err != nil {
		return 0, errs.NewValueIsInvalidErrorWithCause("id", err)
	}
	return id, nil
}

func bindBody(ctx echo.Context, dest any) error {
	if err := ctx.Bind(dest); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("request body", err)
	}
	return ctx.Validate(dest)
}

// deref returns the bound value of an optional parameter, or its zero value when absent.
func deref[T any](value *T) T {
	var zero T
	if value == nil {
		return zero
	}
	return *value
}

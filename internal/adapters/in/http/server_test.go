package http_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	httpin "warehouse/internal/adapters/in/http"
	"warehouse/internal/core/application/session"
	"warehouse/internal/core/application/usecases/commands"
	"warehouse/internal/core/application/usecases/queries"
	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/ledger"
	"warehouse/internal/core/domain/model/order"
	"warehouse/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderCreator struct{ mock.Mock }

func (m *MockOrderCreator) Handle(ctx context.Context, cmd commands.CreateOrderCommand) (int, error) {
	args := m.Called(ctx, cmd)
	return args.Int(0), args.Error(1)
}

type MockLineAdder struct{ mock.Mock }

func (m *MockLineAdder) Handle(ctx context.Context, cmd commands.AddLineItemCommand) (kernel.UUID, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(kernel.UUID), args.Error(1)
}

type MockOrderValidator struct{ mock.Mock }

func (m *MockOrderValidator) Handle(
	ctx context.Context,
	cmd commands.ValidateOrderCommand,
) (commands.ValidateOrderResult, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(commands.ValidateOrderResult), args.Error(1)
}

type MockAvailabilityRefresher struct{ mock.Mock }

func (m *MockAvailabilityRefresher) Handle(
	ctx context.Context,
	cmd commands.RefreshAvailabilityCommand,
) (commands.RefreshAvailabilityResult, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(commands.RefreshAvailabilityResult), args.Error(1)
}

type MockOrderLister struct{ mock.Mock }

func (m *MockOrderLister) Handle(
	ctx context.Context,
	query queries.GetOrdersQuery,
) ([]queries.GetOrdersQueryResponse, error) {
	args := m.Called(ctx, query)
	return args.Get(0).([]queries.GetOrdersQueryResponse), args.Error(1)
}

type MockOrderReader struct{ mock.Mock }

func (m *MockOrderReader) Handle(
	ctx context.Context,
	query queries.GetOrderQuery,
) (queries.GetOrderQueryResponse, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(queries.GetOrderQueryResponse), args.Error(1)
}

type MockLedgerReader struct{ mock.Mock }

func (m *MockLedgerReader) Handle(
	ctx context.Context,
	query queries.GetStockLedgerQuery,
) ([]queries.GetStockLedgerQueryResponse, error) {
	args := m.Called(ctx, query)
	return args.Get(0).([]queries.GetStockLedgerQueryResponse), args.Error(1)
}

type MockWarehouseCreator struct{ mock.Mock }

func (m *MockWarehouseCreator) Handle(ctx context.Context, cmd commands.CreateWarehouseCommand) error {
	args := m.Called(ctx, cmd)
	return args.Error(0)
}

type MockLocationAdder struct{ mock.Mock }

func (m *MockLocationAdder) Handle(ctx context.Context, cmd commands.AddLocationCommand) (kernel.Location, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(kernel.Location), args.Error(1)
}

type MockReorderPointSetter struct{ mock.Mock }

func (m *MockReorderPointSetter) Handle(ctx context.Context, cmd commands.SetReorderPointCommand) error {
	args := m.Called(ctx, cmd)
	return args.Error(0)
}

type MockWarehouseLister struct{ mock.Mock }

func (m *MockWarehouseLister) Handle(ctx context.Context) ([]queries.GetWarehousesQueryResponse, error) {
	args := m.Called(ctx)
	return args.Get(0).([]queries.GetWarehousesQueryResponse), args.Error(1)
}

type MockStockReader struct{ mock.Mock }

func (m *MockStockReader) Handle(ctx context.Context, query queries.GetStockQuery) ([]queries.GetStockQueryResponse, error) {
	args := m.Called(ctx, query)
	return args.Get(0).([]queries.GetStockQueryResponse), args.Error(1)
}

type MockDashboardReader struct{ mock.Mock }

func (m *MockDashboardReader) Handle(ctx context.Context, at time.Time) (queries.GetDashboardQueryResponse, error) {
	args := m.Called(ctx, at)
	return args.Get(0).(queries.GetDashboardQueryResponse), args.Error(1)
}

type fixture struct {
	e         *echo.Echo
	creator   *MockOrderCreator
	adder     *MockLineAdder
	validator *MockOrderValidator
	refresher *MockAvailabilityRefresher
	lister    *MockOrderLister
	reader    *MockOrderReader
	ledger    *MockLedgerReader
	sites     *MockWarehouseCreator
	locations *MockLocationAdder
	reorder   *MockReorderPointSetter
	registry  *MockWarehouseLister
	stock     *MockStockReader
	dashboard *MockDashboardReader
	logs      *test.Hook
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	f := &fixture{
		e:         echo.New(),
		creator:   &MockOrderCreator{},
		adder:     &MockLineAdder{},
		validator: &MockOrderValidator{},
		refresher: &MockAvailabilityRefresher{},
		lister:    &MockOrderLister{},
		reader:    &MockOrderReader{},
		ledger:    &MockLedgerReader{},
		sites:     &MockWarehouseCreator{},
		locations: &MockLocationAdder{},
		reorder:   &MockReorderPointSetter{},
		registry:  &MockWarehouseLister{},
		stock:     &MockStockReader{},
		dashboard: &MockDashboardReader{},
	}

	sessions, err := session.NewManager(session.Credentials{LoginID: "admin", Password: "Password123!"}, time.Hour)
	require.NoError(t, err)

	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	f.logs = hook

	server := httpin.NewServer(
		f.creator, f.adder, f.validator, f.refresher, f.sites, f.locations, f.reorder,
		f.lister, f.reader, f.ledger, f.registry, f.stock, f.dashboard,
		sessions, logger,
	)
	require.NoError(t, server.Register(f.e))

	t.Cleanup(func() {
		f.creator.AssertExpectations(t)
		f.adder.AssertExpectations(t)
		f.validator.AssertExpectations(t)
		f.refresher.AssertExpectations(t)
		f.lister.AssertExpectations(t)
		f.reader.AssertExpectations(t)
		f.ledger.AssertExpectations(t)
		f.sites.AssertExpectations(t)
		f.locations.AssertExpectations(t)
		f.reorder.AssertExpectations(t)
		f.registry.AssertExpectations(t)
		f.stock.AssertExpectations(t)
		f.dashboard.AssertExpectations(t)
	})

	return f
}

func (f *fixture) do(method string, target string, body string, headers ...string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}

	rec := httptest.NewRecorder()
	f.e.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	return out
}

var scheduledAt = time.Date(2025, 12, 20, 9, 0, 0, 0, time.UTC)

func TestLoadSpec(t *testing.T) {
	doc, err := httpin.LoadSpec()

	require.NoError(t, err)
	assert.Equal(t, "3.0.3", doc.OpenAPI)
	assert.NotNil(t, doc.Paths.Find("/api/v1/deliveries/{id}/validate"))
}

func TestServer_Health(t *testing.T) {
	f := newFixture(t)

	rec := f.do(http.MethodGet, "/health", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Healthy", rec.Body.String())
}

func TestServer_SwaggerDoc(t *testing.T) {
	f := newFixture(t)

	rec := f.do(http.MethodGet, "/swagger/doc.json", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "/api/v1/ledger")
}

func TestServer_CreateOrder(t *testing.T) {
	t.Run("should create delivery", func(t *testing.T) {
		f := newFixture(t)
		f.creator.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.CreateOrderCommand) bool {
			return cmd.Kind() == order.Delivery &&
				cmd.Partner() == "Azure Interior" &&
				cmd.Location().String() == "WH/Stock1" &&
				cmd.ScheduledAt().Equal(scheduledAt)
		})).Return(3, nil)

		rec := f.do(http.MethodPost, "/api/v1/deliveries",
			`{"partner":"Azure Interior","location":"WH/Stock1","scheduledAt":"2025-12-20T09:00:00Z"}`)

		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
		created := decode[httpin.CreatedOrder](t, rec)
		assert.Equal(t, 3, created.ID)
		assert.Equal(t, "WH/OUT/0003", created.Reference)
	})

	t.Run("should reject location outside the document pattern", func(t *testing.T) {
		f := newFixture(t)

		rec := f.do(http.MethodPost, "/api/v1/receipts",
			`{"partner":"Azure Metals","location":"Stock1","scheduledAt":"2025-12-20T09:00:00Z"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		f.creator.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
	})

	t.Run("should reject missing partner", func(t *testing.T) {
		f := newFixture(t)

		rec := f.do(http.MethodPost, "/api/v1/receipts",
			`{"location":"WH/Stock1","scheduledAt":"2025-12-20T09:00:00Z"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("should hide internal errors", func(t *testing.T) {
		f := newFixture(t)
		f.creator.On("Handle", mock.Anything, mock.Anything).Return(0, errors.New("connection refused"))

		rec := f.do(http.MethodPost, "/api/v1/receipts",
			`{"partner":"Azure Metals","location":"WH/Stock1","scheduledAt":"2025-12-20T09:00:00Z"}`)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.NotContains(t, rec.Body.String(), "connection refused")
		var logged []string
		for _, entry := range f.logs.AllEntries() {
			if entry.Level == logrus.ErrorLevel {
				logged = append(logged, entry.Message)
			}
		}
		assert.Equal(t, []string{"Failed to create order"}, logged)
	})
}

func TestServer_ListOrders(t *testing.T) {
	t.Run("should pass status filter", func(t *testing.T) {
		f := newFixture(t)
		f.lister.On("Handle", mock.Anything, mock.MatchedBy(func(q queries.GetOrdersQuery) bool {
			return q.Kind() == order.Delivery &&
				assert.ObjectsAreEqual([]order.Status{order.Waiting, order.Ready}, q.Statuses())
		})).Return([]queries.GetOrdersQueryResponse{{
			ID:           1,
			Reference:    "WH/OUT/0001",
			Partner:      "Azure Interior",
			Location:     "WH/Stock1",
			ScheduledAt:  scheduledAt,
			Status:       order.Waiting,
			Lines:        2,
			HasShortfall: true,
		}}, nil)

		rec := f.do(http.MethodGet, "/api/v1/deliveries?status=waiting&status=ready", "")

		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		orders := decode[[]httpin.OrderSummary](t, rec)
		require.Len(t, orders, 1)
		assert.Equal(t, "WH/OUT/0001", orders[0].Reference)
		assert.Equal(t, "waiting", orders[0].Status)
		assert.True(t, orders[0].HasShortfall)
	})

	t.Run("should list every status without filter", func(t *testing.T) {
		f := newFixture(t)
		f.lister.On("Handle", mock.Anything, mock.MatchedBy(func(q queries.GetOrdersQuery) bool {
			return q.Kind() == order.Receipt && len(q.Statuses()) == 0
		})).Return([]queries.GetOrdersQueryResponse{}, nil)

		rec := f.do(http.MethodGet, "/api/v1/receipts", "")

		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		assert.Empty(t, decode[[]httpin.OrderSummary](t, rec))
	})

	for name, status := range map[string]order.Status{
		"draft":   order.Draft,
		"waiting": order.Waiting,
		"ready":   order.Ready,
		"done":    order.Done,
	} {
		t.Run("should filter deliveries by "+name, func(t *testing.T) {
			f := newFixture(t)
			f.lister.On("Handle", mock.Anything, mock.MatchedBy(func(q queries.GetOrdersQuery) bool {
				return assert.ObjectsAreEqual([]order.Status{status}, q.Statuses())
			})).Return([]queries.GetOrdersQueryResponse{}, nil)

			rec := f.do(http.MethodGet, "/api/v1/deliveries?status="+name, "")

			assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		})
	}

	t.Run("should reject unknown status", func(t *testing.T) {
		f := newFixture(t)

		rec := f.do(http.MethodGet, "/api/v1/receipts?status=shipped", "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("should reject waiting filter for receipts", func(t *testing.T) {
		f := newFixture(t)

		rec := f.do(http.MethodGet, "/api/v1/receipts?status=waiting", "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestServer_GetOrder(t *testing.T) {
	t.Run("should return details", func(t *testing.T) {
		f := newFixture(t)
		lineID := kernel.NewUUID()
		f.reader.On("Handle", mock.Anything, mock.MatchedBy(func(q queries.GetOrderQuery) bool {
			return q.Kind() == order.Receipt && q.ID() == 4
		})).Return(queries.GetOrderQueryResponse{
			ID:          4,
			Kind:        order.Receipt,
			Reference:   "WH/IN/0004",
			Partner:     "Azure Metals",
			Location:    "WH/Stock1",
			ScheduledAt: scheduledAt,
			Status:      order.Ready,
			Version:     2,
			Lines: []queries.GetOrderQueryLine{
				{ID: lineID, Code: "DESK001", Name: "Desk", Quantity: 6, InStock: true},
			},
			Availability: order.Availability{AllInStock: true},
		}, nil)

		rec := f.do(http.MethodGet, "/api/v1/receipts/4", "")

		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		details := decode[httpin.OrderDetails](t, rec)
		assert.Equal(t, "ready", details.Status)
		assert.Equal(t, 2, details.Version)
		require.Len(t, details.Lines, 1)
		assert.Equal(t, lineID.String(), details.Lines[0].ID)
		assert.True(t, details.AllInStock)
	})

	t.Run("should return not found", func(t *testing.T) {
		f := newFixture(t)
		f.reader.On("Handle", mock.Anything, mock.Anything).
			Return(queries.GetOrderQueryResponse{}, errs.NewObjectNotFoundError("order", "WH/OUT/0009"))

		rec := f.do(http.MethodGet, "/api/v1/deliveries/9", "")

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Contains(t, decode[httpin.Error](t, rec).Message, "WH/OUT/0009")
	})

	t.Run("should reject non numeric id", func(t *testing.T) {
		f := newFixture(t)

		rec := f.do(http.MethodGet, "/api/v1/deliveries/abc", "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestServer_AddLine(t *testing.T) {
	t.Run("should append line", func(t *testing.T) {
		f := newFixture(t)
		lineID := kernel.NewUUID()
		f.adder.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.AddLineItemCommand) bool {
			return cmd.Kind() == order.Delivery && cmd.OrderID() == 2 && cmd.Code() == "CHAIR001" && cmd.Quantity() == 4
		})).Return(lineID, nil)

		rec := f.do(http.MethodPost, "/api/v1/deliveries/2/lines", `{"code":"CHAIR001","name":"Chair","quantity":4}`)

		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
		assert.Equal(t, lineID.String(), decode[httpin.CreatedLine](t, rec).ID)
	})

	t.Run("should reject zero quantity", func(t *testing.T) {
		f := newFixture(t)

		rec := f.do(http.MethodPost, "/api/v1/deliveries/2/lines", `{"code":"CHAIR001","name":"Chair","quantity":0}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("should answer conflict for done order", func(t *testing.T) {
		f := newFixture(t)
		f.adder.On("Handle", mock.Anything, mock.Anything).
			Return(kernel.UUID{}, errs.NewTransitionIsInvalidError("WH/OUT/0002", "Done", "add a line to"))

		rec := f.do(http.MethodPost, "/api/v1/deliveries/2/lines", `{"code":"CHAIR001","name":"Chair","quantity":4}`)

		assert.Equal(t, http.StatusConflict, rec.Code)
	})
}

func TestServer_ValidateOrder(t *testing.T) {
	t.Run("should report transition", func(t *testing.T) {
		f := newFixture(t)
		f.validator.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.ValidateOrderCommand) bool {
			return cmd.Kind() == order.Delivery && cmd.OrderID() == 1
		})).Return(commands.ValidateOrderResult{
			Reference: "WH/OUT/0001",
			Previous:  order.Draft,
			Status:    order.Waiting,
			Changed:   true,
		}, nil)

		rec := f.do(http.MethodPost, "/api/v1/deliveries/1/validate", "")

		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		result := decode[httpin.ValidateResult](t, rec)
		assert.Equal(t, "draft", result.Previous)
		assert.Equal(t, "waiting", result.Status)
		assert.True(t, result.Changed)
	})

	t.Run("should answer conflict on stale version", func(t *testing.T) {
		f := newFixture(t)
		f.validator.On("Handle", mock.Anything, mock.Anything).
			Return(commands.ValidateOrderResult{}, errs.NewVersionIsInvalidError("WH/IN/0001"))

		rec := f.do(http.MethodPost, "/api/v1/receipts/1/validate", "")

		assert.Equal(t, http.StatusConflict, rec.Code)
	})
}

func TestServer_RefreshAvailability(t *testing.T) {
	f := newFixture(t)
	f.refresher.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.RefreshAvailabilityCommand) bool {
		id, ok := cmd.DeliveryID()
		return ok && id == 5
	})).Return(commands.RefreshAvailabilityResult{Checked: 1, Updated: 1}, nil)

	rec := f.do(http.MethodPost, "/api/v1/deliveries/5/availability", "")

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, httpin.RefreshResult{Checked: 1, Updated: 1}, decode[httpin.RefreshResult](t, rec))
}

func TestServer_GetStockLedger(t *testing.T) {
	t.Run("should filter by sku", func(t *testing.T) {
		f := newFixture(t)
		f.ledger.On("Handle", mock.Anything, mock.MatchedBy(func(q queries.GetStockLedgerQuery) bool {
			return q.SKU() == "DESK001"
		})).Return([]queries.GetStockLedgerQueryResponse{{
			ID:           kernel.NewUUID(),
			Type:         ledger.Deliver,
			SKU:          "DESK001",
			Product:      "Desk",
			Quantity:     -6,
			Location:     "WH/Stock1",
			Reference:    "WH/OUT/0001",
			PostedAt:     scheduledAt,
			RunningStock: 4,
		}}, nil)

		rec := f.do(http.MethodGet, "/api/v1/ledger?sku=DESK001", "")

		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		entries := decode[[]httpin.LedgerEntry](t, rec)
		require.Len(t, entries, 1)
		assert.Equal(t, "deliver", entries[0].Type)
		assert.Equal(t, -6, entries[0].Quantity)
		assert.Equal(t, 4, entries[0].RunningStock)
	})

	t.Run("should return every movement without sku", func(t *testing.T) {
		f := newFixture(t)
		f.ledger.On("Handle", mock.Anything, mock.MatchedBy(func(q queries.GetStockLedgerQuery) bool {
			return q.SKU() == ""
		})).Return([]queries.GetStockLedgerQueryResponse{}, nil)

		rec := f.do(http.MethodGet, "/api/v1/ledger", "")

		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		assert.Empty(t, decode[[]httpin.LedgerEntry](t, rec))
	})
}

package commands_test

import (
	"context"
	"testing"
	"time"

	"warehouse/internal/core/application/usecases/commands"
	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/ledger"
	"warehouse/internal/core/domain/model/order"
	"warehouse/internal/core/domain/model/stock"
	"warehouse/internal/core/domain/model/warehouse"
	"warehouse/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) NextID(ctx context.Context, kind order.Kind) (int, error) {
	args := m.Called(ctx, kind)
	return args.Int(0), args.Error(1)
}

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, kind order.Kind, id int) (*order.Order, error) {
	args := m.Called(ctx, kind, id)
	if o := args.Get(0); o != nil {
		return o.(*order.Order), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockOrderRepository) GetAllInStatus(
	ctx context.Context,
	kind order.Kind,
	statuses ...order.Status,
) ([]*order.Order, error) {
	args := m.Called(ctx, kind, statuses)
	if orders := args.Get(0); orders != nil {
		return orders.([]*order.Order), args.Error(1)
	}
	return nil, args.Error(1)
}

type MockLedgerRepository struct{ mock.Mock }

func (m *MockLedgerRepository) Append(ctx context.Context, entries ...ledger.Entry) error {
	args := m.Called(ctx, entries)
	return args.Error(0)
}

func (m *MockLedgerRepository) GetByReference(ctx context.Context, reference string) ([]ledger.Entry, error) {
	args := m.Called(ctx, reference)
	if entries := args.Get(0); entries != nil {
		return entries.([]ledger.Entry), args.Error(1)
	}
	return nil, args.Error(1)
}

type MockInventory struct{ mock.Mock }

func (m *MockInventory) OnHand(ctx context.Context, sku string) (int, error) {
	args := m.Called(ctx, sku)
	return args.Int(0), args.Error(1)
}

type MockWarehouseRepository struct{ mock.Mock }

func (m *MockWarehouseRepository) Add(ctx context.Context, w *warehouse.Warehouse) error {
	args := m.Called(ctx, w)
	return args.Error(0)
}

func (m *MockWarehouseRepository) Update(ctx context.Context, w *warehouse.Warehouse) error {
	args := m.Called(ctx, w)
	return args.Error(0)
}

func (m *MockWarehouseRepository) Get(ctx context.Context, code string) (*warehouse.Warehouse, error) {
	args := m.Called(ctx, code)
	if w := args.Get(0); w != nil {
		return w.(*warehouse.Warehouse), args.Error(1)
	}
	return nil, args.Error(1)
}

type MockReorderRuleRepository struct{ mock.Mock }

func (m *MockReorderRuleRepository) Save(ctx context.Context, rule stock.ReorderRule) error {
	args := m.Called(ctx, rule)
	return args.Error(0)
}

// MockUoW satisfies every unit of work flavour used by the handlers.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) LedgerRepository() ports.LedgerRepository {
	args := m.Called()
	return args.Get(0).(ports.LedgerRepository)
}

func (m *MockUoW) Inventory() ports.InventoryLookup {
	args := m.Called()
	return args.Get(0).(ports.InventoryLookup)
}

func (m *MockUoW) WarehouseRepository() ports.WarehouseRepository {
	args := m.Called()
	return args.Get(0).(ports.WarehouseRepository)
}

func (m *MockUoW) ReorderRuleRepository() ports.ReorderRuleRepository {
	args := m.Called()
	return args.Get(0).(ports.ReorderRuleRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockStockUoWFactory struct{ mock.Mock }

func (m *MockStockUoWFactory) Create() commands.StockUoW {
	args := m.Called()
	return args.Get(0).(commands.StockUoW)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type MockWarehouseUoWFactory struct{ mock.Mock }

func (m *MockWarehouseUoWFactory) Create() commands.WarehouseUoW {
	args := m.Called()
	return args.Get(0).(commands.WarehouseUoW)
}

type MockReorderUoWFactory struct{ mock.Mock }

func (m *MockReorderUoWFactory) Create() commands.ReorderUoW {
	args := m.Called()
	return args.Get(0).(commands.ReorderUoW)
}

var scheduledAt = time.Date(2025, 12, 21, 9, 0, 0, 0, time.UTC)

func stockLocation(t *testing.T) kernel.Location {
	t.Helper()
	loc, err := kernel.LocationFromString("WH/Stock1")
	require.NoError(t, err)
	return loc
}

func newLine(t *testing.T, code string, quantity int, inStock bool) order.LineItem {
	t.Helper()
	line, err := order.NewLineItem(kernel.NewUUID(), code, code+" product", quantity, inStock)
	require.NoError(t, err)
	return line
}

func restoreOrder(t *testing.T, kind order.Kind, id int, status order.Status, lines ...order.LineItem) *order.Order {
	t.Helper()
	o, err := order.RestoreOrder(id, kind, "Azure Interior", stockLocation(t), scheduledAt, status, lines, 1)
	require.NoError(t, err)
	return o
}

// mainWarehouse is WH with the Stock1 location used by stockLocation.
func mainWarehouse(t *testing.T) *warehouse.Warehouse {
	t.Helper()
	w, err := warehouse.NewWarehouse("WH", "Main Warehouse", "")
	require.NoError(t, err)
	_, err = w.AddLocation("Stock1", "Storage Room A")
	require.NoError(t, err)
	return w
}

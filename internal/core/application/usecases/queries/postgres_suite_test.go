package queries_test

import (
	"context"
	"time"

	postgres_adapter "warehouse/internal/adapters/out/postgres"
	"warehouse/internal/adapters/out/postgres/ledgerrepo"
	"warehouse/internal/adapters/out/postgres/orderrepo"
	"warehouse/internal/adapters/out/postgres/stockrepo"
	"warehouse/internal/adapters/out/postgres/warehouserepo"
	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/ledger"
	"warehouse/internal/core/domain/model/order"
	"warehouse/internal/core/domain/model/stock"
	"warehouse/internal/core/domain/model/warehouse"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// postgresSuite starts one PostgreSQL container per query suite and offers helpers to
// store orders and ledger movements through the real repositories.
type postgresSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	orderRepo  *orderrepo.GormOrderRepository
	ledgerRepo *ledgerrepo.GormLedgerRepository
	ruleRepo   *stockrepo.GormReorderRuleRepository
	siteRepo   *warehouserepo.GormWarehouseRepository
	location   kernel.Location
}

func (suite *postgresSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(postgres_adapter.Migrate(db))

	suite.orderRepo = orderrepo.NewGormOrderRepository(db, &mockAggregateTracker{})
	suite.ledgerRepo = ledgerrepo.NewGormLedgerRepository(db, &mockAggregateTracker{})
	suite.ruleRepo = stockrepo.NewGormReorderRuleRepository(db, &mockAggregateTracker{})
	suite.siteRepo = warehouserepo.NewGormWarehouseRepository(db, &mockAggregateTracker{})

	suite.location, err = kernel.LocationFromString("WH/Stock1")
	suite.Require().NoError(err)
}

func (suite *postgresSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *postgresSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE orders, order_lines, ledger_entries, warehouses, locations, reorder_rules").Error
	suite.Require().NoError(err)
}

func (suite *postgresSuite) line(code string, quantity int, inStock bool) order.LineItem {
	l, err := order.NewLineItem(kernel.NewUUID(), code, code+" product", quantity, inStock)
	suite.Require().NoError(err)
	return l
}

// storeOrder saves an order directly in the given status.
func (suite *postgresSuite) storeOrder(
	kind order.Kind,
	id int,
	partner string,
	status order.Status,
	lines ...order.LineItem,
) *order.Order {
	scheduled := time.Date(2025, 12, 20+id, 9, 0, 0, 0, time.UTC)
	o, err := order.RestoreOrder(id, kind, partner, suite.location, scheduled, status, lines, 0)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.orderRepo.Add(context.Background(), o))
	return o
}

func (suite *postgresSuite) post(entryType ledger.EntryType, sku string, amount int, reference string, at time.Time) {
	e, err := ledger.NewEntry(kernel.NewUUID(), entryType, sku, sku+" product", amount, suite.location, reference, at)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.ledgerRepo.Append(context.Background(), e))
}

func (suite *postgresSuite) reorderAt(sku string, point int) {
	rule, err := stock.NewReorderRule(sku, point)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.ruleRepo.Save(context.Background(), rule))
}

// register stores a warehouse with the given location codes.
func (suite *postgresSuite) register(code string, name string, locations ...string) {
	w, err := warehouse.NewWarehouse(code, name, "")
	suite.Require().NoError(err)
	for _, loc := range locations {
		_, err = w.AddLocation(loc, loc+" area")
		suite.Require().NoError(err)
	}
	suite.Require().NoError(suite.siteRepo.Add(context.Background(), w))
}

// mockAggregateTracker ignores tracking in query tests.
type mockAggregateTracker struct{}

func (m *mockAggregateTracker) TrackAggregate(_ string, _ any) {}

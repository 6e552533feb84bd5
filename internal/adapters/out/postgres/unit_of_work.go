// Package postgres provides the GORM implementation of the Unit of Work pattern.
// A unit of work owns one database transaction and hands out repositories bound to it,
// so order changes and ledger postings commit or roll back together.
//
// Basic Transaction Management:
//
//	factory := NewGormUnitOfWorkFactory(db, logger)
//	uow := factory.Create()
//
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer uow.Rollback(ctx)
//
//	o, err := uow.OrderRepository().Get(ctx, order.Delivery, 7)
//	if err != nil {
//	    return err
//	}
//	// ... advance o, update it, append ledger entries
//
//	return uow.Commit(ctx)
//
// Concurrency Considerations:
//   - Each UnitOfWork instance provides isolated transactions
//   - Multiple goroutines should use separate UnitOfWork instances
//   - Lost updates on orders and warehouses are detected through the version column
//
// Every commit is logged at debug level with the keys of the aggregates it wrote.
package postgres

import (
	"context"

	"warehouse/internal/adapters/out/postgres/ledgerrepo"
	"warehouse/internal/adapters/out/postgres/orderrepo"
	"warehouse/internal/adapters/out/postgres/stockrepo"
	"warehouse/internal/adapters/out/postgres/warehouserepo"
	"warehouse/internal/core/ports"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// trackedAggregate represents an aggregate modified during the unit of work.
type trackedAggregate struct {
	Key       string
	Aggregate any
}

// GormUnitOfWorkFactory creates UnitOfWork instances sharing one connection pool.
type GormUnitOfWorkFactory struct {
	db     *gorm.DB
	logger *logrus.Entry
}

// NewGormUnitOfWorkFactory creates a factory for GORM-based unit of work instances.
//
// Example:
//
//	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
//	if err != nil {
//	    log.Fatal("failed to connect database")
//	}
//	factory := NewGormUnitOfWorkFactory(db, logrus.StandardLogger())
func NewGormUnitOfWorkFactory(db *gorm.DB, logger *logrus.Logger) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{
		db:     db,
		logger: logger.WithField("component", "unit_of_work"),
	}
}

// Create produces a new UnitOfWork with its own transaction state.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:                f.db,
		logger:            f.logger,
		trackedAggregates: make([]trackedAggregate, 0),
	}
}

// GormUnitOfWork coordinates one database transaction and records the aggregates
// written through its repositories.
type GormUnitOfWork struct {
	db                *gorm.DB
	tx                *gorm.DB
	logger            *logrus.Entry
	trackedAggregates []trackedAggregate
}

// Begin starts the transaction. Calling it again on an active unit of work is a no-op.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		err := uow.tx.Error
		uow.tx = nil
		return err
	}

	return nil
}

// Commit finalizes the transaction. Returns gorm.ErrInvalidTransaction when none is active.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	if err != nil {
		return err
	}

	if keys := uow.trackedKeys(); len(keys) > 0 {
		uow.logger.WithField("aggregates", keys).Debug("Transaction committed")
	}
	uow.trackedAggregates = uow.trackedAggregates[:0]
	return nil
}

// Rollback discards the transaction. After a successful Commit it returns
// gorm.ErrInvalidTransaction, which deferred callers ignore.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	uow.trackedAggregates = uow.trackedAggregates[:0]
	return err
}

// OrderRepository returns an order repository bound to the active transaction, or to
// the plain connection when none is active.
func (uow *GormUnitOfWork) OrderRepository() ports.OrderRepository {
	return orderrepo.NewGormOrderRepository(uow.conn(), uow)
}

// LedgerRepository returns the stock ledger bound to the active transaction.
func (uow *GormUnitOfWork) LedgerRepository() ports.LedgerRepository {
	return ledgerrepo.NewGormLedgerRepository(uow.conn(), uow)
}

// Inventory reads on-hand stock through the active transaction, so movements appended
// earlier in the same unit of work are visible.
func (uow *GormUnitOfWork) Inventory() ports.InventoryLookup {
	return ledgerrepo.NewGormLedgerRepository(uow.conn(), uow)
}

// TrackAggregate registers an aggregate written by a repository.
func (uow *GormUnitOfWork) TrackAggregate(key string, aggregate any) {
	uow.trackedAggregates = append(uow.trackedAggregates, trackedAggregate{
		Key:       key,
		Aggregate: aggregate,
	})
}

// WarehouseRepository returns a warehouse repository bound to the active transaction.
func (uow *GormUnitOfWork) WarehouseRepository() ports.WarehouseRepository {
	return warehouserepo.NewGormWarehouseRepository(uow.conn(), uow)
}

// ReorderRuleRepository returns the reorder rules bound to the active transaction.
func (uow *GormUnitOfWork) ReorderRuleRepository() ports.ReorderRuleRepository {
	return stockrepo.NewGormReorderRuleRepository(uow.conn(), uow)
}

// trackedKeys returns the keys of the aggregates written so far, in write order.
func (uow *GormUnitOfWork) trackedKeys() []string {
	keys := make([]string, 0, len(uow.trackedAggregates))
	for _, tracked := range uow.trackedAggregates {
		keys = append(keys, tracked.Key)
	}
	return keys
}

func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}

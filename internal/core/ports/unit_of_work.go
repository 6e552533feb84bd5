package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary.
// Client code must explicitly manage transaction lifecycle.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	Rollback(ctx context.Context) error

	// OrderRepository returns an OrderRepository bound to the current transaction.
	OrderRepository() OrderRepository

	// LedgerRepository returns a LedgerRepository bound to the current transaction.
	LedgerRepository() LedgerRepository

	// Inventory returns an InventoryLookup reading through the current transaction.
	Inventory() InventoryLookup

	// WarehouseRepository returns a WarehouseRepository bound to the current transaction.
	WarehouseRepository() WarehouseRepository

	// ReorderRuleRepository returns a ReorderRuleRepository bound to the current transaction.
	ReorderRuleRepository() ReorderRuleRepository
}

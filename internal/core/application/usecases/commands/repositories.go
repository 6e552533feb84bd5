// Package commands contains business operations that modify system state.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"warehouse/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// LedgerRepoFactory provides access to the stock ledger within a transaction.
	LedgerRepoFactory interface {
		LedgerRepository() ports.LedgerRepository
	}

	// InventoryFactory provides the stock lookup within a transaction.
	InventoryFactory interface {
		Inventory() ports.InventoryLookup
	}

	// WarehouseRepoFactory provides access to the warehouse registry within a transaction.
	WarehouseRepoFactory interface {
		WarehouseRepository() ports.WarehouseRepository
	}

	// ReorderRuleRepoFactory provides access to reorder rules within a transaction.
	ReorderRuleRepoFactory interface {
		ReorderRuleRepository() ports.ReorderRuleRepository
	}

	// OrderUoW manages transactions for creating orders at registered locations.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
		WarehouseRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// StockUoW manages transactions for operations that touch orders and read stock.
	StockUoW interface {
		TxManager
		OrderRepoFactory
		InventoryFactory
	}

	// StockUoWFactory creates new stock unit of work instances.
	StockUoWFactory interface {
		Create() StockUoW
	}

	// UoW manages transactions across orders and the stock ledger.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   o, err := uow.OrderRepository().Get(ctx, order.Delivery, 7)
	//   // ... advance, update, append ledger entries
	//
	//   err = uow.Commit(ctx)
	UoW interface {
		TxManager
		OrderRepoFactory
		LedgerRepoFactory
		InventoryFactory
	}

	// UoWFactory creates new unit of work instances for cross-aggregate operations.
	UoWFactory interface {
		Create() UoW
	}

	// WarehouseUoW manages transactions for the warehouse registry.
	WarehouseUoW interface {
		TxManager
		WarehouseRepoFactory
	}

	// WarehouseUoWFactory creates new warehouse unit of work instances.
	WarehouseUoWFactory interface {
		Create() WarehouseUoW
	}

	// ReorderUoW manages transactions for reorder rules.
	ReorderUoW interface {
		TxManager
		ReorderRuleRepoFactory
	}

	// ReorderUoWFactory creates new reorder rule unit of work instances.
	ReorderUoWFactory interface {
		Create() ReorderUoW
	}
)

package postgres

import (
	"warehouse/internal/adapters/out/postgres/ledgerrepo"
	"warehouse/internal/adapters/out/postgres/orderrepo"
	"warehouse/internal/adapters/out/postgres/stockrepo"
	"warehouse/internal/adapters/out/postgres/warehouserepo"

	"gorm.io/gorm"
)

// Migrate creates or updates the order, ledger, warehouse and reorder rule tables.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.LineItemDTO{},
		&ledgerrepo.EntryDTO{},
		&warehouserepo.WarehouseDTO{},
		&warehouserepo.LocationDTO{},
		&stockrepo.ReorderRuleDTO{},
	)
}

// Package ledgerrepo persists stock movements. The ledger is append-only; on-hand stock
// is the sum of signed quantities per product.
package ledgerrepo

import (
	"time"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/ledger"

	"github.com/google/uuid"
)

// EntryDTO represents one stock movement row.
type EntryDTO struct {
	ID        uuid.UUID   `gorm:"type:uuid;primaryKey"`
	Type      int         `gorm:"type:smallint;not null"`
	SKU       string      `gorm:"column:sku;type:varchar(64);not null;index"`
	Product   string      `gorm:"type:varchar(255);not null"`
	Quantity  int         `gorm:"type:int;not null"`
	Location  LocationDTO `gorm:"embedded;embeddedPrefix:location_"`
	Reference string      `gorm:"type:varchar(32);not null;index"`
	PostedAt  time.Time   `gorm:"not null;index"`
}

func (EntryDTO) TableName() string {
	return "ledger_entries"
}

// LocationDTO represents the embedded location of a movement.
type LocationDTO struct {
	Warehouse string `gorm:"type:varchar(5);not null"`
	Name      string `gorm:"type:varchar(255);not null"`
}

func fromDomain(entry ledger.Entry) EntryDTO {
	return EntryDTO{
		ID:       entry.ID().Bytes(),
		Type:     int(entry.Type()),
		SKU:      entry.SKU(),
		Product:  entry.Product(),
		Quantity: entry.Quantity(),
		Location: LocationDTO{
			Warehouse: entry.Location().Warehouse(),
			Name:      entry.Location().Name(),
		},
		Reference: entry.Reference(),
		PostedAt:  entry.PostedAt(),
	}
}

func toDomain(dto EntryDTO) (ledger.Entry, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return ledger.Entry{}, err
	}

	loc, err := kernel.NewLocation(dto.Location.Warehouse, dto.Location.Name)
	if err != nil {
		return ledger.Entry{}, err
	}

	return ledger.RestoreEntry(
		id,
		ledger.EntryType(dto.Type),
		dto.SKU,
		dto.Product,
		dto.Quantity,
		loc,
		dto.Reference,
		dto.PostedAt,
	)
}

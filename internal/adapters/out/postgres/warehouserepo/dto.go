// Package warehouserepo persists warehouses and their stock locations. Locations live
// in a child table keyed by warehouse code and location code.
package warehouserepo

import (
	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/warehouse"
)

// WarehouseDTO represents the database structure for persisting warehouse aggregates.
type WarehouseDTO struct {
	Code      string        `gorm:"type:varchar(5);primaryKey"`
	Name      string        `gorm:"type:varchar(255);not null"`
	Address   string        `gorm:"type:varchar(500);not null;default:''"`
	Version   int           `gorm:"type:int;not null;default:0"`
	Locations []LocationDTO `gorm:"foreignKey:WarehouseCode;references:Code;constraint:OnDelete:CASCADE"`
}

func (WarehouseDTO) TableName() string {
	return "warehouses"
}

// LocationDTO represents one stock location. Position keeps insertion order.
type LocationDTO struct {
	WarehouseCode string `gorm:"type:varchar(5);primaryKey"`
	Code          string `gorm:"type:varchar(255);primaryKey"`
	Name          string `gorm:"type:varchar(255);not null"`
	Position      int    `gorm:"type:int;not null"`
}

func (LocationDTO) TableName() string {
	return "locations"
}

func fromDomain(aggregate *warehouse.Warehouse) WarehouseDTO {
	locations := aggregate.Locations()
	dto := WarehouseDTO{
		Code:      aggregate.Code(),
		Name:      aggregate.Name(),
		Address:   aggregate.Address(),
		Version:   aggregate.Version(),
		Locations: make([]LocationDTO, 0, len(locations)),
	}

	for i, loc := range locations {
		dto.Locations = append(dto.Locations, LocationDTO{
			WarehouseCode: dto.Code,
			Code:          loc.Location().Name(),
			Name:          loc.Name(),
			Position:      i,
		})
	}

	return dto
}

// toDomain rebuilds the aggregate. Locations must already be sorted by position.
func toDomain(dto WarehouseDTO) (*warehouse.Warehouse, error) {
	locations := make([]warehouse.StorageLocation, 0, len(dto.Locations))
	for _, locDTO := range dto.Locations {
		code, err := kernel.NewLocation(locDTO.WarehouseCode, locDTO.Code)
		if err != nil {
			return nil, err
		}

		loc, err := warehouse.NewStorageLocation(code, locDTO.Name)
		if err != nil {
			return nil, err
		}
		locations = append(locations, loc)
	}

	return warehouse.RestoreWarehouse(dto.Code, dto.Name, dto.Address, locations, dto.Version)
}

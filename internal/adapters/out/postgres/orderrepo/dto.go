// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// Orders are keyed by kind and per-kind sequence number; their lines live in a child table
// ordered by position.
package orderrepo

import (
	"time"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
type OrderDTO struct {
	Kind        int           `gorm:"type:smallint;primaryKey;autoIncrement:false"`
	ID          int           `gorm:"type:int;primaryKey;autoIncrement:false"`
	Partner     string        `gorm:"type:varchar(255);not null"`
	Location    LocationDTO   `gorm:"embedded;embeddedPrefix:location_"`
	ScheduledAt time.Time     `gorm:"not null"`
	Status      int           `gorm:"type:smallint;not null;index"`
	Version     int           `gorm:"type:int;not null;default:0"`
	Lines       []LineItemDTO `gorm:"foreignKey:OrderKind,OrderID;references:Kind,ID;constraint:OnDelete:CASCADE"`
}

func (OrderDTO) TableName() string {
	return "orders"
}

// LocationDTO represents the embedded warehouse location of an order.
type LocationDTO struct {
	Warehouse string `gorm:"type:varchar(5);not null"`
	Name      string `gorm:"type:varchar(255);not null"`
}

// LineItemDTO represents one product line. Position keeps insertion order.
type LineItemDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderKind int       `gorm:"type:smallint;not null;index:idx_order_lines_order"`
	OrderID   int       `gorm:"type:int;not null;index:idx_order_lines_order"`
	Position  int       `gorm:"type:int;not null"`
	Code      string    `gorm:"type:varchar(64);not null;index"`
	Name      string    `gorm:"type:varchar(255);not null"`
	Quantity  int       `gorm:"type:int;not null"`
	InStock   bool      `gorm:"not null"`
}

func (LineItemDTO) TableName() string {
	return "order_lines"
}

func fromDomain(aggregate *order.Order) OrderDTO {
	lines := aggregate.Lines()
	dto := OrderDTO{
		Kind:    int(aggregate.Kind()),
		ID:      aggregate.ID(),
		Partner: aggregate.Partner(),
		Location: LocationDTO{
			Warehouse: aggregate.Location().Warehouse(),
			Name:      aggregate.Location().Name(),
		},
		ScheduledAt: aggregate.ScheduledAt(),
		Status:      int(aggregate.Status()),
		Version:     aggregate.Version(),
		Lines:       make([]LineItemDTO, 0, len(lines)),
	}

	for i, line := range lines {
		dto.Lines = append(dto.Lines, LineItemDTO{
			ID:        line.ID().Bytes(),
			OrderKind: dto.Kind,
			OrderID:   dto.ID,
			Position:  i,
			Code:      line.Code(),
			Name:      line.Name(),
			Quantity:  line.Quantity(),
			InStock:   line.InStock(),
		})
	}

	return dto
}

// toDomain rebuilds the aggregate. Lines must already be sorted by position.
func toDomain(dto OrderDTO) (*order.Order, error) {
	loc, err := kernel.NewLocation(dto.Location.Warehouse, dto.Location.Name)
	if err != nil {
		return nil, err
	}

	lines := make([]order.LineItem, 0, len(dto.Lines))
	for _, lineDTO := range dto.Lines {
		id, idErr := kernel.UUIDFromBytes(lineDTO.ID[:])
		if idErr != nil {
			return nil, idErr
		}

		line, lineErr := order.NewLineItem(id, lineDTO.Code, lineDTO.Name, lineDTO.Quantity, lineDTO.InStock)
		if lineErr != nil {
			return nil, lineErr
		}
		lines = append(lines, line)
	}

	return order.RestoreOrder(
		dto.ID,
		order.Kind(dto.Kind),
		dto.Partner,
		loc,
		dto.ScheduledAt,
		order.Status(dto.Status),
		lines,
		dto.Version,
	)
}

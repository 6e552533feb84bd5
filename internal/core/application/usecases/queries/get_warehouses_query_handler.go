package queries

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

// GetWarehousesQueryResponse is one warehouse with its locations in insertion order.
type GetWarehousesQueryResponse struct {
	Code      string
	Name      string
	Address   string
	Locations []GetWarehousesQueryLocation
}

// GetWarehousesQueryLocation is a location written in full, for example WH/Stock1.
type GetWarehousesQueryLocation struct {
	Location string
	Name     string
}

// GetWarehousesQueryHandler reads the warehouse registry.
type GetWarehousesQueryHandler struct {
	db *gorm.DB
}

func NewGetWarehousesQueryHandler(db *gorm.DB) GetWarehousesQueryHandler {
	return GetWarehousesQueryHandler{db: db}
}

// Handle returns warehouses sorted by code.
func (h GetWarehousesQueryHandler) Handle(ctx context.Context) ([]GetWarehousesQueryResponse, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT w.code, w.name, w.address, l.code, l.name
		FROM warehouses w
		LEFT JOIN locations l ON l.warehouse_code = w.code
		ORDER BY w.code, l.position
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make([]GetWarehousesQueryResponse, 0)
	for rows.Next() {
		var (
			code, name, address string
			locCode, locName    sql.NullString
		)
		if err = rows.Scan(&code, &name, &address, &locCode, &locName); err != nil {
			return nil, err
		}

		if len(result) == 0 || result[len(result)-1].Code != code {
			result = append(result, GetWarehousesQueryResponse{
				Code:      code,
				Name:      name,
				Address:   address,
				Locations: make([]GetWarehousesQueryLocation, 0),
			})
		}
		if locCode.Valid {
			last := &result[len(result)-1]
			last.Locations = append(last.Locations, GetWarehousesQueryLocation{
				Location: code + "/" + locCode.String,
				Name:     locName.String,
			})
		}
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return result, nil
}

package queries

import (
	"context"
	"time"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/order"
	"warehouse/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderQueryHandler reads order details with two statements: header, then lines.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

type orderHeaderRow struct {
	ID                int
	Partner           string
	LocationWarehouse string
	LocationName      string
	ScheduledAt       time.Time
	Status            int
	Version           int
}

// Handle returns errs.ObjectNotFoundError when the order does not exist.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	db := h.db.WithContext(ctx)

	var headers []orderHeaderRow
	err := db.Raw(`
		SELECT id, partner, location_warehouse, location_name, scheduled_at, status, version
		FROM orders
		WHERE kind = ? AND id = ?
	`, int(query.Kind()), query.ID()).Scan(&headers).Error
	if err != nil {
		return GetOrderQueryResponse{}, err
	}
	if len(headers) == 0 {
		return GetOrderQueryResponse{}, errs.NewObjectNotFoundError(
			"order", order.FormatReference(query.Kind(), query.ID()),
		)
	}
	header := headers[0]

	resp := GetOrderQueryResponse{
		ID:          header.ID,
		Kind:        query.Kind(),
		Reference:   order.FormatReference(query.Kind(), header.ID),
		Partner:     header.Partner,
		Location:    header.LocationWarehouse + "/" + header.LocationName,
		ScheduledAt: header.ScheduledAt.UTC(),
		Status:      order.Status(header.Status),
		Version:     header.Version,
		Lines:       make([]GetOrderQueryLine, 0),
	}

	rows, err := db.Raw(`
		SELECT id, code, name, quantity, in_stock
		FROM order_lines
		WHERE order_kind = ? AND order_id = ?
		ORDER BY position
	`, int(query.Kind()), query.ID()).Rows()
	if err != nil {
		return GetOrderQueryResponse{}, err
	}
	defer rows.Close()

	domainLines := make([]order.LineItem, 0)
	for rows.Next() {
		var (
			line GetOrderQueryLine
			id   uuid.UUID
		)

		if err = rows.Scan(&id, &line.Code, &line.Name, &line.Quantity, &line.InStock); err != nil {
			return GetOrderQueryResponse{}, err
		}

		line.ID, err = kernel.UUIDFromBytes(id[:])
		if err != nil {
			return GetOrderQueryResponse{}, err
		}

		domainLine, lineErr := order.NewLineItem(line.ID, line.Code, line.Name, line.Quantity, line.InStock)
		if lineErr != nil {
			return GetOrderQueryResponse{}, lineErr
		}

		resp.Lines = append(resp.Lines, line)
		domainLines = append(domainLines, domainLine)
	}

	if err = rows.Err(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	resp.Availability = order.EvaluateAvailability(domainLines)
	return resp, nil
}

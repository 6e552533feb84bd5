// Package queries contains read-only operations served straight from the database,
// bypassing the aggregates.
package queries

import (
	"errors"
	"time"

	"warehouse/internal/core/domain/model/order"
	"warehouse/internal/pkg/guard"
)

var (
	ErrGetOrdersQueryIsNotConstructed = errors.New(
		"GetOrdersQuery must be created via NewGetOrdersQuery constructor",
	)
)

// GetOrdersQuery lists the receipts or deliveries, optionally limited to some statuses.
//
// Example:
//
//	query, _ := NewGetOrdersQuery(order.Delivery, order.Waiting)
//	handler := NewGetOrdersQueryHandler(db)
//
//	rows, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return err
//	}
//	for _, row := range rows {
//	    fmt.Println(row.Reference, row.Partner, row.Status)
//	}
type GetOrdersQuery struct {
	kind     order.Kind
	statuses []order.Status

	guard guard.ConstructorGuard
}

// NewGetOrdersQuery creates a list query. No statuses means every status.
func NewGetOrdersQuery(kind order.Kind, statuses ...order.Status) (GetOrdersQuery, error) {
	if err := kind.Validate(); err != nil {
		return GetOrdersQuery{}, err
	}
	for _, s := range statuses {
		if err := s.ValidateFor(kind); err != nil {
			return GetOrdersQuery{}, err
		}
	}

	return GetOrdersQuery{
		kind:     kind,
		statuses: statuses,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (q GetOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersQueryIsNotConstructed)
}

func (q GetOrdersQuery) Kind() order.Kind {
	return q.kind
}

func (q GetOrdersQuery) Statuses() []order.Status {
	return q.statuses
}

// GetOrdersQueryResponse is one row of the receipts or deliveries list.
type GetOrdersQueryResponse struct {
	ID           int
	Reference    string
	Partner      string
	Location     string
	ScheduledAt  time.Time
	Status       order.Status
	Lines        int
	HasShortfall bool
}

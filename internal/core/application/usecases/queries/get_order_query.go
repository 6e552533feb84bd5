package queries

import (
	"errors"
	"fmt"
	"time"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/order"
	"warehouse/internal/pkg/errs"
	"warehouse/internal/pkg/guard"
)

var (
	ErrGetOrderQueryIsNotConstructed = errors.New(
		"GetOrderQuery must be created via NewGetOrderQuery constructor",
	)
)

// GetOrderQuery reads one receipt or delivery with its lines.
type GetOrderQuery struct {
	kind order.Kind
	id   int

	guard guard.ConstructorGuard
}

func NewGetOrderQuery(kind order.Kind, id int) (GetOrderQuery, error) {
	if err := kind.Validate(); err != nil {
		return GetOrderQuery{}, err
	}
	if id <= 0 {
		return GetOrderQuery{}, errs.NewValueIsInvalidErrorWithCause("id is invalid", fmt.Errorf("%d is not greater than 0", id))
	}

	return GetOrderQuery{
		kind:  kind,
		id:    id,
		guard: guard.NewConstructorGuard(),
	}, nil
}

func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

func (q GetOrderQuery) Kind() order.Kind {
	return q.kind
}

func (q GetOrderQuery) ID() int {
	return q.id
}

// GetOrderQueryResponse is the details page of an order. Availability is derived from
// the line stock flags exactly as the workflow engine sees them.
type GetOrderQueryResponse struct {
	ID           int
	Kind         order.Kind
	Reference    string
	Partner      string
	Location     string
	ScheduledAt  time.Time
	Status       order.Status
	Version      int
	Lines        []GetOrderQueryLine
	Availability order.Availability
}

// GetOrderQueryLine is one product line in display order.
type GetOrderQueryLine struct {
	ID       kernel.UUID
	Code     string
	Name     string
	Quantity int
	InStock  bool
}

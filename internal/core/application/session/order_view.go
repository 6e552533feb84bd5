package session

import (
	"context"

	"warehouse/internal/core/application/usecases/commands"
	"warehouse/internal/core/application/usecases/queries"
	"warehouse/internal/core/domain/model/kernel"
)

// OrderReader loads the details of an order.
type OrderReader interface {
	Handle(ctx context.Context, query queries.GetOrderQuery) (queries.GetOrderQueryResponse, error)
}

// OrderValidator runs the Validate action on an order.
type OrderValidator interface {
	Handle(ctx context.Context, cmd commands.ValidateOrderCommand) (commands.ValidateOrderResult, error)
}

// LineAdder appends a product line to an order.
type LineAdder interface {
	Handle(ctx context.Context, cmd commands.AddLineItemCommand) (kernel.UUID, error)
}

// OrderView is the details screen of the order open in a session.
type OrderView struct {
	session   *Session
	ref       OrderRef
	reader    OrderReader
	validator OrderValidator
	adder     LineAdder
}

// NewOrderView binds a view to the order currently open in the session.
func NewOrderView(s *Session, reader OrderReader, validator OrderValidator, adder LineAdder) (*OrderView, error) {
	if !s.IsLoggedIn() {
		return nil, ErrLoginIsRequired
	}

	ref, ok := s.OpenOrder()
	if !ok {
		return nil, ErrNoOrderIsOpen
	}

	return &OrderView{
		session:   s,
		ref:       ref,
		reader:    reader,
		validator: validator,
		adder:     adder,
	}, nil
}

func (v *OrderView) Order() OrderRef {
	return v.ref
}

// Load reads the current status and lines.
func (v *OrderView) Load(ctx context.Context) (queries.GetOrderQueryResponse, error) {
	query, err := queries.NewGetOrderQuery(v.ref.Kind, v.ref.ID)
	if err != nil {
		return queries.GetOrderQueryResponse{}, err
	}
	return v.reader.Handle(ctx, query)
}

// Validate advances the order one step. The view stays open.
func (v *OrderView) Validate(ctx context.Context) (commands.ValidateOrderResult, error) {
	cmd, err := commands.NewValidateOrderCommand(v.ref.Kind, v.ref.ID)
	if err != nil {
		return commands.ValidateOrderResult{}, err
	}
	return v.validator.Handle(ctx, cmd)
}

// AddLine appends a product line with a generated id.
func (v *OrderView) AddLine(ctx context.Context, code string, name string, quantity int) (kernel.UUID, error) {
	cmd, err := commands.NewAddLineItemCommand(v.ref.Kind, v.ref.ID, code, name, quantity)
	if err != nil {
		return kernel.UUID{}, err
	}
	return v.adder.Handle(ctx, cmd)
}

// Cancel leaves the view for the list page. Transitions already applied by Validate
// stay in place.
func (v *OrderView) Cancel() Page {
	return v.session.close()
}

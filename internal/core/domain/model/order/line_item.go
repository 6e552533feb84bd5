package order

import (
	"errors"
	"fmt"
	"strings"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/pkg/errs"
	"warehouse/internal/pkg/guard"
)

var ErrLineItemIsNotConstructed = errors.New("LineItem must be created via NewLineItem constructor")

// LineItem is one product line of an order. Identity, code, name and quantity are
// fixed at creation; only the stock flag changes, and only through the owning Order.
type LineItem struct { //nolint:recvcheck //using for validation
	id       kernel.UUID
	code     string
	name     string
	quantity int
	inStock  bool

	guard guard.ConstructorGuard
}

// NewLineItem builds a line. Duplicate codes within an order are allowed; each line
// stands on its own.
func NewLineItem(id kernel.UUID, code string, name string, quantity int, inStock bool) (LineItem, error) {
	line := LineItem{
		inStock: inStock,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		line.setID(id),
		line.setCode(code),
		line.setName(name),
		line.setQuantity(quantity),
	); err != nil {
		return LineItem{}, err
	}

	return line, nil
}

func (l LineItem) Validate() error {
	return l.guard.Validate(ErrLineItemIsNotConstructed)
}

func (l LineItem) ID() kernel.UUID {
	return l.id
}

// Code is the product SKU.
func (l LineItem) Code() string {
	return l.code
}

func (l LineItem) Name() string {
	return l.name
}

func (l LineItem) Quantity() int {
	return l.quantity
}

func (l LineItem) InStock() bool {
	return l.inStock
}

func (l *LineItem) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	l.id = id
	return nil
}

func (l *LineItem) setCode(code string) error {
	code = strings.TrimSpace(code)
	if code == "" {
		return errs.NewValueIsRequiredError("code")
	}
	l.code = code
	return nil
}

func (l *LineItem) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	l.name = name
	return nil
}

func (l *LineItem) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity is invalid", fmt.Errorf("%d is not greater than 0", quantity))
	}
	l.quantity = quantity
	return nil
}

package order

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/pkg/errs"
	"warehouse/internal/pkg/guard"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Order is a receipt or a delivery. It is the aggregate root owning its line items and
// the only place where the workflow status changes.
//
// Order follows these invariants:
//   - id is a positive sequence number, unique per kind
//   - partner and location are set
//   - status is valid for the kind (receipts are never Waiting)
//   - lines keep insertion order and are appended only while the order is not Done
//   - the stock flag of a line changes only through SetLineAvailability
type Order struct {
	// id is the per-kind sequence number rendered in the reference
	id int

	kind Kind

	// partner is the supplier of a receipt or the customer of a delivery
	partner string

	// location is the destination of a receipt or the source of a delivery
	location kernel.Location

	scheduledAt time.Time

	status Status

	lines []LineItem

	// version is the persisted revision used for optimistic locking
	version int

	guard guard.ConstructorGuard
}

// NewOrder creates a Draft order with an initial line set.
//
// Example:
//
//	loc, _ := kernel.LocationFromString("WH/Stock1")
//	desk, _ := order.NewLineItem(kernel.NewUUID(), "DESK001", "Desk", 6, true)
//	o, err := order.NewOrder(7, order.Delivery, "Azure Interior", loc, scheduledAt, desk)
//	if err != nil {
//	    // Handle validation error
//	}
//	fmt.Println(o.Reference()) // WH/OUT/0007
func NewOrder(
	id int,
	kind Kind,
	partner string,
	location kernel.Location,
	scheduledAt time.Time,
	lines ...LineItem,
) (*Order, error) {
	return RestoreOrder(id, kind, partner, location, scheduledAt, Draft, lines, 0)
}

// RestoreOrder rebuilds an order read from persistence.
func RestoreOrder(
	id int,
	kind Kind,
	partner string,
	location kernel.Location,
	scheduledAt time.Time,
	status Status,
	lines []LineItem,
	version int,
) (*Order, error) {
	order := &Order{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		order.setID(id),
		order.setKind(kind),
		order.setPartner(partner),
		order.setLocation(location),
		order.setScheduledAt(scheduledAt),
		order.setStatus(kind, status),
		order.setLines(lines),
		order.setVersion(version),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// Validate ensures the Order was built by a constructor.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.kind == other.kind && o.id == other.id
}

func (o *Order) ID() int {
	return o.id
}

func (o *Order) Kind() Kind {
	return o.kind
}

// Reference returns the display identifier, WH/IN/#### or WH/OUT/####.
func (o *Order) Reference() string {
	return FormatReference(o.kind, o.id)
}

func (o *Order) Partner() string {
	return o.partner
}

func (o *Order) Location() kernel.Location {
	return o.location
}

func (o *Order) ScheduledAt() time.Time {
	return o.scheduledAt
}

func (o *Order) Status() Status {
	return o.status
}

func (o *Order) Version() int {
	return o.version
}

// Lines returns a copy of the lines in display order.
func (o *Order) Lines() []LineItem {
	out := make([]LineItem, len(o.lines))
	copy(out, o.lines)
	return out
}

// Availability evaluates the current line flags. Receipts are evaluated too, but
// their workflow ignores the result.
func (o *Order) Availability() Availability {
	return EvaluateAvailability(o.lines)
}

// AddLine appends a line. Done orders reject new lines.
func (o *Order) AddLine(line LineItem) error {
	if err := line.Validate(); err != nil {
		return err
	}
	if o.status.IsTerminal() {
		return errs.NewTransitionIsInvalidError(o.Reference(), o.status.String(), "add a line to")
	}

	o.lines = append(o.lines, line)
	return nil
}

// SetLineAvailability records the stock flag reported by the inventory lookup. It
// returns whether the flag changed.
func (o *Order) SetLineAvailability(lineID kernel.UUID, inStock bool) (bool, error) {
	for i := range o.lines {
		if o.lines[i].id.IsEqual(lineID) {
			changed := o.lines[i].inStock != inStock
			o.lines[i].inStock = inStock
			return changed, nil
		}
	}
	return false, errs.NewObjectNotFoundError("line", lineID.String())
}

// Advance performs the Validate action. It returns a TransitionIsInvalidError and
// leaves the order untouched when the current status has no outgoing edge.
//
// Example:
//
//	if err := o.Advance(); errors.Is(err, errs.ErrTransitionIsInvalid) {
//	    // already Done, nothing to do
//	}
func (o *Order) Advance() error {
	var (
		next Status
		err  error
	)

	switch o.kind {
	case Delivery:
		next, err = o.status.NextForDelivery(o.Availability())
	case Receipt:
		next, err = o.status.NextForReceipt()
	default:
		return o.kind.Validate()
	}

	if err != nil {
		var transitionErr *errs.TransitionIsInvalidError
		if errors.As(err, &transitionErr) {
			return errs.NewTransitionIsInvalidError(o.Reference(), transitionErr.From, transitionErr.Action)
		}
		return err
	}

	o.status = next
	return nil
}

func (o *Order) setID(id int) error {
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("id is invalid", fmt.Errorf("%d is not greater than 0", id))
	}
	o.id = id
	return nil
}

func (o *Order) setKind(kind Kind) error {
	if err := kind.Validate(); err != nil {
		return err
	}
	o.kind = kind
	return nil
}

func (o *Order) setPartner(partner string) error {
	partner = strings.TrimSpace(partner)
	if partner == "" {
		return errs.NewValueIsRequiredError("partner")
	}
	o.partner = partner
	return nil
}

func (o *Order) setLocation(location kernel.Location) error {
	if err := location.Validate(); err != nil {
		return err
	}
	o.location = location
	return nil
}

func (o *Order) setScheduledAt(scheduledAt time.Time) error {
	if scheduledAt.IsZero() {
		return errs.NewValueIsRequiredError("scheduled date")
	}
	o.scheduledAt = scheduledAt.UTC()
	return nil
}

func (o *Order) setStatus(kind Kind, status Status) error {
	if err := status.ValidateFor(kind); err != nil {
		return err
	}
	o.status = status
	return nil
}

func (o *Order) setLines(lines []LineItem) error {
	o.lines = make([]LineItem, 0, len(lines))
	for _, line := range lines {
		if err := line.Validate(); err != nil {
			return err
		}
		o.lines = append(o.lines, line)
	}
	return nil
}

func (o *Order) setVersion(version int) error {
	if version < 0 {
		return errs.NewValueIsOutOfRangeError("version", version, 0, "unbounded")
	}
	o.version = version
	return nil
}

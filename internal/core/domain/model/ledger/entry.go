package ledger

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/pkg/errs"
	"warehouse/internal/pkg/guard"
)

var ErrEntryIsNotConstructed = errors.New("Entry must be created via NewEntry constructor")

// EntryType is the movement kind of a ledger entry.
type EntryType int

const (
	UnknownType EntryType = iota
	Receive
	Deliver
)

func (t EntryType) String() string {
	switch t {
	case Receive:
		return "Receive"
	case Deliver:
		return "Deliver"
	default:
		return "Unknown"
	}
}

// Sign is +1 for stock coming in and -1 for stock going out.
func (t EntryType) Sign() int {
	switch t {
	case Receive:
		return 1
	case Deliver:
		return -1
	default:
		return 0
	}
}

func (t EntryType) Validate() error {
	if t != Receive && t != Deliver {
		return errs.NewValueIsInvalidErrorWithCause("entry type", fmt.Errorf("%d is not a valid entry type", t))
	}
	return nil
}

// Entry is an immutable stock movement. Quantity is signed by the entry type.
type Entry struct { //nolint:recvcheck //using for validation
	id        kernel.UUID
	entryType EntryType
	sku       string
	product   string
	quantity  int
	location  kernel.Location
	reference string
	postedAt  time.Time

	guard guard.ConstructorGuard
}

// NewEntry takes the moved amount as a positive number; the sign comes from entryType.
func NewEntry(
	id kernel.UUID,
	entryType EntryType,
	sku string,
	product string,
	amount int,
	location kernel.Location,
	reference string,
	postedAt time.Time,
) (Entry, error) {
	entry := Entry{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		entry.setID(id),
		entry.setType(entryType),
		entry.setSKU(sku),
		entry.setProduct(product),
		entry.setLocation(location),
		entry.setReference(reference),
		entry.setPostedAt(postedAt),
	); err != nil {
		return Entry{}, err
	}

	if amount <= 0 {
		return Entry{}, errs.NewValueIsInvalidErrorWithCause("amount is invalid", fmt.Errorf("%d is not greater than 0", amount))
	}
	entry.quantity = amount * entryType.Sign()

	return entry, nil
}

// RestoreEntry rebuilds a persisted entry from its signed quantity.
func RestoreEntry(
	id kernel.UUID,
	entryType EntryType,
	sku string,
	product string,
	quantity int,
	location kernel.Location,
	reference string,
	postedAt time.Time,
) (Entry, error) {
	amount := quantity * entryType.Sign()
	return NewEntry(id, entryType, sku, product, amount, location, reference, postedAt)
}

func (e Entry) Validate() error {
	return e.guard.Validate(ErrEntryIsNotConstructed)
}

func (e Entry) ID() kernel.UUID {
	return e.id
}

func (e Entry) Type() EntryType {
	return e.entryType
}

func (e Entry) SKU() string {
	return e.sku
}

func (e Entry) Product() string {
	return e.product
}

// Quantity is positive for receptions and negative for deliveries.
func (e Entry) Quantity() int {
	return e.quantity
}

func (e Entry) Location() kernel.Location {
	return e.location
}

// Reference is the order reference that produced the entry.
func (e Entry) Reference() string {
	return e.reference
}

func (e Entry) PostedAt() time.Time {
	return e.postedAt
}

func (e *Entry) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	e.id = id
	return nil
}

func (e *Entry) setType(entryType EntryType) error {
	if err := entryType.Validate(); err != nil {
		return err
	}
	e.entryType = entryType
	return nil
}

func (e *Entry) setSKU(sku string) error {
	sku = strings.TrimSpace(sku)
	if sku == "" {
		return errs.NewValueIsRequiredError("sku")
	}
	e.sku = sku
	return nil
}

func (e *Entry) setProduct(product string) error {
	product = strings.TrimSpace(product)
	if product == "" {
		return errs.NewValueIsRequiredError("product")
	}
	e.product = product
	return nil
}

func (e *Entry) setLocation(location kernel.Location) error {
	if err := location.Validate(); err != nil {
		return err
	}
	e.location = location
	return nil
}

func (e *Entry) setReference(reference string) error {
	if strings.TrimSpace(reference) == "" {
		return errs.NewValueIsRequiredError("reference")
	}
	e.reference = reference
	return nil
}

func (e *Entry) setPostedAt(postedAt time.Time) error {
	if postedAt.IsZero() {
		return errs.NewValueIsRequiredError("posted at")
	}
	e.postedAt = postedAt.UTC()
	return nil
}

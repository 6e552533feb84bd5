package services

import (
	"time"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/ledger"
	"warehouse/internal/core/domain/model/order"
	"warehouse/internal/pkg/errs"
)

// StockPoster derives the ledger movements of a finished order: one Receive entry per
// receipt line and one Deliver entry per delivery line, at the order's location.
type StockPoster struct{}

func NewStockPoster() StockPoster {
	return StockPoster{}
}

// Post returns the entries for an order in Done status. Any other status is an
// invalid transition for posting.
func (p StockPoster) Post(o *order.Order, postedAt time.Time) ([]ledger.Entry, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}
	if o.Status() != order.Done {
		return nil, errs.NewTransitionIsInvalidError(o.Reference(), o.Status().String(), "post stock for")
	}

	entryType := entryTypeFor(o.Kind())
	lines := o.Lines()
	entries := make([]ledger.Entry, 0, len(lines))
	for _, line := range lines {
		entry, err := ledger.NewEntry(
			kernel.NewUUID(),
			entryType,
			line.Code(),
			line.Name(),
			line.Quantity(),
			o.Location(),
			o.Reference(),
			postedAt,
		)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	return entries, nil
}

func entryTypeFor(kind order.Kind) ledger.EntryType {
	if kind == order.Receipt {
		return ledger.Receive
	}
	return ledger.Deliver
}

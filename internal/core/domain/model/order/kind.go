package order

import (
	"fmt"

	"warehouse/internal/pkg/errs"
)

// Kind tells inbound and outbound orders apart. It selects the reference prefix and
// the transition table.
type Kind int

const (
	UnknownKind Kind = iota
	Receipt
	Delivery
)

func (k Kind) String() string {
	switch k {
	case Receipt:
		return "Receipt"
	case Delivery:
		return "Delivery"
	default:
		return "Unknown"
	}
}

// Prefix is the operation type part of the order reference.
func (k Kind) Prefix() string {
	switch k {
	case Receipt:
		return "WH/IN"
	case Delivery:
		return "WH/OUT"
	default:
		return ""
	}
}

func (k Kind) Validate() error {
	if k != Receipt && k != Delivery {
		return errs.NewValueIsInvalidErrorWithCause("kind", fmt.Errorf("%d is not a valid kind", k))
	}
	return nil
}

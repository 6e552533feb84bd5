package order

import (
	"fmt"
	"strings"

	"warehouse/internal/pkg/errs"
)

// Status is the workflow state of an order.
//
// Delivery transitions on Validate:
//
//	Draft ──(all in stock)──> Ready ──> Done
//	  │                        ^
//	  └──(shortfall)──> Waiting┘ (stays Waiting while any line is short)
//
// Receipt transitions on Validate:
//
//	Draft ──> Ready ──> Done
type Status int

const (
	// Unknown catches uninitialized Status values.
	Unknown Status = iota

	// Draft is the initial status; the order has not been validated yet.
	Draft

	// Waiting is delivery-only: at least one line item is unavailable.
	Waiting

	// Ready means the order was validated and can be finalized.
	Ready

	// Done is terminal.
	Done
)

const actionValidate = "validate"

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown: "Unknown",
		Draft:   "Draft",
		Waiting: "Waiting",
		Ready:   "Ready",
		Done:    "Done",
	}
}

// ParseStatus accepts the status name in any letter case.
func ParseStatus(s string) (Status, error) {
	for status, name := range getStatusStrings() {
		if status != Unknown && strings.EqualFold(name, strings.TrimSpace(s)) {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%q is not a valid status", s))
}

func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

func (s Status) Validate() error {
	if s < Draft || s > Done {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// ValidateFor rejects statuses that the kind's workflow never reaches.
func (s Status) ValidateFor(kind Kind) error {
	if err := s.Validate(); err != nil {
		return err
	}
	if kind == Receipt && s == Waiting {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status for a %s", s, kind),
		)
	}
	return nil
}

func (s Status) IsTerminal() bool {
	return s == Done
}

// NextForDelivery applies the delivery table. A Waiting delivery with a shortfall
// stays Waiting without error.
func (s Status) NextForDelivery(availability Availability) (Status, error) {
	switch s {
	case Draft, Waiting:
		if availability.AllInStock {
			return Ready, nil
		}
		return Waiting, nil
	case Ready:
		return Done, nil
	case Done:
		return s, errs.NewTransitionIsInvalidError("delivery", s.String(), actionValidate)
	case Unknown:
	}
	return s, errs.NewTransitionIsInvalidError("delivery", s.String(), actionValidate)
}

// NextForReceipt applies the receipt table; receipts have no stock gate.
func (s Status) NextForReceipt() (Status, error) {
	switch s {
	case Draft:
		return Ready, nil
	case Ready:
		return Done, nil
	case Waiting, Done, Unknown:
	}
	return s, errs.NewTransitionIsInvalidError("receipt", s.String(), actionValidate)
}

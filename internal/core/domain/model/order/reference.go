package order

import (
	"fmt"
	"strconv"
	"strings"

	"warehouse/internal/pkg/errs"
)

const referenceDigits = 4

// FormatReference renders the display reference, e.g. WH/OUT/0007. Ids wider than
// four digits are printed in full.
func FormatReference(kind Kind, id int) string {
	return fmt.Sprintf("%s/%0*d", kind.Prefix(), referenceDigits, id)
}

// ParseID accepts the sequence number with or without leading zeros ("7", "0007").
func ParseID(s string) (int, error) {
	id, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, errs.NewValueIsInvalidErrorWithCause("id", err)
	}
	if id <= 0 {
		return 0, errs.NewValueIsInvalidErrorWithCause("id", fmt.Errorf("%d is not greater than 0", id))
	}
	return id, nil
}

// ParseReference splits a reference such as "WH/IN/0012" into kind and id.
func ParseReference(reference string) (Kind, int, error) {
	idx := strings.LastIndex(reference, "/")
	if idx < 0 {
		return UnknownKind, 0, errs.NewValueIsInvalidErrorWithCause(
			"reference", fmt.Errorf("%q has no operation prefix", reference))
	}

	var kind Kind
	switch reference[:idx] {
	case Receipt.Prefix():
		kind = Receipt
	case Delivery.Prefix():
		kind = Delivery
	default:
		return UnknownKind, 0, errs.NewValueIsInvalidErrorWithCause(
			"reference", fmt.Errorf("%q is not a known operation prefix", reference[:idx]))
	}

	id, err := ParseID(reference[idx+1:])
	if err != nil {
		return UnknownKind, 0, err
	}
	return kind, id, nil
}

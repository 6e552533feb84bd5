package stock

import (
	"errors"
	"strings"

	"warehouse/internal/pkg/errs"
	"warehouse/internal/pkg/guard"
)

const maxSKULength = 64

var ErrReorderRuleIsNotConstructed = errors.New("ReorderRule must be created via NewReorderRule constructor")

// ReorderRule sets the stock level below which a product needs replenishing.
type ReorderRule struct { //nolint:recvcheck //using for validation
	sku   string
	point int

	guard guard.ConstructorGuard
}

func NewReorderRule(sku string, point int) (ReorderRule, error) {
	rule := ReorderRule{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(rule.setSKU(sku), rule.setPoint(point)); err != nil {
		return ReorderRule{}, err
	}

	return rule, nil
}

func (r ReorderRule) Validate() error {
	return r.guard.Validate(ErrReorderRuleIsNotConstructed)
}

func (r ReorderRule) SKU() string {
	return r.sku
}

func (r ReorderRule) Point() int {
	return r.point
}

// Level classifies an on-hand quantity against this rule.
func (r ReorderRule) Level(onHand int) Level {
	return NewLevel(onHand, r.point)
}

func (r *ReorderRule) setSKU(sku string) error {
	sku = strings.TrimSpace(sku)
	if sku == "" {
		return errs.NewValueIsRequiredError("sku")
	}
	if len(sku) > maxSKULength {
		return errs.NewValueIsOutOfRangeError("sku length", len(sku), 1, maxSKULength)
	}
	r.sku = sku
	return nil
}

func (r *ReorderRule) setPoint(point int) error {
	if point < 0 {
		return errs.NewValueIsOutOfRangeError("reorder point", point, 0, "unbounded")
	}
	r.point = point
	return nil
}

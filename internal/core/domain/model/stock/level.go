package stock

import (
	"fmt"
	"strings"

	"warehouse/internal/pkg/errs"
)

// LevelStatus is the stock health of one product.
type LevelStatus int

const (
	// UnknownLevel catches uninitialized LevelStatus values.
	UnknownLevel LevelStatus = iota

	InStock

	// LowStock means on-hand stock is at or below the reorder point.
	LowStock

	// Critical means on-hand stock is at or below half the reorder point.
	Critical
)

func getLevelStrings() map[LevelStatus]string {
	return map[LevelStatus]string{
		UnknownLevel: "unknown",
		InStock:      "in-stock",
		LowStock:     "low-stock",
		Critical:     "critical",
	}
}

// ParseLevelStatus accepts the kebab-case name in any letter case.
func ParseLevelStatus(s string) (LevelStatus, error) {
	for status, name := range getLevelStrings() {
		if status != UnknownLevel && strings.EqualFold(name, strings.TrimSpace(s)) {
			return status, nil
		}
	}
	return UnknownLevel, errs.NewValueIsInvalidErrorWithCause(
		"stock status is invalid", fmt.Errorf("%q is not a valid stock status", s))
}

func (s LevelStatus) String() string {
	if str, ok := getLevelStrings()[s]; ok {
		return str
	}
	return "unknown"
}

func (s LevelStatus) Validate() error {
	if s < InStock || s > Critical {
		return errs.NewValueIsInvalidErrorWithCause(
			"stock status is invalid", fmt.Errorf("%d is not a valid stock status", s))
	}
	return nil
}

// Level is the on-hand quantity of a product next to its reorder point.
type Level struct {
	OnHand       int
	ReorderPoint int
}

func NewLevel(onHand int, reorderPoint int) Level {
	return Level{OnHand: onHand, ReorderPoint: reorderPoint}
}

func (l Level) Status() LevelStatus {
	switch {
	case l.OnHand*2 <= l.ReorderPoint:
		return Critical
	case l.OnHand <= l.ReorderPoint:
		return LowStock
	default:
		return InStock
	}
}

// IsLow is true for low and critical stock.
func (l Level) IsLow() bool {
	return l.Status() != InStock
}

// Matches reports whether the level passes a status filter. The LowStock filter
// includes critical products.
func (l Level) Matches(filter LevelStatus) bool {
	switch filter {
	case LowStock:
		return l.IsLow()
	default:
		return l.Status() == filter
	}
}

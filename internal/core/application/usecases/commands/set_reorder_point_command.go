package commands

import (
	"errors"

	"warehouse/internal/core/domain/model/stock"
	"warehouse/internal/pkg/guard"
)

var (
	ErrSetReorderPointCommandIsNotConstructed = errors.New(
		"SetReorderPointCommand must be created via NewSetReorderPointCommand constructor",
	)
)

// SetReorderPointCommand sets the level below which a product is reported as low.
type SetReorderPointCommand struct { //nolint:recvcheck //using for validation
	rule stock.ReorderRule

	guard guard.ConstructorGuard
}

func NewSetReorderPointCommand(sku string, point int) (SetReorderPointCommand, error) {
	rule, err := stock.NewReorderRule(sku, point)
	if err != nil {
		return SetReorderPointCommand{}, err
	}

	return SetReorderPointCommand{
		rule:  rule,
		guard: guard.NewConstructorGuard(),
	}, nil
}

func (c SetReorderPointCommand) Validate() error {
	return c.guard.Validate(ErrSetReorderPointCommandIsNotConstructed)
}

func (c SetReorderPointCommand) Rule() stock.ReorderRule {
	return c.rule
}

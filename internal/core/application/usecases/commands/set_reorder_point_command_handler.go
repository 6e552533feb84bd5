package commands

import (
	"context"
)

// SetReorderPointCommandHandler stores the reorder rule for one product, replacing
// any earlier rule.
type SetReorderPointCommandHandler struct {
	uowFactory ReorderUoWFactory
}

func NewSetReorderPointCommandHandler(uowFactory ReorderUoWFactory) SetReorderPointCommandHandler {
	return SetReorderPointCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h *SetReorderPointCommandHandler) Handle(ctx context.Context, cmd SetReorderPointCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.ReorderRuleRepository().Save(ctx, cmd.Rule()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

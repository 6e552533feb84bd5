package commands_test

import (
	"testing"

	"warehouse/internal/core/application/usecases/commands"
	"warehouse/internal/core/domain/model/order"
	"warehouse/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAddLineItemCommand(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		cmd, err := commands.NewAddLineItemCommand(order.Delivery, 7, " DESK001 ", "Desk", 6)

		require.NoError(t, err)
		assert.Equal(t, order.Delivery, cmd.Kind())
		assert.Equal(t, 7, cmd.OrderID())
		assert.Equal(t, "DESK001", cmd.Code())
		assert.Equal(t, "Desk", cmd.Name())
		assert.Equal(t, 6, cmd.Quantity())
	})

	t.Run("invalid", func(t *testing.T) {
		_, err := commands.NewAddLineItemCommand(order.Delivery, 0, "", "", 0)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("not constructed", func(t *testing.T) {
		assert.ErrorIs(t, commands.AddLineItemCommand{}.Validate(), commands.ErrAddLineItemCommandIsNotConstructed)
	})
}

package commands_test

import (
	"testing"

	"warehouse/internal/core/application/usecases/commands"
	"warehouse/internal/core/domain/model/order"
	"warehouse/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewValidateOrderCommand(t *testing.T) {
	cmd, err := commands.NewValidateOrderCommand(order.Receipt, 1)
	require.NoError(t, err)
	assert.Equal(t, order.Receipt, cmd.Kind())
	assert.Equal(t, 1, cmd.OrderID())

	_, err = commands.NewValidateOrderCommand(order.Receipt, -1)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	assert.ErrorIs(t, commands.ValidateOrderCommand{}.Validate(), commands.ErrValidateOrderCommandIsNotConstructed)
}

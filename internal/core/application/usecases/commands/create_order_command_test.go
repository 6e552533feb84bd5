package commands_test

import (
	"testing"
	"time"

	"warehouse/internal/core/application/usecases/commands"
	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/order"
	"warehouse/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateOrderCommand_ValidInput(t *testing.T) {
	loc := stockLocation(t)

	cmd, err := commands.NewCreateOrderCommand(order.Delivery, " Azure Interior ", loc, scheduledAt)

	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
	assert.Equal(t, order.Delivery, cmd.Kind())
	assert.Equal(t, "Azure Interior", cmd.Partner())
	assert.True(t, loc.IsEqual(cmd.Location()))
	assert.Equal(t, scheduledAt, cmd.ScheduledAt())
}

func TestNewCreateOrderCommand_InvalidInput(t *testing.T) {
	_, err := commands.NewCreateOrderCommand(order.UnknownKind, "", kernel.Location{}, time.Time{})

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	assert.ErrorIs(t, err, kernel.ErrLocationIsNotConstructed)
}

func TestCreateOrderCommand_Validate_NotConstructed(t *testing.T) {
	assert.ErrorIs(t, commands.CreateOrderCommand{}.Validate(), commands.ErrCreateOrderCommandIsNotConstructed)
}

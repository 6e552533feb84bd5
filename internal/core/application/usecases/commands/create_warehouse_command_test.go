package commands_test

import (
	"testing"

	"warehouse/internal/core/application/usecases/commands"
	"warehouse/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateWarehouseCommand(t *testing.T) {
	cmd, err := commands.NewCreateWarehouseCommand(" WH2 ", " Overflow ", " 3 Quay Street ")

	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
	assert.Equal(t, "WH2", cmd.Code())
	assert.Equal(t, "Overflow", cmd.Name())
	assert.Equal(t, "3 Quay Street", cmd.Address())
}

func TestNewCreateWarehouseCommand_InvalidInput(t *testing.T) {
	testCases := []struct {
		name      string
		code      string
		warehouse string
		want      error
	}{
		{"lower case code", "wh", "Main Warehouse", errs.ErrValueIsInvalid},
		{"long code", "WAREHOUSE", "Main Warehouse", errs.ErrValueIsOutOfRange},
		{"missing name", "WH", " ", errs.ErrValueIsRequired},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := commands.NewCreateWarehouseCommand(tc.code, tc.warehouse, "")

			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestNewAddLocationCommand(t *testing.T) {
	cmd, err := commands.NewAddLocationCommand("WH", " Stock4 ", " Cold Room ")

	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
	assert.Equal(t, "WH/Stock4", cmd.Location().String())
	assert.Equal(t, "Cold Room", cmd.Name())
}

func TestNewAddLocationCommand_InvalidInput(t *testing.T) {
	_, err := commands.NewAddLocationCommand("", "", "")

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestNewSetReorderPointCommand(t *testing.T) {
	cmd, err := commands.NewSetReorderPointCommand("DESK001", 10)

	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
	assert.Equal(t, "DESK001", cmd.Rule().SKU())
	assert.Equal(t, 10, cmd.Rule().Point())

	_, err = commands.NewSetReorderPointCommand("DESK001", -1)
	assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)

	assert.ErrorIs(t, commands.SetReorderPointCommand{}.Validate(), commands.ErrSetReorderPointCommandIsNotConstructed)
}

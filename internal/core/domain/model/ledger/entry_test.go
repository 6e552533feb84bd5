package ledger_test

import (
	"testing"
	"time"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/ledger"
	"warehouse/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var postedAt = time.Date(2025, 11, 22, 9, 0, 0, 0, time.UTC)

func mainStore(t *testing.T) kernel.Location {
	t.Helper()
	loc, err := kernel.NewLocation("WH", "Main Store")
	require.NoError(t, err)
	return loc
}

func TestNewEntry(t *testing.T) {
	t.Run("receive entries are positive", func(t *testing.T) {
		e, err := ledger.NewEntry(kernel.NewUUID(), ledger.Receive, "STEEL001", "Steel", 100, mainStore(t), "WH/IN/0001", postedAt)

		require.NoError(t, err)
		require.NoError(t, e.Validate())
		assert.Equal(t, 100, e.Quantity())
		assert.Equal(t, ledger.Receive, e.Type())
		assert.Equal(t, "STEEL001", e.SKU())
		assert.Equal(t, "Steel", e.Product())
		assert.Equal(t, "WH/Main Store", e.Location().String())
		assert.Equal(t, "WH/IN/0001", e.Reference())
		assert.Equal(t, postedAt, e.PostedAt())
	})

	t.Run("deliver entries are negative", func(t *testing.T) {
		e, err := ledger.NewEntry(kernel.NewUUID(), ledger.Deliver, "STEEL001", "Steel", 20, mainStore(t), "WH/OUT/0002", postedAt)

		require.NoError(t, err)
		assert.Equal(t, -20, e.Quantity())
	})

	t.Run("rejects non positive amounts", func(t *testing.T) {
		_, err := ledger.NewEntry(kernel.NewUUID(), ledger.Deliver, "STEEL001", "Steel", 0, mainStore(t), "WH/OUT/0002", postedAt)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("collects invalid fields", func(t *testing.T) {
		e, err := ledger.NewEntry(kernel.UUID{}, ledger.UnknownType, "", "", 1, kernel.Location{}, "", time.Time{})

		require.Error(t, err)
		for _, part := range []string{"UUID", "entry type", "sku", "product", "location", "reference", "posted at"} {
			assert.Contains(t, err.Error(), part)
		}
		assert.ErrorIs(t, e.Validate(), ledger.ErrEntryIsNotConstructed)
	})
}

func TestRestoreEntry(t *testing.T) {
	e, err := ledger.RestoreEntry(kernel.NewUUID(), ledger.Deliver, "STEEL001", "Steel", -15, mainStore(t), "WH/OUT/0002", postedAt)

	require.NoError(t, err)
	assert.Equal(t, -15, e.Quantity())

	_, err = ledger.RestoreEntry(kernel.NewUUID(), ledger.Deliver, "STEEL001", "Steel", 15, mainStore(t), "WH/OUT/0002", postedAt)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid, "sign must match the entry type")
}

func TestEntryType(t *testing.T) {
	assert.Equal(t, "Receive", ledger.Receive.String())
	assert.Equal(t, "Deliver", ledger.Deliver.String())
	assert.Equal(t, "Unknown", ledger.UnknownType.String())
	assert.Equal(t, 1, ledger.Receive.Sign())
	assert.Equal(t, -1, ledger.Deliver.Sign())
	require.Error(t, ledger.EntryType(9).Validate())
}

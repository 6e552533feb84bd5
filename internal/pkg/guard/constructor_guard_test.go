package guard_test

import (
	"errors"
	"testing"

	"warehouse/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("constructed_guard_returns_nil", func(t *testing.T) {
		g := guard.NewConstructorGuard()

		require.NoError(t, g.Validate(errors.New("not constructed")))
		require.NoError(t, g.Validate(nil))
	})

	t.Run("zero_value_guard_returns_custom_error", func(t *testing.T) {
		var g guard.ConstructorGuard
		expected := errors.New("LineItem must be created via NewLineItem")

		err := g.Validate(expected)

		require.Error(t, err)
		assert.Equal(t, expected, err)
	})

	t.Run("zero_value_guard_returns_default_error_when_nil", func(t *testing.T) {
		var g guard.ConstructorGuard

		err := g.Validate(nil)

		require.Error(t, err)
		assert.Equal(t, guard.ErrDefaultConstructorGuard, err)
		assert.Equal(t, "object must be created via its constructor", err.Error())
	})
}

func TestConstructorGuard_EmbeddedInValueObject(t *testing.T) {
	type shelf struct {
		code  string
		guard guard.ConstructorGuard
	}
	errShelfNotConstructed := errors.New("shelf must be created via newShelf")

	newShelf := func(code string) (shelf, error) {
		if code == "" {
			return shelf{}, errors.New("code is required")
		}
		return shelf{code: code, guard: guard.NewConstructorGuard()}, nil
	}

	t.Run("constructed_value_is_valid_after_copy", func(t *testing.T) {
		s, err := newShelf("A-01")
		require.NoError(t, err)

		cp := s
		require.NoError(t, cp.guard.Validate(errShelfNotConstructed))
	})

	t.Run("literal_value_is_rejected", func(t *testing.T) {
		s := shelf{code: "A-01"}

		assert.Equal(t, errShelfNotConstructed, s.guard.Validate(errShelfNotConstructed))
	})

	t.Run("failed_constructor_returns_zero_value", func(t *testing.T) {
		s, err := newShelf("")

		require.Error(t, err)
		assert.Equal(t, errShelfNotConstructed, s.guard.Validate(errShelfNotConstructed))
	})
}

func BenchmarkConstructorGuard_Validate(b *testing.B) {
	g := guard.NewConstructorGuard()
	err := errors.New("not constructed")
	b.ResetTimer()
	for range b.N {
		_ = g.Validate(err)
	}
}

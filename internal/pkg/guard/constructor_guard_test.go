package guard_test

import (
	"errors"
	"testing"

	"tableside/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructorGuard_Validate(t *testing.T) {
	errNotConstructed := errors.New("command must be created via its constructor")

	t.Run("constructed guard passes", func(t *testing.T) {
		g := guard.NewConstructorGuard()

		require.NoError(t, g.Validate(errNotConstructed))
		require.NoError(t, g.Validate(nil))
	})

	t.Run("zero value returns given error", func(t *testing.T) {
		var g guard.ConstructorGuard

		err := g.Validate(errNotConstructed)

		assert.Equal(t, errNotConstructed, err)
	})

	t.Run("zero value falls back to default error", func(t *testing.T) {
		var g guard.ConstructorGuard

		assert.Equal(t, guard.ErrDefaultConstructorGuard, g.Validate(nil))
	})
}

func TestConstructorGuard_EmbeddedInValue(t *testing.T) {
	type command struct {
		code  string
		guard guard.ConstructorGuard
	}
	errCommand := errors.New("not constructed")

	constructed := command{code: "T1", guard: guard.NewConstructorGuard()}
	copied := constructed

	require.NoError(t, constructed.guard.Validate(errCommand))
	require.NoError(t, copied.guard.Validate(errCommand))
	require.ErrorIs(t, command{}.guard.Validate(errCommand), errCommand)
}

// Package slottest provides the behavior checks every types.Backend must pass.
// Backend packages call Run from their own tests.
package slottest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/notes/pkg/types"
)

// Factory returns a new, detached backend and the Config to attach it with.
// Calling it twice with the same dataDir must yield backends that share
// durable state, if the backend is durable at all.
type Factory func(t *testing.T, dataDir string) (types.Backend, types.Config)

// Run executes the backend contract against backends produced by newBackend.
// durable reports whether values must survive Detach and a fresh Attach.
func Run(t *testing.T, newBackend Factory, durable bool) {
	t.Run("lifecycle", func(t *testing.T) {
		b, cfg := newBackend(t, t.TempDir())

		_, err := b.Get("notes")
		assert.ErrorIs(t, err, types.ErrBackendDetached)

		require.NoError(t, b.Attach(cfg))
		assert.ErrorIs(t, b.Attach(cfg), types.ErrAlreadyAttached)

		require.NoError(t, b.Detach())
		require.NoError(t, b.Detach(), "Detach must be idempotent")

		assert.ErrorIs(t, b.Set("notes", []string{"x"}), types.ErrBackendDetached)
		_, err = b.Get("notes")
		assert.ErrorIs(t, err, types.ErrBackendDetached)
	})

	t.Run("missing key returns nil", func(t *testing.T) {
		b := attach(t, newBackend, t.TempDir())

		got, err := b.Get("notes")
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("set overwrites", func(t *testing.T) {
		b := attach(t, newBackend, t.TempDir())

		require.NoError(t, b.Set("notes", []string{"a", "b", "c"}))
		require.NoError(t, b.Set("notes", []string{"d"}))

		got, err := b.Get("notes")
		require.NoError(t, err)
		assert.Equal(t, []string{"d"}, got)
	})

	t.Run("empty array is stored", func(t *testing.T) {
		b := attach(t, newBackend, t.TempDir())

		require.NoError(t, b.Set("notes", []string{}))
		got, err := b.Get("notes")
		require.NoError(t, err)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("order and content preserved", func(t *testing.T) {
		b := attach(t, newBackend, t.TempDir())

		want := []string{"", "line one\nline two", "  padded  ", "quote \" and 'single'", "emoji 😊", "Здравствуйте"}
		require.NoError(t, b.Set("notes", want))
		got, err := b.Get("notes")
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("keys are independent", func(t *testing.T) {
		b := attach(t, newBackend, t.TempDir())

		require.NoError(t, b.Set("notes", []string{"n"}))
		require.NoError(t, b.Set("other", []string{"o"}))

		got, err := b.Get("notes")
		require.NoError(t, err)
		assert.Equal(t, []string{"n"}, got)
	})

	t.Run("empty key rejected", func(t *testing.T) {
		b := attach(t, newBackend, t.TempDir())

		_, err := b.Get("")
		assert.ErrorIs(t, err, types.ErrInvalidKey)
		assert.ErrorIs(t, b.Set("", nil), types.ErrInvalidKey)
	})

	if !durable {
		return
	}

	t.Run("values survive reattach", func(t *testing.T) {
		dir := t.TempDir()

		first, cfg := newBackend(t, dir)
		require.NoError(t, first.Attach(cfg))
		require.NoError(t, first.Set("notes", []string{"Buy milk", "Call mom"}))
		require.NoError(t, first.Detach())

		second := attach(t, newBackend, dir)
		got, err := second.Get("notes")
		require.NoError(t, err)
		assert.Equal(t, []string{"Buy milk", "Call mom"}, got)
	})
}

func attach(t *testing.T, newBackend Factory, dir string) types.Backend {
	t.Helper()
	b, cfg := newBackend(t, dir)
	require.NoError(t, b.Attach(cfg))
	t.Cleanup(func() { b.Detach() })
	return b
}

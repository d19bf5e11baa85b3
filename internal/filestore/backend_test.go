package filestore

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/notes/internal/slottest"
	"github.com/mesh-intelligence/notes/pkg/types"
)

func newTestBackend(t *testing.T, dataDir string) (types.Backend, types.Config) {
	return NewBackend(nil), types.Config{Backend: types.BackendFile, DataDir: dataDir}
}

func TestBackend_Contract(t *testing.T) {
	slottest.Run(t, newTestBackend, true)
}

func TestBackend_AttachCreatesFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "data")
	b := NewBackend(nil)
	require.NoError(t, b.Attach(types.Config{Backend: types.BackendFile, DataDir: dir}))
	defer b.Detach()

	data, err := os.ReadFile(filepath.Join(dir, FileName))
	require.NoError(t, err)
	assert.JSONEq(t, `{}`, string(data))
}

func TestBackend_FileFormat(t *testing.T) {
	dir := t.TempDir()
	b := NewBackend(nil)
	require.NoError(t, b.Attach(types.Config{Backend: types.BackendFile, DataDir: dir}))
	defer b.Detach()

	require.NoError(t, b.Set("notes", []string{"Buy milk", ""}))

	data, err := os.ReadFile(filepath.Join(dir, FileName))
	require.NoError(t, err)
	assert.JSONEq(t, `{"notes": ["Buy milk", ""]}`, string(data))
}

func TestBackend_MalformedFileRejected(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, FileName)
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	b := NewBackend(nil)
	err := b.Attach(types.Config{Backend: types.BackendFile, DataDir: dir})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decoding")

	// The damaged file is left for the user to inspect.
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "{not json", string(data))
}

func TestBackend_BlankFileIsEmpty(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), nil, 0o644))

	b := NewBackend(nil)
	require.NoError(t, b.Attach(types.Config{Backend: types.BackendFile, DataDir: dir}))
	defer b.Detach()

	got, err := b.Get("notes")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestWriteFileAtomic_NoTempLeftBehind(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.json")

	require.NoError(t, writeFileAtomic(path, []byte("one")))
	require.NoError(t, writeFileAtomic(path, []byte("two")))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "two", string(data))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestWriteFileAtomic_MissingDir(t *testing.T) {
	err := writeFileAtomic(filepath.Join(t.TempDir(), "absent", "out.json"), []byte("x"))
	assert.ErrorContains(t, err, "creating temp file")
}

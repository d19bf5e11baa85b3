package backend

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/notes/internal/filestore"
	"github.com/mesh-intelligence/notes/internal/memory"
	"github.com/mesh-intelligence/notes/internal/sqlite"
	"github.com/mesh-intelligence/notes/pkg/types"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name     string
		backend  string
		wantType any
		wantErr  error
	}{
		{name: "sqlite", backend: types.BackendSQLite, wantType: &sqlite.Backend{}},
		{name: "file", backend: types.BackendFile, wantType: &filestore.Backend{}},
		{name: "memory", backend: types.BackendMemory, wantType: &memory.Backend{}},
		{name: "empty", backend: "", wantErr: types.ErrBackendEmpty},
		{name: "unknown", backend: "redis", wantErr: types.ErrBackendUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := New(tt.backend, nil)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, b)
				return
			}
			require.NoError(t, err)
			assert.IsType(t, tt.wantType, b)
		})
	}
}

func TestOpen(t *testing.T) {
	for _, name := range types.KnownBackends() {
		t.Run(name, func(t *testing.T) {
			b, err := Open(types.Config{Backend: name, DataDir: t.TempDir()}, nil)
			require.NoError(t, err)
			defer b.Detach()

			require.NoError(t, b.Set("notes", []string{"hello"}))
			got, err := b.Get("notes")
			require.NoError(t, err)
			assert.Equal(t, []string{"hello"}, got)
		})
	}
}

func TestOpen_UnknownBackend(t *testing.T) {
	_, err := Open(types.Config{Backend: "postgres"}, nil)
	assert.ErrorIs(t, err, types.ErrBackendUnknown)
}

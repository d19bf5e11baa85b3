// Package backend constructs slot backends by name while keeping their
// implementations internal.
//
// Example:
//
//	b, err := backend.New(types.BackendSQLite, logger)
//	if err != nil { ... }
//	err = b.Attach(types.Config{Backend: types.BackendSQLite, DataDir: ".notes-db"})
//	defer b.Detach()
package backend

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/mesh-intelligence/notes/internal/filestore"
	"github.com/mesh-intelligence/notes/internal/memory"
	"github.com/mesh-intelligence/notes/internal/sqlite"
	"github.com/mesh-intelligence/notes/pkg/types"
)

// New returns a detached backend for the named implementation.
// Returns an error wrapping ErrBackendEmpty or ErrBackendUnknown otherwise.
func New(name string, logger *zap.Logger) (types.Backend, error) {
	switch name {
	case types.BackendSQLite:
		return sqlite.NewBackend(logger), nil
	case types.BackendFile:
		return filestore.NewBackend(logger), nil
	case types.BackendMemory:
		return memory.NewBackend(logger), nil
	case "":
		return nil, types.ErrBackendEmpty
	default:
		return nil, fmt.Errorf("%w %q", types.ErrBackendUnknown, name)
	}
}

// Open creates the backend named by config.Backend and attaches it.
// The caller must Detach the returned backend.
func Open(config types.Config, logger *zap.Logger) (types.Backend, error) {
	b, err := New(config.Backend, logger)
	if err != nil {
		return nil, err
	}
	if err := b.Attach(config); err != nil {
		return nil, fmt.Errorf("attach %s backend: %w", config.Backend, err)
	}
	return b, nil
}

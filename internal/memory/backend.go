// Package memory implements an in-process slot backend. Values live only as
// long as the Backend; it serves tests and --backend memory dry runs.
package memory

import (
	"sync"

	"go.uber.org/zap"

	"github.com/mesh-intelligence/notes/pkg/types"
)

var _ types.Backend = (*Backend)(nil)

// Backend implements types.Backend on a map.
type Backend struct {
	mu       sync.RWMutex
	attached bool
	slots    map[string][]string
	logger   *zap.Logger
}

// NewBackend creates a detached in-memory backend. A nil logger disables
// logging.
func NewBackend(logger *zap.Logger) *Backend {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Backend{
		slots:  make(map[string][]string),
		logger: logger,
	}
}

// Attach marks the backend usable. DataDir is ignored.
func (b *Backend) Attach(config types.Config) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.attached {
		return types.ErrAlreadyAttached
	}
	if err := config.Validate(); err != nil {
		return err
	}

	b.attached = true
	b.logger.Debug("memory backend attached")
	return nil
}

// Detach marks the backend unusable. Stored values are kept so a later
// Attach on the same Backend sees them again.
func (b *Backend) Detach() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.attached = false
	return nil
}

// Get returns a copy of the values stored under key.
func (b *Backend) Get(key string) ([]string, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if !b.attached {
		return nil, types.ErrBackendDetached
	}
	if key == "" {
		return nil, types.ErrInvalidKey
	}
	return clone(b.slots[key]), nil
}

// Set stores a copy of values under key, replacing any previous value.
func (b *Backend) Set(key string, values []string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.attached {
		return types.ErrBackendDetached
	}
	if key == "" {
		return types.ErrInvalidKey
	}

	stored := make([]string, len(values))
	copy(stored, values)
	b.slots[key] = stored
	return nil
}

func clone(values []string) []string {
	if values == nil {
		return nil
	}
	out := make([]string, len(values))
	copy(out, values)
	return out
}

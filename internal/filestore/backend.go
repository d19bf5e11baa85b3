// Package filestore implements a slot backend on a single JSON file,
// notes.json, holding an object that maps each key to its string array.
// Every Set rewrites the file atomically.
package filestore

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/zap"

	"github.com/mesh-intelligence/notes/pkg/types"
)

// FileName is the slot file created inside the data directory.
const FileName = "notes.json"

var _ types.Backend = (*Backend)(nil)

// Backend implements types.Backend on a JSON file.
type Backend struct {
	mu       sync.RWMutex
	attached bool
	path     string
	logger   *zap.Logger
}

// NewBackend creates a detached file backend. A nil logger disables logging.
func NewBackend(logger *zap.Logger) *Backend {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Backend{logger: logger}
}

// Attach creates config.DataDir and an empty notes.json if they do not exist.
// An existing file is validated but left untouched.
func (b *Backend) Attach(config types.Config) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.attached {
		return types.ErrAlreadyAttached
	}
	if err := config.Validate(); err != nil {
		return err
	}

	dataDir := config.DataDir
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}

	path := filepath.Join(dataDir, FileName)
	if _, err := readSlots(path); err != nil {
		return err
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := writeFileAtomic(path, []byte("{}\n")); err != nil {
			return fmt.Errorf("initializing %s: %w", path, err)
		}
	}

	b.path = path
	b.attached = true
	b.logger.Debug("file backend attached", zap.String("path", path))
	return nil
}

// Detach is idempotent. The file needs no closing; every Set is already on
// disk.
func (b *Backend) Detach() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.attached = false
	return nil
}

// Get reads notes.json and returns the values stored under key.
func (b *Backend) Get(key string) ([]string, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if !b.attached {
		return nil, types.ErrBackendDetached
	}
	if key == "" {
		return nil, types.ErrInvalidKey
	}

	slots, err := readSlots(b.path)
	if err != nil {
		return nil, err
	}
	return slots[key], nil
}

// Set replaces the values under key and rewrites notes.json atomically.
// Other keys in the file are carried over unchanged.
func (b *Backend) Set(key string, values []string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.attached {
		return types.ErrBackendDetached
	}
	if key == "" {
		return types.ErrInvalidKey
	}

	slots, err := readSlots(b.path)
	if err != nil {
		return err
	}
	if values == nil {
		values = []string{}
	}
	slots[key] = values

	data, err := json.MarshalIndent(slots, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding %s: %w", b.path, err)
	}
	data = append(data, '\n')
	if err := writeFileAtomic(b.path, data); err != nil {
		return fmt.Errorf("writing %s: %w", b.path, err)
	}
	return nil
}

// readSlots decodes the slot file. A missing or blank file is an empty map;
// malformed JSON is an error so a damaged file is never overwritten.
func readSlots(path string) (map[string][]string, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return make(map[string][]string), nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	slots := make(map[string][]string)
	if len(data) == 0 {
		return slots, nil
	}
	if err := json.Unmarshal(data, &slots); err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	if slots == nil {
		slots = make(map[string][]string)
	}
	return slots, nil
}

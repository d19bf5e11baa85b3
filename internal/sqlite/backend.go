// Package sqlite implements the SQLite slot backend. Each slot is one row in
// the slots table of notes.db; its value is the JSON encoding of the string
// array.
package sqlite

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"go.uber.org/zap"
	_ "modernc.org/sqlite"

	"github.com/mesh-intelligence/notes/pkg/types"
)

// DBFileName is the database file created inside the data directory.
const DBFileName = "notes.db"

var _ types.Backend = (*Backend)(nil)

// Backend implements types.Backend on SQLite.
type Backend struct {
	mu       sync.RWMutex
	attached bool
	config   types.Config
	db       *sql.DB
	logger   *zap.Logger
}

// NewBackend creates a new SQLite backend instance. The backend is not
// attached; call Attach with a Config to initialize. A nil logger disables
// logging.
func NewBackend(logger *zap.Logger) *Backend {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Backend{logger: logger}
}

// Attach opens notes.db in config.DataDir, creating the directory and schema
// if needed. Existing slot values are preserved.
// Returns ErrAlreadyAttached if already attached.
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

	dbPath := filepath.Join(dataDir, DBFileName)
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return fmt.Errorf("open %s: %w", dbPath, err)
	}

	for _, stmt := range schemaDDL {
		if _, err := db.Exec(stmt); err != nil {
			db.Close()
			return fmt.Errorf("apply schema: %w", err)
		}
	}

	b.db = db
	b.config = config
	b.attached = true

	b.logger.Debug("sqlite backend attached", zap.String("path", dbPath))
	return nil
}

// Detach closes the database connection. Detach is idempotent.
func (b *Backend) Detach() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.attached {
		return nil
	}

	if b.db != nil {
		if err := b.db.Close(); err != nil {
			return err
		}
		b.db = nil
	}

	b.attached = false
	return nil
}

// Get returns the values stored under key, or nil if the key has no row.
func (b *Backend) Get(key string) ([]string, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if !b.attached {
		return nil, types.ErrBackendDetached
	}
	if key == "" {
		return nil, types.ErrInvalidKey
	}

	var raw string
	err := b.db.QueryRow(selectSlot, key).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting slot %s: %w", key, err)
	}

	var values []string
	if err := json.Unmarshal([]byte(raw), &values); err != nil {
		return nil, fmt.Errorf("decoding slot %s: %w", key, err)
	}
	if values == nil {
		values = []string{}
	}
	return values, nil
}

// Set replaces the values stored under key in a single upsert.
func (b *Backend) Set(key string, values []string) error {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if !b.attached {
		return types.ErrBackendDetached
	}
	if key == "" {
		return types.ErrInvalidKey
	}

	if values == nil {
		values = []string{}
	}
	raw, err := json.Marshal(values)
	if err != nil {
		return fmt.Errorf("encoding slot %s: %w", key, err)
	}

	now := time.Now().UTC().Format(time.RFC3339Nano)
	if _, err := b.db.Exec(upsertSlot, key, string(raw), now); err != nil {
		return fmt.Errorf("setting slot %s: %w", key, err)
	}
	return nil
}

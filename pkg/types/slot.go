package types

import "errors"

// Slot is a durable key-value store holding ordered string arrays.
type Slot interface {
	// Get returns the values stored under key. A key that was never set
	// returns nil and no error.
	Get(key string) ([]string, error)

	// Set replaces the values stored under key. There is no merge.
	Set(key string, values []string) error
}

// Backend is a Slot with an attach/detach lifecycle.
type Backend interface {
	Slot

	// Attach opens the backend described by config. Creates DataDir if it
	// does not exist. Returns ErrAlreadyAttached if already attached.
	Attach(config Config) error

	// Detach releases backend resources. Idempotent. After Detach, Get and
	// Set return ErrBackendDetached.
	Detach() error
}

// Backend lifecycle and slot errors.
var (
	ErrBackendDetached = errors.New("backend is detached")
	ErrAlreadyAttached = errors.New("backend is already attached")
	ErrInvalidKey      = errors.New("slot key must not be empty")
)

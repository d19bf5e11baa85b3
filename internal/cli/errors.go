package cli

import (
	"errors"
	"fmt"

	"github.com/mesh-intelligence/notes/pkg/types"
)

// exitError carries the process exit code for an error returned by a command.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }

// userError marks err as caused by bad input (exit 1).
func userError(err error) error {
	return &exitError{code: exitUserError, err: err}
}

// sysError marks err as an environment or storage failure (exit 2).
func sysError(err error) error {
	return &exitError{code: exitSysError, err: err}
}

// storeError classifies an error returned by a note store operation.
func storeError(err error) error {
	switch {
	case errors.Is(err, types.ErrOutOfRange), errors.Is(err, types.ErrNotFound):
		return userError(err)
	case errors.Is(err, types.ErrPersist):
		return sysError(fmt.Errorf("change not saved: %w", err))
	default:
		return sysError(err)
	}
}

// exitCode maps err to a process exit code. Errors not produced by this
// package, such as cobra argument validation, are user errors.
func exitCode(err error) int {
	if err == nil {
		return exitSuccess
	}
	var ee *exitError
	if errors.As(err, &ee) {
		return ee.code
	}
	return exitUserError
}

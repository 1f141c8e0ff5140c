// Package errors defines the errors reported by binder cells and handles.
package errors

import (
	"errors"
	"fmt"
)

var (
	// ErrAlreadyBound is reported when a cell that already has a live handle
	// is bound again.
	ErrAlreadyBound = errors.New("tried to bind a cell that was already bound")
	// ErrDoubleRelease is reported when a handle finds the shared lock already
	// unlocked at release time. It signals a broken lock invariant.
	ErrDoubleRelease = errors.New("tried to release a lock that was already unlocked")
	// ErrReleased is reported when a handle is dereferenced after release.
	ErrReleased = errors.New("handle used after release")
)

// BindError describes a failed operation on a cell or handle.
type BindError struct {
	// Op is the operation that failed (e.g. "Cell.Bind").
	Op string
	// Type is the name of the value type held by the cell.
	Type string
	// Err is the underlying sentinel error.
	Err error
}

func (e *BindError) Error() string {
	return fmt.Sprintf("binder.Handle[%s]: %v", e.Type, e.Err)
}

func (e *BindError) Unwrap() error {
	return e.Err
}

// AlreadyBound reports whether err is, or wraps, ErrAlreadyBound.
func AlreadyBound(err error) bool {
	return errors.Is(err, ErrAlreadyBound)
}

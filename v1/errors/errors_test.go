package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestBindErrorMessage(t *testing.T) {
	err := &BindError{Op: "Cell.Bind", Type: "int32", Err: ErrAlreadyBound}
	want := "binder.Handle[int32]: tried to bind a cell that was already bound"
	if got := err.Error(); got != want {
		t.Fatalf("Error() = %q, want %q", got, want)
	}
}

func TestBindErrorUnwrap(t *testing.T) {
	err := fmt.Errorf("wrapped: %w", &BindError{Op: "Handle.Release", Type: "string", Err: ErrDoubleRelease})
	if !errors.Is(err, ErrDoubleRelease) {
		t.Fatal("expected errors.Is to find ErrDoubleRelease")
	}
	if AlreadyBound(err) {
		t.Fatal("double release must not be reported as already bound")
	}
	var be *BindError
	if !errors.As(err, &be) || be.Op != "Handle.Release" {
		t.Fatalf("expected BindError with op, got %v", be)
	}
}

func TestAlreadyBound(t *testing.T) {
	if !AlreadyBound(&BindError{Type: "float64", Err: ErrAlreadyBound}) {
		t.Fatal("expected AlreadyBound to match")
	}
	if AlreadyBound(nil) {
		t.Fatal("nil is not an already bound error")
	}
}

package binder

import (
	"log/slog"
	"runtime"
	"sync/atomic"
	"time"

	"go.opentelemetry.io/otel/trace"

	bindererrors "github.com/mirkobrombin/go-binder/v1/errors"
	"github.com/mirkobrombin/go-binder/v1/lock"
)

// handleState is kept apart from the Handle so that the leak check can observe
// it after the Handle itself became unreachable.
type handleState struct {
	released atomic.Bool
	cell     string
	typ      string
}

// Handle grants exclusive read and write access to the value of the Cell that
// issued it. Handles are only obtained from Bind or TryBind, cannot be copied
// and must be released once the caller is done with them.
//
// A Handle may be passed to another goroutine but must not be used by two
// goroutines at the same time.
type Handle[T any] struct {
	noCopy noCopy

	value   *T
	flag    *lock.Flag
	typ     string
	cfg     *config
	state   *handleState
	boundAt time.Time
	span    trace.Span
}

// Get returns a pointer to the bound value. The pointer is valid for reads and
// writes until the handle is released and must not be retained past that
// point. Get panics with ErrReleased if the handle was already released.
func (h *Handle[T]) Get() *T {
	if h.state.released.Load() {
		panic(&bindererrors.BindError{Op: "Handle.Get", Type: h.typ, Err: bindererrors.ErrReleased})
	}
	return h.value
}

// Load returns a copy of the bound value.
func (h *Handle[T]) Load() T {
	return *h.Get()
}

// Released reports whether Release has been called on this handle.
func (h *Handle[T]) Released() bool {
	return h.state.released.Load()
}

// Release gives up the handle and unbinds the cell. Only the first call has an
// effect, so an explicit Release may be followed by a deferred one.
//
// Release panics with a *errors.BindError wrapping ErrDoubleRelease if the
// shared lock was found already unlocked, which means the lock invariant was
// broken elsewhere.
func (h *Handle[T]) Release() {
	if !h.state.released.CompareAndSwap(false, true) {
		return
	}
	// observed before unlocking: once the flag drops another handle may
	// report its own bind.
	if h.cfg.metrics != nil {
		h.cfg.metrics.ObserveRelease(h.state.cell, h.typ, time.Since(h.boundAt).Seconds())
	}
	if h.span != nil {
		h.span.End()
	}
	if !h.flag.Unlock() {
		panic(&bindererrors.BindError{Op: "Handle.Release", Type: h.typ, Err: bindererrors.ErrDoubleRelease})
	}
}

func (h *Handle[T]) watchLeak(logger *slog.Logger) {
	runtime.AddCleanup(h, func(s *handleState) {
		if !s.released.Load() {
			logger.Warn("binder: handle garbage collected without release; cell stays bound",
				"cell", s.cell, "type", s.typ)
		}
	}, h.state)
}

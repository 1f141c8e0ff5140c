package binder

import (
	"context"
	"fmt"
	"reflect"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	bindererrors "github.com/mirkobrombin/go-binder/v1/errors"
	"github.com/mirkobrombin/go-binder/v1/lock"
	"github.com/mirkobrombin/go-binder/v1/metrics"
)

var tracer = otel.Tracer("github.com/mirkobrombin/go-binder/v1/binder")

// noCopy may be embedded into structs which must not be copied after first
// use. See https://golang.org/issues/8005#issuecomment-190753527.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// Cell owns a value of type T and hands out at most one Handle to it at a
// time. A Cell must not be copied; use the pointer returned by New and share
// that pointer instead.
type Cell[T any] struct {
	noCopy noCopy

	value T
	flag  *lock.Flag
	typ   string
	cfg   config
}

// New returns a Cell owning value. The cell starts unbound.
func New[T any](value T, opts ...Option) *Cell[T] {
	c := &Cell[T]{
		value: value,
		flag:  lock.NewFlag(),
		typ:   reflect.TypeFor[T]().String(),
		cfg:   defaultConfig(),
	}
	for _, opt := range opts {
		opt(&c.cfg)
	}
	return c
}

// Bind returns a Handle granting exclusive access to the value. It panics with
// a *errors.BindError wrapping ErrAlreadyBound if the cell already has a live
// handle. Use TryBind when contention is expected.
func (c *Cell[T]) Bind() *Handle[T] {
	h, err := c.bind("Cell.Bind", metrics.ModePanic)
	if err != nil {
		panic(err)
	}
	return h
}

// TryBind is like Bind but returns an error wrapping ErrAlreadyBound instead
// of panicking when the cell is already bound.
func (c *Cell[T]) TryBind() (*Handle[T], error) {
	return c.bind("Cell.TryBind", metrics.ModeResult)
}

func (c *Cell[T]) bind(op, mode string) (*Handle[T], error) {
	if !c.flag.TryLock() {
		err := &bindererrors.BindError{Op: op, Type: c.typ, Err: bindererrors.ErrAlreadyBound}
		c.observeContention(op, mode, err)
		return nil, err
	}
	h := &Handle[T]{
		value: &c.value,
		flag:  c.flag,
		typ:   c.typ,
		cfg:   &c.cfg,
		state: &handleState{cell: c.cfg.label(), typ: c.typ},
	}
	if c.cfg.metrics != nil || c.cfg.trace {
		h.boundAt = time.Now()
	}
	if c.cfg.metrics != nil {
		c.cfg.metrics.ObserveBind(c.cfg.label(), c.typ)
	}
	if c.cfg.trace {
		_, h.span = tracer.Start(context.Background(), "binder.Handle", trace.WithAttributes(c.attributes()...))
	}
	if c.cfg.leakCheck {
		h.watchLeak(c.cfg.log())
	}
	return h, nil
}

func (c *Cell[T]) observeContention(op, mode string, err error) {
	if c.cfg.metrics != nil {
		c.cfg.metrics.ObserveContention(c.cfg.label(), c.typ, mode)
	}
	if c.cfg.trace {
		_, span := tracer.Start(context.Background(), op, trace.WithAttributes(c.attributes()...))
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		span.End()
	}
}

func (c *Cell[T]) attributes() []attribute.KeyValue {
	return []attribute.KeyValue{
		attribute.String("binder.cell", c.cfg.label()),
		attribute.String("binder.type", c.typ),
	}
}

// With binds the cell, calls fn with a pointer to the value and releases the
// handle when fn returns or panics. The pointer must not be retained after fn
// returns. With panics if the cell is already bound.
func (c *Cell[T]) With(fn func(*T)) {
	h := c.Bind()
	defer h.Release()
	fn(h.Get())
}

// TryWith is like With but returns an error wrapping ErrAlreadyBound instead
// of panicking when the cell is already bound. fn is not called in that case.
func (c *Cell[T]) TryWith(fn func(*T)) error {
	h, err := c.TryBind()
	if err != nil {
		return err
	}
	defer h.Release()
	fn(h.Get())
	return nil
}

// Bound reports whether the cell currently has a live handle. The result may
// be stale as soon as it is returned when other goroutines bind the cell.
func (c *Cell[T]) Bound() bool {
	return c.flag.Locked()
}

// Name returns the name configured with WithName.
func (c *Cell[T]) Name() string {
	return c.cfg.name
}

// String describes the cell without reading its value.
func (c *Cell[T]) String() string {
	state := "unbound"
	if c.Bound() {
		state = "bound"
	}
	if c.cfg.name == "" {
		return fmt.Sprintf("binder.Cell[%s](%s)", c.typ, state)
	}
	return fmt.Sprintf("binder.Cell[%s](%s, %s)", c.typ, c.cfg.name, state)
}

package chained

import (
	"sync/atomic"

	"github.com/google/uuid"
)

// node is one link of a chain, pointing back to the link it extends.
// The seed node has neither prior nor step.
type node struct {
	prior *node
	step  func(any) any
	seed  any
}

// Chain is a seed plus an ordered list of pending steps that produce a T.
type Chain[T any] struct {
	used     atomic.Bool
	head     *node
	id       uuid.UUID
	depth    int
	observer Observer
}

// New wraps value as the seed of a new chain.
func New[T any](value T, opts ...Option) *Chain[T] {
	o := newOptions(opts)
	return &Chain[T]{
		head:     &node{seed: value},
		id:       o.ID,
		observer: o.Observer,
	}
}

// NewWith wraps value and appends f as the first step.
// It is the same as Then(New(value, opts...), f).
func NewWith[T, U any](value T, f func(T) U, opts ...Option) *Chain[U] {
	if f == nil {
		panic(ErrNilStep)
	}
	return Then(New(value, opts...), f)
}

// Then consumes c and returns a chain that will apply f to its result.
// Nothing runs until the returned chain is evaluated.
// Panics if c was already consumed or f is nil.
func Then[T, U any](c *Chain[T], f func(T) U) *Chain[U] {
	next, err := TryThen(c, f)
	if err != nil {
		panic(err)
	}
	return next
}

// TryThen is Then returning an error instead of panicking.
// A nil f is rejected before c is consumed.
func TryThen[T, U any](c *Chain[T], f func(T) U) (*Chain[U], error) {
	if f == nil {
		return nil, ErrNilStep
	}
	head, err := c.take(OpThen)
	if err != nil {
		return nil, err
	}

	next := &Chain[U]{
		head:     &node{prior: head, step: erase(f)},
		id:       c.id,
		depth:    c.depth + 1,
		observer: c.observer,
	}
	if next.observer != nil {
		next.observer.Composed(next.info(OpThen))
	}
	return next, nil
}

// Then2 appends f then g.
func Then2[A, B, C any](c *Chain[A], f func(A) B, g func(B) C) *Chain[C] {
	if f == nil || g == nil {
		panic(ErrNilStep)
	}
	return Then(Then(c, f), g)
}

// Then3 appends f, g then h.
func Then3[A, B, C, D any](c *Chain[A], f func(A) B, g func(B) C, h func(C) D) *Chain[D] {
	if f == nil || g == nil || h == nil {
		panic(ErrNilStep)
	}
	return Then(Then(Then(c, f), g), h)
}

// ID returns the lineage id shared by a seed and every chain composed from it.
func (c *Chain[T]) ID() uuid.UUID {
	if c == nil {
		return uuid.Nil
	}
	return c.id
}

// Depth returns the number of pending steps.
func (c *Chain[T]) Depth() int {
	if c == nil {
		return 0
	}
	return c.depth
}

// Consumed reports whether c was already composed or evaluated.
func (c *Chain[T]) Consumed() bool {
	return c == nil || c.used.Load()
}

// take marks c as consumed and hands its nodes to the caller.
func (c *Chain[T]) take(op Op) (*node, error) {
	if c == nil {
		return nil, &ConsumedError{Op: op}
	}
	if !c.used.CompareAndSwap(false, true) {
		err := &ConsumedError{ID: c.id, Depth: c.depth, Op: op}
		if c.observer != nil {
			c.observer.Rejected(c.info(op), err)
		}
		return nil, err
	}

	head := c.head
	c.head = nil
	return head, nil
}

func (c *Chain[T]) info(op Op) Info {
	return Info{ID: c.id, Depth: c.depth, Op: op}
}

// erase adapts a typed step to the node representation. A nil input is
// the zero value of an interface-typed T.
func erase[T, U any](f func(T) U) func(any) any {
	return func(v any) any {
		t, _ := v.(T)
		return f(t)
	}
}

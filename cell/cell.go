// Package cell holds the reactive containers that drive live bindings.
//
// A Cell owns a value and a list of listeners. Every mutation runs the
// listeners synchronously, before the mutating call returns: first the
// listeners registered with OnUpdateOnce (which are dropped), then the ones
// registered with OnUpdate, each group in registration order. There is no
// batching and no scheduling.
//
// Cells are single threaded. Work done on other goroutines must be handed
// back to the goroutine that owns the cells (see render.Loop) before it
// touches them.
package cell

// listeners is the versioned listener list of a cell. dispatch works on a
// snapshot so listeners registered during a pass only run from the next
// pass onward.
type listeners[V any] struct {
	once      []func(V)
	repeating []func(V)
}

func (l *listeners[V]) add(fn func(V), once bool) {
	if fn == nil {
		return
	}
	if once {
		l.once = append(l.once, fn)
		return
	}
	l.repeating = append(l.repeating, fn)
}

func (l *listeners[V]) dispatch(v V) {
	once := l.once
	l.once = nil
	// capped so appends made by a listener reallocate instead of growing
	// the slice being ranged over
	repeating := l.repeating[:len(l.repeating):len(l.repeating)]

	for _, fn := range once {
		fn(v)
	}
	for _, fn := range repeating {
		fn(v)
	}
}

func (l *listeners[V]) len() int {
	return len(l.once) + len(l.repeating)
}

// Cell is a mutable value that notifies its listeners on every mutation.
// The zero value is an empty cell holding the zero V.
type Cell[V any] struct {
	id      uint64
	v       V
	version uint64
	busy    bool
	subs    listeners[V]
}

// New creates a cell holding v with no listeners.
func New[V any](v V) *Cell[V] {
	return &Cell[V]{id: nextID(), v: v}
}

// Get returns the current value.
func (c *Cell[V]) Get() V {
	return c.v
}

// Version counts completed mutations.
func (c *Cell[V]) Version() uint64 {
	return c.version
}

// Listeners is the number of registered listeners.
func (c *Cell[V]) Listeners() int {
	return c.subs.len()
}

// Mutate hands fn exclusive access to the value, then notifies listeners
// with the new value. Calling Mutate on the same cell from one of its
// listeners panics with a *BorrowError.
func (c *Cell[V]) Mutate(fn func(*V)) {
	if c.busy {
		panic(&BorrowError{Cell: c.ensureID(), Op: "mutate", Err: ErrBorrowConflict})
	}
	c.busy = true
	defer func() { c.busy = false }()

	fn(&c.v)
	c.version++
	c.subs.dispatch(c.v)
}

// Set replaces the value.
func (c *Cell[V]) Set(v V) {
	c.Mutate(func(x *V) { *x = v })
}

// Update replaces the value with fn applied to it. The stored value is left
// untouched if fn panics.
func (c *Cell[V]) Update(fn func(V) V) {
	c.Mutate(func(x *V) { *x = fn(*x) })
}

// OnUpdate registers fn to run after every future mutation.
func (c *Cell[V]) OnUpdate(fn func(V)) {
	c.subs.add(fn, false)
}

// OnUpdateOnce registers fn to run after the next mutation only.
func (c *Cell[V]) OnUpdateOnce(fn func(V)) {
	c.subs.add(fn, true)
}

func (c *Cell[V]) ensureID() uint64 {
	if c.id == 0 {
		c.id = nextID()
	}
	return c.id
}

package cell

// shared is the storage behind every SharedCell handle aliasing it.
type shared[V any] struct {
	cell Cell[V]
	refs int
}

// SharedCell is a reference counted handle to a Cell. Clones alias the same
// value and the same listener list. Mutations are guarded by a runtime
// single-writer check instead of a lock: overlapping mutations fail fast.
type SharedCell[V any] struct {
	s       *shared[V]
	dropped bool
}

// NewShared creates a shared cell holding v with a single handle.
func NewShared[V any](v V) *SharedCell[V] {
	s := &shared[V]{refs: 1}
	s.cell.id = nextID()
	s.cell.v = v
	return &SharedCell[V]{s: s}
}

// Clone returns another handle to the same storage. It never copies the value.
func (h *SharedCell[V]) Clone() *SharedCell[V] {
	h.mustLive("clone")
	h.s.refs++
	return &SharedCell[V]{s: h.s}
}

// Release drops this handle. Releasing the last handle drops the listener
// list, so derived cells observing this one stop receiving updates.
func (h *SharedCell[V]) Release() {
	if h.dropped {
		return
	}
	h.dropped = true
	h.s.refs--
	if h.s.refs == 0 {
		h.s.cell.subs = listeners[V]{}
	}
}

// RefCount is the number of live handles aliasing this cell.
func (h *SharedCell[V]) RefCount() int {
	return h.s.refs
}

// ID identifies the underlying storage; clones share it.
func (h *SharedCell[V]) ID() uint64 {
	return h.s.cell.id
}

// Get returns the current value. Reads never conflict with a running
// mutation because listeners only ever observe the settled value.
func (h *SharedCell[V]) Get() V {
	return h.s.cell.v
}

// Version counts completed mutations.
func (h *SharedCell[V]) Version() uint64 {
	return h.s.cell.version
}

// Listeners is the number of registered listeners.
func (h *SharedCell[V]) Listeners() int {
	return h.s.cell.subs.len()
}

// TryMutate is Mutate returning the borrow failure instead of panicking.
func (h *SharedCell[V]) TryMutate(fn func(*V)) error {
	if err := h.check("mutate"); err != nil {
		return err
	}
	if h.s.cell.busy {
		return &BorrowError{Cell: h.s.cell.id, Op: "mutate", Err: ErrBorrowConflict}
	}
	h.s.cell.Mutate(fn)
	return nil
}

// Mutate grants fn exclusive access to the value and notifies listeners.
// It panics with a *BorrowError if another mutation of this cell is in
// flight or the handle was released.
func (h *SharedCell[V]) Mutate(fn func(*V)) {
	if err := h.TryMutate(fn); err != nil {
		panic(err)
	}
}

// Set replaces the value.
func (h *SharedCell[V]) Set(v V) {
	h.Mutate(func(x *V) { *x = v })
}

// Update replaces the value with fn applied to it.
func (h *SharedCell[V]) Update(fn func(V) V) {
	h.Mutate(func(x *V) { *x = fn(*x) })
}

// OnUpdate registers fn to run after every future mutation.
func (h *SharedCell[V]) OnUpdate(fn func(V)) {
	h.mustLive("on_update")
	h.s.cell.OnUpdate(fn)
}

// OnUpdateOnce registers fn to run after the next mutation only.
func (h *SharedCell[V]) OnUpdateOnce(fn func(V)) {
	h.mustLive("on_update_once")
	h.s.cell.OnUpdateOnce(fn)
}

func (h *SharedCell[V]) check(op string) error {
	if h.dropped || h.s.refs == 0 {
		return &BorrowError{Cell: h.s.cell.id, Op: op, Err: ErrReleased}
	}
	return nil
}

func (h *SharedCell[V]) mustLive(op string) {
	if err := h.check(op); err != nil {
		panic(err)
	}
}

package cell

// MappedCell is a read-only cell recomputed from a parent on every parent
// mutation. The recomputation runs inside the parent's own listener pass,
// so by the time the parent's Mutate returns the mapped value is settled.
//
// A MappedCell keeps its own storage: it outlives its parent, but it stops
// updating once the parent's listeners are dropped.
type MappedCell[T any] struct {
	inner *SharedCell[T]
}

// Map seeds a derived cell with fn(parent.Get()) and keeps it in sync.
func Map[V, T any](parent CellLike[V], fn func(V) T) *MappedCell[T] {
	m := &MappedCell[T]{inner: NewShared(fn(parent.Get()))}
	parent.OnUpdate(func(v V) {
		m.inner.Set(fn(v))
	})
	return m
}

func (m *MappedCell[T]) Get() T {
	return m.inner.Get()
}

func (m *MappedCell[T]) OnUpdate(fn func(T)) {
	m.inner.OnUpdate(fn)
}

func (m *MappedCell[T]) OnUpdateOnce(fn func(T)) {
	m.inner.OnUpdateOnce(fn)
}

// Version counts recomputations since construction.
func (m *MappedCell[T]) Version() uint64 {
	return m.inner.Version()
}

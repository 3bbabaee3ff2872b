package cell

//go:generate go run ../cmd/codegen --count 6 --out zip_gen.go

// ZippedCell is a read-only cell combining several parents. An update on any
// parent recomputes the value from the new value of that parent and the
// current value of the others, read at that moment rather than cached.
type ZippedCell[T any] struct {
	inner *SharedCell[T]
}

// Zip combines two cells through fn.
func Zip[L, R, T any](l CellLike[L], r CellLike[R], fn func(L, R) T) *ZippedCell[T] {
	z := &ZippedCell[T]{inner: NewShared(fn(l.Get(), r.Get()))}
	l.OnUpdate(func(lv L) {
		z.inner.Set(fn(lv, r.Get()))
	})
	r.OnUpdate(func(rv R) {
		z.inner.Set(fn(l.Get(), rv))
	})
	return z
}

func (z *ZippedCell[T]) Get() T {
	return z.inner.Get()
}

func (z *ZippedCell[T]) OnUpdate(fn func(T)) {
	z.inner.OnUpdate(fn)
}

func (z *ZippedCell[T]) OnUpdateOnce(fn func(T)) {
	z.inner.OnUpdateOnce(fn)
}

// Version counts recomputations since construction.
func (z *ZippedCell[T]) Version() uint64 {
	return z.inner.Version()
}

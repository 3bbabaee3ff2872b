package cell

import "fmt"

// CellLike is the read side shared by every cell flavour.
type CellLike[V any] interface {
	Get() V
	OnUpdate(fn func(V))
	OnUpdateOnce(fn func(V))
}

// MutableCell is the write side of Cell and SharedCell. Derived cells do not
// implement it.
type MutableCell[V any] interface {
	CellLike[V]
	Mutate(fn func(*V))
	Set(v V)
	Update(fn func(V) V)
}

var (
	_ MutableCell[int] = (*Cell[int])(nil)
	_ MutableCell[int] = (*SharedCell[int])(nil)
	_ CellLike[int]    = (*MappedCell[int])(nil)
	_ CellLike[int]    = (*ZippedCell[int])(nil)
)

// Display maps c through fmt.Sprint.
func Display[V any](c CellLike[V]) *MappedCell[string] {
	return Map(c, func(v V) string {
		return fmt.Sprint(v)
	})
}

// Debug maps c through the %#v verb.
func Debug[V any](c CellLike[V]) *MappedCell[string] {
	return Map(c, func(v V) string {
		return fmt.Sprintf("%#v", v)
	})
}

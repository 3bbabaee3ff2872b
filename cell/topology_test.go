package cell_test

import (
	"testing"

	"github.com/delaneyj/dynui/cell"
	"github.com/stretchr/testify/assert"
)

func identity[T any](a T) T {
	return a
}

func joinStrings(a, b string) string {
	return a + " " + b
}

// Propagation is eager and follows registration order, so a diamond
// recomputes its tail once per path. The last recomputation always sees
// every parent settled.
func TestDiamondRecomputesPerPath(t *testing.T) {
	//     A
	//   /   \
	//  B     C
	//   \   /
	//     D
	a := cell.New("a")
	b := cell.Map(a, identity[string])
	c := cell.Map(a, identity[string])
	d := cell.Zip[string, string](b, c, joinStrings)
	assert.Equal(t, "a a", d.Get())

	var seen []string
	d.OnUpdate(func(v string) { seen = append(seen, v) })

	a.Set("aa")
	assert.Equal(t, []string{"aa a", "aa aa"}, seen)
	assert.Equal(t, "aa aa", d.Get())
}

func TestFlagShapeSettles(t *testing.T) {
	//     A
	//   / |
	//  B  |
	//   \ |
	//     C
	//     |
	//     D
	a := cell.New(2)
	b := cell.Map(a, func(v int) int { return v - 1 })
	c := cell.Zip[int, int](a, b, func(x, y int) int { return x + y })
	calls := 0
	d := cell.Map(c, func(v int) int {
		calls++
		return v * 10
	})
	assert.Equal(t, 30, d.Get())
	assert.Equal(t, 1, calls)

	a.Set(4)
	assert.Equal(t, 70, d.Get())
	assert.Equal(t, 3, calls)
}

func TestFanOutToManyObservers(t *testing.T) {
	src := cell.NewShared(0)
	const width = 100

	leaves := make([]*cell.MappedCell[int], width)
	for i := range leaves {
		offset := i
		leaves[i] = cell.Map[int, int](src, func(v int) int { return v + offset })
	}

	src.Set(1000)
	for i, leaf := range leaves {
		assert.Equal(t, 1000+i, leaf.Get())
	}
}

package cell_test

import (
	"errors"
	"testing"

	"github.com/delaneyj/dynui/cell"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func recoverErr(fn func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			e, ok := r.(error)
			if !ok {
				panic(r)
			}
			err = e
		}
	}()
	fn()
	return nil
}

// from README
func TestBasicUsage(t *testing.T) {
	c := cell.New(1)

	var log []int
	c.OnUpdate(func(v int) {
		log = append(log, v)
	})

	c.Mutate(func(x *int) { *x += 1 })
	assert.Equal(t, []int{2}, log)

	c.Set(10)
	assert.Equal(t, []int{2, 10}, log)

	c.Update(func(x int) int { return x * 2 })
	assert.Equal(t, []int{2, 10, 20}, log)
	assert.Equal(t, 20, c.Get())
	assert.EqualValues(t, 3, c.Version())
}

func TestOnceListenersFireFirst(t *testing.T) {
	c := cell.New("a")

	var order []string
	c.OnUpdate(func(string) { order = append(order, "r1") })
	c.OnUpdateOnce(func(string) { order = append(order, "o1") })
	c.OnUpdate(func(string) { order = append(order, "r2") })
	c.OnUpdateOnce(func(string) { order = append(order, "o2") })
	c.OnUpdate(func(string) { order = append(order, "r3") })
	require.Equal(t, 5, c.Listeners())

	c.Set("b")
	assert.Equal(t, []string{"o1", "o2", "r1", "r2", "r3"}, order)
	assert.Equal(t, 3, c.Listeners())

	order = order[:0]
	c.Set("c")
	assert.Equal(t, []string{"r1", "r2", "r3"}, order)
}

func TestListenersSeeNewValue(t *testing.T) {
	c := cell.New(0)
	seen := -1
	c.OnUpdateOnce(func(v int) {
		seen = v
		assert.Equal(t, v, c.Get())
	})
	c.Set(7)
	assert.Equal(t, 7, seen)
}

func TestRegistrationDuringDispatchWaitsForNextMutation(t *testing.T) {
	c := cell.New(0)

	var late []int
	registered := false
	c.OnUpdate(func(int) {
		if registered {
			return
		}
		registered = true
		c.OnUpdate(func(v int) { late = append(late, v) })
		c.OnUpdateOnce(func(v int) { late = append(late, -v) })
	})

	c.Set(1)
	assert.Empty(t, late)

	c.Set(2)
	assert.Equal(t, []int{-2, 2}, late)

	c.Set(3)
	assert.Equal(t, []int{-2, 2, 3}, late)
}

func TestReentrantMutatePanics(t *testing.T) {
	c := cell.New(1)
	c.OnUpdate(func(v int) {
		if v < 10 {
			c.Set(v * 10)
		}
	})

	err := recoverErr(func() { c.Set(2) })
	require.Error(t, err)
	assert.ErrorIs(t, err, cell.ErrBorrowConflict)

	var be *cell.BorrowError
	require.True(t, errors.As(err, &be))
	assert.Equal(t, "mutate", be.Op)

	// the outer write landed and the cell is usable again
	assert.Equal(t, 2, c.Get())
	assert.NotPanics(t, func() { c.Set(20) })
	assert.Equal(t, 20, c.Get())
}

func TestUpdatePanicLeavesValue(t *testing.T) {
	c := cell.New([]string{"keep"})
	calls := 0
	c.OnUpdate(func([]string) { calls++ })

	assert.Panics(t, func() {
		c.Update(func([]string) []string {
			panic("boom")
		})
	})
	assert.Equal(t, []string{"keep"}, c.Get())
	assert.Equal(t, 0, calls)
	assert.EqualValues(t, 0, c.Version())

	c.Update(func(v []string) []string { return append(v, "more") })
	assert.Equal(t, []string{"keep", "more"}, c.Get())
	assert.Equal(t, 1, calls)
}

func TestZeroValueCell(t *testing.T) {
	var c cell.Cell[int]
	got := 0
	c.OnUpdate(func(v int) { got = v })
	c.Set(4)
	assert.Equal(t, 4, got)
	assert.Equal(t, 4, c.Get())
}

func TestNilListenerIgnored(t *testing.T) {
	c := cell.New(0)
	c.OnUpdate(nil)
	c.OnUpdateOnce(nil)
	assert.Equal(t, 0, c.Listeners())
	assert.NotPanics(t, func() { c.Set(1) })
}

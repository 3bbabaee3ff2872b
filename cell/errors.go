package cell

import (
	"errors"
	"fmt"
	"sync/atomic"
)

var (
	// ErrBorrowConflict is raised when a cell is mutated while another
	// mutation of the same cell is still running, typically from inside one
	// of its own listeners.
	ErrBorrowConflict = errors.New("cell already mutably borrowed")

	// ErrReleased is raised when a shared cell is used after its handle, or
	// the last handle to its storage, has been released.
	ErrReleased = errors.New("cell released")
)

// BorrowError reports which cell and operation tripped the single-writer rule.
type BorrowError struct {
	Cell uint64
	Op   string
	Err  error
}

func (e *BorrowError) Error() string {
	return fmt.Sprintf("cell %d: %s: %v", e.Cell, e.Op, e.Err)
}

func (e *BorrowError) Unwrap() error {
	return e.Err
}

var lastID atomic.Uint64

func nextID() uint64 {
	return lastID.Add(1)
}

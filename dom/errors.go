package dom

import "errors"

var (
	// ErrHierarchy is returned when an insertion would create a cycle or put
	// a node where it cannot live.
	ErrHierarchy = errors.New("hierarchy request")

	// ErrNotFound is returned when the reference node is not a child of the
	// container.
	ErrNotFound = errors.New("node not found")

	// ErrInUse is returned when an attribute already belongs to another
	// element.
	ErrInUse = errors.New("attribute in use")

	// ErrForeignNode is returned when a node created by another toolkit or
	// document is handed to this one.
	ErrForeignNode = errors.New("node belongs to another document")
)

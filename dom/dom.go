// Package dom declares the document capabilities the binding bridge needs
// from a presentation toolkit. Nothing here renders anything; a toolkit
// (see dom/memdom) supplies the implementation.
package dom

// Node is anything that can live in a document tree.
type Node interface {
	// Parent reports the container currently holding the node. A node that
	// was never attached, or was detached since, has none.
	Parent() (Container, bool)
}

// Container holds an ordered list of child nodes.
type Container interface {
	Node
	AppendChild(child Node) error
	// ReplaceChild swaps oldChild for newChild at the same position.
	ReplaceChild(oldChild, newChild Node) error
	RemoveChild(child Node) error
	Children() []Node
}

// Text is a character data node that can be rewritten in place.
type Text interface {
	Node
	SetText(data string)
	Data() string
}

// Attr is a standalone attribute that keeps writing through to the element
// it was assigned to.
type Attr interface {
	Name() string
	Value() string
	SetValue(v string)
}

type Event interface {
	Type() string
	Target() Node
	PreventDefault()
	DefaultPrevented() bool
	StopPropagation()
}

type EventTarget interface {
	AddEventListener(event string, fn func(Event)) error
}

// Element is a tagged container carrying attributes and listeners. Value and
// SetValue expose the live form value of input-like elements.
type Element interface {
	Container
	EventTarget
	Tag() string
	SetAttributeNode(a Attr) error
	Attribute(name string) (string, bool)
	Value() string
	SetValue(v string)
}

// Fragment is a parentless container whose children move into the target
// container when it is appended. Once appended it is empty, so it cannot be
// used to track or replace what it carried.
type Fragment interface {
	Container
	DocumentFragment()
}

// Toolkit creates detached nodes.
type Toolkit interface {
	CreateText(data string) (Text, error)
	CreateElement(tag string) (Element, error)
	CreateAttribute(name string) (Attr, error)
	CreateFragment() (Fragment, error)
}

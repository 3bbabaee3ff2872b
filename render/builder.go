package render

import (
	"fmt"

	"github.com/delaneyj/dynui/dom"
)

type attrItem struct {
	name string
	v    any
}

// A is an attribute item for H. v follows the rules of SetAttr.
func A(name string, v any) any {
	return attrItem{name: name, v: v}
}

type listenerItem struct {
	event string
	fn    func(dom.Event)
}

// On is an event listener item for H.
func On(event string, fn func(dom.Event)) any {
	return listenerItem{event: event, fn: fn}
}

// Elem is an element description built by H. Every render creates a new
// element.
type Elem struct {
	tag   string
	items []any
}

var _ Component = (*Elem)(nil)

// H describes a <tag> element. Items are A attributes, On listeners, or
// children rendered with Render; nil items are skipped.
func H(tag string, items ...any) *Elem {
	return &Elem{tag: tag, items: items}
}

func (e *Elem) Render(rt *Runtime) (dom.Node, error) {
	el, err := e.Build(rt)
	if err != nil {
		return nil, err
	}
	return el, nil
}

// Build renders the element and stops at the first failing item. The
// partially built element is discarded.
func (e *Elem) Build(rt *Runtime) (dom.Element, error) {
	el, err := rt.tk.CreateElement(e.tag)
	if err != nil {
		return nil, fmt.Errorf("<%s>: %w", e.tag, err)
	}
	for i, item := range e.items {
		if err := e.add(rt, el, item); err != nil {
			return nil, fmt.Errorf("<%s> item %d: %w", e.tag, i, err)
		}
	}
	return el, nil
}

func (e *Elem) add(rt *Runtime, el dom.Element, item any) error {
	switch x := item.(type) {
	case nil:
		return nil
	case attrItem:
		return SetAttr(rt, el, x.name, x.v)
	case listenerItem:
		return el.AddEventListener(x.event, x.fn)
	}
	child, err := Render(rt, item)
	if err != nil {
		return err
	}
	return el.AppendChild(child)
}

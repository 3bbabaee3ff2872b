package memdom

import "github.com/delaneyj/dynui/dom"

var _ dom.Event = (*Event)(nil)

type Event struct {
	typ       string
	target    dom.Node
	current   dom.Node
	prevented bool
	stopped   bool
}

func (e *Event) Type() string {
	return e.typ
}

func (e *Event) Target() dom.Node {
	return e.target
}

// CurrentTarget is the element whose listeners are running.
func (e *Event) CurrentTarget() dom.Node {
	return e.current
}

func (e *Event) PreventDefault() {
	e.prevented = true
}

func (e *Event) DefaultPrevented() bool {
	return e.prevented
}

func (e *Event) StopPropagation() {
	e.stopped = true
}

// Dispatch delivers an event of type typ to target and bubbles it up through
// its ancestors until a listener stops propagation. Listeners added while the
// event is in flight on an element do not see it.
func Dispatch(target dom.Node, typ string) *Event {
	ev := &Event{typ: typ, target: target}
	node := target
	for node != nil && !ev.stopped {
		if el, ok := node.(*Element); ok {
			ev.current = el
			for _, fn := range el.listeners[typ] {
				fn(ev)
			}
		}
		p, ok := node.Parent()
		if !ok {
			break
		}
		node = p
	}
	return ev
}

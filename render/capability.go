package render

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/delaneyj/dynui/dom"
)

// ErrUnrenderable is returned for values with no render capability.
var ErrUnrenderable = errors.New("value is not renderable")

// Capability is how a value turns into a document node. Lower values are
// more specific and win when a value has several.
type Capability uint8

const (
	Unrenderable Capability = iota
	// ByNode: the value already is a node.
	ByNode
	// ByRef: the value owns a live node and hands out that same node.
	ByRef
	// ByMut: the value may update itself while rendering, typically to
	// cache the node it built.
	ByMut
	// ByValue: every render builds a fresh node.
	ByValue
	// ByText: the value renders as a text node and can be updated in place.
	ByText
)

func (c Capability) String() string {
	switch c {
	case ByNode:
		return "node"
	case ByRef:
		return "ref"
	case ByMut:
		return "mut"
	case ByValue:
		return "value"
	case ByText:
		return "text"
	default:
		return "unrenderable"
	}
}

type Component interface {
	Render(rt *Runtime) (dom.Node, error)
}

type RefComponent interface {
	RenderRef(rt *Runtime) (dom.Node, error)
}

type MutComponent interface {
	RenderMut(rt *Runtime) (dom.Node, error)
}

// Classify reports the most specific capability v has.
func Classify(v any) Capability {
	switch v.(type) {
	case nil:
		return Unrenderable
	case dom.Node:
		return ByNode
	case RefComponent:
		return ByRef
	case MutComponent:
		return ByMut
	case Component:
		return ByValue
	}
	if _, ok := textOf(v); ok {
		return ByText
	}
	return Unrenderable
}

// Render turns v into a node using its most specific capability.
func Render(rt *Runtime, v any) (dom.Node, error) {
	switch x := v.(type) {
	case nil:
	case dom.Node:
		return x, nil
	case RefComponent:
		return x.RenderRef(rt)
	case MutComponent:
		return x.RenderMut(rt)
	case Component:
		return x.Render(rt)
	default:
		if s, ok := textOf(v); ok {
			t, err := rt.tk.CreateText(s)
			if err != nil {
				return nil, err
			}
			return t, nil
		}
	}
	return nil, fmt.Errorf("render %T: %w", v, ErrUnrenderable)
}

func textOf(v any) (string, bool) {
	switch x := v.(type) {
	case string:
		return x, true
	case []byte:
		return string(x), true
	case fmt.Stringer:
		return x.String(), true
	case error:
		return x.Error(), true
	case bool, int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64, uintptr,
		float32, float64, complex64, complex128:
		return fmt.Sprint(x), true
	}
	// Named types over a basic kind, such as `type count int`.
	if v == nil {
		return "", false
	}
	switch reflect.ValueOf(v).Kind() {
	case reflect.String:
		return reflect.ValueOf(v).String(), true
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128:
		return fmt.Sprint(v), true
	}
	return "", false
}

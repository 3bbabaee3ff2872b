package render

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
	"github.com/delaneyj/dynui/cell"
	"github.com/delaneyj/dynui/dom"
)

// Attribute writes itself into an attribute node. Implementations that stay
// live keep writing to a after RenderAttr returns.
type Attribute interface {
	RenderAttr(rt *Runtime, a dom.Attr) error
}

// SetAttr assigns an attribute named name to el. v may be an Attribute, a
// cell.CellLike[string] (bound in place), or any textual value.
func SetAttr(rt *Runtime, el dom.Element, name string, v any) error {
	var at Attribute
	switch x := v.(type) {
	case Attribute:
		at = x
	case cell.CellLike[string]:
		at = DynAttr(x, nil)
	default:
		s, ok := textOf(v)
		if !ok {
			return fmt.Errorf("attribute %q from %T: %w", name, v, ErrUnrenderable)
		}
		at = staticAttr(s)
	}

	a, err := rt.tk.CreateAttribute(name)
	if err != nil {
		return err
	}
	if err := el.SetAttributeNode(a); err != nil {
		return err
	}
	return at.RenderAttr(rt, a)
}

// BindAttr assigns an attribute to el whose value follows c, rendered
// through format (fmt.Sprint when nil).
func BindAttr[V any](rt *Runtime, el dom.Element, name string, c cell.CellLike[V], format func(V) string) (dom.Attr, error) {
	a, err := rt.tk.CreateAttribute(name)
	if err != nil {
		return nil, err
	}
	if err := el.SetAttributeNode(a); err != nil {
		return nil, err
	}
	if err := DynAttr(c, format).RenderAttr(rt, a); err != nil {
		return nil, err
	}
	return a, nil
}

type staticAttr string

func (s staticAttr) RenderAttr(_ *Runtime, a dom.Attr) error {
	a.SetValue(string(s))
	return nil
}

type dynAttr[V any] struct {
	c      cell.CellLike[V]
	format func(V) string
}

// DynAttr is an Attribute whose value follows c. Each RenderAttr call binds
// one more attribute node.
func DynAttr[V any](c cell.CellLike[V], format func(V) string) Attribute {
	if format == nil {
		format = func(v V) string { return fmt.Sprint(v) }
	}
	return &dynAttr[V]{c: c, format: format}
}

func (d *dynAttr[V]) RenderAttr(rt *Runtime, a dom.Attr) error {
	s := d.format(d.c.Get())
	a.SetValue(s)
	sum := xxhash.Sum64String(s)
	d.c.OnUpdate(func(v V) {
		s := d.format(v)
		next := xxhash.Sum64String(s)
		if next == sum && s == a.Value() {
			rt.metrics.update(pathUnchanged)
			return
		}
		a.SetValue(s)
		sum = next
		rt.metrics.update(pathInPlace)
	})
	return nil
}

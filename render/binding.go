package render

import (
	"errors"
	"fmt"

	"github.com/cespare/xxhash/v2"
	"github.com/delaneyj/dynui/cell"
	"github.com/delaneyj/dynui/dom"
)

// ErrFragmentBinding is returned when a bound value renders to a fragment.
// Fragments empty themselves on insertion and cannot be replaced later.
var ErrFragmentBinding = errors.New("cannot bind a fragment")

type State uint8

const (
	Unbound State = iota
	Bound
)

func (s State) String() string {
	if s == Bound {
		return "bound"
	}
	return "unbound"
}

// Binding keeps one artifact in sync with a cell. Once bound it always holds
// exactly one current artifact; failed or skipped updates leave the previous
// one in place.
type Binding struct {
	rt           *Runtime
	id           uint64
	state        State
	node         dom.Node
	text         dom.Text
	sum          uint64
	replacements int
	err          error
}

var _ RefComponent = (*Binding)(nil)

// Bind renders c's current value and keeps the artifact in sync. Textual
// values update the current text node in place when it is one; any other
// value is rendered afresh and replaces the current artifact in its parent.
func Bind[V any](rt *Runtime, c cell.CellLike[V]) (*Binding, error) {
	b := &Binding{rt: rt}
	next, err := b.render(c.Get())
	if err != nil {
		return nil, err
	}
	b.attach(next)
	c.OnUpdate(func(v V) {
		b.update(v)
	})
	return b, nil
}

// BindText always renders through format and always updates in place. A nil
// format uses fmt.Sprint.
func BindText[V any](rt *Runtime, c cell.CellLike[V], format func(V) string) (*Binding, error) {
	if format == nil {
		format = func(v V) string { return fmt.Sprint(v) }
	}
	t, err := rt.tk.CreateText(format(c.Get()))
	if err != nil {
		return nil, err
	}
	b := &Binding{rt: rt}
	b.attach(t)
	c.OnUpdate(func(v V) {
		b.setText(format(v))
	})
	return b, nil
}

// BindNode always replaces: every update renders fn(v) and swaps it in. A nil
// fn renders the value itself.
func BindNode[V any](rt *Runtime, c cell.CellLike[V], fn func(V) (dom.Node, error)) (*Binding, error) {
	if fn == nil {
		fn = func(v V) (dom.Node, error) { return Render(rt, v) }
	}
	b := &Binding{rt: rt}
	first, err := fn(c.Get())
	if err == nil {
		err = checkBindable(first)
	}
	if err != nil {
		return nil, err
	}
	b.attach(first)
	c.OnUpdate(func(v V) {
		next, err := fn(v)
		if err == nil {
			err = checkBindable(next)
		}
		if err != nil {
			b.fail(err)
			return
		}
		b.replace(next)
	})
	return b, nil
}

func checkBindable(n dom.Node) error {
	if n == nil {
		return fmt.Errorf("bind: %w", ErrUnrenderable)
	}
	if _, ok := n.(dom.Fragment); ok {
		return ErrFragmentBinding
	}
	return nil
}

func (b *Binding) render(v any) (dom.Node, error) {
	n, err := Render(b.rt, v)
	if err != nil {
		return nil, err
	}
	if err := checkBindable(n); err != nil {
		return nil, err
	}
	return n, nil
}

func (b *Binding) attach(n dom.Node) {
	b.id = b.rt.nextBinding()
	b.state = Bound
	b.track(n)
	b.rt.swapLive(nil, n)
}

func (b *Binding) track(n dom.Node) {
	b.node = n
	b.text, _ = n.(dom.Text)
	if b.text != nil {
		b.sum = xxhash.Sum64String(b.text.Data())
	}
}

func (b *Binding) update(v any) {
	if b.text != nil && Classify(v) == ByText {
		s, _ := textOf(v)
		b.setText(s)
		return
	}
	next, err := b.render(v)
	if err != nil {
		b.fail(err)
		return
	}
	b.replace(next)
}

func (b *Binding) setText(s string) {
	sum := xxhash.Sum64String(s)
	if sum == b.sum && s == b.text.Data() {
		b.rt.metrics.update(pathUnchanged)
		return
	}
	b.text.SetText(s)
	b.sum = sum
	b.rt.metrics.update(pathInPlace)
}

func (b *Binding) replace(next dom.Node) {
	if next == b.node {
		b.rt.metrics.update(pathUnchanged)
		return
	}
	parent, ok := b.node.Parent()
	if !ok {
		b.rt.metrics.update(pathDetached)
		b.rt.Report(Diagnostic{Kind: DiagDetachedParent, Binding: b.id})
		return
	}
	if err := parent.ReplaceChild(b.node, next); err != nil {
		b.fail(err)
		return
	}
	b.rt.swapLive(b.node, next)
	b.track(next)
	b.replacements++
	b.err = nil
	b.rt.metrics.update(pathReplace)
	b.rt.log.Debug("binding replaced", "binding", b.id, "replacements", b.replacements)
}

func (b *Binding) fail(err error) {
	b.err = fmt.Errorf("binding %d: %w", b.id, err)
	b.rt.metrics.update(pathFailed)
	b.rt.Report(Diagnostic{Kind: DiagUpdateFailed, Binding: b.id, Err: err})
}

func (b *Binding) ID() uint64 {
	return b.id
}

func (b *Binding) State() State {
	return b.state
}

// Node is the current artifact.
func (b *Binding) Node() dom.Node {
	return b.node
}

// Replacements counts how many times the artifact was swapped.
func (b *Binding) Replacements() int {
	return b.replacements
}

// Err is the last update failure, cleared by the next successful replacement.
func (b *Binding) Err() error {
	return b.err
}

func (b *Binding) RenderRef(*Runtime) (dom.Node, error) {
	return b.node, nil
}

type dynamic[V any] struct {
	c cell.CellLike[V]
	b *Binding
}

// Dyn makes a cell renderable. The binding is created on first render and
// every later render returns its current artifact.
func Dyn[V any](c cell.CellLike[V]) MutComponent {
	return &dynamic[V]{c: c}
}

func (d *dynamic[V]) RenderMut(rt *Runtime) (dom.Node, error) {
	if d.b == nil {
		b, err := Bind(rt, d.c)
		if err != nil {
			return nil, err
		}
		d.b = b
	}
	return d.b.node, nil
}

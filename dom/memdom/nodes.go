package memdom

import (
	"fmt"

	"github.com/delaneyj/dynui/dom"
	"golang.org/x/net/html"
)

var (
	_ dom.Text     = (*Text)(nil)
	_ dom.Element  = (*Element)(nil)
	_ dom.Fragment = (*Fragment)(nil)
	_ dom.Attr     = (*Attr)(nil)
)

type backed interface {
	node() *html.Node
	document() *Document
}

type base struct {
	doc *Document
	n   *html.Node
}

func (b *base) node() *html.Node {
	return b.n
}

func (b *base) document() *Document {
	return b.doc
}

func (b *base) Parent() (dom.Container, bool) {
	if b.n.Parent == nil {
		return nil, false
	}
	c, ok := b.doc.nodes[b.n.Parent].(dom.Container)
	return c, ok
}

type Text struct {
	base
}

func (t *Text) SetText(data string) {
	t.n.Data = data
}

func (t *Text) Data() string {
	return t.n.Data
}

type container struct {
	base
}

func (c *container) self() dom.Node {
	return c.doc.nodes[c.n]
}

// adopt validates child for insertion under c and returns its backing node.
func (c *container) adopt(child dom.Node) (*html.Node, error) {
	b, ok := child.(backed)
	if !ok || b.document() != c.doc {
		return nil, dom.ErrForeignNode
	}
	n := b.node()
	for p := c.n; p != nil; p = p.Parent {
		if p == n {
			return nil, dom.ErrHierarchy
		}
	}
	return n, nil
}

func (c *container) AppendChild(child dom.Node) error {
	if err := c.doc.check("append_child", c.self()); err != nil {
		return err
	}
	n, err := c.adopt(child)
	if err != nil {
		return fmt.Errorf("append child: %w", err)
	}
	for _, k := range take(n) {
		c.n.AppendChild(k)
	}
	return nil
}

func (c *container) ReplaceChild(oldChild, newChild dom.Node) error {
	if err := c.doc.check("replace_child", c.self()); err != nil {
		return err
	}
	ob, ok := oldChild.(backed)
	if !ok || ob.document() != c.doc {
		return fmt.Errorf("replace child: %w", dom.ErrForeignNode)
	}
	o := ob.node()
	if o.Parent != c.n {
		return fmt.Errorf("replace child: %w", dom.ErrNotFound)
	}
	n, err := c.adopt(newChild)
	if err != nil {
		return fmt.Errorf("replace child: %w", err)
	}
	if n == o {
		return nil
	}
	for _, k := range take(n) {
		c.n.InsertBefore(k, o)
	}
	c.n.RemoveChild(o)
	return nil
}

func (c *container) RemoveChild(child dom.Node) error {
	if err := c.doc.check("remove_child", c.self()); err != nil {
		return err
	}
	b, ok := child.(backed)
	if !ok || b.document() != c.doc {
		return fmt.Errorf("remove child: %w", dom.ErrForeignNode)
	}
	if b.node().Parent != c.n {
		return fmt.Errorf("remove child: %w", dom.ErrNotFound)
	}
	c.n.RemoveChild(b.node())
	return nil
}

func (c *container) Children() []dom.Node {
	var out []dom.Node
	for k := c.n.FirstChild; k != nil; k = k.NextSibling {
		out = append(out, c.doc.nodes[k])
	}
	return out
}

// take detaches n so it can be inserted elsewhere. A fragment gives up its
// children instead of itself.
func take(n *html.Node) []*html.Node {
	if n.Type != html.DocumentNode {
		if n.Parent != nil {
			n.Parent.RemoveChild(n)
		}
		return []*html.Node{n}
	}
	var out []*html.Node
	for n.FirstChild != nil {
		k := n.FirstChild
		n.RemoveChild(k)
		out = append(out, k)
	}
	return out
}

type Fragment struct {
	container
}

func (*Fragment) DocumentFragment() {}

type Element struct {
	container
	attrs     map[string]*Attr
	listeners map[string][]func(dom.Event)
	value     string
}

func (e *Element) Tag() string {
	return e.n.Data
}

// SetAttributeNode assigns a to e. An attribute node of the same name that
// was assigned before is released and stops writing through.
func (e *Element) SetAttributeNode(a dom.Attr) error {
	if err := e.doc.check("set_attribute", e); err != nil {
		return err
	}
	at, ok := a.(*Attr)
	if !ok || at.doc != e.doc {
		return fmt.Errorf("set attribute: %w", dom.ErrForeignNode)
	}
	if at.owner != nil && at.owner != e {
		return fmt.Errorf("set attribute %q: %w", at.name, dom.ErrInUse)
	}
	if prev, ok := e.attrs[at.name]; ok && prev != at {
		prev.owner = nil
	}
	at.owner = e
	e.attrs[at.name] = at
	e.write(at.name, at.value)
	return nil
}

func (e *Element) write(name, v string) {
	for i := range e.n.Attr {
		if e.n.Attr[i].Key == name {
			e.n.Attr[i].Val = v
			return
		}
	}
	e.n.Attr = append(e.n.Attr, html.Attribute{Key: name, Val: v})
}

func (e *Element) Attribute(name string) (string, bool) {
	for _, a := range e.n.Attr {
		if a.Key == name {
			return a.Val, true
		}
	}
	return "", false
}

// Value is the live form value, separate from the value attribute.
func (e *Element) Value() string {
	return e.value
}

func (e *Element) SetValue(v string) {
	e.value = v
}

func (e *Element) AddEventListener(event string, fn func(dom.Event)) error {
	if err := e.doc.check("add_event_listener", e); err != nil {
		return err
	}
	if fn == nil {
		return nil
	}
	e.listeners[event] = append(e.listeners[event], fn)
	return nil
}

type Attr struct {
	doc   *Document
	name  string
	value string
	owner *Element
}

func (a *Attr) Name() string {
	return a.name
}

func (a *Attr) Value() string {
	return a.value
}

func (a *Attr) SetValue(v string) {
	a.value = v
	if a.owner != nil {
		a.owner.write(a.name, v)
	}
}

// Owner is the element a is currently assigned to.
func (a *Attr) Owner() (*Element, bool) {
	return a.owner, a.owner != nil
}

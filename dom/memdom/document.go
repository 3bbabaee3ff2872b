// Package memdom is an in-memory dom.Toolkit backed by golang.org/x/net/html
// nodes. It follows browser semantics closely enough to test bindings
// against: appending an attached node moves it, fragments hand their
// children over on insertion, attribute nodes write through to their owner.
package memdom

import (
	"fmt"
	"io"
	"strings"

	"github.com/delaneyj/dynui/dom"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

var _ dom.Toolkit = (*Document)(nil)

// Document owns every node it creates and keeps them reachable for its
// lifetime.
type Document struct {
	root  *html.Node
	body  *Element
	nodes map[*html.Node]dom.Node
	fail  func(op string, n dom.Node) error
}

func NewDocument() *Document {
	d := &Document{
		root:  &html.Node{Type: html.DocumentNode},
		nodes: map[*html.Node]dom.Node{},
	}
	top := d.newElement("html")
	d.root.AppendChild(top.n)
	d.body = d.newElement("body")
	top.n.AppendChild(d.body.n)
	return d
}

// Body is the attachment point for rendered trees.
func (d *Document) Body() *Element {
	return d.body
}

// FailOn installs a hook consulted before every toolkit operation. A non-nil
// error aborts the operation and is returned wrapped. n is the node the
// operation applies to, nil for the Create* family.
func (d *Document) FailOn(fn func(op string, n dom.Node) error) {
	d.fail = fn
}

func (d *Document) check(op string, n dom.Node) error {
	if d.fail == nil {
		return nil
	}
	if err := d.fail(op, n); err != nil {
		return fmt.Errorf("memdom %s: %w", op, err)
	}
	return nil
}

func (d *Document) CreateText(data string) (dom.Text, error) {
	if err := d.check("create_text", nil); err != nil {
		return nil, err
	}
	t := &Text{base{doc: d, n: &html.Node{Type: html.TextNode, Data: data}}}
	d.nodes[t.n] = t
	return t, nil
}

func (d *Document) CreateElement(tag string) (dom.Element, error) {
	if err := d.check("create_element", nil); err != nil {
		return nil, err
	}
	if tag == "" {
		return nil, fmt.Errorf("create element: empty tag: %w", dom.ErrHierarchy)
	}
	return d.newElement(tag), nil
}

func (d *Document) CreateAttribute(name string) (dom.Attr, error) {
	if err := d.check("create_attribute", nil); err != nil {
		return nil, err
	}
	return &Attr{doc: d, name: name}, nil
}

func (d *Document) CreateFragment() (dom.Fragment, error) {
	if err := d.check("create_fragment", nil); err != nil {
		return nil, err
	}
	f := &Fragment{container{base{doc: d, n: &html.Node{Type: html.DocumentNode}}}}
	d.nodes[f.n] = f
	return f, nil
}

func (d *Document) newElement(tag string) *Element {
	n := &html.Node{
		Type:     html.ElementNode,
		Data:     tag,
		DataAtom: atom.Lookup([]byte(tag)),
	}
	e := &Element{
		container: container{base{doc: d, n: n}},
		attrs:     map[string]*Attr{},
		listeners: map[string][]func(dom.Event){},
	}
	d.nodes[n] = e
	return e
}

// Render serialises n and its subtree as HTML. A fragment renders its
// children back to back.
func Render(w io.Writer, n dom.Node) error {
	b, ok := n.(backed)
	if !ok {
		return fmt.Errorf("render %T: %w", n, dom.ErrForeignNode)
	}
	hn := b.node()
	if hn.Type != html.DocumentNode {
		return html.Render(w, hn)
	}
	for c := hn.FirstChild; c != nil; c = c.NextSibling {
		if err := html.Render(w, c); err != nil {
			return err
		}
	}
	return nil
}

// HTML is Render into a string. Output written before an error is kept.
func HTML(n dom.Node) string {
	var sb strings.Builder
	_ = Render(&sb, n)
	return sb.String()
}

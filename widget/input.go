package widget

import (
	"fmt"
	"strconv"

	"github.com/delaneyj/dynui/cell"
	"github.com/delaneyj/dynui/dom"
	"github.com/delaneyj/dynui/render"
)

type input[V any] struct {
	ty    string
	c     cell.MutableCell[V]
	parse func(string) (V, error)
}

// Input renders an <input type=ty> that writes into c on every keyup. Text
// that parse rejects is reported as a DiagParseFailed diagnostic and leaves
// c untouched.
func Input[V any](ty string, c cell.MutableCell[V], parse func(string) (V, error)) render.Component {
	return &input[V]{ty: ty, c: c, parse: parse}
}

// TextInput is a text Input over a string cell.
func TextInput(c cell.MutableCell[string]) render.Component {
	return Input("text", c, func(s string) (string, error) {
		return s, nil
	})
}

// NumberInput is a number Input over an int cell.
func NumberInput(c cell.MutableCell[int]) render.Component {
	return Input("number", c, strconv.Atoi)
}

func (in *input[V]) Render(rt *render.Runtime) (dom.Node, error) {
	el, err := render.H("input", render.A("type", in.ty)).Build(rt)
	if err != nil {
		return nil, err
	}
	el.SetValue(fmt.Sprint(in.c.Get()))

	err = el.AddEventListener("keyup", func(dom.Event) {
		raw := el.Value()
		v, err := in.parse(raw)
		if err != nil {
			rt.Report(render.Diagnostic{Kind: render.DiagParseFailed, Err: err, Detail: raw})
			return
		}
		in.c.Set(v)
	})
	if err != nil {
		return nil, err
	}
	return el, nil
}

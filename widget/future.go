package widget

import (
	"context"

	"github.com/delaneyj/dynui/cell"
	"github.com/delaneyj/dynui/dom"
	"github.com/delaneyj/dynui/render"
)

type future[T any] struct {
	ctx         context.Context
	placeholder any
	fn          func(context.Context) (T, error)
}

// Future renders placeholder, runs fn on its own goroutine and swaps the
// rendered result in once, on the runtime's loop. A failing fn or result
// render is reported as DiagUpdateFailed and the placeholder stays.
func Future[T any](ctx context.Context, placeholder any, fn func(context.Context) (T, error)) render.Component {
	return &future[T]{ctx: ctx, placeholder: placeholder, fn: fn}
}

func (f *future[T]) Render(rt *render.Runtime) (dom.Node, error) {
	first, err := render.Render(rt, f.placeholder)
	if err != nil {
		return nil, err
	}
	slot := cell.New(first)
	b, err := render.Bind[dom.Node](rt, slot)
	if err != nil {
		return nil, err
	}

	go func() {
		v, err := f.fn(f.ctx)
		rt.Loop().Post(func() {
			if err == nil {
				var n dom.Node
				if n, err = render.Render(rt, v); err == nil {
					slot.Set(n)
					return
				}
			}
			rt.Report(render.Diagnostic{Kind: render.DiagUpdateFailed, Binding: b.ID(), Err: err})
		})
	}()
	return b.Node(), nil
}

package widget

import (
	"github.com/delaneyj/dynui/dom"
	"github.com/delaneyj/dynui/render"
)

// Button renders a <button> showing label. The click's default action is
// prevented before onClick runs unless keepDefault is set.
func Button(label any, keepDefault bool, onClick func(dom.Event)) *render.Elem {
	return render.H("button",
		render.On("click", func(e dom.Event) {
			if !keepDefault {
				e.PreventDefault()
			}
			if onClick != nil {
				onClick(e)
			}
		}),
		label,
	)
}

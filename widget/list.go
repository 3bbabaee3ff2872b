// Package widget holds small components built on render.
package widget

import "github.com/delaneyj/dynui/render"

// List renders each item inside an <li>, under an <ol> when ordered and an
// <ul> otherwise.
func List(ordered bool, items ...any) *render.Elem {
	tag := "ul"
	if ordered {
		tag = "ol"
	}
	children := make([]any, len(items))
	for i, item := range items {
		children[i] = render.H("li", item)
	}
	return render.H(tag, children...)
}

// ListOf is List over a typed slice.
func ListOf[T any](ordered bool, items []T) *render.Elem {
	anys := make([]any, len(items))
	for i, item := range items {
		anys[i] = item
	}
	return List(ordered, anys...)
}

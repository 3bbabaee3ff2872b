package render

import "github.com/zoobzio/capitan"

// Field keys for binding diagnostics.
var (
	// KeyBinding identifies the binding within its runtime.
	KeyBinding = capitan.NewIntKey("binding")

	// KeyKind is the diagnostic kind, e.g. binding.update.failed.
	KeyKind = capitan.NewStringKey("kind")

	// KeyError is the error message when an operation fails.
	KeyError = capitan.NewStringKey("error")

	// KeyDetail carries free-form context such as the offending input.
	KeyDetail = capitan.NewStringKey("detail")
)

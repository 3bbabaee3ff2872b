package render

import "github.com/zoobzio/capitan"

// Binding diagnostics. None of them abort the mutation that caused them.
var (
	// BindingReplaceDetached is emitted when a replacement is skipped because
	// the current artifact has no parent.
	BindingReplaceDetached = capitan.NewSignal(
		"dynui.binding.replace.detached",
		"Binding replacement skipped, artifact detached",
	)

	// BindingUpdateFailed is emitted when the toolkit rejects a binding update.
	BindingUpdateFailed = capitan.NewSignal(
		"dynui.binding.update.failed",
		"Toolkit rejected binding update",
	)

	// InputParseFailed is emitted when user input cannot be parsed into the
	// bound cell's value type.
	InputParseFailed = capitan.NewSignal(
		"dynui.input.parse.failed",
		"Input value could not be parsed",
	)
)

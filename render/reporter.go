package render

import (
	"context"
	"log/slog"

	"github.com/zoobzio/capitan"
)

type DiagnosticKind uint8

const (
	// DiagDetachedParent: the artifact to replace had no parent. The old
	// artifact stays current and stale.
	DiagDetachedParent DiagnosticKind = iota
	// DiagUpdateFailed: the toolkit rejected an update. The binding keeps its
	// previous artifact.
	DiagUpdateFailed
	// DiagParseFailed: an input widget could not parse what the user typed.
	DiagParseFailed
)

func (k DiagnosticKind) String() string {
	switch k {
	case DiagDetachedParent:
		return "binding.replace.detached"
	case DiagUpdateFailed:
		return "binding.update.failed"
	case DiagParseFailed:
		return "input.parse.failed"
	default:
		return "unknown"
	}
}

func (k DiagnosticKind) signal() capitan.Signal {
	switch k {
	case DiagDetachedParent:
		return BindingReplaceDetached
	case DiagParseFailed:
		return InputParseFailed
	default:
		return BindingUpdateFailed
	}
}

// Diagnostic is a soft failure. Binding is zero when the source is not a
// binding.
type Diagnostic struct {
	Kind    DiagnosticKind
	Binding uint64
	Err     error
	Detail  string
}

// Reporter receives diagnostics synchronously, on the goroutine that caused
// them.
type Reporter interface {
	Report(d Diagnostic)
}

type ReporterFunc func(d Diagnostic)

func (f ReporterFunc) Report(d Diagnostic) {
	f(d)
}

// signalReporter logs diagnostics and emits them as capitan signals.
type signalReporter struct {
	log *slog.Logger
}

func (r signalReporter) Report(d Diagnostic) {
	fields := []capitan.Field{
		KeyKind.Field(d.Kind.String()),
		KeyBinding.Field(int(d.Binding)),
	}
	attrs := []any{"kind", d.Kind.String(), "binding", d.Binding}
	if d.Err != nil {
		fields = append(fields, KeyError.Field(d.Err.Error()))
		attrs = append(attrs, "error", d.Err)
	}
	if d.Detail != "" {
		fields = append(fields, KeyDetail.Field(d.Detail))
		attrs = append(attrs, "detail", d.Detail)
	}
	capitan.Emit(context.Background(), d.Kind.signal(), fields...)
	r.log.Warn("dynui diagnostic", attrs...)
}

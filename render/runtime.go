// Package render binds cells to live document nodes and attributes.
//
// Every entry point takes a *Runtime: there is no ambient document. A binding
// renders the cell's current value once, then keeps the resulting artifact in
// sync from a listener on the cell. Textual values are rewritten in place;
// anything else is rendered afresh and swapped in for the previous artifact.
package render

import (
	"log/slog"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/delaneyj/dynui/dom"
	"github.com/zoobzio/clockz"
)

type Runtime struct {
	tk       dom.Toolkit
	body     dom.Container
	log      *slog.Logger
	reporter Reporter
	metrics  *Metrics
	clock    clockz.Clock
	loop     *Loop
	live     mapset.Set[dom.Node]
	bindings uint64
}

type Option func(*Runtime)

func WithLogger(l *slog.Logger) Option {
	return func(rt *Runtime) {
		rt.log = l
	}
}

// WithReporter replaces the default reporter, which logs each diagnostic
// and emits it as a capitan signal.
func WithReporter(r Reporter) Option {
	return func(rt *Runtime) {
		rt.reporter = r
	}
}

func WithMetrics(m *Metrics) Option {
	return func(rt *Runtime) {
		rt.metrics = m
	}
}

// WithClock sets the clock driving Loop timers. Use clockz.NewFakeClock in
// tests.
func WithClock(c clockz.Clock) Option {
	return func(rt *Runtime) {
		rt.clock = c
	}
}

// NewRuntime creates the context every render call runs in. body is where
// Mount attaches trees.
func NewRuntime(tk dom.Toolkit, body dom.Container, opts ...Option) *Runtime {
	rt := &Runtime{
		tk:    tk,
		body:  body,
		log:   slog.Default(),
		clock: clockz.RealClock,
		live:  mapset.NewSet[dom.Node](),
	}
	for _, opt := range opts {
		opt(rt)
	}
	if rt.reporter == nil {
		rt.reporter = signalReporter{log: rt.log}
	}
	rt.loop = newLoop(rt.clock, rt.log)
	return rt
}

func (rt *Runtime) Toolkit() dom.Toolkit {
	return rt.tk
}

func (rt *Runtime) Body() dom.Container {
	return rt.body
}

func (rt *Runtime) Logger() *slog.Logger {
	return rt.log
}

// Loop is the event loop owning every cell bound through this runtime.
func (rt *Runtime) Loop() *Loop {
	return rt.loop
}

// Report forwards d to the configured reporter.
func (rt *Runtime) Report(d Diagnostic) {
	rt.reporter.Report(d)
}

// Mount renders v and appends it to the body.
func (rt *Runtime) Mount(v any) (dom.Node, error) {
	n, err := Render(rt, v)
	if err != nil {
		return nil, err
	}
	if err := rt.body.AppendChild(n); err != nil {
		return nil, err
	}
	return n, nil
}

// Live reports whether n is the current artifact of some binding.
func (rt *Runtime) Live(n dom.Node) bool {
	return rt.live.Contains(n)
}

// LiveCount is the number of artifacts currently held by bindings.
func (rt *Runtime) LiveCount() int {
	return rt.live.Cardinality()
}

func (rt *Runtime) nextBinding() uint64 {
	rt.bindings++
	rt.metrics.bound()
	return rt.bindings
}

func (rt *Runtime) swapLive(old, next dom.Node) {
	if old != nil {
		rt.live.Remove(old)
	}
	rt.live.Add(next)
}

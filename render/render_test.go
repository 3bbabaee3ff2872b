package render_test

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/delaneyj/dynui/cell"
	"github.com/delaneyj/dynui/dom"
	"github.com/delaneyj/dynui/dom/memdom"
	"github.com/delaneyj/dynui/render"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	diags []render.Diagnostic
}

func (r *recorder) Report(d render.Diagnostic) {
	r.diags = append(r.diags, d)
}

func setup(t *testing.T, opts ...render.Option) (*memdom.Document, *render.Runtime, *recorder) {
	t.Helper()
	doc := memdom.NewDocument()
	rec := &recorder{}
	opts = append([]render.Option{render.WithReporter(rec)}, opts...)
	return doc, render.NewRuntime(doc, doc.Body(), opts...), rec
}

func body(doc *memdom.Document) string {
	return memdom.HTML(doc.Body())
}

func TestTextBindingUpdatesInPlace(t *testing.T) {
	doc, rt, rec := setup(t)
	c := cell.New(1)
	b, err := render.Bind(rt, c)
	require.NoError(t, err)
	_, err = rt.Mount(b)
	require.NoError(t, err)

	before := b.Node()
	c.Set(2)
	c.Update(func(v int) int { return v * 21 })

	assert.Same(t, before, b.Node())
	assert.Equal(t, "<body>42</body>", body(doc))
	assert.Equal(t, 0, b.Replacements())
	assert.Equal(t, render.Bound, b.State())
	assert.Empty(t, rec.diags)
}

func TestStructuralBindingReplaces(t *testing.T) {
	doc, rt, rec := setup(t)
	c := cell.New(render.H("b", "x"))
	b, err := render.Bind(rt, c)
	require.NoError(t, err)
	_, err = rt.Mount(b)
	require.NoError(t, err)

	old := b.Node()
	c.Set(render.H("i", "y"))

	assert.NotSame(t, old, b.Node())
	_, attached := old.Parent()
	assert.False(t, attached)
	parent, ok := b.Node().Parent()
	require.True(t, ok)
	assert.Same(t, doc.Body(), parent)

	assert.Equal(t, "<body><i>y</i></body>", body(doc))
	assert.Equal(t, 1, b.Replacements())
	assert.False(t, rt.Live(old))
	assert.True(t, rt.Live(b.Node()))
	assert.Equal(t, 1, rt.LiveCount())
	assert.Empty(t, rec.diags)
}

func TestBindingSwitchesBetweenTextAndNodes(t *testing.T) {
	doc, rt, _ := setup(t)
	c := cell.New[any]("a")
	b, err := render.Bind(rt, c)
	require.NoError(t, err)
	_, err = rt.Mount(b)
	require.NoError(t, err)

	c.Set(render.H("em", "b"))
	assert.Equal(t, "<body><em>b</em></body>", body(doc))
	assert.Equal(t, 1, b.Replacements())

	c.Set("c")
	assert.Equal(t, "<body>c</body>", body(doc))
	assert.Equal(t, 2, b.Replacements())

	text := b.Node()
	c.Set(99)
	assert.Same(t, text, b.Node())
	assert.Equal(t, "<body>99</body>", body(doc))
	assert.Equal(t, 2, b.Replacements())
}

func TestDetachedReplacementIsReported(t *testing.T) {
	_, rt, rec := setup(t)
	c := cell.New(render.H("p", "first"))
	b, err := render.Bind(rt, c)
	require.NoError(t, err)

	old := b.Node()
	c.Set(render.H("p", "second"))

	assert.Same(t, old, b.Node())
	assert.Equal(t, 0, b.Replacements())
	require.Len(t, rec.diags, 1)
	assert.Equal(t, render.DiagDetachedParent, rec.diags[0].Kind)
	assert.Equal(t, b.ID(), rec.diags[0].Binding)
	assert.Equal(t, "binding.replace.detached", rec.diags[0].Kind.String())
	assert.Equal(t, "<p>first</p>", memdom.HTML(old))
}

func TestToolkitFailureKeepsArtifact(t *testing.T) {
	doc, rt, rec := setup(t)
	c := cell.New(render.H("p", "one"))
	b, err := render.Bind(rt, c)
	require.NoError(t, err)
	_, err = rt.Mount(b)
	require.NoError(t, err)

	boom := errors.New("boom")
	doc.FailOn(func(op string, _ dom.Node) error {
		if op == "replace_child" {
			return boom
		}
		return nil
	})
	c.Set(render.H("p", "two"))

	assert.Equal(t, "<body><p>one</p></body>", body(doc))
	assert.ErrorIs(t, b.Err(), boom)
	require.Len(t, rec.diags, 1)
	assert.Equal(t, render.DiagUpdateFailed, rec.diags[0].Kind)

	doc.FailOn(nil)
	c.Set(render.H("p", "three"))
	assert.Equal(t, "<body><p>three</p></body>", body(doc))
	assert.NoError(t, b.Err())
}

func TestFragmentsCannotBeBound(t *testing.T) {
	doc, rt, _ := setup(t)
	frag, err := doc.CreateFragment()
	require.NoError(t, err)

	_, err = render.Bind(rt, cell.New[dom.Node](frag))
	assert.ErrorIs(t, err, render.ErrFragmentBinding)

	_, err = render.BindNode(rt, cell.New(0), func(int) (dom.Node, error) {
		f, err := doc.CreateFragment()
		return f, err
	})
	assert.ErrorIs(t, err, render.ErrFragmentBinding)
}

func TestBindNodeAlwaysReplaces(t *testing.T) {
	doc, rt, _ := setup(t)
	c := cell.New("x")
	b, err := render.BindNode(rt, c, func(s string) (dom.Node, error) {
		txt, err := doc.CreateText(s)
		return txt, err
	})
	require.NoError(t, err)
	_, err = rt.Mount(b)
	require.NoError(t, err)

	c.Set("y")
	c.Set("z")
	assert.Equal(t, 2, b.Replacements())
	assert.Equal(t, "<body>z</body>", body(doc))
}

func TestBindTextFormat(t *testing.T) {
	doc, rt, _ := setup(t)
	c := cell.New(3)
	b, err := render.BindText(rt, c, func(v int) string {
		return strings.Repeat("*", v)
	})
	require.NoError(t, err)
	_, err = rt.Mount(b)
	require.NoError(t, err)

	c.Set(5)
	assert.Equal(t, "<body>*****</body>", body(doc))
	assert.Equal(t, 0, b.Replacements())
}

func TestIdenticalTextWritesAreSkipped(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, rt, _ := setup(t, render.WithMetrics(render.NewMetrics(reg)))

	c := cell.New("same")
	_, err := render.BindText(rt, c, nil)
	require.NoError(t, err)
	c.Set("same")
	c.Set("different")

	expected := `
# HELP dynui_binding_updates_total Binding updates by the path they took
# TYPE dynui_binding_updates_total counter
dynui_binding_updates_total{path="in_place"} 1
dynui_binding_updates_total{path="unchanged"} 1
# HELP dynui_bindings_created_total Bindings created by the runtime
# TYPE dynui_bindings_created_total counter
dynui_bindings_created_total 1
`
	assert.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected),
		"dynui_binding_updates_total", "dynui_bindings_created_total"))
}

func TestTextRewrittenWhenNodeDrifts(t *testing.T) {
	doc, rt, _ := setup(t)
	c := cell.New("a")
	b, err := render.BindText(rt, c, nil)
	require.NoError(t, err)
	_, err = rt.Mount(b)
	require.NoError(t, err)

	txt, ok := b.Node().(dom.Text)
	require.True(t, ok)
	txt.SetText("edited")
	c.Set("a")
	assert.Equal(t, "<body>a</body>", body(doc))
}

func TestAttrRewrittenWhenValueDrifts(t *testing.T) {
	doc, rt, _ := setup(t)
	el, err := doc.CreateElement("meter")
	require.NoError(t, err)

	c := cell.New(1)
	a, err := render.BindAttr(rt, el, "value", c, nil)
	require.NoError(t, err)
	a.SetValue("9")
	c.Set(1)
	v, _ := el.Attribute("value")
	assert.Equal(t, "1", v)
}

type (
	count int
	label string
	flag  bool
)

func TestNamedBasicTypesBindAsText(t *testing.T) {
	doc, rt, _ := setup(t)
	c := cell.New(count(1))
	b, err := render.Bind(rt, c)
	require.NoError(t, err)
	_, err = rt.Mount(b)
	require.NoError(t, err)

	before := b.Node()
	c.Set(count(2))
	assert.Same(t, before, b.Node())
	assert.Equal(t, "<body>2</body>", body(doc))
	assert.Equal(t, 0, b.Replacements())
}

type plain struct{}

func TestClassify(t *testing.T) {
	doc, rt, _ := setup(t)
	txt, err := doc.CreateText("t")
	require.NoError(t, err)
	b, err := render.Bind(rt, cell.New("b"))
	require.NoError(t, err)

	cases := []struct {
		name string
		v    any
		want render.Capability
	}{
		{"node", txt, render.ByNode},
		{"binding", b, render.ByRef},
		{"dyn", render.Dyn[int](cell.New(1)), render.ByMut},
		{"element", render.H("div"), render.ByValue},
		{"string", "s", render.ByText},
		{"int", 42, render.ByText},
		{"stringer", time.Second, render.ByText},
		{"named int", count(3), render.ByText},
		{"named string", label("x"), render.ByText},
		{"named bool", flag(true), render.ByText},
		{"struct", plain{}, render.Unrenderable},
		{"nil", nil, render.Unrenderable},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, render.Classify(tc.v))
		})
	}

	_, err = render.Render(rt, plain{})
	assert.ErrorIs(t, err, render.ErrUnrenderable)
}

func TestDynBindsOnce(t *testing.T) {
	_, rt, _ := setup(t)
	c := cell.New(1)
	d := render.Dyn[int](c)

	first, err := render.Render(rt, d)
	require.NoError(t, err)
	second, err := render.Render(rt, d)
	require.NoError(t, err)
	assert.Same(t, first, second)
	assert.Equal(t, 1, c.Listeners())
}

func TestHBuildsLiveTree(t *testing.T) {
	doc, rt, _ := setup(t)
	count := cell.New(0)
	title := cell.New("t")
	clicks := 0

	_, err := rt.Mount(render.H("div",
		render.A("class", "box"),
		render.A("title", title),
		render.On("click", func(dom.Event) { clicks++ }),
		render.H("span", render.Dyn[int](count)),
		nil,
		" tail",
	))
	require.NoError(t, err)
	assert.Equal(t, `<body><div class="box" title="t"><span>0</span> tail</div></body>`, body(doc))

	count.Set(3)
	title.Set("u")
	assert.Equal(t, `<body><div class="box" title="u"><span>3</span> tail</div></body>`, body(doc))

	div := doc.Body().Children()[0]
	memdom.Dispatch(div, "click")
	assert.Equal(t, 1, clicks)
}

func TestHFirstErrorWins(t *testing.T) {
	doc, rt, _ := setup(t)
	_, err := render.H("div", "ok", plain{}, "never").Render(rt)
	assert.ErrorIs(t, err, render.ErrUnrenderable)

	boom := errors.New("boom")
	doc.FailOn(func(op string, _ dom.Node) error {
		if op == "create_element" {
			return boom
		}
		return nil
	})
	_, err = rt.Mount(render.H("div"))
	assert.ErrorIs(t, err, boom)
	assert.Empty(t, doc.Body().Children())
}

func TestBindAttr(t *testing.T) {
	doc, rt, _ := setup(t)
	el, err := doc.CreateElement("meter")
	require.NoError(t, err)

	c := cell.New(1)
	_, err = render.BindAttr(rt, el, "value", c, nil)
	require.NoError(t, err)

	v, _ := el.Attribute("value")
	assert.Equal(t, "1", v)
	c.Set(7)
	v, _ = el.Attribute("value")
	assert.Equal(t, "7", v)

	assert.ErrorIs(t, render.SetAttr(rt, el, "bad", plain{}), render.ErrUnrenderable)
}

func TestDefaultReporterLogs(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	doc := memdom.NewDocument()
	rt := render.NewRuntime(doc, doc.Body(), render.WithLogger(logger))

	c := cell.New(render.H("p"))
	_, err := render.Bind(rt, c)
	require.NoError(t, err)
	c.Set(render.H("q"))

	assert.Contains(t, buf.String(), "binding.replace.detached")
}

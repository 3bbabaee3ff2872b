package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/delaneyj/dynui/cell"
	"github.com/delaneyj/dynui/dom"
	"github.com/delaneyj/dynui/dom/memdom"
	"github.com/delaneyj/dynui/render"
	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/urfave/cli/v3"
)

var bindModes = []string{"in_place", "unchanged", "replace"}

func domUpdates(ctx context.Context, cmd *cli.Command) error {
	cfg, stop, err := setup(cmd)
	if err != nil {
		return err
	}
	defer stop()

	log.Print("Starting binding benchmark, please wait...")
	defer log.Print("Finished binding benchmark")

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"path", "bindings", "updates", "replaced", "time", "updateRate"})

	for _, n := range cfg.Bindings {
		for _, mode := range bindModes {
			res, err := runBindings(mode, n, cfg.Iterations)
			if err != nil {
				return err
			}
			updates := int64(n * cfg.Iterations)
			table.Append([]string{
				mode,
				humanize.Comma(int64(n)),
				humanize.Comma(updates),
				humanize.Comma(int64(res.replaced)),
				res.elapsed.String(),
				humanize.Comma(updateRate(updates, res.elapsed)),
			})
		}
	}
	table.Render()
	return nil
}

// updateRate is updates per second, or zero when elapsed is too small to
// measure.
func updateRate(updates int64, elapsed time.Duration) int64 {
	if elapsed <= 0 {
		return 0
	}
	return int64(float64(updates) / elapsed.Seconds())
}

type bindResult struct {
	elapsed  time.Duration
	replaced int
}

func runBindings(mode string, n, iters int) (bindResult, error) {
	doc := memdom.NewDocument()
	rt := render.NewRuntime(doc, doc.Body(),
		render.WithLogger(slog.New(slog.DiscardHandler)),
		render.WithMetrics(render.NewMetrics(prometheus.NewRegistry())),
	)

	src := cell.New(0)
	bindings := make([]*render.Binding, n)
	for i := range bindings {
		var (
			b   *render.Binding
			err error
		)
		switch mode {
		case "in_place":
			b, err = render.BindText(rt, src, nil)
		case "unchanged":
			b, err = render.BindText(rt, src, func(int) string { return "same" })
		case "replace":
			b, err = render.BindNode(rt, src, func(v int) (dom.Node, error) {
				return render.H("span", v).Render(rt)
			})
		default:
			err = fmt.Errorf("unknown mode %q", mode)
		}
		if err != nil {
			return bindResult{}, err
		}
		if _, err := rt.Mount(b); err != nil {
			return bindResult{}, err
		}
		bindings[i] = b
	}

	start := time.Now()
	for i := 0; i < iters; i++ {
		src.Set(i + 1)
	}
	res := bindResult{elapsed: time.Since(start)}

	for _, b := range bindings {
		if b.Err() != nil {
			return res, b.Err()
		}
		res.replaced += b.Replacements()
	}
	return res, nil
}

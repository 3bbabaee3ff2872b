package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/delaneyj/dynui/cell"
	"github.com/jamiealquiza/tachymeter"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/urfave/cli/v3"
)

func addOne(v int) int {
	return v + 1
}

func propagate(ctx context.Context, cmd *cli.Command) error {
	cfg, stop, err := setup(cmd)
	if err != nil {
		return err
	}
	defer stop()

	log.Printf("warming up")
	if _, err := propagateTable(cfg, "warmup"); err != nil {
		return err
	}

	tbl, err := propagateTable(cfg, "Cell propagation")
	if err != nil {
		return err
	}
	tbl.SetOutputMirror(os.Stdout)
	tbl.Render()
	return nil
}

func propagateTable(cfg config, title string) (table.Writer, error) {
	tbl := table.NewWriter()
	tbl.SetTitle(title)
	tbl.AppendHeader(table.Row{"benchmark", "avg", "min", "p75", "p99", "max"})

	for _, w := range cfg.Widths {
		for _, h := range cfg.Heights {
			calc, err := propagateChains(cfg.Iterations, w, h)
			if err != nil {
				return nil, err
			}
			tbl.AppendRow(table.Row{
				fmt.Sprintf("propagate: %d * %d", w, h),
				calc.Time.Avg,
				calc.Time.Min,
				calc.Time.P75,
				calc.Time.P99,
				calc.Time.Max,
			})
		}
	}

	for _, w := range cfg.Widths {
		calc, err := propagateZips(cfg.Iterations, w)
		if err != nil {
			return nil, err
		}
		tbl.AppendRow(table.Row{
			fmt.Sprintf("zip fan-in: %d", w),
			calc.Time.Avg,
			calc.Time.Min,
			calc.Time.P75,
			calc.Time.P99,
			calc.Time.Max,
		})
	}
	return tbl, nil
}

// propagateChains builds w independent chains of h mapped cells hanging off
// one source, each ending in an observer, then times mutations of the source.
func propagateChains(iters, w, h int) (*tachymeter.Metrics, error) {
	tach := tachymeter.New(&tachymeter.Config{Size: iters})

	src := cell.New(1)
	ends := make([]cell.CellLike[int], w)
	observed := 0
	for i := range ends {
		var last cell.CellLike[int] = src
		for j := 0; j < h; j++ {
			last = cell.Map(last, addOne)
		}
		last.OnUpdate(func(int) { observed++ })
		ends[i] = last
	}

	for i := 0; i < iters; i++ {
		start := time.Now()
		src.Update(addOne)
		tach.AddTime(time.Since(start))
	}

	if observed != w*iters {
		return nil, fmt.Errorf("%d * %d: observed %d updates, want %d", w, h, observed, w*iters)
	}
	for _, end := range ends {
		if got, want := end.Get(), src.Get()+h; got != want {
			return nil, fmt.Errorf("%d * %d: chain settled at %d, want %d", w, h, got, want)
		}
	}
	return tach.Calc(), nil
}

// propagateZips folds w sources into one value through a left-leaning line of
// zipped cells and times mutations of the first source.
func propagateZips(iters, w int) (*tachymeter.Metrics, error) {
	tach := tachymeter.New(&tachymeter.Config{Size: iters})

	sources := make([]*cell.Cell[int], w)
	for i := range sources {
		sources[i] = cell.New(1)
	}
	var acc cell.CellLike[int] = sources[0]
	for _, s := range sources[1:] {
		acc = cell.Zip[int, int](acc, s, func(a, b int) int { return a + b })
	}

	for i := 0; i < iters; i++ {
		start := time.Now()
		sources[0].Update(addOne)
		tach.AddTime(time.Since(start))
	}

	if got, want := acc.Get(), w+iters; got != want {
		return nil, fmt.Errorf("zip %d: sum %d, want %d", w, got, want)
	}
	return tach.Calc(), nil
}

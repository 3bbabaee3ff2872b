package main

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

type config struct {
	Iterations int    `toml:"iterations"`
	Widths     []int  `toml:"widths"`
	Heights    []int  `toml:"heights"`
	Bindings   []int  `toml:"bindings"`
	Profile    string `toml:"profile"`
}

func defaultConfig() config {
	return config{
		Iterations: 100,
		Widths:     []int{1, 10, 100, 1_000},
		Heights:    []int{1, 10, 100, 1_000},
		Bindings:   []int{1, 10, 100, 1_000},
	}
}

// loadConfig overlays the file at path, if any, on the defaults. Unknown keys
// are an error.
func loadConfig(path string) (config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return cfg, fmt.Errorf("reading %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return cfg, fmt.Errorf("%s: unknown keys %s", path, strings.Join(keys, ", "))
	}
	return cfg, nil
}

func (c config) validate() error {
	if c.Iterations <= 0 {
		return fmt.Errorf("iterations must be positive, got %d", c.Iterations)
	}
	for _, list := range [][]int{c.Widths, c.Heights, c.Bindings} {
		for _, n := range list {
			if n <= 0 {
				return fmt.Errorf("grid sizes must be positive, got %d", n)
			}
		}
	}
	return nil
}

package main

import (
	"context"
	"log"
	"os"
	"runtime/pprof"

	"github.com/urfave/cli/v3"
)

const (
	configKey  = "config"
	itersKey   = "iters"
	profileKey = "profile"
)

func main() {
	cmd := &cli.Command{
		Name:  "benchmark",
		Usage: "Measure cell propagation and binding update costs",
		Commands: []*cli.Command{
			{
				Name:   "propagate",
				Usage:  "Time base mutations through grids of mapped cells",
				Flags:  sharedFlags(),
				Action: propagate,
			},
			{
				Name:   "dom",
				Usage:  "Time binding updates against the in-memory document",
				Flags:  sharedFlags(),
				Action: domUpdates,
			},
		},
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func sharedFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:  configKey,
			Usage: "TOML file overriding the default grid",
		},
		&cli.UintFlag{
			Name:  itersKey,
			Usage: "Mutations per scenario, 0 keeps the configured value",
		},
		&cli.StringFlag{
			Name:  profileKey,
			Usage: "Write a CPU profile to this file",
		},
	}
}

func setup(cmd *cli.Command) (config, func(), error) {
	cfg, err := loadConfig(cmd.String(configKey))
	if err != nil {
		return cfg, nil, err
	}
	if n := int(cmd.Uint(itersKey)); n > 0 {
		cfg.Iterations = n
	}
	if p := cmd.String(profileKey); p != "" {
		cfg.Profile = p
	}
	if err := cfg.validate(); err != nil {
		return cfg, nil, err
	}

	if cfg.Profile == "" {
		return cfg, func() {}, nil
	}
	f, err := os.Create(cfg.Profile)
	if err != nil {
		return cfg, nil, err
	}
	if err := pprof.StartCPUProfile(f); err != nil {
		f.Close()
		return cfg, nil, err
	}
	return cfg, func() {
		pprof.StopCPUProfile()
		f.Close()
		log.Printf("CPU profile written to %s", cfg.Profile)
	}, nil
}

package main

import (
	"context"
	"fmt"
	"go/format"
	"log"
	"os"
	"time"

	"github.com/delaneyj/dynui/cmd/codegen/templates"
	"github.com/urfave/cli/v3"
)

const (
	zipCountKey = "count"
	outKey      = "out"
)

func main() {
	cmd := &cli.Command{
		Name:  "generate",
		Usage: "Generate the n-ary zip constructors for package cell",
		Flags: []cli.Flag{
			&cli.UintFlag{
				Name:  zipCountKey,
				Usage: "Highest zip arity to generate",
				Value: 6,
			},
			&cli.StringFlag{
				Name:  outKey,
				Usage: "Output file",
				Value: "cell/zip_gen.go",
			},
		},
		Action: generate,
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func generate(ctx context.Context, cmd *cli.Command) error {
	start := time.Now()
	log.Printf("Codegen for cell zips started")
	defer func() {
		log.Printf("Codegen for cell zips finished in %v", time.Since(start))
	}()

	count := int(cmd.Uint(zipCountKey))
	if count < 3 {
		return fmt.Errorf("count must be at least 3, got %d", count)
	}
	log.Printf("Arity: 3..%d", count)

	contents, err := format.Source([]byte(templates.ZipGen(count)))
	if err != nil {
		return fmt.Errorf("formatting generated code: %w", err)
	}

	out := cmd.String(outKey)
	if err := os.WriteFile(out, contents, 0644); err != nil {
		return err
	}
	return nil
}

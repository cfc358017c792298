package main

import (
	"fmt"
	"os"

	"github.com/standardbeagle/fsq/internal/bench"

	"github.com/urfave/cli/v2"
)

func generateFlags() []cli.Flag {
	return []cli.Flag{
		&cli.IntFlag{
			Name:    "num-files",
			Aliases: []string{"n"},
			Usage:   "Number of files to generate",
			Value:   100000,
		},
		&cli.StringFlag{
			Name:    "dir",
			Aliases: []string{"d"},
			Usage:   "Directory to generate the corpus in",
			Value:   "test_data",
		},
		&cli.IntFlag{
			Name:  "workers",
			Usage: "Concurrent file writers (0 = number of CPUs)",
		},
		&cli.BoolFlag{
			Name:  "manifest",
			Usage: "Write a content-hash manifest alongside the corpus",
			Value: true,
		},
		&cli.BoolFlag{
			Name:  "verify",
			Usage: "Verify file count and print distribution after generating",
			Value: true,
		},
	}
}

func generateCommand(c *cli.Context) error {
	gen := &bench.Generator{
		Root:          c.String("dir"),
		Workers:       c.Int("workers"),
		Out:           os.Stdout,
		WriteManifest: c.Bool("manifest"),
	}

	total := c.Int("num-files")
	summary, err := gen.Run(c.Context, total)
	if err != nil {
		return err
	}

	fmt.Printf("Created %d files in %s\n", summary.Total, summary.Root)

	if c.Bool("verify") {
		actual, perExt, err := gen.Verify(total)
		if err != nil {
			fmt.Printf("File count verification: %d files (target was %d)\n", actual, total)
			return err
		}
		fmt.Printf("File count verification: %d files (matches target)\n", actual)
		fmt.Println()
		bench.Report(os.Stdout, perExt)
	}

	return nil
}

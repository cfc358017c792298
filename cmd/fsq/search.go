package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/standardbeagle/fsq/internal/discover"

	"github.com/urfave/cli/v2"
)

func searchFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "path",
			Aliases: []string{"p"},
			Usage:   "Directory to search in",
			Value:   ".",
		},
		&cli.StringFlag{
			Name:    "type",
			Aliases: []string{"t"},
			Usage:   "Entry type: f, d, l, x, e, s, p",
		},
		&cli.StringFlag{
			Name:    "extension",
			Aliases: []string{"e"},
			Usage:   "File extension without the dot (e.g., go)",
		},
		&cli.BoolFlag{
			Name:  "hidden",
			Usage: "Include hidden files",
		},
		&cli.BoolFlag{
			Name:  "no-ignore",
			Usage: "Do not respect .gitignore",
		},
		&cli.IntFlag{
			Name:  "max-depth",
			Usage: "Maximum directory depth (0 = unlimited)",
		},
		&cli.BoolFlag{
			Name:    "case-sensitive",
			Aliases: []string{"s"},
			Usage:   "Case-sensitive pattern matching",
		},
		&cli.BoolFlag{
			Name:    "absolute-path",
			Aliases: []string{"a"},
			Usage:   "Print absolute paths",
		},
		&cli.Float64Flag{
			Name:  "changed-within",
			Usage: "Only entries modified within the last N hours",
		},
		&cli.IntFlag{
			Name:    "max-results",
			Aliases: []string{"m"},
			Usage:   "Maximum results to print (0 = config default)",
		},
	}
}

func searchCommand(c *cli.Context) error {
	if c.NArg() < 1 {
		return errors.New("usage: fsq search <pattern>")
	}

	cfg, err := loadConfigWithOverrides(c)
	if err != nil {
		return err
	}

	entryType := c.String("type")
	if entryType != "" && !discover.IsValidType(entryType) {
		return fmt.Errorf("invalid type %q, expected one of f, d, l, x, e, s, p", entryType)
	}

	runner := &discover.Runner{
		FdPath:      cfg.Binaries.Fd,
		RgPath:      cfg.Binaries.Rg,
		Timeout:     time.Duration(cfg.Timeouts.SearchSec) * time.Second,
		ExecTimeout: time.Duration(cfg.Timeouts.ExecSec) * time.Second,
	}

	opts := discover.Options{
		Pattern:            c.Args().First(),
		Path:               c.String("path"),
		Type:               entryType,
		Extension:          c.String("extension"),
		Hidden:             c.Bool("hidden"),
		NoIgnore:           c.Bool("no-ignore"),
		MaxDepth:           c.Int("max-depth"),
		CaseSensitive:      c.Bool("case-sensitive"),
		AbsolutePath:       c.Bool("absolute-path"),
		ChangedWithinHours: c.Float64("changed-within"),
		ExtraExcludes:      cfg.Exclude,
	}

	raw, err := runner.Fd(context.Background(), opts)
	if err != nil {
		return err
	}

	maxResults := c.Int("max-results")
	if maxResults <= 0 {
		maxResults = cfg.Limits.MaxResults
	}

	fmt.Println(discover.FormatPaths(raw, maxResults))
	return nil
}

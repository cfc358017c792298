package bench

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"sync"

	"github.com/bmatcuk/doublestar/v4"
	"golang.org/x/sync/errgroup"

	fsqerrors "github.com/standardbeagle/fsq/internal/errors"
)

// Generator writes the benchmark corpus under Root. Writes run on a
// bounded worker pool; progress goes to Out.
type Generator struct {
	Root    string
	Workers int       // 0 means GOMAXPROCS
	Out     io.Writer // nil means io.Discard

	WriteManifest bool
}

// Summary reports what a generation run produced.
type Summary struct {
	Total       int
	PerCategory map[string]int
	Root        string
}

// Run regenerates the corpus from scratch: any existing tree under Root is
// removed first. total must be at least MinFiles.
func (g *Generator) Run(ctx context.Context, total int) (*Summary, error) {
	out := g.out()

	categories := Categories()
	counts, err := ComputeSplit(categories, total)
	if err != nil {
		return nil, err
	}

	if err := g.prepareTree(); err != nil {
		return nil, err
	}

	fmt.Fprintf(out, "Creating %d files under %s\n", total, g.Root)

	workers := g.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	var (
		mu      sync.Mutex
		entries []ManifestEntry
	)

	group, gctx := errgroup.WithContext(ctx)
	group.SetLimit(workers)

	for ci, cat := range categories {
		n := counts[ci]
		if n == 0 {
			continue
		}
		fmt.Fprintf(out, "  %s: %d files\n", cat.Name, n)

		for i := 1; i <= n; i++ {
			cat, i := cat, i
			group.Go(func() error {
				if err := gctx.Err(); err != nil {
					return err
				}
				name := cat.FileName(i)
				content := cat.Content(i)
				rel := filepath.Join(cat.Dir, name)
				if err := g.writeFile(rel, content, cat.Mode); err != nil {
					return err
				}
				if g.WriteManifest {
					mu.Lock()
					entries = append(entries, NewManifestEntry(rel, content))
					mu.Unlock()
				}
				return nil
			})
		}
	}

	if err := group.Wait(); err != nil {
		return nil, fmt.Errorf("generating corpus: %w", err)
	}

	if g.WriteManifest {
		if err := SaveManifest(filepath.Join(g.Root, ManifestName), entries); err != nil {
			return nil, err
		}
	}

	perCategory := make(map[string]int, len(categories))
	for ci, cat := range categories {
		perCategory[cat.Name] = counts[ci]
	}

	return &Summary{Total: total, PerCategory: perCategory, Root: g.Root}, nil
}

// distPatterns are the glob families reported by the verification pass
var distPatterns = []string{
	"**/*.py", "**/*.js", "**/*.json", "**/*.yaml",
	"**/*.md", "**/*.sh", "**/*.txt", "**/*.env",
}

// Verify walks Root and compares the regular-file count against want,
// skipping the manifest itself. It returns the actual count along with the
// per-pattern distribution of distPatterns.
func (g *Generator) Verify(want int) (int, map[string]int, error) {
	actual := 0
	perExt := make(map[string]int)

	err := filepath.WalkDir(g.Root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || d.Name() == ManifestName {
			return nil
		}
		actual++
		rel, err := filepath.Rel(g.Root, path)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)
		for _, pattern := range distPatterns {
			if ok, _ := doublestar.Match(pattern, rel); ok {
				perExt[pattern]++
				break
			}
		}
		return nil
	})
	if err != nil {
		return 0, nil, fmt.Errorf("verifying corpus: %w", err)
	}

	if actual != want {
		return actual, perExt, fsqerrors.NewToolError(
			fsqerrors.ErrorTypeExec, "generate",
			fmt.Errorf("corpus has %d files, expected %d", actual, want))
	}
	return actual, perExt, nil
}

// Report prints the distribution in a stable order.
func Report(out io.Writer, perExt map[string]int) {
	patterns := make([]string, 0, len(perExt))
	for pattern := range perExt {
		patterns = append(patterns, pattern)
	}
	sort.Strings(patterns)
	fmt.Fprintln(out, "File distribution:")
	for _, pattern := range patterns {
		fmt.Fprintf(out, "  %-10s %d\n", pattern, perExt[pattern])
	}
}

func (g *Generator) prepareTree() error {
	if g.Root == "" {
		return fmt.Errorf("corpus root not set")
	}
	if _, err := os.Stat(g.Root); err == nil {
		fmt.Fprintf(g.out(), "Removing existing corpus at %s\n", g.Root)
		if err := os.RemoveAll(g.Root); err != nil {
			return fmt.Errorf("removing existing corpus: %w", err)
		}
	}
	for _, dir := range SubDirs {
		if err := os.MkdirAll(filepath.Join(g.Root, dir), 0755); err != nil {
			return fmt.Errorf("creating corpus directory %s: %w", dir, err)
		}
	}
	return nil
}

func (g *Generator) writeFile(rel, content string, mode os.FileMode) error {
	if mode == 0 {
		mode = 0644
	}
	path := filepath.Join(g.Root, rel)
	if err := os.WriteFile(path, []byte(content), mode); err != nil {
		return fmt.Errorf("writing %s: %w", rel, err)
	}
	return nil
}

func (g *Generator) out() io.Writer {
	if g.Out == nil {
		return io.Discard
	}
	return g.Out
}

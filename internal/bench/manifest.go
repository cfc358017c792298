package bench

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// ManifestName is the corpus manifest written at the root of the tree
const ManifestName = ".fsq-manifest"

// ManifestEntry records one generated file and the xxhash64 of its content.
type ManifestEntry struct {
	Path string // relative to the corpus root, forward slashes
	Sum  uint64
}

// NewManifestEntry hashes content for the file at rel.
func NewManifestEntry(rel, content string) ManifestEntry {
	return ManifestEntry{
		Path: filepath.ToSlash(rel),
		Sum:  xxhash.Sum64String(content),
	}
}

// SaveManifest writes entries sorted by path, one "sum path" line each.
func SaveManifest(path string, entries []ManifestEntry) error {
	sorted := make([]ManifestEntry, len(entries))
	copy(sorted, entries)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Path < sorted[j].Path })

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating manifest: %w", err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	for _, e := range sorted {
		fmt.Fprintf(w, "%016x %s\n", e.Sum, e.Path)
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("writing manifest: %w", err)
	}
	return nil
}

// LoadManifest reads a manifest written by SaveManifest.
func LoadManifest(path string) ([]ManifestEntry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening manifest: %w", err)
	}
	defer f.Close()

	var entries []ManifestEntry
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		sum, rel, ok := strings.Cut(line, " ")
		if !ok {
			return nil, fmt.Errorf("malformed manifest line: %q", line)
		}
		v, err := strconv.ParseUint(sum, 16, 64)
		if err != nil {
			return nil, fmt.Errorf("malformed manifest hash %q: %w", sum, err)
		}
		entries = append(entries, ManifestEntry{Path: rel, Sum: v})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading manifest: %w", err)
	}
	return entries, nil
}

// CheckManifest rehashes every file listed in the manifest under root and
// returns the paths whose content no longer matches.
func CheckManifest(root string, entries []ManifestEntry) ([]string, error) {
	var stale []string
	for _, e := range entries {
		data, err := os.ReadFile(filepath.Join(root, filepath.FromSlash(e.Path)))
		if err != nil {
			if os.IsNotExist(err) {
				stale = append(stale, e.Path)
				continue
			}
			return nil, fmt.Errorf("rehashing %s: %w", e.Path, err)
		}
		if xxhash.Sum64(data) != e.Sum {
			stale = append(stale, e.Path)
		}
	}
	return stale, nil
}

package config

import (
	"os"
	"os/exec"
	"path/filepath"
)

// Default limits for tool output
const (
	DefaultMaxResults      = 100 // paths returned by search/recent_files before truncation
	DefaultMaxContentFiles = 500 // files handed to rg for content search
	DefaultMaxExecFiles    = 50  // files substituted into exec command templates
	DefaultSearchTimeout   = 30  // seconds for a discovery run
	DefaultExecTimeout     = 10  // seconds for each exec sub-command
)

type Config struct {
	Version  int
	Project  Project
	Binaries Binaries
	Timeouts Timeouts
	Limits   Limits
	Exclude  []string

	// DetectBuildArtifacts enriches Exclude with output directories parsed
	// from package.json / Cargo.toml / pyproject.toml at the project root.
	DetectBuildArtifacts bool
}

type Project struct {
	Root string
	Name string
}

// Binaries holds resolved paths to the external search tools. Detection
// happens once at startup; an empty field means the binary is unavailable
// and the tools depending on it must report that instead of failing.
type Binaries struct {
	Fd string // fd, or fdfind on Debian/Ubuntu
	Rg string // ripgrep; content search is only advertised when present
}

type Timeouts struct {
	SearchSec int // wall-clock limit for each discovery run
	ExecSec   int // wall-clock limit for each exec sub-command
}

type Limits struct {
	MaxResults      int // default result cap for search/recent_files
	MaxContentFiles int // default file cap for search_content
	MaxExecFiles    int // default file cap for exec
}

// Default returns a Config with all defaults applied and the project root
// set to the current working directory.
func Default() *Config {
	root, err := os.Getwd()
	if err != nil || root == "" {
		root = "."
	}
	return &Config{
		Version: 1,
		Project: Project{Root: root},
		Timeouts: Timeouts{
			SearchSec: DefaultSearchTimeout,
			ExecSec:   DefaultExecTimeout,
		},
		Limits: Limits{
			MaxResults:      DefaultMaxResults,
			MaxContentFiles: DefaultMaxContentFiles,
			MaxExecFiles:    DefaultMaxExecFiles,
		},
		Exclude:              []string{},
		DetectBuildArtifacts: true,
	}
}

// Load reads configuration from the given .fsq.kdl path. A missing file is
// not an error; defaults are used. Binary detection and build artifact
// enrichment both run here so the rest of the program never consults
// ambient process state.
func Load(configPath string) (*Config, error) {
	cfg, err := LoadKDL(configPath)
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		cfg = Default()
	}

	cfg.ResolveBinaries()

	if cfg.DetectBuildArtifacts {
		cfg.EnrichExclusionsWithBuildArtifacts()
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ResolveBinaries fills in Binaries from PATH unless paths were pinned in
// the config file. fd ships as "fdfind" on Debian and Ubuntu.
func (c *Config) ResolveBinaries() {
	if c.Binaries.Fd == "" {
		if path, err := exec.LookPath("fd"); err == nil {
			c.Binaries.Fd = path
		} else if path, err := exec.LookPath("fdfind"); err == nil {
			c.Binaries.Fd = path
		}
	}
	if c.Binaries.Rg == "" {
		if path, err := exec.LookPath("rg"); err == nil {
			c.Binaries.Rg = path
		}
	}
}

// EnrichExclusionsWithBuildArtifacts appends detected build output globs to
// the exclude list, skipping duplicates.
func (c *Config) EnrichExclusionsWithBuildArtifacts() {
	root := c.Project.Root
	if root == "" {
		return
	}
	detector := NewBuildArtifactDetector(root)
	existing := make(map[string]bool, len(c.Exclude))
	for _, pattern := range c.Exclude {
		existing[pattern] = true
	}
	for _, pattern := range detector.DetectOutputDirectories() {
		if !existing[pattern] {
			c.Exclude = append(c.Exclude, pattern)
			existing[pattern] = true
		}
	}
}

// AbsRoot returns the project root as an absolute, cleaned path.
func (c *Config) AbsRoot() string {
	if c.Project.Root == "" {
		return "."
	}
	abs, err := filepath.Abs(c.Project.Root)
	if err != nil {
		return filepath.Clean(c.Project.Root)
	}
	return abs
}

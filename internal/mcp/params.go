package mcp

import (
	"fmt"
	"strings"

	"github.com/hbollon/go-edlib"

	"github.com/standardbeagle/fsq/internal/discover"
)

// DiscoveryParams is the shared filter block accepted by every tool.
// Field names match the wire schema one to one.
type DiscoveryParams struct {
	Pattern       string `json:"pattern,omitempty"`
	Path          string `json:"path,omitempty"`
	Type          string `json:"type,omitempty"`
	Extension     string `json:"extension,omitempty"`
	Hidden        bool   `json:"hidden,omitempty"`
	NoIgnore      bool   `json:"no_ignore,omitempty"`
	MaxDepth      int    `json:"max_depth,omitempty"`
	Exclude       string `json:"exclude,omitempty"`
	CaseSensitive bool   `json:"case_sensitive,omitempty"`
	AbsolutePath  bool   `json:"absolute_path,omitempty"`
}

// SearchParams are the arguments of the search tool
type SearchParams struct {
	DiscoveryParams
	MaxResults int `json:"max_results,omitempty"`
}

// ContentParams are the arguments of the search_content tool
type ContentParams struct {
	DiscoveryParams
	Query    string `json:"query"`
	Context  int    `json:"context,omitempty"`
	MaxFiles int    `json:"max_files,omitempty"`
}

// ExecParams are the arguments of the exec tool
type ExecParams struct {
	DiscoveryParams
	Command  string `json:"command"`
	MaxFiles int    `json:"max_files,omitempty"`
}

// RecentParams are the arguments of the recent_files tool
type RecentParams struct {
	DiscoveryParams
	Hours      float64 `json:"hours,omitempty"`
	MaxResults int     `json:"max_results,omitempty"`
}

// CountParams are the arguments of the count tool
type CountParams struct {
	DiscoveryParams
}

// InfoParams are the arguments of the info meta tool
type InfoParams struct {
	Tool string `json:"tool,omitempty"`
}

// typeAliases maps spelled-out type names onto fd's single-letter filters
var typeAliases = map[string]string{
	"file":       "f",
	"files":      "f",
	"dir":        "d",
	"directory":  "d",
	"folder":     "d",
	"symlink":    "l",
	"link":       "l",
	"executable": "x",
	"exec":       "x",
	"empty":      "e",
	"socket":     "s",
	"pipe":       "p",
	"fifo":       "p",
}

// resolveType normalizes a type filter value. Single letters pass through,
// spelled-out names map to their letter, and anything else gets a "did you
// mean" error built from the closest alias.
func resolveType(input string) (string, error) {
	normalized := strings.ToLower(strings.TrimSpace(input))
	if normalized == "" {
		return "", nil
	}
	if discover.IsValidType(normalized) {
		return normalized, nil
	}
	if letter, ok := typeAliases[normalized]; ok {
		return letter, nil
	}

	if suggestion := closestTypeName(normalized); suggestion != "" {
		return "", fmt.Errorf("invalid type %q (did you mean %q?)", input, suggestion)
	}
	return "", fmt.Errorf("invalid type %q: must be one of f, d, l, x, e, s, p", input)
}

// closestTypeName finds the alias with the smallest Levenshtein distance,
// accepting it only within distance 2 to avoid nonsense suggestions.
func closestTypeName(input string) string {
	best := ""
	bestDistance := 3
	for alias := range typeAliases {
		distance := edlib.LevenshteinDistance(input, alias)
		if distance < bestDistance {
			bestDistance = distance
			best = alias
		}
	}
	return best
}

// Validate checks the shared filter block and normalizes the type field.
func (d *DiscoveryParams) Validate() error {
	resolved, err := resolveType(d.Type)
	if err != nil {
		return err
	}
	d.Type = resolved

	if d.MaxDepth < 0 {
		return fmt.Errorf("max_depth must be non-negative, got %d", d.MaxDepth)
	}
	return nil
}

// Options converts validated parameters into a discovery filter.
func (d *DiscoveryParams) Options() discover.Options {
	return discover.Options{
		Pattern:       d.Pattern,
		Path:          d.Path,
		Type:          d.Type,
		Extension:     strings.TrimPrefix(d.Extension, "."),
		Hidden:        d.Hidden,
		NoIgnore:      d.NoIgnore,
		MaxDepth:      d.MaxDepth,
		Exclude:       d.Exclude,
		CaseSensitive: d.CaseSensitive,
		AbsolutePath:  d.AbsolutePath,
	}
}

// Validate checks search_content arguments
func (p *ContentParams) Validate() error {
	if strings.TrimSpace(p.Query) == "" {
		return fmt.Errorf("query is required")
	}
	if p.Context < 0 {
		return fmt.Errorf("context must be non-negative, got %d", p.Context)
	}
	return p.DiscoveryParams.Validate()
}

// Validate checks exec arguments
func (p *ExecParams) Validate() error {
	if strings.TrimSpace(p.Command) == "" {
		return fmt.Errorf("command is required")
	}
	return p.DiscoveryParams.Validate()
}

// Validate checks recent_files arguments
func (p *RecentParams) Validate() error {
	if p.Hours < 0 {
		return fmt.Errorf("hours must be non-negative, got %v", p.Hours)
	}
	return p.DiscoveryParams.Validate()
}

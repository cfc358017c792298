package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	kdl "github.com/sblinch/kdl-go"
	"github.com/sblinch/kdl-go/document"
)

// LoadKDL attempts to load configuration from a .fsq.kdl file.
// Returns (nil, nil) when the file does not exist.
func LoadKDL(configPath string) (*Config, error) {
	if configPath == "" {
		configPath = ".fsq.kdl"
	}
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, nil
	}

	content, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %v", configPath, err)
	}

	cfg, err := parseKDL(string(content))
	if err != nil {
		return nil, err
	}

	// Resolve a relative root against the directory holding the config file
	// so invocations from other directories behave the same.
	if cfg.Project.Root != "" && !filepath.IsAbs(cfg.Project.Root) {
		base := filepath.Dir(configPath)
		cfg.Project.Root = filepath.Clean(filepath.Join(base, cfg.Project.Root))
	}

	return cfg, nil
}

// parseKDL maps the .fsq.kdl document onto a Config with defaults applied first
func parseKDL(content string) (*Config, error) {
	cfg := Default()

	doc, err := kdl.Parse(strings.NewReader(content))
	if err != nil {
		return nil, fmt.Errorf("failed to parse KDL config: %w", err)
	}

	for _, n := range doc.Nodes {
		switch nodeName(n) {
		case "project":
			for _, cn := range n.Children {
				assignSimpleString(cn, "root", func(v string) { cfg.Project.Root = v })
				assignSimpleString(cn, "name", func(v string) { cfg.Project.Name = v })
			}
		case "binaries":
			for _, cn := range n.Children {
				assignSimpleString(cn, "fd", func(v string) { cfg.Binaries.Fd = v })
				assignSimpleString(cn, "rg", func(v string) { cfg.Binaries.Rg = v })
			}
		case "timeouts":
			for _, cn := range n.Children {
				switch nodeName(cn) {
				case "search_sec":
					if v, ok := firstIntArg(cn); ok {
						cfg.Timeouts.SearchSec = v
					}
				case "exec_sec":
					if v, ok := firstIntArg(cn); ok {
						cfg.Timeouts.ExecSec = v
					}
				}
			}
		case "limits":
			for _, cn := range n.Children {
				switch nodeName(cn) {
				case "max_results":
					if v, ok := firstIntArg(cn); ok {
						cfg.Limits.MaxResults = v
					}
				case "max_content_files":
					if v, ok := firstIntArg(cn); ok {
						cfg.Limits.MaxContentFiles = v
					}
				case "max_exec_files":
					if v, ok := firstIntArg(cn); ok {
						cfg.Limits.MaxExecFiles = v
					}
				}
			}
		case "exclude":
			// Replace defaults when an exclude block is present so a project
			// config fully controls its own exclusions.
			cfg.Exclude = collectStringArgs(n)
		case "detect_build_artifacts":
			if b, ok := firstBoolArg(n); ok {
				cfg.DetectBuildArtifacts = b
			}
		}
	}

	return cfg, nil
}

// Helper functions leveraging the kdl-go document model
func nodeName(n *document.Node) string {
	if n == nil || n.Name == nil {
		return ""
	}
	return n.Name.NodeNameString()
}

func firstIntArg(n *document.Node) (int, bool) {
	if len(n.Arguments) == 0 {
		return 0, false
	}
	switch v := n.Arguments[0].Value.(type) {
	case int64:
		return int(v), true
	case float64:
		return int(v), true
	default:
		return 0, false
	}
}

func firstStringArg(n *document.Node) (string, bool) {
	if len(n.Arguments) == 0 {
		return "", false
	}
	if s, ok := n.Arguments[0].Value.(string); ok {
		return s, true
	}
	return "", false
}

func firstBoolArg(n *document.Node) (bool, bool) {
	if len(n.Arguments) == 0 {
		return false, false
	}
	if b, ok := n.Arguments[0].Value.(bool); ok {
		return b, true
	}
	return false, false
}

func collectStringArgs(n *document.Node) []string {
	if n == nil {
		return nil
	}
	out := make([]string, 0, len(n.Arguments))
	for _, a := range n.Arguments {
		if s, ok := a.Value.(string); ok {
			out = append(out, s)
		}
	}

	// Block format: exclude { "pattern" } puts strings in child node names.
	if len(out) == 0 && len(n.Children) > 0 {
		out = make([]string, 0, len(n.Children))
		for _, child := range n.Children {
			if s, ok := firstStringArg(child); ok {
				out = append(out, s)
			} else if child.Name != nil {
				if s, ok := child.Name.Value.(string); ok {
					out = append(out, s)
				}
			}
		}
	}

	return out
}

func assignSimpleString(n *document.Node, target string, set func(string)) {
	if nodeName(n) == target {
		if s, ok := firstStringArg(n); ok {
			set(s)
		}
	}
}

package mcp

import (
	"context"
	"fmt"
	"time"

	"github.com/google/jsonschema-go/jsonschema"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/standardbeagle/fsq/internal/config"
	"github.com/standardbeagle/fsq/internal/discover"
	"github.com/standardbeagle/fsq/internal/version"
)

// Server dispatches fsq's MCP tools onto fd/rg invocations. It is
// stateless between calls: each tool call is one discovery run plus
// optional per-operation steps.
type Server struct {
	cfg              *config.Config
	runner           *discover.Runner
	server           *mcp.Server
	diagnosticLogger *DiagnosticLogger
}

// NewServer creates the MCP server with the given startup-resolved
// configuration and registers the tool table.
func NewServer(cfg *config.Config) (*Server, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config must not be nil")
	}

	diagnosticLogger := NewDiagnosticLogger(true)
	diagnosticLogger.Printf("Starting fsq MCP server %s", version.Info())
	diagnosticLogger.Printf("Binaries: fd=%q rg=%q", cfg.Binaries.Fd, cfg.Binaries.Rg)
	diagnosticLogger.Printf("Project root: %s", cfg.AbsRoot())

	s := &Server{
		cfg:              cfg,
		diagnosticLogger: diagnosticLogger,
		runner: &discover.Runner{
			FdPath:      cfg.Binaries.Fd,
			RgPath:      cfg.Binaries.Rg,
			Timeout:     time.Duration(cfg.Timeouts.SearchSec) * time.Second,
			ExecTimeout: time.Duration(cfg.Timeouts.ExecSec) * time.Second,
		},
	}

	s.server = mcp.NewServer(&mcp.Implementation{
		Name:    "fsq-mcp-server",
		Version: version.Version,
	}, nil)

	s.registerTools()

	return s, nil
}

// Run serves MCP over stdio until the context is canceled
func (s *Server) Run(ctx context.Context) error {
	defer s.diagnosticLogger.Close()
	return s.server.Run(ctx, &mcp.StdioTransport{})
}

// ContentSearchAvailable reports whether ripgrep was found at startup.
// search_content is only advertised when this is true.
func (s *Server) ContentSearchAvailable() bool {
	return s.cfg.Binaries.Rg != ""
}

// discoveryProperties returns the schema block shared by every tool:
// the discovery filter that selects candidate paths.
func discoveryProperties() map[string]*jsonschema.Schema {
	return map[string]*jsonschema.Schema{
		"pattern": {
			Type:        "string",
			Description: "Search pattern (regex). Leave empty to list all files.",
		},
		"path": {
			Type:        "string",
			Description: "Directory to search in. Defaults to current directory.",
		},
		"type": {
			Type:        "string",
			Enum:        []any{"f", "d", "l", "x", "e", "s", "p"},
			Description: "Filter by type: f=file, d=directory, l=symlink, x=executable, e=empty, s=socket, p=pipe",
		},
		"extension": {
			Type:        "string",
			Description: "Filter by file extension (e.g., 'py', 'js', 'txt')",
		},
		"hidden": {
			Type:        "boolean",
			Description: "Include hidden files and directories",
		},
		"no_ignore": {
			Type:        "boolean",
			Description: "Don't respect .gitignore and other ignore files",
		},
		"max_depth": {
			Type:        "integer",
			Description: "Maximum search depth",
		},
		"exclude": {
			Type:        "string",
			Description: "Exclude entries matching this glob pattern",
		},
		"case_sensitive": {
			Type:        "boolean",
			Description: "Use case-sensitive search",
		},
		"absolute_path": {
			Type:        "boolean",
			Description: "Return absolute paths instead of relative",
		},
	}
}

// withDiscovery extends the shared filter schema with tool-specific properties
func withDiscovery(extra map[string]*jsonschema.Schema) map[string]*jsonschema.Schema {
	props := discoveryProperties()
	for name, schema := range extra {
		props[name] = schema
	}
	return props
}

// registerTools registers the fixed tool table with the MCP server.
// search_content is only registered when ripgrep is present so clients
// never see a capability the host cannot serve.
func (s *Server) registerTools() {
	s.server.AddTool(&mcp.Tool{
		Name:        ToolInfo,
		Description: "Get help and availability information for fsq tools. Use 'info' for an overview or 'info <tool>' for specifics.",
		InputSchema: &jsonschema.Schema{
			Type: "object",
			Properties: map[string]*jsonschema.Schema{
				"tool": {
					Type:        "string",
					Description: "Tool name to get information about (e.g., 'search', 'exec', 'version')",
				},
			},
		},
	}, s.handleInfo)

	s.server.AddTool(&mcp.Tool{
		Name: ToolSearch,
		Description: "Search for files and directories using fd (fast find alternative). " +
			"Supports regex patterns, file type filtering, and respects .gitignore by default.",
		InputSchema: &jsonschema.Schema{
			Type: "object",
			Properties: withDiscovery(map[string]*jsonschema.Schema{
				"max_results": {
					Type:        "integer",
					Description: "Maximum number of results to return (default: 100)",
				},
			}),
		},
	}, s.handleSearch)

	if s.ContentSearchAvailable() {
		s.server.AddTool(&mcp.Tool{
			Name: ToolSearchContent,
			Description: "Search file contents with ripgrep, restricted to files discovered by the " +
				"shared fd filters. Returns matching lines with optional context.",
			InputSchema: &jsonschema.Schema{
				Type: "object",
				Properties: withDiscovery(map[string]*jsonschema.Schema{
					"query": {
						Type:        "string",
						Description: "Text or regex to search for in file contents",
					},
					"context": {
						Type:        "integer",
						Description: "Number of context lines around each match (default: 0)",
					},
					"max_files": {
						Type:        "integer",
						Description: "Maximum number of discovered files to search (default: 500)",
					},
				}),
				Required: []string{"query"},
			},
		}, s.handleSearchContent)
	} else {
		s.diagnosticLogger.Printf("rg not found; search_content tool not registered")
	}

	s.server.AddTool(&mcp.Tool{
		Name: ToolExec,
		Description: "Run a command template against each discovered file ({} is replaced by the " +
			"file path) and concatenate any produced output. Each command gets its own short timeout.",
		InputSchema: &jsonschema.Schema{
			Type: "object",
			Properties: withDiscovery(map[string]*jsonschema.Schema{
				"command": {
					Type:        "string",
					Description: "Command template, e.g. 'wc -l {}'. The path is appended when no {} is present.",
				},
				"max_files": {
					Type:        "integer",
					Description: "Maximum number of files to run the command on (default: 50)",
				},
			}),
			Required: []string{"command"},
		},
	}, s.handleExec)

	s.server.AddTool(&mcp.Tool{
		Name:        ToolRecentFiles,
		Description: "List files modified within a recency window, using the same filters as search.",
		InputSchema: &jsonschema.Schema{
			Type: "object",
			Properties: withDiscovery(map[string]*jsonschema.Schema{
				"hours": {
					Type:        "number",
					Description: "Modification window in hours (default: 24)",
				},
				"max_results": {
					Type:        "integer",
					Description: "Maximum number of results to return (default: 100)",
				},
			}),
		},
	}, s.handleRecentFiles)

	s.server.AddTool(&mcp.Tool{
		Name:        ToolCount,
		Description: "Count files matching the discovery filters without returning their paths.",
		InputSchema: &jsonschema.Schema{
			Type:       "object",
			Properties: discoveryProperties(),
		},
	}, s.handleCount)
}

package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"runtime"
	"strings"

	"github.com/hbollon/go-edlib"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/standardbeagle/fsq/internal/discover"
	"github.com/standardbeagle/fsq/internal/version"
	"github.com/standardbeagle/fsq/pkg/pathutil"
)

// relativizePaths rewrites discovery output to project-relative paths unless
// the caller asked for absolute ones. fd echoes absolute paths whenever the
// search path argument is absolute, even without --absolute-path.
func (s *Server) relativizePaths(raw *discover.Raw, opts discover.Options) {
	if opts.AbsolutePath {
		return
	}
	lines := discover.Lines(raw.Stdout)
	if len(lines) == 0 {
		return
	}
	raw.Stdout = strings.Join(pathutil.ToRelativeAll(lines, s.cfg.AbsRoot()), "\n")
}

func (s *Server) handleSearch(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var params SearchParams
	if err := json.Unmarshal(req.Params.Arguments, &params); err != nil {
		return createErrorResponse(fmt.Sprintf("Error: invalid parameters: %v", err))
	}
	if err := params.Validate(); err != nil {
		return createErrorResponse(fmt.Sprintf("Error: %v", err))
	}

	maxResults := params.MaxResults
	if maxResults <= 0 {
		maxResults = s.cfg.Limits.MaxResults
	}

	opts := params.Options()
	opts.ExtraExcludes = s.cfg.Exclude

	raw, err := s.runner.Fd(ctx, opts)
	if err != nil {
		s.diagnosticLogger.Errorf("search: %v", err)
		return createErrorResponse(formatToolError(err))
	}
	s.relativizePaths(raw, opts)

	return createTextResponse(discover.FormatPaths(raw, maxResults))
}

func (s *Server) handleCount(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var params CountParams
	if err := json.Unmarshal(req.Params.Arguments, &params); err != nil {
		return createErrorResponse(fmt.Sprintf("Error: invalid parameters: %v", err))
	}
	if err := params.Validate(); err != nil {
		return createErrorResponse(fmt.Sprintf("Error: %v", err))
	}

	opts := params.Options()
	opts.ExtraExcludes = s.cfg.Exclude

	raw, err := s.runner.Fd(ctx, opts)
	if err != nil {
		s.diagnosticLogger.Errorf("count: %v", err)
		return createErrorResponse(formatToolError(err))
	}

	count := len(discover.Lines(raw.Stdout))
	return createTextResponse(fmt.Sprintf("Found %d matches", count))
}

func (s *Server) handleRecentFiles(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var params RecentParams
	if err := json.Unmarshal(req.Params.Arguments, &params); err != nil {
		return createErrorResponse(fmt.Sprintf("Error: invalid parameters: %v", err))
	}
	if err := params.Validate(); err != nil {
		return createErrorResponse(fmt.Sprintf("Error: %v", err))
	}

	hours := params.Hours
	if hours == 0 {
		hours = RecentDefaultHours
	}
	maxResults := params.MaxResults
	if maxResults <= 0 {
		maxResults = s.cfg.Limits.MaxResults
	}

	opts := params.Options()
	opts.ChangedWithinHours = hours
	opts.ExtraExcludes = s.cfg.Exclude
	if opts.Type == "" {
		opts.Type = "f"
	}

	raw, err := s.runner.Fd(ctx, opts)
	if err != nil {
		s.diagnosticLogger.Errorf("recent_files: %v", err)
		return createErrorResponse(formatToolError(err))
	}
	s.relativizePaths(raw, opts)

	return createTextResponse(discover.FormatPaths(raw, maxResults))
}

func (s *Server) handleSearchContent(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var params ContentParams
	if err := json.Unmarshal(req.Params.Arguments, &params); err != nil {
		return createErrorResponse(fmt.Sprintf("Error: invalid parameters: %v", err))
	}
	if err := params.Validate(); err != nil {
		return createErrorResponse(fmt.Sprintf("Error: %v", err))
	}

	maxFiles := params.MaxFiles
	if maxFiles <= 0 {
		maxFiles = s.cfg.Limits.MaxContentFiles
	}

	opts := params.Options()
	opts.ExtraExcludes = s.cfg.Exclude
	if opts.Type == "" {
		// rg recurses into directories; restrict discovery to files so the
		// filter set, not rg, decides what gets searched.
		opts.Type = "f"
	}

	raw, err := s.runner.Fd(ctx, opts)
	if err != nil {
		s.diagnosticLogger.Errorf("search_content discovery: %v", err)
		return createErrorResponse(formatToolError(err))
	}

	files := discover.Lines(raw.Stdout)
	if len(files) == 0 {
		return createTextResponse(discover.NoMatches)
	}

	total := len(files)
	files, truncated := discover.TruncateFiles(files, maxFiles)

	rgRaw, err := s.runner.Rg(ctx, params.Query, params.Context, params.CaseSensitive, files)
	if err != nil {
		s.diagnosticLogger.Errorf("search_content: %v", err)
		return createErrorResponse(formatToolError(err))
	}

	var output string
	switch {
	case rgRaw.ExitCode == 0:
		output = strings.TrimRight(rgRaw.Stdout, "\n")
	case rgRaw.ExitCode == 1 && strings.TrimSpace(rgRaw.Stdout) == "":
		// rg exits 1 when nothing matched
		output = discover.NoMatches
	default:
		detail := strings.TrimSpace(rgRaw.Stderr)
		if detail == "" {
			detail = fmt.Sprintf("rg failed with exit code %d", rgRaw.ExitCode)
		}
		return createErrorResponse(fmt.Sprintf("Error: %s", detail))
	}

	if truncated {
		output += fmt.Sprintf("\n\nNote: searched first %d of %d discovered files (truncated)", maxFiles, total)
	}

	return createTextResponse(output)
}

func (s *Server) handleExec(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var params ExecParams
	if err := json.Unmarshal(req.Params.Arguments, &params); err != nil {
		return createErrorResponse(fmt.Sprintf("Error: invalid parameters: %v", err))
	}
	if err := params.Validate(); err != nil {
		return createErrorResponse(fmt.Sprintf("Error: %v", err))
	}

	maxFiles := params.MaxFiles
	if maxFiles <= 0 {
		maxFiles = s.cfg.Limits.MaxExecFiles
	}

	opts := params.Options()
	opts.ExtraExcludes = s.cfg.Exclude
	if opts.Type == "" {
		opts.Type = "f"
	}

	raw, err := s.runner.Fd(ctx, opts)
	if err != nil {
		s.diagnosticLogger.Errorf("exec discovery: %v", err)
		return createErrorResponse(formatToolError(err))
	}

	files := discover.Lines(raw.Stdout)
	if len(files) == 0 {
		return createTextResponse(discover.NoMatches)
	}

	total := len(files)
	files, truncated := discover.TruncateFiles(files, maxFiles)

	var blocks []string
	for _, file := range files {
		cmdline := substituteCommand(params.Command, file)

		sub, err := s.runner.Shell(ctx, cmdline)
		if err != nil {
			blocks = append(blocks, fmt.Sprintf("=== %s ===\n%s", file, formatToolError(err)))
			continue
		}

		output := sub.Stdout
		if output == "" {
			output = sub.Stderr
		}
		output = strings.TrimRight(output, "\n")
		if output == "" {
			continue
		}
		if len(output) > ExecMaxOutputBytes {
			output = output[:ExecMaxOutputBytes] + "\n... (output truncated)"
		}
		blocks = append(blocks, fmt.Sprintf("=== %s ===\n%s", file, output))
	}

	result := strings.Join(blocks, "\n\n")
	if result == "" {
		result = fmt.Sprintf("Command produced no output for %d files.", len(files))
	}
	if truncated {
		result += fmt.Sprintf("\n\nNote: ran on first %d of %d discovered files (truncated)", maxFiles, total)
	}

	return createTextResponse(result)
}

// substituteCommand builds the per-file command line: each {} placeholder is
// replaced by the quoted path; without a placeholder the path is appended.
func substituteCommand(template, path string) string {
	quoted := shellQuote(path)
	if strings.Contains(template, "{}") {
		return strings.ReplaceAll(template, "{}", quoted)
	}
	return template + " " + quoted
}

// shellQuote single-quotes a path for POSIX sh
func shellQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}

// toolHelp holds the info text per tool
var toolHelp = map[string]string{
	ToolSearch: "search: find files and directories with fd. Parameters: pattern (regex), path, type (f/d/l/x/e/s/p), " +
		"extension, hidden, no_ignore, max_depth, exclude (glob), case_sensitive, absolute_path, max_results. " +
		"Respects .gitignore unless no_ignore is set.",
	ToolSearchContent: "search_content: grep discovered files with ripgrep. Adds query (required), context (lines), " +
		"max_files to the shared filters. Only available when ripgrep is installed.",
	ToolExec: "exec: run a command template once per discovered file. Adds command (required, {} placeholder) and " +
		"max_files. Each command gets its own timeout; output is concatenated per file.",
	ToolRecentFiles: "recent_files: list files modified within the last N hours (default 24). Adds hours and " +
		"max_results to the shared filters.",
	ToolCount: "count: count matches for the shared filters, returning only the number.",
	ToolInfo:  "info: this help. Pass tool=<name> for details, or tool=version for server info.",
}

func (s *Server) handleInfo(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var params InfoParams
	if err := json.Unmarshal(req.Params.Arguments, &params); err != nil {
		return createErrorResponse(fmt.Sprintf("Error: invalid parameters: %v", err))
	}

	tool := strings.ToLower(strings.TrimSpace(params.Tool))

	switch tool {
	case "", "overview":
		return createTextResponse(s.overviewText())
	case "version":
		return createTextResponse(s.versionText())
	}

	if help, ok := toolHelp[tool]; ok {
		if tool == ToolSearchContent && !s.ContentSearchAvailable() {
			help += "\n\nCurrently unavailable: rg (ripgrep) was not found at startup."
		}
		return createTextResponse(help)
	}

	if suggestion := closestToolName(tool); suggestion != "" {
		return createErrorResponse(fmt.Sprintf("Error: unknown tool %q (did you mean %q?)", params.Tool, suggestion))
	}
	return createErrorResponse(fmt.Sprintf("Error: unknown tool %q", params.Tool))
}

func (s *Server) overviewText() string {
	var sb strings.Builder
	sb.WriteString("fsq exposes filesystem search backed by fd and ripgrep.\n\nTools:\n")
	names := []string{ToolSearch, ToolSearchContent, ToolExec, ToolRecentFiles, ToolCount, ToolInfo}
	for _, name := range names {
		if name == ToolSearchContent && !s.ContentSearchAvailable() {
			sb.WriteString("  " + name + " (unavailable: ripgrep not installed)\n")
			continue
		}
		sb.WriteString("  " + name + "\n")
	}
	sb.WriteString("\nUse info with tool=<name> for parameter details.")
	return sb.String()
}

func (s *Server) versionText() string {
	fd := s.cfg.Binaries.Fd
	if fd == "" {
		fd = "(not found)"
	}
	rg := s.cfg.Binaries.Rg
	if rg == "" {
		rg = "(not found)"
	}
	return fmt.Sprintf("%s\nplatform: %s/%s\nfd: %s\nrg: %s\nproject root: %s",
		version.FullInfo(), runtime.GOOS, runtime.GOARCH, fd, rg, s.cfg.AbsRoot())
}

// closestToolName suggests the nearest registered tool name, within
// Levenshtein distance 3.
func closestToolName(input string) string {
	best := ""
	bestDistance := 4
	for name := range toolHelp {
		distance := edlib.LevenshteinDistance(input, name)
		if distance < bestDistance {
			bestDistance = distance
			best = name
		}
	}
	return best
}

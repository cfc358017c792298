package mcp

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/standardbeagle/fsq/internal/config"
)

func TestHandleSearchFormatsPaths(t *testing.T) {
	fd := fakeBinary(t, "fd", `printf 'src/a.go\nsrc/b.go\n'`)
	s := testServer(t, func(cfg *config.Config) { cfg.Binaries.Fd = fd })

	text, isError, err := s.CallTool(ToolSearch, map[string]interface{}{"pattern": "a"})
	require.NoError(t, err)
	assert.False(t, isError)
	assert.Equal(t, "src/a.go\nsrc/b.go", text)
}

func TestHandleSearchRelativizesAbsolutePaths(t *testing.T) {
	root := t.TempDir()
	fd := fakeBinary(t, "fd", fmt.Sprintf(`printf '%s/src/a.go\n%s/src/b.go\n'`, root, root))
	s := testServer(t, func(cfg *config.Config) {
		cfg.Binaries.Fd = fd
		cfg.Project.Root = root
	})

	text, isError, err := s.CallTool(ToolSearch, map[string]interface{}{"path": root})
	require.NoError(t, err)
	assert.False(t, isError)
	assert.Equal(t, "src/a.go\nsrc/b.go", text)
}

func TestHandleSearchKeepsAbsolutePathsWhenRequested(t *testing.T) {
	root := t.TempDir()
	fd := fakeBinary(t, "fd", fmt.Sprintf(`printf '%s/src/a.go\n'`, root))
	s := testServer(t, func(cfg *config.Config) {
		cfg.Binaries.Fd = fd
		cfg.Project.Root = root
	})

	text, isError, err := s.CallTool(ToolSearch, map[string]interface{}{
		"path":          root,
		"absolute_path": true,
	})
	require.NoError(t, err)
	assert.False(t, isError)
	assert.Equal(t, filepath.Join(root, "src", "a.go"), text)
}

func TestHandleSearchTruncation(t *testing.T) {
	var script strings.Builder
	script.WriteString("printf '")
	for i := 0; i < 5; i++ {
		fmt.Fprintf(&script, "file_%d.txt\\n", i)
	}
	script.WriteString("'")
	fd := fakeBinary(t, "fd", script.String())
	s := testServer(t, func(cfg *config.Config) { cfg.Binaries.Fd = fd })

	text, isError, err := s.CallTool(ToolSearch, map[string]interface{}{"max_results": 3})
	require.NoError(t, err)
	assert.False(t, isError)
	assert.Contains(t, text, "file_2.txt")
	assert.NotContains(t, text, "file_3.txt")
	assert.Contains(t, text, "... and 2 more results (truncated)")
}

func TestHandleSearchMissingFd(t *testing.T) {
	s := testServer(t, func(cfg *config.Config) { cfg.Binaries.Fd = "" })

	text, isError, err := s.CallTool(ToolSearch, map[string]interface{}{})
	require.NoError(t, err)
	assert.True(t, isError)
	assert.Equal(t, "Error: fd/fdfind not found. Please install fd-find.", text)
}

func TestHandleSearchInvalidType(t *testing.T) {
	fd := fakeBinary(t, "fd", "exit 0")
	s := testServer(t, func(cfg *config.Config) { cfg.Binaries.Fd = fd })

	text, isError, err := s.CallTool(ToolSearch, map[string]interface{}{"type": "fil"})
	require.NoError(t, err)
	assert.True(t, isError)
	assert.Contains(t, text, "did you mean")
}

func TestHandleSearchNoMatches(t *testing.T) {
	fd := fakeBinary(t, "fd", "exit 0")
	s := testServer(t, func(cfg *config.Config) { cfg.Binaries.Fd = fd })

	text, isError, err := s.CallTool(ToolSearch, map[string]interface{}{"pattern": "nomatch"})
	require.NoError(t, err)
	assert.False(t, isError)
	assert.Equal(t, "No matches found.", text)
}

func TestHandleSearchAppendsWarnings(t *testing.T) {
	fd := fakeBinary(t, "fd", `printf 'a.go\n'; echo 'skipping /proc' >&2`)
	s := testServer(t, func(cfg *config.Config) { cfg.Binaries.Fd = fd })

	text, _, err := s.CallTool(ToolSearch, map[string]interface{}{})
	require.NoError(t, err)
	assert.Contains(t, text, "a.go")
	assert.Contains(t, text, "Warnings: skipping /proc")
}

func TestHandleCount(t *testing.T) {
	fd := fakeBinary(t, "fd", `printf 'a\nb\nc\n'`)
	s := testServer(t, func(cfg *config.Config) { cfg.Binaries.Fd = fd })

	text, isError, err := s.CallTool(ToolCount, map[string]interface{}{})
	require.NoError(t, err)
	assert.False(t, isError)
	assert.Equal(t, "Found 3 matches", text)
}

func TestHandleCountEmpty(t *testing.T) {
	fd := fakeBinary(t, "fd", "exit 0")
	s := testServer(t, func(cfg *config.Config) { cfg.Binaries.Fd = fd })

	text, _, err := s.CallTool(ToolCount, map[string]interface{}{})
	require.NoError(t, err)
	assert.Equal(t, "Found 0 matches", text)
}

func TestHandleRecentFiles(t *testing.T) {
	// The fake records its argv so the recency flag can be asserted.
	argvFile := filepath.Join(t.TempDir(), "argv")
	fd := fakeBinary(t, "fd", fmt.Sprintf(`echo "$@" > %s; printf 'recent.go\n'`, argvFile))
	s := testServer(t, func(cfg *config.Config) { cfg.Binaries.Fd = fd })

	text, isError, err := s.CallTool(ToolRecentFiles, map[string]interface{}{"hours": 48})
	require.NoError(t, err)
	assert.False(t, isError)
	assert.Equal(t, "recent.go", text)

	argv, err := os.ReadFile(argvFile)
	require.NoError(t, err)
	assert.Contains(t, string(argv), "--changed-within 48h")
}

func TestHandleRecentFilesDefaultWindow(t *testing.T) {
	argvFile := filepath.Join(t.TempDir(), "argv")
	fd := fakeBinary(t, "fd", fmt.Sprintf(`echo "$@" > %s`, argvFile))
	s := testServer(t, func(cfg *config.Config) { cfg.Binaries.Fd = fd })

	_, _, err := s.CallTool(ToolRecentFiles, map[string]interface{}{})
	require.NoError(t, err)

	argv, err := os.ReadFile(argvFile)
	require.NoError(t, err)
	assert.Contains(t, string(argv), "--changed-within 24h")
}

func TestHandleSearchContent(t *testing.T) {
	fd := fakeBinary(t, "fd", `printf 'a.go\nb.go\n'`)
	rg := fakeBinary(t, "rg", `printf 'a.go:3:func main() {\n'`)
	s := testServer(t, func(cfg *config.Config) {
		cfg.Binaries.Fd = fd
		cfg.Binaries.Rg = rg
	})

	text, isError, err := s.CallTool(ToolSearchContent, map[string]interface{}{"query": "main"})
	require.NoError(t, err)
	assert.False(t, isError)
	assert.Equal(t, "a.go:3:func main() {", text)
}

func TestHandleSearchContentNoMatches(t *testing.T) {
	fd := fakeBinary(t, "fd", `printf 'a.go\n'`)
	rg := fakeBinary(t, "rg", "exit 1")
	s := testServer(t, func(cfg *config.Config) {
		cfg.Binaries.Fd = fd
		cfg.Binaries.Rg = rg
	})

	text, isError, err := s.CallTool(ToolSearchContent, map[string]interface{}{"query": "absent"})
	require.NoError(t, err)
	assert.False(t, isError)
	assert.Equal(t, "No matches found.", text)
}

func TestHandleSearchContentNoFilesDiscovered(t *testing.T) {
	fd := fakeBinary(t, "fd", "exit 0")
	rg := fakeBinary(t, "rg", `echo should-not-run; exit 2`)
	s := testServer(t, func(cfg *config.Config) {
		cfg.Binaries.Fd = fd
		cfg.Binaries.Rg = rg
	})

	text, isError, err := s.CallTool(ToolSearchContent, map[string]interface{}{"query": "x"})
	require.NoError(t, err)
	assert.False(t, isError)
	assert.Equal(t, "No matches found.", text)
}

func TestHandleSearchContentTruncatesFileSet(t *testing.T) {
	fd := fakeBinary(t, "fd", `printf 'a.go\nb.go\nc.go\nd.go\n'`)
	rg := fakeBinary(t, "rg", `printf 'a.go:1:match\n'`)
	s := testServer(t, func(cfg *config.Config) {
		cfg.Binaries.Fd = fd
		cfg.Binaries.Rg = rg
	})

	text, _, err := s.CallTool(ToolSearchContent, map[string]interface{}{
		"query":     "match",
		"max_files": 2,
	})
	require.NoError(t, err)
	assert.Contains(t, text, "a.go:1:match")
	assert.Contains(t, text, "searched first 2 of 4 discovered files (truncated)")
}

func TestHandleSearchContentRgFailure(t *testing.T) {
	fd := fakeBinary(t, "fd", `printf 'a.go\n'`)
	rg := fakeBinary(t, "rg", `echo 'regex parse error' >&2; exit 2`)
	s := testServer(t, func(cfg *config.Config) {
		cfg.Binaries.Fd = fd
		cfg.Binaries.Rg = rg
	})

	text, isError, err := s.CallTool(ToolSearchContent, map[string]interface{}{"query": "("})
	require.NoError(t, err)
	assert.True(t, isError)
	assert.Equal(t, "Error: regex parse error", text)
}

func TestHandleSearchContentMissingQuery(t *testing.T) {
	fd := fakeBinary(t, "fd", "exit 0")
	rg := fakeBinary(t, "rg", "exit 0")
	s := testServer(t, func(cfg *config.Config) {
		cfg.Binaries.Fd = fd
		cfg.Binaries.Rg = rg
	})

	text, isError, err := s.CallTool(ToolSearchContent, map[string]interface{}{})
	require.NoError(t, err)
	assert.True(t, isError)
	assert.Contains(t, text, "query is required")
}

func TestHandleExec(t *testing.T) {
	dir := t.TempDir()
	fileA := filepath.Join(dir, "a.txt")
	fileB := filepath.Join(dir, "b.txt")
	require.NoError(t, os.WriteFile(fileA, []byte("one\n"), 0644))
	require.NoError(t, os.WriteFile(fileB, []byte("one\ntwo\n"), 0644))

	fd := fakeBinary(t, "fd", fmt.Sprintf(`printf '%s\n%s\n'`, fileA, fileB))
	s := testServer(t, func(cfg *config.Config) { cfg.Binaries.Fd = fd })

	text, isError, err := s.CallTool(ToolExec, map[string]interface{}{"command": "cat {}"})
	require.NoError(t, err)
	assert.False(t, isError)
	assert.Contains(t, text, fmt.Sprintf("=== %s ===\none", fileA))
	assert.Contains(t, text, fmt.Sprintf("=== %s ===\none\ntwo", fileB))
}

func TestHandleExecSkipsSilentFiles(t *testing.T) {
	fd := fakeBinary(t, "fd", `printf 'a.txt\nb.txt\n'`)
	s := testServer(t, func(cfg *config.Config) { cfg.Binaries.Fd = fd })

	text, isError, err := s.CallTool(ToolExec, map[string]interface{}{"command": "true"})
	require.NoError(t, err)
	assert.False(t, isError)
	assert.Equal(t, "Command produced no output for 2 files.", text)
}

func TestHandleExecCapsFileCount(t *testing.T) {
	fd := fakeBinary(t, "fd", `printf '1\n2\n3\n'`)
	s := testServer(t, func(cfg *config.Config) { cfg.Binaries.Fd = fd })

	text, _, err := s.CallTool(ToolExec, map[string]interface{}{
		"command":   "echo n={}",
		"max_files": 2,
	})
	require.NoError(t, err)
	assert.Contains(t, text, "n=1")
	assert.Contains(t, text, "n=2")
	assert.NotContains(t, text, "n=3")
	assert.Contains(t, text, "ran on first 2 of 3 discovered files (truncated)")
}

func TestHandleExecMissingCommand(t *testing.T) {
	fd := fakeBinary(t, "fd", "exit 0")
	s := testServer(t, func(cfg *config.Config) { cfg.Binaries.Fd = fd })

	text, isError, err := s.CallTool(ToolExec, map[string]interface{}{})
	require.NoError(t, err)
	assert.True(t, isError)
	assert.Contains(t, text, "command is required")
}

func TestHandleInfoOverview(t *testing.T) {
	s := testServer(t, func(cfg *config.Config) {
		cfg.Binaries.Fd = "/usr/bin/fd"
		cfg.Binaries.Rg = ""
	})

	text, isError, err := s.CallTool(ToolInfo, map[string]interface{}{})
	require.NoError(t, err)
	assert.False(t, isError)
	assert.Contains(t, text, "search")
	assert.Contains(t, text, "search_content (unavailable: ripgrep not installed)")
}

func TestHandleInfoVersion(t *testing.T) {
	s := testServer(t, func(cfg *config.Config) {
		cfg.Binaries.Fd = "/usr/bin/fd"
		cfg.Binaries.Rg = "/usr/bin/rg"
	})

	text, _, err := s.CallTool(ToolInfo, map[string]interface{}{"tool": "version"})
	require.NoError(t, err)
	assert.Contains(t, text, "fsq")
	assert.Contains(t, text, "fd: /usr/bin/fd")
	assert.Contains(t, text, "rg: /usr/bin/rg")
}

func TestHandleInfoUnknownToolSuggestion(t *testing.T) {
	s := testServer(t, nil)

	text, isError, err := s.CallTool(ToolInfo, map[string]interface{}{"tool": "serach"})
	require.NoError(t, err)
	assert.True(t, isError)
	assert.Contains(t, text, `did you mean "search"`)
}

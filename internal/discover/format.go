package discover

import (
	"fmt"
	"strings"
)

// NoMatches is the uniform empty-result message across all tools
const NoMatches = "No matches found."

// Lines splits captured stdout into non-empty lines.
func Lines(stdout string) []string {
	trimmed := strings.TrimSpace(stdout)
	if trimmed == "" {
		return nil
	}
	raw := strings.Split(trimmed, "\n")
	lines := make([]string, 0, len(raw))
	for _, line := range raw {
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

// FormatPaths normalizes a discovery run into caller-facing text: at most
// maxResults lines, an omitted-count suffix past the cap, stderr appended
// as warnings, and the NoMatches fallback when nothing remains.
func FormatPaths(raw *Raw, maxResults int) string {
	lines := Lines(raw.Stdout)

	var output string
	if maxResults > 0 && len(lines) > maxResults {
		output = strings.Join(lines[:maxResults], "\n")
		output += fmt.Sprintf("\n\n... and %d more results (truncated)", len(lines)-maxResults)
	} else {
		output = strings.Join(lines, "\n")
	}

	if raw.Stderr != "" {
		output += fmt.Sprintf("\n\nWarnings: %s", strings.TrimSpace(raw.Stderr))
	}

	if output == "" {
		return NoMatches
	}
	return output
}

// TruncateFiles caps a discovered file list for downstream steps and
// reports whether truncation happened.
func TruncateFiles(files []string, max int) ([]string, bool) {
	if max > 0 && len(files) > max {
		return files[:max], true
	}
	return files, false
}

package mcp

import (
	"errors"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	fsqerrors "github.com/standardbeagle/fsq/internal/errors"
)

// createTextResponse wraps plain text in a successful MCP tool result.
// Every fsq tool speaks text; there is no structured payload.
func createTextResponse(text string) (*mcp.CallToolResult, error) {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: text},
		},
	}, nil
}

// createErrorResponse converts a failure into a textual tool result.
// IsError is set per the MCP SDK specification: errors originating from the
// tool are reported inside the result object, not as protocol-level errors,
// so the calling LLM can see them and self-correct.
func createErrorResponse(text string) (*mcp.CallToolResult, error) {
	result, _ := createTextResponse(text)
	result.IsError = true
	return result, nil
}

// formatToolError renders the three failure kinds into their fixed textual
// forms: unavailable dependency, timeout, and everything else.
func formatToolError(err error) string {
	switch {
	case fsqerrors.IsMissingBinary(err):
		return missingBinaryMessage(err)
	case fsqerrors.IsTimeout(err):
		return fmt.Sprintf("Error: %s", underlyingText(err))
	default:
		return fmt.Sprintf("Error: %v", err)
	}
}

func missingBinaryMessage(err error) string {
	var te *fsqerrors.ToolError
	if errors.As(err, &te) && te.Binary == "rg" {
		return "Error: rg (ripgrep) not found. Please install ripgrep."
	}
	return "Error: fd/fdfind not found. Please install fd-find."
}

func underlyingText(err error) string {
	var te *fsqerrors.ToolError
	if errors.As(err, &te) && te.Underlying != nil {
		return te.Underlying.Error()
	}
	return err.Error()
}

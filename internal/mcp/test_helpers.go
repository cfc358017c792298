package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// CallTool is a test helper method to simulate MCP tool calls without a
// transport. Returns the concatenated text content of the result.
func (s *Server) CallTool(toolName string, params map[string]interface{}) (string, bool, error) {
	ctx := context.Background()

	paramsJSON, err := json.Marshal(params)
	if err != nil {
		return "", false, fmt.Errorf("failed to marshal params: %w", err)
	}

	req := &mcp.CallToolRequest{
		Params: &mcp.CallToolParamsRaw{
			Name:      toolName,
			Arguments: paramsJSON,
		},
	}

	var result *mcp.CallToolResult

	switch toolName {
	case ToolSearch:
		result, err = s.handleSearch(ctx, req)
	case ToolSearchContent:
		result, err = s.handleSearchContent(ctx, req)
	case ToolExec:
		result, err = s.handleExec(ctx, req)
	case ToolRecentFiles:
		result, err = s.handleRecentFiles(ctx, req)
	case ToolCount:
		result, err = s.handleCount(ctx, req)
	case ToolInfo:
		result, err = s.handleInfo(ctx, req)
	default:
		return "", false, errors.New("unknown tool: " + toolName)
	}

	if err != nil {
		return "", false, err
	}

	text := ""
	for _, content := range result.Content {
		if tc, ok := content.(*mcp.TextContent); ok {
			text += tc.Text
		}
	}
	return text, result.IsError, nil
}

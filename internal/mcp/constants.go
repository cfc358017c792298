package mcp

// Tool names registered with the MCP server
const (
	ToolSearch        = "search"
	ToolSearchContent = "search_content"
	ToolExec          = "exec"
	ToolRecentFiles   = "recent_files"
	ToolCount         = "count"
	ToolInfo          = "info"
)

// Default values for tool operations
const (
	// SearchDefaultMax caps paths returned by search/recent_files.
	// Rationale: 100 paths fit comfortably in AI context windows while
	// giving good coverage of a result set.
	SearchDefaultMax = 100

	// ContentDefaultContextLines is the default rg context when the caller
	// asks for context but gives no count.
	ContentDefaultContextLines = 2

	// RecentDefaultHours is the default recency window for recent_files.
	RecentDefaultHours = 24.0

	// ExecMaxOutputBytes caps the output kept from one exec sub-command so
	// a single chatty command cannot dominate the response.
	ExecMaxOutputBytes = 16 * 1024
)

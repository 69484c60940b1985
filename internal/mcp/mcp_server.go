// Package mcp provides the Model Context Protocol (MCP) server implementation.
package mcp

import (
	"context"

	"github.com/huangsam/githistory/internal/contract"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// NewMCPServer initializes and configures the githistory MCP server without starting it.
// This is exposed for unit testing.
func NewMCPServer(baseCfg *contract.Config, source contract.CommitSource) *server.MCPServer {
	s := server.NewMCPServer(
		"Git History Server",
		"1.0.0",
		server.WithLogging(),
	)

	h := &toolHandler{
		baseCfg: baseCfg,
		source:  source,
	}

	// --- 1. Tool: get_author_stats ---
	s.AddTool(mcp.NewTool("get_author_stats",
		mcp.WithDescription("Summarize git history per author email: commit count, first and last commit day and days between."),
		mcp.WithString("repo_path", mcp.Description("Path to the Git repository (defaults to current directory if not specified).")),
		mcp.WithString("sort", mcp.Description("Sort key. Defaults to first commit ascending."), mcp.Enum("default", "email", "commits", "first", "last", "days")),
		mcp.WithBoolean("reverse", mcp.Description("Reverse the sort direction.")),
		mcp.WithString("filter", mcp.Description("Case-sensitive substring an author email must contain.")),
		mcp.WithNumber("limit", mcp.Description("Limit the number of results returned.")),
	), h.handleGetAuthorStats)

	// --- 2. Tool: get_author_activity ---
	s.AddTool(mcp.NewTool("get_author_activity",
		mcp.WithDescription("Return the day-by-day commit counts of one author email."),
		mcp.WithString("email", mcp.Description("Exact author email."), mcp.Required()),
		mcp.WithString("repo_path", mcp.Description("Path to the Git repository.")),
	), h.handleGetAuthorActivity)

	return s
}

// StartMCPServer starts the githistory MCP server on stdio.
func StartMCPServer(_ context.Context, baseCfg *contract.Config, source contract.CommitSource) error {
	s := NewMCPServer(baseCfg, source)
	return server.ServeStdio(s)
}

package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/huangsam/githistory/core"
	"github.com/huangsam/githistory/internal/contract"
	"github.com/huangsam/githistory/schema"
	"github.com/mark3labs/mcp-go/mcp"
)

// toolHandler holds common dependencies for MCP tool handlers.
type toolHandler struct {
	baseCfg *contract.Config
	source  contract.CommitSource
}

// withRepoPath resolves an optional repo_path argument into cfg.
func (h *toolHandler) withRepoPath(ctx context.Context, cfg *contract.Config, request mcp.CallToolRequest) error {
	p := request.GetString("repo_path", "")
	if p == "" {
		return nil
	}
	root, err := h.source.ResolveRepo(ctx, p)
	if err != nil {
		return err
	}
	cfg.RepoPath = root
	cfg.DisplayPath = p
	return nil
}

func (h *toolHandler) handleGetAuthorStats(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()
	if s := request.GetString("sort", ""); s != "" {
		key, ok := schema.ParseSortKey(s)
		if !ok {
			return mcp.NewToolResultError(fmt.Sprintf("invalid sort '%s'", s)), nil
		}
		cfg.Sort = key
	}
	cfg.Reverse = request.GetBool("reverse", cfg.Reverse)
	cfg.Filter = request.GetString("filter", cfg.Filter)
	if l := request.GetInt("limit", 0); l != 0 {
		if l < 0 || l > contract.MaxResultLimit {
			return mcp.NewToolResultError(fmt.Sprintf("limit must be between 1 and %d", contract.MaxResultLimit)), nil
		}
		cfg.Limit = l
	}
	if err := h.withRepoPath(ctx, cfg, request); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid repository: %v", err)), nil
	}

	ranked, _, err := core.GetAuthorResults(core.WithSuppressHeader(ctx), cfg, h.source)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("history read failed: %v", err)), nil
	}

	enriched := schema.EnrichAuthors(ranked)
	jsonData, _ := json.MarshalIndent(enriched, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleGetAuthorActivity(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()
	email := request.GetString("email", "")
	if email == "" {
		return mcp.NewToolResultError("email is required"), nil
	}
	if err := h.withRepoPath(ctx, cfg, request); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid repository: %v", err)), nil
	}

	activity, err := core.GetAuthorActivity(core.WithSuppressHeader(ctx), cfg, h.source, email)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("activity lookup failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(activity, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

package mcp

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/namewastaken/namewastaken/internal/core"
	"github.com/namewastaken/namewastaken/internal/core/engine"
	"github.com/namewastaken/namewastaken/internal/core/provider"
)

// CheckUsernameInput is the input for the check_username tool.
type CheckUsernameInput struct {
	Username  string   `json:"username" jsonschema:"the handle to check, with or without a leading @"`
	Platforms []string `json:"platforms,omitempty" jsonschema:"optional platform names or aliases; all platforms when empty"`
}

// CheckManyInput is the input for the check_many tool.
type CheckManyInput struct {
	Usernames []string `json:"usernames" jsonschema:"the handles to check"`
	Platforms []string `json:"platforms,omitempty" jsonschema:"optional platform names or aliases; all platforms when empty"`
}

// CheckPlatformInput is the input for the check_platform tool.
type CheckPlatformInput struct {
	Username string `json:"username" jsonschema:"the handle to check"`
	Platform string `json:"platform" jsonschema:"platform name or alias, e.g. ig or github"`
}

// CheckURLInput is the input for the check_url tool.
type CheckURLInput struct {
	URL string `json:"url" jsonschema:"a profile URL, e.g. https://instagram.com/somehandle"`
}

// CheckURLResult is the output for the check_url tool.
type CheckURLResult struct {
	Platform string            `json:"platform"`
	Username string            `json:"username"`
	Result   *core.CheckResult `json:"result"`
}

// ListPlatformsInput is the (empty) input for the list_platforms tool.
type ListPlatformsInput struct{}

// PlatformEntry describes one supported platform.
type PlatformEntry struct {
	Name        string   `json:"name"`
	DisplayName string   `json:"displayName"`
	Aliases     []string `json:"aliases"`
}

// ListPlatformsResult is the output for the list_platforms tool.
type ListPlatformsResult struct {
	Platforms []PlatformEntry `json:"platforms"`
}

func registerTools(mcpServer *mcp.Server, eng *engine.Orchestrator, cacheEnabled bool) {
	mcp.AddTool(mcpServer, &mcp.Tool{
		Name:        "check_username",
		Description: "Check whether a username is taken across social platforms",
	}, checkUsernameHandler(eng, cacheEnabled))

	mcp.AddTool(mcpServer, &mcp.Tool{
		Name:        "check_many",
		Description: "Check several usernames across social platforms in one call",
	}, checkManyHandler(eng, cacheEnabled))

	mcp.AddTool(mcpServer, &mcp.Tool{
		Name:        "check_platform",
		Description: "Check whether a username is taken on a single platform",
	}, checkPlatformHandler(eng, cacheEnabled))

	mcp.AddTool(mcpServer, &mcp.Tool{
		Name:        "check_url",
		Description: "Check availability of the handle found in a profile URL",
	}, checkURLHandler(eng, cacheEnabled))

	mcp.AddTool(mcpServer, &mcp.Tool{
		Name:        "list_platforms",
		Description: "List the supported platforms and their aliases",
	}, listPlatformsHandler())
}

func checkUsernameHandler(eng *engine.Orchestrator, cacheEnabled bool) mcp.ToolHandlerFor[CheckUsernameInput, *core.CheckAllResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input CheckUsernameInput) (*mcp.CallToolResult, *core.CheckAllResult, error) {
		handle, err := core.ParseHandle(input.Username)
		if err != nil {
			return nil, nil, err
		}

		providers, err := resolvePlatforms(input.Platforms)
		if err != nil {
			return nil, nil, err
		}

		return nil, eng.CheckProviders(ctx, providers, handle, cacheEnabled), nil
	}
}

func checkManyHandler(eng *engine.Orchestrator, cacheEnabled bool) mcp.ToolHandlerFor[CheckManyInput, *core.BulkCheckResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input CheckManyInput) (*mcp.CallToolResult, *core.BulkCheckResult, error) {
		if len(input.Usernames) == 0 {
			return nil, nil, fmt.Errorf("at least one username is required")
		}

		handles := make([]string, 0, len(input.Usernames))
		for _, raw := range input.Usernames {
			handle, err := core.ParseHandle(raw)
			if err != nil {
				return nil, nil, err
			}
			handles = append(handles, handle)
		}

		providers, err := resolvePlatforms(input.Platforms)
		if err != nil {
			return nil, nil, err
		}

		return nil, eng.CheckBulkWithProviders(ctx, providers, handles, cacheEnabled), nil
	}
}

func checkPlatformHandler(eng *engine.Orchestrator, cacheEnabled bool) mcp.ToolHandlerFor[CheckPlatformInput, *core.CheckResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input CheckPlatformInput) (*mcp.CallToolResult, *core.CheckResult, error) {
		handle, err := core.ParseHandle(input.Username)
		if err != nil {
			return nil, nil, err
		}

		p, ok := provider.Resolve(input.Platform)
		if !ok {
			return nil, nil, fmt.Errorf("unknown platform: %s", input.Platform)
		}

		return nil, eng.CheckSingle(ctx, p, handle, cacheEnabled), nil
	}
}

func checkURLHandler(eng *engine.Orchestrator, cacheEnabled bool) mcp.ToolHandlerFor[CheckURLInput, CheckURLResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input CheckURLInput) (*mcp.CallToolResult, CheckURLResult, error) {
		// The provider's URL pattern constrains the handle grammar; no
		// generic re-validation, GitHub handles may carry hyphens.
		p, handle, ok := provider.ParseProfileURL(input.URL)
		if !ok {
			return nil, CheckURLResult{}, fmt.Errorf("unrecognized profile URL: %s", input.URL)
		}

		result := CheckURLResult{
			Platform: p.Name,
			Username: handle,
			Result:   eng.CheckSingle(ctx, p, handle, cacheEnabled),
		}
		return nil, result, nil
	}
}

func listPlatformsHandler() mcp.ToolHandlerFor[ListPlatformsInput, ListPlatformsResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, _ ListPlatformsInput) (*mcp.CallToolResult, ListPlatformsResult, error) {
		list := provider.List()
		result := ListPlatformsResult{Platforms: make([]PlatformEntry, 0, len(list))}
		for _, p := range list {
			result.Platforms = append(result.Platforms, PlatformEntry{
				Name:        p.Name,
				DisplayName: p.DisplayName,
				Aliases:     p.Aliases,
			})
		}
		return nil, result, nil
	}
}

func resolvePlatforms(names []string) ([]*provider.Provider, error) {
	if len(names) == 0 {
		return provider.List(), nil
	}

	selected := make([]*provider.Provider, 0, len(names))
	seen := make(map[string]bool)
	for _, name := range names {
		p, ok := provider.Resolve(name)
		if !ok {
			return nil, fmt.Errorf("unknown platform: %s", name)
		}
		if seen[p.Name] {
			continue
		}
		seen[p.Name] = true
		selected = append(selected, p)
	}
	return selected, nil
}

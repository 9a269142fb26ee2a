// Package mcpserver implements an MCP (Model Context Protocol) server
// that exposes the pathtools purepath operations as MCP tools over stdio.
//
// The repository ships no binary; hosts embed the server in their own
// main:
//
//	func main() {
//	    if err := mcpserver.Run(context.Background()); err != nil {
//	        log.Fatal(err)
//	    }
//	}
package mcpserver

import (
	"context"

	"github.com/erraggy/pathtools"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const serverInstructions = `pathtools MCP server — lexical path manipulation with Node.js path-module semantics.

All tools are pure string computations: no filesystem access, no existence checks, no symlink resolution.

Configuration: defaults are configurable via PATHTOOLS_* environment variables set in your MCP client config.

Key settings:
- PATHTOOLS_PLATFORM (posix or windows, default: the host platform) — default path convention
- PATHTOOLS_BASE_DIR (default: the server process working directory) — default base directory for resolve and relative

Every tool also accepts per-call "platform" and (where relevant) "base_dir" overrides, so Windows semantics can be exercised from a POSIX host and vice versa.`

// Run starts the MCP server over stdio and blocks until the client
// disconnects or the context is cancelled.
func Run(ctx context.Context) error {
	server := mcp.NewServer(
		&mcp.Implementation{Name: "pathtools", Version: pathtools.Version()},
		&mcp.ServerOptions{
			Instructions: serverInstructions,
		},
	)
	registerAllTools(server)
	return server.Run(ctx, &mcp.StdioTransport{})
}

func registerAllTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "normalize",
		Description: "Normalize a path string: resolve '.' and '..' segments and collapse separator runs. Purely lexical; the empty path normalizes to '.'. Leading '..' segments are kept unless a root stops them.",
	}, handleNormalize)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "resolve",
		Description: "Resolve a path to absolute, normalized form. Relative paths are anchored at base_dir (default: PATHTOOLS_BASE_DIR or the server working directory). On Windows a drive-relative path like 'C:foo' anchors at the drive root.",
	}, handleResolve)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "relative",
		Description: "Express a target path relative to a base path as the minimal '..' ascents followed by descents. Identical paths yield an empty result. On Windows named segments match case-insensitively and cross-drive results fall back to the target's absolute path.",
	}, handleRelative)
}

// errResult creates an MCP error result from an error.
func errResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: err.Error()}},
	}
}

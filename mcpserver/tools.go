package mcpserver

import (
	"context"
	"fmt"

	"github.com/erraggy/pathtools/purepath"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type normalizeInput struct {
	Path     string `json:"path"               jsonschema:"The path string to normalize"`
	Platform string `json:"platform,omitempty" jsonschema:"Path convention to apply: posix or windows. Defaults to PATHTOOLS_PLATFORM or the host platform."`
}

type resolveInput struct {
	Path     string `json:"path"               jsonschema:"The path string to resolve"`
	Platform string `json:"platform,omitempty" jsonschema:"Path convention to apply: posix or windows. Defaults to PATHTOOLS_PLATFORM or the host platform."`
	BaseDir  string `json:"base_dir,omitempty" jsonschema:"Absolute directory to anchor relative paths at. Defaults to PATHTOOLS_BASE_DIR or the server working directory."`
}

type relativeInput struct {
	Target   string `json:"target"             jsonschema:"The path to express relative to base"`
	Base     string `json:"base"               jsonschema:"The path the result is relative to"`
	Platform string `json:"platform,omitempty" jsonschema:"Path convention to apply: posix or windows. Defaults to PATHTOOLS_PLATFORM or the host platform."`
	BaseDir  string `json:"base_dir,omitempty" jsonschema:"Absolute directory to anchor relative inputs at. Defaults to PATHTOOLS_BASE_DIR or the server working directory."`
}

type pathOutput struct {
	Path string `json:"path"`
}

func handleNormalize(_ context.Context, _ *mcp.CallToolRequest, input normalizeInput) (*mcp.CallToolResult, pathOutput, error) {
	r, err := resolverFor(input.Platform, "")
	if err != nil {
		return errResult(err), pathOutput{}, nil
	}
	return nil, pathOutput{Path: r.Normalize(input.Path)}, nil
}

func handleResolve(_ context.Context, _ *mcp.CallToolRequest, input resolveInput) (*mcp.CallToolResult, pathOutput, error) {
	r, err := resolverFor(input.Platform, input.BaseDir)
	if err != nil {
		return errResult(err), pathOutput{}, nil
	}
	return nil, pathOutput{Path: r.Resolve(input.Path)}, nil
}

func handleRelative(_ context.Context, _ *mcp.CallToolRequest, input relativeInput) (*mcp.CallToolResult, pathOutput, error) {
	r, err := resolverFor(input.Platform, input.BaseDir)
	if err != nil {
		return errResult(err), pathOutput{}, nil
	}
	return nil, pathOutput{Path: r.Relative(input.Target, input.Base)}, nil
}

// resolverFor builds a purepath.Resolver from the per-call overrides,
// falling back to the PATHTOOLS_* defaults.
func resolverFor(platform, baseDir string) (*purepath.Resolver, error) {
	if platform == "" {
		platform = cfg.Platform
	}

	var opts []purepath.Option
	switch platform {
	case "":
		// Host platform.
	case "posix":
		opts = append(opts, purepath.WithPlatform(purepath.Posix))
	case "windows":
		opts = append(opts, purepath.WithPlatform(purepath.Windows))
	default:
		return nil, fmt.Errorf("platform must be \"posix\" or \"windows\", got %q", platform)
	}

	if baseDir == "" {
		baseDir = cfg.BaseDir
	}
	if baseDir != "" {
		opts = append(opts, purepath.WithBaseDir(baseDir))
	}

	return purepath.New(opts...)
}

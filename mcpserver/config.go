package mcpserver

import (
	"log/slog"
	"os"
)

// serverConfig holds the configurable MCP server defaults.
// Loaded once at startup from environment variables via loadConfig().
type serverConfig struct {
	// Platform is the default path convention ("posix" or "windows").
	// Empty means the host platform.
	Platform string

	// BaseDir is the default base directory for resolve and relative.
	// Empty means the server process working directory.
	BaseDir string
}

// cfg is the active server configuration, initialized at package load time.
var cfg = loadConfig()

// loadConfig reads configuration from PATHTOOLS_* environment variables.
// An invalid platform value logs a warning and falls back to the host
// platform; base directories are validated per call, where a bad value
// surfaces as a tool error.
func loadConfig() *serverConfig {
	return &serverConfig{
		Platform: envPlatform("PATHTOOLS_PLATFORM"),
		BaseDir:  os.Getenv("PATHTOOLS_BASE_DIR"),
	}
}

func envPlatform(key string) string {
	v := os.Getenv(key)
	switch v {
	case "", "posix", "windows":
		return v
	default:
		slog.Warn("invalid platform env var, using host platform", "key", key, "value", v)
		return ""
	}
}

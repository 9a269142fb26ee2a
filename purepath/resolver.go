package purepath

import (
	"errors"
	"fmt"
)

// Sentinel errors for use with errors.Is().
var (
	// ErrInvalidBaseDir indicates a base directory that is not absolute
	// under the resolver's platform.
	ErrInvalidBaseDir = errors.New("base directory must be absolute")

	// ErrUnknownPlatform indicates a platform value outside the
	// supported set.
	ErrUnknownPlatform = errors.New("unknown platform")

	// ErrNilLogger indicates a nil logger was supplied.
	ErrNilLogger = errors.New("logger must not be nil")
)

// Resolver carries the context the path operations run under: the
// platform policy, the base directory used to make relative input
// absolute, and a logger. Resolver values are immutable after New and
// safe for concurrent use.
type Resolver struct {
	platform Platform
	baseDir  string // empty means the cached process working directory
	logger   Logger
}

// Option is a function that configures a Resolver.
type Option func(*resolverConfig) error

// resolverConfig holds configuration collected from options before
// validation.
type resolverConfig struct {
	platform Platform
	baseDir  *string
	logger   Logger
}

// WithPlatform selects the path convention the resolver applies.
// The default is [CurrentPlatform].
func WithPlatform(p Platform) Option {
	return func(cfg *resolverConfig) error {
		if p != Posix && p != Windows {
			return fmt.Errorf("%w: %d", ErrUnknownPlatform, int(p))
		}
		cfg.platform = p
		return nil
	}
}

// WithBaseDir injects the base directory Resolve and Relative anchor
// relative paths to. The directory must be absolute under the resolver's
// platform. Without this option the resolver uses the process working
// directory, read once and cached.
func WithBaseDir(dir string) Option {
	return func(cfg *resolverConfig) error {
		cfg.baseDir = &dir
		return nil
	}
}

// WithLogger sets the logger used for diagnostic output. The default is
// [NopLogger].
func WithLogger(logger Logger) Option {
	return func(cfg *resolverConfig) error {
		if logger == nil {
			return ErrNilLogger
		}
		cfg.logger = logger
		return nil
	}
}

// New creates a Resolver from the given options.
//
// Example:
//
//	r, err := purepath.New(
//	    purepath.WithPlatform(purepath.Windows),
//	    purepath.WithBaseDir(`C:\work`),
//	)
func New(opts ...Option) (*Resolver, error) {
	cfg := &resolverConfig{
		platform: CurrentPlatform(),
		logger:   NopLogger{},
	}
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, fmt.Errorf("purepath: invalid options: %w", err)
		}
	}

	r := &Resolver{platform: cfg.platform, logger: cfg.logger}
	if cfg.baseDir != nil {
		dir := cfg.platform.normalizeSeparators(*cfg.baseDir)
		if !cfg.platform.IsAbsolute(dir) {
			return nil, fmt.Errorf("purepath: %w: %q", ErrInvalidBaseDir, *cfg.baseDir)
		}
		r.baseDir = dir
	}
	return r, nil
}

// Platform returns the policy the resolver was built with.
func (r *Resolver) Platform() Platform {
	return r.platform
}

// base returns the resolver's base directory, falling back to the cached
// process working directory.
func (r *Resolver) base() string {
	if r.baseDir != "" {
		return r.baseDir
	}
	return processWorkingDir()
}

// defaultResolver backs the package-level convenience functions: current
// platform, process working directory, no logging.
var defaultResolver = &Resolver{platform: CurrentPlatform(), logger: NopLogger{}}

// Normalize normalizes path for the current platform using the default
// resolver. See [Resolver.Normalize].
func Normalize(path string) string {
	return defaultResolver.Normalize(path)
}

// Resolve makes path absolute against the process working directory
// using the default resolver. See [Resolver.Resolve].
func Resolve(path string) string {
	return defaultResolver.Resolve(path)
}

// Relative expresses target relative to base using the default resolver.
// See [Resolver.Relative].
func Relative(target, base string) string {
	return defaultResolver.Relative(target, base)
}

package ghash

import (
	"log/slog"
	"os"

	"github.com/joshuapare/hashkit/memguard"
)

// Flag alters table behaviour.
type Flag uint32

const (
	// AllowDups lets Insert add keys that are already present.
	AllowDups Flag = 1 << iota
	// AllowShrink lets removals shrink the bucket array.
	AllowShrink

	isSet
)

// userFlags are the flags callers may set and clear.
const userFlags = AllowDups | AllowShrink

const (
	defaultPoolReserve = 64
	defaultPoolChunk   = 64
)

// Runtime logging of resizes for tables built without a logger, controlled
// by the HASHKIT_LOG_RESIZE env var.
var logResize = os.Getenv("HASHKIT_LOG_RESIZE") != ""

// Config holds the settings a table is created with.
type Config struct {
	Reserve   int
	Flags     Flag
	Logger    *slog.Logger
	Allocator memguard.Allocator
	PoolChunk int
}

// Option adjusts a Config.
type Option func(*Config)

// WithReserve sizes the bucket array for n entries up front and pins that
// size as the table's minimum.
func WithReserve(n int) Option {
	return func(c *Config) { c.Reserve = n }
}

// WithFlags sets the initial flags.
func WithFlags(f Flag) Option {
	return func(c *Config) { c.Flags = f & userFlags }
}

// WithShrink is shorthand for adding AllowShrink.
func WithShrink() Option {
	return func(c *Config) { c.Flags |= AllowShrink }
}

// WithLogger logs resizes and clears at debug level.
func WithLogger(l *slog.Logger) Option {
	return func(c *Config) { c.Logger = l }
}

// WithAllocator charges buckets and entry chunks to a instead of
// memguard.Default.
func WithAllocator(a memguard.Allocator) Option {
	return func(c *Config) { c.Allocator = a }
}

// WithPoolChunk sets the requested number of entries per pool chunk.
func WithPoolChunk(n int) Option {
	return func(c *Config) { c.PoolChunk = n }
}

func buildConfig(opts []Option) Config {
	cfg := Config{PoolChunk: defaultPoolChunk}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Reserve < 0 {
		cfg.Reserve = 0
	}
	if cfg.Logger == nil && logResize {
		cfg.Logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
	return cfg
}

package mempool

import (
	"log/slog"

	"github.com/joshuapare/hashkit/memguard"
)

// Config holds the settings a Pool is created with.
type Config struct {
	Iterable  bool
	Allocator memguard.Allocator
	Tag       string
	Logger    *slog.Logger
}

// Option adjusts a Config.
type Option func(*Config)

// Iterable enables Iter, FindElem and All.
func Iterable() Option {
	return func(c *Config) { c.Iterable = true }
}

// WithAllocator charges chunks to a instead of memguard.Default.
func WithAllocator(a memguard.Allocator) Option {
	return func(c *Config) { c.Allocator = a }
}

// WithTag sets the tag chunks are charged under.
func WithTag(tag string) Option {
	return func(c *Config) { c.Tag = tag }
}

// WithLogger logs chunk growth and release at debug level.
func WithLogger(l *slog.Logger) Option {
	return func(c *Config) { c.Logger = l }
}

package gen

import (
	"log/slog"
	"runtime"
)

// Config holds the global configuration of a compile.
type Config struct {
	// Workers bounds the number of items built concurrently.
	Workers int
	// Header is emitted as a comment at the top of every generated file.
	// Empty means no header.
	Header string
	// Layout places the generated artifacts.
	Layout Layout
	// Logger receives debug records about the compile.
	Logger *slog.Logger
}

// defaults fills the unset fields of c.
func (c *Config) defaults() {
	if c.Workers <= 0 {
		c.Workers = runtime.GOMAXPROCS(0)
	}
	if c.Layout == (Layout{}) {
		c.Layout = DefaultLayout
	}
	if c.Logger == nil {
		c.Logger = slog.Default()
	}
}

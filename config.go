package lispster

import (
	"log"
)

// Config holds the settings shared by every frame that descends from a root
// environment.
type Config struct {
	// MaxDepth limits how deeply evaluation may recurse. Zero means no limit
	// other than the Go stack.
	MaxDepth int

	// Logger receives a trace of every evaluation step when set.
	Logger *log.Logger
}

// DefaultConfig returns a configuration without depth limit and without
// tracing.
func DefaultConfig() *Config {
	return &Config{}
}

func (c *Config) tracef(format string, v ...interface{}) {
	if c.Logger == nil {
		return
	}
	c.Logger.Printf(format, v...)
}

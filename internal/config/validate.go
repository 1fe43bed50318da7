package config

import (
	"fmt"
	"strings"

	"github.com/rickgao/tws-tools/internal/tws"
)

// Validate checks that all values are valid.
func (c *Config) Validate() error {
	if _, err := c.TimeLocation(); err != nil {
		return fmt.Errorf("time.zone %q is not a known zone", c.Time.Zone)
	}

	switch c.Output.Format {
	case "text", "json":
	default:
		return fmt.Errorf("output.format must be text or json, got %q", c.Output.Format)
	}

	// Matched the same way SlogLevel reads it.
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level must be one of debug, info, warn, error, got %q", c.Log.Level)
	}

	secs, err := tws.DurationSeconds(c.Hist.MaxChunk)
	if err != nil {
		return fmt.Errorf("hist.max_chunk %q is not a valid duration", c.Hist.MaxChunk)
	}
	if secs == 0 {
		return fmt.Errorf("hist.max_chunk must be positive, got %q", c.Hist.MaxChunk)
	}

	return nil
}

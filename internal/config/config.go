package config

import (
	"log/slog"
	"strings"
	"time"
)

// Config is the root configuration for twsfmt.
type Config struct {
	Time   TimeConfig   `yaml:"time"`
	Output OutputConfig `yaml:"output"`
	Log    LogConfig    `yaml:"log"`
	Hist   HistConfig   `yaml:"hist"`
}

// TimeConfig selects the zone used for local-time rendering.
type TimeConfig struct {
	Zone string `yaml:"zone"` // IANA name, "UTC" or "Local"
}

// OutputConfig holds CLI output settings.
type OutputConfig struct {
	Format           string `yaml:"format"`            // "text" or "json"
	CompactContracts bool   `yaml:"compact_contracts"` // Comma-separated contract rendering
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

// HistConfig holds historical request planning settings.
type HistConfig struct {
	MaxChunk string `yaml:"max_chunk"` // Duration string (e.g., "1 Y")
	AllHours bool   `yaml:"all_hours"` // Include data outside regular trading hours
}

// SlogLevel returns the configured log level. Unknown values map to info.
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.Log.Level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// TimeLocation resolves the configured zone.
func (c *Config) TimeLocation() (*time.Location, error) {
	if c.Time.Zone == "" || c.Time.Zone == "Local" {
		return time.Local, nil
	}
	return time.LoadLocation(c.Time.Zone)
}

package config

// Default values for optional configuration fields.
const (
	DefaultZone     = "Local"
	DefaultFormat   = "text"
	DefaultLogLevel = "info"
	DefaultMaxChunk = "1 Y"
)

func (c *Config) applyDefaults() {
	if c.Time.Zone == "" {
		c.Time.Zone = DefaultZone
	}
	if c.Output.Format == "" {
		c.Output.Format = DefaultFormat
	}
	if c.Log.Level == "" {
		c.Log.Level = DefaultLogLevel
	}
	if c.Hist.MaxChunk == "" {
		c.Hist.MaxChunk = DefaultMaxChunk
	}
}

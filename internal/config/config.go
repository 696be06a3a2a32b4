package config

// Config holds runtime settings for the PopX CLI.
//
// Fields:
//   - DataDir: directory holding the durable account and session documents.
//   - LogLevel: minimum log level (debug, info, warn, error).
type Config struct {
	DataDir  string
	LogLevel string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DataDir = "popx-data"
	c.LogLevel = "info"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}

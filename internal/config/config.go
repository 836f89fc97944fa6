// Package config assembles runtime settings for the apptrack CLI from
// defaults, an optional JSON file, environment variables and command-line
// flags, in that order of precedence.
package config

// Config holds runtime settings for the apptrack CLI.
//
// Fields:
//   - DBPath: path of the local SQLite file backing the key-value storage.
//   - LogLevel: minimum level for diagnostic logging (debug/info/warn/error).
type Config struct {
	DBPath   string
	LogLevel string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DBPath = "apptrack.db"
	c.LogLevel = "warn"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present), the environment (including a .env file) and
// command-line flags. Later sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}

// Package config handles configuration for the calculator: built-in
// defaults, an optional JSON overlay, and command-line flags, with later
// sources taking precedence.
package config

// Config holds runtime settings for the calculator.
//
// Fields:
//   - StorePath: SQLite path of the local profile store.
//   - BackupDir: directory receiving account backup exports.
//   - HashCredentials: store credentials as bcrypt hashes instead of the
//     browser app's verbatim form. Affects newly written credentials only.
//   - LogLevel: debug | info | warn | error.
type Config struct {
	StorePath       string
	BackupDir       string
	HashCredentials bool
	LogLevel        string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.StorePath = "magicalc.db"
	c.BackupDir = "backups"
	c.HashCredentials = false
	c.LogLevel = "info"
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if a config file is given) and command-line flags. Later
// sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJSON(cfg)
	parseFlags(cfg)
	return cfg
}

package config

import (
	"encoding/json"
	"os"

	"magicalc/internal/flagx"
)

// jsonConfig is the DTO for the optional JSON configuration file:
//
//	{
//	  "store_path": "magicalc.db",
//	  "backup_dir": "backups",
//	  "hash_credentials": false,
//	  "log_level": "info"
//	}
//
// Pointer fields distinguish "absent" from zero values, so a partial file
// overrides only what it names.
type jsonConfig struct {
	StorePath       *string `json:"store_path"`
	BackupDir       *string `json:"backup_dir"`
	HashCredentials *bool   `json:"hash_credentials"`
	LogLevel        *string `json:"log_level"`
}

// parseJSON overlays values from the JSON file named by the -c/-config
// flags, if any. An unreadable or malformed file panics: a config file the
// operator pointed at explicitly must not be silently ignored.
func parseJSON(config *Config) {
	path := flagx.ConfigFileFlag()
	if path == "" {
		return
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	c := &jsonConfig{}
	if err := json.Unmarshal(raw, c); err != nil {
		panic(err)
	}

	if c.StorePath != nil {
		config.StorePath = *c.StorePath
	}
	if c.BackupDir != nil {
		config.BackupDir = *c.BackupDir
	}
	if c.HashCredentials != nil {
		config.HashCredentials = *c.HashCredentials
	}
	if c.LogLevel != nil {
		config.LogLevel = *c.LogLevel
	}
}

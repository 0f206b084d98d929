package config

import (
	"flag"
	"os"

	"magicalc/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags:
//
//	-s string   path to the local profile store (SQLite)
//	-b string   backup export directory
//	-h          store credentials as bcrypt hashes
//	-l string   log level (debug|info|warn|error)
//
// os.Args is first filtered to just these flags so that parsing does not
// collide with flags owned by other components.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-s", "-b", "-h", "-l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.StorePath, "s", config.StorePath, "path to local profile store")
	fs.StringVar(&config.BackupDir, "b", config.BackupDir, "backup export directory")
	fs.BoolVar(&config.HashCredentials, "h", config.HashCredentials, "store credentials as bcrypt hashes")
	fs.StringVar(&config.LogLevel, "l", config.LogLevel, "log level")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}

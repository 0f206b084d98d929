package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "magicalc.db", c.StorePath)
	assert.Equal(t, "backups", c.BackupDir)
	assert.False(t, c.HashCredentials)
	assert.Equal(t, "info", c.LogLevel)
}

func TestLoadConfig_UsesDefaultsWithoutSources(t *testing.T) {
	origArgs := os.Args
	defer func() { os.Args = origArgs }()
	os.Args = []string{"magicalc"}

	cfg := LoadConfig()

	require.NotNil(t, cfg)
	assert.Equal(t, "magicalc.db", cfg.StorePath)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadConfig_FlagsOverrideDefaults(t *testing.T) {
	origArgs := os.Args
	defer func() { os.Args = origArgs }()
	os.Args = []string{"magicalc", "-s", "alt.db", "-l", "debug", "-h"}

	cfg := LoadConfig()

	assert.Equal(t, "alt.db", cfg.StorePath)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.True(t, cfg.HashCredentials)
}

func TestLoadConfig_JSONOverlayPartial(t *testing.T) {
	origArgs := os.Args
	defer func() { os.Args = origArgs }()

	path := filepath.Join(t.TempDir(), "conf.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"backup_dir": "exports"}`), 0o600))

	os.Args = []string{"magicalc", "-c", path}

	cfg := LoadConfig()

	assert.Equal(t, "exports", cfg.BackupDir)
	// Fields absent from the file keep their defaults.
	assert.Equal(t, "magicalc.db", cfg.StorePath)
}

func TestLoadConfig_FlagsBeatJSON(t *testing.T) {
	origArgs := os.Args
	defer func() { os.Args = origArgs }()

	path := filepath.Join(t.TempDir(), "conf.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"store_path": "from-json.db"}`), 0o600))

	os.Args = []string{"magicalc", "-c", path, "-s", "from-flag.db"}

	cfg := LoadConfig()

	assert.Equal(t, "from-flag.db", cfg.StorePath)
}

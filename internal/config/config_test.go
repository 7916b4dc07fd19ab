package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.toml"))
	assert.NoError(t, err)

	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "whiteboard.db", cfg.Database.Path)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, 60, cfg.JWT.AccessDurationMin)
	assert.Empty(t, cfg.JWT.Secret)
}

func TestLoadConfigFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[server]
port = 9090

[database]
path = "/tmp/wb.db"

[logging]
level = "debug"

[jwt]
secret = "file-secret"
access_duration_min = 15

[seed]
path = "seed.toml"
`
	assert.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := LoadConfig(path)
	assert.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "0.0.0.0", cfg.Server.Host) // default survives partial files
	assert.Equal(t, "/tmp/wb.db", cfg.Database.Path)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "file-secret", cfg.JWT.Secret)
	assert.Equal(t, 15, cfg.JWT.AccessDurationMin)
	assert.Equal(t, "seed.toml", cfg.Seed.Path)
}

func TestLoadConfigEnvOverride(t *testing.T) {
	t.Setenv("WB_SERVER_PORT", "7070")
	t.Setenv("WB_LOGGING_LEVEL", "warn")

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.toml"))
	assert.NoError(t, err)

	assert.Equal(t, 7070, cfg.Server.Port)
	assert.Equal(t, "warn", cfg.Logging.Level)
}

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadDefaults(t *testing.T) {
	path := writeConfig(t, "app_secret: s3cret\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, StorageMemory, cfg.Storage.Driver)
	assert.Equal(t, 10, cfg.Workers.Size)
	assert.Equal(t, 24*time.Hour, cfg.TokenTTL)
	assert.Equal(t, "8000", cfg.Server.Port)
}

func TestLoadEnvOverrides(t *testing.T) {
	path := writeConfig(t, "app_secret: s3cret\nworkers:\n  size: 4\n")
	t.Setenv("WORKERS_SIZE", "7")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 7, cfg.Workers.Size)
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"postgres without dsn", "app_secret: x\nstorage:\n  driver: postgres\n"},
		{"unknown driver", "app_secret: x\nstorage:\n  driver: redis\n"},
		{"no workers", "app_secret: x\nworkers:\n  size: -1\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body))
			assert.Error(t, err)
		})
	}
	_, err := Load(filepath.Join(t.TempDir(), "missing.yml"))
	assert.Error(t, err)
}

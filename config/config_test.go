package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "shop", cfg.App.Name)
	assert.True(t, cfg.IsDevelopment())
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, 3, cfg.Database.Retry.MaxAttempts)
	assert.Equal(t, 100*time.Millisecond, cfg.Database.Retry.InitialDelay)
	assert.Equal(t, "log", cfg.Outbox.Publisher)
	assert.Equal(t, 2*time.Second, cfg.Outbox.PollInterval)
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := []byte(`
app:
  env: production
database:
  driver: postgres
  port: "5432"
outbox:
  publisher: redis
  redis:
    channel: orders
`)
	require.NoError(t, os.WriteFile(path, content, 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.True(t, cfg.IsProduction())
	assert.Equal(t, "postgres", cfg.Database.Driver)
	assert.Equal(t, "5432", cfg.Database.Port)
	assert.Equal(t, "redis", cfg.Outbox.Publisher)
	assert.Equal(t, "orders", cfg.Outbox.Redis.Channel)
	assert.Equal(t, "localhost:6379", cfg.Outbox.Redis.Addr)
}

func TestEnvOverride(t *testing.T) {
	t.Setenv("SHOP_DATABASE_DRIVER", "mysql")
	t.Setenv("SHOP_SERVER_PORT", "9090")

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("app:\n  name: shop\n"), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "mysql", cfg.Database.Driver)
	assert.Equal(t, "9090", cfg.Server.Port)
}

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.GRPCAddr)
	assert.Equal(t, ":8081", cfg.HTTPAddr)
	assert.Equal(t, "dev-token", cfg.APIToken)
	assert.True(t, cfg.DB.Enabled)
	assert.Equal(t, "", cfg.Redis.Addr)
	assert.Equal(t, 24*time.Hour, cfg.Redis.LedgerTTL)
	assert.Equal(t,
		"host=localhost port=5432 user=postgres password=postgres dbname=lifeplan sslmode=disable",
		cfg.DB.ConnectionString())
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	t.Setenv("API_TOKEN", "secret")
	t.Setenv("DB_HOST", "db")
	t.Setenv("DB_NAME", "plans")
	t.Setenv("REDIS_ADDR", "redis:6379")
	t.Setenv("REDIS_LEDGER_TTL", "2h")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "secret", cfg.APIToken)
	assert.Equal(t, "redis:6379", cfg.Redis.Addr)
	assert.Equal(t, 2*time.Hour, cfg.Redis.LedgerTTL)
	assert.Contains(t, cfg.DB.ConnectionString(), "host=db")
	assert.Contains(t, cfg.DB.ConnectionString(), "dbname=plans")
}

func TestLoad_ExplicitConnectionString(t *testing.T) {
	t.Setenv("DB_CONN_STR", "postgres://u:p@h/db")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "postgres://u:p@h/db", cfg.DB.ConnectionString())
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := []byte(`
grpc_addr: ":9090"
log:
  level: debug
  encoding: console
db:
  enabled: false
`)
	require.NoError(t, os.WriteFile(path, content, 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.GRPCAddr)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Encoding)
	assert.False(t, cfg.DB.Enabled)
}

func TestLoad_MissingFileFallsBackToDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.GRPCAddr)
}

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yml"))
	require.NoError(t, err)

	assert.Equal(t, 8000, cfg.Port)
	assert.Equal(t, "development", cfg.Env)
	assert.True(t, cfg.IsDev())
	assert.False(t, cfg.DatabaseConfigured())
	assert.Equal(t, 60*time.Minute, cfg.TokenTTL())
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `
port: 9000
env: production
database:
  url: mongodb://localhost:27017
  name: affiliates
admin_secret: s3cret
jwt_secret: signing-key
token_ttl_minutes: 30
allowed_origins:
  - example.com
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9000, cfg.Port)
	assert.False(t, cfg.IsDev())
	assert.True(t, cfg.DatabaseConfigured())
	assert.Equal(t, "mongodb://localhost:27017", cfg.Database.URL)
	assert.Equal(t, "affiliates", cfg.Database.Name)
	assert.Equal(t, "s3cret", cfg.AdminSecret)
	assert.Equal(t, 30*time.Minute, cfg.TokenTTL())
	assert.Equal(t, []string{"example.com"}, cfg.AllowedOrigins)
}

func TestLoadLegacyKeys(t *testing.T) {
	path := writeConfig(t, `
node_env: production
database_url: mongodb://db:27017
database_name: casino
jwtsecret: legacy-key
access_token_expire: 120
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.Env)
	assert.Equal(t, "mongodb://db:27017", cfg.Database.URL)
	assert.Equal(t, "casino", cfg.Database.Name)
	assert.Equal(t, "legacy-key", cfg.JWTSecret)
	assert.Equal(t, 120*time.Minute, cfg.TokenTTL())
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("PORT", "8081")
	t.Setenv("DATABASE_URL", "mongodb://env:27017")
	t.Setenv("DATABASE_NAME", "envdb")
	t.Setenv("ADMIN_SECRET", "env-secret")
	t.Setenv("ACCESS_TOKEN_EXPIRE", "15")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yml"))
	require.NoError(t, err)

	assert.Equal(t, 8081, cfg.Port)
	assert.Equal(t, "mongodb://env:27017", cfg.Database.URL)
	assert.Equal(t, "envdb", cfg.Database.Name)
	assert.Equal(t, "env-secret", cfg.AdminSecret)
	assert.Equal(t, 15*time.Minute, cfg.TokenTTL())
	assert.True(t, cfg.DatabaseConfigured())
}

func TestLoadInvalidPort(t *testing.T) {
	path := writeConfig(t, "port: 123456\n")
	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadUnknownKeyRejected(t *testing.T) {
	path := writeConfig(t, "bogus_key: true\n")
	_, err := Load(path)
	assert.Error(t, err)
}

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testYAML = `
app:
  port: 8080
  gin_mode: test
  development: true
  cors_origins:
    - http://localhost:3000

database:
  dsn: "host=localhost dbname=jobportal"

redis:
  addr: "localhost:6379"
  db: 1

jwt:
  secret: "file-secret"
  issuer: "jobportal-test"
  token_ttl: 168h

otp:
  ttl: 5m

smtp:
  host: "smtp.example.com"
  port: 587
  from: "no-reply@example.com"

casbin:
  model_path: "config/rbac_model.conf"

job_cache:
  ttl: 10m
`

func writeConfig(t *testing.T) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(testYAML), 0o600))
	t.Setenv("CONFIG_PATH", path)
}

func TestLoad(t *testing.T) {
	writeConfig(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "test", cfg.GinMode)
	assert.True(t, cfg.Development)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.CORSOrigins)
	assert.Equal(t, 7*24*time.Hour, cfg.TokenTTL)
	assert.Equal(t, 5*time.Minute, cfg.OTPTTL)
	assert.Equal(t, 10*time.Minute, cfg.JobCacheTTL)
	assert.Equal(t, "file-secret", cfg.JWTSecret)
	assert.Equal(t, "smtp.example.com", cfg.SMTPHost)
	assert.Equal(t, 1, cfg.RedisDB)
}

func TestLoadEnvOverrides(t *testing.T) {
	writeConfig(t)
	t.Setenv("JWT_SECRET", "env-secret")
	t.Setenv("DATABASE_DSN", "host=prod dbname=portal")
	t.Setenv("PORT", "9090")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "env-secret", cfg.JWTSecret)
	assert.Equal(t, "host=prod dbname=portal", cfg.DSN)
	assert.Equal(t, "9090", cfg.Port)
}

func TestLoadMissingFile(t *testing.T) {
	t.Setenv("CONFIG_PATH", "/nonexistent/config.yml")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoadBadDuration(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	bad := `
jwt:
  token_ttl: soon
otp:
  ttl: 5m
`
	require.NoError(t, os.WriteFile(path, []byte(bad), 0o600))
	t.Setenv("CONFIG_PATH", path)

	_, err := Load()
	assert.Error(t, err)
}

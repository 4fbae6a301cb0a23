package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const validConfig = `
server:
  port: 9090
database:
  dsn: "user:pass@tcp(localhost:3306)/listings?parseTime=true"
webhook:
  token: "hook-token"
jwt:
  secret: "jwt-secret"
admin:
  email: "admin@example.com"
  password_hash: "$2a$10$hash"
logging:
  level: "DEBUG"
`

func TestLoadConfig(t *testing.T) {
	path := writeConfigFile(t, validConfig)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "user:pass@tcp(localhost:3306)/listings?parseTime=true", cfg.Database.DSN)
	assert.Equal(t, "hook-token", cfg.Webhook.Token)
	assert.Equal(t, "jwt-secret", cfg.JWT.Secret)
	assert.Equal(t, "admin@example.com", cfg.Admin.Email)
	assert.Equal(t, "DEBUG", cfg.Logging.Level)
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	path := writeConfigFile(t, validConfig)

	t.Setenv("SERVER_PORT", "7070")
	t.Setenv("WEBHOOK_TOKEN", "env-token")
	t.Setenv("JWT_SECRET", "env-secret")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 7070, cfg.Server.Port)
	assert.Equal(t, "env-token", cfg.Webhook.Token)
	assert.Equal(t, "env-secret", cfg.JWT.Secret)
}

func TestLoadConfigDefaults(t *testing.T) {
	path := writeConfigFile(t, `
database:
  dsn: "user:pass@tcp(localhost:3306)/listings"
jwt:
  secret: "jwt-secret"
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "INFO", cfg.Logging.Level)
	assert.Equal(t, "", cfg.Webhook.Token)
}

func TestLoadConfigValidation(t *testing.T) {
	t.Run("missing dsn", func(t *testing.T) {
		path := writeConfigFile(t, `
jwt:
  secret: "jwt-secret"
`)
		_, err := LoadConfig(path)
		assert.ErrorContains(t, err, "DATABASE_DSN is required")
	})

	t.Run("missing jwt secret", func(t *testing.T) {
		path := writeConfigFile(t, `
database:
  dsn: "user:pass@tcp(localhost:3306)/listings"
`)
		_, err := LoadConfig(path)
		assert.ErrorContains(t, err, "JWT_SECRET is required")
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Error(t, err)
	})

	t.Run("bad port override", func(t *testing.T) {
		path := writeConfigFile(t, validConfig)
		t.Setenv("SERVER_PORT", "not-a-port")
		_, err := LoadConfig(path)
		assert.ErrorContains(t, err, "invalid SERVER_PORT")
	})
}

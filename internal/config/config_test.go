package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testConfigContent = `
[development]
host = "localhost"
port = 9000
log_level = "trace"
log_to_stdout = true
postgres_host = "localhost"
postgres_port = "5432"
postgres_db_name = "portfolio_dev"
redis_host = "localhost"
redis_port = "6379"
login_rate_limit_allowed_per_min = 15
contact_rate_limit_allowed_per_min = 5
contact_recipient_email = "dev@example.com"

[production]
host = "0.0.0.0"
port = 8080
log_level = "debug"
logs_path = "/var/log/portfolio/service.log"
sentry_enabled = true
postgres_host = "db"
postgres_port = "5432"
postgres_db_name = "portfolio"
redis_host = "redis"
redis_port = "6379"
prometheus_metrics_host = "0.0.0.0"
prometheus_metrics_port = "2112"
login_rate_limit_allowed_per_min = 10
contact_rate_limit_allowed_per_min = 3
contact_recipient_email = "me@velimirb.dev"
mailgun_domain = "mg.velimirb.dev"
`

func writeTestConfig(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(testConfigContent), 0o600))
	return path
}

func TestLoad_Development(t *testing.T) {
	cfg, err := Load("development", writeTestConfig(t))
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, "localhost", cfg.Host)
	assert.Equal(t, 9000, cfg.Port)
	assert.Equal(t, "portfolio_dev", cfg.PostgresDBName)
	assert.Equal(t, 15, cfg.LoginRateLimitAllowedPerMin)
	assert.True(t, cfg.LogToStdout)
	assert.False(t, cfg.SentryEnabled)
}

func TestLoad_Production(t *testing.T) {
	cfg, err := Load("prod", writeTestConfig(t))
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "mg.velimirb.dev", cfg.MailgunDomain)
	assert.Equal(t, "me@velimirb.dev", cfg.ContactRecipientEmail)
	assert.True(t, cfg.SentryEnabled)
}

func TestLoad_UnknownEnv(t *testing.T) {
	_, err := Load("staging", writeTestConfig(t))
	assert.ErrorContains(t, err, "unknown env")
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load("dev", filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}

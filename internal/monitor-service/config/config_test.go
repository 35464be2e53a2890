package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	envFile := filepath.Join(t.TempDir(), ".env")
	content := `POSTGRES_HOST=db
POSTGRES_PORT=5432
POSTGRES_USER=monitor
POSTGRES_PASSWORD=secret
POSTGRES_DB=monitor
REDIS_HOST=cache
REDIS_PORT=6379
KAFKA_BROKERS=k1:9092,k2:9092
ELASTICSEARCH_ADDRESSES=http://es:9200
MAIL_EMAIL=alerts@example.com
MAIL_PASSWORD=pw
MAIL_HOST=smtp.example.com
MAIL_PORT=587
FAILURE_THRESHOLD=3
`
	require.NoError(t, os.WriteFile(envFile, []byte(content), 0o600))
	for _, key := range []string{"POSTGRES_HOST", "POSTGRES_PORT", "POSTGRES_USER", "POSTGRES_PASSWORD", "POSTGRES_DB",
		"REDIS_HOST", "REDIS_PORT", "KAFKA_BROKERS", "ELASTICSEARCH_ADDRESSES",
		"MAIL_EMAIL", "MAIL_PASSWORD", "MAIL_HOST", "MAIL_PORT", "FAILURE_THRESHOLD"} {
		// godotenv never overrides variables that are already set
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}

	cfg, err := LoadConfig(envFile)
	require.NoError(t, err)

	assert.Equal(t, "db", cfg.Postgres.Host)
	assert.Equal(t, 50, cfg.Postgres.MaxOpenConns)
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.Kafka.Brokers)
	assert.Equal(t, "monitor.metrics", cfg.Kafka.MetricTopic)
	assert.Equal(t, 10*time.Minute, cfg.Redis.CacheTTL)
	assert.Equal(t, 3, cfg.Scheduler.FailureThreshold)
	assert.Equal(t, 24*time.Hour, cfg.Scheduler.EmailCooldown)
	assert.Equal(t, 500*time.Millisecond, cfg.Scheduler.SettleDelay)
	assert.Equal(t, 30*time.Second, cfg.Scheduler.ProbeTimeout)
	assert.Equal(t, "0 3 * * *", cfg.Scheduler.HousekeepingSchedule)
	assert.Equal(t, 720*time.Hour, cfg.Scheduler.MetricRetention)
	assert.Equal(t, "API Monitor", cfg.Mail.FromName)
}

func TestLoadConfig_MissingRequired(t *testing.T) {
	t.Setenv("POSTGRES_HOST", "")
	require.NoError(t, os.Unsetenv("POSTGRES_HOST"))

	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.env"))
	assert.Error(t, err)
}

package config

import (
	"bytes"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "prod", cfg.Env)
	assert.Equal(t, uint16(8080), cfg.HTTP.Port)
	assert.Equal(t, 15*time.Second, cfg.HTTP.ReadTimeout)
	assert.Equal(t, int64(32<<20), cfg.HTTP.MaxUploadBytes)
	assert.False(t, cfg.Psql.Enabled)
	assert.Equal(t, "postgres", cfg.Psql.Addr.Scheme)
	assert.False(t, cfg.AMQP.Enabled())
	assert.Equal(t, "campaign-lens.events", cfg.AMQP.Exchange)
	assert.False(t, cfg.Trace.Stdout)
	assert.Equal(t, 1.0, cfg.Trace.SampleRatio)
	assert.Equal(t, 4, cfg.Ingest.Concurrency)
	assert.Equal(t, 5*time.Second, cfg.Psql.PingTimeout)
	assert.Equal(t, slog.LevelInfo, cfg.Log.SlogLevel())
	assert.Equal(t, "text", cfg.Log.SlogFormat())
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("ENV", "dev")
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "JSON")
	t.Setenv("PSQL_ENABLED", "true")
	t.Setenv("PSQL_ADDRESS", "postgres://u:p@db:5432/lens")
	t.Setenv("AMQP_URL", "amqp://guest:guest@mq:5672/")
	t.Setenv("INGEST_CONCURRENCY", "8")
	t.Setenv("INGEST_UPLOAD_RATE", "0")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "dev", cfg.Env)
	assert.Equal(t, uint16(9090), cfg.HTTP.Port)
	assert.Equal(t, slog.LevelDebug, cfg.Log.SlogLevel())
	assert.Equal(t, "json", cfg.Log.SlogFormat())
	assert.True(t, cfg.Psql.Enabled)
	assert.Equal(t, "db:5432", cfg.Psql.Addr.Host)
	assert.True(t, cfg.AMQP.Enabled())
	assert.Equal(t, 8, cfg.Ingest.Concurrency)
	assert.Zero(t, cfg.Ingest.UploadRate)
}

func TestLoadInvalid(t *testing.T) {
	t.Setenv("HTTP_PORT", "not-a-port")
	_, err := Load()
	assert.Error(t, err)
}

func TestLoggerLevels(t *testing.T) {
	tests := []struct {
		level string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"WARN", slog.LevelWarn},
		{" error ", slog.LevelError},
		{"info+2", slog.LevelInfo + 2},
		{"loud", slog.LevelInfo},
		{"", slog.LevelInfo},
	}
	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			t.Setenv("LOG_LEVEL", tt.level)
			cfg, err := Load()
			require.NoError(t, err)
			assert.Equal(t, tt.want, cfg.Log.SlogLevel())
		})
	}
}

func TestLoggerHandler(t *testing.T) {
	var buf bytes.Buffer
	t.Setenv("LOG_FORMAT", "json")
	cfg, err := Load()
	require.NoError(t, err)

	slog.New(cfg.Log.Handler(&buf)).Info("hello", slog.Int("n", 1))
	assert.Contains(t, buf.String(), `"msg":"hello"`)
	assert.Contains(t, buf.String(), `"n":1`)
}

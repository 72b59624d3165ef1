package config

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFromEnvDefaults(t *testing.T) {
	for _, k := range []string{"PORT", "HTTP_TIMEOUT_SECONDS", "LOG_LEVEL", "RECORDS_CSV", "RECORDS_URL", "SELECT_N"} {
		t.Setenv(k, "")
	}
	cfg := FromEnv()
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 15*time.Second, cfg.HTTPTimeout)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
	assert.Equal(t, 2, cfg.SelectN)
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("HTTP_TIMEOUT_SECONDS", "3")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("RECORDS_CSV", " data/marketing.csv ")
	t.Setenv("SELECT_N", "5")

	cfg := FromEnv()
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, 3*time.Second, cfg.HTTPTimeout)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
	assert.Equal(t, "data/marketing.csv", cfg.RecordsCSV)
	assert.Equal(t, 5, cfg.SelectN)
}

func TestFromEnvRejectsNonPositiveN(t *testing.T) {
	t.Setenv("SELECT_N", "-1")
	assert.Equal(t, 2, FromEnv().SelectN)
}

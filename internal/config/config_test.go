package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "data/iraste_nxt_cas.csv", cfg.CASFile)
	assert.Equal(t, "data/iraste_nxt_casdms.csv", cfg.CASDMSFile)
	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, 0.01, cfg.SampleFraction)
	assert.Equal(t, int64(42), cfg.SampleSeed)
}

func TestLoad_CustomEnv(t *testing.T) {
	t.Setenv("CAS_FILE", "/tmp/cas.csv")
	t.Setenv("CASDMS_FILE", "/tmp/casdms.csv")
	t.Setenv("HTTP_ADDR", ":9090")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "text")
	t.Setenv("SHUTDOWN_TIMEOUT", "30s")
	t.Setenv("SAMPLE_FRACTION", "0.5")
	t.Setenv("SAMPLE_SEED", "7")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "/tmp/cas.csv", cfg.CASFile)
	assert.Equal(t, "/tmp/casdms.csv", cfg.CASDMSFile)
	assert.Equal(t, ":9090", cfg.HTTPAddr)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, 30*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, 0.5, cfg.SampleFraction)
	assert.Equal(t, int64(7), cfg.SampleSeed)
}

func TestLoad_InvalidShutdownTimeout(t *testing.T) {
	t.Setenv("SHUTDOWN_TIMEOUT", "not-a-duration")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SHUTDOWN_TIMEOUT")
}

func TestLoad_NegativeShutdownTimeout(t *testing.T) {
	t.Setenv("SHUTDOWN_TIMEOUT", "-1s")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SHUTDOWN_TIMEOUT")
}

func TestLoad_InvalidSampleFraction(t *testing.T) {
	tests := []struct {
		name  string
		value string
	}{
		{"not a number", "abc"},
		{"zero", "0"},
		{"negative", "-0.01"},
		{"above one", "1.5"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("SAMPLE_FRACTION", tt.value)
			_, err := Load()
			require.Error(t, err)
			assert.Contains(t, err.Error(), "SAMPLE_FRACTION")
		})
	}
}

func TestLoad_InvalidSampleSeed(t *testing.T) {
	t.Setenv("SAMPLE_SEED", "not-a-seed")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SAMPLE_SEED")
}

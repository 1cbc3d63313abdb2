package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds all service settings, populated from environment variables.
type Config struct {
	CASFile    string
	CASDMSFile string

	HTTPAddr        string
	LogLevel        string
	LogFormat       string
	ShutdownTimeout time.Duration

	// Deterministic sampling applied after dedup and null-dropping.
	SampleFraction float64
	SampleSeed     int64
}

// Load reads configuration from environment variables, applying defaults where unset.
func Load() (*Config, error) {
	shutdownTimeout, err := parseShutdownTimeout()
	if err != nil {
		return nil, err
	}

	fraction, err := parseSampleFraction()
	if err != nil {
		return nil, err
	}

	seed, err := parseSampleSeed()
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		CASFile:         envOrDefault("CAS_FILE", "data/iraste_nxt_cas.csv"),
		CASDMSFile:      envOrDefault("CASDMS_FILE", "data/iraste_nxt_casdms.csv"),
		HTTPAddr:        envOrDefault("HTTP_ADDR", ":8080"),
		LogLevel:        envOrDefault("LOG_LEVEL", "info"),
		LogFormat:       envOrDefault("LOG_FORMAT", "json"),
		ShutdownTimeout: shutdownTimeout,
		SampleFraction:  fraction,
		SampleSeed:      seed,
	}

	if cfg.CASFile == "" {
		return nil, errors.New("CAS_FILE is required")
	}
	if cfg.CASDMSFile == "" {
		return nil, errors.New("CASDMS_FILE is required")
	}

	return cfg, nil
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func parseShutdownTimeout() (time.Duration, error) {
	s := envOrDefault("SHUTDOWN_TIMEOUT", "10s")
	d, err := time.ParseDuration(s)
	if err != nil || d <= 0 {
		return 0, errors.New("invalid SHUTDOWN_TIMEOUT")
	}
	return d, nil
}

func parseSampleFraction() (float64, error) {
	s := envOrDefault("SAMPLE_FRACTION", "0.01")
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f <= 0 || f > 1 {
		return 0, fmt.Errorf("invalid SAMPLE_FRACTION %q: must be in (0, 1]", s)
	}
	return f, nil
}

func parseSampleSeed() (int64, error) {
	s := envOrDefault("SAMPLE_SEED", "42")
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid SAMPLE_SEED %q", s)
	}
	return n, nil
}

// Package config loads service settings from the environment. A .env file in
// the working directory, when present, is loaded first without overriding
// variables that are already set.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Store backends.
const (
	BackendMemory   = "memory"
	BackendPostgres = "postgres"
	BackendRedis    = "redis"
)

// Config holds everything cmd/api needs to start.
type Config struct {
	HTTPAddr        string
	TLSCert         string
	TLSKey          string
	ShutdownTimeout time.Duration

	StoreBackend string
	DatabaseURL  string
	RedisAddr    string

	LogLevel string

	TraceExporter    string
	OTelHost         string
	TraceProbability float64
}

// Load reads the .env file (if any) and the environment.
func Load() (Config, error) {
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}
	return FromEnv(os.Getenv)
}

// FromEnv builds a Config from a lookup function, applying defaults.
func FromEnv(getenv func(string) string) (Config, error) {
	get := func(key, fallback string) string {
		if v := getenv(key); v != "" {
			return v
		}
		return fallback
	}

	cfg := Config{
		HTTPAddr:      get("HTTP_ADDR", ":5000"),
		TLSCert:       getenv("TLS_CERT"),
		TLSKey:        getenv("TLS_KEY"),
		StoreBackend:  get("STORE_BACKEND", BackendMemory),
		DatabaseURL:   getenv("DATABASE_URL"),
		RedisAddr:     get("REDIS_ADDR", "localhost:6379"),
		LogLevel:      get("LOG_LEVEL", "info"),
		TraceExporter: get("TRACE_EXPORTER", "none"),
		OTelHost:      get("OTEL_HOST", "localhost:4317"),
	}

	var err error
	if cfg.ShutdownTimeout, err = time.ParseDuration(get("SHUTDOWN_TIMEOUT", "10s")); err != nil {
		return Config{}, fmt.Errorf("SHUTDOWN_TIMEOUT: %w", err)
	}
	if cfg.TraceProbability, err = strconv.ParseFloat(get("TRACE_PROBABILITY", "1"), 64); err != nil {
		return Config{}, fmt.Errorf("TRACE_PROBABILITY: %w", err)
	}
	if cfg.TraceProbability < 0 || cfg.TraceProbability > 1 {
		return Config{}, fmt.Errorf("TRACE_PROBABILITY must be within [0, 1], got %v", cfg.TraceProbability)
	}

	switch cfg.StoreBackend {
	case BackendMemory, BackendRedis:
	case BackendPostgres:
		if cfg.DatabaseURL == "" {
			return Config{}, errors.New("DATABASE_URL is required for the postgres backend")
		}
	default:
		return Config{}, fmt.Errorf("unknown STORE_BACKEND %q", cfg.StoreBackend)
	}

	if (cfg.TLSCert == "") != (cfg.TLSKey == "") {
		return Config{}, errors.New("TLS_CERT and TLS_KEY must be set together")
	}
	return cfg, nil
}

// TLS reports whether the server should listen with TLS.
func (c Config) TLS() bool {
	return c.TLSCert != "" && c.TLSKey != ""
}

package config

import (
	"fmt"
	"os"
	"time"
)

// Backend selects the durable key-value implementation.
type Backend string

const (
	BackendMemory Backend = "memory"
	BackendFile   Backend = "file"
	BackendSQLite Backend = "sqlite"
)

// Config carries the runtime configuration for the mock ledger service.
type Config struct {
	HTTPPort     string
	StoreBackend Backend
	DataDir      string
	DatabasePath string
	FXBaseURL    string
	FXAccessKey  string
	// Latency is the artificial delay inserted per ledger operation to
	// simulate network round-trip time.
	Latency time.Duration
}

// Load reads configuration from the environment, applying defaults.
func Load() (*Config, error) {
	latency, err := getEnvDuration("LEDGER_LATENCY", 0)
	if err != nil {
		return nil, err
	}

	backend := Backend(getEnvString("STORE_BACKEND", string(BackendFile)))
	switch backend {
	case BackendMemory, BackendFile, BackendSQLite:
	default:
		return nil, fmt.Errorf("invalid STORE_BACKEND: %q", backend)
	}

	return &Config{
		HTTPPort:     getEnvString("HTTP_PORT", "8080"),
		StoreBackend: backend,
		DataDir:      getEnvString("DATA_DIR", "data"),
		DatabasePath: getEnvString("DATABASE_PATH", "walletdash.db"),
		FXBaseURL:    getEnvString("FX_BASE_URL", "https://api.exchangerate.host"),
		FXAccessKey:  getEnvString("FX_ACCESS_KEY", ""),
		Latency:      latency,
	}, nil
}

func getEnvString(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	if value := os.Getenv(key); value != "" {
		duration, err := time.ParseDuration(value)
		if err != nil {
			return 0, fmt.Errorf("invalid duration for %s: %q (%w)", key, value, err)
		}
		return duration, nil
	}
	return defaultValue, nil
}

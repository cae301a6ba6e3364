package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/lost-woods/pokerdeck/src/rng"
)

type Config struct {
	Port           string
	APIKey         string
	HealthInterval time.Duration
	Serial         rng.SerialConfig
}

// Load reads the server settings from the environment, after merging an
// optional .env file from the working directory.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Port:           "777",
		APIKey:         os.Getenv("API_KEY"),
		HealthInterval: 10_000 * time.Millisecond,
	}

	if port := os.Getenv("PORT"); port != "" {
		n, err := strconv.Atoi(port)
		if err != nil || n < 1 || n > 65535 {
			return nil, fmt.Errorf("invalid PORT: %q", port)
		}
		cfg.Port = port
	}

	if msStr := os.Getenv("RNG_HEALTH_INTERVAL"); msStr != "" {
		ms, err := strconv.Atoi(msStr)
		if err != nil || ms <= 0 {
			return nil, fmt.Errorf("invalid RNG_HEALTH_INTERVAL: %q", msStr)
		}
		cfg.HealthInterval = time.Duration(ms) * time.Millisecond
	}

	// The hardware RNG is optional; without a device the system CSPRNG is used.
	cfg.Serial.Device = os.Getenv("SERIAL_DEVICE_NAME")
	if cfg.Serial.Device == "" {
		return cfg, nil
	}

	baudStr := os.Getenv("SERIAL_BAUD_RATE")
	baud, err := strconv.Atoi(baudStr)
	if err != nil || baud <= 0 {
		return nil, fmt.Errorf("invalid SERIAL_BAUD_RATE: %q", baudStr)
	}
	cfg.Serial.Baud = baud

	timeoutStr := os.Getenv("SERIAL_READ_TIMEOUT")
	timeoutMs, err := strconv.Atoi(timeoutStr)
	if err != nil || timeoutMs < 0 {
		return nil, fmt.Errorf("invalid SERIAL_READ_TIMEOUT: %q", timeoutStr)
	}
	cfg.Serial.ReadTimeout = time.Duration(timeoutMs) * time.Millisecond

	return cfg, nil
}

package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds environment-driven configuration.
type Config struct {
	Addr string
	// DatabaseURL is optional; when empty the app falls back to the
	// in-memory credential repository.
	DatabaseURL string
	// PaymentDelay is how long the simulated payment step takes.
	PaymentDelay time.Duration
}

// Load reads configuration from environment variables.
func Load() Config {
	addr := os.Getenv("GREEN_BASKET_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	delay := 2000 * time.Millisecond
	if v := os.Getenv("GREEN_BASKET_PAYMENT_DELAY_MS"); v != "" {
		if ms, err := strconv.Atoi(v); err == nil && ms >= 0 {
			delay = time.Duration(ms) * time.Millisecond
		}
	}

	return Config{
		Addr:         addr,
		DatabaseURL:  os.Getenv("DATABASE_URL"),
		PaymentDelay: delay,
	}
}

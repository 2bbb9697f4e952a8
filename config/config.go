package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds everything the client reads from the environment.
// Loaded once at startup; values never change at runtime.
type Config struct {
	ServerBaseURL string
	WSURL         string

	TenantID       uint
	RestaurantID   uint
	TableCode      string
	KitchenStation string

	// Poll/push tuning. Poll is the authoritative resync; push events
	// only lower latency.
	PollInterval time.Duration
	WSMaxRetries int
	WSRetryDelay time.Duration

	// Path of the local sqlite store (cart, token, cached profile).
	StorePath string

	// Elapsed-minute thresholds for color-coded urgency.
	WarningAfterMin int
	UrgentAfterMin  int
}

func Load() Config {
	return Config{
		ServerBaseURL:   getEnv("SERVER_BASE_URL", "http://localhost:8080"),
		WSURL:           getEnv("WS_URL", "ws://localhost:8080/ws"),
		TenantID:        getEnvUint("TENANT_ID", 1),
		RestaurantID:    getEnvUint("RESTAURANT_ID", 1),
		TableCode:       getEnv("TABLE_CODE", ""),
		KitchenStation:  getEnv("KITCHEN_STATION", "main"),
		PollInterval:    getEnvDuration("POLL_INTERVAL", 10*time.Second),
		WSMaxRetries:    getEnvInt("WS_MAX_RETRIES", 5),
		WSRetryDelay:    getEnvDuration("WS_RETRY_DELAY", 3*time.Second),
		StorePath:       getEnv("STORE_PATH", "restaurant_client.db"),
		WarningAfterMin: getEnvInt("WARNING_AFTER_MIN", 10),
		UrgentAfterMin:  getEnvInt("URGENT_AFTER_MIN", 20),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvUint(key string, fallback uint) uint {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseUint(v, 10, 32); err == nil {
			return uint(n)
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}

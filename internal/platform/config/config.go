package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Server captures the process level configuration.
type Server struct {
	Addr string

	// LogLevel is one of debug, info, warn, error.
	LogLevel string

	// DatabaseURL is the Postgres connection string. When empty the service
	// falls back to the in-memory sigma store.
	DatabaseURL string

	// AiiBaseURL is the base URL of the indicator service that serves
	// regional values and thresholds. When MockAii is set, a built-in mock
	// replaces the HTTP client so the service runs standalone.
	AiiBaseURL string
	MockAii    bool

	Redis RedisConfig
	Kafka KafkaConfig
}

// RedisConfig holds connection settings for the optional sigma cache.
type RedisConfig struct {
	URL          string
	PoolSize     int
	MinIdleConns int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	CacheTTL     time.Duration
}

// KafkaConfig holds settings for the computed-sigma event stream.
// An empty broker list disables publishing.
type KafkaConfig struct {
	Brokers []string
	Topic   string
}

// FromEnv builds a Server config from environment variables so main stays lean.
func FromEnv() Server {
	return Server{
		Addr:        getenv("SIGMAHUB_ADDR", ":8080"),
		LogLevel:    getenv("SIGMAHUB_LOG_LEVEL", "info"),
		DatabaseURL: os.Getenv("SIGMAHUB_DATABASE_URL"),
		AiiBaseURL:  getenv("SIGMAHUB_AII_BASE_URL", "http://localhost:8000/api/pm25"),
		MockAii:     os.Getenv("SIGMAHUB_MOCK_AII") == "true",
		Redis: RedisConfig{
			URL:          os.Getenv("SIGMAHUB_REDIS_URL"),
			PoolSize:     getenvInt("SIGMAHUB_REDIS_POOL_SIZE", 10),
			MinIdleConns: getenvInt("SIGMAHUB_REDIS_MIN_IDLE_CONNS", 2),
			DialTimeout:  getenvDuration("SIGMAHUB_REDIS_DIAL_TIMEOUT", 5*time.Second),
			ReadTimeout:  getenvDuration("SIGMAHUB_REDIS_READ_TIMEOUT", 3*time.Second),
			WriteTimeout: getenvDuration("SIGMAHUB_REDIS_WRITE_TIMEOUT", 3*time.Second),
			CacheTTL:     getenvDuration("SIGMAHUB_REDIS_CACHE_TTL", time.Hour),
		},
		Kafka: KafkaConfig{
			Brokers: splitList(os.Getenv("SIGMAHUB_KAFKA_BROKERS")),
			Topic:   getenv("SIGMAHUB_KAFKA_TOPIC", "sigma.computed"),
		},
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getenvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getenvDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}

func splitList(v string) []string {
	if v == "" {
		return nil
	}
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Addr          string
	JWTSecret     string
	DefaultLang   string
	LogLevel      string
	CookieSecure  bool
	API           APIConfig
	Session       SessionConfig
	Storefront    StorefrontConfig
	Database      DatabaseConfig
	Tracing       TracingConfig
	Kafka         KafkaConfig
	MetricsEnable bool
}

type APIConfig struct {
	BaseURL string
	Timeout time.Duration
}

type SessionConfig struct {
	TTL   time.Duration
	Sweep time.Duration
}

type StorefrontConfig struct {
	FreeShippingThreshold float64
	SearchDebounce        time.Duration
	SearchLimit           int
	CatalogRefresh        time.Duration
}

type DatabaseConfig struct {
	URL string
}

type TracingConfig struct {
	CollectorHost string
}

type KafkaConfig struct {
	BrokerAddress string
	BrokerTopic   string
}

// Load reads .env (when present) and the process environment.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		Addr:          getString("STOREFRONT_ADDR", ":8080"),
		JWTSecret:     os.Getenv("JWT_SECRET"),
		DefaultLang:   getString("DEFAULT_LANG", "ar"),
		LogLevel:      getString("LOG_LEVEL", "info"),
		CookieSecure:  getBool("COOKIE_SECURE", false),
		MetricsEnable: getBool("METRICS_ENABLED", true),
		API: APIConfig{
			BaseURL: getString("API_BASE_URL", "http://localhost:8000/api/v1"),
			Timeout: getDuration("API_TIMEOUT", 10*time.Second),
		},
		Session: SessionConfig{
			TTL:   getDuration("SESSION_TTL", 72*time.Hour),
			Sweep: getDuration("SESSION_SWEEP", time.Hour),
		},
		Storefront: StorefrontConfig{
			FreeShippingThreshold: getFloat("FREE_SHIPPING_THRESHOLD", 500),
			SearchDebounce:        getDuration("SEARCH_DEBOUNCE", 400*time.Millisecond),
			SearchLimit:           getInt("SEARCH_LIMIT", 5),
			CatalogRefresh:        getDuration("CATALOG_REFRESH", 5*time.Minute),
		},
		Database: DatabaseConfig{
			URL: os.Getenv("DATABASE_URL"),
		},
		Tracing: TracingConfig{
			CollectorHost: os.Getenv("COLLECTOR_HOST"),
		},
		Kafka: KafkaConfig{
			BrokerAddress: os.Getenv("BROKER_ADDRESS"),
			BrokerTopic:   getString("BROKER_TOPIC", "storefront-events"),
		},
	}
}

func getString(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getDuration(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		return def
	}
	return d
}

func getInt(key string, def int) int {
	n, err := strconv.Atoi(os.Getenv(key))
	if err != nil || n <= 0 {
		return def
	}
	return n
}

func getFloat(key string, def float64) float64 {
	f, err := strconv.ParseFloat(os.Getenv(key), 64)
	if err != nil || f <= 0 {
		return def
	}
	return f
}

func getBool(key string, def bool) bool {
	b, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return def
	}
	return b
}

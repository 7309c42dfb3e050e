package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL   string
	Port          string
	IsProduction  bool
	EnableDBCheck bool
	JWTSecret     string

	// External rate service
	ExchangeRateAPIURL string
	ExchangeRateAPIKey string
	RateClientTimeout  time.Duration

	// Cache TTLs: rates expire daily, the currency catalog weekly.
	RatesCacheTTL   time.Duration
	CatalogCacheTTL time.Duration

	// DefaultCurrency is served when a user has no readable preference.
	DefaultCurrency string

	// MirrorDBPath is the sqlite file backing the local key-value mirror.
	MirrorDBPath string

	// RateLimitPerMinute bounds requests per client IP on the endpoints
	// that fan out to the external rate service.
	RateLimitPerMinute int64

	// WarmSchedule is the cron spec for the cache warm job.
	WarmSchedule string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("ENABLE_DB_CHECK", false)
	viper.SetDefault("JWT_SECRET", "a-very-secret-key-should-be-longer-and-random")
	viper.SetDefault("EXCHANGE_RATE_API_URL", "https://v6.exchangerate-api.com/v6")
	viper.SetDefault("EXCHANGE_RATE_API_KEY", "")
	viper.SetDefault("RATE_CLIENT_TIMEOUT", "10s")
	viper.SetDefault("RATES_CACHE_TTL", "24h")
	viper.SetDefault("CATALOG_CACHE_TTL", "168h")
	viper.SetDefault("DEFAULT_CURRENCY", "USD")
	viper.SetDefault("MIRROR_DB_PATH", "spendio_mirror.db")
	viper.SetDefault("RATE_LIMIT_PER_MINUTE", 30)
	viper.SetDefault("WARM_SCHEDULE", "@every 6h")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.EnableDBCheck = viper.GetBool("ENABLE_DB_CHECK")

	cfg.JWTSecret = viper.GetString("JWT_SECRET")
	if cfg.JWTSecret == "a-very-secret-key-should-be-longer-and-random" {
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}

	cfg.ExchangeRateAPIURL = viper.GetString("EXCHANGE_RATE_API_URL")
	cfg.ExchangeRateAPIKey = viper.GetString("EXCHANGE_RATE_API_KEY")
	if cfg.ExchangeRateAPIKey == "" {
		log.Println("Warning: EXCHANGE_RATE_API_KEY not set. Rate fetches will fail against the live service.")
	}

	cfg.RateClientTimeout = durationOrDefault("RATE_CLIENT_TIMEOUT", 10*time.Second)
	cfg.RatesCacheTTL = durationOrDefault("RATES_CACHE_TTL", 24*time.Hour)
	cfg.CatalogCacheTTL = durationOrDefault("CATALOG_CACHE_TTL", 168*time.Hour)

	cfg.DefaultCurrency = viper.GetString("DEFAULT_CURRENCY")
	cfg.MirrorDBPath = viper.GetString("MIRROR_DB_PATH")
	cfg.RateLimitPerMinute = viper.GetInt64("RATE_LIMIT_PER_MINUTE")
	cfg.WarmSchedule = viper.GetString("WARM_SCHEDULE")

	return cfg, nil
}

func durationOrDefault(key string, fallback time.Duration) time.Duration {
	raw := viper.GetString(key)
	d, err := time.ParseDuration(raw)
	if err != nil {
		if raw != "" {
			log.Printf("Warning: Invalid value for %s (%q). Defaulting to %s.\n", key, raw, fallback)
		}
		return fallback
	}
	return d
}

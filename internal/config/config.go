package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

var ErrEmptyEnvironmentVariable = errors.New("empty environment variable")

// Config holds all application configuration
type Config struct {
	Database DatabaseConfig
	Program  ProgramConfig
	Redis    RedisConfig
	Kafka    KafkaConfig
	Server   ServerConfig
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	Host     string
	Username string
	Password string
	Name     string
}

// ProgramConfig holds affiliate program policy values. These are policy,
// not engine correctness: hold days, tier thresholds and the minimum payout
// are supplied by the operator, never hardcoded.
type ProgramConfig struct {
	CookieSecret          string
	AttributionCookieName string
	SessionCookieName     string
	AttributionWindowDays int
	HoldDays              int
	MinPayoutAmount       decimal.Decimal
	FallbackRedirectPath  string
	TierSchedule          string // raw schedule, parsed by the program package
	ClickDedupeSeconds    int
}

// RedisConfig holds redis connection settings for click dedupe
type RedisConfig struct {
	Enabled bool
	Host    string
	Port    int
}

// KafkaConfig holds Kafka/event streaming configuration
type KafkaConfig struct {
	Brokers       string
	OrdersTopic   string
	ConsumerGroup string
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Port       int
	WebAppURI  string
	AdminToken string
}

// Load reads and validates all required environment variables
func Load() (*Config, error) {
	// Load env.local in non-production environments
	if os.Getenv("GO_ENV") != "production" {
		if err := godotenv.Load("env.local"); err != nil {
			return nil, fmt.Errorf("failed to load env.local: %w", err)
		}
	}

	cfg := &Config{}

	// Database configuration
	var err error
	if cfg.Database.Host, err = requireEnv("DB_HOST"); err != nil {
		return nil, err
	}
	if cfg.Database.Username, err = requireEnv("DB_USERNAME"); err != nil {
		return nil, err
	}
	if cfg.Database.Password, err = requireEnv("DB_PASSWORD"); err != nil {
		return nil, err
	}
	if cfg.Database.Name, err = requireEnv("DB_NAME"); err != nil {
		return nil, err
	}

	// Program configuration
	if cfg.Program.CookieSecret, err = requireEnv("ATTRIBUTION_COOKIE_SECRET"); err != nil {
		return nil, err
	}
	cfg.Program.AttributionCookieName = getEnvWithDefault("ATTRIBUTION_COOKIE_NAME", "aff_ref")
	cfg.Program.SessionCookieName = getEnvWithDefault("SESSION_COOKIE_NAME", "aff_sid")
	cfg.Program.FallbackRedirectPath = getEnvWithDefault("FALLBACK_REDIRECT_PATH", "/")
	cfg.Program.TierSchedule = getEnvWithDefault("TIER_SCHEDULE", "0:10:0,5:12:2,15:15:3,30:20:4")

	if cfg.Program.AttributionWindowDays, err = intEnvWithDefault("ATTRIBUTION_WINDOW_DAYS", 30); err != nil {
		return nil, err
	}
	if cfg.Program.HoldDays, err = intEnvWithDefault("COMMISSION_HOLD_DAYS", 14); err != nil {
		return nil, err
	}
	if cfg.Program.ClickDedupeSeconds, err = intEnvWithDefault("CLICK_DEDUPE_SECONDS", 30); err != nil {
		return nil, err
	}

	minPayout := getEnvWithDefault("MIN_PAYOUT_AMOUNT", "50.00")
	cfg.Program.MinPayoutAmount, err = decimal.NewFromString(minPayout)
	if err != nil {
		return nil, fmt.Errorf("failed to parse MIN_PAYOUT_AMOUNT: %w", err)
	}

	// Redis configuration (optional; click dedupe degrades gracefully)
	cfg.Redis.Enabled = getEnvWithDefault("REDIS_ENABLED", "false") == "true"
	if cfg.Redis.Enabled {
		if cfg.Redis.Host, err = requireEnv("REDIS_HOST"); err != nil {
			return nil, err
		}
		if cfg.Redis.Port, err = intEnvWithDefault("REDIS_PORT", 6379); err != nil {
			return nil, err
		}
	}

	// Kafka configuration
	if cfg.Kafka.Brokers, err = requireEnv("KAFKA_BROKERS"); err != nil {
		return nil, err
	}
	cfg.Kafka.OrdersTopic = getEnvWithDefault("KAFKA_ORDERS_TOPIC", "order-events")
	cfg.Kafka.ConsumerGroup = getEnvWithDefault("KAFKA_CONSUMER_GROUP", "affiliate-engine")

	// Server configuration
	serverPort, err := requireEnv("SERVER_PORT")
	if err != nil {
		return nil, err
	}
	cfg.Server.Port, err = strconv.Atoi(serverPort)
	if err != nil {
		return nil, fmt.Errorf("failed to parse SERVER_PORT: %w", err)
	}
	if cfg.Server.WebAppURI, err = requireEnv("WEBAPP_URI"); err != nil {
		return nil, err
	}
	if cfg.Server.AdminToken, err = requireEnv("ADMIN_API_TOKEN"); err != nil {
		return nil, err
	}

	return cfg, nil
}

// ConnectionString returns a PostgreSQL connection string
func (c *DatabaseConfig) ConnectionString() string {
	return fmt.Sprintf("postgres://%s:%s@%s/%s",
		c.Username, c.Password, c.Host, c.Name)
}

// requireEnv retrieves an environment variable or returns an error if empty
func requireEnv(key string) (string, error) {
	value := os.Getenv(key)
	if value == "" {
		return "", fmt.Errorf("%s is not set: %w", key, ErrEmptyEnvironmentVariable)
	}
	return value, nil
}

// getEnvWithDefault retrieves an environment variable or returns a default value
func getEnvWithDefault(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// intEnvWithDefault retrieves an integer environment variable or returns a default
func intEnvWithDefault(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("failed to parse %s: %w", key, err)
	}
	return parsed, nil
}

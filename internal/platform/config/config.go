package config

import (
	"net"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	// Server configuration. The facade acts for the single backend identity
	// held in its cookie jar, so it listens on loopback unless told otherwise.
	HTTPHost    string
	HTTPPort    string
	Environment string
	LogLevel    string

	// Backend API
	BackendURL      string
	BackendTimeout  time.Duration
	BackendEmail    string
	BackendPassword string

	// Local store
	DBHost       string
	DBPort       string
	DBUser       string
	DBPassword   string
	DBName       string
	DBMaxRetries int

	// Redis configuration
	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int

	// Payments
	StripeSecretKey     string
	StripePaymentMethod string
	PaymentCurrency     string

	TicketExportDir string

	// Timing
	ReservationLockTTL   time.Duration
	EventCacheTTL        time.Duration
	HousekeepingInterval time.Duration
	CancelledRetention   time.Duration

	// Monitoring
	EnableMetrics bool
}

// LoadConfig reads the environment, after loading the given .env files
// when they exist.
func LoadConfig(envFiles ...string) *Config {
	for _, file := range envFiles {
		_ = godotenv.Load(file)
	}

	return &Config{
		// Server
		HTTPHost:    getEnv("HTTP_HOST", "127.0.0.1"),
		HTTPPort:    getEnv("HTTP_PORT", "8080"),
		Environment: getEnv("ENVIRONMENT", "development"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),

		// Backend
		BackendURL:      getEnv("BACKEND_URL", "http://localhost:3000/api"),
		BackendTimeout:  getEnvAsDuration("BACKEND_TIMEOUT", "15s"),
		BackendEmail:    getEnv("BACKEND_EMAIL", ""),
		BackendPassword: getEnv("BACKEND_PASSWORD", ""),

		// Postgres
		DBHost:       getEnv("DB_HOST", "localhost"),
		DBPort:       getEnv("DB_PORT", "5432"),
		DBUser:       getEnv("DB_USER", "postgres"),
		DBPassword:   getEnv("DB_PASSWORD", ""),
		DBName:       getEnv("DB_NAME", "ticketing_client"),
		DBMaxRetries: getEnvAsInt("DB_MAX_RETRIES", 10),

		// Redis
		RedisHost:     getEnv("REDIS_HOST", "localhost"),
		RedisPort:     getEnv("REDIS_PORT", "6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisDB:       getEnvAsInt("REDIS_DB", 0),

		// Payments
		StripeSecretKey:     getEnv("STRIPE_SECRET_KEY", ""),
		StripePaymentMethod: getEnv("STRIPE_PAYMENT_METHOD", "pm_card_visa"),
		PaymentCurrency:     getEnv("PAYMENT_CURRENCY", "usd"),

		TicketExportDir: getEnv("TICKET_EXPORT_DIR", "./tickets"),

		// Timing
		ReservationLockTTL:   getEnvAsDuration("RESERVATION_LOCK_TTL", "1m"),
		EventCacheTTL:        getEnvAsDuration("EVENT_CACHE_TTL", "30s"),
		HousekeepingInterval: getEnvAsDuration("HOUSEKEEPING_INTERVAL", "1h"),
		CancelledRetention:   getEnvAsDuration("CANCELLED_RETENTION", "720h"),

		// Monitoring
		EnableMetrics: getEnvAsBool("ENABLE_METRICS", true),
	}
}

func (c *Config) ListenAddr() string {
	return net.JoinHostPort(c.HTTPHost, c.HTTPPort)
}

// IsLoopback reports whether the facade is only reachable from this host.
func (c *Config) IsLoopback() bool {
	if c.HTTPHost == "localhost" {
		return true
	}
	ip := net.ParseIP(c.HTTPHost)
	return ip != nil && ip.IsLoopback()
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseBool(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue string) time.Duration {
	valueStr := getEnv(key, defaultValue)
	if duration, err := time.ParseDuration(valueStr); err == nil {
		return duration
	}
	duration, _ := time.ParseDuration(defaultValue)
	return duration
}

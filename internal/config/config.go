package config

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Environment string
	Port        string
	LogLevel    string
	Repository  RepositoryConfig
	AWS         AWSConfig
	JWT         JWTConfig
	RateLimit   RateLimitConfig
}

// RepositoryConfig selects and configures the booking store.
type RepositoryConfig struct {
	// Driver is "dynamodb" or "sqlite".
	Driver     string
	SQLitePath string
}

// AWSConfig holds the DynamoDB settings. BookingsTable has no default: an
// unset table name is a configuration fault surfaced per-request, never a
// silent fallback.
type AWSConfig struct {
	Region        string
	Endpoint      string
	BookingsTable string
}

// JWTConfig holds the local authorizer settings.
type JWTConfig struct {
	Secret      string
	ExpiryHours int
}

// RateLimitConfig holds the local server rate limit settings.
type RateLimitConfig struct {
	RequestsPerSecond float64
	Burst             int
}

// Load loads configuration from environment variables and an optional .env
// file.
func Load() (*Config, error) {
	_ = godotenv.Load()

	viper.AutomaticEnv()
	viper.SetDefault("ENVIRONMENT", "development")
	viper.SetDefault("PORT", "8081")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("REPOSITORY_DRIVER", "dynamodb")
	viper.SetDefault("SQLITE_PATH", "./data/bookings.db")
	viper.SetDefault("AWS_REGION", "us-east-1")
	viper.SetDefault("JWT_EXPIRY_HOURS", 24)
	viper.SetDefault("RATE_LIMIT_RPS", 10.0)
	viper.SetDefault("RATE_LIMIT_BURST", 20)

	config := &Config{
		Environment: viper.GetString("ENVIRONMENT"),
		Port:        viper.GetString("PORT"),
		LogLevel:    viper.GetString("LOG_LEVEL"),
		Repository: RepositoryConfig{
			Driver:     viper.GetString("REPOSITORY_DRIVER"),
			SQLitePath: viper.GetString("SQLITE_PATH"),
		},
		AWS: AWSConfig{
			Region:        viper.GetString("AWS_REGION"),
			Endpoint:      viper.GetString("DYNAMODB_ENDPOINT"),
			BookingsTable: viper.GetString("BOOKINGS_TABLE"),
		},
		JWT: JWTConfig{
			Secret:      viper.GetString("JWT_SECRET"),
			ExpiryHours: viper.GetInt("JWT_EXPIRY_HOURS"),
		},
		RateLimit: RateLimitConfig{
			RequestsPerSecond: viper.GetFloat64("RATE_LIMIT_RPS"),
			Burst:             viper.GetInt("RATE_LIMIT_BURST"),
		},
	}

	return AdaptConfigForServerless(config), nil
}

// ConfigureLogger applies the configured level and format to the global
// logrus logger and returns it.
func ConfigureLogger(cfg *Config) *logrus.Logger {
	logger := logrus.StandardLogger()

	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	if cfg.Environment == "production" || IsServerlessMode() {
		logger.SetFormatter(&logrus.JSONFormatter{})
	}

	return logger
}

// GetEnv gets an environment variable with a fallback value
func GetEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

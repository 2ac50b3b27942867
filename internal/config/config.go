package config

import (
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

var (
	ErrEmptyEnvironmentVariable = errors.New("empty environment variable")
	ErrInvalidSecretKey         = errors.New("INTEGRATIONS_SECRET_KEY must be 32 bytes hex encoded")
)

// Config holds all application configuration
type Config struct {
	Database     DatabaseConfig
	Auth         AuthConfig
	Services     ServicesConfig
	Kafka        KafkaConfig
	Redis        RedisConfig
	Integrations IntegrationsConfig
	WorkerPool   WorkerPoolConfig
	RateLimit    RateLimitConfig
	Server       ServerConfig
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	Host     string
	Username string
	Password string
	Name     string
}

// AuthConfig holds the secret used to verify organiser JWTs
type AuthConfig struct {
	JWTSecret string
}

type ServicesConfig struct {
	WebAppURI string
}

// KafkaConfig holds Kafka/event streaming configuration
type KafkaConfig struct {
	Brokers       []string
	Topic         string
	ConsumerGroup string
}

// RedisConfig holds Redis connection settings. Redis backs the leaderboard,
// the entry rate limiter and the asynq job queue.
type RedisConfig struct {
	Enabled  bool
	Host     string
	Port     int
	Password string
	DB       int
}

// Addr returns host:port.
func (r RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

// IntegrationsConfig holds email provider settings
type IntegrationsConfig struct {
	// SecretKey encrypts provider credentials at rest.
	SecretKey       [32]byte
	ProviderTimeout time.Duration
	// SyncMaxElapsed bounds the retry window for one subscriber sync.
	SyncMaxElapsed time.Duration
}

// WorkerPoolConfig holds worker pool configuration for event processing
type WorkerPoolConfig struct {
	SyncWorkers int
}

type RateLimitConfig struct {
	EntriesPerMinute int
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Port int
}

// Load reads and validates all required environment variables
func Load() (*Config, error) {
	if os.Getenv("GO_ENV") != "production" {
		if err := godotenv.Load("env.local"); err != nil {
			return nil, fmt.Errorf("failed to load env.local: %w", err)
		}
	}
	return FromEnv()
}

// FromEnv builds the configuration from the current process environment.
func FromEnv() (*Config, error) {
	cfg := &Config{}

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

	if cfg.Auth.JWTSecret, err = requireEnv("JWT_SECRET"); err != nil {
		return nil, err
	}
	cfg.Services.WebAppURI = getEnvWithDefault("WEBAPP_URI", "http://localhost:3000")

	brokers, err := requireEnv("KAFKA_BROKERS")
	if err != nil {
		return nil, err
	}
	cfg.Kafka.Brokers = strings.Split(brokers, ",")
	cfg.Kafka.Topic = getEnvWithDefault("KAFKA_TOPIC", "entry-events")
	cfg.Kafka.ConsumerGroup = getEnvWithDefault("KAFKA_CONSUMER_GROUP", "integration-sync")

	cfg.Redis.Enabled = getEnvWithDefault("REDIS_ENABLED", "true") == "true"
	cfg.Redis.Host = getEnvWithDefault("REDIS_HOST", "localhost")
	cfg.Redis.Password = os.Getenv("REDIS_PASSWORD")
	if cfg.Redis.Port, err = intEnv("REDIS_PORT", "6379"); err != nil {
		return nil, err
	}
	if cfg.Redis.DB, err = intEnv("REDIS_DB", "0"); err != nil {
		return nil, err
	}

	secret, err := requireEnv("INTEGRATIONS_SECRET_KEY")
	if err != nil {
		return nil, err
	}
	if cfg.Integrations.SecretKey, err = parseSecretKey(secret); err != nil {
		return nil, err
	}

	timeoutSeconds, err := intEnv("PROVIDER_TIMEOUT_SECONDS", "15")
	if err != nil {
		return nil, err
	}
	if timeoutSeconds < 1 || timeoutSeconds > 60 {
		return nil, fmt.Errorf("PROVIDER_TIMEOUT_SECONDS must be between 1 and 60, got %d", timeoutSeconds)
	}
	cfg.Integrations.ProviderTimeout = time.Duration(timeoutSeconds) * time.Second

	maxElapsed, err := intEnv("SYNC_RETRY_MAX_ELAPSED_SECONDS", "30")
	if err != nil {
		return nil, err
	}
	cfg.Integrations.SyncMaxElapsed = time.Duration(maxElapsed) * time.Second

	if cfg.WorkerPool.SyncWorkers, err = intEnv("SYNC_WORKERS", "5"); err != nil {
		return nil, err
	}
	if cfg.RateLimit.EntriesPerMinute, err = intEnv("ENTRY_RATE_LIMIT_PER_MINUTE", "10"); err != nil {
		return nil, err
	}

	serverPort, err := requireEnv("SERVER_PORT")
	if err != nil {
		return nil, err
	}
	cfg.Server.Port, err = strconv.Atoi(serverPort)
	if err != nil {
		return nil, fmt.Errorf("failed to parse SERVER_PORT: %w", err)
	}

	return cfg, nil
}

// ConnectionString returns a PostgreSQL connection string
func (c *DatabaseConfig) ConnectionString() string {
	return fmt.Sprintf("postgres://%s:%s@%s/%s",
		c.Username, c.Password, c.Host, c.Name)
}

func parseSecretKey(value string) ([32]byte, error) {
	var key [32]byte
	raw, err := hex.DecodeString(value)
	if err != nil || len(raw) != len(key) {
		return key, ErrInvalidSecretKey
	}
	copy(key[:], raw)
	return key, nil
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

func intEnv(key, defaultValue string) (int, error) {
	n, err := strconv.Atoi(getEnvWithDefault(key, defaultValue))
	if err != nil {
		return 0, fmt.Errorf("failed to parse %s: %w", key, err)
	}
	return n, nil
}

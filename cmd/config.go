package main

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds the application, PostgreSQL, Redis, Kafka, logging and JWT settings.
type Config struct {
	// Application
	AppHost     string `envconfig:"APP_HOST" default:"localhost"`
	AppPort     string `envconfig:"APP_PORT" default:"8080"`
	LogLevel    string `envconfig:"APP_LOG_LEVEL" default:"info"`
	LogFormat   string `envconfig:"APP_LOG_FORMAT" default:"json"`
	CORSOrigins string `envconfig:"APP_CORS_ORIGINS" default:"*"`

	// PostgreSQL
	PostgresHost         string `envconfig:"POSTGRES_HOST" default:"localhost"`
	PostgresPort         int    `envconfig:"POSTGRES_PORT" default:"5432"`
	PostgresUser         string `envconfig:"POSTGRES_USER" default:"user"`
	PostgresPassword     string `envconfig:"POSTGRES_PASSWORD" default:"password"`
	PostgresDB           string `envconfig:"POSTGRES_DB" default:"database"`
	PostgresMaxOpenConns int    `envconfig:"POSTGRES_MAX_OPEN_CONNS" default:"16"`
	PostgresMaxIdleConns int    `envconfig:"POSTGRES_MAX_IDLE_CONNS" default:"8"`

	// Redis
	RedisHost         string `envconfig:"REDIS_HOST" default:"localhost"`
	RedisPort         int    `envconfig:"REDIS_PORT" default:"6379"`
	RedisDB           int    `envconfig:"REDIS_DB" default:"0"`
	RedisPassword     string `envconfig:"REDIS_PASSWORD"`
	RedisPoolSize     int    `envconfig:"REDIS_POOL_SIZE" default:"10"`
	RedisMinIdleConns int    `envconfig:"REDIS_MIN_IDLE_CONNS" default:"2"`
	RedisExpSecond    int    `envconfig:"REDIS_EXP_SECOND" default:"60"`

	// Kafka; empty brokers disables event publishing
	KafkaBrokers string `envconfig:"KAFKA_BROKERS"`
	KafkaTopic   string `envconfig:"KAFKA_TOPIC" default:"opportunity-events"`

	// JWT
	JWTSecretKey string `envconfig:"JWT_SECRET_KEY" default:"my_super_secret_key"`
	JWTExpSecond int    `envconfig:"JWT_EXP_SECOND" default:"604800"`
}

// parseConfig loads environment variables from a file, when present, and
// decodes the environment into a Config.
func parseConfig(path string) (Config, error) {
	_ = godotenv.Load(path)

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, nil
}

// Addr is the HTTP listen address.
func (c Config) Addr() string {
	return fmt.Sprintf("%s:%s", c.AppHost, c.AppPort)
}

// PostgresDSN builds a postgres:// URL from the connection settings.
func (c Config) PostgresDSN() string {
	u := &url.URL{
		Scheme: "postgres",
		Host:   fmt.Sprintf("%s:%d", c.PostgresHost, c.PostgresPort),
		User:   url.UserPassword(c.PostgresUser, c.PostgresPassword),
		Path:   c.PostgresDB,
	}
	q := u.Query()
	q.Set("sslmode", "disable")
	u.RawQuery = q.Encode()
	return u.String()
}

// RedisAddr is the host:port of the Redis server.
func (c Config) RedisAddr() string {
	return fmt.Sprintf("%s:%d", c.RedisHost, c.RedisPort)
}

// KafkaBrokerList splits KAFKA_BROKERS on commas, dropping blanks.
func (c Config) KafkaBrokerList() []string {
	return splitList(c.KafkaBrokers)
}

// CORSOriginList splits APP_CORS_ORIGINS on commas, dropping blanks.
func (c Config) CORSOriginList() []string {
	return splitList(c.CORSOrigins)
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

// DefaultJWTSecretKey is the development secret used when JWT_SECRET_KEY is unset.
const DefaultJWTSecretKey = "my_super_secret_key"

// Config holds every runtime setting of the service.
type Config struct {
	// Application
	AppHost             string `env:"APP_HOST" envDefault:"localhost"`
	AppPort             string `env:"APP_PORT" envDefault:"5000"`
	LogLevel            string `env:"APP_LOG_LEVEL" envDefault:"info"`
	ProductsRequireAuth bool   `env:"APP_PRODUCTS_REQUIRE_AUTH" envDefault:"false"`

	// PostgreSQL
	PostgresHost         string `env:"POSTGRES_HOST" envDefault:"localhost"`
	PostgresPort         int    `env:"POSTGRES_PORT" envDefault:"5432"`
	PostgresUser         string `env:"POSTGRES_USER" envDefault:"user"`
	PostgresPassword     string `env:"POSTGRES_PASSWORD" envDefault:"password"`
	PostgresDB           string `env:"POSTGRES_DB" envDefault:"product_listing"`
	PostgresMaxOpenConns int    `env:"POSTGRES_MAX_OPEN_CONNS" envDefault:"16"`
	PostgresMaxIdleConns int    `env:"POSTGRES_MAX_IDLE_CONNS" envDefault:"8"`

	// JWT. A zero JWTExpSecond issues tokens without an exp claim.
	JWTSecretKey string `env:"JWT_SECRET_KEY" envDefault:"my_super_secret_key"`
	JWTExpSecond int    `env:"JWT_EXP_SECOND" envDefault:"0"`

	// Kafka. Product events are not published when no brokers are set.
	KafkaBrokers []string `env:"KAFKA_BROKERS" envSeparator:","`
	KafkaTopic   string   `env:"KAFKA_TOPIC" envDefault:"product-events"`
}

// Load reads the optional env file at path and then parses the process
// environment into a Config. Variables already set in the environment
// take precedence over the file.
func Load(path string) (*Config, error) {
	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := godotenv.Load(path); err != nil {
				return nil, fmt.Errorf("failed to load env file %s: %w", path, err)
			}
		}
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config from environment: %w", err)
	}

	return cfg, nil
}

// Addr returns the host:port the HTTP server listens on.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%s", c.AppHost, c.AppPort)
}

// PostgresDSN builds the connection string for the pgx driver.
func (c *Config) PostgresDSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		c.PostgresUser, c.PostgresPassword, c.PostgresHost, c.PostgresPort, c.PostgresDB)
}

// UsesDefaultJWTSecret reports whether tokens would be signed with the
// built-in development secret.
func (c *Config) UsesDefaultJWTSecret() bool {
	return c.JWTSecretKey == DefaultJWTSecretKey
}

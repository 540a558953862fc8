package config

import (
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// MustLoad loads the configuration from environment variables and .env file.
func MustLoad[T any](cfg T) {
	_ = godotenv.Load() // Load environment variables from .env file

	env.Must(cfg, env.Parse(cfg))
}

// Load loads the configuration from environment variables and .env file.
func Load[T any](cfg T) error {
	_ = godotenv.Load() // .env file is optional

	if err := env.Parse(cfg); err != nil {
		return err
	}

	return nil
}

// Config holds the configuration for the application
type Config struct {
	Server   ServerConfig `envPrefix:"SERVER_"` // HTTP server configuration
	Auth     AuthConfig   `envPrefix:"AUTH_"`   // Login and token configuration
	Kafka    KafkaConfig  `envPrefix:"KAFKA_"`  // Trade publisher configuration
	Book     BookConfig   `envPrefix:"BOOK_"`   // Order book store configuration
	SeedData bool         `env:"SEED_DATA" envDefault:"true"`
}

// ServerConfig holds the configuration for the HTTP server.
type ServerConfig struct {
	Addr            string        `env:"ADDR" envDefault:":8080"`
	AllowedOrigins  []string      `env:"ALLOWED_ORIGINS" envDefault:"*"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"30s"`
}

// AuthConfig holds the credentials of the seeded admin user and token settings.
type AuthConfig struct {
	AdminUsername string        `env:"ADMIN_USERNAME,required"`
	AdminPassword string        `env:"ADMIN_PASSWORD,required"`
	TokenSecret   string        `env:"TOKEN_SECRET,required"`
	TokenTTL      time.Duration `env:"TOKEN_TTL" envDefault:"30m"`
}

// KafkaConfig holds the configuration for the trade publisher.
// Publishing is disabled when no brokers are configured.
type KafkaConfig struct {
	Topic   string   `env:"TOPIC" envDefault:"trades"`
	Brokers []string `env:"BROKER"`
}

// BookConfig holds the tunables of the order book store.
type BookConfig struct {
	MatchPolicy     string  `env:"MATCH_POLICY" envDefault:"fullfill"`
	QuantityEpsilon float64 `env:"QUANTITY_EPSILON" envDefault:"0"`
}

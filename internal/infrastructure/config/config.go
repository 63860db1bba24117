package config

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"time"

	"github.com/caarlos0/env/v11"
)

type DatabaseConfig struct {
	User     string `env:"POSTGRES_USER"`
	Password string `env:"POSTGRES_PASSWORD"`
	Host     string `env:"POSTGRES_HOST" envDefault:"postgres"`
	Port     string `env:"POSTGRES_PORT" envDefault:"5432"`
	Name     string `env:"POSTGRES_DB" envDefault:"restaurant"`
	SSLMode  string `env:"POSTGRES_SSLMODE" envDefault:"disable"`

	MaxOpenConns    int           `env:"DB_MAX_OPEN_CONNS" envDefault:"20"`
	MaxIdleConns    int           `env:"DB_MAX_IDLE_CONNS" envDefault:"10"`
	ConnMaxLifetime time.Duration `env:"DB_CONN_MAX_LIFETIME" envDefault:"30m"`
}

// DSN builds a postgres URL from the individual settings.
func (c DatabaseConfig) DSN() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     net.JoinHostPort(c.Host, c.Port),
		Path:     c.Name,
		RawQuery: url.Values{"sslmode": {c.SSLMode}}.Encode(),
	}
	return u.String()
}

// KafkaConfig leaves Kafka disabled when no brokers are set.
type KafkaConfig struct {
	Brokers     []string `env:"KAFKA_BROKERS" envSeparator:","`
	EventsTopic string   `env:"KAFKA_EVENTS_TOPIC" envDefault:"order-events"`
	IntakeTopic string   `env:"KAFKA_INTAKE_TOPIC"`
	GroupID     string   `env:"KAFKA_GROUP_ID" envDefault:"restaurant"`
}

func (c KafkaConfig) Enabled() bool {
	return len(c.Brokers) > 0
}

// RedisConfig leaves the order cache disabled when Addr is empty.
type RedisConfig struct {
	Addr string        `env:"REDIS_ADDR"`
	TTL  time.Duration `env:"REDIS_TTL" envDefault:"10m"`
}

type HTTPConfig struct {
	Port            string        `env:"HTTP_PORT" envDefault:"8080"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

type CatalogConfig struct {
	Path string `env:"CATALOG_PATH"`
}

type Config struct {
	Database DatabaseConfig
	Kafka    KafkaConfig
	Redis    RedisConfig
	HTTP     HTTPConfig
	Catalog  CatalogConfig
}

func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if cfg.Database.User == "" || cfg.Database.Password == "" {
		return nil, errors.New("database credentials required")
	}
	if cfg.Database.MaxOpenConns < 1 {
		return nil, fmt.Errorf("DB_MAX_OPEN_CONNS must be positive, got %d", cfg.Database.MaxOpenConns)
	}
	if cfg.Kafka.Enabled() && cfg.Kafka.IntakeTopic != "" && cfg.Kafka.IntakeTopic == cfg.Kafka.EventsTopic {
		return nil, errors.New("kafka intake and events topics must differ")
	}

	return cfg, nil
}

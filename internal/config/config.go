package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"

	"github.com/ttkcys/milliyetciler/pkg/database"
)

// Config is the full service configuration.
// Values come from defaults overridden by environment variables.
type Config struct {
	Server   ServerConfig    `koanf:"server"`
	Database database.Config `koanf:"database"`
	Redis    RedisConfig     `koanf:"redis"`
	Kafka    KafkaConfig     `koanf:"kafka"`
	Session  SessionConfig   `koanf:"session"`
	List     ListConfig      `koanf:"list"`
	Search   SearchConfig    `koanf:"search"`
	Media    MediaConfig     `koanf:"media"`
	Logging  LoggingConfig   `koanf:"logging"`
}

type ServerConfig struct {
	Host        string `koanf:"host"`
	Port        string `koanf:"port"`
	Environment string `koanf:"environment"`
}

type RedisConfig struct {
	Enabled bool          `koanf:"enabled"`
	Addr    string        `koanf:"addr"`
	TTL     time.Duration `koanf:"ttl"`
}

type KafkaConfig struct {
	Enabled bool   `koanf:"enabled"`
	Brokers string `koanf:"brokers"` // comma-separated
}

type SessionConfig struct {
	TTL          time.Duration `koanf:"ttl"`
	CookieSecure bool          `koanf:"cookie_secure"`
}

type ListConfig struct {
	// OpTimeout bounds each list column read and write
	OpTimeout time.Duration `koanf:"op_timeout"`
}

type SearchConfig struct {
	FacetTimeout time.Duration `koanf:"facet_timeout"`
	FacetLimit   int           `koanf:"facet_limit"`
}

type MediaConfig struct {
	Dir string `koanf:"dir"`
}

type LoggingConfig struct {
	Level string `koanf:"level"`
}

// BrokerList splits the comma-separated broker string
func (k KafkaConfig) BrokerList() []string {
	var out []string
	for _, b := range strings.Split(k.Brokers, ",") {
		if b = strings.TrimSpace(b); b != "" {
			out = append(out, b)
		}
	}
	return out
}

// IsDevelopment reports whether the service runs in development mode
func (s ServerConfig) IsDevelopment() bool {
	return s.Environment != "production"
}

func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Host:        "0.0.0.0",
			Port:        "8080",
			Environment: "development",
		},
		Database: database.Config{
			Host:     "localhost",
			Port:     "5432",
			User:     "postgres",
			Password: "postgres",
			DBName:   "arsivdb",
			SSLMode:  "disable",
		},
		Redis: RedisConfig{
			Enabled: false,
			Addr:    "localhost:6379",
			TTL:     5 * time.Minute,
		},
		Kafka: KafkaConfig{
			Enabled: false,
			Brokers: "localhost:9092",
		},
		Session: SessionConfig{
			TTL:          7 * 24 * time.Hour,
			CookieSecure: false,
		},
		List: ListConfig{
			OpTimeout: 3 * time.Second,
		},
		Search: SearchConfig{
			FacetTimeout: 5 * time.Second,
			FacetLimit:   50,
		},
		Media: MediaConfig{
			Dir: "./public",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load builds the configuration from defaults plus environment variables
func Load() (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	envProvider := env.Provider("", ".", envTransformFunc)
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}
	return cfg, nil
}

// envTransformFunc maps environment variable names to config paths.
// Unmapped variables are skipped so stray environment noise cannot
// leak into the configuration.
func envTransformFunc(key string) string {
	mappings := map[string]string{
		"HTTP_HOST":       "server.host",
		"HTTP_PORT":       "server.port",
		"ENVIRONMENT":     "server.environment",
		"DB_HOST":         "database.host",
		"DB_PORT":         "database.port",
		"DB_USER":         "database.user",
		"DB_PASSWORD":     "database.password",
		"DB_NAME":         "database.name",
		"DB_SSLMODE":      "database.sslmode",
		"REDIS_ENABLED":   "redis.enabled",
		"REDIS_ADDR":      "redis.addr",
		"REDIS_CACHE_TTL": "redis.ttl",
		"KAFKA_ENABLED":   "kafka.enabled",
		"KAFKA_BROKERS":   "kafka.brokers",
		"SESSION_TTL":     "session.ttl",
		"COOKIE_SECURE":   "session.cookie_secure",
		"LIST_OP_TIMEOUT": "list.op_timeout",
		"SEARCH_TIMEOUT":  "search.facet_timeout",
		"SEARCH_LIMIT":    "search.facet_limit",
		"MEDIA_DIR":       "media.dir",
		"LOG_LEVEL":       "logging.level",
	}
	if mapped, ok := mappings[strings.ToUpper(key)]; ok {
		return mapped
	}
	return ""
}
